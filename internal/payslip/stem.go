package payslip

import (
	"github.com/payrollkit/payslip/internal/layout"
)

// The leave table's closing row, printed by the generator on every payslip.
const leaveAuditSentinel = "Leave balances displayed are subject to audit"

// Section and column layout of page one's stem, as data. Updating this table
// for a new document revision must not require touching extraction code.
var (
	earningColumns = []layout.ColumnSpec{
		{Title: "Units", Numeric: true},
		{Title: "Rate", Numeric: true},
		{Title: "Description"},
		{Title: "Amount", Numeric: true},
	}
	amountColumns = []layout.ColumnSpec{
		{Title: "Description"},
		{Title: "Amount", Numeric: true},
	}
	netPayColumns = []layout.ColumnSpec{
		{Title: "This Pay", Numeric: true},
		{Title: "Year to Date", Numeric: true},
	}
	depositColumns = []layout.ColumnSpec{
		{Title: "Bank"},
		{Title: "Account"},
		{Title: "Amount", Numeric: true},
	}
	leaveColumns = []layout.ColumnSpec{
		{Title: "Leave Type"},
		{Title: "Balance", Numeric: true},
		{Title: "Calculated"},
	}
)

const (
	sectionTaxedEarnings   = "1. TAXED EARNINGS"
	sectionUntaxedEarnings = "2. UNTAXED EARNINGS"
	sectionTax             = "4. TAX"
	sectionDeductions      = "5. DEDUCTIONS"
	sectionSuperannuation  = "6. SUPERANNUATION"
	sectionNetPay          = "7. NET PAY"
	sectionDisbursements   = "DISBURSEMENTS (BANKED)"
	sectionLeave           = "LEAVE"
)

// netPayRow is one row of the internal NET PAY table. Its YTD column repeats
// the running net figure; its This Pay column duplicates the disbursement
// amounts. Neither reaches the output record directly.
type netPayRow struct {
	ThisPay *Money
	YTD     *Money
}

// stemData carries the extracted stem plus the printed totals the Validator
// cross-checks afterwards.
type stemData struct {
	Stem Stem

	TaxedTotal   Money
	UntaxedTotal Money
	TaxTotal     Money
	DeductTotal  Money
	SuperTotal   Money

	NetPay         []netPayRow
	LeaveAuditSeen bool
}

// extractStem reads every stem section of page one.
func extractStem(f fragments) (*stemData, error) {
	sections := splitSections(f)

	section := func(title string) (fragments, error) {
		s, ok := sections[title]
		if !ok {
			return nil, structureErrorf("section %q not found", title)
		}
		return s, nil
	}

	data := &stemData{}
	stem := &data.Stem
	stem.TaxedEarnings = []EarningItem{}
	stem.UntaxedEarnings = []EarningItem{}
	stem.Tax = []AmountItem{}
	stem.Deductions = []AmountItem{}
	stem.Superannuation = []AmountItem{}
	stem.Net = []DepositItem{}
	stem.Leave = []LeaveItem{}

	type totalledSection struct {
		title string
		items func(fragments) error
		total *Money
		ytd   *Money
	}

	totalled := []totalledSection{
		{sectionTaxedEarnings, func(s fragments) error {
			items, err := earningRows(s, sectionTaxedEarnings)
			stem.TaxedEarnings = items
			return err
		}, &data.TaxedTotal, &stem.TaxedEarningsYTD},
		{sectionUntaxedEarnings, func(s fragments) error {
			items, err := earningRows(s, sectionUntaxedEarnings)
			stem.UntaxedEarnings = items
			return err
		}, &data.UntaxedTotal, &stem.UntaxedEarningsYTD},
		{sectionTax, func(s fragments) error {
			items, err := amountRows(s, sectionTax)
			stem.Tax = items
			return err
		}, &data.TaxTotal, &stem.TaxYTD},
		{sectionDeductions, func(s fragments) error {
			items, err := amountRows(s, sectionDeductions)
			stem.Deductions = items
			return err
		}, &data.DeductTotal, &stem.DeductionsYTD},
		{sectionSuperannuation, func(s fragments) error {
			items, err := amountRows(s, sectionSuperannuation)
			stem.Superannuation = items
			return err
		}, &data.SuperTotal, &stem.SuperannuationYTD},
	}

	for _, ts := range totalled {
		s, err := section(ts.title)
		if err != nil {
			return nil, err
		}
		if err := ts.items(s); err != nil {
			return nil, err
		}
		total, ytd, err := printedTotals(s, ts.title)
		if err != nil {
			return nil, err
		}
		*ts.total = total
		*ts.ytd = ytd
	}

	netSection, err := section(sectionNetPay)
	if err != nil {
		return nil, err
	}
	if data.NetPay, err = netPayRows(netSection); err != nil {
		return nil, err
	}
	if len(data.NetPay) == 0 || data.NetPay[0].YTD == nil {
		return nil, structureErrorf("section %q carries no year-to-date figure", sectionNetPay)
	}
	stem.NetYTD = *data.NetPay[0].YTD

	depositSection, err := section(sectionDisbursements)
	if err != nil {
		return nil, err
	}
	if stem.Net, err = depositRows(depositSection); err != nil {
		return nil, err
	}

	leaveSection, err := section(sectionLeave)
	if err != nil {
		return nil, err
	}
	if stem.Leave, err = leaveRows(leaveSection); err != nil {
		return nil, err
	}

	// The audit sentinel closes the leave table on every known payslip; it
	// is dropped from the output and its absence reported by the Validator.
	switch {
	case len(stem.Leave) == 0:
		data.LeaveAuditSeen = true
	case stem.Leave[len(stem.Leave)-1].Type == leaveAuditSentinel:
		stem.Leave = stem.Leave[:len(stem.Leave)-1]
		data.LeaveAuditSeen = true
	}

	return data, nil
}

// printedTotals reads the two bold figures after a section's bold Total
// label: the period total, then the year-to-date total.
func printedTotals(section fragments, title string) (total, ytd Money, err error) {
	idx, err := section.indexBoldFrom("Total", 0)
	if err != nil {
		return 0, 0, structureErrorf("section %q has no Total row", title)
	}

	var printed []string
	for _, frag := range section[idx+1:] {
		if frag.Bold {
			printed = append(printed, frag.Text)
			if len(printed) == 2 {
				break
			}
		}
	}
	if len(printed) < 2 {
		return 0, 0, structureErrorf("section %q Total row is incomplete", title)
	}

	if total, err = ParseMoney(printed[0]); err != nil {
		return 0, 0, &FieldParseError{Field: title + " total", Value: printed[0], Err: err}
	}
	if ytd, err = ParseMoney(printed[1]); err != nil {
		return 0, 0, &FieldParseError{Field: title + " ytd", Value: printed[1], Err: err}
	}
	return total, ytd, nil
}

func earningRows(section fragments, title string) ([]EarningItem, error) {
	rows, err := sectionRows(section, earningColumns)
	if err != nil {
		return nil, err
	}

	items := make([]EarningItem, 0, len(rows))
	for _, row := range rows {
		item := EarningItem{Description: row.Cell(2)}
		if item.UnitsX100, err = scaledCell(row, 0, title+" units"); err != nil {
			return nil, err
		}
		if item.RateX100, err = scaledCell(row, 1, title+" rate"); err != nil {
			return nil, err
		}
		if item.Amount, err = moneyCell(row, 3, title+" amount"); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func amountRows(section fragments, title string) ([]AmountItem, error) {
	rows, err := sectionRows(section, amountColumns)
	if err != nil {
		return nil, err
	}

	items := make([]AmountItem, 0, len(rows))
	for _, row := range rows {
		item := AmountItem{Description: row.Cell(0)}
		if item.Amount, err = moneyCell(row, 1, title+" amount"); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func netPayRows(section fragments) ([]netPayRow, error) {
	rows, err := sectionRows(section, netPayColumns)
	if err != nil {
		return nil, err
	}

	items := make([]netPayRow, 0, len(rows))
	for _, row := range rows {
		var item netPayRow
		if item.ThisPay, err = moneyCell(row, 0, "NET PAY this pay"); err != nil {
			return nil, err
		}
		if item.YTD, err = moneyCell(row, 1, "NET PAY year to date"); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func depositRows(section fragments) ([]DepositItem, error) {
	rows, err := sectionRows(section, depositColumns)
	if err != nil {
		return nil, err
	}

	items := make([]DepositItem, 0, len(rows))
	for _, row := range rows {
		item := DepositItem{Bank: row.Cell(0), Account: row.Cell(1)}
		if item.Amount, err = moneyCell(row, 2, "DISBURSEMENTS amount"); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func leaveRows(section fragments) ([]LeaveItem, error) {
	rows, err := sectionRows(section, leaveColumns)
	if err != nil {
		return nil, err
	}

	items := make([]LeaveItem, 0, len(rows))
	for _, row := range rows {
		item := LeaveItem{Type: row.Cell(0), Calculated: row.Cell(2)}
		if item.BalanceX100, err = scaledCell(row, 1, "LEAVE balance"); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// moneyCell parses a dollar cell; a blank band stays nil, an unparseable one
// is fatal.
func moneyCell(row layout.Row, col int, field string) (*Money, error) {
	if col >= len(row) || row[col] == nil {
		return nil, nil
	}
	value, err := ParseMoney(*row[col])
	if err != nil {
		return nil, &FieldParseError{Field: field, Value: *row[col], Err: err}
	}
	return &value, nil
}

// scaledCell parses a two-decimal fixed-point cell (units, x_100 rates,
// leave balances).
func scaledCell(row layout.Row, col int, field string) (*Scaled, error) {
	if col >= len(row) || row[col] == nil {
		return nil, nil
	}
	value, err := ParseMoney(*row[col])
	if err != nil {
		return nil, &FieldParseError{Field: field, Value: *row[col], Err: err}
	}
	scaled := Scaled(value)
	return &scaled, nil
}

// rateCell parses a four-decimal fixed-point cell (body x_10000 rates).
func rateCell(row layout.Row, col int, field string) (*Scaled, error) {
	if col >= len(row) || row[col] == nil {
		return nil, nil
	}
	value, err := ParseRate(*row[col])
	if err != nil {
		return nil, &FieldParseError{Field: field, Value: *row[col], Err: err}
	}
	return &value, nil
}

// dateCell parses a dd-mm-yyyy cell into ISO-8601; blank stays "".
func dateCell(row layout.Row, col int, field string) (string, error) {
	if col >= len(row) || row[col] == nil {
		return "", nil
	}
	value, err := ParseDate(*row[col])
	if err != nil {
		return "", &FieldParseError{Field: field, Value: *row[col], Err: err}
	}
	return value, nil
}
