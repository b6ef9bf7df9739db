package payslip

// Record is the root aggregate produced by one extraction call. It is built
// once, returned to the caller, and never shared: two concurrent extractions
// have no common state.
type Record struct {
	Head     Head     `json:"head"`
	Stem     Stem     `json:"stem"`
	Body     Body     `json:"body"`
	Warnings []string `json:"warnings"`
}

// Head holds the scalar fields of the payslip's first page.
type Head struct {
	Payer           string `json:"payer"`
	PayerABN        string `json:"payer_abn"`
	EmployeeName    string `json:"employee_name"`
	EmployeeID      string `json:"employee_id"`
	EmployeeEmail   string `json:"employee_email"`
	EmployeeAddress string `json:"employee_address"`
	FullTimeSalary  Money  `json:"full_time_salary"`
	PeriodEndDate   string `json:"period_end_date"`
	PeriodNumber    int    `json:"period_number"`
	HSSContact      string `json:"hss_contact"`
	HSSTelephone    string `json:"hss_telephone"`
	Comments        string `json:"comments"`
}

// Stem holds the current period's totals and tables from page one.
type Stem struct {
	TaxedEarningsYTD   Money `json:"taxed_earnings_ytd"`
	UntaxedEarningsYTD Money `json:"untaxed_earnings_ytd"`
	TaxYTD             Money `json:"tax_ytd"`
	DeductionsYTD      Money `json:"deductions_ytd"`
	SuperannuationYTD  Money `json:"superannuation_ytd"`
	NetYTD             Money `json:"net_ytd"`

	TaxedEarnings   []EarningItem `json:"taxed_earnings"`
	UntaxedEarnings []EarningItem `json:"untaxed_earnings"`
	Tax             []AmountItem  `json:"tax"`
	Deductions      []AmountItem  `json:"deductions"`
	Superannuation  []AmountItem  `json:"superannuation"`
	Net             []DepositItem `json:"net"`
	Leave           []LeaveItem   `json:"leave"`
}

// Body holds the historical per-period earning tables from page two onward.
type Body struct {
	PriorPeriodTaxedEarnings     []PeriodEarning `json:"prior_period_taxed_earnings"`
	CurrentPeriodTaxedEarnings   []PeriodEarning `json:"current_period_taxed_earnings"`
	PriorPeriodUntaxedEarnings   []PeriodEarning `json:"prior_period_untaxed_earnings"`
	CurrentPeriodUntaxedEarnings []PeriodEarning `json:"current_period_untaxed_earnings"`
}

// EarningItem is one row of a stem earnings table. Cells the document leaves
// blank are nil.
type EarningItem struct {
	UnitsX100   *Scaled `json:"units_x_100"`
	RateX100    *Scaled `json:"rate_x_100"`
	Description string  `json:"description"`
	Amount      *Money  `json:"amount"`
}

// AmountItem is one row of the tax, deductions, or superannuation tables.
type AmountItem struct {
	Description string `json:"description"`
	Amount      *Money `json:"amount"`
}

// DepositItem is one banked disbursement.
type DepositItem struct {
	Bank    string `json:"bank"`
	Account string `json:"account"`
	Amount  *Money `json:"amount"`
}

// LeaveItem is one leave balance row.
type LeaveItem struct {
	Type        string  `json:"type"`
	BalanceX100 *Scaled `json:"balance_x_100"`
	Calculated  string  `json:"calculated"`
}

// PeriodEarning is one row of a body period table.
type PeriodEarning struct {
	DateFrom    string  `json:"date_from"`
	DateTo      string  `json:"date_to"`
	Description string  `json:"description"`
	UnitsX100   *Scaled `json:"units_x_100"`
	RateX10000  *Scaled `json:"rate_x_10000"`
	Amount      *Money  `json:"amount"`
}

// assembleRecord composes the final tree. Pure composition: no validation or
// transformation happens here.
func assembleRecord(head Head, stem Stem, body Body, warnings []string) *Record {
	if warnings == nil {
		warnings = []string{}
	}
	return &Record{
		Head:     head,
		Stem:     stem,
		Body:     body,
		Warnings: warnings,
	}
}

func amountOrZero(m *Money) Money {
	if m == nil {
		return 0
	}
	return *m
}

func sumEarnings(items []EarningItem) Money {
	var total Money
	for _, item := range items {
		total += amountOrZero(item.Amount)
	}
	return total
}

func sumAmounts(items []AmountItem) Money {
	var total Money
	for _, item := range items {
		total += amountOrZero(item.Amount)
	}
	return total
}

func sumDeposits(items []DepositItem) Money {
	var total Money
	for _, item := range items {
		total += amountOrZero(item.Amount)
	}
	return total
}

func sumPeriodEarnings(items []PeriodEarning) Money {
	var total Money
	for _, item := range items {
		total += amountOrZero(item.Amount)
	}
	return total
}
