package payslip

import (
	"github.com/payrollkit/payslip/internal/layout"
)

// All four body tables share one column layout, headed once at the top of
// page two.
var bodyColumns = []layout.ColumnSpec{
	{Title: "Date From", Numeric: true},
	{Title: "Date To", Numeric: true},
	{Title: "Description"},
	{Title: "Units", Numeric: true},
	{Title: "Rate", Numeric: true},
	{Title: "Amount", Numeric: true},
}

const (
	sectionPriorTaxed     = "PRIOR PERIOD TAXED EARNINGS"
	sectionCurrentTaxed   = "CURRENT PERIOD TAXED EARNINGS"
	sectionPriorUntaxed   = "PRIOR PERIOD UNTAXED EARNINGS"
	sectionCurrentUntaxed = "CURRENT PERIOD UNTAXED EARNINGS"
)

// bodySectionOrder fixes both extraction and validation order to the printed
// order.
var bodySectionOrder = []string{
	sectionPriorTaxed,
	sectionCurrentTaxed,
	sectionPriorUntaxed,
	sectionCurrentUntaxed,
}

// bodyData carries the extracted body tables plus every printed total the
// Validator cross-checks.
type bodyData struct {
	Body Body

	SectionTotals map[string]Money
	TotalTaxable  Money
	TotalUntaxed  Money
}

// extractBody reads the historical period tables from the body fragment
// stream (page two onward, repeated page headers already removed).
func extractBody(f fragments) (*bodyData, error) {
	bands, err := layout.ResolveBands(f, bodyColumns)
	if err != nil {
		return nil, structureErrorf("%v", err)
	}

	data := &bodyData{SectionTotals: make(map[string]Money, len(bodySectionOrder))}

	for _, title := range bodySectionOrder {
		start, err := f.indexBold(title)
		if err != nil {
			return nil, err
		}
		totalIdx, err := f.indexBoldFrom("Total", start)
		if err != nil {
			return nil, structureErrorf("section %q has no Total row", title)
		}

		items, err := periodRows(f[start:totalIdx], bands, title)
		if err != nil {
			return nil, err
		}

		if totalIdx+1 >= len(f) {
			return nil, structureErrorf("section %q Total row is incomplete", title)
		}
		printed, err := ParseMoney(f[totalIdx+1].Text)
		if err != nil {
			return nil, &FieldParseError{Field: title + " total", Value: f[totalIdx+1].Text, Err: err}
		}
		data.SectionTotals[title] = printed

		switch title {
		case sectionPriorTaxed:
			data.Body.PriorPeriodTaxedEarnings = items
		case sectionCurrentTaxed:
			data.Body.CurrentPeriodTaxedEarnings = items
		case sectionPriorUntaxed:
			data.Body.PriorPeriodUntaxedEarnings = items
		case sectionCurrentUntaxed:
			data.Body.CurrentPeriodUntaxedEarnings = items
		}
	}

	if data.TotalTaxable, err = totalField(f, "Total Taxable Earnings"); err != nil {
		return nil, err
	}
	if data.TotalUntaxed, err = totalField(f, "Total Untaxed Earnings"); err != nil {
		return nil, err
	}

	return data, nil
}

// totalField reads the printed figure following a bold whole-of-body total
// label.
func totalField(f fragments, label string) (Money, error) {
	raw, err := f.valueAfter(label)
	if err != nil {
		return 0, err
	}
	value, err := ParseMoney(raw)
	if err != nil {
		return 0, &FieldParseError{Field: label, Value: raw, Err: err}
	}
	return value, nil
}

func periodRows(section fragments, bands layout.Bands, title string) ([]PeriodEarning, error) {
	rows, err := rowsWithBands(section, bands)
	if err != nil {
		return nil, err
	}

	items := make([]PeriodEarning, 0, len(rows))
	for _, row := range rows {
		item := PeriodEarning{Description: row.Cell(2)}
		if item.DateFrom, err = dateCell(row, 0, title+" date from"); err != nil {
			return nil, err
		}
		if item.DateTo, err = dateCell(row, 1, title+" date to"); err != nil {
			return nil, err
		}
		if item.UnitsX100, err = scaledCell(row, 3, title+" units"); err != nil {
			return nil, err
		}
		if item.RateX10000, err = rateCell(row, 4, title+" rate"); err != nil {
			return nil, err
		}
		if item.Amount, err = moneyCell(row, 5, title+" amount"); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}
