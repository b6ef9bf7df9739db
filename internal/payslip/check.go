package payslip

import "fmt"

// diagnostics accumulates warnings for one extraction call. It is threaded
// explicitly through the validator and discarded with the call; there is no
// shared state between extractions.
type diagnostics struct {
	warnings []string
}

func (d *diagnostics) warnf(format string, args ...any) {
	d.warnings = append(d.warnings, fmt.Sprintf(format, args...))
}

// validator recomputes every redundant total the document prints and
// compares it with the printed figure. Mismatches become warnings, never
// errors: they question the document's self-consistency, not the
// extraction's validity. The validator never touches extracted values.
type validator struct {
	diags *diagnostics
}

func (v *validator) checkAll(stem *stemData, body *bodyData) {
	v.checkStem(stem)
	v.checkBody(body)
	v.checkStemAgainstBody(stem, body)
}

func (v *validator) checkStem(data *stemData) {
	stem := &data.Stem

	v.checkTotal(sectionTaxedEarnings, data.TaxedTotal, sumEarnings(stem.TaxedEarnings))
	v.checkTotal(sectionUntaxedEarnings, data.UntaxedTotal, sumEarnings(stem.UntaxedEarnings))
	v.checkTotal(sectionTax, data.TaxTotal, sumAmounts(stem.Tax))
	v.checkTotal(sectionDeductions, data.DeductTotal, sumAmounts(stem.Deductions))
	v.checkTotal(sectionSuperannuation, data.SuperTotal, sumAmounts(stem.Superannuation))

	if !data.LeaveAuditSeen {
		v.diags.warnf("Last line of leave not where expected")
	}

	// The NET PAY and DISBURSEMENTS tables are drawn from the same data, so
	// their amount columns must agree. A single zero NET PAY row against an
	// empty disbursement list is the generator's way of printing a
	// no-deposit period.
	if !netMatchesDeposits(data.NetPay, stem.Net) {
		v.diags.warnf("NET PAY does not match DISBURSEMENTS")
	}

	taxable := sumEarnings(stem.TaxedEarnings)
	untaxed := sumEarnings(stem.UntaxedEarnings)
	tax := sumAmounts(stem.Tax)
	deduct := sumAmounts(stem.Deductions)
	net := sumDeposits(stem.Net)
	if remainder := taxable + untaxed - tax - deduct - net; remainder != 0 {
		v.diags.warnf("%d taxable + %d untaxed - %d tax - %d deduct - %d net = %d, not zero",
			taxable, untaxed, tax, deduct, net, remainder)
	}

	remainder := stem.TaxedEarningsYTD + stem.UntaxedEarningsYTD -
		stem.TaxYTD - stem.DeductionsYTD - stem.NetYTD
	if remainder != 0 {
		v.diags.warnf("YTD %d taxable + %d untaxed - %d tax - %d deduct - %d net = %d, not zero",
			stem.TaxedEarningsYTD, stem.UntaxedEarningsYTD, stem.TaxYTD,
			stem.DeductionsYTD, stem.NetYTD, remainder)
	}
}

func (v *validator) checkBody(data *bodyData) {
	tables := map[string][]PeriodEarning{
		sectionPriorTaxed:     data.Body.PriorPeriodTaxedEarnings,
		sectionCurrentTaxed:   data.Body.CurrentPeriodTaxedEarnings,
		sectionPriorUntaxed:   data.Body.PriorPeriodUntaxedEarnings,
		sectionCurrentUntaxed: data.Body.CurrentPeriodUntaxedEarnings,
	}

	for _, title := range bodySectionOrder {
		expect := sumPeriodEarnings(tables[title])
		got := data.SectionTotals[title]
		if expect != got {
			v.diags.warnf("Body %s total mismatch: expected %d, got %d", title, expect, got)
		}
	}

	taxable := sumPeriodEarnings(data.Body.PriorPeriodTaxedEarnings) +
		sumPeriodEarnings(data.Body.CurrentPeriodTaxedEarnings)
	if taxable != data.TotalTaxable {
		v.diags.warnf("Body total taxable earnings list miscalculated: expected %d, got %d",
			taxable, data.TotalTaxable)
	}

	untaxed := sumPeriodEarnings(data.Body.PriorPeriodUntaxedEarnings) +
		sumPeriodEarnings(data.Body.CurrentPeriodUntaxedEarnings)
	if untaxed != data.TotalUntaxed {
		v.diags.warnf("Body total untaxed earnings mismatch: expected %d, got %d",
			untaxed, data.TotalUntaxed)
	}
}

// checkStemAgainstBody compares the summary earnings lists on page one with
// the per-period detail on the later pages.
func (v *validator) checkStemAgainstBody(stem *stemData, body *bodyData) {
	stemTaxed := sumEarnings(stem.Stem.TaxedEarnings)
	stemUntaxed := sumEarnings(stem.Stem.UntaxedEarnings)

	bodyTaxed := sumPeriodEarnings(body.Body.PriorPeriodTaxedEarnings) +
		sumPeriodEarnings(body.Body.CurrentPeriodTaxedEarnings)
	bodyUntaxed := sumPeriodEarnings(body.Body.PriorPeriodUntaxedEarnings) +
		sumPeriodEarnings(body.Body.CurrentPeriodUntaxedEarnings)

	if stemTaxed != bodyTaxed {
		v.diags.warnf("Taxed income mismatch: stem %d != body %d", stemTaxed, bodyTaxed)
	}
	if stemUntaxed != bodyUntaxed {
		v.diags.warnf("Untaxed income mismatch: stem %d != body %d", stemUntaxed, bodyUntaxed)
	}
}

func (v *validator) checkTotal(title string, printed, computed Money) {
	if printed != computed {
		v.diags.warnf("%s total incorrect: expected %d, got %d", title, computed, printed)
	}
}

func netMatchesDeposits(netPay []netPayRow, deposits []DepositItem) bool {
	if len(netPay) == 1 && len(deposits) == 0 &&
		netPay[0].ThisPay != nil && *netPay[0].ThisPay == 0 {
		return true
	}
	if len(netPay) != len(deposits) {
		return false
	}
	for i := range netPay {
		a, b := netPay[i].ThisPay, deposits[i].Amount
		switch {
		case a == nil && b == nil:
		case a == nil || b == nil:
			return false
		case *a != *b:
			return false
		}
	}
	return true
}
