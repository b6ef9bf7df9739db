package payslip

import (
	"github.com/payrollkit/payslip/internal/pdf"
)

// slipOptions mutates the synthetic payslip away from its self-consistent
// default. The default document's printed totals all agree with its line
// items, so extraction yields zero warnings.
type slipOptions struct {
	stemTaxedTotal  string // printed period total of 1. TAXED EARNINGS
	taxedAmountCell string // amount cell of the taxed earning row
	omitNetPay      bool
	omitLeaveRows   bool // leave table holds only the audit sentinel
	omitSentinel    bool
	omitComments    bool
	threePages      bool // split the body across pages two and three
	singlePage      bool
}

func defaultSlip() slipOptions {
	return slipOptions{
		stemTaxedTotal:  "3,000.00",
		taxedAmountCell: "3,000.00",
	}
}

type slipBuilder struct {
	frags []pdf.Fragment
	page  int
	y     float64
}

type cell struct {
	x    float64
	text string
	bold bool
}

func c(x float64, text string) cell  { return cell{x: x, text: text} }
func cb(x float64, text string) cell { return cell{x: x, text: text, bold: true} }

func (b *slipBuilder) row(cells ...cell) {
	for _, cl := range cells {
		b.frags = append(b.frags, pdf.Fragment{
			Page: b.page,
			X:    cl.x,
			Y:    b.y,
			Text: cl.text,
			Bold: cl.bold,
		})
	}
	b.y -= 12
}

func (b *slipBuilder) nextPage() {
	b.page++
	b.y = 800
}

// buildSlip constructs the fragment stream of a complete synthetic payslip:
//
//	taxed 3,000.00 + untaxed 100.00 - tax 800.00 - deductions 50.00
//	  = net 2,250.00
//	YTD: 45,000.00 + 1,000.00 - 9,000.00 - 500.00 = 36,500.00
func buildSlip(o slipOptions) []pdf.Fragment {
	b := &slipBuilder{page: 1, y: 800}

	// Head.
	b.row(c(40, "Western Australia Department of Health"))
	b.row(c(40, "ABN: 28684750332"))
	b.row(cb(40, "Name:"), c(120, "CITIZEN, JANE"))
	b.row(cb(40, "Employee Id:"), c(120, "E123456"))
	b.row(cb(40, "HSS Contact:"), c(120, "HSS Payroll Services"))
	b.row(cb(40, "Period End Date:"), c(120, "24-06-2022"))
	b.row(cb(40, "Telephone:"), c(120, "13 44 77"))
	b.row(cb(40, "Period Number:"), c(120, "26"))
	b.row(cb(40, "Full Time Salary:"), c(120, " $85,000.00"))
	b.row(cb(40, "Home Email:"), c(120, "JANE.CITIZEN@EXAMPLE.COM"))
	b.row(cb(40, "Address:"))
	b.row(c(40, "1 Example Street"))
	b.row(c(40, "PERTH WA 6000"))
	if !o.omitComments {
		b.row(cb(40, "COMMENTS"))
		b.row(c(40, "Thank you for your service"))
	}

	// Stem.
	b.row(cb(40, "1. TAXED EARNINGS"))
	b.row(cb(40, "Units"), cb(90, "Rate"), cb(140, "Description"), cb(400, "Amount"))
	b.row(c(42, "76.00"), c(92, "39.47"), c(140, "Ordinary Hours"), c(385, o.taxedAmountCell))
	b.row(cb(140, "Total"), cb(385, o.stemTaxedTotal), cb(440, "45,000.00"))

	b.row(cb(40, "2. UNTAXED EARNINGS"))
	b.row(cb(40, "Units"), cb(90, "Rate"), cb(140, "Description"), cb(400, "Amount"))
	b.row(c(140, "Car Allowance"), c(390, "100.00"))
	b.row(cb(140, "Total"), cb(390, "100.00"), cb(440, "1,000.00"))

	b.row(cb(40, "4. TAX"))
	b.row(cb(140, "Description"), cb(400, "Amount"))
	b.row(c(140, "PAYG"), c(390, "800.00"))
	b.row(cb(140, "Total"), cb(390, "800.00"), cb(440, "9,000.00"))

	b.row(cb(40, "5. DEDUCTIONS"))
	b.row(cb(140, "Description"), cb(400, "Amount"))
	b.row(c(140, "Parking"), c(392, "50.00"))
	b.row(cb(140, "Total"), cb(392, "50.00"), cb(440, "500.00"))

	b.row(cb(40, "6. SUPERANNUATION"))
	b.row(cb(140, "Description"), cb(400, "Amount"))
	b.row(c(140, "GESB Super"), c(390, "300.00"))
	b.row(cb(140, "Total"), cb(390, "300.00"), cb(440, "4,000.00"))

	if !o.omitNetPay {
		b.row(cb(40, "7. NET PAY"))
		b.row(cb(140, "This Pay"), cb(300, "Year to Date"))
		b.row(c(145, "2,250.00"), c(305, "36,500.00"))
	}

	b.row(cb(40, "DISBURSEMENTS (BANKED)"))
	b.row(cb(40, "Bank"), cb(140, "Account"), cb(400, "Amount"))
	b.row(c(40, "CBA"), c(140, "XXXXXX1234"), c(390, "2,250.00"))

	b.row(cb(40, "LEAVE"))
	b.row(cb(40, "Leave Type"), cb(200, "Balance"), cb(300, "Calculated"))
	if !o.omitLeaveRows {
		b.row(c(40, "Annual Leave"), c(210, "152.00"), c(300, "24-06-2022"))
	}
	if !o.omitSentinel {
		b.row(c(40, "Leave balances displayed are subject to audit"))
	}

	if o.singlePage {
		return b.frags
	}

	// Body.
	b.nextPage()
	bodyHeader := []cell{
		cb(40, "Date From"), cb(100, "Date To"), cb(160, "Description"),
		cb(300, "Units"), cb(350, "Rate"), cb(420, "Amount"),
	}
	b.row(bodyHeader...)

	b.row(cb(40, "PRIOR PERIOD TAXED EARNINGS"))
	b.row(c(42, "28-05-2022"), c(102, "10-06-2022"), c(160, "Ordinary Hours"),
		c(295, "25.33"), c(346, "39.4700"), c(400, "1,000.00"))
	b.row(cb(160, "Total"), cb(400, "1,000.00"))

	b.row(cb(40, "CURRENT PERIOD TAXED EARNINGS"))
	b.row(c(42, "11-06-2022"), c(102, "24-06-2022"), c(160, "Ordinary Hours"),
		c(295, "50.67"), c(346, "39.4700"), c(400, "2,000.00"))
	b.row(cb(160, "Total"), cb(400, "2,000.00"))

	b.row(cb(40, "PRIOR PERIOD UNTAXED EARNINGS"))
	b.row(cb(160, "Total"), cb(400, "0.00"))

	if o.threePages {
		// Pages after the second repeat the column header; everything up
		// to and including its bold Amount token must be cut.
		b.nextPage()
		b.row(bodyHeader...)
	}

	b.row(cb(40, "CURRENT PERIOD UNTAXED EARNINGS"))
	b.row(c(42, "11-06-2022"), c(102, "24-06-2022"), c(160, "Car Allowance"), c(400, "100.00"))
	b.row(cb(160, "Total"), cb(400, "100.00"))

	b.row(cb(40, "Total Taxable Earnings"), cb(400, "3,000.00"))
	b.row(cb(40, "Total Untaxed Earnings"), cb(400, "100.00"))

	return b.frags
}
