package payslip

import (
	"regexp"
	"strconv"
	"strings"
)

var abnPattern = regexp.MustCompile(`ABN: (\d{11})`)

// extractHead reads the scalar fields of page one. The payer and its ABN are
// the first two fragments on the page; everything else sits immediately
// after a bold label anchor.
func extractHead(f fragments) (Head, error) {
	var head Head

	if len(f) < 2 {
		return head, structureErrorf("first page has no head fragments")
	}

	head.Payer = f[0].Text

	abn := abnPattern.FindStringSubmatch(f[1].Text)
	if abn == nil {
		return head, &FieldParseError{Field: "payer_abn", Value: f[1].Text, Err: errNoABN}
	}
	head.PayerABN = abn[1]

	var err error
	if head.EmployeeName, err = f.valueAfter("Name:"); err != nil {
		return head, err
	}
	if head.EmployeeID, err = f.valueAfter("Employee Id:"); err != nil {
		return head, err
	}
	if head.HSSContact, err = f.valueAfter("HSS Contact:"); err != nil {
		return head, err
	}
	if head.HSSTelephone, err = f.valueAfter("Telephone:"); err != nil {
		return head, err
	}

	rawDate, err := f.valueAfter("Period End Date:")
	if err != nil {
		return head, err
	}
	if head.PeriodEndDate, err = ParseDate(rawDate); err != nil {
		return head, &FieldParseError{Field: "period_end_date", Value: rawDate, Err: err}
	}

	rawNumber, err := f.valueAfter("Period Number:")
	if err != nil {
		return head, err
	}
	if head.PeriodNumber, err = strconv.Atoi(rawNumber); err != nil {
		return head, &FieldParseError{Field: "period_number", Value: rawNumber, Err: err}
	}

	rawSalary, err := f.valueAfter("Full Time Salary:")
	if err != nil {
		return head, err
	}
	salary, err := ParseMoney(strings.TrimLeft(rawSalary, " $"))
	if err != nil {
		return head, &FieldParseError{Field: "full_time_salary", Value: rawSalary, Err: err}
	}
	head.FullTimeSalary = salary

	rawEmail, err := f.valueAfter("Home Email:")
	if err != nil {
		return head, err
	}
	head.EmployeeEmail = strings.ToLower(rawEmail)

	if head.EmployeeAddress, err = addressAfter(f); err != nil {
		return head, err
	}
	if head.Comments, err = commentsAfter(f); err != nil {
		return head, err
	}

	return head, nil
}

// addressAfter joins the non-bold lines following the Address: anchor.
func addressAfter(f fragments) (string, error) {
	start, err := f.indexBold("Address:")
	if err != nil {
		return "", err
	}

	var lines []string
	for _, frag := range f[start+1:] {
		if frag.Bold {
			break
		}
		lines = append(lines, frag.Text)
	}
	return strings.Join(lines, "\n"), nil
}

// commentsAfter collects free text under the optional COMMENTS anchor,
// rejoining fragments on one visual line with spaces and separate lines with
// newlines.
func commentsAfter(f fragments) (string, error) {
	start, ok, err := f.indexBoldOptional("COMMENTS")
	if err != nil {
		return "", err
	}
	if !ok {
		return "", nil
	}

	var comments strings.Builder
	lastY := f[start].Y + 1
	for _, frag := range f[start+1:] {
		if frag.Bold {
			break
		}
		if frag.Y < lastY {
			comments.WriteString("\n")
		} else {
			comments.WriteString(" ")
		}
		comments.WriteString(frag.Text)
		lastY = frag.Y
	}
	return strings.TrimSpace(comments.String()), nil
}
