package payslip

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Money is an exact number of cents. Dollar amounts never touch floating
// point so that validation sums cannot drift.
type Money int64

// Scaled is a fixed-point quantity (units, rates) whose power-of-ten scale is
// carried by the field name it is stored under (x_100, x_10000).
type Scaled int64

var (
	moneyPattern = regexp.MustCompile(`^ *-?\d{1,3}(,\d{3})*\.\d{2}$`)
	ratePattern  = regexp.MustCompile(`^ *-?\d{1,3}(,\d{3})*\.\d{4}$`)
	datePattern  = regexp.MustCompile(`^\d{2}-\d{2}-\d{4}`)
	digitsOnly   = regexp.MustCompile(`[^0-9-]`)
)

// ParseMoney parses a printed dollar value ("1,234.56") into cents.
func ParseMoney(s string) (Money, error) {
	if !moneyPattern.MatchString(s) {
		return 0, fmt.Errorf("not a dollar value")
	}
	v, err := strconv.ParseInt(digitsOnly.ReplaceAllString(s, ""), 10, 64)
	if err != nil {
		return 0, err
	}
	return Money(v), nil
}

// ParseRate parses a four-decimal printed rate ("39.4700") into
// ten-thousandths.
func ParseRate(s string) (Scaled, error) {
	if !ratePattern.MatchString(s) {
		return 0, fmt.Errorf("not a ten-thousandths value")
	}
	v, err := strconv.ParseInt(digitsOnly.ReplaceAllString(s, ""), 10, 64)
	if err != nil {
		return 0, err
	}
	return Scaled(v), nil
}

// ParseDate converts the generator's dd-mm-yyyy dates to ISO-8601.
func ParseDate(s string) (string, error) {
	if !datePattern.MatchString(s) {
		return "", errors.New("not a dd-mm-yyyy date")
	}
	parts := strings.SplitN(s[:10], "-", 3)
	return parts[2] + "-" + parts[1] + "-" + parts[0], nil
}

// String formats cents the way the document prints them: comma-grouped
// dollars with two decimals. ParseMoney(m.String()) == m for all m.
func (m Money) String() string {
	v := int64(m)
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}

	dollars := strconv.FormatInt(v/100, 10)
	var grouped strings.Builder
	for i, digit := range dollars {
		if i > 0 && (len(dollars)-i)%3 == 0 {
			grouped.WriteByte(',')
		}
		grouped.WriteRune(digit)
	}

	return fmt.Sprintf("%s%s.%02d", sign, grouped.String(), v%100)
}
