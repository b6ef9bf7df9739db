package payslip

import (
	"encoding/json"
	"strings"
)

// Encode serializes a record as indented JSON with line-item objects
// compacted onto single lines, which keeps a payslip's many small rows
// readable. Encoding is a pure tree-to-text transform: the same record
// always yields byte-identical output.
func Encode(record *Record) ([]byte, error) {
	indented, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return nil, err
	}
	return compactLineItems(indented), nil
}

// compactLineItems rewrites flat objects carrying an "amount" or
// "calculated" key onto one line each. Those keys only occur in table rows.
func compactLineItems(indented []byte) []byte {
	lines := strings.Split(string(indented), "\n")
	out := make([]string, 0, len(lines))

	for i := 0; i < len(lines); i++ {
		line := lines[i]
		if strings.TrimSpace(line) != "{" {
			out = append(out, line)
			continue
		}

		// Collect the object body; bail out on nesting.
		var inner []string
		flat := true
		j := i + 1
		for ; j < len(lines); j++ {
			t := strings.TrimSpace(lines[j])
			if t == "}" || t == "}," {
				break
			}
			if strings.HasSuffix(t, "{") || strings.HasSuffix(t, "[") {
				flat = false
				break
			}
			inner = append(inner, t)
		}

		if flat && j < len(lines) && isLineItem(inner) {
			indent := strings.TrimSuffix(line, "{")
			out = append(out, indent+"{"+strings.Join(inner, " ")+strings.TrimSpace(lines[j]))
			i = j
			continue
		}
		out = append(out, line)
	}

	return []byte(strings.Join(out, "\n"))
}

func isLineItem(fields []string) bool {
	for _, field := range fields {
		if strings.HasPrefix(field, `"amount":`) || strings.HasPrefix(field, `"calculated":`) {
			return true
		}
	}
	return false
}
