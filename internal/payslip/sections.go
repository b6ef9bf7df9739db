package payslip

import (
	"regexp"

	"github.com/payrollkit/payslip/internal/layout"
	"github.com/payrollkit/payslip/internal/pdf"
)

// Stem section titles are printed bold in all caps. Everything between one
// title and the next belongs to the earlier section.
var sectionTitlePattern = regexp.MustCompile(`^[. 0-9A-Z()]*[A-Z][. 0-9A-Z()]*$`)

// fragments wraps a reading-ordered fragment slice with the anchor lookups
// the extractors share.
type fragments []pdf.Fragment

// indexBold returns the position of the bold fragment whose text equals
// label. Required anchors must appear exactly once; zero or multiple
// occurrences mean the layout has drifted from the supported family.
func (f fragments) indexBold(label string) (int, error) {
	index := -1
	for i, frag := range f {
		if !frag.Bold || frag.Text != label {
			continue
		}
		if index >= 0 {
			return 0, structureErrorf("anchor %q found more than once", label)
		}
		index = i
	}
	if index < 0 {
		return 0, structureErrorf("anchor %q not found", label)
	}
	return index, nil
}

// indexBoldOptional is indexBold for anchors the document may legitimately
// omit.
func (f fragments) indexBoldOptional(label string) (int, bool, error) {
	index := -1
	for i, frag := range f {
		if !frag.Bold || frag.Text != label {
			continue
		}
		if index >= 0 {
			return 0, false, structureErrorf("anchor %q found more than once", label)
		}
		index = i
	}
	if index < 0 {
		return 0, false, nil
	}
	return index, true, nil
}

// indexBoldFrom returns the first bold fragment equal to label at or after
// start. Used for per-section anchors like "Total" that repeat through the
// document.
func (f fragments) indexBoldFrom(label string, start int) (int, error) {
	for i := start; i < len(f); i++ {
		if f[i].Bold && f[i].Text == label {
			return i, nil
		}
	}
	return 0, structureErrorf("anchor %q not found after position %d", label, start)
}

// valueAfter returns the text of the fragment following the bold anchor
// label.
func (f fragments) valueAfter(label string) (string, error) {
	i, err := f.indexBold(label)
	if err != nil {
		return "", err
	}
	if i+1 >= len(f) {
		return "", structureErrorf("no value after anchor %q", label)
	}
	return f[i+1].Text, nil
}

// splitSections partitions fragments into the bold all-caps titled sections.
// Fragments before the first title are ignored; they belong to the head.
func splitSections(f fragments) map[string]fragments {
	sections := make(map[string]fragments)
	title := ""
	for _, frag := range f {
		if frag.Bold && sectionTitlePattern.MatchString(frag.Text) {
			title = frag.Text
			if _, exists := sections[title]; !exists {
				sections[title] = fragments{}
			}
			continue
		}
		if title != "" {
			sections[title] = append(sections[title], frag)
		}
	}
	return sections
}

// sectionRows turns a section's cell fragments into table rows using bands
// resolved from the section's own bold column headers.
func sectionRows(section fragments, cols []layout.ColumnSpec) ([]layout.Row, error) {
	bands, err := layout.ResolveBands(section, cols)
	if err != nil {
		return nil, structureErrorf("%v", err)
	}
	return rowsWithBands(section, bands)
}

// rowsWithBands extracts rows from the non-bold fragments of section using
// already-resolved bands. Body tables share one band set resolved from the
// header row at the top of page two.
func rowsWithBands(section fragments, bands layout.Bands) ([]layout.Row, error) {
	var cells []pdf.Fragment
	for _, frag := range section {
		if !frag.Bold {
			cells = append(cells, frag)
		}
	}

	lines := layout.AssembleLines(cells, layout.DefaultLineTolerance)
	rows, err := layout.TableRows(lines, bands)
	if err != nil {
		return nil, structureErrorf("%v", err)
	}
	return rows, nil
}
