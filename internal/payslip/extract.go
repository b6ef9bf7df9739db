// Package payslip extracts a structured, validated record from the text
// fragments of one WA Department of Health payslip (2020-2023 layout era).
//
// The pipeline is a pure function from fragments to record: bytes are
// decoded into positioned fragments, fragments are assembled into lines,
// lines are partitioned into anchored sections, sections are read as typed
// fields and tables, and every redundant printed total is cross-checked.
// Structural violations are fatal; redundant-total mismatches are warnings.
// That asymmetry is deliberate: a missing anchor means the layout drifted
// and nothing downstream can be trusted, while a total mismatch questions
// the document, not the extraction.
package payslip

import (
	"github.com/payrollkit/payslip/internal/layout"
	"github.com/payrollkit/payslip/internal/pdf"
)

// Extract converts raw payslip PDF bytes into a record, or fails with a
// *pdf.MalformedDocumentError, *StructureMismatchError, or *FieldParseError.
// No partial record is ever returned.
func Extract(data []byte) (*Record, error) {
	frags, err := pdf.NewDecoder().Decode(data)
	if err != nil {
		return nil, err
	}
	return ExtractFragments(frags)
}

// ExtractFragments runs the extraction pipeline over already-decoded
// fragments. Exposed separately so callers with their own decoding (and
// tests) can enter the pipeline past the container format.
func ExtractFragments(frags []pdf.Fragment) (*Record, error) {
	lines := layout.AssembleLines(frags, layout.DefaultLineTolerance)

	page1, body, err := partitionPages(lines)
	if err != nil {
		return nil, err
	}

	head, err := extractHead(page1)
	if err != nil {
		return nil, err
	}
	stem, err := extractStem(page1)
	if err != nil {
		return nil, err
	}
	bodyData, err := extractBody(body)
	if err != nil {
		return nil, err
	}

	diags := &diagnostics{warnings: []string{}}
	v := &validator{diags: diags}
	v.checkAll(stem, bodyData)

	return assembleRecord(head, stem.Stem, bodyData.Body, diags.warnings), nil
}

// partitionPages splits the reading-ordered lines into the page-one stream
// (head and stem) and the body stream. Page two opens the body; pages three
// onward repeat the column header, which is cut by skipping everything up to
// and including the bold Amount header token.
func partitionPages(lines []layout.Line) (page1, body fragments, err error) {
	firstPage := -1
	bodySeen := false

	for _, line := range lines {
		if firstPage < 0 {
			firstPage = line.Page
		}
		switch {
		case line.Page == firstPage:
			page1 = append(page1, line.Tokens...)
		case line.Page == firstPage+1:
			bodySeen = true
			body = append(body, line.Tokens...)
		default:
			bodySeen = true
		}
	}

	if firstPage < 0 {
		return nil, nil, structureErrorf("document contains no text")
	}
	if !bodySeen {
		return nil, nil, structureErrorf("document has no body pages")
	}

	// Pages three and up.
	currentPage := 0
	inBody := false
	for _, line := range lines {
		if line.Page <= firstPage+1 {
			continue
		}
		if line.Page != currentPage {
			currentPage = line.Page
			inBody = false
		}
		for _, frag := range line.Tokens {
			if inBody {
				body = append(body, frag)
			} else if frag.Bold && frag.Text == "Amount" {
				inBody = true
			}
		}
	}

	return page1, body, nil
}
