// Package pdf decodes payslip PDF bytes into positioned text fragments.
//
// The decoder is deliberately dumb: it performs no semantic interpretation
// and reports fragments in the order the document stores them. All layout
// reconstruction happens in later pipeline stages.
package pdf

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// Fragment is a single run of text placed on a page. Coordinates are PDF
// user-space points with the origin at the bottom-left of the page.
type Fragment struct {
	Page int
	X    float64
	Y    float64
	Text string
	Bold bool
}

// Decoder turns raw document bytes into fragments.
type Decoder struct {
	// Glyphs closer together than JoinGap (in points) on the same baseline
	// are coalesced into one fragment. The underlying reader reports one
	// glyph per text element, which is far too fine-grained for label
	// matching.
	JoinGap float64

	// Glyphs whose baselines differ by no more than BaselineTolerance are
	// considered to sit on the same baseline while coalescing.
	BaselineTolerance float64
}

// NewDecoder returns a Decoder with the tolerances used for the supported
// payslip family.
func NewDecoder() *Decoder {
	return &Decoder{
		JoinGap:           1.0,
		BaselineTolerance: 0.5,
	}
}

// Decode parses data as a PDF and returns every text fragment of every page,
// ordered by storage order (page by page, content-stream order within a
// page). A *MalformedDocumentError is returned when the bytes are not a
// readable PDF.
func (d *Decoder) Decode(data []byte) ([]Fragment, error) {
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		return nil, &MalformedDocumentError{Op: "header check", Err: fmt.Errorf("missing %%PDF marker")}
	}

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, &MalformedDocumentError{Op: "open", Err: err}
	}

	var fragments []Fragment
	for pageNum := 1; pageNum <= reader.NumPage(); pageNum++ {
		page := reader.Page(pageNum)
		if page.V.IsNull() {
			continue
		}

		glyphs, err := pageContent(page)
		if err != nil {
			return nil, &MalformedDocumentError{Op: fmt.Sprintf("page %d content", pageNum), Err: err}
		}

		fragments = append(fragments, d.coalesce(pageNum, glyphs)...)
	}

	return fragments, nil
}

// pageContent reads a page's text elements. The underlying reader panics on
// content streams it cannot interpret, so the panic is converted to an error
// here instead of taking down the caller.
func pageContent(page pdf.Page) (texts []pdf.Text, err error) {
	defer func() {
		if r := recover(); r != nil {
			texts = nil
			err = fmt.Errorf("unreadable content stream: %v", r)
		}
	}()

	texts = page.Content().Text
	return texts, nil
}

// coalesce merges runs of adjacent glyphs into fragments. Two glyphs join
// when they share a baseline, a face, and the second starts within JoinGap of
// where the first ends. Cell boundaries in the payslip family are separated
// by far more than JoinGap, so joining never crosses a cell.
func (d *Decoder) coalesce(pageNum int, glyphs []pdf.Text) []Fragment {
	var fragments []Fragment

	var (
		current strings.Builder
		start   pdf.Text
		endX    float64
		open    bool
	)

	flush := func() {
		if !open {
			return
		}
		fragments = append(fragments, Fragment{
			Page: pageNum,
			X:    start.X,
			Y:    start.Y,
			Text: current.String(),
			Bold: boldFont(start.Font),
		})
		current.Reset()
		open = false
	}

	for _, g := range glyphs {
		if g.S == "" {
			continue
		}

		joins := open &&
			g.Font == start.Font &&
			abs(g.Y-start.Y) <= d.BaselineTolerance &&
			g.X-endX >= -d.JoinGap && g.X-endX <= d.JoinGap

		if !joins {
			flush()
			start = g
			open = true
		}
		current.WriteString(g.S)
		endX = g.X + g.W
	}
	flush()

	return fragments
}

// boldFont reports whether a font name denotes the family's bold face.
func boldFont(name string) bool {
	return strings.Contains(strings.ToLower(name), "bold")
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
