// Package layout reconstructs reading order and table structure from
// positioned text fragments. It knows nothing about payslips; it only
// interprets 2-D text placement.
package layout

import (
	"sort"

	"github.com/payrollkit/payslip/internal/pdf"
)

// DefaultLineTolerance is the vertical distance (points) within which two
// fragments are considered to share a line in the supported document family.
const DefaultLineTolerance = 2.0

// Line is a group of fragments sharing one vertical band on one page.
// Tokens are ordered left to right; fragments at identical coordinates keep
// their decode order.
type Line struct {
	Page   int
	Y      float64
	Tokens []pdf.Fragment
}

// AssembleLines clusters fragments into lines. Fragments belong to the same
// line iff they are on the same page and their y coordinates differ by at
// most tolerance from the line's first fragment. Lines are returned in
// reading order: by page, then top of page first.
func AssembleLines(fragments []pdf.Fragment, tolerance float64) []Line {
	byPage := make(map[int][]pdf.Fragment)
	var pages []int
	for _, f := range fragments {
		if _, seen := byPage[f.Page]; !seen {
			pages = append(pages, f.Page)
		}
		byPage[f.Page] = append(byPage[f.Page], f)
	}
	sort.Ints(pages)

	var lines []Line
	for _, page := range pages {
		lines = append(lines, assemblePage(page, byPage[page], tolerance)...)
	}
	return lines
}

func assemblePage(page int, fragments []pdf.Fragment, tolerance float64) []Line {
	var lines []Line

	for _, f := range fragments {
		placed := false
		for i := range lines {
			if abs(f.Y-lines[i].Y) <= tolerance {
				lines[i].Tokens = append(lines[i].Tokens, f)
				placed = true
				break
			}
		}
		if !placed {
			lines = append(lines, Line{Page: page, Y: f.Y, Tokens: []pdf.Fragment{f}})
		}
	}

	// Top of page first.
	sort.SliceStable(lines, func(i, j int) bool {
		return lines[i].Y > lines[j].Y
	})

	for i := range lines {
		tokens := lines[i].Tokens
		sort.SliceStable(tokens, func(a, b int) bool {
			return tokens[a].X < tokens[b].X
		})
	}

	return lines
}

// Flatten returns the fragments of lines in reading order.
func Flatten(lines []Line) []pdf.Fragment {
	var fragments []pdf.Fragment
	for _, line := range lines {
		fragments = append(fragments, line.Tokens...)
	}
	return fragments
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
