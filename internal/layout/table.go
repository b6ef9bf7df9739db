package layout

import (
	"fmt"
	"strings"

	"github.com/payrollkit/payslip/internal/pdf"
)

// ColumnSpec describes one table column by its header title. Numeric columns
// are right-aligned by the document generator, so their values can start a
// little to the left of the header; their band therefore begins midway
// between the previous header and their own.
type ColumnSpec struct {
	Title   string
	Numeric bool
}

// Bands partitions the horizontal axis into one band per column. A band's
// left boundary is derived from the header token positions, so every x
// coordinate falls into exactly one column.
type Bands struct {
	bounds []float64
}

// ResolveBands locates each column's header token among the bold fragments
// and derives the band boundaries. All headers must be present.
func ResolveBands(fragments []pdf.Fragment, cols []ColumnSpec) (Bands, error) {
	leftEdges := make([]float64, len(cols))
	found := make([]bool, len(cols))

	remaining := len(cols)
	for _, f := range fragments {
		if !f.Bold {
			continue
		}
		for i, col := range cols {
			if !found[i] && f.Text == col.Title {
				leftEdges[i] = f.X
				found[i] = true
				remaining--
			}
		}
		if remaining == 0 {
			break
		}
	}

	for i, ok := range found {
		if !ok {
			return Bands{}, fmt.Errorf("column title %q not found", cols[i].Title)
		}
	}

	bounds := make([]float64, 0, len(cols)-1)
	for i := 1; i < len(cols); i++ {
		if cols[i].Numeric {
			bounds = append(bounds, (leftEdges[i-1]+leftEdges[i])/2)
		} else {
			bounds = append(bounds, leftEdges[i])
		}
	}

	return Bands{bounds: bounds}, nil
}

// ColumnOf returns the index of the band containing x.
func (b Bands) ColumnOf(x float64) int {
	col := 0
	for _, left := range b.bounds {
		if x >= left {
			col++
		}
	}
	return col
}

// Columns returns the number of bands.
func (b Bands) Columns() int {
	return len(b.bounds) + 1
}

// Row holds one table row's cells by column index. A nil cell means the
// document printed nothing in that band.
type Row []*string

// Cell returns the cell's text, or "" when empty.
func (r Row) Cell(i int) string {
	if i >= len(r) || r[i] == nil {
		return ""
	}
	return *r[i]
}

// TableRows converts lines of cell fragments into rows, assigning each token
// to the band its x coordinate falls within. Two tokens landing in one band
// of one row means the band table no longer matches the document, which is
// fatal for the caller.
//
// The generator wraps long cells onto a continuation row whose cells all end
// with a trailing space; such rows are merged as prefixes of the row below.
func TableRows(lines []Line, bands Bands) ([]Row, error) {
	var rows []Row

	for _, line := range lines {
		row := make(Row, bands.Columns())
		for _, token := range line.Tokens {
			col := bands.ColumnOf(token.X)
			if row[col] != nil {
				return nil, fmt.Errorf("two cells in column %d of one row (y=%.2f)", col, line.Y)
			}
			text := token.Text
			row[col] = &text
		}
		rows = append(rows, row)
	}

	return mergeWrapped(rows)
}

// mergeWrapped folds continuation rows into their successors.
func mergeWrapped(rows []Row) ([]Row, error) {
	for i := 0; i < len(rows); {
		if !continuation(rows[i]) {
			i++
			continue
		}
		if i+1 >= len(rows) {
			return nil, fmt.Errorf("wrapped row with nothing below it")
		}
		for col, cell := range rows[i] {
			if cell != nil {
				joined := *cell + rows[i+1].Cell(col)
				rows[i+1][col] = &joined
			}
		}
		rows = append(rows[:i], rows[i+1:]...)
	}
	return rows, nil
}

// continuation reports whether every printed cell of row ends with the
// trailing space the generator uses to mark a wrapped line.
func continuation(row Row) bool {
	for _, cell := range row {
		if cell != nil && !strings.HasSuffix(*cell, " ") {
			return false
		}
	}
	return true
}
