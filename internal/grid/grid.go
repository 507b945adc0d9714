// Package grid parses and validates the rectangular character grids that
// region extraction runs on.
//
// A grid is written as lines of two symbols: Marked ('*') and Blank ('-').
// Every line must have the length of the first line. Parse reports
// ErrEmptyInput for no input and ErrInvalidGrid (as a *ValidationError) for
// ragged rows or unknown symbols; no partial grid is ever returned.
package grid

import "strings"

// Recognised grid symbols.
const (
	Marked = '*'
	Blank  = '-'
)

// Grid is an immutable rows × cols rectangle of marked/blank cells.
// Cells are stored row-major: index = row*cols + col.
type Grid struct {
	rows, cols int
	cells      []bool
}

// Parse validates lines and builds a Grid.
//
// Lines are expected to be trimmed already with blank lines removed.
// Validation stops at the first problem: lines are checked in order, each
// first for its length and then for its characters left to right.
//
// Complexity: O(rows×cols).
func Parse(lines []string) (*Grid, error) {
	if len(lines) == 0 || len(lines[0]) == 0 {
		return nil, ErrEmptyInput
	}
	rows, cols := len(lines), len(lines[0])
	cells := make([]bool, rows*cols)

	for r, line := range lines {
		if len(line) != cols {
			return nil, &ValidationError{Row: r, Col: -1,
				Reason: "length " + itoa(len(line)) + " differs from first line length " + itoa(cols)}
		}
		for c := 0; c < cols; c++ {
			switch line[c] {
			case Marked:
				cells[r*cols+c] = true
			case Blank:
			default:
				return nil, &ValidationError{Row: r, Col: c,
					Reason: "unrecognised symbol " + quoteByte(line[c])}
			}
		}
	}

	return &Grid{rows: rows, cols: cols, cells: cells}, nil
}

// FromCells builds a Grid from a boolean matrix (true = marked).
// It deep-copies the input. Returns ErrEmptyInput for no rows or no
// columns and a *ValidationError for ragged rows.
func FromCells(values [][]bool) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyInput
	}
	rows, cols := len(values), len(values[0])
	cells := make([]bool, 0, rows*cols)
	for r, row := range values {
		if len(row) != cols {
			return nil, &ValidationError{Row: r, Col: -1,
				Reason: "length " + itoa(len(row)) + " differs from first row length " + itoa(cols)}
		}
		cells = append(cells, row...)
	}
	return &Grid{rows: rows, cols: cols, cells: cells}, nil
}

// Rows returns the number of lines in the grid.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the length of every line in the grid.
func (g *Grid) Cols() int { return g.cols }

// Len returns rows × cols.
func (g *Grid) Len() int { return len(g.cells) }

// Marked reports whether the cell at (row, col) is marked. Out-of-range
// positions are reported as blank.
func (g *Grid) Marked(row, col int) bool {
	if row < 0 || row >= g.rows || col < 0 || col >= g.cols {
		return false
	}
	return g.cells[row*g.cols+col]
}

// MarkedAt reports whether the cell at row-major index p is marked.
func (g *Grid) MarkedAt(p int) bool {
	return g.cells[p]
}

// MarkedCount returns the number of marked cells.
func (g *Grid) MarkedCount() int {
	n := 0
	for _, m := range g.cells {
		if m {
			n++
		}
	}
	return n
}

// Lines renders the grid back into its symbol form. Parse(g.Lines())
// yields a grid equal to g.
func (g *Grid) Lines() []string {
	lines := make([]string, g.rows)
	var sb strings.Builder
	for r := 0; r < g.rows; r++ {
		sb.Reset()
		for c := 0; c < g.cols; c++ {
			if g.cells[r*g.cols+c] {
				sb.WriteByte(Marked)
			} else {
				sb.WriteByte(Blank)
			}
		}
		lines[r] = sb.String()
	}
	return lines
}
