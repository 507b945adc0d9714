package regions

import (
	"github.com/ironsheep/bounding-box/internal/geometry"
	"github.com/ironsheep/bounding-box/internal/grid"
)

// Region is one maximal 4-connected set of marked cells, represented by its
// minimal bounding box in box-space and the number of member cells.
type Region struct {
	Box   geometry.Box `json:"box"`
	Cells int          `json:"cells"`
}

// Label runs union-find over the marked cells of g and returns, for every
// row-major cell index, the root index of its region or -1 for blank cells.
//
// Each marked cell is unioned with its marked neighbour above and to the
// left, which covers every orthogonal edge exactly once.
func Label(g *grid.Grid) []int {
	rows, cols := g.Rows(), g.Cols()
	ds := NewDisjointSet(rows * cols)

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if !g.Marked(r, c) {
				continue
			}
			p := r*cols + c
			if r > 0 && g.Marked(r-1, c) {
				ds.Union(p, p-cols)
			}
			if c > 0 && g.Marked(r, c-1) {
				ds.Union(p, p-1)
			}
		}
	}

	labels := make([]int, rows*cols)
	for p := range labels {
		if g.MarkedAt(p) {
			labels[p] = ds.Find(p)
		} else {
			labels[p] = -1
		}
	}
	return labels
}

// Extract returns one Region per connected region of g, ordered by the
// row-major position of each region's first cell. A grid with no marked
// cells yields an empty slice.
//
// Corners are folded in row-major order: component-wise min for the top-left
// and component-wise max for the bottom-right, using 1-based coordinates.
func Extract(g *grid.Grid) []Region {
	labels := Label(g)
	cols := g.Cols()

	index := make(map[int]int) // root -> position in out
	var out []Region

	for p, root := range labels {
		if root < 0 {
			continue
		}
		x, y := p/cols+1, p%cols+1

		i, seen := index[root]
		if !seen {
			index[root] = len(out)
			out = append(out, Region{Box: geometry.NewBox(x, y, x, y), Cells: 1})
			continue
		}

		b := &out[i].Box
		b.TopLeft.X = min(b.TopLeft.X, x)
		b.TopLeft.Y = min(b.TopLeft.Y, y)
		b.BottomRight.X = max(b.BottomRight.X, x)
		b.BottomRight.Y = max(b.BottomRight.Y, y)
		out[i].Cells++
	}
	if out == nil {
		out = []Region{}
	}
	return out
}

// Boxes projects regions onto their bounding boxes, preserving order.
func Boxes(regions []Region) []geometry.Box {
	boxes := make([]geometry.Box, len(regions))
	for i, r := range regions {
		boxes[i] = r.Box
	}
	return boxes
}
