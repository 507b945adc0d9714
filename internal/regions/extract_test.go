package regions

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ironsheep/bounding-box/internal/geometry"
	"github.com/ironsheep/bounding-box/internal/grid"
)

func mustParse(t *testing.T, lines ...string) *grid.Grid {
	t.Helper()
	g, err := grid.Parse(lines)
	require.NoError(t, err)
	return g
}

func TestExtract_Scenarios(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  string // Format of boxes in first-appearance order
	}{
		{"diagonal corners", []string{"*--", "---", "--*"}, "(1,1)(1,1)(3,3)(3,3)"},
		{"single row", []string{"***"}, "(1,1)(1,3)"},
		{"single column", []string{"*", "*", "-"}, "(1,1)(2,1)"},
		{"all blank", []string{"---", "---"}, ""},
		{"single cell", []string{"---", "--*"}, "(2,3)(2,3)"},
		{"square", []string{"----", "-**-", "-**-", "----"}, "(2,2)(3,3)"},
		{"l shape", []string{"*--", "*--", "***"}, "(1,1)(3,3)"},
		{"u shape joins late", []string{"*-*", "*-*", "***"}, "(1,1)(3,3)"},
		{"two groups", []string{"**--", "**--", "---*"}, "(1,1)(2,2)(3,4)(3,4)"},
		{"checkerboard", []string{"*-", "-*"}, "(1,1)(1,1)(2,2)(2,2)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			regions := Extract(mustParse(t, tt.lines...))
			assert.Equal(t, tt.want, geometry.Format(Boxes(regions)))
		})
	}
}

func TestExtract_EmptyIsNonNil(t *testing.T) {
	regions := Extract(mustParse(t, "--"))
	assert.NotNil(t, regions)
	assert.Empty(t, regions)
}

func TestExtract_CellCounts(t *testing.T) {
	regions := Extract(mustParse(t, "*-*", "*-*", "***", "---", "*--"))
	require.Len(t, regions, 2)
	assert.Equal(t, 7, regions[0].Cells)
	assert.Equal(t, 1, regions[1].Cells)
}

func TestLabel_DiagonalNotConnected(t *testing.T) {
	labels := Label(mustParse(t, "*-", "-*"))
	assert.NotEqual(t, labels[0], labels[3])
	assert.Equal(t, -1, labels[1])
	assert.Equal(t, -1, labels[2])
}

// randomGrid builds a deterministic pseudo-random grid.
func randomGrid(t *testing.T, rng *rand.Rand, rows, cols int, density float64) *grid.Grid {
	t.Helper()
	cells := make([][]bool, rows)
	for r := range cells {
		cells[r] = make([]bool, cols)
		for c := range cells[r] {
			cells[r][c] = rng.Float64() < density
		}
	}
	g, err := grid.FromCells(cells)
	require.NoError(t, err)
	return g
}

// floodLabels is an independent BFS labelling used to cross-check Label.
func floodLabels(g *grid.Grid) []int {
	rows, cols := g.Rows(), g.Cols()
	out := make([]int, rows*cols)
	for i := range out {
		out[i] = -1
	}
	next := 0
	for p := range out {
		if !g.MarkedAt(p) || out[p] >= 0 {
			continue
		}
		queue := []int{p}
		out[p] = next
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			ur, uc := u/cols, u%cols
			for _, d := range [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
				vr, vc := ur+d[0], uc+d[1]
				if !g.Marked(vr, vc) {
					continue
				}
				v := vr*cols + vc
				if out[v] < 0 {
					out[v] = next
					queue = append(queue, v)
				}
			}
		}
		next++
	}
	return out
}

func TestLabel_MatchesFloodFill(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 50; i++ {
		g := randomGrid(t, rng, 1+rng.Intn(15), 1+rng.Intn(15), 0.55)
		got := Label(g)
		want := floodLabels(g)

		// Same partition: two cells share a label in one iff they share it in the other.
		for a := range got {
			for b := a + 1; b < len(got); b++ {
				if got[a] < 0 || got[b] < 0 {
					assert.Equal(t, want[a] < 0, got[a] < 0)
					continue
				}
				require.Equal(t, want[a] == want[b], got[a] == got[b],
					"cells %d and %d disagree on grid %q", a, b, g.Lines())
			}
		}
	}
}

func TestExtract_PartitionAndMinimality(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 50; i++ {
		g := randomGrid(t, rng, 1+rng.Intn(12), 1+rng.Intn(12), 0.45)
		labels := Label(g)
		regions := Extract(g)
		cols := g.Cols()

		total := 0
		for _, r := range regions {
			total += r.Cells
		}
		assert.Equal(t, g.MarkedCount(), total, "regions must partition the marked cells")

		// Map root -> region via the region's top-left-most first cell.
		byRoot := make(map[int]Region)
		for p, root := range labels {
			if root < 0 {
				continue
			}
			if _, ok := byRoot[root]; !ok {
				byRoot[root] = regions[len(byRoot)]
			}
			pt := geometry.Point{X: p/cols + 1, Y: p%cols + 1}
			assert.True(t, byRoot[root].Box.Contains(pt), "cell %v outside its box %v", pt, byRoot[root].Box)
		}
		require.Len(t, regions, len(byRoot))

		// Every border line of every box touches a member cell.
		for root, r := range byRoot {
			var top, bottom, left, right bool
			for p, l := range labels {
				if l != root {
					continue
				}
				x, y := p/cols+1, p%cols+1
				top = top || x == r.Box.TopLeft.X
				bottom = bottom || x == r.Box.BottomRight.X
				left = left || y == r.Box.TopLeft.Y
				right = right || y == r.Box.BottomRight.Y
			}
			assert.True(t, top && bottom && left && right, "box %v is not minimal", r.Box)
		}
	}
}

func TestExtract_SharedTopLeft(t *testing.T) {
	// The isolated corner cell and the hook around it have the same top-left
	// corner; they are reported in the row-major order of their first cell.
	regions := Extract(mustParse(t, "*-*", "--*", "***"))
	require.Len(t, regions, 2)
	assert.Equal(t, geometry.NewBox(1, 1, 1, 1), regions[0].Box)
	assert.Equal(t, geometry.NewBox(1, 1, 3, 3), regions[1].Box)

	sorted := geometry.SortByTopLeft(Boxes(regions))
	assert.Equal(t, "(1,1)(1,1)(1,1)(3,3)", geometry.Format(sorted), "sort must be stable on ties")
}
