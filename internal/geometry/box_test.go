package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBox_Area(t *testing.T) {
	tests := []struct {
		name string
		box  Box
		want int
	}{
		{"single cell", NewBox(1, 1, 1, 1), 1},
		{"row", NewBox(1, 1, 1, 3), 3},
		{"column", NewBox(1, 1, 2, 1), 2},
		{"square", NewBox(2, 2, 3, 3), 4},
		{"rectangle", NewBox(2, 3, 5, 4), 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.box.Area())
			assert.Equal(t, tt.box.Height()*tt.box.Width(), tt.box.Area())
		})
	}
}

func TestBox_Overlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b Box
		want bool
	}{
		{"identical", NewBox(1, 1, 2, 2), NewBox(1, 1, 2, 2), true},
		{"nested", NewBox(1, 1, 5, 5), NewBox(2, 2, 3, 3), true},
		{"shared corner cell", NewBox(1, 1, 2, 2), NewBox(2, 2, 3, 3), true},
		{"shared edge row", NewBox(1, 1, 2, 3), NewBox(2, 1, 4, 1), true},
		{"adjacent rows", NewBox(1, 1, 1, 3), NewBox(2, 1, 2, 3), false},
		{"adjacent columns", NewBox(1, 1, 3, 1), NewBox(1, 2, 3, 2), false},
		{"diagonal neighbours", NewBox(1, 1, 1, 1), NewBox(2, 2, 2, 2), false},
		{"far apart", NewBox(1, 1, 1, 1), NewBox(3, 3, 3, 3), false},
		{"x intersects only", NewBox(1, 1, 3, 1), NewBox(2, 3, 2, 4), false},
		{"cross shape", NewBox(2, 1, 2, 5), NewBox(1, 3, 4, 3), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Overlaps(tt.b))
			assert.Equal(t, tt.want, tt.b.Overlaps(tt.a), "overlap must be symmetric")
		})
	}
}

func TestBox_Contains(t *testing.T) {
	b := NewBox(2, 2, 3, 4)
	assert.True(t, b.Contains(Point{X: 2, Y: 2}))
	assert.True(t, b.Contains(Point{X: 3, Y: 4}))
	assert.False(t, b.Contains(Point{X: 1, Y: 2}))
	assert.False(t, b.Contains(Point{X: 3, Y: 5}))
}

func TestBox_String(t *testing.T) {
	assert.Equal(t, "(1,1)(1,1)", NewBox(1, 1, 1, 1).String())
	assert.Equal(t, "(2,3)(10,12)", NewBox(2, 3, 10, 12).String())
}

func TestSortByTopLeft(t *testing.T) {
	in := []Box{
		NewBox(3, 1, 3, 1),
		NewBox(1, 4, 2, 5),
		NewBox(1, 1, 1, 2),
		NewBox(2, 2, 2, 2),
	}
	got := SortByTopLeft(in)

	require.Len(t, got, 4)
	assert.Equal(t, "(1,1)(1,2)(1,4)(2,5)(2,2)(2,2)(3,1)(3,1)", Format(got))
	assert.Equal(t, NewBox(3, 1, 3, 1), in[0], "input must not be reordered")
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "", Format(nil))
	assert.Equal(t, "", Format([]Box{}))
	assert.Equal(t, "(1,1)(1,1)(3,3)(3,3)", Format([]Box{NewBox(1, 1, 1, 1), NewBox(3, 3, 3, 3)}))
}
