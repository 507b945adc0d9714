package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ironsheep/bounding-box/internal/geometry"
)

var b = geometry.NewBox

func TestSelectNonOverlapping(t *testing.T) {
	tests := []struct {
		name  string
		boxes []geometry.Box
		want  string
	}{
		{"empty", nil, ""},
		{"single", []geometry.Box{b(2, 2, 3, 3)}, "(2,2)(3,3)"},
		{"disjoint sorted", []geometry.Box{b(3, 3, 3, 3), b(1, 1, 1, 1)}, "(1,1)(1,1)(3,3)(3,3)"},
		{
			"first in order wins over larger later box",
			[]geometry.Box{b(2, 1, 5, 5), b(1, 1, 2, 1)},
			"(1,1)(2,1)",
		},
		{
			"chain keeps first and third",
			[]geometry.Box{b(1, 1, 2, 2), b(2, 2, 3, 3), b(3, 3, 4, 4)},
			"(1,1)(2,2)(3,3)(4,4)",
		},
		{
			"skipped box does not block later boxes",
			[]geometry.Box{b(1, 1, 1, 2), b(1, 2, 3, 2), b(3, 2, 3, 2)},
			"(1,1)(1,2)(3,2)(3,2)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, geometry.Format(SelectNonOverlapping(tt.boxes)))
		})
	}
}

func TestSelectNonOverlapping_DoesNotMutate(t *testing.T) {
	in := []geometry.Box{b(3, 3, 3, 3), b(1, 1, 1, 1)}
	_ = SelectNonOverlapping(in)
	assert.Equal(t, b(3, 3, 3, 3), in[0])
}

func TestSelectNonOverlapping_FixedPoint(t *testing.T) {
	inputs := [][]geometry.Box{
		{b(1, 1, 3, 3), b(2, 2, 2, 2), b(4, 1, 4, 4), b(1, 5, 6, 6)},
		{b(1, 1, 1, 1), b(1, 1, 3, 3), b(2, 4, 2, 4)},
		{b(5, 5, 6, 6), b(1, 1, 5, 5), b(6, 1, 6, 1)},
	}
	for _, in := range inputs {
		once := SelectNonOverlapping(in)
		twice := SelectNonOverlapping(once)
		assert.Equal(t, once, twice)
		assert.False(t, HasOverlap(once))
	}
}

func TestHasOverlap(t *testing.T) {
	assert.False(t, HasOverlap(nil))
	assert.False(t, HasOverlap([]geometry.Box{b(1, 1, 1, 1)}))
	assert.False(t, HasOverlap([]geometry.Box{b(1, 1, 1, 1), b(2, 2, 2, 2), b(1, 3, 1, 3)}))
	assert.True(t, HasOverlap([]geometry.Box{b(1, 1, 1, 1), b(5, 5, 5, 5), b(1, 1, 3, 3)}))
}

func TestBest(t *testing.T) {
	_, ok := Best(nil)
	assert.False(t, ok)

	got, ok := Best([]geometry.Box{b(3, 3, 3, 3), b(1, 1, 1, 1)})
	require.True(t, ok)
	assert.Equal(t, b(1, 1, 1, 1), got, "equal areas fall back to smallest top-left")

	got, _ = Best([]geometry.Box{b(1, 1, 1, 1), b(4, 4, 5, 5), b(2, 1, 2, 3)})
	assert.Equal(t, b(4, 4, 5, 5), got)

	got, _ = Best([]geometry.Box{b(2, 5, 2, 6), b(2, 1, 3, 1)})
	assert.Equal(t, b(2, 1, 3, 1), got, "tie on x broken by y")
}

func TestResolve(t *testing.T) {
	overlapping := []geometry.Box{b(1, 1, 3, 3), b(3, 3, 3, 3), b(5, 1, 6, 2)}
	disjoint := []geometry.Box{b(3, 4, 3, 4), b(1, 1, 2, 2)}

	tests := []struct {
		name  string
		boxes []geometry.Box
		mode  Mode
		want  string
	}{
		{"single empty", nil, SingleBest, ""},
		{"all empty", []geometry.Box{}, AllBoxes, ""},
		{"single disjoint", disjoint, SingleBest, "(1,1)(2,2)"},
		{"all disjoint sorted", disjoint, AllBoxes, "(1,1)(2,2)(3,4)(3,4)"},
		{"single overlapping", overlapping, SingleBest, "(1,1)(3,3)"},
		{"all overlapping falls back", overlapping, AllBoxes, "(1,1)(3,3)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resolve(tt.boxes, tt.mode)
			assert.NotNil(t, got)
			assert.Equal(t, tt.want, geometry.Format(got))
		})
	}
}

func TestMode(t *testing.T) {
	assert.Equal(t, AllBoxes, ModeFromFlag(true))
	assert.Equal(t, SingleBest, ModeFromFlag(false))
	assert.Equal(t, "all-boxes", AllBoxes.String())
	assert.Equal(t, "single-best", SingleBest.String())
	assert.Equal(t, "unknown", Mode(9).String())
}
