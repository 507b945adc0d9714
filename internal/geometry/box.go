package geometry

import (
	"sort"
	"strconv"
	"strings"
)

// Point is a 1-based corner coordinate in box-space.
type Point struct {
	X int `json:"x"` // Row + 1
	Y int `json:"y"` // Column + 1
}

// String renders the point as "(x,y)".
func (p Point) String() string {
	return "(" + strconv.Itoa(p.X) + "," + strconv.Itoa(p.Y) + ")"
}

// Box is an axis-aligned rectangle with inclusive corners.
//
// Invariant: TopLeft.X <= BottomRight.X and TopLeft.Y <= BottomRight.Y.
type Box struct {
	TopLeft     Point `json:"top_left"`
	BottomRight Point `json:"bottom_right"`
}

// NewBox builds a box from its corner coordinates. The caller must already
// hold ordered corners; no normalisation is performed.
func NewBox(x1, y1, x2, y2 int) Box {
	return Box{TopLeft: Point{X: x1, Y: y1}, BottomRight: Point{X: x2, Y: y2}}
}

// Height is the number of rows the box spans.
func (b Box) Height() int {
	return b.BottomRight.X - b.TopLeft.X + 1
}

// Width is the number of columns the box spans.
func (b Box) Width() int {
	return b.BottomRight.Y - b.TopLeft.Y + 1
}

// Area returns Height × Width. It is always at least 1 for a valid box.
func (b Box) Area() int {
	return b.Height() * b.Width()
}

// Contains reports whether p lies inside b, borders included.
func (b Box) Contains(p Point) bool {
	return p.X >= b.TopLeft.X && p.X <= b.BottomRight.X &&
		p.Y >= b.TopLeft.Y && p.Y <= b.BottomRight.Y
}

// Overlaps reports whether the closed x-intervals and closed y-intervals of
// both boxes intersect. A shared boundary row or column counts as overlap.
func (b Box) Overlaps(o Box) bool {
	return !(b.BottomRight.X < o.TopLeft.X ||
		b.TopLeft.X > o.BottomRight.X ||
		b.BottomRight.Y < o.TopLeft.Y ||
		b.TopLeft.Y > o.BottomRight.Y)
}

// String renders the box as "(x1,y1)(x2,y2)".
func (b Box) String() string {
	return b.TopLeft.String() + b.BottomRight.String()
}

// Less orders boxes ascending by TopLeft.X, then TopLeft.Y.
func Less(a, b Box) bool {
	if a.TopLeft.X != b.TopLeft.X {
		return a.TopLeft.X < b.TopLeft.X
	}
	return a.TopLeft.Y < b.TopLeft.Y
}

// SortByTopLeft returns a sorted copy of boxes; the input is left untouched.
func SortByTopLeft(boxes []Box) []Box {
	sorted := make([]Box, len(boxes))
	copy(sorted, boxes)
	sort.SliceStable(sorted, func(i, j int) bool {
		return Less(sorted[i], sorted[j])
	})
	return sorted
}

// Format concatenates the renderings of boxes in the order provided.
// An empty or nil slice renders as the empty string.
func Format(boxes []Box) string {
	var sb strings.Builder
	for _, b := range boxes {
		sb.WriteString(b.String())
	}
	return sb.String()
}
