// Package selection chooses a non-overlapping subset of region boxes and
// shapes the reported result.
//
// The sweep is a deterministic greedy heuristic, not a maximum independent
// set solver: boxes are visited in ascending top-left order and each box is
// kept iff it overlaps none of the boxes kept before it. Reference outputs
// depend on this exact order.
package selection

import (
	"github.com/ironsheep/bounding-box/internal/geometry"
)

// Mode selects how the reported boxes are shaped.
type Mode int

const (
	// SingleBest reports only the largest selected box.
	SingleBest Mode = iota
	// AllBoxes reports every candidate when no two candidates overlap, and
	// falls back to SingleBest otherwise.
	AllBoxes
)

// ModeFromFlag maps the all-boxes flag onto a Mode.
func ModeFromFlag(allBoxes bool) Mode {
	if allBoxes {
		return AllBoxes
	}
	return SingleBest
}

func (m Mode) String() string {
	switch m {
	case SingleBest:
		return "single-best"
	case AllBoxes:
		return "all-boxes"
	default:
		return "unknown"
	}
}

// SelectNonOverlapping sorts boxes ascending by top-left (stable, so equal
// corners keep their input order) and sweeps them once, keeping each box
// that overlaps nothing kept so far. Skipped boxes are never reconsidered.
// The input slice is not modified; the result is in sweep order.
//
// Complexity: O(n log n + n·k) where k is the number of kept boxes.
func SelectNonOverlapping(boxes []geometry.Box) []geometry.Box {
	sorted := geometry.SortByTopLeft(boxes)
	selected := make([]geometry.Box, 0, len(sorted))

	for _, b := range sorted {
		clear := true
		for _, s := range selected {
			if b.Overlaps(s) {
				clear = false
				break
			}
		}
		if clear {
			selected = append(selected, b)
		}
	}
	return selected
}

// HasOverlap reports whether any two boxes overlap.
//
// Complexity: O(n²).
func HasOverlap(boxes []geometry.Box) bool {
	for i := range boxes {
		for j := i + 1; j < len(boxes); j++ {
			if boxes[i].Overlaps(boxes[j]) {
				return true
			}
		}
	}
	return false
}

// Best returns the box with the largest area; ties go to the smallest
// top-left in ascending (x, y) order. ok is false for an empty input.
func Best(boxes []geometry.Box) (best geometry.Box, ok bool) {
	for i, b := range boxes {
		if i == 0 {
			best = b
			continue
		}
		if b.Area() > best.Area() || (b.Area() == best.Area() && geometry.Less(b, best)) {
			best = b
		}
	}
	return best, len(boxes) > 0
}

// Resolve returns the boxes to report for candidates under mode.
//
//   - SingleBest: the Best of the selected set, or nothing.
//   - AllBoxes: every candidate sorted by top-left when no candidate pair
//     overlaps; otherwise the SingleBest result.
func Resolve(candidates []geometry.Box, mode Mode) []geometry.Box {
	if mode == AllBoxes && !HasOverlap(candidates) {
		return geometry.SortByTopLeft(candidates)
	}
	if best, ok := Best(SelectNonOverlapping(candidates)); ok {
		return []geometry.Box{best}
	}
	return []geometry.Box{}
}
