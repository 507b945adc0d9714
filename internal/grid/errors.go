package grid

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput indicates there are no lines, or the first line is empty.
	ErrEmptyInput = errors.New("grid: input must have at least one non-empty line")
	// ErrInvalidGrid indicates ragged rows or a character other than Marked/Blank.
	ErrInvalidGrid = errors.New("grid: invalid grid")
)

// ValidationError describes the first offending position found by Parse.
// It unwraps to ErrInvalidGrid.
type ValidationError struct {
	Row    int    // 0-based line index
	Col    int    // 0-based column, -1 for a length mismatch
	Reason string // Human-readable description
}

func (e *ValidationError) Error() string {
	if e.Col < 0 {
		return fmt.Sprintf("grid: row %d: %s", e.Row, e.Reason)
	}
	return fmt.Sprintf("grid: row %d col %d: %s", e.Row, e.Col, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidGrid
}
