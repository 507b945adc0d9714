// Package boundingbox runs the full pipeline from grid text to the reported
// boxes: validation, region extraction, non-overlap selection and formatting.
//
// Compute is the string-in/string-out entry point. Analyze exposes the same
// computation with every intermediate result for tools that need more than
// the formatted output.
//
// Every call is a pure, synchronous computation; nothing is shared between
// calls.
package boundingbox

import (
	"context"
	"errors"
	"log/slog"

	"github.com/ironsheep/bounding-box/internal/geometry"
	"github.com/ironsheep/bounding-box/internal/grid"
	"github.com/ironsheep/bounding-box/internal/logging"
	"github.com/ironsheep/bounding-box/internal/regions"
	"github.com/ironsheep/bounding-box/internal/selection"
)

// ErrorMarker is the output reported for an invalid grid.
const ErrorMarker = "Error"

// Options controls a single analysis.
type Options struct {
	// AllBoxes selects all-boxes mode instead of single-best mode.
	AllBoxes bool
	// Logger receives debug records; nil discards them.
	Logger *slog.Logger
}

// Result holds every stage of one analysis.
type Result struct {
	Rows        int              `json:"rows"`
	Cols        int              `json:"cols"`
	Candidates  []regions.Region `json:"candidates"`
	Selected    []geometry.Box   `json:"selected"`
	Reported    []geometry.Box   `json:"reported"`
	Overlapping bool             `json:"overlapping"`
	Mode        string           `json:"mode"`
	Output      string           `json:"output"`
}

// Compute validates lines and returns the formatted result:
//
//   - "" for empty input or a grid without marked cells,
//   - ErrorMarker for a ragged grid or an unknown symbol,
//   - otherwise the reported boxes in "(x1,y1)(x2,y2)" form.
func Compute(lines []string, allBoxes bool) string {
	res, err := Analyze(context.Background(), lines, Options{AllBoxes: allBoxes})
	return OutputFor(res, err)
}

// OutputFor maps an Analyze outcome onto the Compute string contract.
func OutputFor(res *Result, err error) string {
	switch {
	case err == nil:
		return res.Output
	case errors.Is(err, grid.ErrEmptyInput):
		return ""
	default:
		return ErrorMarker
	}
}

// Analyze validates lines and runs the pipeline. It returns
// grid.ErrEmptyInput or grid.ErrInvalidGrid for bad input, and ctx.Err()
// if the context is already done before extraction starts.
func Analyze(ctx context.Context, lines []string, opts Options) (*Result, error) {
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}

	g, err := grid.Parse(lines)
	if err != nil {
		if errors.Is(err, grid.ErrInvalidGrid) {
			logger.Warn("grid rejected", "error", err)
		}
		return nil, err
	}
	return AnalyzeGrid(ctx, g, Options{AllBoxes: opts.AllBoxes, Logger: logger})
}

// AnalyzeGrid runs extraction and selection on an already validated grid.
func AnalyzeGrid(ctx context.Context, g *grid.Grid, opts Options) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	mode := selection.ModeFromFlag(opts.AllBoxes)

	candidates := regions.Extract(g)
	boxes := regions.Boxes(candidates)
	selected := selection.SelectNonOverlapping(boxes)
	overlapping := len(selected) < len(boxes)
	reported := selection.Resolve(boxes, mode)

	res := &Result{
		Rows:        g.Rows(),
		Cols:        g.Cols(),
		Candidates:  candidates,
		Selected:    selected,
		Reported:    reported,
		Overlapping: overlapping,
		Mode:        mode.String(),
		Output:      geometry.Format(reported),
	}

	logger.Debug("grid analysed",
		"rows", res.Rows,
		"cols", res.Cols,
		"candidates", len(candidates),
		"selected", len(selected),
		"overlapping", overlapping,
		"mode", res.Mode,
	)
	return res, nil
}
