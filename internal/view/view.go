// Package view is an interactive terminal viewer for a grid and its
// bounding boxes.
//
// Each grid cell occupies one terminal column. Reported boxes are shaded in
// their palette colour; Tab and Shift-Tab step a highlight through every
// candidate region, 'a' toggles between single-best and all-boxes mode, and
// q, Esc or Ctrl-C quit.
package view

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gdamore/tcell/v2"

	"github.com/ironsheep/bounding-box/internal/boundingbox"
	"github.com/ironsheep/bounding-box/internal/geometry"
	"github.com/ironsheep/bounding-box/internal/grid"
	"github.com/ironsheep/bounding-box/internal/imaging"
	"github.com/ironsheep/bounding-box/internal/logging"
)

const help = "[a] mode  [tab] next box  [q] quit"

// Options controls the initial viewer state.
type Options struct {
	AllBoxes bool
	Logger   *slog.Logger
}

// Viewer draws one grid on a tcell screen.
type Viewer struct {
	screen tcell.Screen
	grid   *grid.Grid
	logger *slog.Logger

	allBoxes bool
	result   *boundingbox.Result
	colors   []tcell.Color
	focus    int // candidate index, -1 when nothing is highlighted
}

// New analyses g and returns a viewer bound to screen. The screen must
// already be initialised.
func New(screen tcell.Screen, g *grid.Grid, opts Options) (*Viewer, error) {
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	v := &Viewer{
		screen:   screen,
		grid:     g,
		logger:   logger,
		allBoxes: opts.AllBoxes,
		focus:    -1,
	}
	if err := v.analyse(); err != nil {
		return nil, err
	}
	return v, nil
}

func (v *Viewer) analyse() error {
	res, err := boundingbox.AnalyzeGrid(context.Background(), v.grid, boundingbox.Options{
		AllBoxes: v.allBoxes,
		Logger:   v.logger,
	})
	if err != nil {
		return err
	}
	v.result = res

	palette := imaging.Palette(len(res.Candidates))
	v.colors = make([]tcell.Color, len(palette))
	for i, c := range palette {
		v.colors[i] = tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
	}
	return nil
}

// Result returns the analysis currently on screen.
func (v *Viewer) Result() *boundingbox.Result { return v.result }

// Focus returns the highlighted candidate index, or -1.
func (v *Viewer) Focus() int { return v.focus }

// Draw renders the grid followed by a two-line status area.
func (v *Viewer) Draw() {
	v.screen.Clear()

	shade := make(map[geometry.Point]tcell.Color)
	for _, b := range v.result.Reported {
		i := v.candidateIndex(b)
		if i < 0 {
			continue
		}
		for x := b.TopLeft.X; x <= b.BottomRight.X; x++ {
			for y := b.TopLeft.Y; y <= b.BottomRight.Y; y++ {
				shade[geometry.Point{X: x, Y: y}] = v.colors[i]
			}
		}
	}

	var focused *geometry.Box
	if v.focus >= 0 {
		focused = &v.result.Candidates[v.focus].Box
	}

	for r := 0; r < v.grid.Rows(); r++ {
		for c := 0; c < v.grid.Cols(); c++ {
			ch := grid.Blank
			style := tcell.StyleDefault.Foreground(tcell.ColorGray)
			if v.grid.Marked(r, c) {
				ch = grid.Marked
				style = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
			}
			p := geometry.Point{X: r + 1, Y: c + 1}
			if bg, ok := shade[p]; ok {
				style = style.Background(bg)
			}
			if focused != nil && focused.Contains(p) {
				style = style.Reverse(true)
			}
			v.screen.SetContent(c, r, rune(ch), nil, style)
		}
	}

	y := v.grid.Rows() + 1
	v.drawText(0, y, v.status(), tcell.StyleDefault.Foreground(tcell.ColorYellow))
	v.drawText(0, y+1, help, tcell.StyleDefault.Foreground(tcell.ColorGray))
	v.screen.Show()
}

func (v *Viewer) status() string {
	out := v.result.Output
	if out == "" {
		out = "(none)"
	}
	s := fmt.Sprintf("%s  boxes: %s", v.result.Mode, out)
	if v.result.Overlapping {
		s += "  overlap"
	}
	if v.focus >= 0 {
		c := v.result.Candidates[v.focus]
		s += fmt.Sprintf("  [%d/%d %s cells=%d]", v.focus+1, len(v.result.Candidates), c.Box, c.Cells)
	}
	return s
}

func (v *Viewer) drawText(x, y int, text string, style tcell.Style) {
	for _, r := range text {
		v.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

func (v *Viewer) candidateIndex(b geometry.Box) int {
	for i, c := range v.result.Candidates {
		if c.Box == b {
			return i
		}
	}
	return -1
}

// HandleEvent applies ev and reports whether the viewer should keep running.
func (v *Viewer) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyTab:
			v.step(1)
		case tcell.KeyBacktab:
			v.step(-1)
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case 'a':
				v.allBoxes = !v.allBoxes
				if err := v.analyse(); err != nil {
					v.logger.Error("analysis failed", "error", err)
					return false
				}
				v.logger.Debug("mode toggled", "mode", v.result.Mode)
			}
		}
	case *tcell.EventResize:
		v.screen.Sync()
	case *tcell.EventInterrupt:
		return false
	}
	return true
}

func (v *Viewer) step(delta int) {
	n := len(v.result.Candidates)
	if n == 0 {
		return
	}
	if v.focus < 0 {
		if delta > 0 {
			v.focus = 0
		} else {
			v.focus = n - 1
		}
		return
	}
	v.focus = (v.focus + delta + n) % n
}

// Run draws and processes events until the user quits or ctx is done.
func (v *Viewer) Run(ctx context.Context) {
	stop := context.AfterFunc(ctx, func() {
		_ = v.screen.PostEvent(tcell.NewEventInterrupt(nil))
	})
	defer stop()

	v.Draw()
	for {
		ev := v.screen.PollEvent()
		if ev == nil || !v.HandleEvent(ev) {
			return
		}
		v.Draw()
	}
}
