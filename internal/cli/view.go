package cli

import (
	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/ironsheep/bounding-box/internal/view"
)

func newViewCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "view [grid-file]",
		Short: "Explore a grid and its bounding boxes in the terminal",
		Long: `view shows the grid with the reported boxes shaded. Keys:

  a          toggle single-best / all-boxes mode
  tab        highlight the next candidate box (shift-tab: previous)
  q, esc     quit`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := readGrid(cmd, args)
			if err != nil {
				return err
			}

			screen, err := a.newScreen()
			if err != nil {
				return err
			}
			defer screen.Fini()

			v, err := view.New(screen, g, view.Options{AllBoxes: a.mode(cmd), Logger: a.logger})
			if err != nil {
				return err
			}
			v.Run(cmd.Context())
			return nil
		},
	}
}

// openTerminal opens and initialises the controlling terminal. tcell reads
// keys from the tty, so the grid itself may still arrive on stdin.
func openTerminal() (tcell.Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	return screen, nil
}
