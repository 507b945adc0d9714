package cli

import (
	"github.com/spf13/cobra"

	"github.com/ironsheep/bounding-box/internal/boundingbox"
	"github.com/ironsheep/bounding-box/internal/imaging"
)

func newRenderCommand(a *app) *cobra.Command {
	var (
		output   string
		cellSize int
		showGrid bool
	)

	cmd := &cobra.Command{
		Use:   "render [grid-file] -o out.png",
		Short: "Draw a grid and its bounding boxes as a PNG",
		Long: `render reads a grid (from the named file or standard input), outlines every
candidate box in its own colour, shades the reported boxes and writes the
picture to --output. The result line is printed as for the root command.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := readGrid(cmd, args)
			if err != nil {
				return err
			}
			res, err := boundingbox.AnalyzeGrid(cmd.Context(), g, boundingbox.Options{
				AllBoxes: a.mode(cmd),
				Logger:   a.logger,
			})
			if err != nil {
				return err
			}

			opts := imaging.RenderOptions{
				CellSize:    a.cfg.Render.CellSize,
				Border:      a.cfg.Render.Border,
				ShowGrid:    a.cfg.Render.ShowGrid,
				Labels:      true,
				GridColor:   a.cfg.Render.GridColor,
				Background:  a.cfg.Render.Background,
				MarkedColor: a.cfg.Render.MarkedColor,
			}
			if cmd.Flags().Changed("cell-size") {
				opts.CellSize = cellSize
				opts.Border = min(opts.Border, cellSize/2)
			}
			if cmd.Flags().Changed("grid") {
				opts.ShowGrid = showGrid
			}

			img, err := imaging.Render(g, res.Candidates, res.Reported, opts)
			if err != nil {
				return err
			}
			if err := imaging.SavePNG(output, img); err != nil {
				return err
			}
			a.logger.Info("rendered", "path", output, "width", img.Bounds().Dx(), "height", img.Bounds().Dy())
			return a.report(cmd.OutOrStdout(), res.Output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "PNG file to write")
	cmd.Flags().IntVar(&cellSize, "cell-size", 16, "pixels per grid cell (default from config)")
	cmd.Flags().BoolVar(&showGrid, "grid", false, "draw cell separator lines (default from config)")
	_ = cmd.MarkFlagRequired("output")
	return cmd
}
