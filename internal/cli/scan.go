package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ironsheep/bounding-box/internal/boundingbox"
	"github.com/ironsheep/bounding-box/internal/imaging"
	"github.com/ironsheep/bounding-box/internal/ocr"
)

func newScanCommand(a *app) *cobra.Command {
	var (
		cellSize  int
		threshold int
		useOCR    bool
		language  string
		printGrid bool
	)

	cmd := &cobra.Command{
		Use:   "scan <image>",
		Short: "Compute bounding boxes from an image",
		Long: `scan turns an image into a grid and prints its bounding boxes.

By default every --cell-size square block of pixels becomes one cell, marked
when most of its pixels are darker than --threshold. With --ocr the image is
instead read as text: a screenshot or photo of a typed '*'/'-' grid.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("cell-size") {
				cellSize = a.cfg.Image.CellSize
			}
			if !cmd.Flags().Changed("threshold") {
				threshold = a.cfg.Image.Threshold
			}
			if !cmd.Flags().Changed("language") {
				language = a.cfg.OCR.Language
			}
			if threshold < 1 || threshold > 255 {
				return fmt.Errorf("threshold must be in 1..255, got %d", threshold)
			}

			var lines []string
			if useOCR {
				read, err := ocr.ReadGridFile(args[0], ocr.Options{Language: language})
				if err != nil {
					return err
				}
				lines = read
			} else {
				g, err := imaging.LoadGrid(imaging.NewImageCache(), args[0], imaging.SampleOptions{
					CellSize:  cellSize,
					Threshold: uint8(threshold),
				})
				if err != nil {
					return err
				}
				lines = g.Lines()
			}
			a.logger.Debug("image scanned", "path", args[0], "ocr", useOCR, "rows", len(lines))

			if printGrid {
				fmt.Fprintln(cmd.OutOrStdout(), strings.Join(lines, "\n"))
			}
			return a.report(cmd.OutOrStdout(), boundingbox.OutputFor(boundingbox.Analyze(cmd.Context(), lines, boundingbox.Options{
				AllBoxes: a.mode(cmd),
				Logger:   a.logger,
			})))
		},
	}

	f := cmd.Flags()
	f.IntVar(&cellSize, "cell-size", 1, "pixels per grid cell along each side (default from config)")
	f.IntVar(&threshold, "threshold", 128, "luminance 1-255 below which a pixel is dark (default from config)")
	f.BoolVar(&useOCR, "ocr", false, "read the image as typed text with Tesseract")
	f.StringVar(&language, "language", "eng", "Tesseract language for --ocr (default from config)")
	f.BoolVar(&printGrid, "print-grid", false, "print the recognised grid before the result")
	return cmd
}
