package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ironsheep/bounding-box/internal/ocr"
)

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		// Replaces the root hook: version needs no configuration.
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		Run: func(cmd *cobra.Command, args []string) {
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "bounding-box %s\n", Version)
			fmt.Fprintf(w, "  Build time: %s\n", BuildTime)
			fmt.Fprintf(w, "  Git commit: %s\n", GitCommit)
			if ocr.Available() {
				fmt.Fprintf(w, "  Tesseract:  %s\n", ocr.Version())
			} else {
				fmt.Fprintln(w, "  Tesseract:  not compiled in")
			}
		},
	}
}
