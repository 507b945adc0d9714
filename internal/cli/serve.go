package cli

import (
	"github.com/spf13/cobra"

	"github.com/ironsheep/bounding-box/internal/server"
)

func newServeCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the MCP tool server on stdin/stdout",
		Long: `serve speaks the Model Context Protocol (JSON-RPC 2.0, one message per line)
on stdin/stdout. Logs go to stderr or the configured log file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			srv := server.New(server.Options{
				Config:  a.cfg,
				Logger:  a.logger,
				Version: Version,
			})
			return srv.Serve(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}
