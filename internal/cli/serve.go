package cli

import (
	"github.com/spf13/cobra"

	"github.com/ironsheep/image-mosaic/internal/server"
	"github.com/ironsheep/image-mosaic/internal/session"
)

// NewServeCommand creates the "serve" command, which speaks MCP over stdio.
func NewServeCommand(global *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve mosaic tools to an MCP client over stdin/stdout",
		Long: `Run a JSON-RPC 2.0 MCP server on stdin/stdout. Clients can build a mosaic,
look at a preview or a single cell, and save it, all within one session.

Build logs go to stderr so that stdout carries protocol messages only.`,

		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			srv := server.New(session.New(), global.logger())
			return srv.Serve(cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}
