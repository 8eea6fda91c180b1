package commands

import (
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/leapstyle/internal/cli/config"
	"github.com/leapstack-labs/leapstyle/internal/lsp"
)

// NewLSPCommand creates the lsp command.
func NewLSPCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lsp",
		Short: "Start the Language Server Protocol server",
		Long: `Start the LSP server for editor integration.

The server communicates over stdin/stdout using JSON-RPC. It publishes
diagnostics for open documents, offers quick fixes and a fix-all action,
and formats documents by applying every safe fix.

The project root, and with it .leapstyle.yaml, is taken from the
client's initialization request (rootUri parameter). Saving the config
file reloads it.`,
		Example: `  # Start LSP server (usually called by an editor)
  leapstyle lsp`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runLSP(cmd)
		},
	}

	// Editors commonly pass --stdio; it is the only transport.
	cmd.Flags().Bool("stdio", true, "Communicate over stdin/stdout")
	_ = cmd.Flags().MarkHidden("stdio")

	return cmd
}

func runLSP(cmd *cobra.Command) error {
	logger := config.GetLogger(cmd.Context())
	server := lsp.NewServerWithLogger(cmd.InOrStdin(), cmd.OutOrStdout(), logger)
	return server.Run()
}
