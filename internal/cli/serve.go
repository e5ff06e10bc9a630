package cli

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/ironsheep/palette-tools-mcp/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the MCP protocol over stdin/stdout",
	Long: `Serve the palette tools over MCP (JSON-RPC 2.0, one message per line).

Configure it in your MCP client; this is also what running palette-mcp with
no command does.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	if cfg.Debug() {
		log.Printf("Palette MCP Server v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
	}

	srv := server.New(cfg)
	return srv.Serve(cmd.InOrStdin(), cmd.OutOrStdout())
}
