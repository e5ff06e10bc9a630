package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ironsheep/palette-tools-mcp/internal/config"
)

// Version information, filled in by main from ldflags.
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// cfg is loaded once before any command runs.
var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "palette-mcp",
	Short: "MCP server and CLI for theme palettes",
	Long: `palette-mcp converts and checks HSL theme colors, generates harmonious
palettes and exports them as CSS, Tailwind or JSON.

Run without a command it serves the MCP protocol over stdin/stdout.

Environment variables:
  PALETTE_MCP_LOG_LEVEL=debug   Enable debug logging
  PALETTE_MCP_SEED=<n>          Fix the random palette sequence
  PALETTE_MCP_OCR_LANG=<lang>   Tesseract language for legibility probes`,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
	RunE:              runServe,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadConfig(cmd *cobra.Command, args []string) error {
	c, err := config.Load()
	if err != nil {
		return err
	}
	cfg = c
	return nil
}
