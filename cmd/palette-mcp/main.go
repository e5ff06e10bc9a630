package main

import (
	"log"
	"os"

	"github.com/ironsheep/palette-tools-mcp/internal/cli"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Configure logging to stderr (stdout is for MCP protocol)
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	cli.Version = Version
	cli.BuildTime = BuildTime
	cli.GitCommit = GitCommit
	cli.Execute()
}
