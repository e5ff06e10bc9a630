package cli

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/ironsheep/palette-tools-mcp/internal/theme"
)

var randomCmd = &cobra.Command{
	Use:   "random",
	Short: "Generate a harmonious palette",
	Long: `Generate a palette from a random color harmony (complementary, triadic,
analogous or split-complementary). Background and text stay at the mode's
defaults.

Examples:
  palette-mcp random                       # CSS variables, light mode
  palette-mcp random --dark --format json
  palette-mcp random --seed 42             # Same palette every time`,
	Args: cobra.NoArgs,
	RunE: runRandom,
}

var exportCmd = &cobra.Command{
	Use:   "export [theme.json | -]",
	Short: "Export a theme's palette as CSS, Tailwind or JSON",
	Long: `Export the palette of a saved theme document. With no file the default
palette is exported; "-" reads the theme from stdin.

Examples:
  palette-mcp export --format tailwind theme.json
  palette-mcp export --dark
  cat theme.json | palette-mcp export -f json -`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExport,
}

var stylesheetCmd = &cobra.Command{
	Use:   "stylesheet [theme.json | -]",
	Short: "Print the :root stylesheet for a theme",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runStylesheet,
}

var checkCmd = &cobra.Command{
	Use:   "check [theme.json | -]",
	Short: "Check a theme's palette for WCAG contrast",
	Long: `Check text, button and accent contrast of a theme's palette and list
accent colors that are hard to tell apart.

Examples:
  palette-mcp check theme.json
  palette-mcp check --strict theme.json   # exit 1 if any pair fails AA`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheck,
}

// Flags
var (
	randomDark   bool
	randomFormat string
	randomSeed   int64
	exportFormat string
	exportDark   bool
	checkStrict  bool
)

func init() {
	rootCmd.AddCommand(randomCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(stylesheetCmd)
	rootCmd.AddCommand(checkCmd)

	randomCmd.Flags().BoolVar(&randomDark, "dark", false, "Use dark-mode background and text")
	randomCmd.Flags().StringVarP(&randomFormat, "format", "f", theme.FormatCSS, "Output format: css, tailwind, json")
	randomCmd.Flags().Int64Var(&randomSeed, "seed", 0, "Random seed (default: PALETTE_MCP_SEED, then the clock)")

	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", theme.FormatCSS, "Output format: css, tailwind, json")
	exportCmd.Flags().BoolVar(&exportDark, "dark", false, "Export the dark default palette when no theme is given")

	checkCmd.Flags().BoolVar(&checkStrict, "strict", false, "Fail if any pair is below AA")
}

func runRandom(cmd *cobra.Command, args []string) error {
	seed := randomSeed
	if seed == 0 {
		seed = cfg.Seed
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	p, _ := theme.RandomPalette(rand.New(rand.NewSource(seed)), randomDark)
	out, err := theme.Export(p, randomFormat)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}

func runExport(cmd *cobra.Command, args []string) error {
	p := theme.DefaultPaletteFor(exportDark)
	if len(args) > 0 {
		t, err := readTheme(cmd, args[0])
		if err != nil {
			return err
		}
		p = t.Colors
	}

	out, err := theme.Export(p, exportFormat)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}

func runStylesheet(cmd *cobra.Command, args []string) error {
	t := theme.Default()
	if len(args) > 0 {
		var err error
		if t, err = readTheme(cmd, args[0]); err != nil {
			return err
		}
	}
	fmt.Fprintln(cmd.OutOrStdout(), theme.ThemeStylesheet(t))
	return nil
}

func runCheck(cmd *cobra.Command, args []string) error {
	t := theme.Default()
	if len(args) > 0 {
		var err error
		if t, err = readTheme(cmd, args[0]); err != nil {
			return err
		}
	}

	report := theme.CheckContrast(t.Colors)

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PAIR\tRATIO\tLEVEL")
	for _, r := range report.Results {
		fmt.Fprintf(w, "%s\t%s\t%s\n", r.Name, r.Display, r.Level)
	}
	w.Flush()

	for _, s := range report.Similar {
		fmt.Fprintf(cmd.OutOrStdout(), "similar: %s and %s (distance %.2f)\n", s.First, s.Second, s.Distance)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%d passed, %d failed\n", report.Passed, report.Failed)

	if checkStrict && report.Failed > 0 {
		return fmt.Errorf("%d contrast pair(s) below AA", report.Failed)
	}
	return nil
}

// readTheme decodes a theme document from path, or from stdin for "-".
func readTheme(cmd *cobra.Command, path string) (theme.Theme, error) {
	var r io.Reader = cmd.InOrStdin()
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return theme.Theme{}, fmt.Errorf("failed to open theme: %w", err)
		}
		defer f.Close()
		r = f
	}
	return theme.Decode(r)
}
