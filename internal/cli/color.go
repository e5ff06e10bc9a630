package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ironsheep/palette-tools-mcp/internal/colormodel"
)

var convertCmd = &cobra.Command{
	Use:   "convert <color>",
	Short: "Convert between HSL and hex",
	Long: `Convert an HSL string to hex, or a hex color to HSL.

Examples:
  palette-mcp convert "265 85% 50%"   # #6D13EC
  palette-mcp convert "#6D13EC"       # 265 85% 50%
  palette-mcp convert f80             # 32 100% 50%`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

var contrastCmd = &cobra.Command{
	Use:   "contrast <color1> <color2>",
	Short: "Show the WCAG contrast ratio of two colors",
	Long: `Show the WCAG contrast ratio of two colors. Each color may be HSL or hex.

Examples:
  palette-mcp contrast "0 0% 10%" "0 0% 100%"
  palette-mcp contrast "#6D13EC" white   # fails: white is not a color`,
	Args: cobra.ExactArgs(2),
	RunE: runContrast,
}

func init() {
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(contrastCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	in := args[0]
	if c, ok := colormodel.ParseHSL(in); ok {
		fmt.Fprintln(cmd.OutOrStdout(), colormodel.HSLToHex(c.String()))
		return nil
	}
	if colormodel.ValidateHexColor(in) {
		fmt.Fprintln(cmd.OutOrStdout(), colormodel.HexToHSL(colormodel.ExpandHex(in)))
		return nil
	}
	return fmt.Errorf("%q is neither an HSL string nor a hex color", in)
}

func runContrast(cmd *cobra.Command, args []string) error {
	c1, err := toHSL(args[0])
	if err != nil {
		return err
	}
	c2, err := toHSL(args[1])
	if err != nil {
		return err
	}

	ratio := colormodel.ContrastRatio(c1, c2)
	fmt.Fprintf(cmd.OutOrStdout(), "%.2f:1 %s\n", ratio, colormodel.Level(ratio))
	return nil
}

// toHSL accepts an HSL string or a hex color and returns canonical HSL.
func toHSL(s string) (string, error) {
	if c, ok := colormodel.ParseHSL(s); ok {
		return c.String(), nil
	}
	if colormodel.ValidateHexColor(s) {
		return colormodel.HexToHSL(colormodel.ExpandHex(s)), nil
	}
	return "", fmt.Errorf("%q is neither an HSL string nor a hex color", s)
}
