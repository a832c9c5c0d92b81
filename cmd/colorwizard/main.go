package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	colorwizard "github.com/joshrandall8478/color-wizard"
	"github.com/joshrandall8478/color-wizard/internal/format"
	"github.com/joshrandall8478/color-wizard/internal/resolver"
	"github.com/joshrandall8478/color-wizard/internal/webcolor"
)

var (
	flagPalette   string
	flagLabelOnly bool
	flagCheck     bool
	version       = "dev" // Injected at build time via ldflags
)

var rootCmd = &cobra.Command{
	Use:     "colorwizard",
	Short:   "Resolve color descriptions like #FF5733, coral, or \"dark red\" to RGB values",
	Version: version,
}

var resolveCmd = &cobra.Command{
	Use:   "resolve <description>...",
	Short: "Resolve a color description to its hex value",
	Long: "Resolve a color description to its hex value. The description may be a hex code\n" +
		"(#FF5733, F08), a CSS color name (coral), or a phrase such as \"dark red\" or\n" +
		"\"pastel pink\".",
	Args: cobra.MinimumNArgs(1),
	RunE: runResolve,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the base colors and modifiers understood by descriptions",
	RunE:  runList,
}

var fmtCmd = &cobra.Command{
	Use:   "fmt [files...]",
	Short: "Format palette files",
	Long:  "Format one or more palette HCL files in-place. Prints the name of each file that was modified.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runFmt,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version)
	},
}

func init() {
	resolveCmd.Flags().StringVar(&flagPalette, "palette", "", "path to a palette HCL file with extra named colors")
	resolveCmd.Flags().BoolVar(&flagLabelOnly, "label-only", false, "print only the role label")
	fmtCmd.Flags().BoolVarP(&flagCheck, "check", "c", false, "check if files are formatted (do not write changes)")
	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(fmtCmd)
	rootCmd.AddCommand(versionCmd)
}

func runResolve(cmd *cobra.Command, args []string) error {
	input := strings.Join(args, " ")

	pipe := colorwizard.NewPipeline(nil)
	if flagPalette != "" {
		pal, err := colorwizard.LoadPalette(flagPalette)
		if err != nil {
			return fmt.Errorf("loading palette: %w", err)
		}
		pipe = colorwizard.NewPipeline(pal)
	}

	res, ok := pipe.Resolve(input)
	if !ok {
		return fmt.Errorf("could not recognize %q as a color; try a hex code like #FF5733, "+
			"a color name like coral, or a description like \"dark red\"", input)
	}

	if flagLabelOnly {
		fmt.Fprintln(cmd.OutOrStdout(), resolver.RoleLabel(res.Hex))
		return nil
	}

	nearest, nearestColor := webcolor.Nearest(res.Color)
	fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", res.Hex, res.Color.RGB())
	if nearestColor == res.Color {
		fmt.Fprintf(cmd.OutOrStdout(), "name:  %s\n", nearest)
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "near:  %s (%s)\n", nearest, nearestColor.Hex())
	}
	fmt.Fprintf(cmd.OutOrStdout(), "label: %s\n", resolver.RoleLabel(res.Hex))
	return nil
}

func runList(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "Base colors:")
	for _, name := range resolver.BaseColorNames() {
		anchor, _ := resolver.BaseColor(name)
		fmt.Fprintf(out, "  %-8s hsl(%g, %g%%, %g%%)\n", name, anchor.H, anchor.S, anchor.L)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Modifiers:")
	for _, name := range resolver.ModifierNames() {
		m, _ := resolver.ModifierFor(name)
		var parts []string
		if m.HueDelta != 0 {
			parts = append(parts, fmt.Sprintf("hue %+g", m.HueDelta))
		}
		if m.SatFactor != 1 {
			parts = append(parts, fmt.Sprintf("saturation x%g", m.SatFactor))
		}
		if m.LightDelta != 0 {
			parts = append(parts, fmt.Sprintf("lightness %+g", m.LightDelta))
		}
		fmt.Fprintf(out, "  %-8s %s\n", name, strings.Join(parts, ", "))
	}

	return nil
}

func runFmt(cmd *cobra.Command, args []string) error {
	hasErrors := false
	needsFormatting := false

	for _, path := range args {
		data, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error reading %s: %v\n", path, err)
			hasErrors = true
			continue
		}

		content := string(data)
		formatted, err := format.Format(content)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error formatting %s: %v\n", path, err)
			hasErrors = true
			continue
		}

		if formatted == content {
			continue
		}

		fmt.Fprintln(cmd.OutOrStdout(), path)
		needsFormatting = true

		if !flagCheck {
			if err := os.WriteFile(path, []byte(formatted), 0o644); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Error writing %s: %v\n", path, err)
				hasErrors = true
			}
		}
	}

	if hasErrors || (flagCheck && needsFormatting) {
		os.Exit(1)
	}

	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
