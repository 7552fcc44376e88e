// Package cli provides the contrast audit command.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vellumapp/vellum/internal/color"
	"github.com/vellumapp/vellum/internal/theme"
)

func init() {
	rootCmd.AddCommand(contrastCmd)
}

var contrastCmd = &cobra.Command{
	Use:   "contrast [id]",
	Short: "Audit a theme's WCAG contrast",
	Long: `Report WCAG contrast ratios for a theme's role pairings. Without an
argument the current theme is audited. Two hex colors can be passed
instead of a theme id to check an arbitrary pairing.`,
	Args: cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 2 {
			return auditPair(cmd, args[0], args[1])
		}

		mgr, cleanup, err := openManager()
		if err != nil {
			return err
		}
		defer cleanup()

		var t theme.Theme
		if len(args) == 1 {
			var ok bool
			t, ok = mgr.FindTheme(args[0])
			if !ok {
				return fmt.Errorf("theme %q not found", args[0])
			}
		} else {
			t = mgr.CurrentTheme()
		}

		return auditTheme(cmd, t)
	},
}

func auditTheme(cmd *cobra.Command, t theme.Theme) error {
	fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n\n", t.Name, t.ID)

	pairs := []struct {
		name   string
		fg, bg color.Color
	}{
		{"text on background", t.Colors.Text, t.Colors.Background},
		{"secondary on background", t.Colors.Secondary, t.Colors.Background},
		{"accent on background", t.Colors.Accent, t.Colors.Background},
		{"text on surface", t.Colors.Text, t.Colors.Surface},
	}

	var rows [][]string
	for _, p := range pairs {
		ratio := color.ContrastRatio(p.fg, p.bg)
		rows = append(rows, []string{
			p.name,
			fmt.Sprintf("%.2f:1", ratio),
			string(color.Level(ratio)),
		})
	}
	return writeTable(cmd.OutOrStdout(), []string{"PAIR", "RATIO", "WCAG"}, rows)
}

func auditPair(cmd *cobra.Command, fgHex, bgHex string) error {
	fg, err := color.ParseHex(fgHex)
	if err != nil {
		return err
	}
	bg, err := color.ParseHex(bgHex)
	if err != nil {
		return err
	}

	ratio := color.ContrastRatio(fg, bg)
	fmt.Fprintf(cmd.OutOrStdout(), "%s on %s: %.2f:1 (%s)\n", fgHex, bgHex, ratio, color.Level(ratio))
	return nil
}
