// Package cli provides theme management commands.
package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vellumapp/vellum/internal/color"
	"github.com/vellumapp/vellum/internal/theme"
)

var (
	// themes create flags
	createName       string
	createBackground string
	createText       string
	createAccent     string
	createSecondary  string
	createSurface    string
	createAppearance string
	createSelect     bool

	// themes export flags
	exportOutput string
)

func init() {
	rootCmd.AddCommand(themesCmd)
	themesCmd.AddCommand(themesListCmd)
	themesCmd.AddCommand(themesShowCmd)
	themesCmd.AddCommand(themesCreateCmd)
	themesCmd.AddCommand(themesDeleteCmd)
	themesCmd.AddCommand(themesSelectCmd)
	themesCmd.AddCommand(themesExportCmd)
	themesCmd.AddCommand(themesImportCmd)

	themesCreateCmd.Flags().StringVar(&createName, "name", "", "display name (required)")
	themesCreateCmd.Flags().StringVar(&createBackground, "background", "", "background color, #RRGGBB (required)")
	themesCreateCmd.Flags().StringVar(&createText, "text", "", "text color, #RRGGBB (required)")
	themesCreateCmd.Flags().StringVar(&createAccent, "accent", "", "accent color, #RRGGBB (required)")
	themesCreateCmd.Flags().StringVar(&createSecondary, "secondary", "", "secondary color, #RRGGBB (required)")
	themesCreateCmd.Flags().StringVar(&createSurface, "surface", "", "surface color, #RRGGBB (required)")
	themesCreateCmd.Flags().StringVar(&createAppearance, "appearance", "light", "preferred appearance (light, dark)")
	themesCreateCmd.Flags().BoolVar(&createSelect, "select", false, "select the theme after creating it")
	themesCreateCmd.MarkFlagRequired("name")
	themesCreateCmd.MarkFlagRequired("background")
	themesCreateCmd.MarkFlagRequired("text")
	themesCreateCmd.MarkFlagRequired("accent")
	themesCreateCmd.MarkFlagRequired("secondary")
	themesCreateCmd.MarkFlagRequired("surface")

	themesExportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "write to file instead of stdout")
}

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "Manage reading themes",
}

var themesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all themes",
	RunE: func(cmd *cobra.Command, args []string) error {
		mgr, cleanup, err := openManager()
		if err != nil {
			return err
		}
		defer cleanup()

		current := mgr.CurrentTheme()
		headers := []string{"", "ID", "NAME", "KIND", "APPEARANCE", "TEXT/BG", ""}

		var rows [][]string
		for _, t := range mgr.AllThemes() {
			active := " "
			if t.ID == current.ID {
				active = "*"
			}

			ratio := color.ContrastRatio(t.Colors.Text, t.Colors.Background)
			swatch := ""
			if hasTTY() {
				swatch = swatchRow(t.Colors)
			}

			rows = append(rows, []string{
				active,
				t.ID,
				t.Name,
				string(t.Variant),
				string(t.Appearance),
				fmt.Sprintf("%.2f:1 %s", ratio, color.Level(ratio)),
				swatch,
			})
		}

		return writeTable(cmd.OutOrStdout(), headers, rows)
	},
}

var themesShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a theme's colors and contrast",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		mgr, cleanup, err := openManager()
		if err != nil {
			return err
		}
		defer cleanup()

		t, ok := mgr.FindTheme(args[0])
		if !ok {
			return fmt.Errorf("theme %q not found", args[0])
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s (%s, %s appearance)\n\n", t.Name, t.ID, t.Appearance)

		roles := []struct {
			name string
			c    color.Color
		}{
			{"background", t.Colors.Background},
			{"text", t.Colors.Text},
			{"accent", t.Colors.Accent},
			{"secondary", t.Colors.Secondary},
			{"surface", t.Colors.Surface},
		}

		var rows [][]string
		for _, role := range roles {
			swatch := ""
			if hasTTY() {
				swatch = lipgloss.NewStyle().Background(lipgloss.Color(role.c.Hex())).Render("    ")
			}
			rows = append(rows, []string{role.name, role.c.Hex(), swatch})
		}
		return writeTable(out, []string{"ROLE", "HEX", ""}, rows)
	},
}

var themesCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a custom theme",
	RunE: func(cmd *cobra.Command, args []string) error {
		palette, err := parsePaletteFlags()
		if err != nil {
			return err
		}

		appearance, err := parseAppearance(createAppearance)
		if err != nil {
			return err
		}

		mgr, cleanup, err := openManager()
		if err != nil {
			return err
		}
		defer cleanup()

		created := mgr.CreateCustom(createName, palette, appearance)
		if createSelect {
			mgr.Select(created)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "created theme %s (%s)\n", created.Name, created.ID)
		return nil
	},
}

var themesDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a custom theme",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		mgr, cleanup, err := openManager()
		if err != nil {
			return err
		}
		defer cleanup()

		if t, ok := mgr.FindTheme(args[0]); ok && !t.IsCustom() {
			return fmt.Errorf("theme %q is built in and cannot be deleted", args[0])
		}

		mgr.DeleteCustom(args[0])
		return nil
	},
}

var themesSelectCmd = &cobra.Command{
	Use:   "select <id>",
	Short: "Make a theme current",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		mgr, cleanup, err := openManager()
		if err != nil {
			return err
		}
		defer cleanup()

		t, ok := mgr.FindTheme(args[0])
		if !ok {
			return fmt.Errorf("theme %q not found", args[0])
		}

		mgr.Select(t)
		fmt.Fprintf(cmd.OutOrStdout(), "selected %s\n", t.Name)
		return nil
	},
}

var themesExportCmd = &cobra.Command{
	Use:   "export <id>",
	Short: "Export a theme as JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		mgr, cleanup, err := openManager()
		if err != nil {
			return err
		}
		defer cleanup()

		t, ok := mgr.FindTheme(args[0])
		if !ok {
			return fmt.Errorf("theme %q not found", args[0])
		}

		data, err := mgr.ExportTheme(t)
		if err != nil {
			return err
		}

		if exportOutput != "" {
			return os.WriteFile(exportOutput, append(data, '\n'), 0600)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	},
}

var themesImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import a theme from exported JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}

		mgr, cleanup, err := openManager()
		if err != nil {
			return err
		}
		defer cleanup()

		imported, err := mgr.ImportTheme(data)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "imported %s as %s\n", imported.Name, imported.ID)
		return nil
	},
}

func parsePaletteFlags() (theme.Palette, error) {
	var p theme.Palette
	for _, f := range []struct {
		name string
		raw  string
		dst  *color.Color
	}{
		{"background", createBackground, &p.Background},
		{"text", createText, &p.Text},
		{"accent", createAccent, &p.Accent},
		{"secondary", createSecondary, &p.Secondary},
		{"surface", createSurface, &p.Surface},
	} {
		c, err := color.ParseHex(f.raw)
		if err != nil {
			return theme.Palette{}, fmt.Errorf("invalid --%s: %w", f.name, err)
		}
		*f.dst = c
	}
	return p, nil
}

func parseAppearance(s string) (theme.Appearance, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "light":
		return theme.AppearanceLight, nil
	case "dark":
		return theme.AppearanceDark, nil
	default:
		return "", fmt.Errorf("invalid appearance %q (want light or dark)", s)
	}
}

func swatchRow(p theme.Palette) string {
	var b strings.Builder
	for _, c := range []color.Color{p.Background, p.Text, p.Accent, p.Secondary, p.Surface} {
		b.WriteString(lipgloss.NewStyle().Background(lipgloss.Color(c.Hex())).Render("  "))
	}
	return b.String()
}
