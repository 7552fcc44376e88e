// Package cli provides the interactive preview command.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/vellumapp/vellum/internal/tui"
)

func init() {
	rootCmd.AddCommand(previewCmd)
}

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Preview themes interactively",
	Long:  "Browse themes with live swatches and contrast grades, and select one.",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !hasTTY() {
			return cmd.Help()
		}

		mgr, cleanup, err := openManager()
		if err != nil {
			return err
		}
		defer cleanup()

		return tui.Run(mgr)
	},
}
