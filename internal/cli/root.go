// Package cli implements the vellum command line interface.
package cli

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vellumapp/vellum/internal/config"
	"github.com/vellumapp/vellum/internal/logging"
	"github.com/vellumapp/vellum/internal/manager"
	"github.com/vellumapp/vellum/internal/store"
)

var (
	cfgFile string
	cfg     *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "vellum",
	Short: "Reading theme engine",
	Long: `Vellum manages reading themes for an e-reader host: built-in and
user-defined palettes, automatic light/dark switching, and WCAG
contrast auditing.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return err
		}
		logging.Setup(cfg.LogLevel, cfg.LogConsole)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ~/.config/vellum/config.yaml)")
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

// openManager builds a manager backed by the configured SQLite store.
// The returned cleanup closes the store.
func openManager() (*manager.Manager, func(), error) {
	st, err := store.OpenSQLite(cfg.StorePath)
	if err != nil {
		return nil, nil, err
	}

	mgr := manager.New(st, manager.WithTickInterval(cfg.TickInterval))
	return mgr, func() { st.Close() }, nil
}

func hasTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}
