// Package cli provides schedule policy commands.
package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vellumapp/vellum/internal/schedule"
)

var (
	scheduleMode      string
	scheduleLight     string
	scheduleDark      string
	scheduleThreshold float64
)

func init() {
	rootCmd.AddCommand(scheduleCmd)
	scheduleCmd.AddCommand(scheduleShowCmd)
	scheduleCmd.AddCommand(scheduleSetCmd)

	scheduleSetCmd.Flags().StringVar(&scheduleMode, "mode", "", "switching policy: manual, system, scheduled, ambient (required)")
	scheduleSetCmd.Flags().StringVar(&scheduleLight, "light", "", "light theme start time, HH:MM (scheduled mode)")
	scheduleSetCmd.Flags().StringVar(&scheduleDark, "dark", "", "dark theme start time, HH:MM (scheduled mode)")
	scheduleSetCmd.Flags().Float64Var(&scheduleThreshold, "threshold", -1, "ambient light threshold in [0,1] (ambient mode)")
	scheduleSetCmd.MarkFlagRequired("mode")
}

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Manage automatic theme switching",
}

var scheduleShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current switching policy",
	RunE: func(cmd *cobra.Command, args []string) error {
		mgr, cleanup, err := openManager()
		if err != nil {
			return err
		}
		defer cleanup()

		s := mgr.Settings()
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "mode:       %s\n", s.Mode)
		fmt.Fprintf(out, "light from: %s\n", s.LightStart)
		fmt.Fprintf(out, "dark from:  %s\n", s.DarkStart)
		fmt.Fprintf(out, "threshold:  %.2f\n", s.AmbientThreshold)
		return nil
	},
}

var scheduleSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Replace the switching policy",
	RunE: func(cmd *cobra.Command, args []string) error {
		mode := schedule.Mode(strings.ToLower(strings.TrimSpace(scheduleMode)))
		if !mode.Valid() {
			return fmt.Errorf("invalid mode %q (want manual, system, scheduled or ambient)", scheduleMode)
		}

		mgr, cleanup, err := openManager()
		if err != nil {
			return err
		}
		defer cleanup()

		s := mgr.Settings()
		s.Mode = mode

		if scheduleLight != "" {
			s.LightStart, err = parseTimeOfDay(scheduleLight)
			if err != nil {
				return fmt.Errorf("invalid --light: %w", err)
			}
		}
		if scheduleDark != "" {
			s.DarkStart, err = parseTimeOfDay(scheduleDark)
			if err != nil {
				return fmt.Errorf("invalid --dark: %w", err)
			}
		}
		if scheduleThreshold >= 0 {
			if scheduleThreshold > 1 {
				return fmt.Errorf("invalid --threshold %v: want a value in [0,1]", scheduleThreshold)
			}
			s.AmbientThreshold = scheduleThreshold
		}

		mgr.UpdateSettings(s)

		fmt.Fprintf(cmd.OutOrStdout(), "schedule mode set to %s\n", mode)
		return nil
	},
}

func parseTimeOfDay(s string) (schedule.TimeOfDay, error) {
	parts := strings.SplitN(strings.TrimSpace(s), ":", 2)
	if len(parts) != 2 {
		return schedule.TimeOfDay{}, fmt.Errorf("want HH:MM, got %q", s)
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return schedule.TimeOfDay{}, fmt.Errorf("want HH:MM, got %q", s)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return schedule.TimeOfDay{}, fmt.Errorf("want HH:MM, got %q", s)
	}

	t := schedule.TimeOfDay{Hour: hour, Minute: minute}
	if !t.Valid() {
		return schedule.TimeOfDay{}, fmt.Errorf("%q is out of range", s)
	}
	return t, nil
}
