package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/bnema/toggley/internal/domain/entity"
	"github.com/bnema/toggley/internal/domain/validation"
)

var (
	resolveAt    string
	resolveLight string
	resolveDark  string
)

var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Print the mode a schedule picks for a time of day",
	Long: `Resolve the scheduled mode without talking to the daemon.

Light covers [light, dark) and wraps across midnight when the light
boundary is later than the dark one.

Examples:
  toggley resolve                          # now, default 06:00/18:00 schedule
  toggley resolve --at 23:30               # a given time
  toggley resolve --light 20:00 --dark 08:00 --at 02:00`,
	RunE: runResolve,
}

func init() {
	rootCmd.AddCommand(resolveCmd)
	resolveCmd.Flags().StringVar(&resolveAt, "at", "", "time of day as HH:MM (default: now)")
	resolveCmd.Flags().StringVar(&resolveLight, "light", entity.DefaultLightTime, "light boundary as HH:MM")
	resolveCmd.Flags().StringVar(&resolveDark, "dark", entity.DefaultDarkTime, "dark boundary as HH:MM")
}

func runResolve(cmd *cobra.Command, _ []string) error {
	minutes := entity.MinutesOfDay(time.Now())
	if resolveAt != "" {
		m, err := validation.ParseClock(resolveAt)
		if err != nil {
			return err
		}
		minutes = m
	}

	schedule := entity.Schedule{Light: resolveLight, Dark: resolveDark}
	mode, err := schedule.ModeAt(minutes)
	if err != nil {
		return fmt.Errorf("invalid schedule: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), mode)
	return nil
}
