package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/toggley/internal/cli/model"
	"github.com/bnema/toggley/internal/cli/styles"
	"github.com/bnema/toggley/internal/domain/entity"
	"github.com/bnema/toggley/internal/ui/options"
)

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Show or change the light/dark schedule",
	Long: `The schedule switches to the light theme at the light time and to
the dark theme at the dark time while "Use scheduled theme" is checked.`,
	RunE: runScheduleShow,
}

var scheduleShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the schedule",
	RunE:  runScheduleShow,
}

var scheduleSetCmd = &cobra.Command{
	Use:   "set LIGHT DARK",
	Short: "Set both switch times (HH:MM)",
	Example: `  toggley schedule set 07:00 19:30
  toggley schedule set 20:00 06:00   # light overnight`,
	Args: cobra.ExactArgs(2),
	RunE: runScheduleSet,
}

var scheduleEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Edit the schedule interactively",
	RunE:  runScheduleEdit,
}

func init() {
	rootCmd.AddCommand(scheduleCmd)
	scheduleCmd.AddCommand(scheduleShowCmd, scheduleSetCmd, scheduleEditCmd)
}

func runScheduleShow(cmd *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	schedule, err := a.Client.LoadSchedule(a.Ctx())
	if err != nil {
		return fmt.Errorf("load schedule: %w", err)
	}

	t := a.Theme
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, t.Title.Render(styles.IconClock+" Schedule"))
	fmt.Fprintf(out, "  %s %s\n", t.Subtle.Render(styles.IconSun+" light from"), t.Normal.Render(schedule.Light))
	fmt.Fprintf(out, "  %s %s\n", t.Subtle.Render(styles.IconMoon+" dark from "), t.Normal.Render(schedule.Dark))
	return nil
}

func runScheduleSet(cmd *cobra.Command, args []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	schedule := entity.Schedule{Light: args[0], Dark: args[1]}
	if err := schedule.Validate(); err != nil {
		return err
	}
	if err := a.Client.SaveSchedule(a.Ctx(), schedule); err != nil {
		return fmt.Errorf("save schedule: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), a.Theme.SuccessStyle.Render(
		fmt.Sprintf("%s light from %s, dark from %s", styles.IconCheck, schedule.Light, schedule.Dark)))
	return nil
}

func runScheduleEdit(_ *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	ctrl := options.NewController(a.Client)
	return runTUI(a, model.NewScheduleModel(a.Ctx(), a.Theme, ctrl))
}
