package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/toggley/internal/cli/styles"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show what the daemon is doing",
	Long:  `Display the active mode and theme, the schedule, the menu toggles and the browser connection.`,
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	status, err := a.Client.Status(a.Ctx())
	if err != nil {
		return fmt.Errorf("daemon unreachable at %s: %w", a.Config.API.ListenAddr, err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), styles.NewStatusRenderer(a.Theme).Render(status))
	return nil
}
