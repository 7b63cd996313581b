package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/toggley/internal/cli/styles"
	"github.com/bnema/toggley/internal/domain/entity"
)

var toggleCmd = &cobra.Command{
	Use:   "toggle",
	Short: "Switch to the opposite mode",
	Long: `Ask the running daemon to switch themes, exactly like a click on
the toolbar button.`,
	RunE: runToggle,
}

func init() {
	rootCmd.AddCommand(toggleCmd)
}

func runToggle(cmd *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	result, err := a.Client.Toggle(a.Ctx())
	if err != nil {
		return fmt.Errorf("toggle: %w", err)
	}

	out := cmd.OutOrStdout()
	if !result.Switched {
		fmt.Fprintln(out, a.Theme.WarningStyle.Render(styles.IconWarning+" theme not installed, nothing changed"))
		return nil
	}

	icon := styles.IconSun
	if result.Mode == entity.ModeDark {
		icon = styles.IconMoon
	}
	fmt.Fprintf(out, "%s %s %s\n",
		a.Theme.Highlight.Render(icon),
		a.Theme.Normal.Render(result.Mode.String()),
		a.Theme.Subtle.Render(result.ThemeID))
	return nil
}
