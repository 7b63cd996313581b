package cmd

import (
	"github.com/spf13/cobra"

	"github.com/bnema/toggley/internal/cli/model"
	"github.com/bnema/toggley/internal/ui/options"
)

var optionsCmd = &cobra.Command{
	Use:     "options",
	Aliases: []string{"prefs-edit"},
	Short:   "Edit preferences interactively",
	Long: `Open the preferences page in the terminal: pick the light and dark
themes, override the icon colors and choose who controls the page color
scheme.`,
	RunE: runOptions,
}

func init() {
	rootCmd.AddCommand(optionsCmd)
}

func runOptions(_ *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	ctrl := options.NewController(a.Client)
	return runTUI(a, model.NewOptionsModel(a.Ctx(), a.Theme, ctrl))
}
