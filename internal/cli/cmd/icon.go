package cmd

import (
	"fmt"
	"os"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/bnema/toggley/internal/cli/styles"
	"github.com/bnema/toggley/internal/domain/entity"
	"github.com/bnema/toggley/internal/domain/validation"
	"github.com/bnema/toggley/internal/infrastructure/icon"
)

var (
	iconMode  string
	iconColor string
	iconOut   string
	iconCopy  bool
)

var iconCmd = &cobra.Command{
	Use:   "icon",
	Short: "Print the toolbar icon as SVG",
	Long: `Print the toolbar icon the daemon currently shows.

With --mode the icon is drawn locally for that mode, without the daemon.

Examples:
  toggley icon                           # current icon from the daemon
  toggley icon --mode dark --color red   # draw one locally
  toggley icon --copy                    # copy the data URI to the clipboard`,
	RunE: runIcon,
}

func init() {
	rootCmd.AddCommand(iconCmd)
	iconCmd.Flags().StringVar(&iconMode, "mode", "", "draw locally for this mode (light, dark, system)")
	iconCmd.Flags().StringVar(&iconColor, "color", "", "stroke color for a local icon")
	iconCmd.Flags().StringVarP(&iconOut, "out", "o", "", "write the SVG to a file instead of stdout")
	iconCmd.Flags().BoolVar(&iconCopy, "copy", false, "copy the data URI to the clipboard")
}

func runIcon(cmd *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	var ic *entity.Icon
	if iconMode != "" {
		ic, err = renderLocalIcon(iconMode, iconColor, a.Config.Icon.Size, a.Config.GlyphMapping())
	} else {
		ic, err = a.Client.Icon(a.Ctx())
	}
	if err != nil {
		return fmt.Errorf("icon: %w", err)
	}

	if iconCopy {
		if err := clipboard.WriteAll(ic.DataURI); err != nil {
			return fmt.Errorf("copy to clipboard: %w", err)
		}
		fmt.Fprintln(cmd.ErrOrStderr(), a.Theme.SuccessStyle.Render(styles.IconCheck+" data URI copied"))
	}

	if iconOut != "" {
		if err := os.WriteFile(iconOut, []byte(ic.SVG), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", iconOut, err)
		}
		return nil
	}
	if !iconCopy {
		fmt.Fprintln(cmd.OutOrStdout(), ic.SVG)
	}
	return nil
}

func renderLocalIcon(modeArg, color string, size int, glyphs entity.GlyphMapping) (*entity.Icon, error) {
	mode, err := entity.ParseMode(modeArg)
	if err != nil {
		return nil, err
	}
	if color != "" && !validation.IsCSSColor(color) {
		return nil, fmt.Errorf("invalid color %q", color)
	}

	stroke := entity.ResolveIconColor(color, entity.ThemeColors{}, mode == entity.ModeDark)
	ic, err := icon.NewRenderer().Render(glyphs.For(mode), stroke, size)
	if err != nil {
		return nil, err
	}
	ic.Mode = mode
	return ic, nil
}
