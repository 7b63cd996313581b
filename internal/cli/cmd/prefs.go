package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/bnema/toggley/internal/cli"
	"github.com/bnema/toggley/internal/cli/styles"
	"github.com/bnema/toggley/internal/domain/entity"
)

var (
	prefsFormat string
	prefsYes    bool
)

var prefsCmd = &cobra.Command{
	Use:   "prefs",
	Short: "Inspect and reset the stored preferences",
}

var prefsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the light/dark theme pair and icon colors",
	RunE:  runPrefsShow,
}

var prefsExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Print the preferences as json, yaml or toml",
	RunE:  runPrefsExport,
}

var prefsResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore the default preferences",
	Long: `Restore the default theme pair and icon colors, then enable the
theme of the last used mode. The schedule is left alone.`,
	RunE: runPrefsReset,
}

func init() {
	rootCmd.AddCommand(prefsCmd)
	prefsCmd.AddCommand(prefsShowCmd, prefsExportCmd, prefsResetCmd)
	prefsExportCmd.Flags().StringVarP(&prefsFormat, "format", "f", "json", "output format: json, yaml or toml")
	prefsResetCmd.Flags().BoolVarP(&prefsYes, "yes", "y", false, "skip confirmation prompt")
}

func runPrefsShow(cmd *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	ctx := a.Ctx()

	prefs, err := a.Client.LoadPreferences(ctx)
	if err != nil {
		return fmt.Errorf("load preferences: %w", err)
	}
	names := map[string]string{}
	if themes, err := a.Client.ListThemes(ctx); err == nil {
		for _, th := range themes {
			names[th.ID] = th.Name
		}
	}

	fmt.Fprintln(cmd.OutOrStdout(), renderPrefs(a, prefs, names))
	return nil
}

func renderPrefs(a *cli.App, prefs entity.Preferences, names map[string]string) string {
	t := a.Theme
	themeLine := func(id string) string {
		if name, ok := names[id]; ok {
			return t.Normal.Render(name) + " " + t.Subtle.Render(id)
		}
		return t.Normal.Render(id)
	}
	colorLine := func(override bool, color string) string {
		if !override {
			return t.Subtle.Render("theme colors")
		}
		return t.Normal.Render(color)
	}
	scheme := "follow toggley mode"
	if prefs.PrefersColorSchemeOverride == entity.SchemeOverrideFirefox {
		scheme = "follow Firefox"
	}

	rows := [][2]string{
		{styles.IconSun + " light theme", themeLine(prefs.LightTheme)},
		{styles.IconMoon + " dark theme", themeLine(prefs.DarkTheme)},
		{"light icon", colorLine(prefs.LightColorOverride, prefs.LightColor)},
		{"dark icon", colorLine(prefs.DarkColorOverride, prefs.DarkColor)},
		{"page scheme", t.Normal.Render(scheme)},
		{"last used", t.Highlight.Render(prefs.LastUsed.String())},
	}

	var b strings.Builder
	b.WriteString(t.Title.Render("Preferences"))
	for _, r := range rows {
		b.WriteString("\n")
		b.WriteString(t.Subtle.Render(fmt.Sprintf("  %-14s", r[0])))
		b.WriteString(r[1])
	}
	return b.String()
}

func runPrefsExport(cmd *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	prefs, err := a.Client.LoadPreferences(a.Ctx())
	if err != nil {
		return fmt.Errorf("load preferences: %w", err)
	}
	return encodePrefs(cmd.OutOrStdout(), prefsFormat, prefs)
}

func encodePrefs(w io.Writer, format string, v any) error {
	switch strings.ToLower(format) {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml", "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	case "toml":
		return toml.NewEncoder(w).Encode(v)
	default:
		return fmt.Errorf("unknown format %q (want json, yaml or toml)", format)
	}
}

func runPrefsReset(cmd *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	if !prefsYes {
		if !a.Interactive() {
			return fmt.Errorf("refusing to reset without --yes on a non-interactive terminal")
		}
		ok, err := confirm(a, "Restore the default preferences?")
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(cmd.OutOrStdout(), a.Theme.Subtle.Render("cancelled"))
			return nil
		}
	}

	prefs, err := a.Client.RestoreDefaults(a.Ctx())
	if err != nil {
		return fmt.Errorf("restore defaults: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), a.Theme.SuccessStyle.Render(styles.IconCheck+" defaults restored"))
	fmt.Fprintln(cmd.OutOrStdout(), renderPrefs(a, prefs, nil))
	return nil
}
