package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/toggley/internal/application/usecase"
	"github.com/bnema/toggley/internal/cli/styles"
	"github.com/bnema/toggley/internal/infrastructure/config"
)

var (
	configKeysJSON bool
	configForce    bool
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long:  `Locate, initialize and document the toggley config file.`,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	RunE:  runConfigPath,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the current configuration to the config file",
	Long: `Write the loaded configuration, defaults included, back to config.toml
in a stable key order. An existing file is only rewritten with --force.`,
	RunE: runConfigInit,
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Write config.schema.json next to the config file",
	RunE:  runConfigSchema,
}

var configKeysCmd = &cobra.Command{
	Use:   "keys [section]",
	Short: "List every configuration key with its default",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runConfigKeys,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configPathCmd, configInitCmd, configSchemaCmd, configKeysCmd)
	configInitCmd.Flags().BoolVar(&configForce, "force", false, "overwrite an existing config file")
	configKeysCmd.Flags().BoolVar(&configKeysJSON, "json", false, "output as JSON")
}

func runConfigPath(cmd *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), a.Manager.ConfigFile())
	return nil
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	path := a.Manager.ConfigFile()
	if _, statErr := os.Stat(path); statErr == nil && !configForce {
		fmt.Fprintln(cmd.OutOrStdout(), a.Theme.WarningStyle.Render(
			fmt.Sprintf("%s %s exists, use --force to rewrite it", styles.IconWarning, path)))
		return nil
	}

	if err := config.WriteConfigOrdered(a.Config, path); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), a.Theme.SuccessStyle.Render(styles.IconCheck+" wrote "+path))
	return nil
}

func runConfigSchema(cmd *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	path, err := config.GenerateSchemaFile(a.Manager.ConfigDir())
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), a.Theme.SuccessStyle.Render(styles.IconCheck+" wrote "+path))
	return nil
}

func runConfigKeys(cmd *cobra.Command, args []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	input := usecase.GetConfigSchemaInput{}
	if len(args) == 1 {
		input.Section = args[0]
	}
	out, err := usecase.NewGetConfigSchemaUseCase(config.NewSchemaProvider()).Execute(a.Ctx(), input)
	if err != nil {
		return err
	}

	renderer := styles.NewConfigSchemaRenderer(a.Theme)
	if configKeysJSON {
		js, err := renderer.RenderJSON(out.Keys)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), js)
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), renderer.Render(out.Keys))
	return nil
}
