package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/example/gridboard/internal/config"
	"github.com/example/gridboard/internal/wire"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or create the configuration file",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := wire.Config()
		if err != nil {
			return err
		}

		shown := *cfg
		if shown.APIKey != "" {
			shown.APIKey = "********"
		}
		data, err := yaml.Marshal(&shown)
		if err != nil {
			return fmt.Errorf("failed to marshal config: %w", err)
		}
		fmt.Printf("# %s\n%s", config.Dir(wire.Root()), data)
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config.yaml",
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")
		root := wire.Root()

		_, err := config.LoadConfig(root)
		if err == nil && !force {
			return fmt.Errorf("config already exists in %s (use --force to overwrite)", config.Dir(root))
		}
		if err != nil && !errors.Is(err, os.ErrNotExist) && !force {
			return err
		}

		if err := config.SaveConfig(root, config.Default()); err != nil {
			return err
		}
		fmt.Printf("✓ Wrote %s/config.yaml\n", config.Dir(root))
		return nil
	},
}

// ConfigCmd returns the config command
func ConfigCmd() *cobra.Command {
	configInitCmd.Flags().BoolP("force", "f", false, "Overwrite an existing config")

	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)

	return configCmd
}
