package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/void-sectors/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Prints the configuration a run would use, after the config search
and the difficulty preset, as YAML. Redirect it to a file to start a
custom config.

Search order:
  --config <path>
  ~/.sectors/configs/sectors.yaml
  ./configs/sectors.yaml
  built-in defaults

Examples:
  sectors config
  sectors config --difficulty easy > ~/.sectors/configs/sectors.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), string(data))
	return nil
}
