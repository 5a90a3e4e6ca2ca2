package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective runner configuration",
	Long: `Print the configuration a mission would use, as YAML.

The output is a complete config file: save it to
~/.runner/configs/runner.yaml and edit the values you want to change.

Examples:
  runner config
  runner config --difficulty hard > hard.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	addTuningFlags(configCmd)
}

func runConfig(cmd *cobra.Command, _ []string) error {
	tuning, err := loadTuning()
	if err != nil {
		return err
	}
	data, err := tuning.Marshal()
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), string(data))
	return nil
}
