package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/lehigh-university-libraries/grobidmeta/config"
)

var configFile string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configFile)
		if err != nil {
			return err
		}

		source := config.Find(configFile)
		if source == "" {
			source = "embedded defaults (create " + config.UserConfigPath() + " to override)"
		}

		// Print as YAML
		out, err := yaml.Marshal(cfg)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "# source: %s\n%s", source, out)
		return nil
	},
}

func init() {
	configShowCmd.Flags().StringVar(&configFile, "config", "", "Config file")
	configCmd.AddCommand(configShowCmd)
}
