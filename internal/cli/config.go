package cli

import (
	"fmt"

	"github.com/ariel-frischer/changelog-split/internal/config"
	clierrors "github.com/ariel-frischer/changelog-split/internal/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newConfigCmd() *cobra.Command {
	var (
		configPath string
		template   bool
	)

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the effective configuration",
		Long: `Show the configuration a split would use after applying defaults,
the project config file and CHANGELOG_SPLIT_* environment variables.`,
		Example: `  # Show the merged configuration
  changelog-split config

  # Print a commented config file to start from
  changelog-split config --template > .changelog-split.yml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if template {
				fmt.Fprint(cmd.OutOrStdout(), config.GetDefaultConfigTemplate())
				return nil
			}

			cfg, err := config.Load(configPath)
			if err != nil {
				return clierrors.InvalidConfig(err)
			}

			out, err := yaml.Marshal(cfg.ToMap())
			if err != nil {
				return fmt.Errorf("encoding configuration: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Config file (default: .changelog-split.yml in the current directory)")
	cmd.Flags().BoolVar(&template, "template", false, "Print a commented config template")

	return cmd
}
