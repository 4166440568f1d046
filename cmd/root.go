package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kilianp07/pmrs/config"
)

// NewRootCmd builds the pmrs command tree.
func NewRootCmd() *cobra.Command {
	var cfgPath string
	root := &cobra.Command{
		Use:           "pmrs",
		Short:         "Deterministic emergency radio schedule generator",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "configuration file (yaml or json)")

	load := func() (*config.Config, error) {
		cfg, err := config.Load(cfgPath)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		return cfg, nil
	}
	root.AddCommand(newGenerateCmd(load), newBandsCmd(load))
	return root
}

// Execute runs the CLI.
func Execute() error { return NewRootCmd().Execute() }
