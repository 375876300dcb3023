package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newRootCommand() *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("GRIDPATH")
	v.AutomaticEnv()
	v.SetDefault("plain-cost", 1)
	v.SetDefault("swamp-cost", 5)
	v.SetDefault("max-rooms", 16)
	v.SetDefault("max-ops", 2000)
	v.SetDefault("max-cost", 0) // 0 means unbounded, see newSearchCommand
	v.SetDefault("heuristic-weight", 1.0)

	var configPath string

	root := &cobra.Command{
		Use:           "gridpathctl",
		Short:         "Run and inspect gridpath multi-room searches",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if configPath == "" {
				return nil
			}
			v.SetConfigFile(configPath)
			if err := v.ReadInConfig(); err != nil {
				return fmt.Errorf("gridpathctl: reading config %s: %w", configPath, err)
			}

			return nil
		},
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML config file overriding defaults")

	root.AddCommand(newVersionCommand())
	root.AddCommand(newLoadTerrainCommand())
	root.AddCommand(newSearchCommand(v))

	return root
}
