package main

import (
	"fmt"

	"github.com/katalvlaran/gridpath/terrain"
	"github.com/spf13/cobra"
)

func newLoadTerrainCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "load-terrain <pack.json>",
		Short: "Validate a terrain pack file and report how many rooms it contains",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := loadTerrainPack(args[0])
			if err != nil {
				return err
			}

			registry := terrain.NewRegistry()
			if err := registry.LoadTerrain(entries); err != nil {
				return fmt.Errorf("gridpathctl: %w", err)
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "loaded %d room(s)\n", len(entries))

			return err
		},
	}
}
