package main

import (
	"fmt"

	"github.com/katalvlaran/gridpath/pathfinder"
	"github.com/spf13/cobra"
)

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the wire-compatible search version the core implements",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), pathfinder.Version)

			return err
		},
	}
}
