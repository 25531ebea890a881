package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/jadof"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of jadof",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintf(cmd.OutOrStdout(), "jadof version %s\n", jadof.Version)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
