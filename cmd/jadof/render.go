package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var renderCmd = &cobra.Command{
	Use:   "render [name]",
	Short: "Render a page through its formatters",
	Long:  `Render a page body through the formatters its file extensions select, innermost last.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := openService()
		if err != nil {
			return err
		}

		p, err := findPage(cmd.Context(), svc, args[0])
		if err != nil {
			return err
		}

		out, err := svc.Render(p)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(renderCmd)
}
