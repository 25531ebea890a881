package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

var showJSON bool

var showCmd = &cobra.Command{
	Use:   "show [name]",
	Short: "Show a page",
	Long:  `Show a page by its full name: header values then the raw body, or a JSON object with --json.`,
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

		out := cmd.OutOrStdout()
		if showJSON {
			return writeJSON(out, newPageView(p, true))
		}

		meta := p.Metadata()
		keys := make([]string, 0, len(meta))
		for k := range meta {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		fmt.Fprintf(out, "path: %s\n", p.Path())
		for _, k := range keys {
			fmt.Fprintf(out, "%s: %v\n", k, meta[k])
		}
		fmt.Fprintf(out, "\n%s", p.Body())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().BoolVar(&showJSON, "json", false, "Output in JSON format")
}
