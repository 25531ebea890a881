package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/jadof/pkg/core"
)

var (
	listJSON  bool
	listWhere []string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the pages in the directory",
	Long:  `List pages by full name, optionally filtered with --where key=value (repeatable, all must match).`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cond, err := parseConditions(listWhere)
		if err != nil {
			return err
		}

		svc, err := openService()
		if err != nil {
			return err
		}

		var pages []*core.Page
		if len(cond) > 0 {
			pages, err = svc.Where(cmd.Context(), cond)
		} else {
			pages, err = svc.All(cmd.Context())
		}
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if listJSON {
			views := make([]pageView, 0, len(pages))
			for _, p := range pages {
				views = append(views, newPageView(p, false))
			}
			return writeJSON(out, views)
		}

		for _, p := range pages {
			// Basic output: full name, then the title when there is one
			if title, ok := p.Get("title").(string); ok && title != "" {
				fmt.Fprintf(out, "%s - %s\n", p.FullName(), title)
				continue
			}
			fmt.Fprintln(out, p.FullName())
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	listCmd.Flags().StringArrayVarP(&listWhere, "where", "w", nil, "Filter by attribute, key=value")
}
