package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"shopadmin/ui"
)

func (a *app) listCmd() *cobra.Command {
	var opts ui.PageOptions
	cmd := &cobra.Command{
		Use:   "list <resource>",
		Short: "Print one page of a resource",
		Long: `Fetches a resource and prints one page of it, searched and sorted the same
way as the dashboard.

Resources: ` + strings.Join(ui.Resources, ", ") + `

Example:
  shopadmin list products --query phone --sort -price`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: ui.Resources,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := ui.RenderPage(cmd.Context(), a.console(), args[0], opts)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), out)
			return err
		},
	}
	cmd.Flags().StringVarP(&opts.Query, "query", "q", "", "case-insensitive search over every column")
	cmd.Flags().IntVar(&opts.Page, "page", 1, "1-based page number")
	cmd.Flags().IntVar(&opts.PageSize, "page-size", 10, "rows per page")
	cmd.Flags().StringVar(&opts.Sort, "sort", "", "column title to sort by, prefix with - for descending")
	return cmd
}
