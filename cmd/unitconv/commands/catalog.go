package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"unitconv/internal/catalog"
)

func categoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List unit categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, c := range catalog.Categories() {
				fmt.Fprintf(out, "%s (%s)\n", c.Name, c.Strategy)
			}
			return nil
		},
	}
}

// units <category>: category names may contain spaces, so all args are joined.
func unitsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "units <category>",
		Short: "List the units of a category",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			units, err := catalog.UnitsOf(strings.Join(args, " "))
			if err != nil {
				return err
			}
			for _, u := range units {
				fmt.Fprintln(cmd.OutOrStdout(), u)
			}
			return nil
		},
	}
}
