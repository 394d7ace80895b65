package commands

import (
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"unitconv/internal/catalog"
	"unitconv/internal/domain"
	"unitconv/internal/history"
)

// convert <value> <from> <to>: one-shot conversion through the dispatcher.
func convertCmd() *cobra.Command {
	var (
		category string
		asCSV    bool
	)
	cmd := &cobra.Command{
		Use:   "convert <value> <from> <to>",
		Short: "Convert a value between two units",
		Example: `  unitconv convert 10 meters feet
  unitconv convert 100 Celsius Fahrenheit
  unitconv convert -- -40 Fahrenheit Celsius
  unitconv convert 25 USD EUR --api-key $KEY`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("invalid value %q: %w", args[0], err)
			}
			from, to := args[1], args[2]
			if category == "" {
				if category, err = catalog.Infer(from, to); err != nil {
					return err
				}
			}

			r, err := appCtx.Converter.Convert(cmd.Context(), value, from, to, category)
			if err != nil {
				return fmt.Errorf("converting %s %s to %s: %w", args[0], from, to, err)
			}
			s := domain.State{
				Category:       category,
				FromUnit:       from,
				ToUnit:         to,
				InputValue:     value,
				ConvertedValue: r.Value,
				Formula:        r.Formula,
			}

			if asCSV {
				return csv.NewWriter(cmd.OutOrStdout()).WriteAll([][]string{history.Header, history.Row(s)})
			}
			return appCtx.Printer.WriteState(cmd.OutOrStdout(), s)
		},
	}
	cmd.Flags().StringVarP(&category, "category", "c", "", "category of the units (inferred when omitted)")
	cmd.Flags().BoolVar(&asCSV, "csv", false, "print the result as a CSV export row")
	return cmd
}
