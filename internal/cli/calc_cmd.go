package cli

import (
	"fmt"

	"github.com/alexanderramin/smartfarm/internal/cli/formatter"
	"github.com/alexanderramin/smartfarm/internal/garden"
	"github.com/spf13/cobra"
)

func newCalcCmd(app *App) *cobra.Command {
	var length, width, spacing float64

	cmd := &cobra.Command{
		Use:     "calc",
		Short:   "Calculate how many plants fit in a garden bed",
		Example: "  smartfarm calc --length 10 --width 4 --spacing 1.5",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			layout, err := garden.Calculate(length, width, spacing)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatLayout(layout))
			return nil
		},
	}

	cmd.Flags().Float64Var(&length, "length", 0, "Bed length")
	cmd.Flags().Float64Var(&width, "width", 0, "Bed width")
	cmd.Flags().Float64Var(&spacing, "spacing", 0, "Distance between plants, same unit as length and width")
	_ = cmd.MarkFlagRequired("length")
	_ = cmd.MarkFlagRequired("width")
	_ = cmd.MarkFlagRequired("spacing")

	return cmd
}
