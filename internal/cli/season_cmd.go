package cli

import (
	"fmt"
	"time"

	"github.com/alexanderramin/smartfarm/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newSeasonCmd(app *App) *cobra.Command {
	var month int
	var all bool

	cmd := &cobra.Command{
		Use:   "season",
		Short: "Show the seasonal planting reminder",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if all {
				rows := make([][]string, 0, 12)
				for i := 0; i < 12; i++ {
					e := app.Responder.Season(i)
					rows = append(rows, []string{time.Month(i + 1).String(), e.Season, e.Advice})
				}
				fmt.Fprintln(out, formatter.RenderTable([]string{"MONTH", "SEASON", "ADVICE"}, rows))
				return nil
			}

			m, err := app.month(month)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, app.Responder.SeasonalReminder(m))
			return nil
		},
	}

	addMonthFlag(cmd.Flags(), &month)
	cmd.Flags().BoolVar(&all, "all", false, "Show the whole calendar")

	return cmd
}
