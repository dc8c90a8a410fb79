package cli

import (
	"fmt"

	"github.com/alexanderramin/smartfarm/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newHistoryCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show or clear the conversation history",
	}

	cmd.AddCommand(
		newHistoryShowCmd(app),
		newHistoryClearCmd(app),
	)

	return cmd
}

func newHistoryShowCmd(app *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the most recent messages, oldest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			msgs, err := app.Chat.History(cmd.Context(), limit)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatTranscript(msgs, formatter.DefaultWidth, app.now()))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Number of messages to show (default: all kept messages)")

	return cmd
}

func newHistoryClearCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete every stored message",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Chat.Clear(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Chat history cleared.")
			return nil
		},
	}
}
