package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/alexanderramin/smartfarm/internal/cli/formatter"
	"github.com/alexanderramin/smartfarm/internal/domain"
	"github.com/spf13/cobra"
)

func newAskCmd(app *App) *cobra.Command {
	var month int

	cmd := &cobra.Command{
		Use:   "ask QUESTION...",
		Short: "Ask a gardening question",
		Example: `  smartfarm ask "How do I grow tomatoes?"
  smartfarm ask --month 10 what should I plant`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := app.month(month)
			if err != nil {
				return err
			}
			ex, err := app.Chat.Send(cmd.Context(), strings.Join(args, " "), m)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			printBotMessage(out, app, ex.Reply)
			if ex.Reminder != nil {
				fmt.Fprintln(out)
				fmt.Fprintln(out, formatter.FormatReminder(ex.Reminder.Text))
			}
			return nil
		},
	}

	addMonthFlag(cmd.Flags(), &month)

	return cmd
}

// printBotMessage writes a reply as a styled bubble on a terminal and as
// plain text otherwise, so output stays pipe-friendly.
func printBotMessage(out io.Writer, app *App, msg *domain.ChatMessage) {
	if app.interactive() {
		fmt.Fprintln(out, formatter.FormatChatMessage(msg, formatter.DefaultWidth))
		return
	}
	fmt.Fprintln(out, msg.Text)
}
