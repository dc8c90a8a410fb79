package cli

import (
	"fmt"

	"github.com/alexanderramin/smartfarm/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newTopicCmd(app *App) *cobra.Command {
	var month int

	cmd := &cobra.Command{
		Use:   "topic ID",
		Short: "Show the overview of one topic",
		Args:  cobra.ExactArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			return app.Responder.TopicIDs(), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := app.month(month)
			if err != nil {
				return err
			}
			msg, err := app.Chat.TopicInfo(cmd.Context(), args[0], m)
			if err != nil {
				return err
			}
			printBotMessage(cmd.OutOrStdout(), app, msg)
			return nil
		},
	}

	addMonthFlag(cmd.Flags(), &month)

	return cmd
}

func newTopicsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "topics",
		Short: "List the topics and the keywords that select them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatTopicList(app.Catalog.AllTopics()))
			return nil
		},
	}
}
