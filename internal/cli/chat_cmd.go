package cli

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newChatCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "chat",
		Short: "Open the interactive chat",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return errors.New("chat needs an interactive terminal; use `smartfarm ask` instead")
			}
			return runChatTUI(cmd.Context(), app)
		},
	}
}

// runChatTUI runs the full-screen chat until the user quits.
func runChatTUI(ctx context.Context, app *App) error {
	profile, err := app.Profiles.Current(ctx)
	if err != nil {
		return err
	}
	p := tea.NewProgram(newAppModel(app, profile),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)
	_, err = p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
