package cli

import (
	"fmt"
	"time"

	"github.com/alexanderramin/smartfarm/internal/knowledge"
	"github.com/alexanderramin/smartfarm/internal/responder"
	"github.com/alexanderramin/smartfarm/internal/service"
	"github.com/spf13/cobra"
)

// App holds the services and collaborators used by CLI commands and the TUI.
type App struct {
	Profiles  service.ProfileService
	Chat      service.ChatService
	Responder *responder.Responder
	Catalog   *knowledge.KnowledgeBase
	Version   string

	// Now is the clock used to pick the current month. Nil means time.Now.
	Now func() time.Time

	// IsInteractive reports whether stdin is a terminal. Nil means never.
	IsInteractive func() bool
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// month resolves a --month flag value (1-12, 0 for the current month) to a
// zero-based month index.
func (a *App) month(flag int) (int, error) {
	if flag == 0 {
		return knowledge.MonthIndex(a.now()), nil
	}
	if flag < 1 || flag > 12 {
		return 0, fmt.Errorf("month %d must be between 1 and 12", flag)
	}
	return flag - 1, nil
}

// NewRootCmd creates the top-level "smartfarm" command and registers all
// subcommands against the provided App. Without a subcommand it opens the
// chat TUI on a terminal and prints help otherwise.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "smartfarm",
		Short:         "Gardening and farming assistant",
		Version:       app.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.interactive() {
				return runChatTUI(cmd.Context(), app)
			}
			return cmd.Help()
		},
	}

	root.AddCommand(
		newAskCmd(app),
		newTopicCmd(app),
		newTopicsCmd(app),
		newSeasonCmd(app),
		newProfileCmd(app),
		newHistoryCmd(app),
		newCalcCmd(app),
		newChatCmd(app),
		newMCPCmd(app),
	)

	return root
}
