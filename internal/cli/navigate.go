package cli

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexanderramin/smartfarm/internal/domain"
)

// Navigation messages used by views to request view transitions.
// The appModel handles these in its Update method.

// pushViewMsg pushes a new view onto the navigation stack.
type pushViewMsg struct {
	view View
}

// wizardCompleteMsg is sent when a wizard form completes or is cancelled.
// The appModel pops the wizard, then runs nextCmd.
type wizardCompleteMsg struct {
	nextCmd tea.Cmd
}

// quitMsg signals the app to quit.
type quitMsg struct{}

// chatOpenedMsg carries the transcript loaded when the chat starts.
type chatOpenedMsg struct {
	messages []*domain.ChatMessage
	err      error
}

// profileSavedMsg reports the outcome of the onboarding or profile form.
// greeting is set only after first-time onboarding.
type profileSavedMsg struct {
	profile  domain.UserProfile
	greeting *domain.ChatMessage
	err      error
}

// noteMsg asks the chat view to show a transient, unrecorded note.
type noteMsg struct {
	text string
}

// pushView returns a tea.Cmd that pushes a view onto the stack.
func pushView(v View) tea.Cmd {
	return func() tea.Msg { return pushViewMsg{view: v} }
}

func quit() tea.Msg { return quitMsg{} }

// noteCmd returns a tea.Cmd that shows text as a note in the chat.
func noteCmd(text string) tea.Cmd {
	return func() tea.Msg { return noteMsg{text: text} }
}
