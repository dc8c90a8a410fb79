package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/smartfarm/internal/cli/formatter"
	"github.com/alexanderramin/smartfarm/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// smartfarmHuhTheme returns a huh theme using the formatter palette.
func smartfarmHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.ErrorMessage = lipgloss.NewStyle().Foreground(formatter.ColorRed)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// onboardingInput is the form-bound copy of the editable profile fields.
type onboardingInput struct {
	Name       string
	Location   string
	Experience domain.Experience
	Garden     domain.GardenType
}

func newOnboardingInput(p domain.UserProfile) *onboardingInput {
	return &onboardingInput{
		Name:       p.Name,
		Location:   p.Location,
		Experience: p.Experience,
		Garden:     p.GardenType,
	}
}

// apply returns p with the form answers written over it. Inferred climate
// fields are kept.
func (in *onboardingInput) apply(p domain.UserProfile) domain.UserProfile {
	p.Name = strings.TrimSpace(in.Name)
	p.Location = strings.TrimSpace(in.Location)
	p.Experience = in.Experience
	p.GardenType = in.Garden
	return p
}

func requiredField(label string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", label)
		}
		return nil
	}
}

// newOnboardingForm asks for name and location (required), then experience
// and garden type (optional).
func newOnboardingForm(in *onboardingInput) *huh.Form {
	expOpts := []huh.Option[domain.Experience]{huh.NewOption("Rather not say", domain.ExperienceUnset)}
	for _, e := range domain.ExperienceOptions {
		expOpts = append(expOpts, huh.NewOption(string(e), e))
	}
	gardenOpts := []huh.Option[domain.GardenType]{huh.NewOption("Rather not say", domain.GardenUnset)}
	for _, g := range domain.GardenTypeOptions {
		gardenOpts = append(gardenOpts, huh.NewOption(string(g), g))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("What's your name?").
				Value(&in.Name).
				Validate(requiredField("name")),
			huh.NewInput().
				Title("Where is your garden?").
				Description("City or region, used for local advice").
				Value(&in.Location).
				Validate(requiredField("location")),
		),
		huh.NewGroup(
			huh.NewSelect[domain.Experience]().
				Title("How experienced are you?").
				Options(expOpts...).
				Value(&in.Experience),
			huh.NewSelect[domain.GardenType]().
				Title("What kind of garden do you have?").
				Options(gardenOpts...).
				Value(&in.Garden),
		),
	).WithTheme(smartfarmHuhTheme()).WithShowHelp(false)
}

// wizardConfirm creates a yes/no form.
func wizardConfirm(title string, result *bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Affirmative("Yes").
				Negative("No").
				Value(result),
		),
	).WithTheme(smartfarmHuhTheme()).WithShowHelp(false)
}

// saveProfileCmd persists the form answers. When firstTime is set the
// welcome message is recorded too, so the chat opens with a greeting.
func saveProfileCmd(state *SharedState, in *onboardingInput, firstTime bool) tea.Cmd {
	base := state.Profile
	app := state.App
	return func() tea.Msg {
		ctx := context.Background()
		p := in.apply(base)
		if err := app.Profiles.Save(ctx, &p); err != nil {
			return profileSavedMsg{err: err}
		}
		msg := profileSavedMsg{profile: p}
		if firstTime {
			greeting, err := app.Chat.Greet(ctx, false)
			msg.greeting, msg.err = greeting, err
		}
		return msg
	}
}

// startOnboardingCmd pushes the profile form. firstTime selects the
// onboarding flow over plain profile editing.
func startOnboardingCmd(state *SharedState, firstTime bool) tea.Cmd {
	return pushView(newOnboardingView(state, firstTime))
}

func newOnboardingView(state *SharedState, firstTime bool) *wizardView {
	in := newOnboardingInput(state.Profile)
	title := "Profile"
	if firstTime {
		title = "Welcome"
	}
	return newWizardView(state, title, newOnboardingForm(in), func() tea.Cmd {
		return saveProfileCmd(state, in, firstTime)
	})
}
