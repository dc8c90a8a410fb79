package cli

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/smartfarm/internal/domain"
	"github.com/alexanderramin/smartfarm/internal/testutil"
)

func TestTUI_ReturningUserIsWelcomedBack(t *testing.T) {
	app := testApp(t)
	seedProfile(t, app, testutil.WithGardenType(domain.GardenIndoor))

	d := NewTestDriver(t, app)

	assert.Equal(t, ViewChat, d.ActiveViewID())
	assert.Equal(t, 1, d.ViewStackLen())
	d.RequireViewContains("Welcome back, Ana!")
	d.RequireViewContains("Porto")

	msgs, err := app.Chat.History(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Equal(t, "Welcome back, Ana! 🌱 How can I help with your indoor garden today?", msgs[0].Text)
}

func TestTUI_NewUserStartsWithOnboarding(t *testing.T) {
	app := testApp(t)

	profile, err := app.Profiles.Current(context.Background())
	require.NoError(t, err)
	m := newAppModel(app, profile)

	require.Len(t, m.viewStack, 2)
	assert.Equal(t, ViewChat, m.viewStack[0].ID())
	assert.Equal(t, ViewForm, m.activeView().ID())
	assert.Equal(t, "Welcome", m.activeView().Title())
}

func TestTUI_OnboardingCompletionSavesAndGreets(t *testing.T) {
	app := testApp(t)
	state := &SharedState{App: app}
	in := &onboardingInput{Name: " Li ", Location: "Oslo", Garden: domain.GardenFarm}

	msg := saveProfileCmd(state, in, true)()

	saved, ok := msg.(profileSavedMsg)
	require.True(t, ok)
	require.NoError(t, saved.err)
	assert.Equal(t, "Li", saved.profile.Name)
	require.NotNil(t, saved.greeting)
	assert.Equal(t,
		"Hello Li! 🌱 I'm your Smart Farm Assistant. I can help you with gardening and farming questions tailored to your farm setup. What would you like to know about growing plants in Oslo?",
		saved.greeting.Text)

	chat := newChatView(state, false)
	chat.Update(saved)
	assert.Equal(t, "Li", state.Profile.Name)
	assert.Contains(t, chat.render(), "Hello Li!")
}

func TestTUI_OnboardingRejectsMissingLocation(t *testing.T) {
	app := testApp(t)
	state := &SharedState{App: app}

	msg := saveProfileCmd(state, &onboardingInput{Name: "Li"}, true)()

	saved := msg.(profileSavedMsg)
	require.Error(t, saved.err)
	assert.Nil(t, saved.greeting)
}

func TestTUI_EscSkipsOnboarding(t *testing.T) {
	app := testApp(t)
	profile, err := app.Profiles.Current(context.Background())
	require.NoError(t, err)

	var model tea.Model = newAppModel(app, profile)
	model, cmd := model.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	model, cmd = model.Update(cmd())
	require.NotNil(t, cmd)
	model, _ = model.Update(cmd())

	m := model.(appModel)
	assert.Len(t, m.viewStack, 1)
	assert.Equal(t, ViewChat, m.activeView().ID())
	assert.Contains(t, m.View(), "Cancelled.")
}

func TestTUI_SendMessage(t *testing.T) {
	app := testApp(t)
	seedProfile(t, app, testutil.WithExperience(domain.ExperienceBeginner))
	d := NewTestDriver(t, app)

	d.Submit("mint")

	d.RequireViewContains("Mint grows vigorously")
	msgs, err := app.Chat.History(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, msgs, 3)
	assert.Equal(t, "mint", msgs[1].Text)
	assert.True(t, strings.HasPrefix(msgs[2].Text, "Mint grows vigorously"))
}

func TestTUI_EmptyInputIsIgnored(t *testing.T) {
	app := testApp(t)
	seedProfile(t, app)
	d := NewTestDriver(t, app)

	d.Submit("   ")

	msgs, err := app.Chat.History(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, msgs, 1)
}

func TestTUI_SlashCommands(t *testing.T) {
	app := testApp(t)
	seedProfile(t, app)
	d := NewTestDriver(t, app)

	d.Submit("/help")
	d.RequireViewContains("/calc L W S")

	d.Submit("/season")
	d.RequireViewContains("Spring: Main planting season")

	d.Submit("/calc 10 4 1.5")
	d.RequireViewContains("Total plants:   12")

	d.Submit("/calc 10 x 1")
	d.RequireViewContains(`"x" is not a number`)

	d.Submit("/topic tools")
	d.RequireViewContains("Good tools make gardening easier")

	d.Submit("/topic weather")
	d.RequireViewContains("unknown topic")

	d.Submit("/nope")
	d.RequireViewContains("unknown command /nope")
}

func TestTUI_TopicsCommand(t *testing.T) {
	app := testApp(t)
	seedProfile(t, app)
	d := NewTestDriver(t, app)

	d.Submit("/topics")

	for _, id := range []string{"vegetables", "herbs", "pests"} {
		assert.Contains(t, d.Chat().render(), id)
	}
}

func TestTUI_ClearCommand(t *testing.T) {
	app := testApp(t)
	seedProfile(t, app)
	d := NewTestDriver(t, app)
	d.Submit("basil")

	d.Submit("/clear")

	d.RequireViewContains("Conversation cleared.")
	assert.NotContains(t, d.View(), "Basil loves")
	msgs, err := app.Chat.History(context.Background(), 0)
	require.NoError(t, err)
	assert.Empty(t, msgs)
}

func TestTUI_ProfileCommandPushesForm(t *testing.T) {
	app := testApp(t)
	seedProfile(t, app)
	d := NewTestDriver(t, app)

	d.Submit("/profile")

	assert.Equal(t, ViewForm, d.ActiveViewID())
	assert.Equal(t, 2, d.ViewStackLen())
}

func TestTUI_QuitCommand(t *testing.T) {
	app := testApp(t)
	seedProfile(t, app)
	d := NewTestDriver(t, app)

	d.Submit("/quit")

	assert.True(t, d.IsQuitting())
}

func TestTUI_QuitWithCtrlC(t *testing.T) {
	app := testApp(t)
	seedProfile(t, app)
	d := NewTestDriver(t, app)

	d.PressCtrlC()

	assert.True(t, d.IsQuitting())
	assert.Empty(t, d.View())
}

func TestTUI_HeaderShowsProfile(t *testing.T) {
	app := testApp(t)
	seedProfile(t, app, testutil.WithGardenType(domain.GardenUrban))
	d := NewTestDriver(t, app)

	header := strings.SplitN(d.View(), "\n", 2)[0]
	assert.Contains(t, header, "smartfarm")
	assert.Contains(t, header, "Chat")
	assert.Contains(t, header, "Ana")
	assert.Contains(t, header, "urban")
}

func TestTUI_ViewFillsTerminalHeight(t *testing.T) {
	app := testApp(t)
	seedProfile(t, app)
	d := NewTestDriver(t, app)

	assert.GreaterOrEqual(t, strings.Count(d.View(), "\n")+1, 40)
}
