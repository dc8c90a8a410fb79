package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/smartfarm/internal/cli/formatter"
	"github.com/alexanderramin/smartfarm/internal/domain"
	"github.com/alexanderramin/smartfarm/internal/garden"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// chatItem is one block of the chat transcript: either a recorded message
// or a local note (help, tables, errors) that is never persisted.
type chatItem struct {
	msg  *domain.ChatMessage
	note string
}

// chatView is the conversation screen: a scrollable transcript above a
// single-line input.
type chatView struct {
	state *SharedState
	input textinput.Model
	vp    viewport.Model
	items []chatItem

	// returning is set when a stored profile existed at startup; Init then
	// records a welcome-back message.
	returning bool
}

func newChatView(state *SharedState, returning bool) *chatView {
	ti := textinput.New()
	ti.Focus()
	ti.Prompt = ""
	ti.Placeholder = "Ask about vegetables, soil, pests... (/help for commands)"
	ti.CharLimit = 500

	vp := viewport.New(0, 0)
	vp.KeyMap = chatViewportKeyMap()
	vp.MouseWheelEnabled = true
	vp.MouseWheelDelta = 3

	return &chatView{
		state:     state,
		input:     ti,
		vp:        vp,
		returning: returning,
	}
}

// ── tea.Model interface ──────────────────────────────────────────────────────

func (v *chatView) Init() tea.Cmd {
	if !v.returning {
		return textinput.Blink
	}
	return tea.Batch(textinput.Blink, openChatCmd(v.state.App))
}

func (v *chatView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.resize()
		return v, nil

	case chatOpenedMsg:
		if msg.err != nil {
			v.addNote(errorNote(msg.err))
			return v, nil
		}
		v.items = v.items[:0]
		for _, m := range msg.messages {
			v.items = append(v.items, chatItem{msg: m})
		}
		v.refresh()
		return v, nil

	case profileSavedMsg:
		if msg.profile.IsOnboarded() {
			v.state.Profile = msg.profile
		}
		switch {
		case msg.err != nil:
			v.addNote(errorNote(msg.err))
		case msg.greeting != nil:
			v.addMessages(msg.greeting)
		default:
			v.addNote(formatter.Dim("Profile updated."))
		}
		return v, nil

	case noteMsg:
		v.addNote(formatter.Dim(msg.text))
		return v, nil

	case tea.MouseMsg:
		var cmd tea.Cmd
		v.vp, cmd = v.vp.Update(msg)
		return v, cmd

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEnter:
			input := strings.TrimSpace(v.input.Value())
			v.input.Reset()
			if input == "" {
				return v, nil
			}
			return v.handleInput(input)
		case tea.KeyEsc:
			v.input.Reset()
			return v, nil
		case tea.KeyUp, tea.KeyDown, tea.KeyPgUp, tea.KeyPgDown:
			var cmd tea.Cmd
			v.vp, cmd = v.vp.Update(msg)
			return v, cmd
		}
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

func (v *chatView) View() string {
	var b strings.Builder

	if v.vp.Height > 0 {
		b.WriteString(v.vp.View())
	} else {
		b.WriteString(v.render())
	}
	b.WriteString("\n\n")
	b.WriteString(formatter.StyleGreen.Render("you") + formatter.Dim("> "))
	b.WriteString(v.input.View())

	return b.String()
}

// ── View interface ───────────────────────────────────────────────────────────

func (v *chatView) ID() ViewID    { return ViewChat }
func (v *chatView) Title() string { return "Chat" }
func (v *chatView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "send")),
		key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑↓", "scroll")),
		key.NewBinding(key.WithKeys("/"), key.WithHelp("/help", "commands")),
		key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

// ── input handling ───────────────────────────────────────────────────────────

func (v *chatView) handleInput(input string) (tea.Model, tea.Cmd) {
	if !strings.HasPrefix(input, "/") {
		v.send(input)
		return v, nil
	}

	fields := strings.Fields(input)
	cmd, args := strings.ToLower(fields[0]), fields[1:]
	app := v.state.App

	switch cmd {
	case "/quit", "/exit", "/q":
		return v, quit
	case "/help":
		v.addNote(formatter.FormatChatHelp())
	case "/topics":
		v.addNote(formatter.FormatTopicList(app.Catalog.AllTopics()))
	case "/topic":
		if len(args) != 1 {
			v.addNote(errorNote(fmt.Errorf("usage: /topic ID")))
			break
		}
		m, _ := app.month(0)
		msg, err := app.Chat.TopicInfo(context.Background(), args[0], m)
		if err != nil {
			v.addNote(errorNote(err))
			break
		}
		v.addMessages(msg)
	case "/season":
		m, _ := app.month(0)
		v.addNote(formatter.FormatReminder(app.Responder.SeasonalReminder(m)))
	case "/calc":
		layout, err := parseCalcArgs(args)
		if err != nil {
			v.addNote(errorNote(err))
			break
		}
		v.addNote(formatter.FormatLayout(layout))
	case "/profile":
		return v, startOnboardingCmd(v.state, false)
	case "/clear":
		if err := app.Chat.Clear(context.Background()); err != nil {
			v.addNote(errorNote(err))
			break
		}
		v.items = nil
		v.addNote(formatter.Dim("Conversation cleared."))
	default:
		v.addNote(errorNote(fmt.Errorf("unknown command %s, type /help for the list", cmd)))
	}
	return v, nil
}

// send records the user message and the reply through the chat service.
func (v *chatView) send(text string) {
	app := v.state.App
	m, _ := app.month(0)
	ex, err := app.Chat.Send(context.Background(), text, m)
	if err != nil {
		v.addNote(errorNote(err))
		return
	}
	v.addMessages(ex.Messages()...)
}

func parseCalcArgs(args []string) (garden.Layout, error) {
	if len(args) != 3 {
		return garden.Layout{}, fmt.Errorf("usage: /calc LENGTH WIDTH SPACING")
	}
	var dims [3]float64
	for i, a := range args {
		f, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return garden.Layout{}, fmt.Errorf("%q is not a number", a)
		}
		dims[i] = f
	}
	return garden.Calculate(dims[0], dims[1], dims[2])
}

// ── transcript rendering ─────────────────────────────────────────────────────

func (v *chatView) addMessages(msgs ...*domain.ChatMessage) {
	for _, m := range msgs {
		v.items = append(v.items, chatItem{msg: m})
	}
	v.refresh()
}

func (v *chatView) addNote(text string) {
	v.items = append(v.items, chatItem{note: text})
	v.refresh()
}

func (v *chatView) render() string {
	if len(v.items) == 0 {
		return formatter.Dim("Ask me anything about growing plants.")
	}
	blocks := make([]string, 0, len(v.items))
	for _, it := range v.items {
		if it.msg != nil {
			blocks = append(blocks, formatter.FormatChatMessage(it.msg, v.state.Width))
			continue
		}
		blocks = append(blocks, it.note)
	}
	return strings.Join(blocks, "\n\n")
}

// refresh re-renders the transcript into the viewport and scrolls to the
// newest entry.
func (v *chatView) refresh() {
	v.vp.SetContent(v.render())
	v.vp.GotoBottom()
}

// resize fits the viewport between the header and the input line.
func (v *chatView) resize() {
	v.vp.Width = v.state.Width
	v.vp.Height = max(v.state.ContentHeight()-2, 1)
	v.input.Width = max(v.state.Width-6, 10)
	v.refresh()
}

func errorNote(err error) string {
	return formatter.StyleRed.Render("Error: " + err.Error())
}

// chatViewportKeyMap limits scrolling to arrow and page keys so every
// letter reaches the text input.
func chatViewportKeyMap() viewport.KeyMap {
	return viewport.KeyMap{
		PageDown: key.NewBinding(key.WithKeys("pgdown")),
		PageUp:   key.NewBinding(key.WithKeys("pgup")),
		Up:       key.NewBinding(key.WithKeys("up")),
		Down:     key.NewBinding(key.WithKeys("down")),
	}
}

// openChatCmd records the welcome-back message and loads the transcript.
func openChatCmd(app *App) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		if _, err := app.Chat.Greet(ctx, true); err != nil {
			return chatOpenedMsg{err: err}
		}
		msgs, err := app.Chat.History(ctx, 0)
		return chatOpenedMsg{messages: msgs, err: err}
	}
}
