package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/smartfarm/internal/domain"
	"github.com/alexanderramin/smartfarm/internal/garden"
	"github.com/alexanderramin/smartfarm/internal/knowledge"
	"github.com/charmbracelet/lipgloss"
)

// DefaultWidth is used for wrapping when the terminal width is unknown.
const DefaultWidth = 80

var (
	userLabel = lipgloss.NewStyle().Foreground(ColorBlue).Bold(true)
	botLabel  = lipgloss.NewStyle().Foreground(ColorGreen).Bold(true)
)

// FormatChatMessage renders one transcript entry: a sender label followed
// by the text wrapped to width and indented two columns.
func FormatChatMessage(m *domain.ChatMessage, width int) string {
	if width <= 0 {
		width = DefaultWidth
	}
	label := botLabel.Render("🌱 Assistant")
	if m.Sender == domain.SenderUser {
		label = userLabel.Render("You")
	}
	body := lipgloss.NewStyle().PaddingLeft(2).Render(Wrap(m.Text, max(width-2, 20)))
	return label + "\n" + body
}

// FormatTranscript renders messages oldest first with relative timestamps.
func FormatTranscript(msgs []*domain.ChatMessage, width int, now time.Time) string {
	if len(msgs) == 0 {
		return Dim("No messages yet.")
	}
	parts := make([]string, 0, len(msgs))
	for _, m := range msgs {
		parts = append(parts, FormatChatMessage(m, width)+"\n  "+Dim(HumanTimestamp(m.CreatedAt, now)))
	}
	return strings.Join(parts, "\n\n")
}

// FormatProfile renders the stored profile as a boxed key/value list.
func FormatProfile(p domain.UserProfile) string {
	val := func(s string) string {
		if strings.TrimSpace(s) == "" {
			return Dim("not set")
		}
		return StyleFg.Render(s)
	}
	climate := Dim("unknown")
	if p.ClimateZone != "" {
		climate = StyleFg.Render(fmt.Sprintf("%s (%s hemisphere)", p.ClimateZone, p.Hemisphere))
	}

	lines := []string{
		Dim("Name:       ") + val(p.Name),
		Dim("Location:   ") + val(p.Location),
		Dim("Experience: ") + ExperienceBadge(p.Experience),
		Dim("Garden:     ") + GardenBadge(p.GardenType),
		Dim("Climate:    ") + climate,
	}
	return RenderBox("Profile", strings.Join(lines, "\n"))
}

// FormatTopicList renders topic ids with their keywords.
func FormatTopicList(topics []knowledge.Topic) string {
	rows := make([][]string, 0, len(topics))
	for _, t := range topics {
		rows = append(rows, []string{t.ID, strings.Join(t.Keywords, ", ")})
	}
	return RenderTable([]string{"TOPIC", "KEYWORDS"}, rows)
}

// FormatLayout renders a garden space calculation.
func FormatLayout(l garden.Layout) string {
	lines := []string{
		Dim("Area:           ") + StyleFg.Render(fmt.Sprintf("%.2f", l.Area)),
		Dim("Plants per row: ") + StyleFg.Render(fmt.Sprintf("%d", l.PlantsPerRow)),
		Dim("Rows:           ") + StyleFg.Render(fmt.Sprintf("%d", l.Rows)),
		Dim("Total plants:   ") + StyleBold.Render(fmt.Sprintf("%d", l.TotalPlants)),
		Dim("Efficiency:     ") + RenderProgress(l.Efficiency/100, garden.EfficiencyThreshold/100, 20),
	}
	advice := StyleGreen.Render("✔ " + l.Recommendation)
	if l.NeedsTighterSpacing() {
		advice = StyleYellow.Render("💡 " + l.Recommendation)
	}
	lines = append(lines, "", advice)
	return RenderBox("Garden layout", strings.Join(lines, "\n"))
}

// FormatReminder renders the seasonal reminder line.
func FormatReminder(reminder string) string {
	return StyleYellow.Render(reminder)
}

// FormatChatHelp lists the slash commands available in the chat view.
func FormatChatHelp() string {
	rows := [][]string{
		{"/topics", "list the topics I know about"},
		{"/topic ID", "overview of one topic"},
		{"/season", "this month's seasonal reminder"},
		{"/calc L W S", "garden layout for length, width and spacing"},
		{"/profile", "edit your gardening profile"},
		{"/clear", "clear the conversation"},
		{"/quit", "leave the chat"},
	}
	return RenderTable([]string{"COMMAND", "DESCRIPTION"}, rows)
}
