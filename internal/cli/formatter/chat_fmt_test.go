package formatter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/smartfarm/internal/domain"
	"github.com/alexanderramin/smartfarm/internal/garden"
	"github.com/alexanderramin/smartfarm/internal/knowledge"
)

func TestFormatChatMessage_Labels(t *testing.T) {
	user := stripANSI(FormatChatMessage(&domain.ChatMessage{Sender: domain.SenderUser, Text: "hi"}, 40))
	bot := stripANSI(FormatChatMessage(&domain.ChatMessage{Sender: domain.SenderBot, Text: "hello"}, 40))

	assert.Contains(t, user, "You\n")
	assert.Contains(t, user, "  hi")
	assert.Contains(t, bot, "Assistant\n")
	assert.Contains(t, bot, "  hello")
}

func TestFormatTranscript(t *testing.T) {
	now := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)
	msgs := []*domain.ChatMessage{
		{Sender: domain.SenderUser, Text: "How do I grow basil?", CreatedAt: now.Add(-2 * time.Hour)},
		{Sender: domain.SenderBot, Text: "Basil loves warm weather.", CreatedAt: now.Add(-2 * time.Hour)},
	}

	got := stripANSI(FormatTranscript(msgs, 80, now))
	assert.Contains(t, got, "How do I grow basil?")
	assert.Contains(t, got, "Basil loves warm weather.")
	assert.Contains(t, got, "2h ago")
	assert.Equal(t, "No messages yet.", stripANSI(FormatTranscript(nil, 80, now)))
}

func TestFormatProfile(t *testing.T) {
	p := domain.UserProfile{Name: "Ana", Location: "Porto", Experience: domain.ExperienceBeginner}
	got := stripANSI(FormatProfile(p.WithClimate(41.1)))

	assert.Contains(t, got, "Ana")
	assert.Contains(t, got, "Porto")
	assert.Contains(t, got, "beginner")
	assert.Contains(t, got, "Temperate (Northern hemisphere)")
	assert.Contains(t, got, "Garden:     ○ not set")
}

func TestFormatTopicList(t *testing.T) {
	got := stripANSI(FormatTopicList(knowledge.MustDefault().AllTopics()))
	assert.Contains(t, got, "TOPIC")
	assert.Contains(t, got, "vegetables")
	assert.Contains(t, got, "tomato")
	assert.Contains(t, got, "tools")
}

func TestFormatLayout(t *testing.T) {
	tight, err := garden.Calculate(10, 4, 1.5)
	require.NoError(t, err)
	got := stripANSI(FormatLayout(tight))
	assert.Contains(t, got, "Total plants:   12")
	assert.Contains(t, got, "Consider reducing plant spacing")

	good, err := garden.Calculate(10, 10, 1)
	require.NoError(t, err)
	assert.Contains(t, stripANSI(FormatLayout(good)), "Good space utilization!")
}
