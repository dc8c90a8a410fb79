// Package responder turns a free-text gardening question into a reply by
// keyword topic selection, rule matching, profile personalization and a
// fallback when nothing matched. It is pure apart from the fallback's
// random choice and safe for concurrent use.
package responder

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/smartfarm/internal/domain"
	"github.com/alexanderramin/smartfarm/internal/knowledge"
)

// ErrUnknownTopic is returned by TopicResponse for ids not in the catalog.
var ErrUnknownTopic = errors.New("unknown topic")

// Responder is the single entry point the chat surfaces call.
type Responder struct {
	kb           *knowledge.KnowledgeBase
	calendar     *knowledge.SeasonalCalendar
	rnd          RandomSource
	matcher      *Matcher
	personalizer *Personalizer
	fallback     *FallbackSelector
}

// Option configures a Responder.
type Option func(*Responder)

// WithRandom injects the fallback's random source.
func WithRandom(src RandomSource) Option {
	return func(r *Responder) { r.rnd = src }
}

// WithCalendar replaces the built-in seasonal calendar.
func WithCalendar(c *knowledge.SeasonalCalendar) Option {
	return func(r *Responder) { r.calendar = c }
}

// New builds a Responder over kb.
func New(kb *knowledge.KnowledgeBase, opts ...Option) *Responder {
	r := &Responder{kb: kb, calendar: knowledge.DefaultCalendar()}
	for _, opt := range opts {
		opt(r)
	}
	r.matcher = NewMatcher(kb)
	r.personalizer = NewPersonalizer(r.calendar)
	r.fallback = NewFallbackSelector(kb.TopicIDs(), r.rnd)
	return r
}

// Match exposes the raw classification for callers that need the topic id.
func (r *Responder) Match(userText string) MatchResult {
	return r.matcher.Match(userText)
}

// GenerateResponse returns the reply for userText. A matched answer is
// personalized; an unmatched one gets a fallback which is never
// personalized. The result is never empty.
func (r *Responder) GenerateResponse(userText string, profile domain.UserProfile, month int) string {
	m := r.matcher.Match(userText)
	if !m.Matched {
		return r.fallback.Select(profile)
	}
	return r.personalizer.Personalize(m.Answer, m.TopicID, profile, month)
}

// TopicResponse returns the personalized general answer of a topic chosen
// by id, bypassing keyword matching.
func (r *Responder) TopicResponse(topicID string, profile domain.UserProfile, month int) (string, error) {
	topic, ok := r.kb.Lookup(strings.ToLower(strings.TrimSpace(topicID)))
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownTopic, topicID)
	}
	return r.personalizer.Personalize(topic.GeneralAnswer, topic.ID, profile, month), nil
}

// SeasonalReminder returns "🌱 Season: advice" for month.
func (r *Responder) SeasonalReminder(month int) string {
	return "🌱 " + r.calendar.Entry(month).String()
}

// Season returns the raw calendar entry for month.
func (r *Responder) Season(month int) knowledge.SeasonEntry {
	return r.calendar.Entry(month)
}

// TopicIDs lists the catalog topics in declared order.
func (r *Responder) TopicIDs() []string {
	return r.kb.TopicIDs()
}

// Welcome greets a freshly onboarded gardener. Unanswered fields are
// dropped from the sentence rather than rendered empty.
func (r *Responder) Welcome(profile domain.UserProfile) string {
	var b strings.Builder
	if name := strings.TrimSpace(profile.Name); name != "" {
		fmt.Fprintf(&b, "Hello %s! ", name)
	} else {
		b.WriteString("Hello! ")
	}
	b.WriteString("🌱 I'm your Smart Farm Assistant. I can help you with gardening and farming questions")

	var tailoring []string
	if profile.Experience != domain.ExperienceUnset {
		tailoring = append(tailoring, string(profile.Experience)+" level")
	}
	if profile.GardenType != domain.GardenUnset {
		tailoring = append(tailoring, string(profile.GardenType)+" setup")
	}
	if len(tailoring) > 0 {
		b.WriteString(" tailored to your ")
		b.WriteString(strings.Join(tailoring, " and "))
	}

	fmt.Fprintf(&b, ". What would you like to know about growing plants in %s?", placeOrDefault(profile.Location))
	return b.String()
}

// WelcomeBack greets a returning gardener.
func (r *Responder) WelcomeBack(profile domain.UserProfile) string {
	name := domain.CoalesceTrimmed(profile.Name, "friend")
	garden := "garden"
	if profile.GardenType != domain.GardenUnset {
		garden = string(profile.GardenType) + " garden"
	}
	return fmt.Sprintf("Welcome back, %s! 🌱 How can I help with your %s today?", name, garden)
}

func placeOrDefault(location string) string {
	return domain.CoalesceTrimmed(location, "your area")
}
