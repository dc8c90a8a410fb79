package responder

import (
	"strings"

	"github.com/alexanderramin/smartfarm/internal/knowledge"
)

// MatchResult is the outcome of matching one message against the catalog.
// When Matched is false the other fields are zero except RuleIndex (-1).
type MatchResult struct {
	Matched   bool
	TopicID   string
	Answer    string
	RuleIndex int // -1 when the topic's general answer was used
}

func noMatch() MatchResult {
	return MatchResult{RuleIndex: -1}
}

// Matcher selects a topic by keyword containment and then a rule within
// that topic by pattern. Only the first qualifying topic is considered;
// there is no scoring across topics.
type Matcher struct {
	kb *knowledge.KnowledgeBase
}

// NewMatcher creates a Matcher over kb.
func NewMatcher(kb *knowledge.KnowledgeBase) *Matcher {
	return &Matcher{kb: kb}
}

// Match classifies userText. Keywords are tested against the lowercased
// text; rule patterns are tested against the original text with
// case-insensitive matching. Blank input never matches.
func (m *Matcher) Match(userText string) MatchResult {
	normalized := strings.ToLower(strings.TrimSpace(userText))
	if normalized == "" {
		return noMatch()
	}

	for i := range m.kb.Len() {
		topic := m.kb.TopicAt(i)
		if !topic.HasKeywordIn(normalized) {
			continue
		}
		if i := topic.FirstRule(userText); i >= 0 {
			return MatchResult{Matched: true, TopicID: topic.ID, Answer: topic.Rules[i].Answer, RuleIndex: i}
		}
		return MatchResult{Matched: true, TopicID: topic.ID, Answer: topic.GeneralAnswer, RuleIndex: -1}
	}
	return noMatch()
}
