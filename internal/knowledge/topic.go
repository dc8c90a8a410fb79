package knowledge

import (
	"fmt"
	"regexp"
	"strings"
)

// Pattern decides whether a rule applies to a user message.
// Implementations must be case-insensitive and safe for concurrent use.
type Pattern interface {
	Match(text string) bool
	String() string
}

// regexPattern is a Pattern backed by a compiled RE2 expression.
type regexPattern struct {
	src string
	re  *regexp.Regexp
}

// CompilePattern compiles src as a case-insensitive regular expression.
func CompilePattern(src string) (Pattern, error) {
	if strings.TrimSpace(src) == "" {
		return nil, fmt.Errorf("empty pattern")
	}
	re, err := regexp.Compile("(?i)" + src)
	if err != nil {
		return nil, fmt.Errorf("compiling pattern %q: %w", src, err)
	}
	return &regexPattern{src: src, re: re}, nil
}

func (p *regexPattern) Match(text string) bool { return p.re.MatchString(text) }
func (p *regexPattern) String() string         { return p.src }

// Rule pairs a pattern with the answer returned when it matches.
type Rule struct {
	Pattern Pattern
	Answer  string
}

// Topic is one subject area of the catalog. Topics handed out by a
// KnowledgeBase share storage with it and must be treated as read-only.
type Topic struct {
	ID            string
	Keywords      []string // lowercase
	Rules         []Rule   // evaluated in order, first match wins
	GeneralAnswer string
}

// HasKeywordIn reports whether normalized (already lowercased) contains any
// of the topic's keywords as a substring. Containment is deliberately naive:
// "water" matches inside "watery".
func (t Topic) HasKeywordIn(normalized string) bool {
	for _, kw := range t.Keywords {
		if strings.Contains(normalized, kw) {
			return true
		}
	}
	return false
}

// FirstRule returns the index of the first rule whose pattern matches text,
// or -1 when none does.
func (t Topic) FirstRule(text string) int {
	for i, r := range t.Rules {
		if r.Pattern.Match(text) {
			return i
		}
	}
	return -1
}
