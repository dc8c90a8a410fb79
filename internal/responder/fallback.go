package responder

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/alexanderramin/smartfarm/internal/domain"
)

// RandomSource picks an index in [0, n). *math/rand.Rand satisfies it,
// which lets tests pin the choice with a seeded generator.
type RandomSource interface {
	Intn(n int) int
}

// globalRand delegates to the package-level generator in math/rand/v2,
// which is safe for concurrent use.
type globalRand struct{}

func (globalRand) Intn(n int) int { return rand.IntN(n) }

// DefaultRandom returns the concurrency-safe RandomSource used when none
// is injected.
func DefaultRandom() RandomSource { return globalRand{} }

// FallbackSelector produces a reply when no topic matched.
type FallbackSelector struct {
	topicList string
	rnd       RandomSource
}

// NewFallbackSelector creates a selector that advertises topicIDs in the
// first template. A nil rnd selects DefaultRandom.
func NewFallbackSelector(topicIDs []string, rnd RandomSource) *FallbackSelector {
	if rnd == nil {
		rnd = DefaultRandom()
	}
	return &FallbackSelector{topicList: strings.Join(topicIDs, ", "), rnd: rnd}
}

// Templates returns every candidate reply for profile, in selection order.
func (f *FallbackSelector) Templates(profile domain.UserProfile) []string {
	return []string{
		fmt.Sprintf("I'm not sure about that specific question. I can help with topics like: %s. What would you like to know?", f.topicList),
		"Interesting question! I specialize in gardening and farming. Try asking about planting schedules, soil care, pest control, or crop selection.",
		"I'd love to help, but I need more details. Are you asking about vegetables, fruits, herbs, soil management, watering, pests, seasonal planting, or tools?",
		personalFallback(profile),
	}
}

// Select returns one template chosen by the random source. Out-of-range
// indexes from a misbehaving source are folded back into range.
func (f *FallbackSelector) Select(profile domain.UserProfile) string {
	templates := f.Templates(profile)
	n := len(templates)
	i := f.rnd.Intn(n)
	return templates[((i%n)+n)%n]
}

func personalFallback(profile domain.UserProfile) string {
	greeting := "Great question!"
	if name := strings.TrimSpace(profile.Name); name != "" {
		greeting = fmt.Sprintf("Great question, %s!", name)
	}
	return fmt.Sprintf("%s While I focus on gardening topics, I'd be happy to help with questions about growing crops in %s. What specific plant or farming technique interests you?", greeting, placeOrDefault(profile.Location))
}
