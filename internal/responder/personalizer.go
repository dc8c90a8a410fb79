package responder

import (
	"strings"

	"github.com/alexanderramin/smartfarm/internal/domain"
	"github.com/alexanderramin/smartfarm/internal/knowledge"
)

const paragraphSep = "\n\n"

const (
	beginnerTip = "💡 Beginner Tip: Start small and don't be afraid to make mistakes - every gardener learns by doing!"
	advancedTip = "🌟 Advanced Note: Consider experimenting with companion planting or succession planting for better yields."

	indoorTip = "🏠 Indoor Garden Tip: Focus on compact varieties and ensure adequate lighting (6-8 hours or grow lights)."
	urbanTip  = "🌆 Urban Garden Tip: Container gardening and vertical growing are your best friends in limited spaces!"
	farmTip   = "🚜 Farm Scale Tip: Consider crop rotation and soil testing for sustainable long-term productivity."
)

// Topics that receive the indoor tip and the seasonal note respectively.
var (
	indoorTopics   = map[string]bool{"vegetables": true, "herbs": true}
	seasonalTopics = map[string]bool{"seasons": true, "vegetables": true}
)

// Personalizer appends profile- and season-derived notes to an answer.
type Personalizer struct {
	calendar *knowledge.SeasonalCalendar
}

// NewPersonalizer creates a Personalizer reading seasonal notes from calendar.
func NewPersonalizer(calendar *knowledge.SeasonalCalendar) *Personalizer {
	return &Personalizer{calendar: calendar}
}

// Notes returns the augmentations for the given context in their fixed
// order: experience, garden type, season.
func (p *Personalizer) Notes(topicID string, profile domain.UserProfile, month int) []string {
	var notes []string

	switch profile.Experience {
	case domain.ExperienceBeginner:
		notes = append(notes, beginnerTip)
	case domain.ExperienceAdvanced:
		notes = append(notes, advancedTip)
	}

	// Mutually exclusive, first match wins: an indoor gardener asking about
	// fruit gets no garden tip at all.
	switch {
	case profile.GardenType == domain.GardenIndoor && indoorTopics[topicID]:
		notes = append(notes, indoorTip)
	case profile.GardenType == domain.GardenUrban:
		notes = append(notes, urbanTip)
	case profile.GardenType == domain.GardenFarm:
		notes = append(notes, farmTip)
	}

	if seasonalTopics[topicID] {
		notes = append(notes, "📅 "+p.calendar.Entry(month).String())
	}
	return notes
}

// Personalize returns answer followed by each applicable note as its own
// paragraph. The answer text itself is never altered.
func (p *Personalizer) Personalize(answer, topicID string, profile domain.UserProfile, month int) string {
	notes := p.Notes(topicID, profile, month)
	if len(notes) == 0 {
		return answer
	}
	var b strings.Builder
	b.WriteString(answer)
	for _, n := range notes {
		b.WriteString(paragraphSep)
		b.WriteString(n)
	}
	return b.String()
}
