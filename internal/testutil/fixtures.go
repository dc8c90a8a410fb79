package testutil

import (
	"time"

	"github.com/google/uuid"

	"github.com/alexanderramin/smartfarm/internal/domain"
)

// ProfileOption customizes a fixture profile.
type ProfileOption func(*domain.UserProfile)

func WithName(name string) ProfileOption {
	return func(p *domain.UserProfile) { p.Name = name }
}

func WithLocation(loc string) ProfileOption {
	return func(p *domain.UserProfile) { p.Location = loc }
}

func WithExperience(e domain.Experience) ProfileOption {
	return func(p *domain.UserProfile) { p.Experience = e }
}

func WithGardenType(g domain.GardenType) ProfileOption {
	return func(p *domain.UserProfile) { p.GardenType = g }
}

// NewTestProfile returns an onboarded beginner with an outdoor garden.
func NewTestProfile(opts ...ProfileOption) *domain.UserProfile {
	p := &domain.UserProfile{
		ID:         domain.DefaultProfileID,
		Name:       "Ana",
		Location:   "Porto",
		Experience: domain.ExperienceBeginner,
		GardenType: domain.GardenOutdoor,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// NewTestMessage returns a message with a fresh id stamped at now.
func NewTestMessage(sender domain.Sender, text string) *domain.ChatMessage {
	return &domain.ChatMessage{
		ID:        uuid.New().String(),
		Sender:    sender,
		Text:      text,
		CreatedAt: time.Now().UTC(),
	}
}
