package service

import (
	"context"
	"errors"

	"github.com/alexanderramin/smartfarm/internal/domain"
)

// ErrProfileIncomplete is returned when saving a profile without the
// onboarding minimum of name and location.
var ErrProfileIncomplete = errors.New("profile incomplete: name and location are required")

// ErrEmptyMessage is returned by Send for blank input.
var ErrEmptyMessage = errors.New("message is empty")

type ProfileService interface {
	// Get returns the stored profile or wraps repository.ErrNotFound.
	Get(ctx context.Context) (*domain.UserProfile, error)
	// Current returns the stored profile, or a zero profile when none exists.
	Current(ctx context.Context) (domain.UserProfile, error)
	Save(ctx context.Context, p *domain.UserProfile) error
	// DetectClimate stores the climate inferred from lat on the profile.
	DetectClimate(ctx context.Context, lat float64) (*domain.UserProfile, error)
	// Reset deletes the profile together with the chat history.
	Reset(ctx context.Context) error
}

type ChatService interface {
	Send(ctx context.Context, text string, month int) (*Exchange, error)
	// TopicInfo records and returns the personalized overview of a topic.
	TopicInfo(ctx context.Context, topicID string, month int) (*domain.ChatMessage, error)
	// Greet records a welcome, or a welcome-back when returning is set.
	Greet(ctx context.Context, returning bool) (*domain.ChatMessage, error)
	History(ctx context.Context, limit int) ([]*domain.ChatMessage, error)
	Clear(ctx context.Context) error
}

// Exchange is the outcome of one user turn.
type Exchange struct {
	User     *domain.ChatMessage
	Reply    *domain.ChatMessage
	TopicID  string              // empty when the reply is a fallback
	Reminder *domain.ChatMessage // set when a seasonal reminder was due
}

// Messages lists the recorded messages of the exchange in order.
func (e *Exchange) Messages() []*domain.ChatMessage {
	out := []*domain.ChatMessage{e.User, e.Reply}
	if e.Reminder != nil {
		out = append(out, e.Reminder)
	}
	return out
}
