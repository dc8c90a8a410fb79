package repository

import (
	"context"

	"github.com/alexanderramin/smartfarm/internal/domain"
)

// UserProfileRepo stores the single gardener profile.
type UserProfileRepo interface {
	Get(ctx context.Context) (*domain.UserProfile, error)
	Upsert(ctx context.Context, p *domain.UserProfile) error
	Delete(ctx context.Context) error
}

// ChatHistoryRepo stores the conversation transcript in insertion order.
type ChatHistoryRepo interface {
	Append(ctx context.Context, m *domain.ChatMessage) error
	// ListRecent returns up to limit of the newest messages, oldest first.
	// A non-positive limit returns everything.
	ListRecent(ctx context.Context, limit int) ([]*domain.ChatMessage, error)
	// Trim keeps the newest keep messages and reports how many were removed.
	Trim(ctx context.Context, keep int) (int64, error)
	Count(ctx context.Context) (int, error)
	Clear(ctx context.Context) error
}
