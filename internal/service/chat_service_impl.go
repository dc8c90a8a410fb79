package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/alexanderramin/smartfarm/internal/config"
	"github.com/alexanderramin/smartfarm/internal/db"
	"github.com/alexanderramin/smartfarm/internal/domain"
	"github.com/alexanderramin/smartfarm/internal/repository"
	"github.com/alexanderramin/smartfarm/internal/responder"
)

// ReminderPrefix marks the periodic seasonal reminder in the transcript.
const ReminderPrefix = "📅 Seasonal Reminder: "

type chatService struct {
	profiles  repository.UserProfileRepo
	history   repository.ChatHistoryRepo
	uow       db.UnitOfWork
	responder *responder.Responder
	policy    config.HistoryConfig
	observer  UseCaseObserver
}

func NewChatService(
	profiles repository.UserProfileRepo,
	history repository.ChatHistoryRepo,
	uow db.UnitOfWork,
	r *responder.Responder,
	policy config.HistoryConfig,
	observers ...UseCaseObserver,
) ChatService {
	return &chatService{
		profiles:  profiles,
		history:   history,
		uow:       uow,
		responder: r,
		policy:    policy,
		observer:  useCaseObserverOrNoop(observers),
	}
}

func (s *chatService) Send(ctx context.Context, text string, month int) (ex *Exchange, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"month": month}
	defer func() { observe(ctx, s.observer, "send-message", startedAt, fields, err) }()

	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyMessage
	}
	profile, err := s.currentProfile(ctx)
	if err != nil {
		return nil, err
	}

	match := s.responder.Match(text)
	fields["topic"] = match.TopicID
	fields["matched"] = match.Matched

	ex = &Exchange{
		User:    newMessage(domain.SenderUser, text),
		Reply:   newMessage(domain.SenderBot, s.responder.GenerateResponse(text, profile, month)),
		TopicID: match.TopicID,
	}
	if err = s.record(ctx, ex.User, ex.Reply); err != nil {
		return nil, err
	}

	due, err := s.reminderDue(ctx)
	if err != nil {
		return nil, err
	}
	if due {
		ex.Reminder = newMessage(domain.SenderBot, ReminderPrefix+s.responder.SeasonalReminder(month))
		if err = s.record(ctx, ex.Reminder); err != nil {
			return nil, err
		}
		fields["reminder"] = true
	}
	return ex, nil
}

func (s *chatService) TopicInfo(ctx context.Context, topicID string, month int) (msg *domain.ChatMessage, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"topic": topicID}
	defer func() { observe(ctx, s.observer, "topic-info", startedAt, fields, err) }()

	profile, err := s.currentProfile(ctx)
	if err != nil {
		return nil, err
	}
	text, err := s.responder.TopicResponse(topicID, profile, month)
	if err != nil {
		return nil, err
	}
	msg = newMessage(domain.SenderBot, text)
	if err = s.record(ctx, msg); err != nil {
		return nil, err
	}
	return msg, nil
}

func (s *chatService) Greet(ctx context.Context, returning bool) (*domain.ChatMessage, error) {
	profile, err := s.currentProfile(ctx)
	if err != nil {
		return nil, err
	}
	text := s.responder.Welcome(profile)
	if returning {
		text = s.responder.WelcomeBack(profile)
	}
	msg := newMessage(domain.SenderBot, text)
	if err := s.record(ctx, msg); err != nil {
		return nil, err
	}
	return msg, nil
}

func (s *chatService) History(ctx context.Context, limit int) ([]*domain.ChatMessage, error) {
	if limit <= 0 || limit > s.policy.MaxMessages {
		limit = s.policy.MaxMessages
	}
	return s.history.ListRecent(ctx, limit)
}

func (s *chatService) Clear(ctx context.Context) (err error) {
	startedAt := time.Now().UTC()
	defer func() { observe(ctx, s.observer, "clear-history", startedAt, nil, err) }()
	return s.history.Clear(ctx)
}

func (s *chatService) currentProfile(ctx context.Context) (domain.UserProfile, error) {
	p, err := s.profiles.Get(ctx)
	if errors.Is(err, repository.ErrNotFound) {
		return domain.UserProfile{}, nil
	}
	if err != nil {
		return domain.UserProfile{}, fmt.Errorf("loading profile: %w", err)
	}
	return *p, nil
}

// record appends msgs and trims the transcript to MaxMessages in one
// transaction. If that fails the transcript is cut to TrimTo to free room
// and the write is retried once.
func (s *chatService) record(ctx context.Context, msgs ...*domain.ChatMessage) error {
	write := func(ctx context.Context, tx db.DBTX) error {
		repo := repository.NewSQLiteChatHistoryRepo(tx)
		for _, m := range msgs {
			if err := repo.Append(ctx, m); err != nil {
				return err
			}
		}
		_, err := repo.Trim(ctx, s.policy.MaxMessages)
		return err
	}

	firstErr := s.uow.WithinTx(ctx, write)
	if firstErr == nil {
		return nil
	}
	if _, err := s.history.Trim(ctx, s.policy.TrimTo); err != nil {
		return fmt.Errorf("saving chat history: %w", errors.Join(firstErr, err))
	}
	if err := s.uow.WithinTx(ctx, write); err != nil {
		return fmt.Errorf("saving chat history after trim: %w", err)
	}
	return nil
}

// reminderDue reports whether the last ReminderEvery messages are all
// ordinary conversation, i.e. no reminder has been shown within them.
func (s *chatService) reminderDue(ctx context.Context) (bool, error) {
	every := s.policy.ReminderEvery
	if every <= 0 {
		return false, nil
	}
	recent, err := s.history.ListRecent(ctx, every)
	if err != nil {
		return false, err
	}
	if len(recent) < every {
		return false, nil
	}
	for _, m := range recent {
		if strings.HasPrefix(m.Text, ReminderPrefix) {
			return false, nil
		}
	}
	return true, nil
}

func newMessage(sender domain.Sender, text string) *domain.ChatMessage {
	return &domain.ChatMessage{
		ID:        uuid.New().String(),
		Sender:    sender,
		Text:      text,
		CreatedAt: time.Now().UTC(),
	}
}
