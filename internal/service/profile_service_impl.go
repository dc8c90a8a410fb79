package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/smartfarm/internal/db"
	"github.com/alexanderramin/smartfarm/internal/domain"
	"github.com/alexanderramin/smartfarm/internal/repository"
)

type profileService struct {
	profiles repository.UserProfileRepo
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewProfileService(profiles repository.UserProfileRepo, uow db.UnitOfWork, observers ...UseCaseObserver) ProfileService {
	return &profileService{
		profiles: profiles,
		uow:      uow,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *profileService) Get(ctx context.Context) (*domain.UserProfile, error) {
	return s.profiles.Get(ctx)
}

func (s *profileService) Current(ctx context.Context) (domain.UserProfile, error) {
	p, err := s.profiles.Get(ctx)
	if errors.Is(err, repository.ErrNotFound) {
		return domain.UserProfile{}, nil
	}
	if err != nil {
		return domain.UserProfile{}, err
	}
	return *p, nil
}

func (s *profileService) Save(ctx context.Context, p *domain.UserProfile) (err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{}
	defer func() { observe(ctx, s.observer, "save-profile", startedAt, fields, err) }()

	p.Name = strings.TrimSpace(p.Name)
	p.Location = strings.TrimSpace(p.Location)
	if !p.IsOnboarded() {
		return ErrProfileIncomplete
	}
	if err = p.Validate(); err != nil {
		return fmt.Errorf("validating profile: %w", err)
	}
	fields["experience"] = string(p.Experience)
	fields["garden_type"] = string(p.GardenType)
	return s.profiles.Upsert(ctx, p)
}

func (s *profileService) DetectClimate(ctx context.Context, lat float64) (p *domain.UserProfile, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"lat": lat}
	defer func() { observe(ctx, s.observer, "detect-climate", startedAt, fields, err) }()

	if err = domain.ValidateLatitude(lat); err != nil {
		return nil, err
	}
	p, err = s.profiles.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading profile: %w", err)
	}
	updated := p.WithClimate(lat)
	if err = s.profiles.Upsert(ctx, &updated); err != nil {
		return nil, err
	}
	fields["climate_zone"] = string(updated.ClimateZone)
	return &updated, nil
}

func (s *profileService) Reset(ctx context.Context) (err error) {
	startedAt := time.Now().UTC()
	defer func() { observe(ctx, s.observer, "reset-profile", startedAt, nil, err) }()

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if err := repository.NewSQLiteUserProfileRepo(tx).Delete(ctx); err != nil {
			return err
		}
		return repository.NewSQLiteChatHistoryRepo(tx).Clear(ctx)
	})
}
