package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/smartfarm/internal/domain"
	"github.com/alexanderramin/smartfarm/internal/repository"
	"github.com/alexanderramin/smartfarm/internal/testutil"
)

func TestProfileService_SaveAndGet(t *testing.T) {
	f := newFixture(t)
	svc := f.profileSvc()
	ctx := context.Background()

	p := testutil.NewTestProfile(testutil.WithName("  Ana  "))
	require.NoError(t, svc.Save(ctx, p))

	got, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Ana", got.Name)
	assert.Equal(t, domain.ExperienceBeginner, got.Experience)
}

func TestProfileService_SaveRequiresNameAndLocation(t *testing.T) {
	svc := newFixture(t).profileSvc()
	ctx := context.Background()

	err := svc.Save(ctx, testutil.NewTestProfile(testutil.WithName(" ")))
	assert.ErrorIs(t, err, ErrProfileIncomplete)

	err = svc.Save(ctx, testutil.NewTestProfile(testutil.WithLocation("")))
	assert.ErrorIs(t, err, ErrProfileIncomplete)
}

func TestProfileService_SaveRejectsUnknownEnums(t *testing.T) {
	svc := newFixture(t).profileSvc()

	err := svc.Save(context.Background(), testutil.NewTestProfile(testutil.WithExperience("guru")))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validating profile")
}

func TestProfileService_CurrentWithoutProfile(t *testing.T) {
	svc := newFixture(t).profileSvc()

	got, err := svc.Current(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.UserProfile{}, got)

	_, err = svc.Get(context.Background())
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestProfileService_DetectClimate(t *testing.T) {
	svc := newFixture(t).profileSvc()
	ctx := context.Background()
	require.NoError(t, svc.Save(ctx, testutil.NewTestProfile()))

	updated, err := svc.DetectClimate(ctx, 41.15)
	require.NoError(t, err)
	assert.Equal(t, domain.ClimateTemperate, updated.ClimateZone)
	assert.Equal(t, domain.HemisphereNorthern, updated.Hemisphere)

	stored, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, *updated, *stored)
}

func TestProfileService_DetectClimateRejectsBadLatitude(t *testing.T) {
	svc := newFixture(t).profileSvc()
	ctx := context.Background()
	require.NoError(t, svc.Save(ctx, testutil.NewTestProfile()))

	_, err := svc.DetectClimate(ctx, 91)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "between -90 and 90")
}

func TestProfileService_DetectClimateWithoutProfile(t *testing.T) {
	svc := newFixture(t).profileSvc()
	_, err := svc.DetectClimate(context.Background(), 10)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestProfileService_ResetClearsProfileAndHistory(t *testing.T) {
	f := newFixture(t)
	svc := f.profileSvc()
	ctx := context.Background()

	require.NoError(t, svc.Save(ctx, testutil.NewTestProfile()))
	require.NoError(t, f.history.Append(ctx, testutil.NewTestMessage(domain.SenderUser, "hi")))

	require.NoError(t, svc.Reset(ctx))

	_, err := svc.Get(ctx)
	assert.ErrorIs(t, err, repository.ErrNotFound)
	n, err := f.history.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestProfileService_ResetRollsBackOnFailure(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	require.NoError(t, f.profiles.Upsert(ctx, testutil.NewTestProfile()))

	// Exec #1 deletes the profile, #2 clears history.
	failing := &testutil.FailOnNthExecUoW{DB: f.db, FailOn: 2, Err: errors.New("injected clear failure")}
	svc := NewProfileService(f.profiles, failing)

	err := svc.Reset(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "injected clear failure")

	_, err = f.profiles.Get(ctx)
	assert.NoError(t, err, "profile delete should be rolled back")
}
