package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/smartfarm/internal/domain"
	"github.com/alexanderramin/smartfarm/internal/testutil"
)

func TestUserProfileRepo_Get_NotFoundOnFreshDB(t *testing.T) {
	repo := NewSQLiteUserProfileRepo(testutil.NewTestDB(t))

	_, err := repo.Get(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUserProfileRepo_UpsertAndGet(t *testing.T) {
	repo := NewSQLiteUserProfileRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	p := testutil.NewTestProfile(testutil.WithGardenType(domain.GardenUrban))
	*p = p.WithClimate(-33.9)
	p.ID = ""
	require.NoError(t, repo.Upsert(ctx, p))
	assert.Equal(t, domain.DefaultProfileID, p.ID)

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, *p, *got)
	assert.Equal(t, domain.ClimateSubtropical, got.ClimateZone)
	assert.Equal(t, domain.HemisphereSouthern, got.Hemisphere)
}

func TestUserProfileRepo_Upsert_OverwritesAndKeepsCreatedAt(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteUserProfileRepo(database)
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, testutil.NewTestProfile()))
	var created string
	require.NoError(t, database.QueryRow(`SELECT created_at FROM user_profile`).Scan(&created))

	require.NoError(t, repo.Upsert(ctx, testutil.NewTestProfile(testutil.WithName("Bea"), testutil.WithExperience(domain.ExperienceAdvanced))))

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Bea", got.Name)
	assert.Equal(t, domain.ExperienceAdvanced, got.Experience)

	var count int
	var createdAfter string
	require.NoError(t, database.QueryRow(`SELECT COUNT(*), MIN(created_at) FROM user_profile`).Scan(&count, &createdAfter))
	assert.Equal(t, 1, count)
	assert.Equal(t, created, createdAfter)
}

func TestUserProfileRepo_Upsert_RejectsUnknownEnum(t *testing.T) {
	repo := NewSQLiteUserProfileRepo(testutil.NewTestDB(t))

	err := repo.Upsert(context.Background(), testutil.NewTestProfile(testutil.WithGardenType("balcony")))
	assert.Error(t, err)
}

func TestUserProfileRepo_Delete(t *testing.T) {
	repo := NewSQLiteUserProfileRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, testutil.NewTestProfile()))
	require.NoError(t, repo.Delete(ctx))
	require.NoError(t, repo.Delete(ctx), "deleting twice is fine")

	_, err := repo.Get(ctx)
	assert.ErrorIs(t, err, ErrNotFound)
}
