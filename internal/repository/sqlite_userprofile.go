package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/smartfarm/internal/db"
	"github.com/alexanderramin/smartfarm/internal/domain"
)

// SQLiteUserProfileRepo implements UserProfileRepo using a SQLite database.
type SQLiteUserProfileRepo struct {
	db db.DBTX
}

// NewSQLiteUserProfileRepo creates a new SQLiteUserProfileRepo.
func NewSQLiteUserProfileRepo(conn db.DBTX) *SQLiteUserProfileRepo {
	return &SQLiteUserProfileRepo{db: conn}
}

func (r *SQLiteUserProfileRepo) Get(ctx context.Context) (*domain.UserProfile, error) {
	query := `SELECT id, name, location, experience, garden_type, climate_zone, hemisphere
		FROM user_profile WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, domain.DefaultProfileID)

	var p domain.UserProfile
	var experience, gardenType, zone, hemisphere string
	err := row.Scan(&p.ID, &p.Name, &p.Location, &experience, &gardenType, &zone, &hemisphere)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("user profile: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning user profile: %w", err)
	}
	p.Experience = domain.Experience(experience)
	p.GardenType = domain.GardenType(gardenType)
	p.ClimateZone = domain.ClimateZone(zone)
	p.Hemisphere = domain.Hemisphere(hemisphere)
	return &p, nil
}

// Upsert writes p under the default id, preserving the original created_at.
func (r *SQLiteUserProfileRepo) Upsert(ctx context.Context, p *domain.UserProfile) error {
	p.ID = domain.DefaultProfileID
	now := nowUTC()
	query := `INSERT INTO user_profile
		(id, name, location, experience, garden_type, climate_zone, hemisphere, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			location = excluded.location,
			experience = excluded.experience,
			garden_type = excluded.garden_type,
			climate_zone = excluded.climate_zone,
			hemisphere = excluded.hemisphere,
			updated_at = excluded.updated_at`
	_, err := r.db.ExecContext(ctx, query,
		p.ID,
		p.Name,
		p.Location,
		string(p.Experience),
		string(p.GardenType),
		string(p.ClimateZone),
		string(p.Hemisphere),
		now,
		now,
	)
	if err != nil {
		return fmt.Errorf("upserting user profile: %w", err)
	}
	return nil
}

// Delete removes the profile. Deleting a missing profile is not an error.
func (r *SQLiteUserProfileRepo) Delete(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM user_profile WHERE id = ?`, domain.DefaultProfileID); err != nil {
		return fmt.Errorf("deleting user profile: %w", err)
	}
	return nil
}
