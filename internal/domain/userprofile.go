package domain

import (
	"fmt"
	"strings"
)

// UserProfile is the caller-owned description of the gardener. The
// responder reads it on every call and never mutates it.
type UserProfile struct {
	ID          string
	Name        string
	Location    string
	Experience  Experience
	GardenType  GardenType
	ClimateZone ClimateZone // inferred, optional
	Hemisphere  Hemisphere  // inferred, optional
}

// DefaultProfileID is the single-user profile row key.
const DefaultProfileID = "default"

// Validate checks the enum fields. Empty values mean "not answered" and pass.
func (p UserProfile) Validate() error {
	if !ValidExperiences[string(p.Experience)] {
		return fmt.Errorf("experience %q must be one of beginner, intermediate, advanced", p.Experience)
	}
	if !ValidGardenTypes[string(p.GardenType)] {
		return fmt.Errorf("garden type %q must be one of indoor, outdoor, urban, farm", p.GardenType)
	}
	return nil
}

// IsOnboarded reports whether the onboarding minimum (name and location)
// has been provided.
func (p UserProfile) IsOnboarded() bool {
	return strings.TrimSpace(p.Name) != "" && strings.TrimSpace(p.Location) != ""
}

// WithClimate returns a copy of p with climate zone and hemisphere inferred
// from latitude. p itself is left untouched.
func (p UserProfile) WithClimate(lat float64) UserProfile {
	p.ClimateZone, p.Hemisphere = ClimateForLatitude(lat)
	return p
}
