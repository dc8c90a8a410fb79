package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserProfileValidate_AcceptsUnsetEnums(t *testing.T) {
	p := UserProfile{Name: "Ada"}
	assert.NoError(t, p.Validate())
}

func TestUserProfileValidate_AcceptsAllOptions(t *testing.T) {
	for _, exp := range ExperienceOptions {
		for _, gt := range GardenTypeOptions {
			p := UserProfile{Experience: exp, GardenType: gt}
			assert.NoError(t, p.Validate(), "%s/%s", exp, gt)
		}
	}
}

func TestUserProfileValidate_RejectsUnknownExperience(t *testing.T) {
	p := UserProfile{Experience: "expert"}
	err := p.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "experience")
}

func TestUserProfileValidate_RejectsUnknownGardenType(t *testing.T) {
	p := UserProfile{GardenType: "balcony"}
	err := p.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "garden type")
}

func TestUserProfileIsOnboarded(t *testing.T) {
	assert.False(t, UserProfile{}.IsOnboarded())
	assert.False(t, UserProfile{Name: "Ada", Location: "   "}.IsOnboarded())
	assert.True(t, UserProfile{Name: "Ada", Location: "Lisbon"}.IsOnboarded())
}

func TestUserProfileWithClimate_ReturnsUpdatedCopy(t *testing.T) {
	orig := UserProfile{Name: "Ada", Location: "Oslo"}
	updated := orig.WithClimate(59.9)

	assert.Equal(t, ClimateColdTemperate, updated.ClimateZone)
	assert.Equal(t, HemisphereNorthern, updated.Hemisphere)
	assert.Equal(t, "Ada", updated.Name)
	assert.Empty(t, orig.ClimateZone, "original must not be mutated")
	assert.Empty(t, orig.Hemisphere)
}

func TestClimateForLatitude_Bands(t *testing.T) {
	tests := []struct {
		lat  float64
		zone ClimateZone
		hemi Hemisphere
	}{
		{0, ClimateTropical, HemisphereNorthern},
		{23.5, ClimateTropical, HemisphereNorthern},
		{-23.6, ClimateSubtropical, HemisphereSouthern},
		{35, ClimateSubtropical, HemisphereNorthern},
		{-33.9, ClimateSubtropical, HemisphereSouthern},
		{40.7, ClimateTemperate, HemisphereNorthern},
		{50, ClimateTemperate, HemisphereNorthern},
		{66.5, ClimateColdTemperate, HemisphereNorthern},
		{-77.8, ClimatePolar, HemisphereSouthern},
	}
	for _, tt := range tests {
		zone, hemi := ClimateForLatitude(tt.lat)
		assert.Equal(t, tt.zone, zone, "lat %v", tt.lat)
		assert.Equal(t, tt.hemi, hemi, "lat %v", tt.lat)
	}
}

func TestValidateLatitude(t *testing.T) {
	assert.NoError(t, ValidateLatitude(-90))
	assert.NoError(t, ValidateLatitude(90))
	assert.Error(t, ValidateLatitude(90.1))
	assert.Error(t, ValidateLatitude(-181))
	assert.Error(t, ValidateLatitude(math.NaN()))
}

func TestCoalesceTrimmed(t *testing.T) {
	assert.Equal(t, "there", CoalesceTrimmed("  ", "", " there "))
	assert.Equal(t, "", CoalesceTrimmed(" ", ""))
}
