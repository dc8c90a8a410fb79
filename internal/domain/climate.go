package domain

import (
	"fmt"
	"math"
)

// ClimateForLatitude classifies a latitude into a simplified climate zone
// using absolute-latitude bands, and reports the hemisphere (the equator
// counts as northern).
func ClimateForLatitude(lat float64) (ClimateZone, Hemisphere) {
	hemisphere := HemisphereNorthern
	if lat < 0 {
		hemisphere = HemisphereSouthern
	}

	abs := math.Abs(lat)
	var zone ClimateZone
	switch {
	case abs <= 23.5:
		zone = ClimateTropical
	case abs <= 35:
		zone = ClimateSubtropical
	case abs <= 50:
		zone = ClimateTemperate
	case abs <= 66.5:
		zone = ClimateColdTemperate
	default:
		zone = ClimatePolar
	}
	return zone, hemisphere
}

// ValidateLatitude rejects values outside [-90, 90] and NaN.
func ValidateLatitude(lat float64) error {
	if math.IsNaN(lat) || lat < -90 || lat > 90 {
		return fmt.Errorf("latitude %v must be between -90 and 90", lat)
	}
	return nil
}
