// Package garden sizes a rectangular bed for a given plant spacing.
package garden

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidDimension is returned when a length, width or spacing is not a
// positive finite number.
var ErrInvalidDimension = errors.New("invalid dimension")

// EfficiencyThreshold is the utilization percentage below which tighter
// spacing is recommended.
const EfficiencyThreshold = 70.0

// MaxPlants caps the plant count of a single bed so the grid fits an int
// on every platform.
const MaxPlants = math.MaxInt32

const (
	recommendTighter = "Consider reducing plant spacing for better space utilization"
	recommendGood    = "Good space utilization!"
)

// Layout is the result of fitting a square planting grid into a bed.
// All dimensions share whatever unit the caller used.
type Layout struct {
	Area           float64
	PlantsPerRow   int
	Rows           int
	TotalPlants    int
	Efficiency     float64 // percent of the area covered by plant cells
	Recommendation string
}

// NeedsTighterSpacing reports whether utilization is under the threshold.
func (l Layout) NeedsTighterSpacing() bool {
	return l.Efficiency < EfficiencyThreshold
}

// Calculate lays plants out on a spacing×spacing grid. Rows run along the
// length; plants within a row run across the width.
func Calculate(length, width, spacing float64) (Layout, error) {
	for _, d := range []struct {
		name string
		v    float64
	}{{"length", length}, {"width", width}, {"spacing", spacing}} {
		if !(d.v > 0) || math.IsInf(d.v, 0) {
			return Layout{}, fmt.Errorf("%w: %s must be positive, got %v", ErrInvalidDimension, d.name, d.v)
		}
	}

	perRowF := math.Floor(width / spacing)
	rowsF := math.Floor(length / spacing)
	if perRowF > MaxPlants || rowsF > MaxPlants || perRowF*rowsF > MaxPlants || math.IsInf(length*width, 0) {
		return Layout{}, fmt.Errorf("%w: bed holds more than %d plants", ErrInvalidDimension, MaxPlants)
	}

	area := length * width
	perRow := int(perRowF)
	rows := int(rowsF)
	total := perRow * rows
	efficiency := float64(total) * spacing * spacing / area * 100

	l := Layout{
		Area:         area,
		PlantsPerRow: perRow,
		Rows:         rows,
		TotalPlants:  total,
		Efficiency:   efficiency,
	}
	l.Recommendation = recommendGood
	if l.NeedsTighterSpacing() {
		l.Recommendation = recommendTighter
	}
	return l, nil
}
