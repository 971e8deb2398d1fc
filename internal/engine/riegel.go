package engine

import (
	"errors"
	"math"
)

// riegelExponent is the empirical fatigue exponent from Riegel's model.
// Endurance performance degrades slightly faster than linearly with
// distance; 1.06 is the standard value for running.
const riegelExponent = 1.06

// ErrZeroKnownDistance is returned when a prediction is requested from a
// known performance whose distance is zero.
var ErrZeroKnownDistance = errors.New("known distance must be greater than zero")

// Distance is a length with an explicit unit
type Distance struct {
	Value float64
	Unit  Unit
}

// Km returns the distance normalized to kilometers
func (d Distance) Km() float64 {
	return ToKm(d.Value, d.Unit)
}

// Performance is a known race result used as the basis for prediction
type Performance struct {
	Distance Distance
	Time     Duration
}

// PredictTime extrapolates a race time for a target distance from a known
// performance using Riegel's formula:
//
//	predicted = known * (target / known distance) ^ 1.06
//
// Both distances are normalized to kilometers before the ratio is taken.
// A target distance of zero predicts a zero time. A known distance of
// zero is invalid input and returns ErrZeroKnownDistance.
func PredictTime(known Performance, target Distance) (Duration, error) {
	knownKm := known.Distance.Km()
	if knownKm <= 0 {
		return Duration{}, ErrZeroKnownDistance
	}

	targetKm := target.Km()
	if targetKm == 0 {
		return Duration{}, nil
	}

	knownSeconds := float64(known.Time.TotalSeconds())
	predicted := knownSeconds * math.Pow(targetKm/knownKm, riegelExponent)

	return DurationFromSeconds(predicted), nil
}
