package engine

import (
	"fmt"
	"math"
)

// Unit is a distance unit the calculators work in
type Unit string

const (
	UnitKm Unit = "km"
	UnitMi Unit = "mi"
)

const (
	// KmPerMile is the distance conversion factor (1 mi = 1.60934 km)
	KmPerMile = 1.60934
	// MilesPerKm is the inverse factor (1 km = 0.621371 mi)
	MilesPerKm = 0.621371
)

// ParseUnit validates a unit string
func ParseUnit(s string) (Unit, error) {
	switch Unit(s) {
	case UnitKm, UnitMi:
		return Unit(s), nil
	default:
		return "", fmt.Errorf("unknown distance unit %q (want \"km\" or \"mi\")", s)
	}
}

// Convert converts a distance value between units.
// Converting to the same unit returns the value unchanged.
func Convert(value float64, from, to Unit) float64 {
	if from == to {
		return value
	}
	if from == UnitKm && to == UnitMi {
		return value * MilesPerKm
	}
	return value * KmPerMile
}

// ConvertRounded converts a distance value between units and rounds the
// result to 2 decimal places. Used when rewriting stored plan values on a
// unit switch, where displayed precision is 2 decimals; round-tripping
// km -> mi -> km is therefore only approximate.
func ConvertRounded(value float64, from, to Unit) float64 {
	return Round2(Convert(value, from, to))
}

// ToKm normalizes a distance value to kilometers
func ToKm(value float64, unit Unit) float64 {
	return Convert(value, unit, UnitKm)
}

// Round2 rounds to 2 decimal places
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
