package engine

import (
	"errors"
	"math"
	"testing"
)

func TestPredictTime(t *testing.T) {
	tests := []struct {
		name     string
		known    Performance
		target   Distance
		expected Duration
		delta    float64 // tolerance on total seconds
	}{
		{
			name: "5k to 10k doubles with fatigue",
			known: Performance{
				Distance: Distance{Value: 5, Unit: UnitKm},
				Time:     Duration{Minutes: 25},
			},
			target: Distance{Value: 10, Unit: UnitKm},
			// 1500 * 2^1.06 = 3127s, floored to 00:52:07
			expected: Duration{Hours: 0, Minutes: 52, Seconds: 7},
			delta:    1,
		},
		{
			name: "same distance predicts same time",
			known: Performance{
				Distance: Distance{Value: 10, Unit: UnitKm},
				Time:     Duration{Minutes: 50},
			},
			target:   Distance{Value: 10, Unit: UnitKm},
			expected: Duration{Minutes: 50},
			delta:    0,
		},
		{
			name: "shorter target predicts faster time",
			known: Performance{
				Distance: Distance{Value: 10, Unit: UnitKm},
				Time:     Duration{Minutes: 50},
			},
			target: Distance{Value: 5, Unit: UnitKm},
			// 3000 * 0.5^1.06 = 1438.9s, floored
			expected: Duration{Minutes: 23, Seconds: 58},
			delta:    1,
		},
		{
			name: "mixed units are normalized",
			known: Performance{
				Distance: Distance{Value: 3.107, Unit: UnitMi}, // ~5 km
				Time:     Duration{Minutes: 25},
			},
			target:   Distance{Value: 5, Unit: UnitKm},
			expected: Duration{Minutes: 25},
			delta:    2,
		},
		{
			name: "zero target predicts zero",
			known: Performance{
				Distance: Distance{Value: 5, Unit: UnitKm},
				Time:     Duration{Minutes: 25},
			},
			target:   Distance{Value: 0, Unit: UnitKm},
			expected: Duration{},
			delta:    0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := PredictTime(tt.known, tt.target)
			if err != nil {
				t.Fatalf("PredictTime() error = %v", err)
			}

			gotSec := float64(got.TotalSeconds())
			wantSec := float64(tt.expected.TotalSeconds())
			if math.Abs(gotSec-wantSec) > tt.delta {
				t.Errorf("PredictTime() = %v (%vs), want %v (%vs)", got, gotSec, tt.expected, wantSec)
			}
		})
	}
}

func TestPredictTimeZeroKnownDistance(t *testing.T) {
	known := Performance{
		Distance: Distance{Value: 0, Unit: UnitKm},
		Time:     Duration{Minutes: 25},
	}

	_, err := PredictTime(known, Distance{Value: 10, Unit: UnitKm})
	if !errors.Is(err, ErrZeroKnownDistance) {
		t.Errorf("PredictTime() error = %v, want ErrZeroKnownDistance", err)
	}
}

func TestPredictTimeFloorsFractionalSeconds(t *testing.T) {
	known := Performance{
		Distance: Distance{Value: 5, Unit: UnitKm},
		Time:     Duration{Minutes: 25},
	}

	got, err := PredictTime(known, Distance{Value: 10, Unit: UnitKm})
	if err != nil {
		t.Fatalf("PredictTime() error = %v", err)
	}

	// The raw prediction is fractional; decomposition must floor it so
	// the components reassemble to a whole-second total.
	raw := 1500 * math.Pow(2, riegelExponent)
	if got.TotalSeconds() != int(raw) {
		t.Errorf("TotalSeconds() = %d, want floor(%v) = %d", got.TotalSeconds(), raw, int(raw))
	}
}
