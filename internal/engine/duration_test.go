package engine

import "testing"

func TestDurationTotalSeconds(t *testing.T) {
	tests := []struct {
		name     string
		d        Duration
		expected int
	}{
		{"zero", Duration{}, 0},
		{"seconds only", Duration{Seconds: 45}, 45},
		{"full clock", Duration{Hours: 1, Minutes: 30, Seconds: 15}, 5415},
		{"unnormalized minutes still reduce", Duration{Minutes: 90}, 5400},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.d.TotalSeconds(); got != tt.expected {
				t.Errorf("TotalSeconds() = %d, want %d", got, tt.expected)
			}
		})
	}
}

func TestDurationFromSeconds(t *testing.T) {
	tests := []struct {
		name     string
		total    float64
		expected Duration
	}{
		{"zero", 0, Duration{}},
		{"sub-minute", 59, Duration{Seconds: 59}},
		{"exact hour", 3600, Duration{Hours: 1}},
		{"mixed", 5415, Duration{Hours: 1, Minutes: 30, Seconds: 15}},
		{"fractional seconds truncate", 3122.9, Duration{Minutes: 52, Seconds: 2}},
		{"negative clamps to zero", -10, Duration{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DurationFromSeconds(tt.total); got != tt.expected {
				t.Errorf("DurationFromSeconds(%v) = %+v, want %+v", tt.total, got, tt.expected)
			}
		})
	}
}

func TestDurationString(t *testing.T) {
	d := Duration{Hours: 1, Minutes: 5, Seconds: 9}
	if got := d.String(); got != "01:05:09" {
		t.Errorf("String() = %q, want %q", got, "01:05:09")
	}
}

func TestFormatPaceSeconds(t *testing.T) {
	tests := []struct {
		pace     float64
		expected string
	}{
		{330, "5:30"},
		{59, "0:59"},
		{600.7, "10:00"},
		{-5, "0:00"},
	}

	for _, tt := range tests {
		if got := FormatPaceSeconds(tt.pace); got != tt.expected {
			t.Errorf("FormatPaceSeconds(%v) = %q, want %q", tt.pace, got, tt.expected)
		}
	}
}
