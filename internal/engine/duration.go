package engine

import "fmt"

// Duration is a race or pace time broken into clock components.
// All components are non-negative; TotalSeconds is the canonical value.
type Duration struct {
	Hours   int
	Minutes int
	Seconds int
}

// TotalSeconds reduces the duration to seconds
func (d Duration) TotalSeconds() int {
	return d.Hours*3600 + d.Minutes*60 + d.Seconds
}

// IsZero reports whether the duration is exactly zero
func (d Duration) IsZero() bool {
	return d.TotalSeconds() == 0
}

// String formats the duration as hh:mm:ss
func (d Duration) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", d.Hours, d.Minutes, d.Seconds)
}

// DurationFromSeconds decomposes total seconds into hours/minutes/seconds
// using floor division. Fractional seconds are truncated, not rounded.
// Negative inputs clamp to zero.
func DurationFromSeconds(total float64) Duration {
	if total < 0 {
		total = 0
	}
	whole := int(total)
	return Duration{
		Hours:   whole / 3600,
		Minutes: (whole % 3600) / 60,
		Seconds: whole % 60,
	}
}

// FormatPaceSeconds formats seconds-per-unit as m:ss for display
func FormatPaceSeconds(paceSeconds float64) string {
	if paceSeconds < 0 {
		paceSeconds = 0
	}
	whole := int(paceSeconds)
	return fmt.Sprintf("%d:%02d", whole/60, whole%60)
}
