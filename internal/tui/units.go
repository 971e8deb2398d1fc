package tui

import (
	"fmt"

	"traincalc/internal/config"
	"traincalc/internal/engine"
)

// Units provides formatting based on user display preferences
type Units struct {
	cfg config.DisplayConfig
}

// NewUnits creates a new Units helper with the given display config
func NewUnits(cfg config.DisplayConfig) Units {
	return Units{cfg: cfg}
}

// Preferred returns the user's preferred working unit
func (u Units) Preferred() engine.Unit {
	if u.cfg.DistanceUnit == "mi" {
		return engine.UnitMi
	}
	return engine.UnitKm
}

// FormatDistance formats a distance in the given unit with its label
func (u Units) FormatDistance(value float64, unit engine.Unit) string {
	return fmt.Sprintf("%.2f %s", value, unit)
}

// FormatDuration formats a duration as hh:mm:ss
func (u Units) FormatDuration(d engine.Duration) string {
	return d.String()
}

// FormatPace formats a pace duration with the per-unit label
func (u Units) FormatPace(d engine.Duration, unit engine.Unit) string {
	total := d.TotalSeconds()
	return fmt.Sprintf("%d:%02d/%s", total/60, total%60, unit)
}

// FormatMileage formats weekly mileage in the preferred unit
func (u Units) FormatMileage(value float64) string {
	return fmt.Sprintf("%.1f %s", value, u.Preferred())
}

// FormatRatio formats an ACWR value, or a dash when undefined
func (u Units) FormatRatio(ratio *float64) string {
	if ratio == nil {
		return "-"
	}
	return fmt.Sprintf("%.2f", *ratio)
}
