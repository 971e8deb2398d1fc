package engine

import "fmt"

// BreakType categorizes a planned race interruption
type BreakType string

const (
	BreakDrink  BreakType = "drink"
	BreakToilet BreakType = "toilet"
	BreakCrowd  BreakType = "crowd"
)

// ParseBreakType validates a break type string
func ParseBreakType(s string) (BreakType, error) {
	switch BreakType(s) {
	case BreakDrink, BreakToilet, BreakCrowd:
		return BreakType(s), nil
	default:
		return "", fmt.Errorf("unknown break type %q", s)
	}
}

// Split is one race segment. Distance is in the plan's working unit.
// PaceAdjustmentSeconds is additive seconds per distance unit relative to
// the plan's base pace; negative values mean faster than base.
type Split struct {
	Distance              float64
	PaceAdjustmentSeconds int
	IsHilly               bool
	Description           string
}

// Break is a fixed-duration interruption at a known point on the course.
// Its position never affects the total; breaks are summed independently.
type Break struct {
	Type            BreakType
	DurationSeconds int
	AtDistance      float64
	Description     string
}

// Plan is a race pacing plan. All distances share the working Unit and
// BasePace is time per distance unit.
type Plan struct {
	Unit           Unit
	TargetDistance float64
	BasePace       Duration
	Splits         []Split
	Breaks         []Break
}

// TotalSeconds computes the estimated finish time in seconds: each split
// contributes distance x (base pace + its adjustment), then every break
// duration is added on top. Split order matters for accumulation; break
// order does not.
func (p Plan) TotalSeconds() float64 {
	base := float64(p.BasePace.TotalSeconds())

	var total float64
	for _, s := range p.Splits {
		total += s.Distance * (base + float64(s.PaceAdjustmentSeconds))
	}
	for _, b := range p.Breaks {
		total += float64(b.DurationSeconds)
	}
	return total
}

// TotalTime is TotalSeconds decomposed into clock components
func (p Plan) TotalTime() Duration {
	return DurationFromSeconds(p.TotalSeconds())
}

// EffectivePaceSeconds returns the adjusted pace for a split in seconds
// per distance unit, floored at zero.
func (p Plan) EffectivePaceSeconds(s Split) float64 {
	pace := float64(p.BasePace.TotalSeconds()) + float64(s.PaceAdjustmentSeconds)
	if pace < 0 {
		pace = 0
	}
	return pace
}

// EffectivePace formats a split's adjusted pace as m:ss per unit for
// display. Purely informational; does not affect TotalTime.
func (p Plan) EffectivePace(s Split) string {
	return FormatPaceSeconds(p.EffectivePaceSeconds(s))
}

// SplitDistanceTotal sums the distances of all splits
func (p Plan) SplitDistanceTotal() float64 {
	var sum float64
	for _, s := range p.Splits {
		sum += s.Distance
	}
	return sum
}

// Discrepancy is the target distance minus the sum of split distances.
// Splits are not required to cover the race; the gap is surfaced for
// display, never rejected.
func (p Plan) Discrepancy() float64 {
	return p.TargetDistance - p.SplitDistanceTotal()
}

// ConvertTo returns a copy of the plan rewritten in the given unit. Every
// stored distance (target, split distances, break positions) is converted
// and rounded to 2 decimal places, and the base pace is rescaled to
// seconds per new unit (pace per km x km-per-mile = pace per mile, and
// the inverse going back). Converting to the current unit is a no-op
// copy. Round-tripping is approximate because of the per-step rounding.
func (p Plan) ConvertTo(unit Unit) Plan {
	out := p
	out.Splits = make([]Split, len(p.Splits))
	copy(out.Splits, p.Splits)
	out.Breaks = make([]Break, len(p.Breaks))
	copy(out.Breaks, p.Breaks)

	if unit == p.Unit {
		return out
	}

	out.Unit = unit
	out.TargetDistance = ConvertRounded(p.TargetDistance, p.Unit, unit)
	for i := range out.Splits {
		out.Splits[i].Distance = ConvertRounded(out.Splits[i].Distance, p.Unit, unit)
	}
	for i := range out.Breaks {
		out.Breaks[i].AtDistance = ConvertRounded(out.Breaks[i].AtDistance, p.Unit, unit)
	}

	// Pace scales inversely to distance: seconds per km -> seconds per
	// mile multiplies by the km-per-mile factor.
	paceFactor := KmPerMile
	if unit == UnitKm {
		paceFactor = MilesPerKm
	}
	out.BasePace = DurationFromSeconds(float64(p.BasePace.TotalSeconds()) * paceFactor)

	return out
}
