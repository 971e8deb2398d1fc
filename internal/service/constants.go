package service

const (
	// DefaultPlanName is used when a plan is created without a name
	DefaultPlanName = "My Race"

	// RecentPredictionsLimit caps how much history the predictor screen shows
	RecentPredictionsLimit = 10

	// activePlanKey is the app_state key tracking the plan being edited
	activePlanKey = "active_plan_id"
)

// clampNonNegative floors raw numeric input at zero. Negative values
// from the input layer are clamped rather than rejected.
func clampNonNegative(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}

// clampNonNegativeInt floors raw integer input at zero
func clampNonNegativeInt(v int) int {
	if v < 0 {
		return 0
	}
	return v
}
