package engine

// WeeklyLoad is one calendar week of training volume.
// ACWR is nil until enough history exists to compute it.
type WeeklyLoad struct {
	Mileage float64
	ACWR    *float64
}

// acwrWindowWeeks is the trailing window used for chronic load.
// The acute week is the most recent week inside this window.
const acwrWindowWeeks = 4

// Risk band labels for ACWR values
const (
	RiskNA       = "N/A"
	RiskLow      = "Low Load"
	RiskOptimal  = "Optimal"
	RiskHigh     = "High Risk"
	RiskVeryHigh = "Very High Risk"
)

// ComputeACWR produces the acute:chronic workload ratio for each week in
// an ordered mileage sequence. The result has the same length as the
// input; index i is nil for the first three weeks (no 4-week window yet).
//
// For week i >= 3: acute load is week i's mileage alone, chronic load is
// the mean over weeks [i-3, i] inclusive, and the ratio is acute/chronic
// rounded to 2 decimal places. A chronic load of zero resolves to a
// ratio of 0 rather than an error.
//
// The computation is a pure pass over the full sequence; recomputing
// with identical input yields identical output.
func ComputeACWR(mileages []float64) []*float64 {
	ratios := make([]*float64, len(mileages))

	for i := acwrWindowWeeks - 1; i < len(mileages); i++ {
		acute := mileages[i]

		var sum float64
		for j := i - (acwrWindowWeeks - 1); j <= i; j++ {
			sum += mileages[j]
		}
		chronic := sum / acwrWindowWeeks

		ratio := 0.0
		if chronic > 0 {
			ratio = Round2(acute / chronic)
		}
		ratios[i] = &ratio
	}

	return ratios
}

// ComputeWeeklyLoads runs ComputeACWR over a mileage sequence and pairs
// each week with its ratio.
func ComputeWeeklyLoads(mileages []float64) []WeeklyLoad {
	ratios := ComputeACWR(mileages)
	loads := make([]WeeklyLoad, len(mileages))
	for i, m := range mileages {
		loads[i] = WeeklyLoad{Mileage: m, ACWR: ratios[i]}
	}
	return loads
}

// ClassifyACWR maps a ratio to its qualitative risk band. Boundary
// values belong to the lower-inclusive band: exactly 1.3 is Optimal and
// exactly 1.5 is High Risk.
func ClassifyACWR(ratio *float64) string {
	if ratio == nil {
		return RiskNA
	}
	switch r := *ratio; {
	case r < 0.8:
		return RiskLow
	case r <= 1.3:
		return RiskOptimal
	case r <= 1.5:
		return RiskHigh
	default:
		return RiskVeryHigh
	}
}
