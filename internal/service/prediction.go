package service

import (
	"fmt"
	"time"

	"traincalc/internal/engine"
	"traincalc/internal/store"
)

// PredictionService runs race-time predictions and keeps a history
type PredictionService struct {
	store *store.Store
}

// NewPredictionService creates a new prediction service
func NewPredictionService(s *store.Store) *PredictionService {
	return &PredictionService{store: s}
}

// PredictionResult is a prediction with its inputs, ready for display
type PredictionResult struct {
	Known     engine.Performance
	Target    engine.Distance
	Predicted engine.Duration
	Pace      string // predicted pace per target unit, m:ss
}

// Predict runs Riegel's formula over the inputs, saves the result to
// history, and returns it. Distances are clamped at zero before the
// engine sees them; a zero known distance surfaces the engine's
// invalid-input error unchanged.
func (ps *PredictionService) Predict(known engine.Performance, target engine.Distance) (*PredictionResult, error) {
	known.Distance.Value = clampNonNegative(known.Distance.Value)
	target.Value = clampNonNegative(target.Value)

	predicted, err := engine.PredictTime(known, target)
	if err != nil {
		return nil, err
	}

	result := &PredictionResult{
		Known:     known,
		Target:    target,
		Predicted: predicted,
	}
	if target.Value > 0 {
		result.Pace = engine.FormatPaceSeconds(float64(predicted.TotalSeconds()) / target.Value)
	}

	record := &store.Prediction{
		KnownDistance:    known.Distance.Value,
		KnownUnit:        string(known.Distance.Unit),
		KnownSeconds:     known.Time.TotalSeconds(),
		TargetDistance:   target.Value,
		TargetUnit:       string(target.Unit),
		PredictedSeconds: predicted.TotalSeconds(),
		ComputedAt:       time.Now().UTC(),
	}
	if err := ps.store.SavePrediction(record); err != nil {
		return nil, fmt.Errorf("saving prediction: %w", err)
	}

	return result, nil
}

// History returns recent predictions, newest first
func (ps *PredictionService) History() ([]store.Prediction, error) {
	return ps.store.GetRecentPredictions(RecentPredictionsLimit)
}

// ClearHistory deletes all saved predictions
func (ps *PredictionService) ClearHistory() error {
	return ps.store.DeleteAllPredictions()
}
