package service

import (
	"errors"
	"testing"

	"traincalc/internal/engine"
)

func TestPredictSavesHistory(t *testing.T) {
	svc := NewPredictionService(newTestStore(t))

	known := engine.Performance{
		Distance: engine.Distance{Value: 5, Unit: engine.UnitKm},
		Time:     engine.Duration{Minutes: 25},
	}
	target := engine.Distance{Value: 10, Unit: engine.UnitKm}

	result, err := svc.Predict(known, target)
	if err != nil {
		t.Fatalf("Predict() error = %v", err)
	}

	// 1500 * 2^1.06 = 3127s = 00:52:07
	if result.Predicted != (engine.Duration{Minutes: 52, Seconds: 7}) {
		t.Errorf("Predicted = %v, want 00:52:07", result.Predicted)
	}
	// 3127s over 10 km = 312s/km = 5:12
	if result.Pace != "5:12" {
		t.Errorf("Pace = %q, want %q", result.Pace, "5:12")
	}

	history, err := svc.History()
	if err != nil {
		t.Fatalf("History() error = %v", err)
	}
	if len(history) != 1 {
		t.Fatalf("history has %d entries, want 1", len(history))
	}
	if history[0].PredictedSeconds != 3127 || history[0].KnownSeconds != 1500 {
		t.Errorf("history entry = %+v, want 3127/1500", history[0])
	}
}

func TestPredictZeroKnownDistance(t *testing.T) {
	svc := NewPredictionService(newTestStore(t))

	known := engine.Performance{
		Distance: engine.Distance{Value: 0, Unit: engine.UnitKm},
		Time:     engine.Duration{Minutes: 25},
	}

	_, err := svc.Predict(known, engine.Distance{Value: 10, Unit: engine.UnitKm})
	if !errors.Is(err, engine.ErrZeroKnownDistance) {
		t.Errorf("Predict() error = %v, want ErrZeroKnownDistance", err)
	}

	// Failed predictions don't pollute history
	history, err := svc.History()
	if err != nil {
		t.Fatalf("History() error = %v", err)
	}
	if len(history) != 0 {
		t.Errorf("history has %d entries after failed prediction, want 0", len(history))
	}
}

func TestPredictClampsNegativeTarget(t *testing.T) {
	svc := NewPredictionService(newTestStore(t))

	known := engine.Performance{
		Distance: engine.Distance{Value: 5, Unit: engine.UnitKm},
		Time:     engine.Duration{Minutes: 25},
	}

	result, err := svc.Predict(known, engine.Distance{Value: -10, Unit: engine.UnitKm})
	if err != nil {
		t.Fatalf("Predict() error = %v", err)
	}
	if !result.Predicted.IsZero() {
		t.Errorf("Predicted = %v for clamped zero target, want zero", result.Predicted)
	}
	if result.Pace != "" {
		t.Errorf("Pace = %q for zero target, want empty", result.Pace)
	}
}

func TestClearHistory(t *testing.T) {
	svc := NewPredictionService(newTestStore(t))

	known := engine.Performance{
		Distance: engine.Distance{Value: 5, Unit: engine.UnitKm},
		Time:     engine.Duration{Minutes: 25},
	}
	if _, err := svc.Predict(known, engine.Distance{Value: 10, Unit: engine.UnitKm}); err != nil {
		t.Fatalf("Predict() error = %v", err)
	}

	if err := svc.ClearHistory(); err != nil {
		t.Fatalf("ClearHistory() error = %v", err)
	}

	history, err := svc.History()
	if err != nil {
		t.Fatalf("History() error = %v", err)
	}
	if len(history) != 0 {
		t.Errorf("history has %d entries after clear, want 0", len(history))
	}
}
