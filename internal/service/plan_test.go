package service

import (
	"math"
	"testing"

	"traincalc/internal/engine"
)

func TestGetActivePlanCreatesOnFirstUse(t *testing.T) {
	s := newTestStore(t)
	svc := NewPlanService(s)

	view, err := svc.GetActivePlan()
	if err != nil {
		t.Fatalf("GetActivePlan() error = %v", err)
	}
	if view.Name != DefaultPlanName {
		t.Errorf("Name = %q, want %q", view.Name, DefaultPlanName)
	}
	if view.Unit != engine.UnitKm {
		t.Errorf("Unit = %v, want km", view.Unit)
	}

	// Second call returns the same plan, not a new one
	again, err := svc.GetActivePlan()
	if err != nil {
		t.Fatalf("GetActivePlan() second call error = %v", err)
	}
	if again.ID != view.ID {
		t.Errorf("second GetActivePlan() ID = %d, want %d", again.ID, view.ID)
	}
}

func buildPlan(t *testing.T, svc *PlanService) *PlanView {
	t.Helper()

	view, err := svc.GetActivePlan()
	if err != nil {
		t.Fatalf("GetActivePlan() error = %v", err)
	}

	if err := svc.SetBasics(view.ID, "City 10K", 10, engine.Duration{Minutes: 5}); err != nil {
		t.Fatalf("SetBasics() error = %v", err)
	}
	for _, sp := range []struct {
		dist float64
		adj  int
		hill bool
	}{
		{3, -10, false},
		{4, 0, false},
		{3, 20, true},
	} {
		if err := svc.AddSplit(view.ID, sp.dist, sp.adj, sp.hill, ""); err != nil {
			t.Fatalf("AddSplit() error = %v", err)
		}
	}
	if err := svc.AddBreak(view.ID, "drink", 30, 5, "water station"); err != nil {
		t.Fatalf("AddBreak() error = %v", err)
	}
	if err := svc.AddBreak(view.ID, "toilet", 90, 7.5, ""); err != nil {
		t.Fatalf("AddBreak() error = %v", err)
	}

	view, err = svc.GetPlanView(view.ID)
	if err != nil {
		t.Fatalf("GetPlanView() error = %v", err)
	}
	return view
}

func TestPlanViewDerivedFields(t *testing.T) {
	svc := NewPlanService(newTestStore(t))
	view := buildPlan(t, svc)

	// splits: 3*290 + 4*300 + 3*320 = 3030; breaks: 120; total 3150
	want := engine.Duration{Minutes: 52, Seconds: 30}
	if view.TotalTime != want {
		t.Errorf("TotalTime = %v, want %v", view.TotalTime, want)
	}
	if view.BreakSeconds != 120 {
		t.Errorf("BreakSeconds = %d, want 120", view.BreakSeconds)
	}
	if math.Abs(view.SplitDistance-10) > 0.001 {
		t.Errorf("SplitDistance = %v, want 10", view.SplitDistance)
	}
	if math.Abs(view.Discrepancy) > 0.001 {
		t.Errorf("Discrepancy = %v, want 0", view.Discrepancy)
	}

	if view.Splits[0].EffectivePace != "4:50" {
		t.Errorf("Splits[0].EffectivePace = %q, want %q", view.Splits[0].EffectivePace, "4:50")
	}
	// 3 km at 290 s/km = 870s = 14:30
	if view.Splits[0].SegmentTime != (engine.Duration{Minutes: 14, Seconds: 30}) {
		t.Errorf("Splits[0].SegmentTime = %v, want 14:30", view.Splits[0].SegmentTime)
	}
}

func TestPlanDiscrepancySurfacedNotRejected(t *testing.T) {
	svc := NewPlanService(newTestStore(t))
	view := buildPlan(t, svc)

	if err := svc.RemoveSplit(view.ID, 1); err != nil {
		t.Fatalf("RemoveSplit() error = %v", err)
	}

	view, err := svc.GetPlanView(view.ID)
	if err != nil {
		t.Fatalf("GetPlanView() error = %v", err)
	}
	if math.Abs(view.Discrepancy-4) > 0.001 {
		t.Errorf("Discrepancy = %v, want 4", view.Discrepancy)
	}
	// Total still computes over the remaining splits
	if view.TotalTime.IsZero() {
		t.Error("TotalTime is zero, want computed total despite discrepancy")
	}
}

func TestPlanSwitchUnit(t *testing.T) {
	svc := NewPlanService(newTestStore(t))
	view := buildPlan(t, svc)

	if err := svc.SwitchUnit(view.ID, engine.UnitMi); err != nil {
		t.Fatalf("SwitchUnit() error = %v", err)
	}

	view, err := svc.GetPlanView(view.ID)
	if err != nil {
		t.Fatalf("GetPlanView() error = %v", err)
	}

	if view.Unit != engine.UnitMi {
		t.Fatalf("Unit = %v, want mi", view.Unit)
	}
	if math.Abs(view.TargetDistance-6.21) > 0.005 {
		t.Errorf("TargetDistance = %v, want ~6.21", view.TargetDistance)
	}
	// 300 s/km * 1.60934 = 482 s/mi
	if view.BasePace != (engine.Duration{Minutes: 8, Seconds: 2}) {
		t.Errorf("BasePace = %v, want 8:02", view.BasePace)
	}
	if math.Abs(view.Splits[0].Distance-1.86) > 0.005 {
		t.Errorf("Splits[0].Distance = %v, want ~1.86", view.Splits[0].Distance)
	}
	if math.Abs(view.Breaks[1].AtDistance-4.66) > 0.005 {
		t.Errorf("Breaks[1].AtDistance = %v, want ~4.66", view.Breaks[1].AtDistance)
	}
	// Break durations and split adjustments are untouched
	if view.Breaks[0].Duration != 30 || view.Splits[2].Adjustment != 20 {
		t.Error("unit switch must not change durations or pace adjustments")
	}

	// Round trip back lands within rounding tolerance
	if err := svc.SwitchUnit(view.ID, engine.UnitKm); err != nil {
		t.Fatalf("SwitchUnit() back error = %v", err)
	}
	view, err = svc.GetPlanView(view.ID)
	if err != nil {
		t.Fatalf("GetPlanView() error = %v", err)
	}
	if math.Abs(view.TargetDistance-10) > 0.02 {
		t.Errorf("round-trip TargetDistance = %v, want within 0.02 of 10", view.TargetDistance)
	}
}

func TestPlanClampsNegativeInputs(t *testing.T) {
	svc := NewPlanService(newTestStore(t))
	view, err := svc.GetActivePlan()
	if err != nil {
		t.Fatalf("GetActivePlan() error = %v", err)
	}

	if err := svc.SetBasics(view.ID, "", -5, engine.Duration{Minutes: 5}); err != nil {
		t.Fatalf("SetBasics() error = %v", err)
	}
	if err := svc.AddSplit(view.ID, -3, -10, false, ""); err != nil {
		t.Fatalf("AddSplit() error = %v", err)
	}
	if err := svc.AddBreak(view.ID, "drink", -30, -1, ""); err != nil {
		t.Fatalf("AddBreak() error = %v", err)
	}

	view, err = svc.GetPlanView(view.ID)
	if err != nil {
		t.Fatalf("GetPlanView() error = %v", err)
	}
	if view.TargetDistance != 0 {
		t.Errorf("TargetDistance = %v, want 0 (clamped)", view.TargetDistance)
	}
	if view.Splits[0].Distance != 0 {
		t.Errorf("split distance = %v, want 0 (clamped)", view.Splits[0].Distance)
	}
	// Pace adjustments stay signed - negative means faster than base
	if view.Splits[0].Adjustment != -10 {
		t.Errorf("split adjustment = %d, want -10 (signed)", view.Splits[0].Adjustment)
	}
	if view.Breaks[0].Duration != 0 || view.Breaks[0].AtDistance != 0 {
		t.Errorf("break = %+v, want clamped duration/position", view.Breaks[0])
	}
}

func TestPlanRejectsUnknownBreakType(t *testing.T) {
	svc := NewPlanService(newTestStore(t))
	view, err := svc.GetActivePlan()
	if err != nil {
		t.Fatalf("GetActivePlan() error = %v", err)
	}

	if err := svc.AddBreak(view.ID, "nap", 60, 5, ""); err == nil {
		t.Error("AddBreak(\"nap\") expected error, got nil")
	}
}
