package service

import (
	"errors"
	"fmt"
	"strconv"

	"traincalc/internal/engine"
	"traincalc/internal/store"
)

// PlanService manages race pacing plans
type PlanService struct {
	store *store.Store
}

// NewPlanService creates a new plan service
func NewPlanService(s *store.Store) *PlanService {
	return &PlanService{store: s}
}

// SplitView is one split with its derived display fields
type SplitView struct {
	Position      int
	Distance      float64
	Adjustment    int
	IsHilly       bool
	Description   string
	EffectivePace string
	SegmentTime   engine.Duration
}

// BreakView is one break ready for display
type BreakView struct {
	ID          int64
	Type        string
	Duration    int
	AtDistance  float64
	Description string
}

// PlanView is the full plan with every derived number the screen shows
type PlanView struct {
	ID             int64
	Name           string
	Unit           engine.Unit
	TargetDistance float64
	BasePace       engine.Duration
	Splits         []SplitView
	Breaks         []BreakView

	TotalTime      engine.Duration
	SplitDistance  float64
	Discrepancy    float64
	BreakSeconds   int
}

// GetActivePlan loads the plan being edited, creating an empty one on
// first use. The active plan ID is tracked in app state so it survives
// restarts.
func (p *PlanService) GetActivePlan() (*PlanView, error) {
	id, err := p.activePlanID()
	if err != nil {
		return nil, err
	}

	if id == 0 {
		id, err = p.store.CreatePlan(DefaultPlanName, string(engine.UnitKm), 0, 0)
		if err != nil {
			return nil, fmt.Errorf("creating plan: %w", err)
		}
		if err := p.store.SetAppState(activePlanKey, strconv.FormatInt(id, 10)); err != nil {
			return nil, fmt.Errorf("saving active plan: %w", err)
		}
	}

	return p.GetPlanView(id)
}

// GetPlanView loads a plan and computes all derived fields via the engine
func (p *PlanService) GetPlanView(id int64) (*PlanView, error) {
	stored, err := p.store.GetPlan(id)
	if err != nil {
		return nil, fmt.Errorf("loading plan: %w", err)
	}

	plan := toEnginePlan(stored)

	view := &PlanView{
		ID:             stored.ID,
		Name:           stored.Name,
		Unit:           plan.Unit,
		TargetDistance: plan.TargetDistance,
		BasePace:       plan.BasePace,
		TotalTime:      plan.TotalTime(),
		SplitDistance:  plan.SplitDistanceTotal(),
		Discrepancy:    plan.Discrepancy(),
	}

	for i, sp := range plan.Splits {
		segment := sp.Distance * plan.EffectivePaceSeconds(sp)
		view.Splits = append(view.Splits, SplitView{
			Position:      i,
			Distance:      sp.Distance,
			Adjustment:    sp.PaceAdjustmentSeconds,
			IsHilly:       sp.IsHilly,
			Description:   sp.Description,
			EffectivePace: plan.EffectivePace(sp),
			SegmentTime:   engine.DurationFromSeconds(segment),
		})
	}

	for i, b := range plan.Breaks {
		view.Breaks = append(view.Breaks, BreakView{
			ID:          stored.Breaks[i].ID,
			Type:        string(b.Type),
			Duration:    b.DurationSeconds,
			AtDistance:  b.AtDistance,
			Description: b.Description,
		})
		view.BreakSeconds += b.DurationSeconds
	}

	return view, nil
}

// SetBasics updates the plan name, target distance, and base pace
func (p *PlanService) SetBasics(id int64, name string, targetDistance float64, basePace engine.Duration) error {
	stored, err := p.store.GetPlan(id)
	if err != nil {
		return fmt.Errorf("loading plan: %w", err)
	}

	if name != "" {
		stored.Name = name
	}
	stored.TargetDistance = clampNonNegative(targetDistance)
	stored.BasePaceSeconds = clampNonNegativeInt(basePace.TotalSeconds())

	if err := p.store.UpdatePlan(stored); err != nil {
		return fmt.Errorf("updating plan: %w", err)
	}
	return nil
}

// AddSplit appends a split, clamping its distance at zero. The pace
// adjustment keeps its sign; negative means faster than base.
func (p *PlanService) AddSplit(id int64, distance float64, adjustment int, isHilly bool, description string) error {
	return p.store.AddSplit(id, store.PlanSplit{
		Distance:              clampNonNegative(distance),
		PaceAdjustmentSeconds: adjustment,
		IsHilly:               isHilly,
		Description:           description,
	})
}

// RemoveSplit deletes the split at a position
func (p *PlanService) RemoveSplit(id int64, position int) error {
	return p.store.DeleteSplit(id, position)
}

// AddBreak adds a break with clamped duration and position
func (p *PlanService) AddBreak(id int64, breakType string, durationSeconds int, atDistance float64, description string) error {
	bt, err := engine.ParseBreakType(breakType)
	if err != nil {
		return err
	}
	return p.store.AddBreak(id, store.PlanBreak{
		Type:            string(bt),
		DurationSeconds: clampNonNegativeInt(durationSeconds),
		AtDistance:      clampNonNegative(atDistance),
		Description:     description,
	})
}

// RemoveBreak deletes a break by row ID
func (p *PlanService) RemoveBreak(breakID int64) error {
	return p.store.DeleteBreak(breakID)
}

// SwitchUnit converts the whole plan (target distance, every split
// distance, every break position, the base pace) to the other unit and
// persists the rewritten values in one transaction.
func (p *PlanService) SwitchUnit(id int64, unit engine.Unit) error {
	stored, err := p.store.GetPlan(id)
	if err != nil {
		return fmt.Errorf("loading plan: %w", err)
	}

	converted := toEnginePlan(stored).ConvertTo(unit)
	fromEnginePlan(stored, converted)

	if err := p.store.SavePlan(stored); err != nil {
		return fmt.Errorf("saving converted plan: %w", err)
	}
	return nil
}

// activePlanID reads the tracked plan ID, returning 0 when none is set
// or the stored plan has since been deleted.
func (p *PlanService) activePlanID() (int64, error) {
	raw, err := p.store.GetAppState(activePlanKey)
	if err != nil {
		return 0, fmt.Errorf("reading active plan: %w", err)
	}
	if raw == "" {
		return 0, nil
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, nil // stale value, fall back to creating a plan
	}

	if _, err := p.store.GetPlan(id); errors.Is(err, store.ErrPlanNotFound) {
		return 0, nil
	} else if err != nil {
		return 0, err
	}
	return id, nil
}

// toEnginePlan maps a stored plan into the engine's types
func toEnginePlan(stored *store.RacePlan) engine.Plan {
	plan := engine.Plan{
		Unit:           engine.Unit(stored.Unit),
		TargetDistance: stored.TargetDistance,
		BasePace:       engine.DurationFromSeconds(float64(stored.BasePaceSeconds)),
	}
	for _, sp := range stored.Splits {
		plan.Splits = append(plan.Splits, engine.Split{
			Distance:              sp.Distance,
			PaceAdjustmentSeconds: sp.PaceAdjustmentSeconds,
			IsHilly:               sp.IsHilly,
			Description:           sp.Description,
		})
	}
	for _, b := range stored.Breaks {
		plan.Breaks = append(plan.Breaks, engine.Break{
			Type:            engine.BreakType(b.Type),
			DurationSeconds: b.DurationSeconds,
			AtDistance:      b.AtDistance,
			Description:     b.Description,
		})
	}
	return plan
}

// fromEnginePlan writes converted engine values back onto the stored
// record, preserving row IDs and ordering.
func fromEnginePlan(stored *store.RacePlan, plan engine.Plan) {
	stored.Unit = string(plan.Unit)
	stored.TargetDistance = plan.TargetDistance
	stored.BasePaceSeconds = plan.BasePace.TotalSeconds()
	for i := range stored.Splits {
		stored.Splits[i].Distance = plan.Splits[i].Distance
	}
	for i := range stored.Breaks {
		stored.Breaks[i].AtDistance = plan.Breaks[i].AtDistance
	}
}
