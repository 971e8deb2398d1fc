package service

import (
	"fmt"

	"traincalc/internal/engine"
	"traincalc/internal/store"
)

// WorkloadService manages the weekly mileage log and its ACWR column
type WorkloadService struct {
	store *store.Store
}

// NewWorkloadService creates a new workload service
func NewWorkloadService(s *store.Store) *WorkloadService {
	return &WorkloadService{store: s}
}

// WeekView is one week ready for display
type WeekView struct {
	Position int
	Mileage  float64
	ACWR     *float64
	Risk     string
}

// WorkloadData contains everything the workload screen needs
type WorkloadData struct {
	Weeks []WeekView

	// Chart series over the same weeks
	Mileages []float64
	Ratios   []float64 // 0 where undefined, for charting only
}

// GetWorkloadData loads the full weekly sequence with risk bands
func (w *WorkloadService) GetWorkloadData() (*WorkloadData, error) {
	weeks, err := w.store.GetWeeklyLoads()
	if err != nil {
		return nil, fmt.Errorf("loading weekly loads: %w", err)
	}

	data := &WorkloadData{
		Weeks:    make([]WeekView, len(weeks)),
		Mileages: make([]float64, len(weeks)),
		Ratios:   make([]float64, len(weeks)),
	}

	for i, wk := range weeks {
		data.Weeks[i] = WeekView{
			Position: wk.Position,
			Mileage:  wk.Mileage,
			ACWR:     wk.ACWR,
			Risk:     engine.ClassifyACWR(wk.ACWR),
		}
		data.Mileages[i] = wk.Mileage
		if wk.ACWR != nil {
			data.Ratios[i] = *wk.ACWR
		}
	}

	return data, nil
}

// AddWeek appends a week of mileage (clamped at zero) and recomputes the
// ratio sequence
func (w *WorkloadService) AddWeek(mileage float64) error {
	if _, err := w.store.AppendWeek(clampNonNegative(mileage)); err != nil {
		return fmt.Errorf("appending week: %w", err)
	}
	return w.recompute()
}

// UpdateWeek changes one week's mileage and recomputes the ratio sequence
func (w *WorkloadService) UpdateWeek(position int, mileage float64) error {
	if err := w.store.UpdateWeekMileage(position, clampNonNegative(mileage)); err != nil {
		return fmt.Errorf("updating week %d: %w", position, err)
	}
	return w.recompute()
}

// RemoveWeek deletes a week and recomputes the ratio sequence
func (w *WorkloadService) RemoveWeek(position int) error {
	if err := w.store.DeleteWeek(position); err != nil {
		return fmt.Errorf("deleting week %d: %w", position, err)
	}
	return w.recompute()
}

// recompute reruns the engine over the full stored sequence and persists
// the resulting ratio column. The engine is cheap enough to run on every
// mutation, so there is no incremental path.
func (w *WorkloadService) recompute() error {
	weeks, err := w.store.GetWeeklyLoads()
	if err != nil {
		return fmt.Errorf("loading weekly loads: %w", err)
	}

	mileages := make([]float64, len(weeks))
	for i, wk := range weeks {
		mileages[i] = wk.Mileage
	}

	if err := w.store.ReplaceWeeklyACWRs(engine.ComputeACWR(mileages)); err != nil {
		return fmt.Errorf("storing ratios: %w", err)
	}
	return nil
}
