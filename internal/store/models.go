package store

import "time"

// WeekEntry is one persisted week of training volume.
// Position orders the sequence; 0 is the oldest week.
type WeekEntry struct {
	ID       int64
	Position int
	Mileage  float64
	ACWR     *float64
}

// RacePlan is a persisted pacing plan header. Splits and breaks are
// loaded separately and attached.
type RacePlan struct {
	ID              int64
	Name            string
	Unit            string
	TargetDistance  float64
	BasePaceSeconds int
	Splits          []PlanSplit
	Breaks          []PlanBreak
}

// PlanSplit is a persisted race segment
type PlanSplit struct {
	ID                    int64
	PlanID                int64
	Position              int
	Distance              float64
	PaceAdjustmentSeconds int
	IsHilly               bool
	Description           string
}

// PlanBreak is a persisted race interruption
type PlanBreak struct {
	ID              int64
	PlanID          int64
	Type            string
	DurationSeconds int
	AtDistance      float64
	Description     string
}

// Prediction is a saved race-time prediction
type Prediction struct {
	ID               int64
	KnownDistance    float64
	KnownUnit        string
	KnownSeconds     int
	TargetDistance   float64
	TargetUnit       string
	PredictedSeconds int
	ComputedAt       time.Time
}
