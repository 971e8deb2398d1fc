package store

import (
	"database/sql"
	"errors"
	"fmt"
)

// GetPlan retrieves a race plan with its splits and breaks attached.
// Splits come back ordered by position; breaks in insertion order.
func (s *Store) GetPlan(id int64) (*RacePlan, error) {
	var p RacePlan
	err := s.db.QueryRow(`
		SELECT id, name, unit, target_distance, base_pace_seconds
		FROM race_plans
		WHERE id = ?
	`, id).Scan(&p.ID, &p.Name, &p.Unit, &p.TargetDistance, &p.BasePaceSeconds)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrPlanNotFound
	}
	if err != nil {
		return nil, err
	}

	if p.Splits, err = s.getPlanSplits(id); err != nil {
		return nil, fmt.Errorf("loading splits: %w", err)
	}
	if p.Breaks, err = s.getPlanBreaks(id); err != nil {
		return nil, fmt.Errorf("loading breaks: %w", err)
	}

	return &p, nil
}

// GetPlans retrieves all plan headers (no splits or breaks)
func (s *Store) GetPlans() ([]RacePlan, error) {
	rows, err := s.db.Query(`
		SELECT id, name, unit, target_distance, base_pace_seconds
		FROM race_plans
		ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var plans []RacePlan
	for rows.Next() {
		var p RacePlan
		if err := rows.Scan(&p.ID, &p.Name, &p.Unit, &p.TargetDistance, &p.BasePaceSeconds); err != nil {
			return nil, err
		}
		plans = append(plans, p)
	}
	return plans, rows.Err()
}

// CreatePlan inserts a new plan header and returns its ID
func (s *Store) CreatePlan(name, unit string, targetDistance float64, basePaceSeconds int) (int64, error) {
	res, err := s.db.Exec(`
		INSERT INTO race_plans (name, unit, target_distance, base_pace_seconds)
		VALUES (?, ?, ?, ?)
	`, name, unit, targetDistance, basePaceSeconds)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// UpdatePlan rewrites a plan header
func (s *Store) UpdatePlan(p *RacePlan) error {
	res, err := s.db.Exec(`
		UPDATE race_plans
		SET name = ?, unit = ?, target_distance = ?, base_pace_seconds = ?,
			updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`, p.Name, p.Unit, p.TargetDistance, p.BasePaceSeconds, p.ID)
	if err != nil {
		return err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrPlanNotFound
	}
	return nil
}

// SavePlan rewrites a plan and all of its splits and breaks in one
// transaction. Used after a unit switch, where every stored distance
// changes at once.
func (s *Store) SavePlan(p *RacePlan) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	res, err := tx.Exec(`
		UPDATE race_plans
		SET name = ?, unit = ?, target_distance = ?, base_pace_seconds = ?,
			updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`, p.Name, p.Unit, p.TargetDistance, p.BasePaceSeconds, p.ID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrPlanNotFound
	}

	if _, err := tx.Exec(`DELETE FROM plan_splits WHERE plan_id = ?`, p.ID); err != nil {
		return err
	}
	if _, err := tx.Exec(`DELETE FROM plan_breaks WHERE plan_id = ?`, p.ID); err != nil {
		return err
	}

	for i, sp := range p.Splits {
		if _, err := tx.Exec(`
			INSERT INTO plan_splits (plan_id, position, distance, pace_adjustment_seconds, is_hilly, description)
			VALUES (?, ?, ?, ?, ?, ?)
		`, p.ID, i, sp.Distance, sp.PaceAdjustmentSeconds, boolToInt(sp.IsHilly), sp.Description); err != nil {
			return err
		}
	}
	for _, b := range p.Breaks {
		if _, err := tx.Exec(`
			INSERT INTO plan_breaks (plan_id, type, duration_seconds, at_distance, description)
			VALUES (?, ?, ?, ?, ?)
		`, p.ID, b.Type, b.DurationSeconds, b.AtDistance, b.Description); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// DeletePlan removes a plan; splits and breaks cascade
func (s *Store) DeletePlan(id int64) error {
	res, err := s.db.Exec(`DELETE FROM race_plans WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrPlanNotFound
	}
	return nil
}

// AddSplit appends a split to a plan
func (s *Store) AddSplit(planID int64, sp PlanSplit) error {
	var next int
	err := s.db.QueryRow(`
		SELECT COALESCE(MAX(position) + 1, 0) FROM plan_splits WHERE plan_id = ?
	`, planID).Scan(&next)
	if err != nil {
		return fmt.Errorf("finding next split position: %w", err)
	}

	_, err = s.db.Exec(`
		INSERT INTO plan_splits (plan_id, position, distance, pace_adjustment_seconds, is_hilly, description)
		VALUES (?, ?, ?, ?, ?, ?)
	`, planID, next, sp.Distance, sp.PaceAdjustmentSeconds, boolToInt(sp.IsHilly), sp.Description)
	return err
}

// DeleteSplit removes a split and closes the position gap
func (s *Store) DeleteSplit(planID int64, position int) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`
		DELETE FROM plan_splits WHERE plan_id = ? AND position = ?
	`, planID, position); err != nil {
		return err
	}
	if _, err := tx.Exec(`
		UPDATE plan_splits SET position = position - 1
		WHERE plan_id = ? AND position > ?
	`, planID, position); err != nil {
		return err
	}

	return tx.Commit()
}

// AddBreak adds a break to a plan
func (s *Store) AddBreak(planID int64, b PlanBreak) error {
	_, err := s.db.Exec(`
		INSERT INTO plan_breaks (plan_id, type, duration_seconds, at_distance, description)
		VALUES (?, ?, ?, ?, ?)
	`, planID, b.Type, b.DurationSeconds, b.AtDistance, b.Description)
	return err
}

// DeleteBreak removes a break by its row ID
func (s *Store) DeleteBreak(id int64) error {
	_, err := s.db.Exec(`DELETE FROM plan_breaks WHERE id = ?`, id)
	return err
}

func (s *Store) getPlanSplits(planID int64) ([]PlanSplit, error) {
	rows, err := s.db.Query(`
		SELECT id, plan_id, position, distance, pace_adjustment_seconds, is_hilly, description
		FROM plan_splits
		WHERE plan_id = ?
		ORDER BY position
	`, planID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var splits []PlanSplit
	for rows.Next() {
		var sp PlanSplit
		var hilly int64
		if err := rows.Scan(&sp.ID, &sp.PlanID, &sp.Position, &sp.Distance,
			&sp.PaceAdjustmentSeconds, &hilly, &sp.Description); err != nil {
			return nil, err
		}
		sp.IsHilly = hilly == 1
		splits = append(splits, sp)
	}
	return splits, rows.Err()
}

func (s *Store) getPlanBreaks(planID int64) ([]PlanBreak, error) {
	rows, err := s.db.Query(`
		SELECT id, plan_id, type, duration_seconds, at_distance, description
		FROM plan_breaks
		WHERE plan_id = ?
		ORDER BY id
	`, planID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var breaks []PlanBreak
	for rows.Next() {
		var b PlanBreak
		if err := rows.Scan(&b.ID, &b.PlanID, &b.Type, &b.DurationSeconds,
			&b.AtDistance, &b.Description); err != nil {
			return nil, err
		}
		breaks = append(breaks, b)
	}
	return breaks, rows.Err()
}

func boolToInt(b bool) int64 {
	if b {
		return 1
	}
	return 0
}
