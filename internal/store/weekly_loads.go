package store

import (
	"database/sql"
	"errors"
	"fmt"
)

// GetWeeklyLoads retrieves the full weekly load sequence ordered by position
func (s *Store) GetWeeklyLoads() ([]WeekEntry, error) {
	rows, err := s.db.Query(`
		SELECT id, position, mileage, acwr
		FROM weekly_loads
		ORDER BY position
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var weeks []WeekEntry
	for rows.Next() {
		var w WeekEntry
		if err := rows.Scan(&w.ID, &w.Position, &w.Mileage, &w.ACWR); err != nil {
			return nil, err
		}
		weeks = append(weeks, w)
	}
	return weeks, rows.Err()
}

// AppendWeek adds a new week at the end of the sequence and returns it
func (s *Store) AppendWeek(mileage float64) (*WeekEntry, error) {
	var next int
	err := s.db.QueryRow(`SELECT COALESCE(MAX(position) + 1, 0) FROM weekly_loads`).Scan(&next)
	if err != nil {
		return nil, fmt.Errorf("finding next position: %w", err)
	}

	res, err := s.db.Exec(`
		INSERT INTO weekly_loads (position, mileage) VALUES (?, ?)
	`, next, mileage)
	if err != nil {
		return nil, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	return &WeekEntry{ID: id, Position: next, Mileage: mileage}, nil
}

// UpdateWeekMileage changes the mileage for the week at a position
func (s *Store) UpdateWeekMileage(position int, mileage float64) error {
	res, err := s.db.Exec(`
		UPDATE weekly_loads
		SET mileage = ?, updated_at = CURRENT_TIMESTAMP
		WHERE position = ?
	`, mileage, position)
	if err != nil {
		return err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrWeekNotFound
	}
	return nil
}

// DeleteWeek removes the week at a position and closes the gap so
// positions stay contiguous from 0.
func (s *Store) DeleteWeek(position int) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	res, err := tx.Exec(`DELETE FROM weekly_loads WHERE position = ?`, position)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrWeekNotFound
	}

	if _, err := tx.Exec(`
		UPDATE weekly_loads
		SET position = position - 1, updated_at = CURRENT_TIMESTAMP
		WHERE position > ?
	`, position); err != nil {
		return err
	}

	return tx.Commit()
}

// SetWeekACWR stores a computed ratio (or clears it) for a week
func (s *Store) SetWeekACWR(position int, acwr *float64) error {
	var value sql.NullFloat64
	if acwr != nil {
		value = sql.NullFloat64{Float64: *acwr, Valid: true}
	}

	res, err := s.db.Exec(`
		UPDATE weekly_loads
		SET acwr = ?, updated_at = CURRENT_TIMESTAMP
		WHERE position = ?
	`, value, position)
	if err != nil {
		return err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrWeekNotFound
	}
	return nil
}

// ReplaceWeeklyACWRs writes the full recomputed ratio column in one
// transaction. The slice is positional and must match the stored
// sequence length.
func (s *Store) ReplaceWeeklyACWRs(ratios []*float64) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for i, r := range ratios {
		var value sql.NullFloat64
		if r != nil {
			value = sql.NullFloat64{Float64: *r, Valid: true}
		}
		if _, err := tx.Exec(`
			UPDATE weekly_loads
			SET acwr = ?, updated_at = CURRENT_TIMESTAMP
			WHERE position = ?
		`, value, i); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// GetWeek retrieves a single week by position
func (s *Store) GetWeek(position int) (*WeekEntry, error) {
	var w WeekEntry
	err := s.db.QueryRow(`
		SELECT id, position, mileage, acwr
		FROM weekly_loads
		WHERE position = ?
	`, position).Scan(&w.ID, &w.Position, &w.Mileage, &w.ACWR)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrWeekNotFound
	}
	if err != nil {
		return nil, err
	}
	return &w, nil
}
