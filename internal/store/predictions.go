package store

import (
	"fmt"
	"time"
)

// SavePrediction appends a predictor result to the history
func (s *Store) SavePrediction(p *Prediction) error {
	_, err := s.db.Exec(`
		INSERT INTO predictions (
			known_distance, known_unit, known_seconds,
			target_distance, target_unit, predicted_seconds, computed_at
		) VALUES (?, ?, ?, ?, ?, ?, ?)
	`,
		p.KnownDistance, p.KnownUnit, p.KnownSeconds,
		p.TargetDistance, p.TargetUnit, p.PredictedSeconds,
		p.ComputedAt.Format(time.RFC3339),
	)
	return err
}

// GetRecentPredictions retrieves the most recent saved predictions,
// newest first
func (s *Store) GetRecentPredictions(limit int) ([]Prediction, error) {
	rows, err := s.db.Query(`
		SELECT id, known_distance, known_unit, known_seconds,
			target_distance, target_unit, predicted_seconds, computed_at
		FROM predictions
		ORDER BY id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var predictions []Prediction
	for rows.Next() {
		var p Prediction
		var computedAt string

		err := rows.Scan(&p.ID, &p.KnownDistance, &p.KnownUnit, &p.KnownSeconds,
			&p.TargetDistance, &p.TargetUnit, &p.PredictedSeconds, &computedAt)
		if err != nil {
			return nil, err
		}

		var parseErr error
		p.ComputedAt, parseErr = time.Parse(time.RFC3339, computedAt)
		if parseErr != nil {
			return nil, fmt.Errorf("parsing computed_at %q: %w", computedAt, parseErr)
		}

		predictions = append(predictions, p)
	}

	return predictions, rows.Err()
}

// DeleteAllPredictions clears the prediction history
func (s *Store) DeleteAllPredictions() error {
	_, err := s.db.Exec(`DELETE FROM predictions`)
	return err
}
