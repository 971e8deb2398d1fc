package store

import "database/sql"

// GetAppState retrieves an app state value by key
// Returns empty string if key doesn't exist
func (s *Store) GetAppState(key string) (string, error) {
	var value string
	err := s.db.QueryRow(`
		SELECT value FROM app_state WHERE key = ?
	`, key).Scan(&value)

	if err == sql.ErrNoRows {
		return "", nil
	}
	return value, err
}

// SetAppState sets an app state value
func (s *Store) SetAppState(key, value string) error {
	_, err := s.db.Exec(`
		INSERT INTO app_state (key, value, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			updated_at = CURRENT_TIMESTAMP
	`, key, value)
	return err
}
