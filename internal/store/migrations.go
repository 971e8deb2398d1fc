package store

import "database/sql"

// migrate runs all database migrations
func migrate(db *sql.DB) error {
	migrations := []string{
		// Weekly training loads, ordered by position (0 = oldest week).
		// acwr is recomputed from the full sequence on every change and
		// stored alongside so reads don't need the engine.
		`CREATE TABLE IF NOT EXISTS weekly_loads (
			id INTEGER PRIMARY KEY,
			position INTEGER NOT NULL UNIQUE,
			mileage REAL NOT NULL CHECK (mileage >= 0),
			acwr REAL,
			created_at TEXT DEFAULT CURRENT_TIMESTAMP,
			updated_at TEXT DEFAULT CURRENT_TIMESTAMP
		)`,

		`CREATE INDEX IF NOT EXISTS idx_weekly_loads_position ON weekly_loads(position)`,

		// Race pacing plans
		`CREATE TABLE IF NOT EXISTS race_plans (
			id INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			unit TEXT NOT NULL CHECK (unit IN ('km', 'mi')),
			target_distance REAL NOT NULL CHECK (target_distance >= 0),
			base_pace_seconds INTEGER NOT NULL CHECK (base_pace_seconds >= 0),
			created_at TEXT DEFAULT CURRENT_TIMESTAMP,
			updated_at TEXT DEFAULT CURRENT_TIMESTAMP
		)`,

		// Plan segments, ordered by position within a plan
		`CREATE TABLE IF NOT EXISTS plan_splits (
			id INTEGER PRIMARY KEY,
			plan_id INTEGER NOT NULL,
			position INTEGER NOT NULL,
			distance REAL NOT NULL CHECK (distance >= 0),
			pace_adjustment_seconds INTEGER NOT NULL,
			is_hilly INTEGER NOT NULL DEFAULT 0,
			description TEXT NOT NULL DEFAULT '',
			FOREIGN KEY (plan_id) REFERENCES race_plans(id) ON DELETE CASCADE
		)`,

		`CREATE INDEX IF NOT EXISTS idx_plan_splits_plan ON plan_splits(plan_id, position)`,

		// Planned interruptions; position on course is informational
		`CREATE TABLE IF NOT EXISTS plan_breaks (
			id INTEGER PRIMARY KEY,
			plan_id INTEGER NOT NULL,
			type TEXT NOT NULL CHECK (type IN ('drink', 'toilet', 'crowd')),
			duration_seconds INTEGER NOT NULL CHECK (duration_seconds >= 0),
			at_distance REAL NOT NULL CHECK (at_distance >= 0),
			description TEXT NOT NULL DEFAULT '',
			FOREIGN KEY (plan_id) REFERENCES race_plans(id) ON DELETE CASCADE
		)`,

		`CREATE INDEX IF NOT EXISTS idx_plan_breaks_plan ON plan_breaks(plan_id)`,

		// Saved predictor results
		`CREATE TABLE IF NOT EXISTS predictions (
			id INTEGER PRIMARY KEY,
			known_distance REAL NOT NULL,
			known_unit TEXT NOT NULL,
			known_seconds INTEGER NOT NULL,
			target_distance REAL NOT NULL,
			target_unit TEXT NOT NULL,
			predicted_seconds INTEGER NOT NULL,
			computed_at TEXT NOT NULL
		)`,

		// App state (key-value store for UI state like active plan)
		`CREATE TABLE IF NOT EXISTS app_state (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at TEXT DEFAULT CURRENT_TIMESTAMP
		)`,
	}

	for _, m := range migrations {
		if _, err := db.Exec(m); err != nil {
			return err
		}
	}

	return nil
}
