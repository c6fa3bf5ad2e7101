package db

import "database/sql"

func init() {
	RegisterMigration(Migration{
		Version:     1,
		Description: "create rewrite cache table",
		Up: func(db *sql.DB) error {
			_, err := db.Exec(`
				CREATE TABLE IF NOT EXISTS rewrite_cache (
					key TEXT PRIMARY KEY,
					preset_id TEXT NOT NULL,
					language TEXT NOT NULL,
					output TEXT NOT NULL,
					score INTEGER NOT NULL,
					created_at INTEGER NOT NULL
				)
			`)
			if err != nil {
				return err
			}
			_, err = db.Exec(`CREATE INDEX IF NOT EXISTS idx_rewrite_cache_created ON rewrite_cache(created_at)`)
			return err
		},
	})
}
