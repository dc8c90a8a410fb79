package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate applies the schema. Every statement is idempotent so the whole
// list is replayed on each open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// ALTER TABLE ADD COLUMN has no IF NOT EXISTS form.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS user_profile (
		id          TEXT PRIMARY KEY,
		name        TEXT NOT NULL DEFAULT '',
		location    TEXT NOT NULL DEFAULT '',
		experience  TEXT NOT NULL DEFAULT ''
		            CHECK(experience IN ('','beginner','intermediate','advanced')),
		garden_type TEXT NOT NULL DEFAULT ''
		            CHECK(garden_type IN ('','indoor','outdoor','urban','farm')),
		created_at  TEXT NOT NULL,
		updated_at  TEXT NOT NULL
	)`,

	`ALTER TABLE user_profile ADD COLUMN climate_zone TEXT NOT NULL DEFAULT ''`,
	`ALTER TABLE user_profile ADD COLUMN hemisphere TEXT NOT NULL DEFAULT ''`,

	`CREATE TABLE IF NOT EXISTS chat_messages (
		seq        INTEGER PRIMARY KEY AUTOINCREMENT,
		id         TEXT NOT NULL UNIQUE,
		sender     TEXT NOT NULL CHECK(sender IN ('user','bot')),
		text       TEXT NOT NULL,
		created_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_chat_messages_created ON chat_messages(created_at)`,
}
