package db

import "database/sql"

const schemaSQL = `
-- Durable client flags (one-time hints, dismissed dialogs)
CREATE TABLE IF NOT EXISTS threadview_flags (
  key TEXT PRIMARY KEY,
  value TEXT NOT NULL
);

-- Cached identity from the last successful user resolution
CREATE TABLE IF NOT EXISTS threadview_identity (
  username TEXT PRIMARY KEY,
  display_name TEXT,
  cached_at INTEGER NOT NULL
);
`

// InitSchema creates the client tables when missing.
func InitSchema(db *sql.DB) error {
	_, err := db.Exec(schemaSQL)
	return err
}
