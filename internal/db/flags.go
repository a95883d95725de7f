package db

import (
	"database/sql"
	"time"

	"github.com/nharmon/threadview/internal/types"
)

// GetFlag returns a flag value, or "" when unset.
func GetFlag(db *sql.DB, key string) (string, error) {
	row := db.QueryRow("SELECT value FROM threadview_flags WHERE key = ?", key)
	var value string
	if err := row.Scan(&value); err != nil {
		if err == sql.ErrNoRows {
			return "", nil
		}
		return "", err
	}
	return value, nil
}

// SetFlag sets a flag value.
func SetFlag(db *sql.DB, key, value string) error {
	_, err := db.Exec("INSERT OR REPLACE INTO threadview_flags (key, value) VALUES (?, ?)", key, value)
	return err
}

// GetCachedUser returns the locally cached identity, or nil if none.
func GetCachedUser(db *sql.DB) (*types.User, error) {
	row := db.QueryRow("SELECT username, display_name FROM threadview_identity ORDER BY cached_at DESC LIMIT 1")
	var user types.User
	var display sql.NullString
	if err := row.Scan(&user.Username, &display); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	if display.Valid {
		user.DisplayName = display.String
	}
	return &user, nil
}

// SetCachedUser persists the resolved identity for reuse across sessions.
func SetCachedUser(db *sql.DB, user types.User) error {
	_, err := db.Exec(`
		INSERT OR REPLACE INTO threadview_identity (username, display_name, cached_at)
		VALUES (?, ?, ?)
	`, user.Username, user.DisplayName, time.Now().Unix())
	return err
}
