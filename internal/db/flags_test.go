package db

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/nharmon/threadview/internal/types"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "threadview.db")
	conn, err := OpenDatabase(path)
	if err != nil {
		t.Fatalf("OpenDatabase: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	if err := InitSchema(conn); err != nil {
		t.Fatalf("InitSchema: %v", err)
	}
	return conn
}

func TestGetFlagUnset(t *testing.T) {
	conn := openTestDB(t)
	value, err := GetFlag(conn, "seen_first_question_help")
	if err != nil {
		t.Fatalf("GetFlag: %v", err)
	}
	if value != "" {
		t.Fatalf("value = %q, want empty", value)
	}
}

func TestSetFlagRoundTrip(t *testing.T) {
	conn := openTestDB(t)
	if err := SetFlag(conn, "seen_first_question_help", "1"); err != nil {
		t.Fatalf("SetFlag: %v", err)
	}
	value, err := GetFlag(conn, "seen_first_question_help")
	if err != nil {
		t.Fatalf("GetFlag: %v", err)
	}
	if value != "1" {
		t.Fatalf("value = %q, want 1", value)
	}

	// Overwrite
	if err := SetFlag(conn, "seen_first_question_help", "2"); err != nil {
		t.Fatalf("SetFlag: %v", err)
	}
	value, _ = GetFlag(conn, "seen_first_question_help")
	if value != "2" {
		t.Fatalf("value = %q, want 2", value)
	}
}

func TestCachedUserRoundTrip(t *testing.T) {
	conn := openTestDB(t)

	user, err := GetCachedUser(conn)
	if err != nil {
		t.Fatalf("GetCachedUser: %v", err)
	}
	if user != nil {
		t.Fatalf("user = %+v, want nil before caching", user)
	}

	want := types.User{Username: "visitor", DisplayName: "Visitor"}
	if err := SetCachedUser(conn, want); err != nil {
		t.Fatalf("SetCachedUser: %v", err)
	}
	user, err = GetCachedUser(conn)
	if err != nil {
		t.Fatalf("GetCachedUser: %v", err)
	}
	if user == nil || *user != want {
		t.Fatalf("user = %+v, want %+v", user, want)
	}
}
