package dbopen_test

import (
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"

	"github.com/smithmum/final-project/internal/dbopen"
)

func TestOpen(t *testing.T) {
	db := dbopen.OpenMemory(t)

	var journalMode string
	if err := db.QueryRow("PRAGMA journal_mode").Scan(&journalMode); err != nil {
		t.Fatal(err)
	}
	// :memory: may report "memory" instead of "wal" for journal_mode,
	// but the PRAGMA was still executed successfully.
	if journalMode != "wal" && journalMode != "memory" {
		t.Fatalf("journal_mode = %q, want wal or memory", journalMode)
	}

	var fk int
	if err := db.QueryRow("PRAGMA foreign_keys").Scan(&fk); err != nil {
		t.Fatal(err)
	}
	if fk != 1 {
		t.Fatalf("foreign_keys = %d, want 1", fk)
	}

	var busyTimeout int
	if err := db.QueryRow("PRAGMA busy_timeout").Scan(&busyTimeout); err != nil {
		t.Fatal(err)
	}
	if busyTimeout != 10_000 {
		t.Fatalf("busy_timeout = %d, want 10000", busyTimeout)
	}
}

func TestWithSchema(t *testing.T) {
	db := dbopen.OpenMemory(t, dbopen.WithSchema("CREATE TABLE things (id TEXT PRIMARY KEY)"))
	if _, err := db.Exec("INSERT INTO things (id) VALUES ('a')"); err != nil {
		t.Fatal(err)
	}
}

func TestWithSchemaInvalidSQL(t *testing.T) {
	_, err := dbopen.Open(":memory:", dbopen.WithSchema("CREATE GARBAGE"))
	if err == nil {
		t.Fatal("expected error for invalid schema SQL")
	}
}

func TestWithMkdirAll(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "events.db")
	db, err := dbopen.Open(path, dbopen.WithMkdirAll())
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		t.Fatal(err)
	}
}

func TestWithBusyTimeout(t *testing.T) {
	db := dbopen.OpenMemory(t, dbopen.WithBusyTimeout(500))
	var busyTimeout int
	if err := db.QueryRow("PRAGMA busy_timeout").Scan(&busyTimeout); err != nil {
		t.Fatal(err)
	}
	if busyTimeout != 500 {
		t.Fatalf("busy_timeout = %d, want 500", busyTimeout)
	}
}
