// Package testutil provides an in-memory store for repository, service
// and handler tests.
package testutil

import (
	"context"
	"database/sql"
	"testing"

	"github.com/rs/zerolog"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	_ "modernc.org/sqlite"
)

// schema mirrors database/migrations/001_setup.sql in SQLite syntax.
const schema = `
CREATE TABLE departments (
    department_id   INTEGER PRIMARY KEY AUTOINCREMENT,
    department_name TEXT NOT NULL
);

CREATE TABLE managers (
    manager_id     INTEGER PRIMARY KEY AUTOINCREMENT,
    manager_name   TEXT NOT NULL,
    manager_salary INTEGER NOT NULL DEFAULT 0 CHECK (manager_salary >= 0),
    manager_age    INTEGER NOT NULL DEFAULT 0 CHECK (manager_age >= 0),
    email          TEXT NOT NULL DEFAULT '',
    address        TEXT NOT NULL DEFAULT '',
    phone          TEXT NOT NULL DEFAULT '',
    is_appointed   BOOLEAN NOT NULL DEFAULT FALSE,
    department_id  INTEGER UNIQUE REFERENCES departments (department_id) ON DELETE SET NULL
);

CREATE TABLE employees (
    employee_id     INTEGER PRIMARY KEY AUTOINCREMENT,
    employee_name   TEXT NOT NULL,
    employee_salary INTEGER NOT NULL DEFAULT 0 CHECK (employee_salary >= 0),
    employee_age    INTEGER NOT NULL DEFAULT 0 CHECK (employee_age >= 0),
    designation     TEXT NOT NULL DEFAULT '',
    email           TEXT NOT NULL DEFAULT '',
    address         TEXT NOT NULL DEFAULT '',
    phone           TEXT NOT NULL DEFAULT '',
    department_id   INTEGER NOT NULL REFERENCES departments (department_id) ON DELETE RESTRICT,
    manager_id      INTEGER REFERENCES managers (manager_id) ON DELETE SET NULL
);

CREATE TABLE employee_tasks (
    task_id          INTEGER PRIMARY KEY AUTOINCREMENT,
    task_name        TEXT NOT NULL,
    task_description TEXT NOT NULL DEFAULT '',
    task_due_date    TIMESTAMP NOT NULL,
    task_status      TEXT NOT NULL DEFAULT 'pending'
        CHECK (task_status IN ('pending', 'in_progress', 'completed')),
    employee_id      INTEGER NOT NULL REFERENCES employees (employee_id) ON DELETE CASCADE
);
`

// SetupTestDB opens a fresh in-memory SQLite store with the schema applied
// and foreign keys enforced. It is closed when the test ends.
func SetupTestDB(t *testing.T) *bun.DB {
	t.Helper()

	sqldb, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}

	// Every connection to :memory: is a separate database.
	sqldb.SetMaxOpenConns(1)

	db := bun.NewDB(sqldb, sqlitedialect.New())
	t.Cleanup(func() {
		_ = db.Close()
	})

	ctx := context.Background()
	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys = ON"); err != nil {
		t.Fatalf("failed to enable foreign keys: %v", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		t.Fatalf("failed to create test schema: %v", err)
	}

	return db
}

// Logger returns a logger that discards everything.
func Logger() *zerolog.Logger {
	logger := zerolog.Nop()
	return &logger
}
