package db

import (
	_ "embed"
	"fmt"
)

//go:embed migrations/01_create_users.up.sql
var createUsersUp string

//go:embed migrations/02_create_employees.up.sql
var createEmployeesUp string

//go:embed migrations/03_create_tasks.up.sql
var createTasksUp string

// Migrate applies the schema. Statements are idempotent, so running them on
// every boot is safe.
func (db *DB) Migrate() error {
	db.log.Debug("running migrations")

	if _, err := db.conn.Exec(createUsersUp); err != nil {
		return fmt.Errorf("apply users migration: %w", err)
	}
	if _, err := db.conn.Exec(createEmployeesUp); err != nil {
		return fmt.Errorf("apply employees migration: %w", err)
	}
	if _, err := db.conn.Exec(createTasksUp); err != nil {
		return fmt.Errorf("apply tasks migration: %w", err)
	}

	db.log.Debug("migrations applied")
	return nil
}
