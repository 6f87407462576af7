// Package migrations provides embedded SQL migration files.
package migrations

import (
	"database/sql"
	_ "embed"
	"fmt"
)

//go:embed sql/001_users.sql
var UsersSQL string

// Apply runs every migration against db. Statements are idempotent.
func Apply(db *sql.DB) error {
	if _, err := db.Exec(UsersSQL); err != nil {
		return fmt.Errorf("migrate users: %w", err)
	}
	return nil
}
