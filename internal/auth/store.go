package auth

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/vmunix/marquee/internal/migrations"
)

// User is a registered account.
type User struct {
	Email        string
	Name         string
	PasswordHash string
	CreatedAt    time.Time
}

// Store persists users in SQLite.
type Store struct {
	db *sql.DB
}

// NewStore creates a user store on an already migrated database.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// OpenDB opens the SQLite database at dsn and applies migrations.
// ":memory:" keeps users for the life of the process only.
func OpenDB(dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if strings.HasPrefix(dsn, ":memory:") {
		// Every connection to :memory: is a separate database.
		db.SetMaxOpenConns(1)
	}
	if err := migrations.Apply(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// mapSQLiteError converts SQLite errors to package errors.
func mapSQLiteError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	// modernc.org/sqlite wraps errors; check the message for constraint violations
	errStr := err.Error()
	if strings.Contains(errStr, "UNIQUE constraint failed") ||
		strings.Contains(errStr, "PRIMARY KEY constraint failed") {
		return ErrUserExists
	}
	return err
}

// Create inserts u. Returns ErrUserExists if the email is taken.
func (s *Store) Create(ctx context.Context, u *User) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO users (email, name, password_hash, created_at) VALUES (?, ?, ?, ?)`,
		u.Email, u.Name, u.PasswordHash, u.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert user: %w", mapSQLiteError(err))
	}
	return nil
}

// Get returns the user registered under email.
// Returns ErrNotFound if there is none.
func (s *Store) Get(ctx context.Context, email string) (*User, error) {
	u := &User{}
	err := s.db.QueryRowContext(ctx,
		`SELECT email, name, password_hash, created_at FROM users WHERE email = ?`, email,
	).Scan(&u.Email, &u.Name, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", mapSQLiteError(err))
	}
	return u, nil
}

// Count returns the number of registered users.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return n, nil
}
