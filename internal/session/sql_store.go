package session

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

const (
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite"
)

// SQLStore keeps session state in a two column table so several gateway
// replicas can share one token pair.
type SQLStore struct {
	db     *sql.DB
	driver string
}

// OpenSQLStore opens dsn with the named driver and prepares the table.
func OpenSQLStore(ctx context.Context, driver, dsn string) (*SQLStore, error) {
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("opening session db: %w", err)
	}
	if driver == DriverSQLite {
		// a single connection keeps in-memory databases alive and serialises writers
		db.SetMaxOpenConns(1)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging session db: %w", err)
	}
	s, err := NewSQLStore(ctx, db, driver)
	if err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// NewSQLStore wraps an open database. driver selects the placeholder style.
func NewSQLStore(ctx context.Context, db *sql.DB, driver string) (*SQLStore, error) {
	if driver != DriverPostgres && driver != DriverSQLite {
		return nil, fmt.Errorf("unsupported session db driver %q", driver)
	}
	query := `
		CREATE TABLE IF NOT EXISTS session_kv (
			name TEXT PRIMARY KEY,
			data TEXT NOT NULL
		)
	`
	if _, err := db.ExecContext(ctx, query); err != nil {
		return nil, fmt.Errorf("creating session table: %w", err)
	}
	return &SQLStore{db: db, driver: driver}, nil
}

func (s *SQLStore) arg(n int) string {
	if s.driver == DriverPostgres {
		return fmt.Sprintf("$%d", n)
	}
	return "?"
}

func (s *SQLStore) Get(ctx context.Context, key string) (string, bool, error) {
	query := "SELECT data FROM session_kv WHERE name = " + s.arg(1)
	var value string
	err := s.db.QueryRowContext(ctx, query, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("reading session key %s: %w", key, err)
	}
	return value, true, nil
}

func (s *SQLStore) Set(ctx context.Context, key, value string) error {
	query := fmt.Sprintf(`
		INSERT INTO session_kv (name, data) VALUES (%s, %s)
		ON CONFLICT (name) DO UPDATE SET data = excluded.data
	`, s.arg(1), s.arg(2))
	if _, err := s.db.ExecContext(ctx, query, key, value); err != nil {
		return fmt.Errorf("writing session key %s: %w", key, err)
	}
	return nil
}

func (s *SQLStore) Delete(ctx context.Context, key string) error {
	query := "DELETE FROM session_kv WHERE name = " + s.arg(1)
	if _, err := s.db.ExecContext(ctx, query, key); err != nil {
		return fmt.Errorf("deleting session key %s: %w", key, err)
	}
	return nil
}

func (s *SQLStore) Close() error {
	return s.db.Close()
}
