package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/hafidh2001/Hactiv8-Assignment-3/internal/repository"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS users (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	username TEXT NOT NULL,
	email TEXT NOT NULL UNIQUE,
	password_hash TEXT NOT NULL,
	created_at DATETIME NOT NULL,
	updated_at DATETIME NOT NULL
);
CREATE TABLE IF NOT EXISTS photos (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	title TEXT NOT NULL,
	caption TEXT NOT NULL,
	image_url TEXT NOT NULL,
	user_id INTEGER NOT NULL REFERENCES users(id),
	created_at DATETIME NOT NULL,
	updated_at DATETIME NOT NULL
);`

// Store bundles the SQLite-backed repositories behind one *sql.DB. It is the
// store used by tests and by local runs without a PostgreSQL instance.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) a SQLite database at the given path and ensures the
// schema exists.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	ctx := context.Background()

	// Enable foreign key enforcement.
	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}

	// SQLite allows a single writer.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Users() repository.UserRepository {
	return &UserRepository{db: s.db}
}

func (s *Store) Photos() repository.PhotoRepository {
	return &PhotoRepository{db: s.db}
}

func (s *Store) Close() error {
	return s.db.Close()
}
