package postgres

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/hafidh2001/Hactiv8-Assignment-3/internal/repository"

	"github.com/jackc/pgx/v5/pgxpool"
)

const schema = `
CREATE TABLE IF NOT EXISTS users (
	id SERIAL PRIMARY KEY,
	username TEXT NOT NULL,
	email TEXT NOT NULL UNIQUE,
	password_hash TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE TABLE IF NOT EXISTS photos (
	id SERIAL PRIMARY KEY,
	title TEXT NOT NULL,
	caption TEXT NOT NULL,
	image_url TEXT NOT NULL,
	user_id INTEGER NOT NULL REFERENCES users(id),
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);`

// Store bundles the pgx-backed repositories behind one connection pool.
type Store struct {
	pool *pgxpool.Pool
}

// Open connects to PostgreSQL and ensures the schema exists.
func Open(ctx context.Context, connString string) (*Store, error) {
	config, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("unable to parse connection string: %w", err)
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour
	config.MaxConnIdleTime = 30 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("unable to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("unable to ping database: %w", err)
	}

	if _, err := pool.Exec(ctx, schema); err != nil {
		pool.Close()
		return nil, fmt.Errorf("unable to ensure schema: %w", err)
	}

	log.Println("Connected to PostgreSQL")
	return &Store{pool: pool}, nil
}

func (s *Store) Users() repository.UserRepository {
	return &UserRepository{pool: s.pool}
}

func (s *Store) Photos() repository.PhotoRepository {
	return &PhotoRepository{pool: s.pool}
}

func (s *Store) Close() {
	s.pool.Close()
}
