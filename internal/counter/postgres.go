package counter

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore keeps the count in a single-row table. The row lock taken by
// the atomic UPDATE serializes concurrent increments, matching the exclusive
// lock discipline of the file store.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// ConnectPostgres establishes a connection pool and ensures the counter row
// exists.
func ConnectPostgres(ctx context.Context, databaseURL string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	_, err = pool.Exec(ctx,
		`CREATE TABLE IF NOT EXISTS visitor_count (
		    id    integer PRIMARY KEY,
		    count bigint NOT NULL DEFAULT 0
		)`)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to create visitor_count table: %w", err)
	}

	_, err = pool.Exec(ctx,
		`INSERT INTO visitor_count (id, count) VALUES (1, 0)
		 ON CONFLICT (id) DO NOTHING`)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to seed visitor_count row: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

// Close closes the connection pool.
func (s *PostgresStore) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

func (s *PostgresStore) Get(ctx context.Context) (int64, error) {
	var count int64
	err := s.pool.QueryRow(ctx,
		`SELECT count FROM visitor_count WHERE id = 1`,
	).Scan(&count)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read visitor count: %w", err)
	}
	return count, nil
}

func (s *PostgresStore) Increment(ctx context.Context) (int64, error) {
	var count int64
	err := s.pool.QueryRow(ctx,
		`UPDATE visitor_count SET count = count + 1 WHERE id = 1 RETURNING count`,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to increment visitor count: %w", err)
	}
	return count, nil
}
