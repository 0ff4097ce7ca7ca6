// internal/database/db.go
package database

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// DB is the optional Postgres pool for the match-history sink. A nil pool
// means history is disabled; live match state never touches the database.
var DB *pgxpool.Pool

// ConnectDB opens the pool from PG_* environment variables. Leaving PG_HOST
// unset disables the sink entirely, which is the default for local play.
func ConnectDB() error {
	host := os.Getenv("PG_HOST")
	if host == "" {
		return nil
	}

	connStr := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s",
		os.Getenv("POSTGRES_USER"),
		os.Getenv("POSTGRES_PASSWORD"),
		host,
		os.Getenv("PG_PORT"),
		os.Getenv("PG_DATABASE"),
	)

	config, err := pgxpool.ParseConfig(connStr)
	if err != nil {
		return fmt.Errorf("unable to parse pgx config: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		return fmt.Errorf("unable to create pgx pool: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return fmt.Errorf("db ping error: %w", err)
	}

	DB = pool
	return EnsureSchema(context.Background())
}

// EnsureSchema creates the match_history table if it does not exist.
func EnsureSchema(ctx context.Context) error {
	if DB == nil {
		return nil
	}
	_, err := DB.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS match_history (
			room_id      UUID PRIMARY KEY,
			winner_slot  SMALLINT NOT NULL,
			reason       TEXT NOT NULL,
			turns        INT NOT NULL,
			players      JSONB NOT NULL,
			started_at   TIMESTAMPTZ NOT NULL,
			ended_at     TIMESTAMPTZ NOT NULL
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to ensure match_history schema: %w", err)
	}
	return nil
}
