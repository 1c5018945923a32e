package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"airdrop-tool-backend/internal/common/config"
	"airdrop-tool-backend/internal/common/logger"

	_ "github.com/lib/pq"
)

type Client struct {
	db *sql.DB
}

func NewClient(cfg *config.Config) (*Client, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.User,
		cfg.Postgres.Password, cfg.Postgres.Database, cfg.Postgres.SSLMode,
	)

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.Postgres.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Postgres.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Postgres.ConnMaxLifetime)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.Info().
		Str("host", cfg.Postgres.Host).
		Int("port", cfg.Postgres.Port).
		Str("database", cfg.Postgres.Database).
		Msg("PostgreSQL client initialized")

	return &Client{db: db}, nil
}

// GetDB returns the underlying database handle.
func (c *Client) GetDB() *sql.DB {
	return c.db
}

func (c *Client) Close() error {
	return c.db.Close()
}

// HealthCheck pings the database.
func (c *Client) HealthCheck(ctx context.Context) error {
	return c.db.PingContext(ctx)
}
