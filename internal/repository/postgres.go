package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"pharmaconnect/internal/config"
)

var ErrNotFound = errors.New("record not found")

const schema = `
CREATE TABLE IF NOT EXISTS performance_metrics (
	id           BIGSERIAL PRIMARY KEY,
	metric_name  TEXT             NOT NULL,
	metric_value DOUBLE PRECISION NOT NULL,
	metric_unit  TEXT             NOT NULL,
	tags         JSONB            NOT NULL DEFAULT '{}',
	measured_at  TIMESTAMPTZ      NOT NULL
);
CREATE INDEX IF NOT EXISTS performance_metrics_name_time_idx
	ON performance_metrics (metric_name, measured_at DESC);

CREATE TABLE IF NOT EXISTS companies (
	id         BIGSERIAL PRIMARY KEY,
	name       TEXT        NOT NULL,
	country    TEXT        NOT NULL DEFAULT '',
	category   TEXT        NOT NULL DEFAULT '',
	verified   BOOLEAN     NOT NULL DEFAULT FALSE,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS regulatory_alerts (
	id           BIGSERIAL PRIMARY KEY,
	source       TEXT        NOT NULL,
	title        TEXT        NOT NULL,
	severity     TEXT        NOT NULL DEFAULT 'info',
	published_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS regulatory_alerts_source_idx
	ON regulatory_alerts (source, published_at DESC);

CREATE SEQUENCE IF NOT EXISTS perf_session_seq;
`

type Repository struct {
	pool *pgxpool.Pool
}

func New(ctx context.Context, cfg *config.DatabaseConfig) (*Repository, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, cfg.SSLMode,
	)

	poolCfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}
	if cfg.MaxConns > 0 {
		poolCfg.MaxConns = cfg.MaxConns
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if _, err := pool.Exec(ctx, schema); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &Repository{pool: pool}, nil
}

func (r *Repository) Pool() *pgxpool.Pool {
	return r.pool
}

func (r *Repository) Close() {
	r.pool.Close()
}

func (r *Repository) NextSessionID(ctx context.Context) (uint64, error) {
	var id int64
	if err := r.pool.QueryRow(ctx, "SELECT nextval('perf_session_seq')").Scan(&id); err != nil {
		return 0, fmt.Errorf("failed to get next session id: %w", err)
	}
	return uint64(id), nil
}
