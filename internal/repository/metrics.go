package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"pharmaconnect/internal/metrics"
)

var metricColumns = []string{"metric_name", "metric_value", "metric_unit", "tags", "measured_at"}

// MetricStore persists recorder samples into performance_metrics.
type MetricStore struct {
	pool *pgxpool.Pool
}

func (r *Repository) Metrics() *MetricStore {
	return &MetricStore{pool: r.pool}
}

func (s *MetricStore) Insert(ctx context.Context, sample metrics.Sample) error {
	row, err := sampleRow(sample)
	if err != nil {
		return err
	}
	_, err = s.pool.Exec(ctx,
		"INSERT INTO performance_metrics (metric_name, metric_value, metric_unit, tags, measured_at) VALUES ($1, $2, $3, $4, $5)",
		row...,
	)
	if err != nil {
		return fmt.Errorf("failed to insert metric %s: %w", sample.Name, err)
	}
	return nil
}

func (s *MetricStore) InsertBatch(ctx context.Context, samples []metrics.Sample) error {
	if len(samples) == 0 {
		return nil
	}

	rows := make([][]any, 0, len(samples))
	for _, sample := range samples {
		row, err := sampleRow(sample)
		if err != nil {
			return err
		}
		rows = append(rows, row)
	}

	_, err := s.pool.CopyFrom(ctx, pgx.Identifier{"performance_metrics"}, metricColumns, pgx.CopyFromRows(rows))
	if err != nil {
		return fmt.Errorf("failed to copy %d metrics: %w", len(samples), err)
	}
	return nil
}

func sampleRow(s metrics.Sample) ([]any, error) {
	tags, err := json.Marshal(s.Tags)
	if err != nil {
		return nil, fmt.Errorf("failed to encode tags for %s: %w", s.Name, err)
	}
	if s.Tags == nil {
		tags = []byte("{}")
	}
	return []any{s.Name, s.Value, s.Unit, tags, s.Time}, nil
}
