package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"pharmaconnect/internal/domain"
)

func (r *Repository) ListCompanies(ctx context.Context, limit int) ([]domain.Company, error) {
	rows, err := r.pool.Query(ctx,
		"SELECT id, name, country, category, verified, updated_at FROM companies ORDER BY name LIMIT $1",
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}
	companies, err := pgx.CollectRows(rows, pgx.RowToStructByPos[domain.Company])
	if err != nil {
		return nil, fmt.Errorf("failed to scan companies: %w", err)
	}
	return companies, nil
}

func (r *Repository) GetCompany(ctx context.Context, id int64) (*domain.Company, error) {
	var c domain.Company
	err := r.pool.QueryRow(ctx,
		"SELECT id, name, country, category, verified, updated_at FROM companies WHERE id = $1",
		id,
	).Scan(&c.ID, &c.Name, &c.Country, &c.Category, &c.Verified, &c.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get company %d: %w", id, err)
	}
	return &c, nil
}

// ListAlerts returns the newest alerts, optionally for a single source.
func (r *Repository) ListAlerts(ctx context.Context, source string, limit int) ([]domain.RegulatoryAlert, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, source, title, severity, published_at FROM regulatory_alerts
		WHERE $1 = '' OR source = $1
		ORDER BY published_at DESC LIMIT $2`,
		source, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list alerts: %w", err)
	}
	alerts, err := pgx.CollectRows(rows, pgx.RowToStructByPos[domain.RegulatoryAlert])
	if err != nil {
		return nil, fmt.Errorf("failed to scan alerts: %w", err)
	}
	return alerts, nil
}
