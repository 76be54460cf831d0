package handler

//go:generate go tool mockery

import (
	"context"
	"time"

	"pharmaconnect/internal/domain"
	"pharmaconnect/internal/metrics"
	"pharmaconnect/internal/vitals"
)

type SessionTracker interface {
	Create(ctx context.Context) (string, time.Time, error)
	Ingest(ctx context.Context, code string, b domain.Beacon) (int, error)
	Vitals(code string) (vitals.Vitals, error)
	Navigation(code string) (*domain.NavigationTiming, error)
	End(code string) error
}

type BeaconValidator interface {
	ValidateCode(code string) error
	ValidateBeacon(b *domain.Beacon) error
}

type Telemetry interface {
	History() []metrics.Sample
	Pending() int
	Flush(ctx context.Context) (int, error)
}

type DashboardService interface {
	Companies(ctx context.Context) (domain.QueryResponse[[]domain.Company], error)
	Company(ctx context.Context, id int64) (domain.QueryResponse[*domain.Company], error)
	Alerts(ctx context.Context, source string) (domain.QueryResponse[[]domain.RegulatoryAlert], error)
	InvalidateCompany(id int64) int
}
