package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"pharmaconnect/internal/domain"
	"pharmaconnect/internal/query"
	"pharmaconnect/internal/repository"
)

var ErrCompanyNotFound = errors.New("company not found")

const (
	companiesKey = "companies"
	alertsKey    = "alerts"

	listLimit = 100
)

// DashboardService serves the dashboard reads through the shared query cache.
type DashboardService struct {
	repo   Repository
	client *query.Client
	logger *slog.Logger
}

func NewDashboardService(repo Repository, client *query.Client, logger *slog.Logger) *DashboardService {
	return &DashboardService{repo: repo, client: client, logger: logger}
}

func CompaniesKey() query.Key {
	return query.NewKey(companiesKey)
}

func CompanyKey(id int64) query.Key {
	return CompaniesKey().With(id)
}

func AlertsKey(source string) query.Key {
	return query.NewKey(alertsKey, source)
}

// Companies lists companies and warms the detail entries of the first few.
func (s *DashboardService) Companies(ctx context.Context) (domain.QueryResponse[[]domain.Company], error) {
	return read(ctx, s.client, query.Options[[]domain.Company]{
		Key:     CompaniesKey(),
		Preload: true,
		Fn: func(ctx context.Context) ([]domain.Company, error) {
			return s.repo.ListCompanies(ctx, listLimit)
		},
	})
}

func (s *DashboardService) Company(ctx context.Context, id int64) (domain.QueryResponse[*domain.Company], error) {
	return read(ctx, s.client, query.Options[*domain.Company]{
		Key: CompanyKey(id),
		Fn: func(ctx context.Context) (*domain.Company, error) {
			return loadCompany(ctx, s.repo, id)
		},
	})
}

func (s *DashboardService) Alerts(ctx context.Context, source string) (domain.QueryResponse[[]domain.RegulatoryAlert], error) {
	return read(ctx, s.client, query.Options[[]domain.RegulatoryAlert]{
		Key: AlertsKey(source),
		Fn: func(ctx context.Context) ([]domain.RegulatoryAlert, error) {
			return s.repo.ListAlerts(ctx, source, listLimit)
		},
	})
}

// InvalidateCompany drops the company's entry together with the list and
// every other company entry.
func (s *DashboardService) InvalidateCompany(id int64) int {
	obs := query.Observe(s.client, query.Options[*domain.Company]{Key: CompanyKey(id), Disabled: true})
	defer obs.Close()
	return obs.InvalidateRelated()
}

// CompanyPreloader loads company details for keys of the form
// ["companies", id]. Other keys resolve to nil.
func CompanyPreloader(repo Repository) query.Preloader {
	return func(ctx context.Context, key query.Key) (any, error) {
		if len(key) != 2 || key[0] != companiesKey {
			return nil, nil
		}
		id, err := strconv.ParseInt(key[1], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid company key %s: %w", key, err)
		}
		return loadCompany(ctx, repo, id)
	}
}

func loadCompany(ctx context.Context, repo Repository, id int64) (*domain.Company, error) {
	c, err := repo.GetCompany(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrCompanyNotFound
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func read[T any](ctx context.Context, client *query.Client, opts query.Options[T]) (domain.QueryResponse[T], error) {
	obs := query.Observe(client, opts)
	defer obs.Close()

	res := obs.Fetch(ctx)
	if res.Err != nil {
		return domain.QueryResponse[T]{}, res.Err
	}
	return domain.QueryResponse[T]{Data: res.Data, UpdatedAt: res.UpdatedAt, Stale: res.IsStale}, nil
}
