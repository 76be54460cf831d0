package service

//go:generate go tool mockery

import (
	"context"

	"pharmaconnect/internal/domain"
)

type Repository interface {
	ListCompanies(ctx context.Context, limit int) ([]domain.Company, error)
	GetCompany(ctx context.Context, id int64) (*domain.Company, error)
	ListAlerts(ctx context.Context, source string, limit int) ([]domain.RegulatoryAlert, error)
}
