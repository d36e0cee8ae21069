package catalog

import (
	"context"

	"flyease/internal/domain"
	"flyease/internal/repository"
)

type PackageRepositoryInterface interface {
	Create(ctx context.Context, pkg *domain.TravelPackage) error
	GetByID(ctx context.Context, id int64) (*domain.TravelPackage, error)
	Update(ctx context.Context, pkg *domain.TravelPackage) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, f repository.PackageFilters) ([]domain.TravelPackage, int64, error)
}
