package catalog

import (
	"context"
	"errors"

	"flyease/internal/domain"
	"flyease/internal/repository"

	"gorm.io/gorm"
)

// Service owns the travel package catalog: public browsing plus the
// admin-only CRUD behind it.
type Service struct {
	packages PackageRepositoryInterface
}

func NewService(packages PackageRepositoryInterface) *Service {
	return &Service{packages: packages}
}

func (s *Service) ListPackages(ctx context.Context, f repository.PackageFilters) ([]domain.TravelPackage, int64, error) {
	if f.Limit <= 0 || f.Limit > 100 {
		f.Limit = 20
	}
	return s.packages.List(ctx, f)
}

func (s *Service) GetPackage(ctx context.Context, id int64) (*domain.TravelPackage, error) {
	pkg, err := s.packages.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPackageNotFound
		}
		return nil, err
	}
	return pkg, nil
}

func (s *Service) CreatePackage(ctx context.Context, req CreatePackageRequest) (*domain.TravelPackage, error) {
	pkg := &domain.TravelPackage{
		Name:           req.Name,
		Destination:    req.Destination,
		Description:    req.Description,
		UnitPrice:      req.UnitPrice,
		AvailableSlots: req.AvailableSlots,
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
		ImageURL:       req.ImageURL,
	}

	if err := validatePackage(pkg); err != nil {
		return nil, err
	}

	if err := s.packages.Create(ctx, pkg); err != nil {
		return nil, err
	}
	return pkg, nil
}

func (s *Service) UpdatePackage(ctx context.Context, id int64, req UpdatePackageRequest) (*domain.TravelPackage, error) {
	pkg, err := s.GetPackage(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		pkg.Name = *req.Name
	}
	if req.Destination != nil {
		pkg.Destination = *req.Destination
	}
	if req.Description != nil {
		pkg.Description = *req.Description
	}
	if req.UnitPrice != nil {
		pkg.UnitPrice = *req.UnitPrice
	}
	if req.AvailableSlots != nil {
		pkg.AvailableSlots = *req.AvailableSlots
	}
	if req.StartDate != nil {
		pkg.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		pkg.EndDate = *req.EndDate
	}
	if req.ImageURL != nil {
		pkg.ImageURL = *req.ImageURL
	}

	if err := validatePackage(pkg); err != nil {
		return nil, err
	}

	if err := s.packages.Update(ctx, pkg); err != nil {
		return nil, err
	}
	return pkg, nil
}

func (s *Service) DeletePackage(ctx context.Context, id int64) error {
	if _, err := s.GetPackage(ctx, id); err != nil {
		return err
	}
	return s.packages.Delete(ctx, id)
}

func validatePackage(pkg *domain.TravelPackage) error {
	if !pkg.UnitPrice.IsPositive() {
		return ErrInvalidPrice
	}
	if pkg.AvailableSlots < 0 {
		return ErrInvalidCapacity
	}
	if !pkg.EndDate.After(pkg.StartDate) {
		return ErrInvalidDates
	}
	return nil
}
