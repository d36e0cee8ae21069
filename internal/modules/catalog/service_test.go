package catalog

import (
	"context"
	"testing"
	"time"

	"flyease/internal/domain"
	"flyease/internal/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type MockPackageRepository struct {
	mock.Mock
}

func (m *MockPackageRepository) Create(ctx context.Context, pkg *domain.TravelPackage) error {
	args := m.Called(ctx, pkg)
	if args.Error(0) == nil && pkg != nil {
		pkg.ID = 7 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockPackageRepository) GetByID(ctx context.Context, id int64) (*domain.TravelPackage, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TravelPackage), args.Error(1)
}

func (m *MockPackageRepository) Update(ctx context.Context, pkg *domain.TravelPackage) error {
	args := m.Called(ctx, pkg)
	return args.Error(0)
}

func (m *MockPackageRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPackageRepository) List(ctx context.Context, f repository.PackageFilters) ([]domain.TravelPackage, int64, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.TravelPackage), args.Get(1).(int64), args.Error(2)
}

func validCreateRequest() CreatePackageRequest {
	return CreatePackageRequest{
		Name:           "Lisbon Getaway",
		Destination:    "Lisbon",
		UnitPrice:      decimal.RequireFromString("100.00"),
		AvailableSlots: 10,
		StartDate:      time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
		EndDate:        time.Date(2026, 6, 8, 0, 0, 0, 0, time.UTC),
	}
}

func TestCreatePackage_Success(t *testing.T) {
	packages := new(MockPackageRepository)
	packages.On("Create", mock.Anything, mock.Anything).Return(nil)

	service := NewService(packages)

	pkg, err := service.CreatePackage(context.Background(), validCreateRequest())

	assert.NoError(t, err)
	assert.Equal(t, int64(7), pkg.ID)
	packages.AssertExpectations(t)
}

func TestCreatePackage_RejectsZeroPrice(t *testing.T) {
	service := NewService(new(MockPackageRepository))

	req := validCreateRequest()
	req.UnitPrice = decimal.Zero

	_, err := service.CreatePackage(context.Background(), req)

	assert.ErrorIs(t, err, ErrInvalidPrice)
}

func TestCreatePackage_RejectsEndBeforeStart(t *testing.T) {
	service := NewService(new(MockPackageRepository))

	req := validCreateRequest()
	req.EndDate = req.StartDate.AddDate(0, 0, -1)

	_, err := service.CreatePackage(context.Background(), req)

	assert.ErrorIs(t, err, ErrInvalidDates)
}

func TestUpdatePackage_PartialUpdate(t *testing.T) {
	packages := new(MockPackageRepository)
	packages.On("GetByID", mock.Anything, int64(7)).Return(&domain.TravelPackage{
		ID:             7,
		Name:           "Lisbon Getaway",
		Destination:    "Lisbon",
		UnitPrice:      decimal.RequireFromString("100.00"),
		AvailableSlots: 10,
		StartDate:      time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
		EndDate:        time.Date(2026, 6, 8, 0, 0, 0, 0, time.UTC),
	}, nil)
	packages.On("Update", mock.Anything, mock.Anything).Return(nil)

	service := NewService(packages)

	newPrice := decimal.RequireFromString("120.00")
	pkg, err := service.UpdatePackage(context.Background(), 7, UpdatePackageRequest{
		UnitPrice: &newPrice,
	})

	assert.NoError(t, err)
	assert.Equal(t, "120.00", pkg.UnitPrice.StringFixed(2))
	assert.Equal(t, "Lisbon Getaway", pkg.Name)
}

func TestUpdatePackage_RejectsNegativeCapacity(t *testing.T) {
	packages := new(MockPackageRepository)
	packages.On("GetByID", mock.Anything, int64(7)).Return(&domain.TravelPackage{
		ID:             7,
		UnitPrice:      decimal.RequireFromString("100.00"),
		AvailableSlots: 10,
		StartDate:      time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
		EndDate:        time.Date(2026, 6, 8, 0, 0, 0, 0, time.UTC),
	}, nil)

	service := NewService(packages)

	negative := -1
	_, err := service.UpdatePackage(context.Background(), 7, UpdatePackageRequest{
		AvailableSlots: &negative,
	})

	assert.ErrorIs(t, err, ErrInvalidCapacity)
}

func TestGetPackage_NotFound(t *testing.T) {
	packages := new(MockPackageRepository)
	packages.On("GetByID", mock.Anything, int64(99)).Return(nil, gorm.ErrRecordNotFound)

	service := NewService(packages)

	_, err := service.GetPackage(context.Background(), 99)

	assert.ErrorIs(t, err, ErrPackageNotFound)
}

func TestListPackages_CapsLimit(t *testing.T) {
	packages := new(MockPackageRepository)
	packages.On("List", mock.Anything, repository.PackageFilters{Limit: 20}).
		Return([]domain.TravelPackage{}, int64(0), nil)

	service := NewService(packages)

	_, _, err := service.ListPackages(context.Background(), repository.PackageFilters{Limit: 500})

	assert.NoError(t, err)
	packages.AssertExpectations(t)
}
