package admin

import (
	"context"

	"flyease/internal/domain"
)

type BookingRepositoryInterface interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	List(ctx context.Context, status string, limit, offset int) ([]domain.Booking, error)
	UpdateStatus(ctx context.Context, bookingID int64, status domain.BookingStatus) error
}

type UserRepositoryInterface interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	SetBanned(ctx context.Context, userID int64, banned bool, reason string) error
	List(ctx context.Context, limit, offset int) ([]domain.User, error)
}

type PackageRepositoryInterface interface {
	GetByID(ctx context.Context, id int64) (*domain.TravelPackage, error)
}
