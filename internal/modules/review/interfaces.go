package review

import (
	"context"

	"flyease/internal/domain"
)

type ReviewRepositoryInterface interface {
	Create(ctx context.Context, rv *domain.Review) error
	GetByPackage(ctx context.Context, packageID int64, limit, offset int) ([]domain.Review, error)
}

type BookingRepositoryInterface interface {
	CompletedBookingForPackage(ctx context.Context, userID, packageID int64) (int64, error)
}
