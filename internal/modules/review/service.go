package review

import (
	"context"
	"errors"

	"flyease/internal/domain"
	"flyease/internal/repository"

	"gorm.io/gorm"
)

type Service struct {
	reviews  ReviewRepositoryInterface
	bookings BookingRepositoryInterface
}

func NewService(reviews ReviewRepositoryInterface, bookings BookingRepositoryInterface) *Service {
	return &Service{reviews: reviews, bookings: bookings}
}

// CreateReview accepts one review per completed booking. Eligibility is a
// completed booking of the package held by the caller; the unique index on
// booking_id enforces the one-review rule against races.
func (s *Service) CreateReview(ctx context.Context, userID int64, req CreateReviewRequest) (*domain.Review, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, ErrInvalidRating
	}

	bookingID, err := s.bookings.CompletedBookingForPackage(ctx, userID, req.PackageID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotEligible
		}
		return nil, err
	}

	rv := &domain.Review{
		PackageID: req.PackageID,
		UserID:    userID,
		BookingID: bookingID,
		Rating:    req.Rating,
		Comment:   req.Comment,
	}

	if err := s.reviews.Create(ctx, rv); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, ErrAlreadyReviewed
		}
		return nil, err
	}
	return rv, nil
}

func (s *Service) GetPackageReviews(ctx context.Context, packageID int64, limit, offset int) ([]domain.Review, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return s.reviews.GetByPackage(ctx, packageID, limit, offset)
}
