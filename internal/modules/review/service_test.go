package review

import (
	"context"
	"testing"

	"flyease/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type MockReviewRepository struct {
	mock.Mock
}

func (m *MockReviewRepository) Create(ctx context.Context, rv *domain.Review) error {
	args := m.Called(ctx, rv)
	if args.Error(0) == nil && rv != nil {
		rv.ID = 11 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockReviewRepository) GetByPackage(ctx context.Context, packageID int64, limit, offset int) ([]domain.Review, error) {
	args := m.Called(ctx, packageID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Review), args.Error(1)
}

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) CompletedBookingForPackage(ctx context.Context, userID, packageID int64) (int64, error) {
	args := m.Called(ctx, userID, packageID)
	return args.Get(0).(int64), args.Error(1)
}

func TestCreateReview_Success(t *testing.T) {
	reviews := new(MockReviewRepository)
	reviews.On("Create", mock.Anything, mock.Anything).Return(nil)

	bookings := new(MockBookingRepository)
	bookings.On("CompletedBookingForPackage", mock.Anything, int64(1), int64(7)).Return(int64(555), nil)

	service := NewService(reviews, bookings)

	rv, err := service.CreateReview(context.Background(), 1, CreateReviewRequest{
		PackageID: 7,
		Rating:    5,
		Comment:   "Wonderful trip",
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(555), rv.BookingID)
	assert.Equal(t, int64(1), rv.UserID)
}

func TestCreateReview_NoCompletedBooking(t *testing.T) {
	bookings := new(MockBookingRepository)
	bookings.On("CompletedBookingForPackage", mock.Anything, int64(1), int64(7)).
		Return(int64(0), gorm.ErrRecordNotFound)

	service := NewService(new(MockReviewRepository), bookings)

	_, err := service.CreateReview(context.Background(), 1, CreateReviewRequest{
		PackageID: 7,
		Rating:    4,
	})

	assert.ErrorIs(t, err, ErrNotEligible)
}

func TestCreateReview_RatingOutOfRange(t *testing.T) {
	service := NewService(new(MockReviewRepository), new(MockBookingRepository))

	_, err := service.CreateReview(context.Background(), 1, CreateReviewRequest{
		PackageID: 7,
		Rating:    6,
	})

	assert.ErrorIs(t, err, ErrInvalidRating)
}

func TestCreateReview_DuplicateBookingReview(t *testing.T) {
	reviews := new(MockReviewRepository)
	reviews.On("Create", mock.Anything, mock.Anything).Return(gorm.ErrDuplicatedKey)

	bookings := new(MockBookingRepository)
	bookings.On("CompletedBookingForPackage", mock.Anything, int64(1), int64(7)).Return(int64(555), nil)

	service := NewService(reviews, bookings)

	_, err := service.CreateReview(context.Background(), 1, CreateReviewRequest{
		PackageID: 7,
		Rating:    3,
	})

	assert.ErrorIs(t, err, ErrAlreadyReviewed)
}
