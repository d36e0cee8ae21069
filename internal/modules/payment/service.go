package payment

import (
	"context"
	"errors"

	"flyease/internal/domain"

	"gorm.io/gorm"
)

var ErrBookingNotFound = errors.New("booking not found")

type PaymentRepositoryInterface interface {
	GetByBookingID(ctx context.Context, bookingID int64) ([]domain.Payment, error)
}

type BookingRepositoryInterface interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
}

type Service struct {
	payments PaymentRepositoryInterface
	bookings BookingRepositoryInterface
}

func NewService(payments PaymentRepositoryInterface, bookings BookingRepositoryInterface) *Service {
	return &Service{payments: payments, bookings: bookings}
}

// GetForBooking returns a booking's payments. Customers only see their own
// bookings; staff and admins see any.
func (s *Service) GetForBooking(ctx context.Context, bookingID, requesterID int64, requesterRole string) ([]domain.Payment, error) {
	bk, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	if bk.UserID != requesterID && requesterRole == string(domain.RoleCustomer) {
		return nil, ErrBookingNotFound
	}

	return s.payments.GetByBookingID(ctx, bookingID)
}
