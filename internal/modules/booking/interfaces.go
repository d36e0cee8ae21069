package booking

import (
	"context"

	"flyease/internal/domain"

	"github.com/shopspring/decimal"
)

type BookingRepositoryInterface interface {
	CreateConfirmed(ctx context.Context, b *domain.Booking, p *domain.Payment) error
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByUserID(ctx context.Context, userID int64, limit, offset int) ([]domain.Booking, error)
}

type PackageRepositoryInterface interface {
	GetByID(ctx context.Context, id int64) (*domain.TravelPackage, error)
}

// CheckoutGateway charges the quoted amount with an external provider.
// The returned session id is stored as the payment's provider transaction.
type CheckoutGateway interface {
	CreateCheckoutSession(ctx context.Context, amount decimal.Decimal, currency, bookingRef string) (sessionID string, checkoutURL string, err error)
}
