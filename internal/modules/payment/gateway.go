package payment

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/checkout/session"
	"go.uber.org/zap"
)

// StripeGateway charges bookings through Stripe Checkout. The global
// stripe.Key must be set before the first call (done in main).
type StripeGateway struct {
	successURL string
	cancelURL  string
	logger     *zap.Logger
}

func NewStripeGateway(apiKey, successURL, cancelURL string, logger *zap.Logger) *StripeGateway {
	stripe.Key = apiKey
	return &StripeGateway{
		successURL: successURL,
		cancelURL:  cancelURL,
		logger:     logger,
	}
}

// CreateCheckoutSession opens a one-off payment session for the full quoted
// amount. Stripe wants minor units, so the decimal amount is scaled by 100.
func (g *StripeGateway) CreateCheckoutSession(ctx context.Context, amount decimal.Decimal, currency, bookingRef string) (string, string, error) {
	units := minorUnits(amount)

	params := &stripe.CheckoutSessionParams{
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL: stripe.String(g.successURL),
		CancelURL:  stripe.String(g.cancelURL),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String(currency),
					UnitAmount: stripe.Int64(units),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String("Travel booking " + bookingRef),
					},
				},
				Quantity: stripe.Int64(1),
			},
		},
	}
	params.Context = ctx
	params.AddMetadata("booking_reference", bookingRef)

	sess, err := session.New(params)
	if err != nil {
		g.logger.Warn("stripe checkout session creation failed",
			zap.String("booking_reference", bookingRef),
			zap.Error(err),
		)
		return "", "", fmt.Errorf("stripe checkout: %w", err)
	}

	return sess.ID, sess.URL, nil
}

// minorUnits converts a decimal amount to integer cents. The amount is
// rounded to two places first so the charged total always matches what the
// payment row records after display rounding.
func minorUnits(amount decimal.Decimal) int64 {
	return amount.Round(2).Mul(decimal.NewFromInt(100)).IntPart()
}
