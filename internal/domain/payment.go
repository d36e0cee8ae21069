package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentStatus string

const (
	PaymentCompleted PaymentStatus = "completed"
	PaymentPending   PaymentStatus = "pending"
	PaymentFailed    PaymentStatus = "failed"
	PaymentRefunded  PaymentStatus = "refunded"
)

// Payment is one settlement against a booking. A booking may carry several
// payments (deposit schemes), each with its own status.
type Payment struct {
	ID         int64           `json:"id"`
	BookingID  int64           `json:"booking_id" validate:"required"`
	Method     string          `json:"method"`
	ProviderTx string          `json:"provider_tx,omitempty"`
	Amount     decimal.Decimal `json:"amount"`
	Currency   string          `json:"currency"`
	Status     PaymentStatus   `json:"status"`
	PaidAt     time.Time       `json:"paid_at"`
	CreatedAt  time.Time       `json:"created_at"`
}
