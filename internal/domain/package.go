package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TravelPackage is a bookable trip offering. AvailableSlots is the remaining
// capacity; it never goes negative and is only decremented by a confirmed
// booking commit.
type TravelPackage struct {
	ID             int64           `json:"id"`
	Name           string          `json:"name" validate:"required"`
	Destination    string          `json:"destination" validate:"required"`
	Description    string          `json:"description,omitempty"`
	UnitPrice      decimal.Decimal `json:"unit_price"`
	AvailableSlots int             `json:"available_slots"`
	StartDate      time.Time       `json:"start_date"`
	EndDate        time.Time       `json:"end_date"`
	ImageURL       string          `json:"image_url,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}
