package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCompleted BookingStatus = "completed"
	BookingCancelled BookingStatus = "cancelled"
)

type Booking struct {
	ID            int64           `json:"id"`
	Reference     string          `json:"reference"`
	UserID        int64           `json:"user_id" validate:"required"`
	PackageID     int64           `json:"package_id" validate:"required"`
	TravelDate    time.Time       `json:"travel_date" validate:"required"`
	TravelerCount int             `json:"traveler_count" validate:"required,gte=1"`
	SeniorCount   int             `json:"senior_count,omitempty"`
	JuniorCount   int             `json:"junior_count,omitempty"`
	BaseAmount    decimal.Decimal `json:"base_amount"`
	Discount      decimal.Decimal `json:"discount"`
	FinalAmount   decimal.Decimal `json:"final_amount"`
	Status        BookingStatus   `json:"status"`
	BookedAt      time.Time       `json:"booked_at"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
	CancelledAt   *time.Time      `json:"cancelled_at,omitempty"`

	User *User          `json:"user,omitempty"`
	Pkg  *TravelPackage `json:"package,omitempty"`
}
