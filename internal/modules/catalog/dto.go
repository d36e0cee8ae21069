package catalog

import (
	"time"

	"github.com/shopspring/decimal"
)

type CreatePackageRequest struct {
	Name           string          `json:"name" binding:"required,min=2"`
	Destination    string          `json:"destination" binding:"required"`
	Description    string          `json:"description"`
	UnitPrice      decimal.Decimal `json:"unit_price" binding:"required"`
	AvailableSlots int             `json:"available_slots" binding:"required,min=0"`
	StartDate      time.Time       `json:"start_date" binding:"required"`
	EndDate        time.Time       `json:"end_date" binding:"required"`
	ImageURL       string          `json:"image_url"`
}

type UpdatePackageRequest struct {
	Name           *string          `json:"name,omitempty"`
	Destination    *string          `json:"destination,omitempty"`
	Description    *string          `json:"description,omitempty"`
	UnitPrice      *decimal.Decimal `json:"unit_price,omitempty"`
	AvailableSlots *int             `json:"available_slots,omitempty"`
	StartDate      *time.Time       `json:"start_date,omitempty"`
	EndDate        *time.Time       `json:"end_date,omitempty"`
	ImageURL       *string          `json:"image_url,omitempty"`
}
