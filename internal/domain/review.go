package domain

import "time"

type Review struct {
	ID        int64     `json:"id"`
	PackageID int64     `json:"package_id" validate:"required"`
	UserID    int64     `json:"user_id" validate:"required"`
	BookingID int64     `json:"booking_id" validate:"required"`
	Rating    int       `json:"rating" validate:"required,gte=1,lte=5"`
	Comment   string    `json:"comment,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
