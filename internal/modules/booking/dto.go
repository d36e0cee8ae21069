package booking

import "time"

type QuoteRequest struct {
	PackageID     int64     `json:"package_id" binding:"required"`
	TravelerCount int       `json:"traveler_count" binding:"required,min=1"`
	TravelDate    time.Time `json:"travel_date" binding:"required"`
}

type CustomerInfoRequest struct {
	FullName    string `json:"full_name" binding:"required,min=2"`
	Email       string `json:"email" binding:"required,email"`
	Phone       string `json:"phone"`
	SeniorCount int    `json:"senior_count" binding:"min=0"`
	JuniorCount int    `json:"junior_count" binding:"min=0"`
}

type PaymentDetailsRequest struct {
	Method string `json:"method" binding:"required,oneof=card"`
}

type ConfirmationView struct {
	Quote    Quote          `json:"quote"`
	Customer CustomerInfo   `json:"customer"`
	Payment  PaymentDetails `json:"payment"`
}

type CommitResult struct {
	Booking     *BookingView `json:"booking"`
	CheckoutURL string       `json:"checkout_url,omitempty"`
}

type BookingView struct {
	ID            int64     `json:"id"`
	Reference     string    `json:"reference"`
	PackageID     int64     `json:"package_id"`
	PackageName   string    `json:"package_name,omitempty"`
	Status        string    `json:"status"`
	TravelerCount int       `json:"traveler_count"`
	SeniorCount   int       `json:"senior_count"`
	JuniorCount   int       `json:"junior_count"`
	TravelDate    time.Time `json:"travel_date"`
	BaseAmount    string    `json:"base_amount"`
	Discount      string    `json:"discount"`
	FinalAmount   string    `json:"final_amount"`
	BookedAt      time.Time `json:"booked_at"`
}
