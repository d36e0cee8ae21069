package admin

type UpdateBookingStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type BanUserRequest struct {
	Reason string `json:"reason"`
}
