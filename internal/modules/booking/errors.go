package booking

import "errors"

var (
	ErrPackageNotFound      = errors.New("travel package not found")
	ErrNoFlowInProgress     = errors.New("no booking flow in progress")
	ErrFlowStepOutOfOrder   = errors.New("booking flow step out of order")
	ErrInsufficientCapacity = errors.New("not enough available slots for this package")
	ErrTravelerCountInvalid = errors.New("traveler count must be at least 1")
	ErrTravelerMixInvalid   = errors.New("senior and junior counts exceed traveler count")
	ErrTravelDateInPast     = errors.New("travel date must be in the future")
	ErrPaymentGatewayFailed = errors.New("payment gateway rejected the checkout")
	ErrBookingNotFound      = errors.New("booking not found")
)
