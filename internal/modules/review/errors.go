package review

import "errors"

var (
	ErrNotEligible     = errors.New("only customers with a completed booking can review")
	ErrAlreadyReviewed = errors.New("this booking was already reviewed")
	ErrInvalidRating   = errors.New("rating must be between 1 and 5")
)
