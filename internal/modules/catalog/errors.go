package catalog

import "errors"

var (
	ErrPackageNotFound = errors.New("travel package not found")
	ErrInvalidPrice    = errors.New("unit price must be greater than zero")
	ErrInvalidCapacity = errors.New("available slots must not be negative")
	ErrInvalidDates    = errors.New("end date must be after start date")
)
