package repository

import "gorm.io/gorm"

// AutoMigrate creates or updates the schema for every table this package
// owns. Used by the seed binary and local development.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&userModel{},
		&packageModel{},
		&bookingModel{},
		&paymentModel{},
		&reviewModel{},
	)
}
