package repository

import "gorm.io/gorm"

// Migrate creates or updates the schema for every table the
// repositories touch. cmd/api runs it on boot, cmd/seed and the
// repository tests reuse it.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&userModel{},
		&hotelModel{},
		&roomModel{},
		&bookingModel{},
		&ratingModel{},
	)
}
