package repository

import "gorm.io/gorm"

// Migrate creates or updates the schema for every collection the API serves.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&userModel{},
		&bookingModel{},
		&facilityModel{},
		&blogPostModel{},
		&blogCommentModel{},
		&popupModel{},
		&pledgeModel{},
	)
}
