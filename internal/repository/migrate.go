package repository

import "gorm.io/gorm"

// AutoMigrate creates or updates the schema for every persisted record type.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&userRecord{},
		&postRecord{},
	)
}
