package models

import "gorm.io/gorm"

// AutoMigrate creates the tables if they are missing. Parents go first so the
// FK constraints can be declared.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Barber{},
		&Hairstyle{},
		&Example{},
	)
}
