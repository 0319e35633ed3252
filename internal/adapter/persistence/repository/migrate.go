package repository

import "gorm.io/gorm"

// AutoMigrate creates or updates the marketplace tables. Printer must
// precede filament and both must precede orders so the foreign keys
// resolve.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&printerRecord{},
		&filamentRecord{},
		&uploadRecord{},
		&orderRecord{},
	)
}
