package database

import (
	"seatly/internal/events"
	"seatly/internal/venues"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		return err
	}

	if err := db.AutoMigrate(
		&venues.Venue{},
		&events.Event{},
	); err != nil {
		return err
	}

	return MigrateConstraints(db)
}
