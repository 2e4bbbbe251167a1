package database

import (
	"gorm.io/gorm"
)

// MigrateConstraints adds the indexes the catalog lookups rely on
func MigrateConstraints(db *gorm.DB) error {
	// Events are listed newest first and looked up by venue on venue deletes
	err := db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_events_venue_id
		ON events (venue_id);
	`).Error
	if err != nil {
		return err
	}

	err = db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_events_event_date
		ON events (event_date DESC);
	`).Error
	if err != nil {
		return err
	}

	// Venue names are unique regardless of case
	err = db.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS idx_venues_name_lower
		ON venues (LOWER(name));
	`).Error
	if err != nil {
		return err
	}

	return nil
}
