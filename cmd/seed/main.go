package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"seatly/internal/events"
	"seatly/internal/seatmap"
	"seatly/internal/shared/config"
	"seatly/internal/shared/constants"
	"seatly/internal/shared/database"
	"seatly/internal/venues"
	"seatly/pkg/cache"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

type Seeder struct {
	db *database.DB
}

func main() {
	fmt.Println("🌱 Starting Seatly Database Seeder...")

	_ = godotenv.Load()
	cfg := config.Load()

	db, err := database.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	seeder := &Seeder{db: db}

	fmt.Println("\n🧹 Cleaning database...")
	if err := seeder.CleanDatabase(); err != nil {
		log.Fatalf("Failed to clean database: %v", err)
	}
	fmt.Println("✅ Database cleaned successfully")

	fmt.Println("\n🌱 Seeding database...")
	if err := seeder.SeedAll(); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}
	fmt.Println("✅ Database seeded successfully")

	fmt.Println("\n🎉 Seeding completed! Open a seat map with POST /api/seat-map/sessions.")
}

// CleanDatabase truncates events before the venues they reference
func (s *Seeder) CleanDatabase() error {
	tables := []string{"events", "venues"}

	return s.db.PostgreSQL.Transaction(func(tx *gorm.DB) error {
		for _, table := range tables {
			fmt.Printf("  Truncating table: %s\n", table)
			if err := tx.Exec(fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY CASCADE", table)).Error; err != nil {
				return fmt.Errorf("failed to truncate table %s: %w", table, err)
			}
		}
		return nil
	})
}

// SeedAll seeds venues, then events on those venues, then drops cached reads
func (s *Seeder) SeedAll() error {
	ctx := context.Background()

	venueIDs, err := s.SeedVenues()
	if err != nil {
		return fmt.Errorf("failed to seed venues: %w", err)
	}

	if err := s.SeedEvents(venueIDs); err != nil {
		return fmt.Errorf("failed to seed events: %w", err)
	}

	cacheService := cache.NewService(s.db.GetRedis())
	for _, pattern := range []string{constants.PATTERN_INVALIDATE_EVENT_ALL, constants.PATTERN_INVALIDATE_VENUES_ALL} {
		if err := cacheService.DeletePattern(ctx, pattern); err != nil {
			log.Printf("Warning: Failed to clear cache %s: %v", pattern, err)
		}
	}

	return nil
}

// SeedVenues creates venues with generated seat map templates
func (s *Seeder) SeedVenues() (map[string]uuid.UUID, error) {
	fmt.Println("  🏟️  Seeding venues...")

	venuesData := []struct {
		name        string
		seatsPerRow int
		categories  []seatmap.SeatCategory
	}{
		{
			name:        "Grand Theater",
			seatsPerRow: 12,
			categories: []seatmap.SeatCategory{
				{Name: "VIP", RowCount: 2, Color: "#f59e0b", Description: "Front rows closest to the stage"},
				{Name: "Premium", RowCount: 3, Color: "#8b5cf6", Description: "Center section"},
				{Name: "Regular", RowCount: 5, Color: "#3b82f6", Description: "Rear section"},
			},
		},
		{
			name:        "Riverside Club",
			seatsPerRow: 8,
			categories: []seatmap.SeatCategory{
				{Name: "Balcony", RowCount: 2, Color: "#ec4899"},
				{Name: "General", RowCount: 4, Color: "#10b981"},
			},
		},
		{
			name:        "Studio Hall",
			seatsPerRow: 6,
			categories: []seatmap.SeatCategory{
				{Name: "General", RowCount: 4, Color: "#64748b"},
			},
		},
	}

	venueIDs := make(map[string]uuid.UUID)
	for _, data := range venuesData {
		template, err := venues.GenerateTemplate(data.categories, data.seatsPerRow)
		if err != nil {
			return nil, fmt.Errorf("failed to generate template for %s: %w", data.name, err)
		}

		venue := venues.Venue{
			ID:          uuid.New(),
			Name:        data.name,
			SvgTemplate: template,
			SeatMap:     venues.SeatMap{Categories: data.categories},
		}
		if err := s.db.PostgreSQL.Create(&venue).Error; err != nil {
			return nil, fmt.Errorf("failed to create venue %s: %w", data.name, err)
		}

		venueIDs[data.name] = venue.ID
		fmt.Printf("    ✅ Created venue: %s (%d rows)\n", venue.Name, seatmap.TotalRows(data.categories))
	}

	return venueIDs, nil
}

// SeedEvents creates events across the seeded venues
func (s *Seeder) SeedEvents(venueIDs map[string]uuid.UUID) error {
	fmt.Println("  🎭 Seeding events...")

	today := time.Now().UTC().Truncate(24 * time.Hour)

	eventsData := []struct {
		name        string
		description string
		venue       string
		daysAhead   int
		at          string
		status      events.Status
		ticketTypes []seatmap.TicketType
	}{
		{
			name:        "Symphony Night",
			description: "An evening of classical favourites",
			venue:       "Grand Theater",
			daysAhead:   14,
			at:          "19:30",
			status:      events.StatusUpcoming,
			ticketTypes: []seatmap.TicketType{
				{Type: "VIP", Price: 150},
				{Type: "Premium", Price: 95},
				{Type: "Regular", Price: 55},
			},
		},
		{
			// Regular has no ticket type and prices at 0
			name:        "Comedy Showcase",
			description: "Stand-up from five touring comics",
			venue:       "Grand Theater",
			daysAhead:   3,
			at:          "21:00",
			status:      events.StatusUpcoming,
			ticketTypes: []seatmap.TicketType{
				{Type: "VIP", Price: 80},
				{Type: "Premium", Price: 45},
			},
		},
		{
			name:        "Jazz Sessions",
			description: "Late set on the river",
			venue:       "Riverside Club",
			at:          "22:00",
			status:      events.StatusOngoing,
			ticketTypes: []seatmap.TicketType{
				{Type: "Balcony", Price: 40},
				{Type: "General", Price: 25},
			},
		},
		{
			name:        "Indie Film Premiere",
			description: "Screening followed by a Q&A",
			venue:       "Studio Hall",
			daysAhead:   -7,
			at:          "18:00",
			status:      events.StatusCompleted,
			ticketTypes: []seatmap.TicketType{
				{Type: "General", Price: 15},
			},
		},
	}

	for _, data := range eventsData {
		venueID, ok := venueIDs[data.venue]
		if !ok {
			return fmt.Errorf("unknown venue %s for event %s", data.venue, data.name)
		}

		event := events.Event{
			ID:               uuid.New(),
			EventName:        data.name,
			EventDescription: data.description,
			EventDate:        today.AddDate(0, 0, data.daysAhead),
			EventTime:        data.at,
			VenueID:          venueID,
			TicketTypes:      data.ticketTypes,
			Status:           data.status,
		}
		if err := s.db.PostgreSQL.Create(&event).Error; err != nil {
			return fmt.Errorf("failed to create event %s: %w", data.name, err)
		}

		fmt.Printf("    ✅ Created event: %s at %s (%s)\n", event.EventName, data.venue, event.Status)
	}

	return nil
}
