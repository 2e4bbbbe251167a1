package events

import (
	"time"

	"seatly/internal/seatmap"

	"github.com/google/uuid"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

type Event struct {
	ID               uuid.UUID            `json:"_id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	EventName        string               `json:"eventName" gorm:"not null;size:255"`
	EventDescription string               `json:"eventDescription" gorm:"type:text"`
	EventDate        time.Time            `json:"eventDate" gorm:"type:date;not null"`
	EventTime        string               `json:"eventTime" gorm:"size:5"`
	VenueID          uuid.UUID            `json:"venue" gorm:"column:venue_id;type:uuid;not null"`
	TotalTickets     int                  `json:"totalTickets" gorm:"default:0;check:total_tickets >= 0"`
	TicketTypes      []seatmap.TicketType `json:"ticketTypes" gorm:"type:jsonb;serializer:json;not null"`
	Image            string               `json:"image" gorm:"size:500"`
	Status           Status               `json:"status" gorm:"type:varchar(20);default:'Upcoming'"`
	CreatedAt        time.Time            `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt        time.Time            `json:"updatedAt" gorm:"autoUpdateTime"`
}
