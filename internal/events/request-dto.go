package events

import "seatly/internal/seatmap"

type CreateEventRequest struct {
	EventName        string               `json:"eventName" validate:"required,min=3,max=255"`
	EventDescription string               `json:"eventDescription" validate:"max=2000"`
	EventDate        string               `json:"eventDate" validate:"required,datetime=2006-01-02"`
	EventTime        string               `json:"eventTime" validate:"omitempty,datetime=15:04"`
	Venue            string               `json:"venue" validate:"required,uuid"`
	TotalTickets     int                  `json:"totalTickets" validate:"min=0,max=100000"`
	TicketTypes      []seatmap.TicketType `json:"ticketTypes" validate:"required,min=1,unique=Type,dive"`
	Image            string               `json:"image" validate:"omitempty,url"`
	Status           string               `json:"status" validate:"omitempty,oneof=Upcoming Ongoing Completed"`
}

type UpdateEventRequest struct {
	EventName        *string              `json:"eventName" validate:"omitempty,min=3,max=255"`
	EventDescription *string              `json:"eventDescription" validate:"omitempty,max=2000"`
	EventDate        *string              `json:"eventDate" validate:"omitempty,datetime=2006-01-02"`
	EventTime        *string              `json:"eventTime" validate:"omitempty,datetime=15:04"`
	Venue            *string              `json:"venue" validate:"omitempty,uuid"`
	TotalTickets     *int                 `json:"totalTickets" validate:"omitempty,min=0,max=100000"`
	TicketTypes      []seatmap.TicketType `json:"ticketTypes" validate:"omitempty,min=1,unique=Type,dive"`
	Image            *string              `json:"image" validate:"omitempty,url"`
	Status           *string              `json:"status" validate:"omitempty,oneof=Upcoming Ongoing Completed"`
}

type EventListQuery struct {
	Page    int    `form:"page"`
	Limit   int    `form:"limit"`
	Status  string `form:"status"`
	VenueID string `form:"venue"`
}
