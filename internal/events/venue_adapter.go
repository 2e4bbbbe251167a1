package events

import (
	"context"
	"errors"

	"seatly/internal/venues"
)

// VenueEventAdapter implements the venues EventSource interface using the event service
type VenueEventAdapter struct {
	service Service
}

func NewVenueEventAdapter(service Service) *VenueEventAdapter {
	return &VenueEventAdapter{service: service}
}

func (a *VenueEventAdapter) EventPricing(ctx context.Context, eventID string) (*venues.EventPricing, error) {
	event, err := a.service.GetEvent(ctx, eventID)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidEventID):
			return nil, venues.ErrInvalidEventID
		case errors.Is(err, ErrEventNotFound):
			return nil, venues.ErrEventNotFound
		}
		return nil, err
	}

	return &venues.EventPricing{
		VenueID:     event.VenueID.String(),
		TicketTypes: event.TicketTypes,
	}, nil
}
