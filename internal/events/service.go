package events

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"seatly/internal/seatmap"
	"seatly/internal/shared/constants"
	"seatly/internal/venues"
	"seatly/pkg/cache"
	"seatly/pkg/logger"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrEventNotFound  = errors.New("event not found")
	ErrInvalidEventID = errors.New("invalid event ID")
	ErrInvalidSeatID  = errors.New("invalid seat ID")
	ErrUnknownVenue   = errors.New("venue does not exist")
)

// VenueLookup is the slice of the venue service events depend on
type VenueLookup interface {
	GetSeatMap(ctx context.Context, venueID string) (*venues.VenueLayout, error)
}

type Service interface {
	GetAllEvents(ctx context.Context, query EventListQuery) (*PaginatedEvents, error)
	GetEvent(ctx context.Context, id string) (*Event, error)
	PriceSeat(ctx context.Context, eventID, seatID string) (*SeatPrice, error)

	// Admin
	CreateEvent(ctx context.Context, req CreateEventRequest) (*Event, error)
	UpdateEvent(ctx context.Context, id string, req UpdateEventRequest) (*Event, error)
	DeleteEvent(ctx context.Context, id string) error
}

type service struct {
	repo     Repository
	venues   VenueLookup
	cache    cache.Service
	validate *validator.Validate
	log      *logger.Logger
}

func NewService(repo Repository, venueLookup VenueLookup, cacheService cache.Service) Service {
	if cacheService == nil {
		cacheService = cache.NewNoopService()
	}
	return &service{
		repo:     repo,
		venues:   venueLookup,
		cache:    cacheService,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		log:      logger.GetDefault(),
	}
}

func (s *service) GetAllEvents(ctx context.Context, query EventListQuery) (*PaginatedEvents, error) {
	if query.Page <= 0 {
		query.Page = 1
	}
	if query.Limit <= 0 {
		query.Limit = 10
	}
	if query.Limit > 100 {
		query.Limit = 100
	}

	events, total, err := s.repo.GetAll(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}

	return &PaginatedEvents{
		Events:     events,
		TotalCount: total,
		Page:       query.Page,
		Limit:      query.Limit,
		TotalPages: int((total + int64(query.Limit) - 1) / int64(query.Limit)),
	}, nil
}

func (s *service) GetEvent(ctx context.Context, id string) (*Event, error) {
	eventID, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrInvalidEventID
	}

	var event Event
	err = s.cache.GetOrSet(ctx, constants.BuildEventDetailKey(id), constants.TTL_EVENT_DETAIL,
		func() (interface{}, error) {
			e, err := s.repo.GetByID(ctx, eventID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return nil, ErrEventNotFound
				}
				return nil, fmt.Errorf("failed to get event: %w", err)
			}
			return e, nil
		}, &event)
	if err != nil {
		return nil, err
	}
	return &event, nil
}

// PriceSeat previews the price of one seat for an event
func (s *service) PriceSeat(ctx context.Context, eventID, seatID string) (*SeatPrice, error) {
	seat, err := seatmap.ParseSeatID(seatmap.SeatID(strings.ToUpper(seatID)))
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidSeatID, seatID)
	}

	event, err := s.GetEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}

	layout, err := s.venues.GetSeatMap(ctx, event.VenueID.String())
	if err != nil {
		return nil, fmt.Errorf("failed to load venue layout: %w", err)
	}

	quote := seatmap.BuildQuote(seatmap.NewSelection(seat.ID), layout.SeatMap.Categories, event.TicketTypes)
	line := quote.Lines[0]

	priced := false
	if line.Category != "" {
		for _, tt := range event.TicketTypes {
			if tt.Type == line.Category {
				priced = true
				break
			}
		}
	}

	return &SeatPrice{QuoteLine: line, Priced: priced}, nil
}

func (s *service) CreateEvent(ctx context.Context, req CreateEventRequest) (*Event, error) {
	if err := s.validate.StructCtx(ctx, req); err != nil {
		return nil, fmt.Errorf("invalid event: %w", err)
	}

	date, _ := time.Parse(DateLayout, req.EventDate)
	status := StatusUpcoming
	if req.Status != "" {
		status = Status(req.Status)
	}

	event := &Event{
		ID:               uuid.New(),
		EventName:        strings.TrimSpace(req.EventName),
		EventDescription: req.EventDescription,
		EventDate:        date,
		EventTime:        req.EventTime,
		VenueID:          uuid.MustParse(req.Venue),
		TotalTickets:     req.TotalTickets,
		TicketTypes:      req.TicketTypes,
		Image:            req.Image,
		Status:           status,
	}

	layout, err := s.checkVenue(ctx, event)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}

	s.warnUnpriced(ctx, event, layout)
	s.log.Info("Event created",
		slog.String("event_id", event.ID.String()),
		slog.String("venue_id", event.VenueID.String()),
		slog.Int("ticket_types", len(event.TicketTypes)),
	)
	return event, nil
}

func (s *service) UpdateEvent(ctx context.Context, id string, req UpdateEventRequest) (*Event, error) {
	if err := s.validate.StructCtx(ctx, req); err != nil {
		return nil, fmt.Errorf("invalid event: %w", err)
	}

	eventID, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrInvalidEventID
	}

	event, err := s.repo.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}

	if req.EventName != nil {
		event.EventName = strings.TrimSpace(*req.EventName)
	}
	if req.EventDescription != nil {
		event.EventDescription = *req.EventDescription
	}
	if req.EventDate != nil {
		event.EventDate, _ = time.Parse(DateLayout, *req.EventDate)
	}
	if req.EventTime != nil {
		event.EventTime = *req.EventTime
	}
	if req.Venue != nil {
		event.VenueID = uuid.MustParse(*req.Venue)
	}
	if req.TotalTickets != nil {
		event.TotalTickets = *req.TotalTickets
	}
	if req.TicketTypes != nil {
		event.TicketTypes = req.TicketTypes
	}
	if req.Image != nil {
		event.Image = *req.Image
	}
	if req.Status != nil {
		event.Status = Status(*req.Status)
	}

	layout, err := s.checkVenue(ctx, event)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, event); err != nil {
		return nil, fmt.Errorf("failed to update event: %w", err)
	}

	s.invalidate(ctx, id)
	s.warnUnpriced(ctx, event, layout)
	return event, nil
}

func (s *service) DeleteEvent(ctx context.Context, id string) error {
	eventID, err := uuid.Parse(id)
	if err != nil {
		return ErrInvalidEventID
	}

	if err := s.repo.Delete(ctx, eventID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrEventNotFound
		}
		return fmt.Errorf("failed to delete event: %w", err)
	}

	s.invalidate(ctx, id)
	return nil
}

func (s *service) checkVenue(ctx context.Context, event *Event) (*venues.VenueLayout, error) {
	layout, err := s.venues.GetSeatMap(ctx, event.VenueID.String())
	if err != nil {
		if errors.Is(err, venues.ErrVenueNotFound) {
			return nil, ErrUnknownVenue
		}
		return nil, fmt.Errorf("failed to verify venue: %w", err)
	}
	return layout, nil
}

// warnUnpriced flags categories that will price at 0 because no ticket type
// carries their name. Pricing itself stays silent.
func (s *service) warnUnpriced(ctx context.Context, event *Event, layout *venues.VenueLayout) {
	if missing := seatmap.UnpricedCategories(layout.SeatMap.Categories, event.TicketTypes); len(missing) > 0 {
		s.log.LogUnpricedCategories(ctx, event.ID.String(), missing)
	}
}

func (s *service) invalidate(ctx context.Context, id string) {
	if err := s.cache.Delete(ctx, constants.BuildEventDetailKey(id)); err != nil {
		s.log.Warn("Failed to invalidate event cache", slog.String("event_id", id), slog.Any("error", err))
	}
}
