package venues

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"seatly/internal/seatmap"
	"seatly/internal/shared/constants"
	"seatly/pkg/cache"
	"seatly/pkg/logger"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrVenueNotFound  = errors.New("venue not found")
	ErrInvalidVenueID = errors.New("invalid venue ID")
	ErrVenueNameTaken = errors.New("venue name already exists")
	ErrTooManyRows    = fmt.Errorf("categories cover more than %d rows", seatmap.MaxRows)
	ErrEventNotFound  = errors.New("event not found")
	ErrInvalidEventID = errors.New("invalid event ID")

	errNoEventSource = errors.New("venue layouts need an event source")
)

// EventPricing is the part of an event a priced layout needs
type EventPricing struct {
	VenueID     string
	TicketTypes []seatmap.TicketType
}

// EventSource resolves the event a layout is requested for. Unknown events
// must be reported as ErrEventNotFound.
type EventSource interface {
	EventPricing(ctx context.Context, eventID string) (*EventPricing, error)
}

type Service interface {
	ListVenues(ctx context.Context, filters VenueFilters) (*PaginatedVenues, error)
	GetVenue(ctx context.Context, id string) (*Venue, error)
	GetSeatMap(ctx context.Context, venueID string) (*VenueLayout, error)
	GetEventLayout(ctx context.Context, venueID, eventID string) (*EventLayout, error)
	SetEventSource(events EventSource)

	// Admin
	CreateVenue(ctx context.Context, req CreateVenueRequest) (*Venue, error)
	UpdateVenue(ctx context.Context, id string, req UpdateVenueRequest) (*Venue, error)
	DeleteVenue(ctx context.Context, id string) error
}

type service struct {
	repo     Repository
	events   EventSource
	cache    cache.Service
	validate *validator.Validate
	log      *logger.Logger
}

func NewService(repo Repository, cacheService cache.Service) Service {
	if cacheService == nil {
		cacheService = cache.NewNoopService()
	}
	return &service{
		repo:     repo,
		cache:    cacheService,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		log:      logger.GetDefault(),
	}
}

func (s *service) ListVenues(ctx context.Context, filters VenueFilters) (*PaginatedVenues, error) {
	if filters.Page <= 0 {
		filters.Page = 1
	}
	if filters.Limit <= 0 {
		filters.Limit = 20
	}
	if filters.Limit > 100 {
		filters.Limit = 100
	}

	fetch := func() (interface{}, error) {
		venues, total, err := s.repo.List(ctx, filters)
		if err != nil {
			return nil, fmt.Errorf("failed to list venues: %w", err)
		}

		out := &PaginatedVenues{
			Venues:     make([]VenueSummary, 0, len(venues)),
			TotalCount: total,
			Page:       filters.Page,
			Limit:      filters.Limit,
			TotalPages: int((total + int64(filters.Limit) - 1) / int64(filters.Limit)),
		}
		for i := range venues {
			out.Venues = append(out.Venues, toSummary(&venues[i]))
		}
		return out, nil
	}

	var result PaginatedVenues

	// Searches are not cached
	if filters.Search != "" {
		data, err := fetch()
		if err != nil {
			return nil, err
		}
		return data.(*PaginatedVenues), nil
	}

	key := fmt.Sprintf("%s:page:%d:limit:%d", constants.CACHE_KEY_VENUES_LIST, filters.Page, filters.Limit)
	if err := s.cache.GetOrSet(ctx, key, constants.TTL_VENUES_LIST, fetch, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (s *service) GetVenue(ctx context.Context, id string) (*Venue, error) {
	venueID, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrInvalidVenueID
	}

	venue, err := s.repo.GetByID(ctx, venueID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVenueNotFound
		}
		return nil, fmt.Errorf("failed to get venue: %w", err)
	}
	return venue, nil
}

func (s *service) SetEventSource(events EventSource) {
	s.events = events
}

// GetSeatMap returns the template and category configuration of a venue,
// served from cache when possible
func (s *service) GetSeatMap(ctx context.Context, venueID string) (*VenueLayout, error) {
	if _, err := uuid.Parse(venueID); err != nil {
		return nil, ErrInvalidVenueID
	}

	var layout VenueLayout
	err := s.cache.GetOrSet(ctx, constants.BuildVenueLayoutKey(venueID), constants.TTL_VENUE_LAYOUT,
		func() (interface{}, error) {
			venue, err := s.GetVenue(ctx, venueID)
			if err != nil {
				return nil, err
			}
			return toLayout(venue), nil
		}, &layout)
	if err != nil {
		return nil, err
	}
	return &layout, nil
}

// GetEventLayout is the seat map of a venue as one of its events sells it:
// every category carries the price of its ticket type
func (s *service) GetEventLayout(ctx context.Context, venueID, eventID string) (*EventLayout, error) {
	if s.events == nil {
		return nil, errNoEventSource
	}

	layout, err := s.GetSeatMap(ctx, venueID)
	if err != nil {
		return nil, err
	}

	event, err := s.events.EventPricing(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if event.VenueID != layout.ID {
		return nil, ErrEventNotFound
	}

	return toEventLayout(layout, event.TicketTypes), nil
}

func (s *service) CreateVenue(ctx context.Context, req CreateVenueRequest) (*Venue, error) {
	req.Name = strings.TrimSpace(req.Name)
	if err := s.validate.StructCtx(ctx, req); err != nil {
		return nil, fmt.Errorf("invalid venue: %w", err)
	}
	if seatmap.TotalRows(req.Categories) > seatmap.MaxRows {
		return nil, ErrTooManyRows
	}

	if err := s.ensureNameFree(ctx, req.Name, uuid.Nil); err != nil {
		return nil, err
	}

	template := req.SvgTemplate
	if strings.TrimSpace(template) == "" {
		generated, err := GenerateTemplate(req.Categories, req.SeatsPerRow)
		if err != nil {
			return nil, err
		}
		template = generated
	}

	venue := &Venue{
		ID:          uuid.New(),
		Name:        req.Name,
		SvgTemplate: template,
		SeatMap:     SeatMap{Categories: req.Categories},
	}

	if err := s.repo.Create(ctx, venue); err != nil {
		return nil, fmt.Errorf("failed to create venue: %w", err)
	}

	s.invalidate(ctx, venue.ID.String())
	s.log.Info("Venue created",
		slog.String("venue_id", venue.ID.String()),
		slog.String("name", venue.Name),
		slog.Int("categories", len(req.Categories)),
	)

	return venue, nil
}

func (s *service) UpdateVenue(ctx context.Context, id string, req UpdateVenueRequest) (*Venue, error) {
	if err := s.validate.StructCtx(ctx, req); err != nil {
		return nil, fmt.Errorf("invalid venue: %w", err)
	}
	if seatmap.TotalRows(req.Categories) > seatmap.MaxRows {
		return nil, ErrTooManyRows
	}

	venue, err := s.GetVenue(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if !strings.EqualFold(name, venue.Name) {
			if err := s.ensureNameFree(ctx, name, venue.ID); err != nil {
				return nil, err
			}
		}
		venue.Name = name
	}
	if req.SvgTemplate != nil {
		venue.SvgTemplate = *req.SvgTemplate
	}
	if req.Categories != nil {
		venue.SeatMap.Categories = req.Categories
	}

	if err := s.repo.Update(ctx, venue); err != nil {
		return nil, fmt.Errorf("failed to update venue: %w", err)
	}

	s.invalidate(ctx, venue.ID.String())
	return venue, nil
}

func (s *service) DeleteVenue(ctx context.Context, id string) error {
	venueID, err := uuid.Parse(id)
	if err != nil {
		return ErrInvalidVenueID
	}

	if err := s.repo.Delete(ctx, venueID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrVenueNotFound
		}
		return fmt.Errorf("failed to delete venue: %w", err)
	}

	s.invalidate(ctx, id)
	return nil
}

func (s *service) ensureNameFree(ctx context.Context, name string, self uuid.UUID) error {
	existing, err := s.repo.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return fmt.Errorf("failed to check venue name: %w", err)
	}
	if existing.ID != self {
		return ErrVenueNameTaken
	}
	return nil
}

// invalidate drops the cached seat map of the venue and the list pages
func (s *service) invalidate(ctx context.Context, venueID string) {
	if err := s.cache.Delete(ctx, constants.BuildVenueLayoutKey(venueID)); err != nil {
		s.log.Warn("Failed to invalidate venue layout", slog.String("venue_id", venueID), slog.Any("error", err))
	}
	if err := s.cache.DeletePattern(ctx, constants.CACHE_KEY_VENUES_LIST+"*"); err != nil {
		s.log.Warn("Failed to invalidate venue list", slog.Any("error", err))
	}
}
