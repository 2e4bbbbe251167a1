package sessions

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"seatly/internal/checkout"
	"seatly/internal/events"
	"seatly/internal/seatmap"
	"seatly/internal/svgmap"
	"seatly/internal/venues"
	"seatly/pkg/logger"

	"github.com/google/uuid"
)

var (
	ErrSessionNotFound  = errors.New("seat map session not found")
	ErrSeatUnavailable  = svgmap.ErrSeatUnavailable
	ErrNoSeatAtTarget   = svgmap.ErrNoSeatAtTarget
	ErrInvalidSeat      = errors.New("invalid seat ID")
	ErrEmptySelection   = errors.New("no seats selected")
	ErrEventNotFound    = events.ErrEventNotFound
	ErrVenueNotFound    = venues.ErrVenueNotFound
	ErrEventClosed      = errors.New("event is no longer on sale")
	ErrConcurrentUpdate = errors.New("seat map session was modified concurrently")
)

const DefaultTTL = 30 * time.Minute

// EventSource loads the event a seat map is opened for
type EventSource interface {
	GetEvent(ctx context.Context, id string) (*events.Event, error)
}

// LayoutSource loads the venue template and category configuration
type LayoutSource interface {
	GetSeatMap(ctx context.Context, venueID string) (*venues.VenueLayout, error)
}

type Config struct {
	TTL       time.Duration
	Highlight svgmap.Options
}

type Service interface {
	Open(ctx context.Context, eventID string) (*Summary, error)
	Click(ctx context.Context, sessionID, target string) (*ToggleResult, error)
	Toggle(ctx context.Context, sessionID, seatID string) (*ToggleResult, error)
	Summary(ctx context.Context, sessionID string) (*Summary, error)
	Render(ctx context.Context, sessionID string) (string, error)
	Close(ctx context.Context, sessionID string) error
	Checkout(ctx context.Context, sessionID string) (*checkout.Intent, error)

	// ExpireSessions releases the binders of sessions that no longer exist
	ExpireSessions(ctx context.Context) int
}

type service struct {
	store     Store
	events    EventSource
	layouts   LayoutSource
	publisher checkout.Publisher
	cfg       Config
	log       *logger.Logger
	now       func() time.Time

	mu      sync.Mutex
	binders map[string]*svgmap.Binder
}

func NewService(store Store, eventSource EventSource, layouts LayoutSource, publisher checkout.Publisher, cfg Config) Service {
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultTTL
	}
	if publisher == nil {
		publisher = checkout.NewNoopPublisher()
	}
	return &service{
		store:     store,
		events:    eventSource,
		layouts:   layouts,
		publisher: publisher,
		cfg:       cfg,
		log:       logger.GetDefault(),
		now:       time.Now,
		binders:   make(map[string]*svgmap.Binder),
	}
}

func (s *service) Open(ctx context.Context, eventID string) (*Summary, error) {
	event, err := s.events.GetEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if !event.Status.OpenForSale() {
		return nil, ErrEventClosed
	}

	layout, err := s.layouts.GetSeatMap(ctx, event.VenueID.String())
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	sess := &Session{
		ID:          uuid.NewString(),
		EventID:     event.ID.String(),
		VenueID:     event.VenueID.String(),
		EventName:   event.EventName,
		VenueName:   layout.Name,
		Categories:  layout.SeatMap.Categories,
		TicketTypes: event.TicketTypes,
		SvgTemplate: layout.SvgTemplate,
		Selected:    seatmap.NewSelection(),
		OpenedAt:    now,
		ExpiresAt:   now.Add(s.cfg.TTL),
	}

	if err := s.store.Create(ctx, sess, s.cfg.TTL); err != nil {
		return nil, fmt.Errorf("failed to open seat map: %w", err)
	}

	binder := s.binderFor(sess)
	if !binder.Interactive() {
		s.log.WarnContext(ctx, "Seat map template has no seat markers",
			slog.String("session_id", sess.ID),
			slog.String("venue_id", sess.VenueID),
		)
	}
	if missing := seatmap.UnpricedCategories(sess.Categories, sess.TicketTypes); len(missing) > 0 {
		s.log.LogUnpricedCategories(ctx, sess.EventID, missing)
	}
	s.log.LogSessionOpened(ctx, sess.ID, sess.EventID, sess.VenueID, len(binder.Seats()))

	return s.summarize(sess, binder), nil
}

func (s *service) Click(ctx context.Context, sessionID, target string) (*ToggleResult, error) {
	sess, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	id, err := s.binderFor(sess).Click(target)
	if err != nil {
		return nil, err
	}
	return s.toggle(ctx, sessionID, id)
}

func (s *service) Toggle(ctx context.Context, sessionID, seatID string) (*ToggleResult, error) {
	id := seatmap.SeatID(strings.ToUpper(strings.TrimSpace(seatID)))
	return s.toggle(ctx, sessionID, id)
}

// toggle removes a selected seat unconditionally; adding one requires an
// available marker, or a well-formed id when the map has no markers
func (s *service) toggle(ctx context.Context, sessionID string, id seatmap.SeatID) (*ToggleResult, error) {
	var binder *svgmap.Binder
	var selected bool

	updated, err := s.store.Update(ctx, sessionID, func(sess *Session) error {
		binder = s.binderFor(sess)
		if !sess.Selected.Contains(id) {
			if err := checkSelectable(binder, id); err != nil {
				return err
			}
		}
		sess.Selected = sess.Selected.Toggle(id)
		selected = sess.Selected.Contains(id)
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			s.dropBinder(sessionID)
		}
		return nil, err
	}

	summary := s.summarize(updated, binder)
	s.log.LogSeatToggled(ctx, sessionID, string(id), selected, summary.TotalPrice)

	return &ToggleResult{SeatID: id, Selected: selected, Summary: summary}, nil
}

func checkSelectable(binder *svgmap.Binder, id seatmap.SeatID) error {
	if binder.Interactive() {
		return binder.CanSelect(id)
	}
	if _, err := seatmap.ParseSeatID(id); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidSeat, id)
	}
	return nil
}

func (s *service) Summary(ctx context.Context, sessionID string) (*Summary, error) {
	sess, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return s.summarize(sess, s.binderFor(sess)), nil
}

func (s *service) Render(ctx context.Context, sessionID string) (string, error) {
	sess, err := s.load(ctx, sessionID)
	if err != nil {
		return "", err
	}
	return s.binderFor(sess).Render(sess.Selected), nil
}

func (s *service) Close(ctx context.Context, sessionID string) error {
	s.dropBinder(sessionID)

	if err := s.store.Delete(ctx, sessionID); err != nil {
		return err
	}

	s.log.LogSessionClosed(ctx, sessionID)
	return nil
}

// Checkout hands the priced selection to the booking flow and clears it.
// Seats are not held; the intent only records what was picked.
func (s *service) Checkout(ctx context.Context, sessionID string) (*checkout.Intent, error) {
	sess, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if sess.Selected.IsEmpty() {
		return nil, ErrEmptySelection
	}

	quote := seatmap.BuildQuote(sess.Selected, sess.Categories, sess.TicketTypes)
	intent := checkout.NewIntent(sess.ID, sess.EventID, sess.EventName, sess.VenueName, quote)

	if err := s.publisher.PublishCheckout(ctx, intent); err != nil {
		return nil, fmt.Errorf("failed to hand off checkout: %w", err)
	}

	// A selection whose seats changed while the intent was in flight is kept
	_, err = s.store.Update(ctx, sessionID, func(cur *Session) error {
		if cur.Selected.SameMembers(sess.Selected) {
			cur.Selected = seatmap.NewSelection()
		}
		return nil
	})
	if err != nil {
		s.log.WithSession(sessionID).ErrorWithContext(ctx, "Failed to clear selection after checkout", err, map[string]interface{}{
			"intent_id": intent.IntentID.String(),
		})
	}

	s.log.LogCheckoutPublished(ctx, intent.IntentID.String(), sessionID, sess.EventID, len(intent.Seats), intent.TotalPrice)
	return intent, nil
}

func (s *service) ExpireSessions(ctx context.Context) int {
	if sweeper, ok := s.store.(interface{ Sweep() []string }); ok {
		sweeper.Sweep()
	}

	s.mu.Lock()
	ids := make([]string, 0, len(s.binders))
	for id := range s.binders {
		ids = append(ids, id)
	}
	s.mu.Unlock()

	expired := 0
	for _, id := range ids {
		if _, err := s.store.Get(ctx, id); errors.Is(err, ErrSessionNotFound) {
			s.dropBinder(id)
			expired++
		}
	}
	return expired
}

func (s *service) load(ctx context.Context, sessionID string) (*Session, error) {
	sess, err := s.store.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			s.dropBinder(sessionID)
		}
		return nil, err
	}
	return sess, nil
}

// binderFor returns the session's bound map, binding the template on first
// use in this process
func (s *service) binderFor(sess *Session) *svgmap.Binder {
	s.mu.Lock()
	defer s.mu.Unlock()

	if b, ok := s.binders[sess.ID]; ok {
		return b
	}
	b := svgmap.Bind(sess.SvgTemplate, svgmap.NewState(), s.cfg.Highlight)
	s.binders[sess.ID] = b
	return b
}

func (s *service) dropBinder(sessionID string) {
	s.mu.Lock()
	b, ok := s.binders[sessionID]
	delete(s.binders, sessionID)
	s.mu.Unlock()

	if ok {
		b.Teardown()
	}
}

func (s *service) summarize(sess *Session, binder *svgmap.Binder) *Summary {
	quote := seatmap.BuildQuote(sess.Selected, sess.Categories, sess.TicketTypes)
	return &Summary{
		SessionID:   sess.ID,
		EventID:     sess.EventID,
		EventName:   sess.EventName,
		VenueName:   sess.VenueName,
		Interactive: binder.Interactive(),
		SeatCount:   len(binder.Seats()),
		Legend:      seatmap.Legend(sess.Categories, sess.TicketTypes),
		Selected:    sess.Selected.IDs(),
		Lines:       quote.Lines,
		TotalPrice:  quote.Total,
		ExpiresAt:   sess.ExpiresAt,
	}
}
