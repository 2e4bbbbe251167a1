package sessions

import (
	"context"
	"errors"
	"sync"

	"seatly/internal/checkout"
	"seatly/internal/events"
	"seatly/internal/seatmap"
	"seatly/internal/venues"

	"github.com/google/uuid"
)

// Row A is Regular, row B Premium, row C VIP. A2 is sold.
const testTemplate = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 200 120">
  <g class="stage"><rect x="0" y="0" width="200" height="20"/></g>
  <g id="seating-area">
    <g data-seat="A1"><rect id="rect-A1" x="10" y="30" width="20" height="20" fill="#3b82f6"/></g>
    <g data-seat="A2"><rect id="rect-A2" x="40" y="30" width="20" height="20" class="unavailable"/></g>
    <g data-seat="B1"><rect id="rect-B1" x="10" y="60" width="20" height="20" fill="#8b5cf6"/></g>
    <g data-seat="C1"><rect id="rect-C1" x="10" y="90" width="20" height="20" fill="#f59e0b"/></g>
  </g>
</svg>`

var testVenueID = uuid.MustParse("5b8f3a0e-6c61-4b8e-9d7c-0c4d7a8e9f21")

type fakeEvents struct {
	events map[string]*events.Event
}

func (f *fakeEvents) GetEvent(ctx context.Context, id string) (*events.Event, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, events.ErrInvalidEventID
	}
	e, ok := f.events[id]
	if !ok {
		return nil, events.ErrEventNotFound
	}
	cp := *e
	return &cp, nil
}

type fakeLayouts struct {
	template string
}

func (f *fakeLayouts) GetSeatMap(ctx context.Context, venueID string) (*venues.VenueLayout, error) {
	if venueID != testVenueID.String() {
		return nil, venues.ErrVenueNotFound
	}
	return &venues.VenueLayout{
		ID:          venueID,
		Name:        "Grand Hall",
		SvgTemplate: f.template,
		SeatMap: venues.SeatMap{Categories: []seatmap.SeatCategory{
			{Name: "VIP", RowCount: 1, Color: "#f59e0b"},
			{Name: "Premium", RowCount: 1, Color: "#8b5cf6"},
			{Name: "Regular", RowCount: 1, Color: "#3b82f6"},
		}},
	}, nil
}

type recordingPublisher struct {
	mu      sync.Mutex
	intents []*checkout.Intent
	err     error

	// onPublish runs while the intent is in flight
	onPublish func()
}

func (p *recordingPublisher) PublishCheckout(ctx context.Context, intent *checkout.Intent) error {
	if p.onPublish != nil {
		p.onPublish()
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.intents = append(p.intents, intent)
	return nil
}

func (p *recordingPublisher) Close() error { return nil }

func (p *recordingPublisher) published() []*checkout.Intent {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]*checkout.Intent(nil), p.intents...)
}

var errBrokerDown = errors.New("broker down")

func testEvent(status events.Status) *events.Event {
	return &events.Event{
		ID:        uuid.New(),
		EventName: "Opening Night",
		VenueID:   testVenueID,
		Status:    status,
		TicketTypes: []seatmap.TicketType{
			{Type: "VIP", Price: 100},
			{Type: "Premium", Price: 75},
			{Type: "Regular", Price: 50},
		},
	}
}

type fixture struct {
	svc       Service
	store     *MemoryStore
	publisher *recordingPublisher
	event     *events.Event
	closed    *events.Event
}

func newFixture(template string) *fixture {
	open := testEvent(events.StatusUpcoming)
	closed := testEvent(events.StatusCompleted)
	store := NewMemoryStore()
	pub := &recordingPublisher{}

	svc := NewService(store,
		&fakeEvents{events: map[string]*events.Event{
			open.ID.String():   open,
			closed.ID.String(): closed,
		}},
		&fakeLayouts{template: template},
		pub,
		Config{},
	)
	return &fixture{svc: svc, store: store, publisher: pub, event: open, closed: closed}
}
