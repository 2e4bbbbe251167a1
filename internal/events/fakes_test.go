package events

import (
	"context"
	"sync"

	"seatly/internal/seatmap"
	"seatly/internal/venues"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type fakeRepository struct {
	mu     sync.Mutex
	events map[uuid.UUID]*Event
}

func newFakeRepository(events ...*Event) *fakeRepository {
	r := &fakeRepository{events: make(map[uuid.UUID]*Event)}
	for _, e := range events {
		r.events[e.ID] = e
	}
	return r
}

func (r *fakeRepository) Create(ctx context.Context, event *Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events[event.ID] = event
	return nil
}

func (r *fakeRepository) GetByID(ctx context.Context, id uuid.UUID) (*Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.events[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *e
	return &cp, nil
}

func (r *fakeRepository) GetAll(ctx context.Context, query EventListQuery) ([]Event, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []Event
	for _, e := range r.events {
		if query.Status != "" && string(e.Status) != query.Status {
			continue
		}
		out = append(out, *e)
	}
	return out, int64(len(out)), nil
}

func (r *fakeRepository) Update(ctx context.Context, event *Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events[event.ID] = event
	return nil
}

func (r *fakeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.events[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.events, id)
	return nil
}

type fakeVenues struct {
	layouts map[string]*venues.VenueLayout
}

func (f *fakeVenues) GetSeatMap(ctx context.Context, venueID string) (*venues.VenueLayout, error) {
	l, ok := f.layouts[venueID]
	if !ok {
		return nil, venues.ErrVenueNotFound
	}
	return l, nil
}

var testVenueID = uuid.MustParse("7f1c7b7e-2b7a-4c6e-9a57-3f0f4d1f2a10")

// Rows A-B Regular, C-D Premium, E VIP
func testVenues() *fakeVenues {
	return &fakeVenues{layouts: map[string]*venues.VenueLayout{
		testVenueID.String(): {
			ID:   testVenueID.String(),
			Name: "Grand Hall",
			SeatMap: venues.SeatMap{Categories: []seatmap.SeatCategory{
				{Name: "VIP", RowCount: 1, Color: "gold"},
				{Name: "Premium", RowCount: 2, Color: "purple"},
				{Name: "Regular", RowCount: 2, Color: "blue"},
			}},
		},
	}}
}

func testEvent() *Event {
	return &Event{
		ID:        uuid.New(),
		EventName: "Opening Night",
		VenueID:   testVenueID,
		Status:    StatusUpcoming,
		TicketTypes: []seatmap.TicketType{
			{Type: "VIP", Price: 100},
			{Type: "Premium", Price: 75},
			{Type: "Regular", Price: 50},
		},
	}
}
