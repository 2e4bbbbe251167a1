package venues

import (
	"context"
	"strings"
	"sync"

	"seatly/internal/seatmap"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type fakeRepository struct {
	mu     sync.Mutex
	venues map[uuid.UUID]*Venue
	err    error
}

func newFakeRepository(venues ...*Venue) *fakeRepository {
	r := &fakeRepository{venues: make(map[uuid.UUID]*Venue)}
	for _, v := range venues {
		r.venues[v.ID] = v
	}
	return r
}

func (r *fakeRepository) Create(ctx context.Context, venue *Venue) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.venues[venue.ID] = venue
	return nil
}

func (r *fakeRepository) GetByID(ctx context.Context, id uuid.UUID) (*Venue, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	v, ok := r.venues[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *v
	return &cp, nil
}

func (r *fakeRepository) GetByName(ctx context.Context, name string) (*Venue, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, v := range r.venues {
		if strings.EqualFold(v.Name, name) {
			cp := *v
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeRepository) List(ctx context.Context, filters VenueFilters) ([]Venue, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, 0, r.err
	}
	var out []Venue
	for _, v := range r.venues {
		if filters.Search == "" || strings.Contains(strings.ToLower(v.Name), strings.ToLower(filters.Search)) {
			out = append(out, *v)
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakeRepository) Update(ctx context.Context, venue *Venue) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.venues[venue.ID] = venue
	return nil
}

func (r *fakeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.venues[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.venues, id)
	return nil
}

type fakeEvents struct {
	events map[string]*EventPricing
}

func newFakeEvents() *fakeEvents {
	return &fakeEvents{events: make(map[string]*EventPricing)}
}

// add registers an event held at venueID and returns its id
func (f *fakeEvents) add(venueID uuid.UUID, ticketTypes ...seatmap.TicketType) string {
	id := uuid.NewString()
	f.events[id] = &EventPricing{VenueID: venueID.String(), TicketTypes: ticketTypes}
	return id
}

func (f *fakeEvents) EventPricing(ctx context.Context, eventID string) (*EventPricing, error) {
	if _, err := uuid.Parse(eventID); err != nil {
		return nil, ErrInvalidEventID
	}
	e, ok := f.events[eventID]
	if !ok {
		return nil, ErrEventNotFound
	}
	return e, nil
}
