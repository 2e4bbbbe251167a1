package events

import (
	"context"
	"errors"
	"testing"

	"seatly/internal/seatmap"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

func TestPriceSeat(t *testing.T) {
	ev := testEvent()
	svc := NewService(newFakeRepository(ev), testVenues(), nil)

	tests := []struct {
		seat     string
		category string
		price    float64
		priced   bool
	}{
		{"A1", "Regular", 50, true},
		{"b7", "Regular", 50, true},
		{"C3", "Premium", 75, true},
		{"E1", "VIP", 100, true},
		{"Z1", "", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.seat, func(t *testing.T) {
			got, err := svc.PriceSeat(context.Background(), ev.ID.String(), tt.seat)
			if err != nil {
				t.Fatalf("PriceSeat: %v", err)
			}
			if got.Category != tt.category || got.Price != tt.price || got.Priced != tt.priced {
				t.Errorf("got %+v, want category=%q price=%v priced=%v", got, tt.category, tt.price, tt.priced)
			}
		})
	}
}

func TestPriceSeat_UnmatchedCategoryIsZero(t *testing.T) {
	ev := testEvent()
	ev.TicketTypes = []seatmap.TicketType{{Type: "VIP", Price: 100}}
	svc := NewService(newFakeRepository(ev), testVenues(), nil)

	got, err := svc.PriceSeat(context.Background(), ev.ID.String(), "A1")
	if err != nil {
		t.Fatalf("PriceSeat: %v", err)
	}
	if got.Category != "Regular" || got.Price != 0 || got.Priced {
		t.Errorf("unexpected price %+v", got)
	}
}

func TestPriceSeat_Errors(t *testing.T) {
	ev := testEvent()
	svc := NewService(newFakeRepository(ev), testVenues(), nil)

	if _, err := svc.PriceSeat(context.Background(), ev.ID.String(), "1A"); !errors.Is(err, ErrInvalidSeatID) {
		t.Errorf("error = %v, want ErrInvalidSeatID", err)
	}
	if _, err := svc.PriceSeat(context.Background(), uuid.NewString(), "A1"); !errors.Is(err, ErrEventNotFound) {
		t.Errorf("error = %v, want ErrEventNotFound", err)
	}
	if _, err := svc.PriceSeat(context.Background(), "nope", "A1"); !errors.Is(err, ErrInvalidEventID) {
		t.Errorf("error = %v, want ErrInvalidEventID", err)
	}
}

func validCreateRequest() CreateEventRequest {
	return CreateEventRequest{
		EventName:   "Opening Night",
		EventDate:   "2026-12-31",
		EventTime:   "19:30",
		Venue:       testVenueID.String(),
		TicketTypes: []seatmap.TicketType{{Type: "VIP", Price: 100}, {Type: "Regular", Price: 50}},
	}
}

func TestCreateEvent(t *testing.T) {
	repo := newFakeRepository()
	svc := NewService(repo, testVenues(), nil)

	ev, err := svc.CreateEvent(context.Background(), validCreateRequest())
	if err != nil {
		t.Fatalf("CreateEvent: %v", err)
	}
	if ev.Status != StatusUpcoming {
		t.Errorf("status = %q, want default Upcoming", ev.Status)
	}
	if ev.EventDate.Format(DateLayout) != "2026-12-31" {
		t.Errorf("date = %v", ev.EventDate)
	}
	if _, ok := repo.events[ev.ID]; !ok {
		t.Error("event not persisted")
	}
}

func TestCreateEvent_Validation(t *testing.T) {
	svc := NewService(newFakeRepository(), testVenues(), nil)

	mutate := []struct {
		name string
		fn   func(r *CreateEventRequest)
	}{
		{"bad date", func(r *CreateEventRequest) { r.EventDate = "31/12/2026" }},
		{"bad time", func(r *CreateEventRequest) { r.EventTime = "7pm" }},
		{"no ticket types", func(r *CreateEventRequest) { r.TicketTypes = nil }},
		{"negative price", func(r *CreateEventRequest) { r.TicketTypes[0].Price = -1 }},
		{"duplicate types", func(r *CreateEventRequest) { r.TicketTypes[1].Type = "VIP" }},
		{"bad status", func(r *CreateEventRequest) { r.Status = "Cancelled" }},
	}
	for _, tt := range mutate {
		t.Run(tt.name, func(t *testing.T) {
			req := validCreateRequest()
			tt.fn(&req)
			_, err := svc.CreateEvent(context.Background(), req)
			var verrs validator.ValidationErrors
			if !errors.As(err, &verrs) {
				t.Errorf("expected validation error, got %v", err)
			}
		})
	}
}

func TestCreateEvent_UnknownVenue(t *testing.T) {
	svc := NewService(newFakeRepository(), testVenues(), nil)

	req := validCreateRequest()
	req.Venue = uuid.NewString()
	if _, err := svc.CreateEvent(context.Background(), req); !errors.Is(err, ErrUnknownVenue) {
		t.Errorf("error = %v, want ErrUnknownVenue", err)
	}
}

func TestUpdateAndDeleteEvent(t *testing.T) {
	ev := testEvent()
	svc := NewService(newFakeRepository(ev), testVenues(), nil)

	status := string(StatusCompleted)
	updated, err := svc.UpdateEvent(context.Background(), ev.ID.String(), UpdateEventRequest{Status: &status})
	if err != nil {
		t.Fatalf("UpdateEvent: %v", err)
	}
	if updated.Status.OpenForSale() {
		t.Error("completed event should be closed for sale")
	}

	if err := svc.DeleteEvent(context.Background(), ev.ID.String()); err != nil {
		t.Fatalf("DeleteEvent: %v", err)
	}
	if _, err := svc.GetEvent(context.Background(), ev.ID.String()); !errors.Is(err, ErrEventNotFound) {
		t.Errorf("error = %v, want ErrEventNotFound", err)
	}
}

func TestGetAllEvents_Pagination(t *testing.T) {
	svc := NewService(newFakeRepository(testEvent(), testEvent()), testVenues(), nil)

	page, err := svc.GetAllEvents(context.Background(), EventListQuery{Limit: 1000})
	if err != nil {
		t.Fatalf("GetAllEvents: %v", err)
	}
	if page.Limit != 100 || page.Page != 1 || page.TotalCount != 2 || page.TotalPages != 1 {
		t.Errorf("unexpected page %+v", page)
	}
}
