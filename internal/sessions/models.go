package sessions

import (
	"time"

	"seatly/internal/seatmap"
)

// Session is one buyer's interactive seat map for an event. The category
// and ticket type configuration is frozen when the session opens.
type Session struct {
	ID          string                 `json:"id"`
	EventID     string                 `json:"eventId"`
	VenueID     string                 `json:"venueId"`
	EventName   string                 `json:"eventName"`
	VenueName   string                 `json:"venueName"`
	Categories  []seatmap.SeatCategory `json:"categories"`
	TicketTypes []seatmap.TicketType   `json:"ticketTypes"`
	SvgTemplate string                 `json:"svgTemplate"`
	Selected    seatmap.Selection      `json:"selected"`
	OpenedAt    time.Time              `json:"openedAt"`
	ExpiresAt   time.Time              `json:"expiresAt"`
}

func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}

// Summary is the state the seat map client renders around the SVG
type Summary struct {
	SessionID   string                   `json:"sessionId"`
	EventID     string                   `json:"eventId"`
	EventName   string                   `json:"eventName"`
	VenueName   string                   `json:"venueName"`
	Interactive bool                     `json:"interactive"`
	SeatCount   int                      `json:"seatCount"`
	Legend      []seatmap.PricedCategory `json:"legend"`
	Selected    []seatmap.SeatID         `json:"selected"`
	Lines       []seatmap.QuoteLine      `json:"lines"`
	TotalPrice  float64                  `json:"totalPrice"`
	ExpiresAt   time.Time                `json:"expiresAt"`
}

// ToggleResult reports the seat a click or toggle changed
type ToggleResult struct {
	SeatID   seatmap.SeatID `json:"seatId"`
	Selected bool           `json:"selected"`
	Summary  *Summary       `json:"summary"`
}
