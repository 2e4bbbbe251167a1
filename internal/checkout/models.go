package checkout

import (
	"encoding/json"
	"time"

	"seatly/internal/seatmap"

	"github.com/google/uuid"
)

const Currency = "USD"

// IntentSeat is one priced seat of a checkout hand-off
type IntentSeat struct {
	SeatID   seatmap.SeatID `json:"seatId"`
	Row      string         `json:"row"`
	Number   int            `json:"number"`
	Category string         `json:"category,omitempty"`
	Price    float64        `json:"price"`
}

// Intent is the hand-off from the seat map to the booking flow.
// It carries what the buyer picked and what it cost; it holds no seats.
type Intent struct {
	IntentID   uuid.UUID    `json:"intentId"`
	SessionID  string       `json:"sessionId"`
	EventID    string       `json:"eventId"`
	EventName  string       `json:"eventName"`
	VenueName  string       `json:"venueName"`
	Seats      []IntentSeat `json:"seats"`
	TotalPrice float64      `json:"totalPrice"`
	Currency   string       `json:"currency"`
	CreatedAt  time.Time    `json:"createdAt"`
}

// NewIntent builds an intent from a priced selection
func NewIntent(sessionID, eventID, eventName, venueName string, quote seatmap.Quote) *Intent {
	seats := make([]IntentSeat, 0, len(quote.Lines))
	for _, line := range quote.Lines {
		seats = append(seats, IntentSeat{
			SeatID:   line.ID,
			Row:      line.Row,
			Number:   line.Number,
			Category: line.Category,
			Price:    line.Price,
		})
	}

	return &Intent{
		IntentID:   uuid.New(),
		SessionID:  sessionID,
		EventID:    eventID,
		EventName:  eventName,
		VenueName:  venueName,
		Seats:      seats,
		TotalPrice: quote.Total,
		Currency:   Currency,
		CreatedAt:  time.Now().UTC(),
	}
}

func (i *Intent) ToJSON() ([]byte, error) {
	return json.Marshal(i)
}

// PartitionKey keeps every intent of an event on one partition
func (i *Intent) PartitionKey() string {
	return i.EventID
}
