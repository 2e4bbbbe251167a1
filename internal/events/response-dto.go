package events

import "seatly/internal/seatmap"

type PaginatedEvents struct {
	Events     []Event `json:"events"`
	TotalCount int64   `json:"total_count"`
	Page       int     `json:"page"`
	Limit      int     `json:"limit"`
	TotalPages int     `json:"total_pages"`
}

// SeatPrice is the price preview of a single seat
type SeatPrice struct {
	seatmap.QuoteLine
	Priced bool `json:"priced"`
}
