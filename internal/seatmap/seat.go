package seatmap

import (
	"fmt"
	"strconv"
)

// SeatID identifies a seat as <RowLetter><SeatNumber>, e.g. "A1" or "C14"
type SeatID string

// Seat is the decomposed form of a SeatID
type Seat struct {
	ID     SeatID `json:"seat_id"`
	Row    string `json:"row"`
	Number int    `json:"number"`
}

// RowIndex returns the 0-based row index (A=0, B=1, ...)
func (s Seat) RowIndex() int {
	return int(s.Row[0]) - 'A'
}

// ParseSeatID splits a seat id into its row letter and seat number
func ParseSeatID(id SeatID) (Seat, error) {
	raw := string(id)
	if len(raw) < 2 {
		return Seat{}, fmt.Errorf("invalid seat id %q: too short", raw)
	}

	row := raw[0]
	if row < 'A' || row > 'Z' {
		return Seat{}, fmt.Errorf("invalid seat id %q: row must be an uppercase letter", raw)
	}

	number, err := strconv.Atoi(raw[1:])
	if err != nil || number < 1 {
		return Seat{}, fmt.Errorf("invalid seat id %q: seat number must be a positive integer", raw)
	}

	return Seat{
		ID:     id,
		Row:    string(row),
		Number: number,
	}, nil
}

// RowLetter converts a 0-based row index back to its letter
func RowLetter(rowIndex int) string {
	if rowIndex < 0 || rowIndex > 'Z'-'A' {
		return ""
	}
	return string(rune('A' + rowIndex))
}
