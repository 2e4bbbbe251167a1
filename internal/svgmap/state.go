package svgmap

import (
	"sync"

	"seatly/internal/seatmap"
)

// MarkerStatus is the per-seat state of an interactive seat map
type MarkerStatus string

const (
	StatusUnavailable         MarkerStatus = "UNAVAILABLE"
	StatusAvailableUnselected MarkerStatus = "AVAILABLE"
	StatusAvailableSelected   MarkerStatus = "SELECTED"
)

// Style is the fill/stroke pair applied to a seat shape
type Style struct {
	Fill   string `json:"fill"`
	Stroke string `json:"stroke"`
}

// State is the per-session memory of a bound seat map: the style each seat
// had before binding and whether it can be clicked. It is created when a
// seat map is opened and reset when it is closed.
type State struct {
	mu          sync.RWMutex
	original    map[seatmap.SeatID]Style
	unavailable map[seatmap.SeatID]bool
	order       []seatmap.SeatID
}

func NewState() *State {
	return &State{
		original:    make(map[seatmap.SeatID]Style),
		unavailable: make(map[seatmap.SeatID]bool),
	}
}

func (s *State) capture(id seatmap.SeatID, style Style, unavailable bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.original[id]; !exists {
		s.order = append(s.order, id)
	}
	s.original[id] = style
	s.unavailable[id] = unavailable
}

// OriginalStyle returns the style captured for id at bind time
func (s *State) OriginalStyle(id seatmap.SeatID) (Style, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	style, ok := s.original[id]
	return style, ok
}

// Known reports whether id is a bound seat marker
func (s *State) Known(id seatmap.SeatID) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.original[id]
	return ok
}

// Status returns the marker state of id given the current selection
func (s *State) Status(id seatmap.SeatID, selection seatmap.Selection) (MarkerStatus, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.original[id]; !ok {
		return "", false
	}
	if s.unavailable[id] {
		return StatusUnavailable, true
	}
	if selection.Contains(id) {
		return StatusAvailableSelected, true
	}
	return StatusAvailableUnselected, true
}

// Seats lists bound seat ids in document order
func (s *State) Seats() []seatmap.SeatID {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]seatmap.SeatID, len(s.order))
	copy(out, s.order)
	return out
}

func (s *State) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order)
}

// Reset forgets every captured seat
func (s *State) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.original = make(map[seatmap.SeatID]Style)
	s.unavailable = make(map[seatmap.SeatID]bool)
	s.order = nil
}
