package seatmap

import "encoding/json"

// Selection is an insertion-ordered set of seat ids.
// It is a value type: Toggle returns a new Selection and never mutates the receiver.
type Selection struct {
	ids []SeatID
}

// NewSelection builds a selection from ids, dropping duplicates
func NewSelection(ids ...SeatID) Selection {
	s := Selection{}
	for _, id := range ids {
		if !s.Contains(id) {
			s.ids = append(s.ids, id)
		}
	}
	return s
}

// Toggle removes id when present, otherwise appends it
func (s Selection) Toggle(id SeatID) Selection {
	next := make([]SeatID, 0, len(s.ids)+1)
	found := false
	for _, existing := range s.ids {
		if existing == id {
			found = true
			continue
		}
		next = append(next, existing)
	}
	if !found {
		next = append(next, id)
	}
	return Selection{ids: next}
}

// Contains reports whether id is selected
func (s Selection) Contains(id SeatID) bool {
	for _, existing := range s.ids {
		if existing == id {
			return true
		}
	}
	return false
}

// IDs returns the selected ids in insertion order
func (s Selection) IDs() []SeatID {
	out := make([]SeatID, len(s.ids))
	copy(out, s.ids)
	return out
}

func (s Selection) Len() int {
	return len(s.ids)
}

func (s Selection) IsEmpty() bool {
	return len(s.ids) == 0
}

// Equal compares membership and order
func (s Selection) Equal(other Selection) bool {
	if len(s.ids) != len(other.ids) {
		return false
	}
	for i := range s.ids {
		if s.ids[i] != other.ids[i] {
			return false
		}
	}
	return true
}

// SameMembers compares membership only
func (s Selection) SameMembers(other Selection) bool {
	if len(s.ids) != len(other.ids) {
		return false
	}
	for _, id := range s.ids {
		if !other.Contains(id) {
			return false
		}
	}
	return true
}

func (s Selection) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.IDs())
}

func (s *Selection) UnmarshalJSON(data []byte) error {
	var ids []SeatID
	if err := json.Unmarshal(data, &ids); err != nil {
		return err
	}
	*s = NewSelection(ids...)
	return nil
}
