package seatmap

import (
	"encoding/json"
	"testing"
)

func venueCategories() []SeatCategory {
	return []SeatCategory{
		{Name: "VIP", RowCount: 2, Color: "#f59e0b"},
		{Name: "General", RowCount: 3, Color: "#3b82f6"},
	}
}

func venueTicketTypes() []TicketType {
	return []TicketType{
		{Type: "VIP", Price: 100},
		{Type: "General", Price: 50},
	}
}

func TestParseSeatID(t *testing.T) {
	tests := []struct {
		id      SeatID
		row     string
		number  int
		wantErr bool
	}{
		{id: "A1", row: "A", number: 1},
		{id: "C14", row: "C", number: 14},
		{id: "Z999", row: "Z", number: 999},
		{id: "", wantErr: true},
		{id: "A", wantErr: true},
		{id: "a1", wantErr: true},
		{id: "1A", wantErr: true},
		{id: "A0", wantErr: true},
		{id: "A-3", wantErr: true},
		{id: "AB2", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(string(tt.id), func(t *testing.T) {
			seat, err := ParseSeatID(tt.id)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseSeatID(%q) expected error, got %+v", tt.id, seat)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseSeatID(%q) unexpected error: %v", tt.id, err)
			}
			if seat.Row != tt.row || seat.Number != tt.number {
				t.Errorf("ParseSeatID(%q) = %s/%d, want %s/%d", tt.id, seat.Row, seat.Number, tt.row, tt.number)
			}
		})
	}
}

func TestRowLetter(t *testing.T) {
	if got := RowLetter(0); got != "A" {
		t.Errorf("RowLetter(0) = %q, want A", got)
	}
	if got := RowLetter(25); got != "Z" {
		t.Errorf("RowLetter(25) = %q, want Z", got)
	}
	if got := RowLetter(26); got != "" {
		t.Errorf("RowLetter(26) = %q, want empty", got)
	}
	if got := RowLetter(-1); got != "" {
		t.Errorf("RowLetter(-1) = %q, want empty", got)
	}
}

func TestResolveCategory_ReversedTraversal(t *testing.T) {
	cats := venueCategories()

	want := []string{"General", "General", "General", "VIP", "VIP"}
	for row, name := range want {
		got, ok := ResolveCategory(row, cats)
		if !ok {
			t.Fatalf("row %d: expected a category", row)
		}
		if got.Name != name {
			t.Errorf("row %d: got %s, want %s", row, got.Name, name)
		}
	}
}

func TestResolveCategory_EdgeCases(t *testing.T) {
	noGeneral := []SeatCategory{
		{Name: "VIP", RowCount: 1},
		{Name: "Balcony", RowCount: 2},
	}

	tests := []struct {
		name     string
		row      int
		cats     []SeatCategory
		wantName string
		wantOK   bool
	}{
		{name: "empty list", row: 0, cats: nil},
		{name: "negative row", row: -1, cats: venueCategories()},
		{name: "past range falls back to General", row: 7, cats: venueCategories(), wantName: "General", wantOK: true},
		{name: "past range without General", row: 3, cats: noGeneral},
		{name: "zero row count is skipped", row: 0, cats: []SeatCategory{{Name: "VIP", RowCount: 1}, {Name: "Empty", RowCount: 0}}, wantName: "VIP", wantOK: true},
		{name: "last category owns front row", row: 0, cats: noGeneral, wantName: "Balcony", wantOK: true},
		{name: "first category owns back row", row: 2, cats: noGeneral, wantName: "VIP", wantOK: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ResolveCategory(tt.row, tt.cats)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && got.Name != tt.wantName {
				t.Errorf("got %s, want %s", got.Name, tt.wantName)
			}
		})
	}
}

func TestResolveCategory_MapsBackToOriginal(t *testing.T) {
	cats := []SeatCategory{
		{Name: "VIP", RowCount: 1, Color: "gold", Description: "front"},
		{Name: "VIP", RowCount: 1, Color: "ignored"},
	}

	got, ok := ResolveCategory(0, cats)
	if !ok {
		t.Fatal("expected a category")
	}
	if got.Color != "gold" || got.Description != "front" {
		t.Errorf("expected the first VIP entry, got %+v", got)
	}
}

func TestResolveCategory_PartitionIsContiguous(t *testing.T) {
	cats := []SeatCategory{
		{Name: "Balcony", RowCount: 4},
		{Name: "Stalls", RowCount: 3},
		{Name: "Premium", RowCount: 0},
		{Name: "VIP", RowCount: 2},
	}

	total := TotalRows(cats)
	if total != 9 {
		t.Fatalf("TotalRows = %d, want 9", total)
	}

	seen := map[string]bool{}
	prev := ""
	for row := 0; row < total; row++ {
		got, ok := ResolveCategory(row, cats)
		if !ok {
			t.Fatalf("row %d has no category", row)
		}
		if got.Name != prev {
			if seen[got.Name] {
				t.Fatalf("category %s owns non-contiguous rows", got.Name)
			}
			seen[got.Name] = true
			prev = got.Name
		}
	}
	if seen["Premium"] {
		t.Error("zero-row category should own no rows")
	}
}

func TestRowRanges(t *testing.T) {
	ranges := RowRanges(venueCategories())
	if len(ranges) != 2 {
		t.Fatalf("expected 2 ranges, got %d", len(ranges))
	}
	if ranges[0].Category != "General" || ranges[0].From != "A" || ranges[0].To != "C" {
		t.Errorf("unexpected front range: %+v", ranges[0])
	}
	if ranges[1].Category != "VIP" || ranges[1].From != "D" || ranges[1].To != "E" {
		t.Errorf("unexpected back range: %+v", ranges[1])
	}
}

func TestPriceForSeat(t *testing.T) {
	cats := venueCategories()
	tts := venueTicketTypes()

	tests := []struct {
		id   SeatID
		want float64
	}{
		{id: "A1", want: 50},
		{id: "C9", want: 50},
		{id: "D2", want: 100},
		{id: "E3", want: 100},
		{id: "Z1", want: 50}, // General fallback
		{id: "bogus", want: 0},
	}

	for _, tt := range tests {
		if got := PriceForSeat(tt.id, cats, tts); got != tt.want {
			t.Errorf("PriceForSeat(%s) = %v, want %v", tt.id, got, tt.want)
		}
	}
}

func TestPriceForSeat_DegradesToZero(t *testing.T) {
	cats := []SeatCategory{{Name: "VIP", RowCount: 2}, {Name: "Stalls", RowCount: 3}}

	if got := PriceForSeat("H1", cats, []TicketType{{Type: "VIP", Price: 100}}); got != 0 {
		t.Errorf("seat beyond configured rows without General: got %v, want 0", got)
	}
	if got := PriceForSeat("A1", cats, []TicketType{{Type: "VIP", Price: 100}}); got != 0 {
		t.Errorf("category without ticket type: got %v, want 0", got)
	}
	if got := PriceForSeat("A1", nil, venueTicketTypes()); got != 0 {
		t.Errorf("no categories: got %v, want 0", got)
	}
}

func TestSelectionToggle(t *testing.T) {
	empty := Selection{}

	s := empty.Toggle("A1")
	if !s.Contains("A1") || s.Len() != 1 {
		t.Fatalf("expected A1 selected, got %v", s.IDs())
	}
	if empty.Len() != 0 {
		t.Fatal("Toggle must not mutate the receiver")
	}

	s = s.Toggle("B2").Toggle("A1")
	if s.Contains("A1") || !s.Contains("B2") {
		t.Fatalf("unexpected selection %v", s.IDs())
	}
}

func TestSelectionToggle_DoubleToggleIsIdentity(t *testing.T) {
	bases := []Selection{
		{},
		NewSelection("A1"),
		NewSelection("A1", "B2", "C3"),
	}
	ids := []SeatID{"A1", "B2", "Z9"}

	for _, base := range bases {
		for _, id := range ids {
			got := base.Toggle(id).Toggle(id)
			if !got.SameMembers(base) {
				t.Errorf("toggle(toggle(%v, %s)) = %v", base.IDs(), id, got.IDs())
			}
		}
	}
}

func TestSelectionPreservesInsertionOrder(t *testing.T) {
	s := NewSelection("C3", "A1", "C3", "B2")
	ids := s.IDs()
	want := []SeatID{"C3", "A1", "B2"}
	if len(ids) != len(want) {
		t.Fatalf("got %v, want %v", ids, want)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("got %v, want %v", ids, want)
		}
	}
}

func TestSelectionSameMembers(t *testing.T) {
	tests := []struct {
		name  string
		a, b  Selection
		same  bool
		equal bool
	}{
		{"both empty", Selection{}, NewSelection(), true, true},
		{"same order", NewSelection("A1", "B2"), NewSelection("A1", "B2"), true, true},
		{"reordered", NewSelection("A1", "B2"), NewSelection("B2", "A1"), true, false},
		{"toggled off and on", NewSelection("A1", "B2"), NewSelection("A1", "B2").Toggle("A1").Toggle("A1"), true, false},
		{"extra seat", NewSelection("A1"), NewSelection("A1", "B2"), false, false},
		{"different seat", NewSelection("A1", "C3"), NewSelection("A1", "B2"), false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.SameMembers(tt.b); got != tt.same {
				t.Errorf("SameMembers = %v, want %v", got, tt.same)
			}
			if got := tt.b.SameMembers(tt.a); got != tt.same {
				t.Errorf("SameMembers is not symmetric")
			}
			if got := tt.a.Equal(tt.b); got != tt.equal {
				t.Errorf("Equal = %v, want %v", got, tt.equal)
			}
		})
	}
}

func TestSelectionJSON(t *testing.T) {
	s := NewSelection("A1", "B2")
	data, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `["A1","B2"]` {
		t.Errorf("unexpected JSON %s", data)
	}

	var back Selection
	if err := json.Unmarshal([]byte(`["A1","A1","C3"]`), &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !back.Equal(NewSelection("A1", "C3")) {
		t.Errorf("unexpected selection %v", back.IDs())
	}
}

func TestTotal(t *testing.T) {
	cats := venueCategories()
	tts := venueTicketTypes()

	if got := Total(Selection{}, cats, tts); got != 0 {
		t.Errorf("empty selection total = %v, want 0", got)
	}

	s := NewSelection("A1", "A2")
	want := PriceForSeat("A1", cats, tts) + PriceForSeat("A2", cats, tts)
	if got := Total(s, cats, tts); got != want {
		t.Errorf("Total = %v, want %v", got, want)
	}

	forward := Total(NewSelection("A1", "E3", "D1"), cats, tts)
	backward := Total(NewSelection("D1", "E3", "A1"), cats, tts)
	if forward != backward || forward != 250 {
		t.Errorf("total should be order independent: %v vs %v", forward, backward)
	}
}

func TestBuildQuote(t *testing.T) {
	quote := BuildQuote(NewSelection("E3", "A1", "bad"), venueCategories(), venueTicketTypes())

	if len(quote.Lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(quote.Lines))
	}
	if quote.Lines[0].Category != "VIP" || quote.Lines[0].Price != 100 || quote.Lines[0].Row != "E" || quote.Lines[0].Number != 3 {
		t.Errorf("unexpected first line %+v", quote.Lines[0])
	}
	if quote.Lines[2].Category != "" || quote.Lines[2].Price != 0 {
		t.Errorf("unparseable seat should be unpriced, got %+v", quote.Lines[2])
	}
	if quote.Total != 150 {
		t.Errorf("Total = %v, want 150", quote.Total)
	}
}

func TestLegend(t *testing.T) {
	cats := []SeatCategory{
		{Name: "Balcony", RowCount: 3},
		{Name: "General", RowCount: 3},
		{Name: "VIP", RowCount: 2},
	}
	tts := []TicketType{{Type: "General", Price: 50}, {Type: "VIP", Price: 100}}

	legend := Legend(cats, tts)
	want := []string{"VIP", "General", "Balcony"}
	for i, name := range want {
		if legend[i].Name != name {
			t.Fatalf("legend[%d] = %s, want %s", i, legend[i].Name, name)
		}
	}
	if legend[2].Price != 0 {
		t.Errorf("unmatched category should be priced 0, got %v", legend[2].Price)
	}

	unpriced := UnpricedCategories(cats, tts)
	if len(unpriced) != 1 || unpriced[0] != "Balcony" {
		t.Errorf("UnpricedCategories = %v", unpriced)
	}
}

func TestAnnotate_KeepsConfiguredOrder(t *testing.T) {
	priced := Annotate(venueCategories(), []TicketType{{Type: "General", Price: 50}})

	if len(priced) != 2 || priced[0].Name != "VIP" || priced[1].Name != "General" {
		t.Fatalf("unexpected order %+v", priced)
	}
	if priced[0].Price != 0 || priced[1].Price != 50 {
		t.Errorf("unexpected prices %+v", priced)
	}
	if priced[1].RowCount != 3 || priced[1].Color != "#3b82f6" {
		t.Errorf("category fields lost: %+v", priced[1])
	}

	data, err := json.Marshal(priced[1])
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `{"name":"General","rowCount":3,"color":"#3b82f6","price":50}` {
		t.Errorf("unexpected JSON %s", data)
	}
}
