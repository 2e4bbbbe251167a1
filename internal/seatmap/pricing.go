package seatmap

import "sort"

// CategoryForSeat resolves the category of a seat id. Unparseable ids have no category.
func CategoryForSeat(id SeatID, categories []SeatCategory) (SeatCategory, bool) {
	seat, err := ParseSeatID(id)
	if err != nil {
		return SeatCategory{}, false
	}
	return ResolveCategory(seat.RowIndex(), categories)
}

// PriceForSeat prices a seat by joining its category against the ticket types by name.
// A seat without a category, or a category without a ticket type, is priced at 0.
func PriceForSeat(id SeatID, categories []SeatCategory, ticketTypes []TicketType) float64 {
	category, ok := CategoryForSeat(id, categories)
	if !ok {
		return 0
	}
	return priceForCategory(category.Name, ticketTypes)
}

// Total sums the price of every seat in the selection
func Total(selection Selection, categories []SeatCategory, ticketTypes []TicketType) float64 {
	var total float64
	for _, id := range selection.IDs() {
		total += PriceForSeat(id, categories, ticketTypes)
	}
	return total
}

// BuildQuote prices every selected seat in display order
func BuildQuote(selection Selection, categories []SeatCategory, ticketTypes []TicketType) Quote {
	quote := Quote{Lines: make([]QuoteLine, 0, selection.Len())}

	for _, id := range selection.IDs() {
		line := QuoteLine{Seat: Seat{ID: id}}
		if seat, err := ParseSeatID(id); err == nil {
			line.Seat = seat
		}
		if category, ok := CategoryForSeat(id, categories); ok {
			line.Category = category.Name
			line.Color = category.Color
			line.Price = priceForCategory(category.Name, ticketTypes)
		}
		quote.Total += line.Price
		quote.Lines = append(quote.Lines, line)
	}

	return quote
}

// Annotate attaches the ticket type price to each category, keeping the configured order
func Annotate(categories []SeatCategory, ticketTypes []TicketType) []PricedCategory {
	priced := make([]PricedCategory, 0, len(categories))
	for _, c := range categories {
		priced = append(priced, PricedCategory{
			SeatCategory: c,
			Price:        priceForCategory(c.Name, ticketTypes),
		})
	}
	return priced
}

// Legend annotates each category with its price, most expensive first
func Legend(categories []SeatCategory, ticketTypes []TicketType) []PricedCategory {
	legend := Annotate(categories, ticketTypes)

	sort.SliceStable(legend, func(i, j int) bool {
		return legend[i].Price > legend[j].Price
	})

	return legend
}

// UnpricedCategories lists the categories that no ticket type matches
func UnpricedCategories(categories []SeatCategory, ticketTypes []TicketType) []string {
	var names []string
	for _, c := range categories {
		if _, ok := findTicketType(c.Name, ticketTypes); !ok {
			names = append(names, c.Name)
		}
	}
	return names
}

func priceForCategory(name string, ticketTypes []TicketType) float64 {
	if tt, ok := findTicketType(name, ticketTypes); ok {
		return tt.Price
	}
	return 0
}

func findTicketType(name string, ticketTypes []TicketType) (TicketType, bool) {
	for _, tt := range ticketTypes {
		if tt.Type == name {
			return tt, true
		}
	}
	return TicketType{}, false
}
