package venues

import "seatly/internal/seatmap"

type VenueSummary struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}

// VenueLayout is the stored seat map of a venue
type VenueLayout struct {
	ID          string             `json:"_id"`
	Name        string             `json:"name"`
	SvgTemplate string             `json:"svgTemplate"`
	SeatMap     SeatMap            `json:"seatMap"`
	RowRanges   []seatmap.RowRange `json:"rowRanges"`
}

// EventLayout is what the seat map client renders for one event
type EventLayout struct {
	ID          string             `json:"_id"`
	Name        string             `json:"name"`
	SvgTemplate string             `json:"svgTemplate"`
	SeatMap     PricedSeatMap      `json:"seatMap"`
	RowRanges   []seatmap.RowRange `json:"rowRanges"`
}

type PricedSeatMap struct {
	Categories []seatmap.PricedCategory `json:"categories"`
}

type PaginatedVenues struct {
	Venues     []VenueSummary `json:"venues"`
	TotalCount int64          `json:"total_count"`
	Page       int            `json:"page"`
	Limit      int            `json:"limit"`
	TotalPages int            `json:"total_pages"`
}

func toSummary(v *Venue) VenueSummary {
	return VenueSummary{ID: v.ID.String(), Name: v.Name}
}

func toLayout(v *Venue) *VenueLayout {
	return &VenueLayout{
		ID:          v.ID.String(),
		Name:        v.Name,
		SvgTemplate: v.SvgTemplate,
		SeatMap:     v.SeatMap,
		RowRanges:   seatmap.RowRanges(v.SeatMap.Categories),
	}
}

func toEventLayout(layout *VenueLayout, ticketTypes []seatmap.TicketType) *EventLayout {
	return &EventLayout{
		ID:          layout.ID,
		Name:        layout.Name,
		SvgTemplate: layout.SvgTemplate,
		SeatMap:     PricedSeatMap{Categories: seatmap.Annotate(layout.SeatMap.Categories, ticketTypes)},
		RowRanges:   layout.RowRanges,
	}
}
