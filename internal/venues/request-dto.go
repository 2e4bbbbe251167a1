package venues

import "seatly/internal/seatmap"

type CreateVenueRequest struct {
	Name        string                 `json:"name" validate:"required,min=2,max=255"`
	SvgTemplate string                 `json:"svgTemplate"`
	SeatsPerRow int                    `json:"seatsPerRow" validate:"omitempty,min=1,max=100"`
	Categories  []seatmap.SeatCategory `json:"categories" validate:"required,min=1,unique=Name,dive"`
}

type UpdateVenueRequest struct {
	Name        *string                `json:"name" validate:"omitempty,min=2,max=255"`
	SvgTemplate *string                `json:"svgTemplate"`
	Categories  []seatmap.SeatCategory `json:"categories" validate:"omitempty,min=1,unique=Name,dive"`
}

type VenueFilters struct {
	Search string `form:"search"`
	Page   int    `form:"page"`
	Limit  int    `form:"limit"`
}
