package seatmap

// GeneralCategory is the category used for rows that fall outside every configured range
const GeneralCategory = "General"

// MaxRows is the number of rows a seat map can address, A through Z
const MaxRows = 'Z' - 'A' + 1

// SeatCategory groups contiguous rows sharing a price tier and color.
// The order of a category list is significant: the last category owns the front rows.
type SeatCategory struct {
	Name        string `json:"name" validate:"required,max=100"`
	RowCount    int    `json:"rowCount" validate:"min=0,max=26"`
	Color       string `json:"color" validate:"required"`
	Description string `json:"description,omitempty" validate:"max=500"`
}

// TicketType is a priced tier matched to a SeatCategory by name
type TicketType struct {
	Type        string  `json:"type" validate:"required,max=100"`
	Price       float64 `json:"price" validate:"min=0"`
	Description string  `json:"description,omitempty" validate:"max=500"`
}

// PricedCategory is a category annotated with the price of its ticket type
type PricedCategory struct {
	SeatCategory
	Price float64 `json:"price"`
}

// RowRange is the span of rows a category owns, front to back
type RowRange struct {
	Category string `json:"category"`
	FirstRow int    `json:"first_row"`
	LastRow  int    `json:"last_row"`
	From     string `json:"from"`
	To       string `json:"to"`
}

// QuoteLine is the priced breakdown of one selected seat
type QuoteLine struct {
	Seat
	Category string  `json:"category,omitempty"`
	Color    string  `json:"color,omitempty"`
	Price    float64 `json:"price"`
}

// Quote is the per-seat breakdown and total of a selection
type Quote struct {
	Lines []QuoteLine `json:"lines"`
	Total float64     `json:"total"`
}
