package venues

import (
	"time"

	"seatly/internal/seatmap"

	"github.com/google/uuid"
)

// SeatMap is the ordered category configuration of a venue.
// Stored as jsonb; the order of Categories defines the row ranges.
type SeatMap struct {
	Categories []seatmap.SeatCategory `json:"categories"`
}

type Venue struct {
	ID          uuid.UUID `json:"_id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	Name        string    `json:"name" gorm:"not null;size:255"`
	SvgTemplate string    `json:"svgTemplate" gorm:"type:text"`
	SeatMap     SeatMap   `json:"seatMap" gorm:"type:jsonb;serializer:json;not null"`
	CreatedAt   time.Time `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt   time.Time `json:"updatedAt" gorm:"autoUpdateTime"`
}
