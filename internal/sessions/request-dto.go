package sessions

type OpenSessionRequest struct {
	EventID string `json:"eventId" binding:"required"`
}

// ClickRequest carries the id of the element the buyer clicked, or a seat id
type ClickRequest struct {
	Target string `json:"target" binding:"required"`
}
