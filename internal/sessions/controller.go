package sessions

import (
	"errors"
	"net/http"

	"seatly/internal/events"
	"seatly/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
)

type Controller struct {
	service Service
}

func NewController(service Service) *Controller {
	return &Controller{service: service}
}

func (c *Controller) Open(ctx *gin.Context) {
	var req OpenSessionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondValidationError(ctx, err)
		return
	}

	summary, err := c.service.Open(ctx.Request.Context(), req.EventID)
	if err != nil {
		respondServiceError(ctx, "Failed to open seat map", err)
		return
	}

	response.RespondSuccess(ctx, http.StatusCreated, "Seat map opened", summary)
}

func (c *Controller) Summary(ctx *gin.Context) {
	summary, err := c.service.Summary(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondServiceError(ctx, "Failed to get seat map", err)
		return
	}

	response.RespondSuccess(ctx, http.StatusOK, "Seat map retrieved", summary)
}

func (c *Controller) Click(ctx *gin.Context) {
	var req ClickRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondValidationError(ctx, err)
		return
	}

	result, err := c.service.Click(ctx.Request.Context(), ctx.Param("id"), req.Target)
	if err != nil {
		respondServiceError(ctx, "Failed to select seat", err)
		return
	}

	response.RespondSuccess(ctx, http.StatusOK, toggleMessage(result), result)
}

func (c *Controller) Toggle(ctx *gin.Context) {
	result, err := c.service.Toggle(ctx.Request.Context(), ctx.Param("id"), ctx.Param("seatId"))
	if err != nil {
		respondServiceError(ctx, "Failed to select seat", err)
		return
	}

	response.RespondSuccess(ctx, http.StatusOK, toggleMessage(result), result)
}

// Render serves the seat map with the current selection highlighted
func (c *Controller) Render(ctx *gin.Context) {
	svg, err := c.service.Render(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondServiceError(ctx, "Failed to render seat map", err)
		return
	}
	if svg == "" {
		ctx.Status(http.StatusNoContent)
		return
	}

	ctx.Header("Cache-Control", "no-store")
	ctx.Data(http.StatusOK, "image/svg+xml; charset=utf-8", []byte(svg))
}

func (c *Controller) Checkout(ctx *gin.Context) {
	intent, err := c.service.Checkout(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondServiceError(ctx, "Failed to check out", err)
		return
	}

	response.RespondSuccess(ctx, http.StatusCreated, "Checkout started", intent)
}

func (c *Controller) Close(ctx *gin.Context) {
	if err := c.service.Close(ctx.Request.Context(), ctx.Param("id")); err != nil {
		respondServiceError(ctx, "Failed to close seat map", err)
		return
	}

	response.RespondSuccess(ctx, http.StatusOK, "Seat map closed", nil)
}

func toggleMessage(r *ToggleResult) string {
	if r.Selected {
		return "Seat selected"
	}
	return "Seat deselected"
}

func respondServiceError(ctx *gin.Context, message string, err error) {
	switch {
	case errors.Is(err, events.ErrInvalidEventID):
		response.RespondError(ctx, http.StatusBadRequest, err.Error(), err)
	case errors.Is(err, ErrSessionNotFound),
		errors.Is(err, ErrEventNotFound),
		errors.Is(err, ErrVenueNotFound):
		response.RespondError(ctx, http.StatusNotFound, err.Error(), err)
	case errors.Is(err, ErrSeatUnavailable),
		errors.Is(err, ErrEventClosed),
		errors.Is(err, ErrConcurrentUpdate):
		response.RespondError(ctx, http.StatusConflict, err.Error(), err)
	case errors.Is(err, ErrNoSeatAtTarget),
		errors.Is(err, ErrInvalidSeat),
		errors.Is(err, ErrEmptySelection):
		response.RespondError(ctx, http.StatusUnprocessableEntity, err.Error(), err)
	default:
		response.RespondError(ctx, http.StatusInternalServerError, message, err)
	}
}
