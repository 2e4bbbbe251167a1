package venues

import (
	"errors"
	"net/http"

	"seatly/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type Controller struct {
	service Service
}

func NewController(service Service) *Controller {
	return &Controller{service: service}
}

func (c *Controller) ListVenues(ctx *gin.Context) {
	var filters VenueFilters
	if err := ctx.ShouldBindQuery(&filters); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid query parameters", nil, err.Error())
		return
	}

	result, err := c.service.ListVenues(ctx.Request.Context(), filters)
	if err != nil {
		response.RespondError(ctx, http.StatusInternalServerError, "Failed to get venues", err)
		return
	}

	response.RespondSuccess(ctx, http.StatusOK, "Venues retrieved successfully", result.Venues)
}

func (c *Controller) GetLayout(ctx *gin.Context) {
	layout, err := c.service.GetEventLayout(ctx.Request.Context(), ctx.Param("venueId"), ctx.Param("eventId"))
	if err != nil {
		c.respondServiceError(ctx, "Failed to get venue layout", err)
		return
	}

	response.RespondSuccess(ctx, http.StatusOK, "Venue layout retrieved successfully", layout)
}

func (c *Controller) GetVenue(ctx *gin.Context) {
	venue, err := c.service.GetVenue(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		c.respondServiceError(ctx, "Failed to get venue", err)
		return
	}

	response.RespondSuccess(ctx, http.StatusOK, "Venue retrieved successfully", venue)
}

func (c *Controller) CreateVenue(ctx *gin.Context) {
	var req CreateVenueRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondValidationError(ctx, err)
		return
	}

	venue, err := c.service.CreateVenue(ctx.Request.Context(), req)
	if err != nil {
		c.respondServiceError(ctx, "Failed to create venue", err)
		return
	}

	response.RespondSuccess(ctx, http.StatusCreated, "Venue created successfully", venue)
}

func (c *Controller) UpdateVenue(ctx *gin.Context) {
	var req UpdateVenueRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondValidationError(ctx, err)
		return
	}

	venue, err := c.service.UpdateVenue(ctx.Request.Context(), ctx.Param("id"), req)
	if err != nil {
		c.respondServiceError(ctx, "Failed to update venue", err)
		return
	}

	response.RespondSuccess(ctx, http.StatusOK, "Venue updated successfully", venue)
}

func (c *Controller) DeleteVenue(ctx *gin.Context) {
	if err := c.service.DeleteVenue(ctx.Request.Context(), ctx.Param("id")); err != nil {
		c.respondServiceError(ctx, "Failed to delete venue", err)
		return
	}

	response.RespondSuccess(ctx, http.StatusOK, "Venue deleted successfully", nil)
}

func (c *Controller) respondServiceError(ctx *gin.Context, message string, err error) {
	var verrs validator.ValidationErrors
	switch {
	case errors.As(err, &verrs):
		response.RespondValidationError(ctx, err)
	case errors.Is(err, ErrInvalidVenueID), errors.Is(err, ErrInvalidEventID):
		response.RespondError(ctx, http.StatusBadRequest, err.Error(), err)
	case errors.Is(err, ErrVenueNotFound), errors.Is(err, ErrEventNotFound):
		response.RespondError(ctx, http.StatusNotFound, err.Error(), err)
	case errors.Is(err, ErrTooManyRows):
		response.RespondError(ctx, http.StatusUnprocessableEntity, err.Error(), err)
	case errors.Is(err, ErrVenueNameTaken):
		response.RespondError(ctx, http.StatusConflict, err.Error(), err)
	default:
		response.RespondError(ctx, http.StatusInternalServerError, message, err)
	}
}
