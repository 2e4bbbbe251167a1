package events

import (
	"errors"
	"net/http"

	"seatly/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type Controller interface {
	GetAllEvents(c *gin.Context)
	GetEvent(c *gin.Context)
	GetSeatPrice(c *gin.Context)
	CreateEvent(c *gin.Context)
	UpdateEvent(c *gin.Context)
	DeleteEvent(c *gin.Context)
}

type controller struct {
	service Service
}

func NewController(service Service) Controller {
	return &controller{service: service}
}

func (ctrl *controller) GetAllEvents(c *gin.Context) {
	var query EventListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid query parameters", nil, err.Error())
		return
	}

	result, err := ctrl.service.GetAllEvents(c.Request.Context(), query)
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, "Failed to retrieve events", err)
		return
	}

	response.RespondSuccess(c, http.StatusOK, "Events retrieved successfully", result)
}

func (ctrl *controller) GetEvent(c *gin.Context) {
	event, err := ctrl.service.GetEvent(c.Request.Context(), c.Param("id"))
	if err != nil {
		ctrl.respondServiceError(c, "Failed to retrieve event", err)
		return
	}

	response.RespondSuccess(c, http.StatusOK, "Event retrieved successfully", event)
}

func (ctrl *controller) GetSeatPrice(c *gin.Context) {
	price, err := ctrl.service.PriceSeat(c.Request.Context(), c.Param("id"), c.Param("seatId"))
	if err != nil {
		ctrl.respondServiceError(c, "Failed to price seat", err)
		return
	}

	response.RespondSuccess(c, http.StatusOK, "Seat priced successfully", price)
}

func (ctrl *controller) CreateEvent(c *gin.Context) {
	var req CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondValidationError(c, err)
		return
	}

	event, err := ctrl.service.CreateEvent(c.Request.Context(), req)
	if err != nil {
		ctrl.respondServiceError(c, "Failed to create event", err)
		return
	}

	response.RespondSuccess(c, http.StatusCreated, "Event created successfully", event)
}

func (ctrl *controller) UpdateEvent(c *gin.Context) {
	var req UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondValidationError(c, err)
		return
	}

	event, err := ctrl.service.UpdateEvent(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		ctrl.respondServiceError(c, "Failed to update event", err)
		return
	}

	response.RespondSuccess(c, http.StatusOK, "Event updated successfully", event)
}

func (ctrl *controller) DeleteEvent(c *gin.Context) {
	if err := ctrl.service.DeleteEvent(c.Request.Context(), c.Param("id")); err != nil {
		ctrl.respondServiceError(c, "Failed to delete event", err)
		return
	}

	response.RespondSuccess(c, http.StatusOK, "Event deleted successfully", nil)
}

func (ctrl *controller) respondServiceError(c *gin.Context, message string, err error) {
	var verrs validator.ValidationErrors
	switch {
	case errors.As(err, &verrs):
		response.RespondValidationError(c, err)
	case errors.Is(err, ErrInvalidEventID), errors.Is(err, ErrInvalidSeatID):
		response.RespondError(c, http.StatusBadRequest, err.Error(), err)
	case errors.Is(err, ErrEventNotFound):
		response.RespondError(c, http.StatusNotFound, err.Error(), err)
	case errors.Is(err, ErrUnknownVenue):
		response.RespondError(c, http.StatusUnprocessableEntity, err.Error(), err)
	default:
		response.RespondError(c, http.StatusInternalServerError, message, err)
	}
}
