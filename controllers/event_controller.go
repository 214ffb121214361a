package controllers

import (
	"net/http"
	"strconv"

	"farmconnect/models"
	"farmconnect/services"

	"github.com/gin-gonic/gin"
)

type EventController struct {
	eventService *services.EventService
}

func NewEventController() *EventController {
	return &EventController{eventService: services.NewEventService()}
}

// GetEvents godoc
// @Summary List events
// @Description Get upcoming farm events
// @Tags Events
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Success 200 {object} models.PaginationResponse
// @Router /api/events [get]
func (ctrl *EventController) GetEvents(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	result, err := ctrl.eventService.GetAllEvents(page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Failed to fetch events",
		})
		return
	}

	c.JSON(http.StatusOK, result)
}

// CreateEvent godoc
// @Summary Create event
// @Description Create a farm event (farmer only)
// @Tags Events
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.CreateEventRequest true "Event data"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /api/events [post]
func (ctrl *EventController) CreateEvent(c *gin.Context) {
	farmerID, ok := currentFarmerID(c)
	if !ok {
		return
	}

	var req models.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid request body",
			Error:   err.Error(),
		})
		return
	}

	event, err := ctrl.eventService.CreateEvent(farmerID, req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Failed to create event",
		})
		return
	}

	c.JSON(http.StatusCreated, models.Response{
		Success: true,
		Message: "Event created successfully",
		Data:    event,
	})
}

// DeleteEvent godoc
// @Summary Delete event
// @Description Delete one of the current farmer's events
// @Tags Events
// @Security BearerAuth
// @Produce json
// @Param id path int true "Event ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /api/events/{id} [delete]
func (ctrl *EventController) DeleteEvent(c *gin.Context) {
	farmerID, ok := currentFarmerID(c)
	if !ok {
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid event ID",
		})
		return
	}

	if err := ctrl.eventService.DeleteEvent(id, farmerID); err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Success: false,
			Message: "Event not found",
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Event deleted successfully",
	})
}
