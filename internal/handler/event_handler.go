package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/noah-isme/unigov-client/internal/models"
	appErrors "github.com/noah-isme/unigov-client/pkg/errors"
	"github.com/noah-isme/unigov-client/pkg/response"
)

type eventStore interface {
	ListEvents(ctx context.Context) []models.Event
	UpcomingEvents(ctx context.Context) []models.Event
	CreateEvent(ctx context.Context, req models.CreateEventRequest) models.Event
}

// EventHandler serves the agenda.
type EventHandler struct {
	store     eventStore
	validator *validator.Validate
}

// NewEventHandler constructs the handler.
func NewEventHandler(store eventStore, validate *validator.Validate) *EventHandler {
	return &EventHandler{store: store, validator: validate}
}

// List handles GET /events.
func (h *EventHandler) List(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.store.ListEvents(c.Request.Context()))
}

// Upcoming handles GET /events/upcoming.
func (h *EventHandler) Upcoming(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.store.UpcomingEvents(c.Request.Context()))
}

// Create handles POST /events.
func (h *EventHandler) Create(c *gin.Context) {
	var req models.CreateEventRequest
	if err := bindJSON(c, h.validator, &req, "invalid event payload"); err != nil {
		response.Error(c, err)
		return
	}
	if req.StartTime.IsZero() {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "event start time is required"))
		return
	}
	response.Created(c, h.store.CreateEvent(c.Request.Context(), req))
}
