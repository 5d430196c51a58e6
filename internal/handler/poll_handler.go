package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/noah-isme/unigov-client/internal/models"
	"github.com/noah-isme/unigov-client/pkg/response"
)

type pollStore interface {
	ListPolls(ctx context.Context) []models.Poll
	CreatePoll(ctx context.Context, req models.CreatePollRequest) models.Poll
	Vote(ctx context.Context, optionID, voterID int64) (*models.Poll, error)
}

// PollHandler serves consultations.
type PollHandler struct {
	store     pollStore
	validator *validator.Validate
}

// NewPollHandler constructs the handler.
func NewPollHandler(store pollStore, validate *validator.Validate) *PollHandler {
	return &PollHandler{store: store, validator: validate}
}

// List handles GET /polls.
func (h *PollHandler) List(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.store.ListPolls(c.Request.Context()))
}

// Create handles POST /polls.
func (h *PollHandler) Create(c *gin.Context) {
	var req models.CreatePollRequest
	if err := bindJSON(c, h.validator, &req, "a question and at least two options are required"); err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, h.store.CreatePoll(c.Request.Context(), req))
}

// Vote handles POST /polls/:optionId/vote.
func (h *PollHandler) Vote(c *gin.Context) {
	optionID, err := int64Param(c, "optionId")
	if err != nil {
		response.Error(c, err)
		return
	}
	poll, err := h.store.Vote(c.Request.Context(), optionID, claimsFromContext(c).UserID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, poll)
}
