package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/noah-isme/unigov-client/internal/models"
	"github.com/noah-isme/unigov-client/pkg/response"
)

type decisionStore interface {
	ListDecisions(ctx context.Context) []models.Decision
	FindDecision(ctx context.Context, id int64) (*models.Decision, error)
	CreateDecision(ctx context.Context, req models.DecisionRequest) models.Decision
	UpdateDecision(ctx context.Context, id int64, req models.DecisionRequest) (*models.Decision, error)
	DeleteDecision(ctx context.Context, id int64) error
}

// DecisionHandler serves council decisions.
type DecisionHandler struct {
	store     decisionStore
	validator *validator.Validate
}

// NewDecisionHandler constructs the handler.
func NewDecisionHandler(store decisionStore, validate *validator.Validate) *DecisionHandler {
	return &DecisionHandler{store: store, validator: validate}
}

// List handles GET /decisions.
func (h *DecisionHandler) List(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.store.ListDecisions(c.Request.Context()))
}

// Get handles GET /decisions/:id.
func (h *DecisionHandler) Get(c *gin.Context) {
	id, err := int64Param(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	decision, err := h.store.FindDecision(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, decision)
}

// Create handles POST /decisions.
func (h *DecisionHandler) Create(c *gin.Context) {
	var req models.DecisionRequest
	if err := bindJSON(c, h.validator, &req, "title and content are required"); err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, h.store.CreateDecision(c.Request.Context(), req))
}

// Update handles PUT /decisions/:id.
func (h *DecisionHandler) Update(c *gin.Context) {
	id, err := int64Param(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	var req models.DecisionRequest
	if err := bindJSON(c, h.validator, &req, "title and content are required"); err != nil {
		response.Error(c, err)
		return
	}
	decision, err := h.store.UpdateDecision(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, decision)
}

// Delete handles DELETE /decisions/:id.
func (h *DecisionHandler) Delete(c *gin.Context) {
	id, err := int64Param(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	if err := h.store.DeleteDecision(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
