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

type complaintStore interface {
	ListComplaints(ctx context.Context) []models.Complaint
	ListComplaintsByOwner(ctx context.Context, ownerID int64) []models.Complaint
	FindComplaint(ctx context.Context, id string) (*models.Complaint, int64, error)
	CreateComplaint(ctx context.Context, ownerID int64, req models.CreateComplaintRequest) (*models.Complaint, error)
	UpdateComplaintStatus(ctx context.Context, id string, req models.UpdateComplaintStatusRequest) (*models.Complaint, error)
	DeleteComplaint(ctx context.Context, id string) error
}

// ComplaintHandler serves student complaints. Students only see their own.
type ComplaintHandler struct {
	store     complaintStore
	validator *validator.Validate
}

// NewComplaintHandler constructs the handler.
func NewComplaintHandler(store complaintStore, validate *validator.Validate) *ComplaintHandler {
	return &ComplaintHandler{store: store, validator: validate}
}

// List handles GET /complaints. Students get their own complaints.
func (h *ComplaintHandler) List(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims.Role == models.RoleStudent {
		response.JSON(c, http.StatusOK, h.store.ListComplaintsByOwner(c.Request.Context(), claims.UserID))
		return
	}
	response.JSON(c, http.StatusOK, h.store.ListComplaints(c.Request.Context()))
}

// Mine handles GET /complaints/my.
func (h *ComplaintHandler) Mine(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.store.ListComplaintsByOwner(c.Request.Context(), claimsFromContext(c).UserID))
}

// Get handles GET /complaints/:id.
func (h *ComplaintHandler) Get(c *gin.Context) {
	complaint, ownerID, err := h.store.FindComplaint(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	if !canSeeComplaint(claimsFromContext(c), ownerID) {
		response.Error(c, appErrors.ErrForbidden)
		return
	}
	response.JSON(c, http.StatusOK, complaint)
}

// Create handles POST /complaints.
func (h *ComplaintHandler) Create(c *gin.Context) {
	var req models.CreateComplaintRequest
	if err := bindJSON(c, h.validator, &req, "title, description and category are required"); err != nil {
		response.Error(c, err)
		return
	}
	complaint, err := h.store.CreateComplaint(c.Request.Context(), claimsFromContext(c).UserID, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, complaint)
}

// UpdateStatus handles PUT /complaints/:id/status.
func (h *ComplaintHandler) UpdateStatus(c *gin.Context) {
	var req models.UpdateComplaintStatusRequest
	if err := bindJSON(c, h.validator, &req, "invalid complaint status"); err != nil {
		response.Error(c, err)
		return
	}
	complaint, err := h.store.UpdateComplaintStatus(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, complaint)
}

// Delete handles DELETE /complaints/:id. Owners and administrators may delete.
func (h *ComplaintHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	_, ownerID, err := h.store.FindComplaint(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	claims := claimsFromContext(c)
	if claims.UserID != ownerID && claims.Role != models.RoleAdmin {
		response.Error(c, appErrors.ErrForbidden)
		return
	}
	if err := h.store.DeleteComplaint(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

func canSeeComplaint(claims *models.JWTClaims, ownerID int64) bool {
	return claims.Role != models.RoleStudent || claims.UserID == ownerID
}
