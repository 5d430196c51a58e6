package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/unigov-client/internal/models"
	appErrors "github.com/noah-isme/unigov-client/pkg/errors"
	"github.com/noah-isme/unigov-client/pkg/response"
)

type userStore interface {
	FindUserByID(ctx context.Context, id int64) (*models.User, error)
	UpdateProfile(ctx context.Context, id int64, req models.UpdateProfileRequest) (*models.User, error)
	SetProfilePhoto(ctx context.Context, id int64, name string) (*models.User, string, error)
}

// UserHandler serves the signed-in user's profile.
type UserHandler struct {
	store     userStore
	uploads   uploadStorage
	validator *validator.Validate
	logger    *zap.Logger
}

// NewUserHandler constructs the handler.
func NewUserHandler(store userStore, uploads uploadStorage, validate *validator.Validate, logger *zap.Logger) *UserHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UserHandler{store: store, uploads: uploads, validator: validate, logger: logger}
}

// Me handles GET /users/me.
func (h *UserHandler) Me(c *gin.Context) {
	user, err := h.store.FindUserByID(c.Request.Context(), claimsFromContext(c).UserID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, user)
}

// UpdateProfile handles PUT /users/profile.
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	var req models.UpdateProfileRequest
	if err := bindJSON(c, h.validator, &req, "full name is required"); err != nil {
		response.Error(c, err)
		return
	}
	req.FullName = strings.TrimSpace(req.FullName)
	user, err := h.store.UpdateProfile(c.Request.Context(), claimsFromContext(c).UserID, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, user)
}

// UploadPhoto handles the multipart POST /users/photo.
func (h *UserHandler) UploadPhoto(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "file part is required"))
		return
	}
	name, err := saveUpload(h.uploads, header)
	if err != nil {
		response.Error(c, err)
		return
	}

	user, previous, err := h.store.SetProfilePhoto(c.Request.Context(), claimsFromContext(c).UserID, name)
	if err != nil {
		_ = h.uploads.Delete(name)
		response.Error(c, err)
		return
	}
	if previous != "" {
		if err := h.uploads.Delete(previous); err != nil {
			h.logger.Warn("failed to delete previous photo", zap.String("name", previous), zap.Error(err))
		}
	}
	response.JSON(c, http.StatusOK, user)
}
