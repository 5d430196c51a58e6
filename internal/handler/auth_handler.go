package handler

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/unigov-client/internal/models"
	appErrors "github.com/noah-isme/unigov-client/pkg/errors"
	"github.com/noah-isme/unigov-client/pkg/response"
)

type authStore interface {
	Authenticate(ctx context.Context, username, password string) (*models.User, error)
}

type tokenIssuer interface {
	Issue(user *models.User) (string, time.Time, error)
}

// AuthHandler signs users in.
type AuthHandler struct {
	store     authStore
	tokens    tokenIssuer
	validator *validator.Validate
	logger    *zap.Logger
}

// NewAuthHandler creates a new handler.
func NewAuthHandler(store authStore, tokens tokenIssuer, validate *validator.Validate, logger *zap.Logger) *AuthHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthHandler{store: store, tokens: tokens, validator: validate, logger: logger}
}

// Login handles POST /auth/signin and answers with the session record.
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := bindJSON(c, h.validator, &req, "invalid login payload"); err != nil {
		response.Error(c, err)
		return
	}

	user, err := h.store.Authenticate(c.Request.Context(), strings.TrimSpace(req.Username), req.Password)
	if err != nil {
		h.logger.Info("login rejected", zap.String("username", req.Username))
		response.Error(c, err)
		return
	}

	token, _, err := h.tokens.Issue(user)
	if err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to issue token"))
		return
	}

	response.JSON(c, http.StatusOK, models.Session{
		ID:           user.ID,
		FullName:     user.FullName,
		Username:     user.Username,
		Email:        user.Email,
		Role:         user.Role,
		ProfilePhoto: user.ProfilePhoto,
		Token:        token,
	})
}
