package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/unigov-client/internal/models"
	appErrors "github.com/noah-isme/unigov-client/pkg/errors"
	"github.com/noah-isme/unigov-client/pkg/response"
)

type announcementStore interface {
	ListAnnouncements(ctx context.Context) []models.Announcement
	CreateAnnouncement(ctx context.Context, a models.Announcement) models.Announcement
	FindUserByID(ctx context.Context, id int64) (*models.User, error)
}

// AnnouncementHandler serves the news feed.
type AnnouncementHandler struct {
	store     announcementStore
	uploads   uploadStorage
	validator *validator.Validate
	logger    *zap.Logger
}

// NewAnnouncementHandler constructs the handler.
func NewAnnouncementHandler(store announcementStore, uploads uploadStorage, validate *validator.Validate, logger *zap.Logger) *AnnouncementHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AnnouncementHandler{store: store, uploads: uploads, validator: validate, logger: logger}
}

// List handles GET /announcements.
func (h *AnnouncementHandler) List(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.store.ListAnnouncements(c.Request.Context()))
}

// Create handles the multipart POST /announcements.
func (h *AnnouncementHandler) Create(c *gin.Context) {
	form := models.AnnouncementForm{
		Title:            strings.TrimSpace(c.PostForm("title")),
		Content:          strings.TrimSpace(c.PostForm("content")),
		Urgent:           strings.EqualFold(c.PostForm("priority"), string(models.AnnouncementPriorityUrgent)),
		Audience:         c.DefaultPostForm("audience", models.AudienceAll),
		AllowComments:    formBool(c.PostForm("allowComments")),
		PushNotification: formBool(c.PostForm("pushNotification")),
	}
	var err error
	if form.Departments, err = formList(c.PostForm("departments")); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "departments must be a JSON array"))
		return
	}
	if form.Years, err = formList(c.PostForm("years")); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "years must be a JSON array"))
		return
	}
	if err := h.validator.Struct(form); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "title and content are required"))
		return
	}

	announcement := models.Announcement{
		Title:            form.Title,
		Content:          form.Content,
		Priority:         form.Priority(),
		Audience:         form.Audience,
		Departments:      form.Departments,
		Years:            form.Years,
		AllowComments:    form.AllowComments,
		PushNotification: form.PushNotification,
	}
	if author, err := h.store.FindUserByID(c.Request.Context(), claimsFromContext(c).UserID); err == nil {
		announcement.Author = author.FullName
	}

	if header, err := c.FormFile("file"); err == nil {
		name, err := saveUpload(h.uploads, header)
		if err != nil {
			response.Error(c, err)
			return
		}
		announcement.AttachmentPath = name
	} else if err != http.ErrMissingFile {
		h.logger.Warn("ignoring unreadable attachment", zap.Error(err))
	}

	response.Created(c, h.store.CreateAnnouncement(c.Request.Context(), announcement))
}

func formBool(raw string) bool {
	v, err := strconv.ParseBool(raw)
	return err == nil && v
}

func formList(raw string) ([]string, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	var out []string
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return nil, err
	}
	return out, nil
}
