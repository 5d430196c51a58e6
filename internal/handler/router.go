package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/noah-isme/unigov-client/api/swagger"
	"github.com/noah-isme/unigov-client/internal/middleware"
	"github.com/noah-isme/unigov-client/internal/models"
	"github.com/noah-isme/unigov-client/internal/repository"
	"github.com/noah-isme/unigov-client/internal/service"
	appErrors "github.com/noah-isme/unigov-client/pkg/errors"
	"github.com/noah-isme/unigov-client/pkg/logger"
	corsmiddleware "github.com/noah-isme/unigov-client/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/unigov-client/pkg/middleware/requestid"
	"github.com/noah-isme/unigov-client/pkg/response"
	"github.com/noah-isme/unigov-client/pkg/storage"
)

// RouterConfig gathers the mock backend's dependencies. Store, Uploads and
// Tokens are required.
type RouterConfig struct {
	Store          *repository.Store
	Uploads        *storage.LocalStorage
	Tokens         *service.TokenService
	Metrics        *service.MetricsService
	Logger         *zap.Logger
	APIPrefix      string
	Delay          time.Duration
	AllowedOrigins []string
}

// NewRouter builds the gin engine serving the UniGov resource paths.
func NewRouter(cfg RouterConfig) *gin.Engine {
	logr := cfg.Logger
	if logr == nil {
		logr = zap.NewNop()
	}
	prefix := cfg.APIPrefix
	if prefix == "" {
		prefix = "/api"
	}
	validate := validator.New()

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.AllowedOrigins))
	r.Use(middleware.Metrics(cfg.Metrics, "/metrics", "/swagger/*any"))

	metricsHandler := NewMetricsHandler(cfg.Metrics)
	r.GET("/health", metricsHandler.Health)
	r.GET("/metrics", metricsHandler.Prometheus)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.StaticFS("/uploads", http.Dir(cfg.Uploads.Dir()))
	r.NoRoute(func(c *gin.Context) {
		response.Error(c, appErrors.Clone(appErrors.ErrNotFound, "no route for "+c.Request.Method+" "+c.Request.URL.Path))
	})

	authHandler := NewAuthHandler(cfg.Store, cfg.Tokens, validate, logr)
	userHandler := NewUserHandler(cfg.Store, cfg.Uploads, validate, logr)
	messageHandler := NewMessageHandler(cfg.Store, validate)
	eventHandler := NewEventHandler(cfg.Store, validate)
	decisionHandler := NewDecisionHandler(cfg.Store, validate)
	announcementHandler := NewAnnouncementHandler(cfg.Store, cfg.Uploads, validate, logr)
	complaintHandler := NewComplaintHandler(cfg.Store, validate)
	pollHandler := NewPollHandler(cfg.Store, validate)

	api := r.Group(prefix, middleware.Delay(cfg.Delay))
	api.POST("/auth/signin", authHandler.Login)

	secured := api.Group("", middleware.JWT(cfg.Tokens))
	editors := middleware.RequireRoles(models.RoleAdmin, models.RoleDelegate)
	admins := middleware.RequireRoles(models.RoleAdmin)

	users := secured.Group("/users")
	users.GET("/me", userHandler.Me)
	users.PUT("/profile", userHandler.UpdateProfile)
	users.POST("/photo", userHandler.UploadPhoto)

	messages := secured.Group("/messages")
	messages.GET("/conversations", messageHandler.Conversations)
	messages.GET("/conversation/:userId", messageHandler.Conversation)
	messages.PUT("/conversation/:userId/read", messageHandler.MarkRead)
	messages.GET("/unread-count", messageHandler.UnreadCount)
	messages.POST("", messageHandler.Send)
	messages.DELETE("/:id", messageHandler.Delete)

	events := secured.Group("/events")
	events.GET("", eventHandler.List)
	events.GET("/upcoming", eventHandler.Upcoming)
	events.POST("", editors, eventHandler.Create)

	decisions := secured.Group("/decisions")
	decisions.GET("", decisionHandler.List)
	decisions.GET("/:id", decisionHandler.Get)
	decisions.POST("", editors, decisionHandler.Create)
	decisions.PUT("/:id", editors, decisionHandler.Update)
	decisions.DELETE("/:id", editors, decisionHandler.Delete)

	announcements := secured.Group("/announcements")
	announcements.GET("", announcementHandler.List)
	announcements.POST("", editors, announcementHandler.Create)

	complaints := secured.Group("/complaints")
	complaints.GET("", complaintHandler.List)
	complaints.GET("/my", complaintHandler.Mine)
	complaints.GET("/:id", complaintHandler.Get)
	complaints.POST("", complaintHandler.Create)
	complaints.PUT("/:id/status", admins, complaintHandler.UpdateStatus)
	complaints.DELETE("/:id", complaintHandler.Delete)

	polls := secured.Group("/polls")
	polls.GET("", pollHandler.List)
	polls.POST("", editors, pollHandler.Create)
	polls.POST("/:optionId/vote", pollHandler.Vote)

	return r
}
