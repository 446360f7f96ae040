package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pulseboard/pulseboard-api/internal/container"
	handlers "github.com/pulseboard/pulseboard-api/internal/interface/http"
	"github.com/pulseboard/pulseboard-api/internal/interface/middleware"
	"github.com/pulseboard/pulseboard-api/pkg/helpers"
)

// EventModule wires event ingestion and the feed.
// Public (optionally personalized): GET /api/events/feed, GET /api/events/club/:clubId
// Protected: POST /api/events
type EventModule struct {
	Handler *handlers.EventHandler
	JWT     *helpers.JWTManager
}

func NewEventModule(h *handlers.EventHandler, jwt *helpers.JWTManager) *EventModule {
	return &EventModule{Handler: h, JWT: jwt}
}

func (m *EventModule) Register(rg *gin.RouterGroup) {
	feedLimiter := middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByIP(), middleware.AllowPrivateIP())
	optional := middleware.OptionalAuth(container.GetRedis(), m.JWT)

	rg.GET("/events/feed", feedLimiter, optional, m.Handler.Feed)
	rg.GET("/events/club/:clubId", feedLimiter, m.Handler.FeedByClub)

	auth := rg.Group("/")
	auth.Use(middleware.Auth(container.GetRedis(), m.JWT))
	auth.Use(middleware.RateLimit(container.GetRedis(), 60, time.Minute, middleware.KeyByUserID(), nil))
	{
		auth.POST("/events", m.Handler.Create)
	}
}
