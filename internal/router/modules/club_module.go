package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pulseboard/pulseboard-api/internal/container"
	handlers "github.com/pulseboard/pulseboard-api/internal/interface/http"
	"github.com/pulseboard/pulseboard-api/internal/interface/middleware"
	"github.com/pulseboard/pulseboard-api/pkg/helpers"
)

// ClubModule wires the club directory and follow routes.
// Public: GET /api/clubs, GET /api/clubs/search, GET /api/clubs/:clubId
// Protected: POST /api/clubs, POST /api/clubs/follow/:clubId
type ClubModule struct {
	Handler *handlers.ClubHandler
	JWT     *helpers.JWTManager
}

func NewClubModule(h *handlers.ClubHandler, jwt *helpers.JWTManager) *ClubModule {
	return &ClubModule{Handler: h, JWT: jwt}
}

func (m *ClubModule) Register(rg *gin.RouterGroup) {
	listLimiter := middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByIP(), middleware.AllowPrivateIP())

	rg.GET("/clubs", listLimiter, m.Handler.List)
	rg.GET("/clubs/search", listLimiter, m.Handler.Search)
	rg.GET("/clubs/:clubId", listLimiter, m.Handler.Get)

	auth := rg.Group("/")
	auth.Use(middleware.Auth(container.GetRedis(), m.JWT))
	auth.Use(middleware.RateLimit(container.GetRedis(), 60, time.Minute, middleware.KeyByUserID(), nil))
	{
		auth.POST("/clubs", m.Handler.Create)
		auth.POST("/clubs/follow/:clubId", m.Handler.ToggleFollow)
	}
}
