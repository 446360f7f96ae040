package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pulseboard/pulseboard-api/internal/container"
	handlers "github.com/pulseboard/pulseboard-api/internal/interface/http"
	"github.com/pulseboard/pulseboard-api/internal/interface/middleware"
	"github.com/pulseboard/pulseboard-api/pkg/helpers"
)

// UserModule wires the authenticated profile routes.
// Protected: GET /api/users/me, PUT /api/users/me, POST /api/users/me/avatar
type UserModule struct {
	Handler *handlers.UserHandler
	JWT     *helpers.JWTManager
}

func NewUserModule(h *handlers.UserHandler, jwt *helpers.JWTManager) *UserModule {
	return &UserModule{Handler: h, JWT: jwt}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/")
	auth.Use(middleware.Auth(container.GetRedis(), m.JWT))
	auth.Use(
		middleware.RateLimit(container.GetRedis(), 300, time.Minute, middleware.KeyByIP(), nil),
		middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), nil),
	)
	{
		auth.GET("/users/me", m.Handler.Me)
		auth.PUT("/users/me", m.Handler.UpdateMe)
		auth.POST("/users/me/avatar", m.Handler.UploadAvatar)
	}
}
