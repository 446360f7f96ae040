package router

import (
	app "github.com/pulseboard/pulseboard-api/internal/application"
	"github.com/pulseboard/pulseboard-api/internal/container"
	pginfra "github.com/pulseboard/pulseboard-api/internal/infrastructure/postgres"
	handlers "github.com/pulseboard/pulseboard-api/internal/interface/http"
	"github.com/pulseboard/pulseboard-api/internal/router/modules"
)

// InitModules builds all feature modules from container singletons and
// registers them with the router registry. Called once during startup.
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	logger := container.GetLogger()
	pool := container.GetPGPool()

	userRepo := pginfra.NewUserRepository(pool)
	clubRepo := pginfra.NewClubRepository(pool)
	eventRepo := pginfra.NewEventRepository(pool)

	userSvc := app.NewUserService(
		userRepo,
		container.GetJWT(),
		container.GetGCS(),
		cfg.GCSBucket,
		container.GetRedis(),
		logger,
		container.GetRabbitPub(),
		cfg.MailSendEnabled,
	)
	clubSvc := app.NewClubService(
		clubRepo,
		userRepo,
		container.GetRedis(),
		logger,
		container.GetES(),
		cfg.ESClubsIndex,
	)
	eventSvc := app.NewEventService(eventRepo, logger)

	authHandler := handlers.NewAuthHandler(userSvc, logger, cfg.CookieDomain, cfg.CookieSecure)
	userHandler := handlers.NewUserHandler(userSvc, logger)
	clubHandler := handlers.NewClubHandler(clubSvc, logger)
	eventHandler := handlers.NewEventHandler(eventSvc, userRepo, logger)

	jwt := container.GetJWT()
	r.Add(modules.NewAuthModule(authHandler, jwt))
	r.Add(modules.NewUserModule(userHandler, jwt))
	r.Add(modules.NewClubModule(clubHandler, jwt))
	r.Add(modules.NewEventModule(eventHandler, jwt))
}
