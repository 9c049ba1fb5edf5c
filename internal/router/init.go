package router

import (
	"github.com/passby/passby-backend/internal/application"
	"github.com/passby/passby-backend/internal/container"
	pginfra "github.com/passby/passby-backend/internal/infrastructure/postgres"
	handlers "github.com/passby/passby-backend/internal/interface/http"
	"github.com/passby/passby-backend/internal/interface/ws"
	"github.com/passby/passby-backend/internal/router/modules"
)

// InitModules constructs repositories, use-case services and handlers from
// the container singletons, and registers every feature module. Called once
// during startup.
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	logger := container.GetLogger()
	pool := container.GetPGPool()

	userRepo := pginfra.NewUserRepository(pool)
	infoRepo := pginfra.NewUserInfoRepository(pool)
	geoRepo := pginfra.NewGeoFenceRepository(pool)
	fitRepo := pginfra.NewFitnessRepository(pool)
	passedRepo := pginfra.NewPassedUserRepository(pool)

	userSvc := &application.UserService{
		Repo:            userRepo,
		InfoRepo:        infoRepo,
		JWT:             container.GetJWT(),
		Sessions:        container.GetSessions(),
		Logger:          logger,
		GCS:             container.GetGCS(),
		GCSBucket:       cfg.GCSBucket,
		ES:              container.GetES(),
		ESUsersIndex:    cfg.ESUsersIndex,
		Pub:             container.GetRabbitPub(),
		AppName:         cfg.AppName,
		MailSendEnabled: cfg.MailSendEnabled,
	}
	geoSvc := &application.GeoFenceService{Repo: geoRepo}
	fitSvc := &application.FitnessService{Repo: fitRepo}
	passedSvc := &application.PassedUserService{Repo: passedRepo, InfoRepo: infoRepo, Logger: logger}

	hub := ws.NewHub(passedSvc, logger, cfg.LiveProximityMeters, cfg.LivePairCooldown)

	r.Add(modules.NewUserModule(handlers.NewUserHandler(userSvc, logger)))
	r.Add(modules.NewGeoFenceModule(handlers.NewGeoFenceHandler(geoSvc, logger)))
	r.Add(modules.NewFitnessModule(handlers.NewFitnessHandler(fitSvc, logger)))
	r.Add(modules.NewPassedModule(handlers.NewPassedHandler(passedSvc, logger)))
	r.Add(modules.NewLiveModule(ws.NewHandler(hub, logger)))
	if cfg.DebugMetricsEnabled {
		r.Add(modules.NewDebugModule())
	}
}
