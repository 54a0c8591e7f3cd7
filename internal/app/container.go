package app

import (
	"context"
	"log"
	"time"

	"workmatch/internal/config"
	"workmatch/internal/database"
	"workmatch/internal/database/migration"
	dbpostgres "workmatch/internal/database/postgres"
	"workmatch/internal/database/seeder"
	"workmatch/internal/delivery/http/handler"
	"workmatch/internal/delivery/http/middleware"
	v1 "workmatch/internal/delivery/http/routes/v1"
	"workmatch/internal/infrastructure/cache"
	"workmatch/internal/pkg/jwt"
	"workmatch/internal/posting"
	"workmatch/internal/repository"
	"workmatch/internal/usecase"
	"workmatch/internal/ws"
)

// Container owns every long-lived dependency and the wiring between
// them. Everything downstream receives interfaces, so tests swap parts
// without touching this file.
type Container struct {
	Config config.Config
	Logger *log.Logger

	DB    database.DB
	Cache *cache.Redis
	Hub   *ws.Hub

	AuthUC     usecase.AuthUsecase
	ProfileUC  usecase.ProfileUsecase
	SuggestUC  usecase.SuggestionUsecase
	DocumentUC usecase.DocumentUsecase
	PostingUC  usecase.PostingUsecase

	AuthMW *middleware.AuthMiddleware
}

func NewContainer(cfg config.Config, logger *log.Logger) (*Container, error) {
	if logger == nil {
		logger = log.Default()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	if err := (migration.Runner{}).Run(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	if cfg.Posting.SeedDemoAccount {
		run := seeder.Runner{Seeders: []seeder.Seeder{seeder.DemoAccountSeeder{}}}
		if err := run.Run(ctx, db); err != nil {
			_ = db.Close()
			return nil, err
		}
	}

	redisCache := cache.NewRedis(cfg.Redis, logger)
	hub := ws.NewHub(logger)

	jwtSvc := jwt.NewHMACService(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessExpiresIn,
		cfg.JWT.RefreshExpiresIn,
	)

	userRepo := repository.NewPostgresUserRepository(db)
	profileRepo := repository.NewPostgresProfileSkillRepository(db)
	documentRepo := repository.NewPostgresCVDocumentRepository(db)

	profileUC := usecase.NewProfileUsecase(profileRepo, redisCache)
	fetcher := posting.NewFetcher(logger, cfg.Posting.HeadlessEnabled)

	c := &Container{
		Config: cfg,
		Logger: logger,
		DB:     db,
		Cache:  redisCache,
		Hub:    hub,

		AuthUC:     usecase.NewAuthUsecase(userRepo, jwtSvc),
		ProfileUC:  profileUC,
		SuggestUC:  usecase.NewSuggestionUsecase(profileUC),
		DocumentUC: usecase.NewDocumentUsecase(documentRepo, redisCache, ws.NewNotifier(hub)),
		PostingUC:  usecase.NewPostingUsecase(fetcher),

		AuthMW: middleware.NewAuthMiddleware(jwtSvc),
	}
	return c, nil
}

func (c *Container) V1Deps() v1.Deps {
	return v1.Deps{
		AuthMW:    c.AuthMW,
		Auth:      handler.NewAuthHandler(c.AuthUC),
		Skills:    handler.NewSkillHandler(c.SuggestUC),
		Profile:   handler.NewProfileHandler(c.ProfileUC),
		Documents: handler.NewDocumentHandler(c.DocumentUC),
		Postings:  handler.NewPostingHandler(c.PostingUC),
	}
}

func (c *Container) Close() error {
	if c == nil || c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
