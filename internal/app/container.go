package app

import (
	"context"
	"log"
	"time"

	"jobpilot/internal/ai"
	"jobpilot/internal/config"
	"jobpilot/internal/database"
	"jobpilot/internal/database/migration"
	dbpostgres "jobpilot/internal/database/postgres"
	"jobpilot/internal/delivery/http/handler"
	"jobpilot/internal/delivery/http/middleware"
	"jobpilot/internal/delivery/http/routes"
	"jobpilot/internal/infrastructure/cache"
	"jobpilot/internal/infrastructure/ingest"
	"jobpilot/internal/pkg/jwt"
	"jobpilot/internal/realtime"
	"jobpilot/internal/repository"
	"jobpilot/internal/store"
	"jobpilot/internal/usecase"
	"jobpilot/internal/ws"
)

// Container owns the full object graph: storage, cache, realtime feed, the
// state container, and the HTTP surface.
type Container struct {
	Config   config.Config
	Logger   *log.Logger
	DB       database.DB
	Cache    *cache.Redis
	Hub      *ws.Hub
	Store    *store.Store
	Registry *routes.Registry

	gemini *ai.GeminiClient
}

// feedAdapter narrows the listener's concrete subscription to the store's
// interface.
type feedAdapter struct {
	listener *realtime.Listener
}

func (f feedAdapter) Subscribe(ctx context.Context) (store.Subscription, error) {
	sub, err := f.listener.Subscribe(ctx)
	if err != nil {
		return nil, err
	}
	return sub, nil
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

	redisCache := cache.NewRedis(cfg.Redis, logger)

	jobRepo := repository.NewPostgresJobRepository(db)
	profileRepo := repository.NewPostgresProfileRepository(db)
	searchRepo := repository.NewPostgresSearchRepository(db)
	userRepo := repository.NewPostgresUserRepository(db)

	listener := realtime.NewListener(db, jobRepo, logger)
	triggerClient := ingest.NewClient(cfg.Ingest.BaseURL, cfg.Ingest.Token, logger)

	hub := ws.NewHub(logger)
	notifier := ws.NewNotifier(hub, logger)

	st := store.New(store.Options{
		Jobs:       jobRepo,
		Profiles:   profileRepo,
		Searches:   searchRepo,
		Feed:       feedAdapter{listener: listener},
		Trigger:    triggerClient,
		Lock:       redisCache,
		Events:     notifier,
		Logger:     logger,
		SearchWait: cfg.Ingest.SearchWait,
	})

	var gemini *ai.GeminiClient
	var generator ai.Generator
	if cfg.Gemini.APIKey != "" {
		gemini, err = ai.NewGeminiClient(context.Background(), cfg.Gemini.APIKey, cfg.Gemini.Model)
		if err != nil {
			logger.Printf("[App] Gemini client unavailable, AI drafting disabled | error=%v", err)
		} else {
			generator = gemini
		}
	} else {
		logger.Printf("[App] GEMINI_API_KEY not set, AI drafting disabled")
	}
	aiSvc := ai.NewService(generator, redisCache, logger)

	jwtSvc := jwt.NewHMACService(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessExpiresIn,
		cfg.JWT.RefreshExpiresIn,
	)
	authUC := usecase.NewAuthUsecase(userRepo, jwtSvc)

	registry := &routes.Registry{
		Health:        handler.NewHealthHandler(db, redisCache),
		Auth:          handler.NewAuthHandler(authUC),
		State:         handler.NewStateHandler(st),
		Jobs:          handler.NewJobsHandler(st),
		Profiles:      handler.NewProfilesHandler(st),
		Searches:      handler.NewSearchesHandler(st),
		Modal:         handler.NewModalHandler(st),
		Notifications: handler.NewNotificationsHandler(st),
		AI:            handler.NewAIHandler(aiSvc),
		WS:            ws.NewHandler(hub, logger),
		AuthMW:        middleware.NewAuthMiddleware(jwtSvc),
	}

	return &Container{
		Config:   cfg,
		Logger:   logger,
		DB:       db,
		Cache:    redisCache,
		Hub:      hub,
		Store:    st,
		Registry: registry,
		gemini:   gemini,
	}, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	c.Store.UnsubscribeFromJobs()
	if c.gemini != nil {
		_ = c.gemini.Close()
	}
	if c.DB != nil {
		return c.DB.Close()
	}
	return nil
}
