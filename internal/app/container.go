package app

import (
	"context"
	"time"

	"skillmatch/internal/config"
	"skillmatch/internal/database"
	dbpostgres "skillmatch/internal/database/postgres"
	"skillmatch/internal/infrastructure/cache"
	"skillmatch/internal/repository"
	"skillmatch/internal/source"
	"skillmatch/internal/usecase"
	"skillmatch/internal/ws"

	"go.uber.org/zap"
)

// Container owns the process-wide collaborators: the storage client and
// cache are constructed once here and passed down, never reached for as
// ambient globals.
type Container struct {
	Config config.Config
	Logger *zap.Logger
	DB     database.DB
	Cache  *cache.Redis
	Hub    *ws.Hub

	Catalog        usecase.CatalogUsecase
	Matching       usecase.MatchingUsecase
	Recommendation usecase.RecommendationUsecase
	MatchStore     usecase.MatchStoreUsecase
}

func NewContainer(cfg config.Config, logger *zap.Logger) (*Container, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	redisCache := cache.NewRedis(cfg.Redis, logger)

	hub := ws.NewHub(logger)
	go hub.Run()

	sources := make([]source.JobSource, 0, len(cfg.Sources.BaseURLs))
	for _, u := range cfg.Sources.BaseURLs {
		sources = append(sources, source.NewHTTPSource(u, logger))
	}

	matches := repository.NewPostgresMatchRepository(db)
	targets := repository.NewPostgresTargetRepository(db)
	assocs := repository.NewPostgresAssociationRepository(db)

	c := &Container{
		Config: cfg,
		Logger: logger,
		DB:     db,
		Cache:  redisCache,
		Hub:    hub,

		Catalog:        usecase.NewCatalogUsecase(db, logger),
		Matching:       usecase.NewMatchingUsecase(),
		Recommendation: usecase.NewRecommendationUsecase(sources, source.NewFallbackGenerator(), redisCache, logger),
		MatchStore:     usecase.NewMatchStoreUsecase(matches, targets, assocs, hub, logger),
	}
	return c, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.Cache != nil {
		_ = c.Cache.Close()
	}
	if c.DB != nil {
		return c.DB.Close()
	}
	return nil
}
