package main

import (
	"go.uber.org/zap"

	"stockroom/internal/domain/inventory"
	"stockroom/internal/domain/profile"
	"stockroom/internal/domain/sales"
	"stockroom/internal/identity"
	"stockroom/internal/infrastructure/cache"
	"stockroom/internal/infrastructure/hosted"
	"stockroom/internal/infrastructure/postgres"
	httphandlers "stockroom/internal/interfaces/http"
	"stockroom/internal/rowstore"
	"stockroom/internal/shared/config"
)

// Dependencies holds all initialized application components.
type Dependencies struct {
	DB       *postgres.DB // nil when the hosted row store is in use
	Identity *identity.Client

	InventoryHandler *httphandlers.InventoryHandler
	SalesHandler     *httphandlers.SalesHandler
	ProfileHandler   *httphandlers.ProfileHandler
	SessionHandler   *httphandlers.SessionHandler
	PageHandler      *httphandlers.PageHandler
}

// NewDependencies wires the repository stack selected by STORE_BACKEND and
// builds the handlers on top of it.
func NewDependencies(cfg *config.Config, logger *zap.Logger) (*Dependencies, error) {
	idClient := identity.NewClient(cfg.Backend.URL, cfg.Backend.APIKey)

	var (
		db          *postgres.DB
		invRepo     inventory.Repository
		salesRepo   sales.Repository
		profileRepo profile.Repository
	)

	switch cfg.Store.Backend {
	case config.StoreBackendPostgres:
		var err error
		db, err = postgres.New(cfg.Database.ConnectionString())
		if err != nil {
			return nil, err
		}
		logger.Info("connected to postgres", zap.String("host", cfg.Database.Host))

		invRepo = postgres.NewInventoryRepository(db)
		salesRepo = postgres.NewSalesRepository(db)
		profileRepo = postgres.NewProfileRepository(db)
	default:
		store := rowstore.NewClient(cfg.Backend.URL, cfg.Backend.APIKey)
		logger.Info("using hosted row store", zap.String("url", cfg.Backend.URL))

		invRepo = hosted.NewInventoryRepository(store)
		salesRepo = hosted.NewSalesRepository(store)
		profileRepo = hosted.NewProfileRepository(store)
	}

	var c cache.Cache
	if cfg.Cache.Enabled {
		c = cache.New(cfg.Cache, logger)
	} else {
		c = cache.NewMemory()
	}

	invService := inventory.NewService(invRepo)
	profileService := profile.NewService(profileRepo)

	return &Dependencies{
		DB:               db,
		Identity:         idClient,
		InventoryHandler: httphandlers.NewInventoryHandler(invService, salesRepo, c, cfg.Cache.TTL, logger),
		SalesHandler:     httphandlers.NewSalesHandler(salesRepo, logger),
		ProfileHandler:   httphandlers.NewProfileHandler(profileService, logger),
		SessionHandler:   httphandlers.NewSessionHandler(idClient, logger),
		PageHandler:      httphandlers.NewPageHandler(idClient),
	}, nil
}

// Close releases all resources held by dependencies.
func (d *Dependencies) Close() {
	if d.DB != nil {
		d.DB.Close()
	}
}
