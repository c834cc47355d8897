package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/redis/go-redis/v9"

	"product-helium-addon/addon"
	"product-helium-addon/app/controller"
	"product-helium-addon/app/router"
	"product-helium-addon/config"
	"product-helium-addon/db"
	"product-helium-addon/repository"
	"product-helium-addon/service"
	"product-helium-addon/templates"
)

// App holds the initialized HTTP handler and the connections to release on shutdown
type App struct {
	Handler http.Handler
	Redis   *redis.Client
}

// InitStorage opens the database connection and applies the schema
func InitStorage(ctx context.Context, cfg *config.AppConfig) error {
	if err := db.InitDB(ctx, cfg.DB); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	if err := db.EnsureSchema(ctx, db.DB); err != nil {
		return err
	}
	return nil
}

// Initialize initializes the application
func Initialize(ctx context.Context, cfg *config.AppConfig) (*App, error) {
	if err := InitStorage(ctx, cfg); err != nil {
		return nil, err
	}

	// Initialize Redis for cart sessions
	redisClient, err := cfg.Redis.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize redis: %w", err)
	}

	converter, err := addon.NewConverter(cfg.Shop.BaseCurrency, cfg.Shop.CurrencyRates)
	if err != nil {
		redisClient.Close()
		return nil, fmt.Errorf("invalid SHOP_CURRENCY_RATES: %w", err)
	}

	renderer, err := templates.NewRenderer()
	if err != nil {
		redisClient.Close()
		return nil, err
	}

	// Initialize repositories
	settingsRepo := repository.NewSettingsRepository(db.DB, cfg.Shop.SiteID)
	metaRepo := repository.NewProductMetaRepository(db.DB)
	productRepo := repository.NewProductRepository(db.DB)
	orderRepo := repository.NewOrderRepository(db.DB)
	sessionRepo := repository.NewCartSessionRepository(redisClient, cfg.Shop.CartTTL)

	// Initialize services
	factory := service.NewAddonFactory(service.AddonFactoryDeps{
		Settings:      settingsRepo,
		Meta:          metaRepo,
		Products:      productRepo,
		Orders:        orderRepo,
		Converter:     converter,
		Renderer:      renderer,
		BaseCurrency:  cfg.Shop.BaseCurrency,
		DefaultLocale: cfg.Shop.DefaultLocale,
	})

	// Create controllers
	controllers := &router.Controllers{
		Catalog:  controller.NewCatalogController(service.NewCatalogService(factory, productRepo)),
		Cart:     controller.NewCartController(service.NewCartService(factory, sessionRepo, productRepo, orderRepo)),
		Settings: controller.NewSettingsController(service.NewSettingsService(factory, settingsRepo, metaRepo, productRepo)),
	}

	return &App{
		Handler: router.SetupRoutes(controllers),
		Redis:   redisClient,
	}, nil
}
