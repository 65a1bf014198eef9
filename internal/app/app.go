package app

import (
	"context"
	"fmt"

	"github.com/NoroffFEU/online-shop/internal/adapter/catalog"
	"github.com/NoroffFEU/online-shop/internal/adapter/memcache"
	"github.com/NoroffFEU/online-shop/internal/app/config"
	"github.com/NoroffFEU/online-shop/internal/platform/logger"
	"github.com/NoroffFEU/online-shop/internal/query"
	"github.com/NoroffFEU/online-shop/internal/service"
)

// App wires one storefront session: catalog client, product cache,
// cart, forms and the no-matches notifier. Everything is passed down
// explicitly; the session's state dies with Close.
type App struct {
	cfg      *config.Config
	log      logger.Logger
	cache    *memcache.ProductCache
	notifier *service.NoMatchesNotifier

	Catalog  service.CatalogService
	Listing  service.ListingService
	Cart     service.CartService
	Checkout service.CheckoutService
	Contact  service.ContactService
}

// New builds the session. notify receives "no matches" search terms
// once the debounce delay elapses; nil falls back to a log line.
func New(cfg *config.Config, notify service.NotifyFunc) (*App, error) {
	if cfg == nil {
		return nil, fmt.Errorf("app: nil config")
	}

	appLogger, err := logger.NewZapLogger(logger.ZapLoggerConfig{
		Level:      cfg.Logger.Level,
		Encoding:   cfg.Logger.Encoding,
		TimeFormat: cfg.Logger.TimeFormat,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	appLogger.Infof("configuration loaded: env=%s, catalog=%s", cfg.Env, cfg.Catalog.BaseURL)

	if notify == nil {
		notify = func(term string) {
			appLogger.Warnf("No matches for %q", term)
		}
	}

	catalogClient := catalog.NewClient(cfg.Catalog.BaseURL, cfg.Catalog.HTTPTimeout, appLogger)
	productCache := memcache.NewProductCache()
	notifier := service.NewNoMatchesNotifier(cfg.Listing.SearchDebounce, notify)

	catalogSvc := service.NewCatalogService(catalogClient, productCache, appLogger, service.CatalogServiceConfig{
		CacheTTL: cfg.ProductCache.TTL,
	})
	listingSvc := service.NewListingService(catalogSvc, notifier, query.Options{
		PageSize:        cfg.Listing.PageSize,
		SuggestionLimit: cfg.Listing.SuggestionLimit,
	}, appLogger)
	cartSvc := service.NewCartService(appLogger)
	checkoutSvc := service.NewCheckoutService(cartSvc, appLogger, service.CheckoutServiceConfig{
		SubmitDelay: cfg.Checkout.SubmitDelay,
	})
	contactSvc := service.NewContactService(appLogger, service.ContactServiceConfig{
		SubmitDelay: cfg.Checkout.SubmitDelay,
	})

	return &App{
		cfg:      cfg,
		log:      appLogger,
		cache:    productCache,
		notifier: notifier,
		Catalog:  catalogSvc,
		Listing:  listingSvc,
		Cart:     cartSvc,
		Checkout: checkoutSvc,
		Contact:  contactSvc,
	}, nil
}

// Logger exposes the session logger for callers that want to share it.
func (a *App) Logger() logger.Logger {
	return a.log
}

// Close tears the session down: pending notifications are cancelled
// and the cache sweep stops. The cart is in-memory only, so nothing
// needs flushing.
func (a *App) Close(_ context.Context) error {
	a.notifier.Stop()
	if err := a.cache.Close(); err != nil {
		return fmt.Errorf("closing product cache: %w", err)
	}
	a.log.Info("session closed")
	return nil
}
