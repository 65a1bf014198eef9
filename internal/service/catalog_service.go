package service

import (
	"context"
	"fmt"
	"time"

	"github.com/NoroffFEU/online-shop/internal/domain/entity"
	"github.com/NoroffFEU/online-shop/internal/platform/logger"
	"github.com/NoroffFEU/online-shop/internal/repository"
)

const defaultProductCacheTTL = 5 * time.Minute

// CatalogService reads products from the remote catalog, keeping
// recently seen products in the detail cache so opening a product that
// was just listed costs nothing.
type CatalogService interface {
	ListProducts(ctx context.Context) ([]entity.Product, error)
	GetProduct(ctx context.Context, productID string) (*entity.Product, error)
}

type catalogService struct {
	catalog  repository.CatalogReader
	cache    repository.ProductDetailCache
	log      logger.Logger
	cacheTTL time.Duration
}

type CatalogServiceConfig struct {
	CacheTTL time.Duration
}

func NewCatalogService(
	catalog repository.CatalogReader,
	cache repository.ProductDetailCache,
	log logger.Logger,
	cfg CatalogServiceConfig,
) CatalogService {
	cacheTTL := cfg.CacheTTL
	if cacheTTL <= 0 {
		cacheTTL = defaultProductCacheTTL
	}
	if log == nil {
		log = logger.NoOp()
	}
	return &catalogService{
		catalog:  catalog,
		cache:    cache,
		log:      log,
		cacheTTL: cacheTTL,
	}
}

// ListProducts fetches the full catalog and seeds the detail cache
// with every product in it.
func (s *catalogService) ListProducts(ctx context.Context) ([]entity.Product, error) {
	products, err := s.catalog.List(ctx)
	if err != nil {
		s.log.Errorf("failed to list products: %v", err)
		return nil, fmt.Errorf("could not load product list: %w", err)
	}

	for i := range products {
		if errSet := s.cache.Set(ctx, products[i].ID, &products[i], s.cacheTTL); errSet != nil {
			s.log.Warnf("failed to cache product %s: %v", products[i].ID, errSet)
		}
	}
	s.log.Infof("loaded %d products from catalog", len(products))
	return products, nil
}

// GetProduct returns one product, preferring the detail cache and
// falling back to the remote catalog.
func (s *catalogService) GetProduct(ctx context.Context, productID string) (*entity.Product, error) {
	cached, cacheErr := s.cache.Get(ctx, productID)
	if cacheErr == nil && cached != nil {
		s.log.Debugf("product %s served from cache", productID)
		return cached, nil
	}
	if cacheErr != nil && cacheErr != repository.ErrNotFound {
		s.log.Warnf("cache error for product %s: %v", productID, cacheErr)
	}

	product, err := s.catalog.Get(ctx, productID)
	if err != nil {
		s.log.Errorf("failed to get product %s: %v", productID, err)
		return nil, fmt.Errorf("could not load product %s: %w", productID, err)
	}

	if errSet := s.cache.Set(ctx, productID, product, s.cacheTTL); errSet != nil {
		s.log.Warnf("failed to cache product %s: %v", productID, errSet)
	}
	return product, nil
}
