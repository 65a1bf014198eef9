package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/NoroffFEU/online-shop/internal/domain/entity"
	"github.com/NoroffFEU/online-shop/internal/repository"
)

func TestCatalogService_ListProducts_SeedsCache(t *testing.T) {
	mockCatalog := new(MockCatalogReader)
	mockCache := new(MockProductDetailCache)
	ctx := context.Background()

	products := []entity.Product{
		{ID: "p1", Title: "Desk Lamp"},
		{ID: "p2", Title: "Mug"},
	}
	mockCatalog.On("List", ctx).Return(products, nil)
	mockCache.On("Set", ctx, "p1", mock.AnythingOfType("*entity.Product"), 5*time.Minute).Return(nil)
	mockCache.On("Set", ctx, "p2", mock.AnythingOfType("*entity.Product"), 5*time.Minute).Return(nil)

	svc := NewCatalogService(mockCatalog, mockCache, nil, CatalogServiceConfig{CacheTTL: 5 * time.Minute})

	got, err := svc.ListProducts(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 2)

	mockCatalog.AssertExpectations(t)
	mockCache.AssertExpectations(t)
}

func TestCatalogService_ListProducts_FetchFailure(t *testing.T) {
	mockCatalog := new(MockCatalogReader)
	mockCache := new(MockProductDetailCache)
	ctx := context.Background()

	fetchErr := errors.New("HTTP 503")
	mockCatalog.On("List", ctx).Return(nil, fetchErr)

	svc := NewCatalogService(mockCatalog, mockCache, nil, CatalogServiceConfig{})

	_, err := svc.ListProducts(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, fetchErr)
	mockCache.AssertNotCalled(t, "Set")
}

func TestCatalogService_GetProduct_CacheHitSkipsCatalog(t *testing.T) {
	mockCatalog := new(MockCatalogReader)
	mockCache := new(MockProductDetailCache)
	ctx := context.Background()

	cached := &entity.Product{ID: "p1", Title: "Desk Lamp"}
	mockCache.On("Get", ctx, "p1").Return(cached, nil)

	svc := NewCatalogService(mockCatalog, mockCache, nil, CatalogServiceConfig{})

	got, err := svc.GetProduct(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "Desk Lamp", got.Title)
	mockCatalog.AssertNotCalled(t, "Get")
}

func TestCatalogService_GetProduct_CacheMissFetchesAndCaches(t *testing.T) {
	mockCatalog := new(MockCatalogReader)
	mockCache := new(MockProductDetailCache)
	ctx := context.Background()

	fetched := &entity.Product{ID: "p1", Title: "Desk Lamp"}
	mockCache.On("Get", ctx, "p1").Return(nil, repository.ErrNotFound)
	mockCatalog.On("Get", ctx, "p1").Return(fetched, nil)
	mockCache.On("Set", ctx, "p1", fetched, mock.AnythingOfType("time.Duration")).Return(nil)

	svc := NewCatalogService(mockCatalog, mockCache, nil, CatalogServiceConfig{})

	got, err := svc.GetProduct(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "p1", got.ID)

	mockCatalog.AssertExpectations(t)
	mockCache.AssertExpectations(t)
}

func TestCatalogService_GetProduct_NotFoundPropagates(t *testing.T) {
	mockCatalog := new(MockCatalogReader)
	mockCache := new(MockProductDetailCache)
	ctx := context.Background()

	mockCache.On("Get", ctx, "missing").Return(nil, repository.ErrNotFound)
	mockCatalog.On("Get", ctx, "missing").Return(nil, repository.ErrNotFound)

	svc := NewCatalogService(mockCatalog, mockCache, nil, CatalogServiceConfig{})

	_, err := svc.GetProduct(ctx, "missing")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
