package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/NoroffFEU/online-shop/internal/domain/entity"
)

type MockCatalogReader struct {
	mock.Mock
}

func (m *MockCatalogReader) List(ctx context.Context) ([]entity.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Product), args.Error(1)
}

func (m *MockCatalogReader) Get(ctx context.Context, productID string) (*entity.Product, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Product), args.Error(1)
}

type MockProductDetailCache struct {
	mock.Mock
}

func (m *MockProductDetailCache) Get(ctx context.Context, productID string) (*entity.Product, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Product), args.Error(1)
}

func (m *MockProductDetailCache) Set(ctx context.Context, productID string, product *entity.Product, ttl time.Duration) error {
	args := m.Called(ctx, productID, product, ttl)
	return args.Error(0)
}

func (m *MockProductDetailCache) Delete(ctx context.Context, productID string) error {
	args := m.Called(ctx, productID)
	return args.Error(0)
}
