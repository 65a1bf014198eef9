package repository

import (
	"context"

	"github.com/NoroffFEU/online-shop/internal/domain/entity"
)

// CatalogReader is the port to the remote product catalog.
type CatalogReader interface {
	List(ctx context.Context) ([]entity.Product, error)
	Get(ctx context.Context, productID string) (*entity.Product, error)
}
