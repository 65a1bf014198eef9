package repository

import (
	"context"
	"time"

	"github.com/NoroffFEU/online-shop/internal/domain/entity"
)

// ProductDetailCache keeps recently seen products so a detail view does
// not re-fetch a product that was just listed. Get returns ErrNotFound
// on a miss or after the entry's TTL has elapsed.
type ProductDetailCache interface {
	Get(ctx context.Context, productID string) (*entity.Product, error)
	Set(ctx context.Context, productID string, product *entity.Product, ttl time.Duration) error
	Delete(ctx context.Context, productID string) error
}
