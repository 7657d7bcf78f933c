package repositories

import (
	"context"

	"pasar/internal/models"
)

// ProductRepository defines the interface for product data access.
// GetByID returns (nil, nil) when no product matches, so cart and order
// resolution can tolerate dangling references.
type ProductRepository interface {
	Create(ctx context.Context, product *models.Product) error
	GetByID(ctx context.Context, id string) (*models.Product, error)
	Find(ctx context.Context, filter models.ProductFilter) ([]models.Product, error)
	GetBySeller(ctx context.Context, sellerID string) ([]models.Product, error)
	Update(ctx context.Context, product *models.Product) error
	Delete(ctx context.Context, id string) error
}
