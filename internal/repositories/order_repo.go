package repositories

import (
	"context"

	"pasar/internal/models"
)

// OrderRepository defines the interface for order data access.
// GetByID returns (nil, nil) when no order matches.
type OrderRepository interface {
	Create(ctx context.Context, order *models.Order) error
	GetByID(ctx context.Context, id string) (*models.Order, error)
	// GetByUser returns the buyer's orders, newest first.
	GetByUser(ctx context.Context, userID string) ([]models.Order, error)
	// GetByProducts returns orders containing at least one line item whose
	// product id is in productIDs, newest first.
	GetByProducts(ctx context.Context, productIDs []string) ([]models.Order, error)
	UpdateStatus(ctx context.Context, id string, status string) error
}
