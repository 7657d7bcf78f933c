package repositories

import (
	"context"

	"pasar/internal/models"
)

// UserRepository defines the interface for user data access.
// GetByID and GetByEmail return (nil, nil) when no user matches; callers
// decide whether absence is an error.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	// UpdateCart overwrites the cart field of the user document.
	UpdateCart(ctx context.Context, userID string, cart []string) error
	// AddProduct records productID in the seller's owned-products list.
	AddProduct(ctx context.Context, userID, productID string) error
}
