package services

import (
	"context"

	"pasar/internal/apperr"
	"pasar/internal/models"
	"pasar/internal/repositories"
)

// CartService handles business logic for a user's shopping cart. The cart
// lives on the user document; each mutation is one read followed by one
// targeted write, with no locking. Concurrent mutations of the same user's
// cart are last-writer-wins.
type CartService struct {
	userRepo    repositories.UserRepository
	productRepo repositories.ProductRepository
}

// NewCartService creates a new CartService.
func NewCartService(userRepo repositories.UserRepository, productRepo repositories.ProductRepository) *CartService {
	return &CartService{
		userRepo:    userRepo,
		productRepo: productRepo,
	}
}

// AddToCart appends productID to the user's cart and returns the cart
// resolved to full product records. The product's existence is not checked,
// so a reference can dangle if the product is deleted later.
func (s *CartService) AddToCart(ctx context.Context, userID, productID string) ([]models.Product, error) {
	user, err := s.getUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if user.InCart(productID) {
		return nil, apperr.Conflict("product already in cart")
	}

	user.Cart = append(user.Cart, productID)
	if err := s.userRepo.UpdateCart(ctx, userID, user.Cart); err != nil {
		return nil, apperr.Internal("unable to add product to cart", err)
	}

	return s.resolveCart(ctx, user.Cart)
}

// RemoveFromCart removes productID from the user's cart and returns the
// resolved cart.
func (s *CartService) RemoveFromCart(ctx context.Context, userID, productID string) ([]models.Product, error) {
	user, err := s.getUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if !user.InCart(productID) {
		return nil, apperr.InvalidOperation("product not in cart")
	}

	remaining := make([]string, 0, len(user.Cart))
	for _, id := range user.Cart {
		if id != productID {
			remaining = append(remaining, id)
		}
	}
	user.Cart = remaining
	if err := s.userRepo.UpdateCart(ctx, userID, user.Cart); err != nil {
		return nil, apperr.Internal("unable to remove product from cart", err)
	}

	return s.resolveCart(ctx, user.Cart)
}

// GetCart returns the user's cart resolved to full product records.
func (s *CartService) GetCart(ctx context.Context, userID string) ([]models.Product, error) {
	user, err := s.getUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.resolveCart(ctx, user.Cart)
}

// ClearCart empties the user's cart. The returned list is always empty; it
// is not re-resolved.
func (s *CartService) ClearCart(ctx context.Context, userID string) ([]models.Product, error) {
	if _, err := s.getUser(ctx, userID); err != nil {
		return nil, err
	}
	if err := s.userRepo.UpdateCart(ctx, userID, []string{}); err != nil {
		return nil, apperr.Internal("unable to clear cart", err)
	}
	return []models.Product{}, nil
}

func (s *CartService) getUser(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, apperr.Internal("unable to fetch user", err)
	}
	if user == nil {
		return nil, apperr.NotFound("user not found")
	}
	return user, nil
}

// resolveCart replaces product ids with their full records. Ids whose
// product no longer exists are skipped rather than failing the fetch.
func (s *CartService) resolveCart(ctx context.Context, cart []string) ([]models.Product, error) {
	products := make([]models.Product, 0, len(cart))
	for _, id := range cart {
		product, err := s.productRepo.GetByID(ctx, id)
		if err != nil {
			return nil, apperr.Internal("unable to resolve cart", err)
		}
		if product == nil {
			continue
		}
		products = append(products, *product)
	}
	return products, nil
}
