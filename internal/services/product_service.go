package services

import (
	"context"

	"pasar/internal/apperr"
	"pasar/internal/models"
	"pasar/internal/repositories"
)

// ProductService handles business logic for the product catalog.
type ProductService struct {
	productRepo repositories.ProductRepository
	userRepo    repositories.UserRepository
}

// NewProductService creates a new ProductService.
func NewProductService(productRepo repositories.ProductRepository, userRepo repositories.UserRepository) *ProductService {
	return &ProductService{
		productRepo: productRepo,
		userRepo:    userRepo,
	}
}

// CreateProduct creates a catalog entry and records it in the seller's
// owned-products list.
func (s *ProductService) CreateProduct(ctx context.Context, product *models.Product) error {
	seller, err := s.userRepo.GetByID(ctx, product.SellerID)
	if err != nil {
		return apperr.Internal("unable to create product", err)
	}
	if seller == nil {
		return apperr.NotFound("seller not found")
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return apperr.Internal("unable to create product", err)
	}
	if err := s.userRepo.AddProduct(ctx, product.SellerID, product.ID); err != nil {
		return apperr.Internal("unable to record seller product", err)
	}
	return nil
}

// GetProducts returns catalog entries matching the filter, newest first.
func (s *ProductService) GetProducts(ctx context.Context, filter models.ProductFilter) ([]models.Product, error) {
	products, err := s.productRepo.Find(ctx, filter)
	if err != nil {
		return nil, apperr.Internal("unable to fetch products", err)
	}
	return products, nil
}

// GetProductByID returns a single catalog entry.
func (s *ProductService) GetProductByID(ctx context.Context, id string) (*models.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperr.Internal("unable to fetch product", err)
	}
	if product == nil {
		return nil, apperr.NotFound("product not found")
	}
	return product, nil
}

// UpdateProduct replaces an existing catalog entry.
func (s *ProductService) UpdateProduct(ctx context.Context, product *models.Product) error {
	existing, err := s.productRepo.GetByID(ctx, product.ID)
	if err != nil {
		return apperr.Internal("unable to update product", err)
	}
	if existing == nil {
		return apperr.NotFound("product not found")
	}
	if product.SellerID == "" {
		product.SellerID = existing.SellerID
	}
	if product.CreatedAt.IsZero() {
		product.CreatedAt = existing.CreatedAt
	}
	if err := s.productRepo.Update(ctx, product); err != nil {
		return apperr.Internal("unable to update product", err)
	}
	return nil
}

// DeleteProduct removes a catalog entry. Cart and order references to the
// deleted product are left dangling; resolution tolerates them.
func (s *ProductService) DeleteProduct(ctx context.Context, id string) error {
	existing, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return apperr.Internal("unable to delete product", err)
	}
	if existing == nil {
		return apperr.NotFound("product not found")
	}
	if err := s.productRepo.Delete(ctx, id); err != nil {
		return apperr.Internal("unable to delete product", err)
	}
	return nil
}
