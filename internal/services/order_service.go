package services

import (
	"context"
	"log"

	"pasar/internal/apperr"
	"pasar/internal/models"
	"pasar/internal/repositories"
	"pasar/pkg/rabbitmq"
)

// OrderService handles business logic related to orders.
type OrderService struct {
	orderRepo   repositories.OrderRepository
	userRepo    repositories.UserRepository
	productRepo repositories.ProductRepository
	mqClient    *rabbitmq.Client
}

// NewOrderService creates a new OrderService. mqClient may be nil, which
// disables event publication.
func NewOrderService(orderRepo repositories.OrderRepository, userRepo repositories.UserRepository, productRepo repositories.ProductRepository, mqClient *rabbitmq.Client) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		userRepo:    userRepo,
		productRepo: productRepo,
		mqClient:    mqClient,
	}
}

// CreateOrder builds an order from productIDs for the given buyer. Each
// input id becomes one quantity-1 line item with the product's current
// price snapshotted; duplicate ids stay separate line items. Resolution is
// fail-fast: the first missing product aborts the whole operation before
// anything is written. On success the buyer's cart is cleared
// unconditionally, not just of the ordered items.
func (s *OrderService) CreateOrder(ctx context.Context, userID string, productIDs []string) (*models.ResolvedOrder, error) {
	user, err := s.getUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if len(productIDs) == 0 {
		return nil, apperr.InvalidArgument("products are required")
	}

	var totalAmount float64
	items := make([]models.OrderItem, 0, len(productIDs))
	for _, productID := range productIDs {
		product, err := s.productRepo.GetByID(ctx, productID)
		if err != nil {
			return nil, apperr.Internal("unable to create order", err)
		}
		if product == nil {
			return nil, apperr.NotFound("product with ID %s not found", productID)
		}
		items = append(items, models.OrderItem{
			ProductID: product.ID,
			Quantity:  1,
			Price:     product.Price,
		})
		totalAmount += product.Price
	}

	order := &models.Order{
		UserID:      userID,
		Items:       items,
		TotalAmount: totalAmount,
		Status:      models.StatusPending,
	}
	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, apperr.Internal("unable to create order", err)
	}

	if err := s.userRepo.UpdateCart(ctx, userID, []string{}); err != nil {
		return nil, apperr.Internal("unable to clear cart after order", err)
	}

	s.publishEvent("order.created", map[string]interface{}{
		"order_id": order.ID,
		"user_id":  order.UserID,
		"status":   order.Status,
		"total":    order.TotalAmount,
	})

	return s.resolveOrder(ctx, order, user)
}

// GetOrdersByUser returns the buyer's orders, newest first, resolved. An
// empty result is not an error.
func (s *OrderService) GetOrdersByUser(ctx context.Context, userID string) ([]models.ResolvedOrder, error) {
	orders, err := s.orderRepo.GetByUser(ctx, userID)
	if err != nil {
		return nil, apperr.Internal("unable to fetch orders", err)
	}
	return s.resolveOrders(ctx, orders)
}

// GetOrdersBySeller returns orders containing at least one line item whose
// product is owned by sellerID, newest first. Matching orders are returned
// in full, including line items belonging to other sellers.
func (s *OrderService) GetOrdersBySeller(ctx context.Context, sellerID string) ([]models.ResolvedOrder, error) {
	products, err := s.productRepo.GetBySeller(ctx, sellerID)
	if err != nil {
		return nil, apperr.Internal("unable to fetch orders", err)
	}
	productIDs := make([]string, 0, len(products))
	for _, p := range products {
		productIDs = append(productIDs, p.ID)
	}

	orders, err := s.orderRepo.GetByProducts(ctx, productIDs)
	if err != nil {
		return nil, apperr.Internal("unable to fetch orders", err)
	}
	return s.resolveOrders(ctx, orders)
}

// UpdateOrderStatus overwrites the status of an order and returns it
// resolved. Any status string is accepted; no transition graph is enforced.
func (s *OrderService) UpdateOrderStatus(ctx context.Context, orderID, status string) (*models.ResolvedOrder, error) {
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, apperr.Internal("unable to update order", err)
	}
	if order == nil {
		return nil, apperr.NotFound("order not found")
	}

	if err := s.orderRepo.UpdateStatus(ctx, orderID, status); err != nil {
		return nil, apperr.Internal("unable to update order", err)
	}
	order.Status = status

	s.publishEvent("order.status_updated", map[string]interface{}{
		"order_id": order.ID,
		"status":   status,
	})

	return s.resolveOrder(ctx, order, nil)
}

func (s *OrderService) getUser(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, apperr.Internal("unable to fetch user", err)
	}
	if user == nil {
		return nil, apperr.NotFound("user not found")
	}
	return user, nil
}

// publishEvent sends an order event to the message queue. Publication is
// best-effort: failures are logged and never fail the business operation.
func (s *OrderService) publishEvent(eventType string, payload map[string]interface{}) {
	if s.mqClient == nil {
		return
	}
	if err := s.mqClient.PublishOrderEvent(eventType, payload); err != nil {
		log.Printf("Warning: failed to publish %s event: %v", eventType, err)
	}
}

// resolveOrder attaches the buyer summary and line-item product records to
// an order. buyer may be pre-fetched; when nil it is looked up, and an
// absent buyer leaves the summary nil. Absent products resolve to nil line
// items rather than failing the fetch.
func (s *OrderService) resolveOrder(ctx context.Context, order *models.Order, buyer *models.User) (*models.ResolvedOrder, error) {
	if buyer == nil {
		u, err := s.userRepo.GetByID(ctx, order.UserID)
		if err != nil {
			return nil, apperr.Internal("unable to resolve order", err)
		}
		buyer = u
	}

	resolved := &models.ResolvedOrder{Order: *order}
	if buyer != nil {
		resolved.Buyer = buyer.Summary()
	}

	resolved.Items = make([]models.ResolvedOrderItem, 0, len(order.Items))
	for _, item := range order.Items {
		product, err := s.productRepo.GetByID(ctx, item.ProductID)
		if err != nil {
			return nil, apperr.Internal("unable to resolve order", err)
		}
		resolved.Items = append(resolved.Items, models.ResolvedOrderItem{
			OrderItem: item,
			Product:   product,
		})
	}
	return resolved, nil
}

func (s *OrderService) resolveOrders(ctx context.Context, orders []models.Order) ([]models.ResolvedOrder, error) {
	resolved := make([]models.ResolvedOrder, 0, len(orders))
	for i := range orders {
		r, err := s.resolveOrder(ctx, &orders[i], nil)
		if err != nil {
			return nil, err
		}
		resolved = append(resolved, *r)
	}
	return resolved, nil
}
