package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"pasar/internal/apperr"
	"pasar/internal/models"
	"pasar/internal/repositories"
	"pasar/internal/services"
)

// orderFixture wires an OrderService (no message broker) against in-memory
// stores with a buyer, two sellers, and one product per seller.
type orderFixture struct {
	svc      *services.OrderService
	cart     *services.CartService
	users    *repositories.MockUserRepository
	products *repositories.MockProductRepository
	orders   *repositories.MockOrderRepository
	buyer    *models.User
	seller1  *models.User
	seller2  *models.User
	prod1    *models.Product // seller1, price 10
	prod2    *models.Product // seller2, price 15
}

func newOrderFixture(t *testing.T) *orderFixture {
	t.Helper()
	ctx := context.Background()

	users := repositories.NewMockUserRepository()
	products := repositories.NewMockProductRepository()
	orders := repositories.NewMockOrderRepository()

	buyer := &models.User{Name: "Buyer", Email: "buyer@example.com", Password: "hash", Role: models.RoleBuyer}
	seller1 := &models.User{Name: "Seller One", Email: "s1@example.com", Password: "hash", Role: models.RoleSeller}
	seller2 := &models.User{Name: "Seller Two", Email: "s2@example.com", Password: "hash", Role: models.RoleSeller}
	for _, u := range []*models.User{buyer, seller1, seller2} {
		assert.NoError(t, users.Create(ctx, u))
	}

	prod1 := &models.Product{Name: "Paperback", Description: "A novel", Price: 10, Category: models.CategoryBooks, Images: []string{"a.jpg"}, SellerID: seller1.ID}
	prod2 := &models.Product{Name: "Board game", Description: "For two players", Price: 15, Category: models.CategoryGames, Images: []string{"b.jpg"}, SellerID: seller2.ID}
	assert.NoError(t, products.Create(ctx, prod1))
	assert.NoError(t, products.Create(ctx, prod2))

	return &orderFixture{
		svc:      services.NewOrderService(orders, users, products, nil),
		cart:     services.NewCartService(users, products),
		users:    users,
		products: products,
		orders:   orders,
		buyer:    buyer,
		seller1:  seller1,
		seller2:  seller2,
		prod1:    prod1,
		prod2:    prod2,
	}
}

func TestOrderService_CreateOrder(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()

	// Something in the cart to verify the post-order clear.
	_, err := f.cart.AddToCart(ctx, f.buyer.ID, f.prod1.ID)
	assert.NoError(t, err)

	order, err := f.svc.CreateOrder(ctx, f.buyer.ID, []string{f.prod1.ID, f.prod2.ID})
	assert.NoError(t, err)
	assert.NotEmpty(t, order.ID)
	assert.Equal(t, models.StatusPending, order.Status)
	assert.Equal(t, 25.0, order.TotalAmount)
	assert.Len(t, order.Items, 2)
	for _, item := range order.Items {
		assert.Equal(t, 1, item.Quantity)
		assert.NotNil(t, item.Product)
	}
	assert.Equal(t, 10.0, order.Items[0].Price)
	assert.Equal(t, 15.0, order.Items[1].Price)
	assert.NotNil(t, order.Buyer)
	assert.Equal(t, f.buyer.Email, order.Buyer.Email)

	// The whole cart is cleared as a side effect.
	cart, err := f.cart.GetCart(ctx, f.buyer.ID)
	assert.NoError(t, err)
	assert.Empty(t, cart)
}

func TestOrderService_CreateOrder_DuplicateIDs(t *testing.T) {
	f := newOrderFixture(t)

	// Duplicate ids stay separate quantity-1 line items.
	order, err := f.svc.CreateOrder(context.Background(), f.buyer.ID, []string{f.prod1.ID, f.prod1.ID})
	assert.NoError(t, err)
	assert.Len(t, order.Items, 2)
	assert.Equal(t, 20.0, order.TotalAmount)
}

func TestOrderService_CreateOrder_Failures(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()

	// Unknown user.
	_, err := f.svc.CreateOrder(ctx, "missing-user", []string{f.prod1.ID})
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))

	// Empty product list.
	_, err = f.svc.CreateOrder(ctx, f.buyer.ID, nil)
	assert.True(t, apperr.IsKind(err, apperr.KindInvalidArgument))

	// A missing product aborts the whole operation, naming the id, and
	// nothing is persisted.
	_, err = f.svc.CreateOrder(ctx, f.buyer.ID, []string{f.prod1.ID, "ghost-product"})
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
	assert.Contains(t, err.Error(), "ghost-product")

	orders, err := f.svc.GetOrdersByUser(ctx, f.buyer.ID)
	assert.NoError(t, err)
	assert.Empty(t, orders)
}

func TestOrderService_CreateOrder_PriceSnapshot(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()

	order, err := f.svc.CreateOrder(ctx, f.buyer.ID, []string{f.prod1.ID})
	assert.NoError(t, err)
	assert.Equal(t, 10.0, order.TotalAmount)

	// Raising the product price afterwards must not alter the order.
	updated := *f.prod1
	updated.Price = 99
	assert.NoError(t, f.products.Update(ctx, &updated))

	orders, err := f.svc.GetOrdersByUser(ctx, f.buyer.ID)
	assert.NoError(t, err)
	assert.Len(t, orders, 1)
	assert.Equal(t, 10.0, orders[0].TotalAmount)
	assert.Equal(t, 10.0, orders[0].Items[0].Price)
	// The resolved product carries the current price alongside the snapshot.
	assert.Equal(t, 99.0, orders[0].Items[0].Product.Price)
}

func TestOrderService_GetOrdersByUser(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()

	// No orders yet: empty list, not an error.
	orders, err := f.svc.GetOrdersByUser(ctx, f.buyer.ID)
	assert.NoError(t, err)
	assert.Empty(t, orders)

	first, err := f.svc.CreateOrder(ctx, f.buyer.ID, []string{f.prod1.ID})
	assert.NoError(t, err)
	time.Sleep(5 * time.Millisecond)
	second, err := f.svc.CreateOrder(ctx, f.buyer.ID, []string{f.prod2.ID})
	assert.NoError(t, err)

	orders, err = f.svc.GetOrdersByUser(ctx, f.buyer.ID)
	assert.NoError(t, err)
	assert.Len(t, orders, 2)
	// Newest first.
	assert.Equal(t, second.ID, orders[0].ID)
	assert.Equal(t, first.ID, orders[1].ID)
}

func TestOrderService_GetOrdersBySeller(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()

	mixed, err := f.svc.CreateOrder(ctx, f.buyer.ID, []string{f.prod1.ID, f.prod2.ID})
	assert.NoError(t, err)
	time.Sleep(5 * time.Millisecond)
	onlySeller2, err := f.svc.CreateOrder(ctx, f.buyer.ID, []string{f.prod2.ID})
	assert.NoError(t, err)

	// Seller one sees only the order containing their product, returned
	// in full including the other seller's line item.
	orders, err := f.svc.GetOrdersBySeller(ctx, f.seller1.ID)
	assert.NoError(t, err)
	assert.Len(t, orders, 1)
	assert.Equal(t, mixed.ID, orders[0].ID)
	assert.Len(t, orders[0].Items, 2)

	// Seller two sees both, newest first.
	orders, err = f.svc.GetOrdersBySeller(ctx, f.seller2.ID)
	assert.NoError(t, err)
	assert.Len(t, orders, 2)
	assert.Equal(t, onlySeller2.ID, orders[0].ID)
	assert.Equal(t, mixed.ID, orders[1].ID)

	// A seller with no products matches nothing.
	orders, err = f.svc.GetOrdersBySeller(ctx, f.buyer.ID)
	assert.NoError(t, err)
	assert.Empty(t, orders)
}

func TestOrderService_UpdateOrderStatus(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()

	order, err := f.svc.CreateOrder(ctx, f.buyer.ID, []string{f.prod1.ID})
	assert.NoError(t, err)

	updated, err := f.svc.UpdateOrderStatus(ctx, order.ID, models.StatusShipped)
	assert.NoError(t, err)
	assert.Equal(t, models.StatusShipped, updated.Status)

	orders, err := f.svc.GetOrdersByUser(ctx, f.buyer.ID)
	assert.NoError(t, err)
	assert.Equal(t, models.StatusShipped, orders[0].Status)

	// No transition graph: going backwards is accepted, as is any string.
	updated, err = f.svc.UpdateOrderStatus(ctx, order.ID, models.StatusPending)
	assert.NoError(t, err)
	assert.Equal(t, models.StatusPending, updated.Status)

	updated, err = f.svc.UpdateOrderStatus(ctx, order.ID, "on-hold")
	assert.NoError(t, err)
	assert.Equal(t, "on-hold", updated.Status)

	// Unknown order.
	_, err = f.svc.UpdateOrderStatus(ctx, "missing-order", models.StatusShipped)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}

func TestOrderService_ResolutionToleratesDeletedProducts(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()

	order, err := f.svc.CreateOrder(ctx, f.buyer.ID, []string{f.prod1.ID, f.prod2.ID})
	assert.NoError(t, err)

	assert.NoError(t, f.products.Delete(ctx, f.prod1.ID))

	orders, err := f.svc.GetOrdersByUser(ctx, f.buyer.ID)
	assert.NoError(t, err)
	assert.Len(t, orders, 1)
	assert.Equal(t, order.ID, orders[0].ID)
	// The deleted product resolves to nil; the line item and total survive.
	assert.Len(t, orders[0].Items, 2)
	assert.Nil(t, orders[0].Items[0].Product)
	assert.NotNil(t, orders[0].Items[1].Product)
	assert.Equal(t, 25.0, orders[0].TotalAmount)
}
