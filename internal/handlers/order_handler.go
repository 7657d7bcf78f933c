package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"pasar/internal/middleware"
	"pasar/internal/models"
	"pasar/internal/services"
)

// OrderHandler handles HTTP requests for orders.
type OrderHandler struct {
	service *services.OrderService
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(service *services.OrderService) *OrderHandler {
	return &OrderHandler{
		service: service,
	}
}

// RegisterRoutes registers the order routes with the Fiber app. All order
// routes require authentication.
func (h *OrderHandler) RegisterRoutes(router fiber.Router) {
	orderRoutes := router.Group("/orders")
	orderRoutes.Post("/create", h.HandleCreateOrder)
	orderRoutes.Get("/my-orders", h.HandleGetMyOrders)
	orderRoutes.Get("/seller-orders", h.HandleGetSellerOrders)
	orderRoutes.Put("/update-status/:orderId", h.HandleUpdateOrderStatus)
}

// CreateOrderRequest represents the request body for order creation.
type CreateOrderRequest struct {
	ProductIDs []string `json:"product_ids"`
}

// HandleCreateOrder places an order for the authenticated user.
func (h *OrderHandler) HandleCreateOrder(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	var req CreateOrderRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing order request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	order, err := h.service.CreateOrder(c.UserContext(), user.ID, req.ProductIDs)
	if err != nil {
		log.Printf("Error creating order for user %s: %v", user.ID, err)
		return respondError(c, "Could not create order", err)
	}
	return c.Status(fiber.StatusCreated).JSON(order)
}

// HandleGetMyOrders returns the authenticated user's orders, newest first.
func (h *OrderHandler) HandleGetMyOrders(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	orders, err := h.service.GetOrdersByUser(c.UserContext(), user.ID)
	if err != nil {
		log.Printf("Error fetching orders for user %s: %v", user.ID, err)
		return respondError(c, "Could not retrieve orders", err)
	}
	return c.JSON(orders)
}

// HandleGetSellerOrders returns orders containing the authenticated
// seller's products. Only sellers may call it.
func (h *OrderHandler) HandleGetSellerOrders(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	if user.Role != models.RoleSeller {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"message": "Only sellers can view seller orders",
		})
	}

	orders, err := h.service.GetOrdersBySeller(c.UserContext(), user.ID)
	if err != nil {
		log.Printf("Error fetching seller orders for %s: %v", user.ID, err)
		return respondError(c, "Could not retrieve orders", err)
	}
	return c.JSON(orders)
}

// UpdateOrderStatusRequest represents the request body for a status update.
type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

// HandleUpdateOrderStatus overwrites an order's status.
func (h *OrderHandler) HandleUpdateOrderStatus(c *fiber.Ctx) error {
	orderID := c.Params("orderId")

	var req UpdateOrderStatusRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing status update body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if req.Status == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Status is required",
		})
	}

	order, err := h.service.UpdateOrderStatus(c.UserContext(), orderID, req.Status)
	if err != nil {
		log.Printf("Error updating status for order %s: %v", orderID, err)
		return respondError(c, "Could not update order status", err)
	}
	return c.JSON(order)
}
