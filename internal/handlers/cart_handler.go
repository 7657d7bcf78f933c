package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"pasar/internal/middleware"
	"pasar/internal/services"
)

// CartHandler handles HTTP requests for the authenticated user's cart.
type CartHandler struct {
	service *services.CartService
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(service *services.CartService) *CartHandler {
	return &CartHandler{
		service: service,
	}
}

// RegisterRoutes registers the cart routes with the Fiber app. All cart
// routes require authentication.
func (h *CartHandler) RegisterRoutes(router fiber.Router) {
	cartRoutes := router.Group("/cart")
	cartRoutes.Get("/", h.HandleGetCart)
	cartRoutes.Post("/add", h.HandleAddToCart)
	cartRoutes.Delete("/remove/:productId", h.HandleRemoveFromCart)
	cartRoutes.Delete("/clear", h.HandleClearCart)
}

// AddToCartRequest represents the request body for a cart addition.
type AddToCartRequest struct {
	ProductID string `json:"product_id"`
}

// HandleAddToCart appends a product to the user's cart.
func (h *CartHandler) HandleAddToCart(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	var req AddToCartRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing cart request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if req.ProductID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Product ID is required",
		})
	}

	cart, err := h.service.AddToCart(c.UserContext(), user.ID, req.ProductID)
	if err != nil {
		log.Printf("Error adding product %s to cart: %v", req.ProductID, err)
		return respondError(c, "Could not add product to cart", err)
	}
	return c.JSON(fiber.Map{
		"message": "Product added to cart",
		"cart":    cart,
	})
}

// HandleRemoveFromCart removes a product from the user's cart.
func (h *CartHandler) HandleRemoveFromCart(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	productID := c.Params("productId")

	cart, err := h.service.RemoveFromCart(c.UserContext(), user.ID, productID)
	if err != nil {
		log.Printf("Error removing product %s from cart: %v", productID, err)
		return respondError(c, "Could not remove product from cart", err)
	}
	return c.JSON(fiber.Map{
		"message": "Product removed from cart",
		"cart":    cart,
	})
}

// HandleGetCart returns the user's cart resolved to product records.
func (h *CartHandler) HandleGetCart(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	cart, err := h.service.GetCart(c.UserContext(), user.ID)
	if err != nil {
		log.Printf("Error fetching cart for user %s: %v", user.ID, err)
		return respondError(c, "Could not fetch cart", err)
	}
	return c.JSON(fiber.Map{
		"cart": cart,
	})
}

// HandleClearCart empties the user's cart.
func (h *CartHandler) HandleClearCart(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	cart, err := h.service.ClearCart(c.UserContext(), user.ID)
	if err != nil {
		log.Printf("Error clearing cart for user %s: %v", user.ID, err)
		return respondError(c, "Could not clear cart", err)
	}
	return c.JSON(fiber.Map{
		"message": "Cart cleared",
		"cart":    cart,
	})
}
