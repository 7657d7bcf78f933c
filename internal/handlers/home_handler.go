package handlers

import (
	"context"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"pasar/internal/models"
	"pasar/internal/services"
)

// homeFeedLimit caps the number of products on a landing feed.
const homeFeedLimit = 12

// homeFeedTimeout bounds how long a landing feed waits on the catalog.
const homeFeedTimeout = 5 * time.Second

// HomeHandler serves the landing feeds. A slow catalog degrades the feed
// to empty rather than erroring, so the page always answers.
type HomeHandler struct {
	service *services.ProductService
}

// NewHomeHandler creates a new HomeHandler.
func NewHomeHandler(service *services.ProductService) *HomeHandler {
	return &HomeHandler{
		service: service,
	}
}

// RegisterRoutes registers the public landing routes.
func (h *HomeHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/", h.HandleHome)
	router.Get("/bestsellers", h.HandleBestsellers)
}

// HandleHome returns the newest products.
func (h *HomeHandler) HandleHome(c *fiber.Ctx) error {
	products := h.feed(c.UserContext(), func(p models.Product) bool { return true })
	return c.JSON(fiber.Map{
		"products": products,
	})
}

// HandleBestsellers returns the newest bestseller-flagged products.
func (h *HomeHandler) HandleBestsellers(c *fiber.Ctx) error {
	products := h.feed(c.UserContext(), func(p models.Product) bool { return p.Bestseller })
	return c.JSON(fiber.Map{
		"products": products,
	})
}

// feed queries the catalog under the feed timeout, keeps entries passing
// keep, and caps the result. Any failure yields an empty feed.
func (h *HomeHandler) feed(ctx context.Context, keep func(models.Product) bool) []models.Product {
	ctx, cancel := context.WithTimeout(ctx, homeFeedTimeout)
	defer cancel()

	products, err := h.service.GetProducts(ctx, models.ProductFilter{})
	if err != nil {
		log.Printf("Error building home feed: %v", err)
		return []models.Product{}
	}

	feed := make([]models.Product, 0, homeFeedLimit)
	for _, p := range products {
		if !keep(p) {
			continue
		}
		feed = append(feed, p)
		if len(feed) == homeFeedLimit {
			break
		}
	}
	return feed
}
