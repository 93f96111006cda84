package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"wiskoro-bot/services"
)

// HealthHandler serves the liveness endpoints.
type HealthHandler struct {
	store *services.ExchangeStore
	cache *services.ResponseCache
}

// NewHealthHandler creates the handler. store may be nil when exchange
// logging is disabled.
func NewHealthHandler(store *services.ExchangeStore, cache *services.ResponseCache) *HealthHandler {
	return &HealthHandler{
		store: store,
		cache: cache,
	}
}

// HandleRoot serves GET / with basic service info.
func (h *HealthHandler) HandleRoot(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message":   "Wiskoro API - je wiskunde G 🧮",
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// HandleHealth serves GET /health, probing the datastore when configured.
func (h *HealthHandler) HandleHealth(c *fiber.Ctx) error {
	database := "disabled"
	if h.store != nil {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()

		if err := h.store.Ping(ctx); err != nil {
			database = "unreachable"
		} else {
			database = "healthy"
		}
	}

	return c.JSON(fiber.Map{
		"status":        "healthy",
		"service":       "wiskoro-bot",
		"database":      database,
		"cache_entries": h.cache.Len(),
		"timestamp":     time.Now().UTC().Format(time.RFC3339),
	})
}
