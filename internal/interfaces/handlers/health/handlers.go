package health

import (
	healthsvc "orgboard-backend/internal/application/health"
	"orgboard-backend/internal/pkg/response"
	"orgboard-backend/internal/store"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

// Handlers bundles health handlers with dependencies.
type Handlers struct {
	Rdb            *redis.Client
	DB             healthsvc.DBPinger
	Store          *store.Store
	HealthAdminKey string
}

// JSON GET /health/json
func (h *Handlers) JSON(c *fiber.Ctx) error {
	result := healthsvc.CollectHealth(c.Context(), h.Rdb, h.DB, h.Store)
	return c.Status(fiber.StatusOK).JSON(result)
}

// Reset GET /health/reset — clears traffic counters; requires the admin key.
func (h *Handlers) Reset(c *fiber.Ctx) error {
	if h.HealthAdminKey == "" || c.Query("key") != h.HealthAdminKey {
		return response.Unauthorized(c, "Unauthorized")
	}
	if err := healthsvc.Reset(c.Context(), h.Rdb); err != nil {
		return response.Error(c, "Internal Server Error", fiber.StatusInternalServerError, nil)
	}
	return response.Success(c, "Health counters reset", nil, nil)
}
