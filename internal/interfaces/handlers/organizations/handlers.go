package organizations

import (
	"encoding/json"
	"errors"

	orgsvc "orgboard-backend/internal/application/organizations"
	"orgboard-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// Handlers bundles organization handlers with dependencies.
type Handlers struct {
	Service *orgsvc.Service
	SyncKey string
}

// GetOrganizations GET /api/v1/organizations/get-organizations
func (h *Handlers) GetOrganizations(c *fiber.Ctx) error {
	records, state := h.Service.List()
	return response.Success(c, "Organizations fetched successfully", records, fiber.Map{
		"count": len(records),
		"state": state,
	})
}

// GridColumns GET /api/v1/organizations/grid-columns
func (h *Handlers) GridColumns(c *fiber.Ctx) error {
	return response.Success(c, "Grid columns fetched successfully", h.Service.GridColumns(), nil)
}

// GridRows GET /api/v1/organizations/grid-rows
func (h *Handlers) GridRows(c *fiber.Ctx) error {
	rows, state := h.Service.GridRows()
	return response.Success(c, "Grid rows fetched successfully", rows, fiber.Map{
		"count": len(rows),
		"state": state,
	})
}

// CreateIntent POST /api/v1/organizations/create-intent
//
// Acknowledges the "new company" control. Deliberately a stub: nothing is
// added to the record sequence.
func (h *Handlers) CreateIntent(c *fiber.Ctx) error {
	var in orgsvc.CreateIntentInput
	if len(c.Body()) > 0 {
		// A malformed body still acknowledges the intent; there is nothing
		// to validate because nothing is created.
		_ = json.Unmarshal(c.Body(), &in)
	}
	intentID := h.Service.CreateIntent(in)
	return response.SuccessAccepted(c, "Creation intent received", fiber.Map{"intent_id": intentID}, nil)
}

// AdminSync POST /api/v1/organizations/admin-sync
func (h *Handlers) AdminSync(c *fiber.Ctx) error {
	if h.SyncKey == "" || c.Get("admin-key") != h.SyncKey {
		return response.Unauthorized(c, "Unauthorized")
	}
	count, err := h.Service.SyncToDatabase(c.Context())
	if err != nil {
		if errors.Is(err, orgsvc.ErrDatabaseUnavailable) {
			return response.Error(c, "Database not configured", fiber.StatusServiceUnavailable, nil)
		}
		return response.Error(c, "Internal Server Error", fiber.StatusInternalServerError, nil)
	}
	return response.Success(c, "Organizations synced successfully", fiber.Map{"rows": count}, nil)
}
