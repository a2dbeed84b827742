// handlers/dashboard.go
package handlers

import (
	"github.com/gofiber/fiber/v2"

	"moneytree/services"
)

// GetDashboard returns the aggregated home-screen view for a user
// GET /api/user/:userId/dashboard
func (h *Handler) GetDashboard(c *fiber.Ctx) error {
	dashboard, err := services.BuildDashboard(h.Store, c.Params("userId"))
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(dashboard)
}
