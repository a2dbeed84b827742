// handlers/tips.go
package handlers

import (
	"github.com/gofiber/fiber/v2"

	"moneytree/services"
)

// GetAuricTip returns one random active tip, optionally filtered
// GET /api/auric-tip?category=&context=
func (h *Handler) GetAuricTip(c *fiber.Ctx) error {
	tips, err := h.Store.GetActiveTips()
	if err != nil {
		return storeError(c, err)
	}

	h.rndMu.Lock()
	tip, ok := services.PickTip(h.rnd, tips, c.Query("category"), c.Query("context"))
	h.rndMu.Unlock()

	if !ok {
		return c.Status(404).JSON(fiber.Map{"message": "No tips found"})
	}
	return c.JSON(tip)
}

// GetAuricTips returns all active tips
// GET /api/auric-tips
func (h *Handler) GetAuricTips(c *fiber.Ctx) error {
	tips, err := h.Store.GetActiveTips()
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(tips)
}
