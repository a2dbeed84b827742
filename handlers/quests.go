// handlers/quests.go
package handlers

import (
	"github.com/gofiber/fiber/v2"
)

// GetQuests returns all active quests
// GET /api/quests
func (h *Handler) GetQuests(c *fiber.Ctx) error {
	quests, err := h.Store.GetAllQuests()
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(quests)
}

// GetQuest returns a single quest by ID
// GET /api/quest/:id
func (h *Handler) GetQuest(c *fiber.Ctx) error {
	quest, err := h.Store.GetQuest(c.Params("id"))
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(quest)
}
