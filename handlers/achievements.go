// handlers/achievements.go
package handlers

import (
	"github.com/gofiber/fiber/v2"
)

// GetAchievements returns all active achievements
// GET /api/achievements
func (h *Handler) GetAchievements(c *fiber.Ctx) error {
	achievements, err := h.Store.GetAllAchievements()
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(achievements)
}

// GetUserAchievements returns a user's unlocks joined with their achievements
// GET /api/user/:userId/achievements
func (h *Handler) GetUserAchievements(c *fiber.Ctx) error {
	unlocks, err := h.Store.GetUserAchievements(c.Params("userId"))
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(unlocks)
}

// UnlockAchievement records an unlock and grants its rewards
// POST /api/user/:userId/unlock-achievement/:achievementId
func (h *Handler) UnlockAchievement(c *fiber.Ctx) error {
	unlock, err := h.Engine.UnlockAchievement(c.Params("userId"), c.Params("achievementId"))
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(unlock)
}

// CheckAchievements unlocks every achievement whose requirements the user
// newly meets and returns them
// POST /api/user/:userId/check-achievements
func (h *Handler) CheckAchievements(c *fiber.Ctx) error {
	unlocked, err := h.Engine.CheckAchievements(c.Params("userId"))
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(unlocked)
}
