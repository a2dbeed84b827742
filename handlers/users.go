// handlers/users.go
package handlers

import (
	"github.com/gofiber/fiber/v2"

	"moneytree/middleware"
)

// GetUser returns a single user by ID
// GET /api/user/:id
func (h *Handler) GetUser(c *fiber.Ctx) error {
	user, err := h.Store.GetUser(c.Params("id"))
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(user)
}

// GetUserByUsername returns a single user by username
// GET /api/user/username/:username
func (h *Handler) GetUserByUsername(c *fiber.Ctx) error {
	user, err := h.Store.GetUserByUsername(c.Params("username"))
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(user)
}

// Me returns the authenticated user
// GET /api/users/me
func (h *Handler) Me(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"message": "User not authenticated"})
	}

	user, err := h.Store.GetUser(userID)
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(user)
}
