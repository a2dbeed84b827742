// handlers/handler.go
package handlers

import (
	"errors"
	"math/rand"
	"sync"

	"github.com/gofiber/fiber/v2"

	"moneytree/services"
	"moneytree/storage"
)

// Handler carries the wired dependencies for all routes.
type Handler struct {
	Store  storage.Store
	Engine *services.Engine
	Hub    *services.LeaderboardHub

	rndMu sync.Mutex
	rnd   *rand.Rand
}

func New(store storage.Store, engine *services.Engine, hub *services.LeaderboardHub, rnd *rand.Rand) *Handler {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(rand.Int63()))
	}
	return &Handler{
		Store:  store,
		Engine: engine,
		Hub:    hub,
		rnd:    rnd,
	}
}

// storeError maps storage sentinel errors onto the API error taxonomy.
func storeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, storage.ErrUserNotFound):
		return c.Status(404).JSON(fiber.Map{"message": "User not found"})
	case errors.Is(err, storage.ErrQuestNotFound):
		return c.Status(404).JSON(fiber.Map{"message": "Quest not found"})
	case errors.Is(err, storage.ErrProgressNotFound):
		return c.Status(404).JSON(fiber.Map{"message": "Progress not found"})
	case errors.Is(err, storage.ErrAchievementNotFound):
		return c.Status(404).JSON(fiber.Map{"message": "Achievement not found"})
	case errors.Is(err, storage.ErrUsernameTaken):
		return c.Status(400).JSON(fiber.Map{"message": "Username already taken"})
	}
	return c.Status(500).JSON(fiber.Map{"message": "Internal server error"})
}
