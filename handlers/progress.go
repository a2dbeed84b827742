// handlers/progress.go
package handlers

import (
	"github.com/gofiber/fiber/v2"
)

type updateProgressRequest struct {
	QuestID         string            `json:"questId"`
	CurrentQuestion *int              `json:"currentQuestion"`
	Answers         map[string]string `json:"answers"`
}

type completeQuestRequest struct {
	Score     *int `json:"score"`
	TimeSpent *int `json:"timeSpent"`
}

// GetUserProgress returns all progress records for a user
// GET /api/user/:userId/progress
func (h *Handler) GetUserProgress(c *fiber.Ctx) error {
	progress, err := h.Store.GetUserProgress(c.Params("userId"))
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(progress)
}

// GetUserQuestProgress returns the progress record for one quest
// GET /api/user/:userId/progress/:questId
func (h *Handler) GetUserQuestProgress(c *fiber.Ctx) error {
	progress, err := h.Store.GetUserQuestProgress(c.Params("userId"), c.Params("questId"))
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(progress)
}

// UpdateProgress upserts the resume pointer and answers for a quest
// POST /api/user/:userId/progress
func (h *Handler) UpdateProgress(c *fiber.Ctx) error {
	var req updateProgressRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{
			"message": "Invalid progress data",
			"errors":  []string{err.Error()},
		})
	}

	var errs []string
	if req.QuestID == "" {
		errs = append(errs, "questId is required")
	}
	if req.CurrentQuestion != nil && *req.CurrentQuestion < 0 {
		errs = append(errs, "currentQuestion must not be negative")
	}
	if len(errs) > 0 {
		return c.Status(400).JSON(fiber.Map{
			"message": "Invalid progress data",
			"errors":  errs,
		})
	}

	currentQuestion := 0
	if req.CurrentQuestion != nil {
		currentQuestion = *req.CurrentQuestion
	}

	progress, err := h.Engine.RecordProgress(c.Params("userId"), req.QuestID, currentQuestion, req.Answers)
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(progress)
}

// CompleteQuest marks a quest finished and grants its rewards
// POST /api/user/:userId/complete-quest/:questId
func (h *Handler) CompleteQuest(c *fiber.Ctx) error {
	var req completeQuestRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"message": "Score and timeSpent must be numbers"})
	}
	if req.Score == nil || req.TimeSpent == nil {
		return c.Status(400).JSON(fiber.Map{"message": "Score and timeSpent must be numbers"})
	}

	progress, err := h.Engine.CompleteQuest(c.Params("userId"), c.Params("questId"), *req.Score, *req.TimeSpent)
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(progress)
}
