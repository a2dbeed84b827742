// handlers/leaderboard.go
package handlers

import (
	"encoding/json"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"

	"moneytree/services"
)

// GetLeaderboard returns all users ranked by XP
// GET /api/leaderboard
func (h *Handler) GetLeaderboard(c *fiber.Ctx) error {
	users, err := h.Store.GetAllUsers()
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(services.Leaderboard(users))
}

// LeaderboardSocket streams leaderboard snapshots. A snapshot is sent on
// connect and after every reward-granting operation.
// GET /ws/leaderboard
func (h *Handler) LeaderboardSocket() fiber.Handler {
	return websocket.New(func(conn *websocket.Conn) {
		entries, cancel := h.Hub.Subscribe()
		defer cancel()

		users, err := h.Store.GetAllUsers()
		if err == nil {
			if err := writeSnapshot(conn, services.Leaderboard(users)); err != nil {
				return
			}
		}

		// Reader goroutine detects the peer going away.
		closed := make(chan struct{})
		go func() {
			defer close(closed)
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					return
				}
			}
		}()

		for {
			select {
			case snapshot, ok := <-entries:
				if !ok {
					return
				}
				if err := writeSnapshot(conn, snapshot); err != nil {
					log.Printf("leaderboard socket write: %v", err)
					return
				}
			case <-closed:
				return
			}
		}
	})
}

func writeSnapshot(conn *websocket.Conn, entries []services.LeaderboardEntry) error {
	payload, err := json.Marshal(fiber.Map{
		"type":        "leaderboard",
		"leaderboard": entries,
	})
	if err != nil {
		return err
	}
	return conn.WriteMessage(websocket.TextMessage, payload)
}
