// services/leaderboard.go - Leaderboard ranking
package services

import (
	"fmt"
	"sort"

	"moneytree/models"
)

// LeaderboardEntry is one ranked row. The top three carry ordinal labels, the
// rest are numbered "#N".
type LeaderboardEntry struct {
	Rank        int    `json:"rank"`
	Label       string `json:"label"`
	UserID      string `json:"userId"`
	Username    string `json:"username"`
	DisplayName string `json:"displayName"`
	Level       int    `json:"level"`
	XP          int    `json:"xp"`
	Coins       int    `json:"coins"`
	Streak      int    `json:"streak"`
}

// Leaderboard ranks users by XP descending. The sort is stable, so users with
// equal XP keep the store's insertion order.
func Leaderboard(users []models.User) []LeaderboardEntry {
	ranked := make([]models.User, len(users))
	copy(ranked, users)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].XP > ranked[j].XP
	})

	entries := make([]LeaderboardEntry, 0, len(ranked))
	for i, user := range ranked {
		rank := i + 1
		entries = append(entries, LeaderboardEntry{
			Rank:        rank,
			Label:       rankLabel(rank),
			UserID:      user.ID,
			Username:    user.Username,
			DisplayName: user.DisplayName,
			Level:       user.Level,
			XP:          user.XP,
			Coins:       user.Coins,
			Streak:      user.Streak,
		})
	}
	return entries
}

func rankLabel(rank int) string {
	switch rank {
	case 1:
		return "1st"
	case 2:
		return "2nd"
	case 3:
		return "3rd"
	default:
		return fmt.Sprintf("#%d", rank)
	}
}
