// services/dashboard.go - Dashboard aggregation
package services

import (
	"moneytree/models"
	"moneytree/storage"
)

// QuestStatus pairs a quest with the user's progress on it.
type QuestStatus struct {
	Quest             models.Quest         `json:"quest"`
	Progress          *models.UserProgress `json:"progress,omitempty"`
	CompletionPercent float64              `json:"completionPercent"`
}

// Dashboard is the single-page aggregate the client renders.
type Dashboard struct {
	User            models.User              `json:"user"`
	Quests          []QuestStatus            `json:"quests"`
	Achievements    []models.UserAchievement `json:"achievements"`
	CompletedQuests int                      `json:"completedQuests"`
	XPToNextLevel   int                      `json:"xpToNextLevel"`
}

// BuildDashboard aggregates the user's record, the active quest list with
// per-quest completion percentages, and unlocked achievements.
func BuildDashboard(store storage.Store, userID string) (*Dashboard, error) {
	user, err := store.GetUser(userID)
	if err != nil {
		return nil, err
	}
	quests, err := store.GetAllQuests()
	if err != nil {
		return nil, err
	}
	progress, err := store.GetUserProgress(userID)
	if err != nil {
		return nil, err
	}
	achievements, err := store.GetUserAchievements(userID)
	if err != nil {
		return nil, err
	}

	progressByQuest := make(map[string]models.UserProgress, len(progress))
	for _, record := range progress {
		progressByQuest[record.QuestID] = record
	}

	statuses := make([]QuestStatus, 0, len(quests))
	completed := 0
	for _, quest := range quests {
		status := QuestStatus{Quest: quest}
		if record, ok := progressByQuest[quest.ID]; ok {
			copied := record
			status.Progress = &copied
			if record.IsCompleted {
				status.CompletionPercent = 100
				completed++
			} else if len(quest.Questions) > 0 {
				status.CompletionPercent = float64(record.CurrentQuestion) / float64(len(quest.Questions)) * 100
			}
		}
		statuses = append(statuses, status)
	}

	return &Dashboard{
		User:            *user,
		Quests:          statuses,
		Achievements:    achievements,
		CompletedQuests: completed,
		XPToNextLevel:   user.Level*XPPerLevel - user.XP,
	}, nil
}
