// services/achievements.go - Requirements evaluation
package services

import (
	"moneytree/models"
)

// CheckAchievements unlocks every active achievement whose requirements the
// user now meets and which has not been unlocked before, returning the newly
// unlocked ones. Explicit unlock calls stay non-idempotent; only this checker
// skips already-unlocked achievements.
func (e *Engine) CheckAchievements(userID string) ([]models.Achievement, error) {
	user, err := e.store.GetUser(userID)
	if err != nil {
		return nil, err
	}

	achievements, err := e.store.GetAllAchievements()
	if err != nil {
		return nil, err
	}
	unlocked, err := e.store.GetUserAchievements(userID)
	if err != nil {
		return nil, err
	}
	unlockedSet := make(map[string]bool, len(unlocked))
	for _, ua := range unlocked {
		unlockedSet[ua.AchievementID] = true
	}

	completedCategories, err := e.completedCategories(userID)
	if err != nil {
		return nil, err
	}

	var newlyUnlocked []models.Achievement
	for _, achievement := range achievements {
		if unlockedSet[achievement.ID] {
			continue
		}
		if !requirementsMet(achievement.Requirements, user, completedCategories) {
			continue
		}
		if _, err := e.UnlockAchievement(userID, achievement.ID); err != nil {
			return nil, err
		}
		newlyUnlocked = append(newlyUnlocked, achievement)
	}
	return newlyUnlocked, nil
}

// completedCategories reports which quest categories the user has fully
// completed: every active quest in the category has a completed progress
// record.
func (e *Engine) completedCategories(userID string) (map[string]bool, error) {
	quests, err := e.store.GetAllQuests()
	if err != nil {
		return nil, err
	}
	progress, err := e.store.GetUserProgress(userID)
	if err != nil {
		return nil, err
	}

	completedQuests := make(map[string]bool, len(progress))
	for _, record := range progress {
		if record.IsCompleted {
			completedQuests[record.QuestID] = true
		}
	}

	total := make(map[string]int)
	done := make(map[string]int)
	for _, quest := range quests {
		total[quest.Category]++
		if completedQuests[quest.ID] {
			done[quest.Category]++
		}
	}

	completed := make(map[string]bool, len(total))
	for category, count := range total {
		completed[category] = count > 0 && done[category] == count
	}
	return completed, nil
}

func requirementsMet(req models.Requirements, user *models.User, completedCategories map[string]bool) bool {
	switch req.Type {
	case models.RequirementCompleteCategory:
		return completedCategories[req.Category]
	case models.RequirementStreakAndCategory:
		return user.Streak >= req.Streak && completedCategories[req.Category]
	}
	return false
}
