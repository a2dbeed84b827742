// services/rewards.go - Progress & Reward Engine
package services

import (
	"time"

	"moneytree/models"
	"moneytree/storage"
)

const (
	// PointsPerCorrectAnswer is the flat score granted per correct answer.
	PointsPerCorrectAnswer = 10
	// XPPerLevel is the divisor of the leveling formula.
	XPPerLevel = 250
)

// LevelForXP is the single leveling rule. It is applied everywhere XP
// changes: quest completion and achievement unlock both funnel through
// grantRewards.
func LevelForXP(xp int) int {
	return xp/XPPerLevel + 1
}

// Engine owns the derived-state updates around quest completion and
// achievement unlocks. It only talks to the injected store, so backends can
// be swapped without touching reward semantics.
type Engine struct {
	store    storage.Store
	onReward func()
	now      func() time.Time
}

func NewEngine(store storage.Store) *Engine {
	return &Engine{store: store, now: time.Now}
}

// NewEngineWithClock is for deterministic timestamps in tests.
func NewEngineWithClock(store storage.Store, now func() time.Time) *Engine {
	return &Engine{store: store, now: now}
}

// SetRewardListener registers a hook invoked after any reward grant, used to
// push fresh leaderboard snapshots to websocket subscribers.
func (e *Engine) SetRewardListener(fn func()) {
	e.onReward = fn
}

// RecordProgress upserts the resume pointer and answers for a (user, quest)
// pair. Callers are trusted; the index is not range-checked.
func (e *Engine) RecordProgress(userID, questID string, currentQuestion int, answers map[string]string) (*models.UserProgress, error) {
	return e.store.CreateOrUpdateUserProgress(userID, questID, storage.ProgressUpdate{
		CurrentQuestion: &currentQuestion,
		Answers:         answers,
	})
}

// CompleteQuest marks the quest finished and grants its rewards. The progress
// write always happens; a missing quest silently skips the reward step so
// progress recording stays independent of catalog lookups.
func (e *Engine) CompleteQuest(userID, questID string, score, timeSpent int) (*models.UserProgress, error) {
	completed := true
	completedAt := e.now()
	progress, err := e.store.CreateOrUpdateUserProgress(userID, questID, storage.ProgressUpdate{
		IsCompleted: &completed,
		Score:       &score,
		TimeSpent:   &timeSpent,
		CompletedAt: &completedAt,
	})
	if err != nil {
		return nil, err
	}

	quest, err := e.store.GetQuest(questID)
	if err == storage.ErrQuestNotFound {
		return progress, nil
	}
	if err != nil {
		return nil, err
	}

	if err := e.grantRewards(userID, quest.XPReward, quest.CoinReward); err != nil {
		return nil, err
	}
	return progress, nil
}

// UnlockAchievement records an unlock and grants the achievement's rewards.
// There is no idempotency check: a second call for the same pair creates a
// second record and grants the rewards again.
func (e *Engine) UnlockAchievement(userID, achievementID string) (*models.UserAchievement, error) {
	ua := &models.UserAchievement{
		UserID:        userID,
		AchievementID: achievementID,
		UnlockedAt:    e.now(),
	}
	if err := e.store.CreateUserAchievement(ua); err != nil {
		return nil, err
	}

	achievement, err := e.store.GetAchievement(achievementID)
	if err == storage.ErrAchievementNotFound {
		return ua, nil
	}
	if err != nil {
		return nil, err
	}

	if err := e.grantRewards(userID, achievement.XPReward, achievement.CoinReward); err != nil {
		return nil, err
	}
	ua.Achievement = achievement
	return ua, nil
}

// grantRewards is the shared read-modify-write over the user record. A
// missing user silently skips the grant, mirroring the missing-quest and
// missing-achievement cases: the progress or unlock record written by the
// caller stands either way. Not atomic across concurrent calls for the same
// user; the single-user demo scope tolerates that.
func (e *Engine) grantRewards(userID string, xp, coins int) error {
	user, err := e.store.GetUser(userID)
	if err == storage.ErrUserNotFound {
		return nil
	}
	if err != nil {
		return err
	}
	user.XP += xp
	user.Coins += coins
	user.Level = LevelForXP(user.XP)
	if err := e.store.UpdateUser(user); err != nil {
		return err
	}
	if e.onReward != nil {
		e.onReward()
	}
	return nil
}
