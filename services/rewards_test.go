package services

import (
	"testing"
	"time"

	"moneytree/models"
	"moneytree/storage"
)

func newTestStore(t *testing.T) *storage.MemStore {
	t.Helper()
	return storage.NewMemStoreWithClock(func() time.Time {
		return time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	})
}

func seedUser(t *testing.T, store storage.Store, xp, coins, level int) *models.User {
	t.Helper()
	user := &models.User{
		Username:    "alex",
		DisplayName: "Alex",
		XP:          xp,
		Coins:       coins,
		Level:       level,
	}
	if err := store.CreateUser(user); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

func TestLevelForXP(t *testing.T) {
	cases := []struct {
		xp    int
		level int
	}{
		{0, 1},
		{249, 1},
		{250, 2},
		{1250, 6},
		{1400, 6},
	}
	for _, tc := range cases {
		if got := LevelForXP(tc.xp); got != tc.level {
			t.Errorf("LevelForXP(%d) = %d, want %d", tc.xp, got, tc.level)
		}
	}
}

func TestCompleteQuestGrantsRewardsAndRelevels(t *testing.T) {
	store := newTestStore(t)
	user := seedUser(t, store, 1250, 500, 5)
	if err := store.CreateQuest(&models.Quest{
		ID:         "investment-fundamentals",
		XPReward:   150,
		CoinReward: 50,
		IsActive:   true,
	}); err != nil {
		t.Fatalf("seed quest: %v", err)
	}

	engine := NewEngine(store)
	var rewardFired int
	engine.SetRewardListener(func() { rewardFired++ })

	progress, err := engine.CompleteQuest(user.ID, "investment-fundamentals", 80, 300)
	if err != nil {
		t.Fatalf("complete quest: %v", err)
	}
	if !progress.IsCompleted || progress.Score != 80 || progress.TimeSpent != 300 {
		t.Fatalf("unexpected progress %+v", progress)
	}
	if progress.CompletedAt == nil {
		t.Fatal("expected completedAt set")
	}

	updated, _ := store.GetUser(user.ID)
	if updated.XP != 1400 {
		t.Fatalf("expected xp 1400, got %d", updated.XP)
	}
	if updated.Coins != 550 {
		t.Fatalf("expected coins 550, got %d", updated.Coins)
	}
	if updated.Level != 6 {
		t.Fatalf("expected level 6, got %d", updated.Level)
	}
	if rewardFired != 1 {
		t.Fatalf("expected one reward notification, got %d", rewardFired)
	}
}

func TestCompleteUnknownQuestKeepsProgressSkipsRewards(t *testing.T) {
	store := newTestStore(t)
	user := seedUser(t, store, 100, 50, 1)

	engine := NewEngine(store)
	progress, err := engine.CompleteQuest(user.ID, "no-such-quest", 40, 60)
	if err != nil {
		t.Fatalf("complete quest: %v", err)
	}
	if progress == nil || !progress.IsCompleted {
		t.Fatalf("expected completed progress record, got %+v", progress)
	}

	updated, _ := store.GetUser(user.ID)
	if updated.XP != 100 || updated.Coins != 50 {
		t.Fatalf("rewards granted for unknown quest: xp=%d coins=%d", updated.XP, updated.Coins)
	}
}

func TestCompleteQuestMissingUserKeepsProgress(t *testing.T) {
	store := newTestStore(t)
	if err := store.CreateQuest(&models.Quest{
		ID:         "investment-fundamentals",
		XPReward:   150,
		CoinReward: 50,
		IsActive:   true,
	}); err != nil {
		t.Fatalf("seed quest: %v", err)
	}

	engine := NewEngine(store)
	var rewardFired int
	engine.SetRewardListener(func() { rewardFired++ })

	progress, err := engine.CompleteQuest("ghost-user", "investment-fundamentals", 40, 60)
	if err != nil {
		t.Fatalf("complete quest: %v", err)
	}
	if progress == nil || !progress.IsCompleted || progress.Score != 40 {
		t.Fatalf("expected completed progress record, got %+v", progress)
	}
	if rewardFired != 0 {
		t.Fatalf("reward granted for missing user, listener fired %d times", rewardFired)
	}

	stored, err := store.GetUserQuestProgress("ghost-user", "investment-fundamentals")
	if err != nil {
		t.Fatalf("progress not persisted: %v", err)
	}
	if !stored.IsCompleted {
		t.Fatalf("persisted progress not completed: %+v", stored)
	}
}

func TestUnlockAchievementMissingUserKeepsRecord(t *testing.T) {
	store := newTestStore(t)
	if err := store.CreateAchievement(&models.Achievement{
		ID:         "budget-master",
		XPReward:   100,
		CoinReward: 50,
		IsActive:   true,
	}); err != nil {
		t.Fatalf("seed achievement: %v", err)
	}

	engine := NewEngine(store)
	ua, err := engine.UnlockAchievement("ghost-user", "budget-master")
	if err != nil {
		t.Fatalf("unlock: %v", err)
	}
	if ua == nil || ua.AchievementID != "budget-master" {
		t.Fatalf("expected unlock record, got %+v", ua)
	}

	unlocks, _ := store.GetUserAchievements("ghost-user")
	if len(unlocks) != 1 {
		t.Fatalf("expected persisted unlock, got %d", len(unlocks))
	}
}

func TestUnlockAchievementGrantsAndRelevels(t *testing.T) {
	store := newTestStore(t)
	user := seedUser(t, store, 240, 0, 1)
	if err := store.CreateAchievement(&models.Achievement{
		ID:         "budget-master",
		XPReward:   100,
		CoinReward: 50,
		IsActive:   true,
	}); err != nil {
		t.Fatalf("seed achievement: %v", err)
	}

	engine := NewEngine(store)
	ua, err := engine.UnlockAchievement(user.ID, "budget-master")
	if err != nil {
		t.Fatalf("unlock: %v", err)
	}
	if ua.Achievement == nil || ua.Achievement.ID != "budget-master" {
		t.Fatalf("expected joined achievement, got %+v", ua.Achievement)
	}

	updated, _ := store.GetUser(user.ID)
	if updated.XP != 340 || updated.Coins != 50 {
		t.Fatalf("expected xp 340 coins 50, got %d/%d", updated.XP, updated.Coins)
	}
	if updated.Level != 2 {
		t.Fatalf("expected level 2 after achievement xp, got %d", updated.Level)
	}
}

func TestDoubleUnlockDoubleGrants(t *testing.T) {
	store := newTestStore(t)
	user := seedUser(t, store, 0, 0, 1)
	if err := store.CreateAchievement(&models.Achievement{
		ID:         "budget-master",
		XPReward:   100,
		CoinReward: 50,
		IsActive:   true,
	}); err != nil {
		t.Fatalf("seed achievement: %v", err)
	}

	engine := NewEngine(store)
	for i := 0; i < 2; i++ {
		if _, err := engine.UnlockAchievement(user.ID, "budget-master"); err != nil {
			t.Fatalf("unlock %d: %v", i, err)
		}
	}

	unlocks, _ := store.GetUserAchievements(user.ID)
	if len(unlocks) != 2 {
		t.Fatalf("expected two unlock records, got %d", len(unlocks))
	}
	updated, _ := store.GetUser(user.ID)
	if updated.XP != 200 || updated.Coins != 100 {
		t.Fatalf("expected doubled rewards, got xp=%d coins=%d", updated.XP, updated.Coins)
	}
}

func TestUnlockUnknownAchievementRecordsWithoutRewards(t *testing.T) {
	store := newTestStore(t)
	user := seedUser(t, store, 0, 0, 1)

	engine := NewEngine(store)
	ua, err := engine.UnlockAchievement(user.ID, "ghost")
	if err != nil {
		t.Fatalf("unlock: %v", err)
	}
	if ua.Achievement != nil {
		t.Fatal("expected no joined achievement")
	}

	updated, _ := store.GetUser(user.ID)
	if updated.XP != 0 || updated.Coins != 0 {
		t.Fatalf("rewards granted for unknown achievement: %d/%d", updated.XP, updated.Coins)
	}
}

func TestRecordProgressMergesAnswers(t *testing.T) {
	store := newTestStore(t)
	engine := NewEngine(store)

	if _, err := engine.RecordProgress("u1", "q1", 1, map[string]string{"1": "a"}); err != nil {
		t.Fatalf("record: %v", err)
	}
	progress, err := engine.RecordProgress("u1", "q1", 2, map[string]string{"1": "a", "2": "b"})
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	if progress.CurrentQuestion != 2 {
		t.Fatalf("expected currentQuestion 2, got %d", progress.CurrentQuestion)
	}
	if len(progress.Answers) != 2 {
		t.Fatalf("expected two answers, got %v", progress.Answers)
	}
}
