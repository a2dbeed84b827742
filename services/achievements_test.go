package services

import (
	"testing"

	"moneytree/models"
	"moneytree/storage"
)

func seedCategoryQuests(t *testing.T, store storage.Store) {
	t.Helper()
	quests := []models.Quest{
		{ID: "b1", Category: "budgeting", XPReward: 100, CoinReward: 30, IsActive: true},
		{ID: "b2", Category: "budgeting", XPReward: 100, CoinReward: 30, IsActive: true},
		{ID: "i1", Category: "investing", XPReward: 150, CoinReward: 50, IsActive: true},
	}
	for i := range quests {
		if err := store.CreateQuest(&quests[i]); err != nil {
			t.Fatalf("seed quest: %v", err)
		}
	}
}

func seedCategoryAchievements(t *testing.T, store storage.Store) {
	t.Helper()
	achievements := []models.Achievement{
		{
			ID:           "budget-master",
			Requirements: models.Requirements{Type: models.RequirementCompleteCategory, Category: "budgeting"},
			XPReward:     100,
			CoinReward:   50,
			IsActive:     true,
		},
		{
			ID:           "golden-investor",
			Requirements: models.Requirements{Type: models.RequirementStreakAndCategory, Category: "investing", Streak: 7},
			XPReward:     200,
			CoinReward:   100,
			IsActive:     true,
		},
	}
	for i := range achievements {
		if err := store.CreateAchievement(&achievements[i]); err != nil {
			t.Fatalf("seed achievement: %v", err)
		}
	}
}

func TestCheckAchievementsUnlocksCompletedCategory(t *testing.T) {
	store := newTestStore(t)
	user := seedUser(t, store, 0, 0, 1)
	seedCategoryQuests(t, store)
	seedCategoryAchievements(t, store)

	engine := NewEngine(store)

	// One of two budgeting quests done, nothing unlocks.
	if _, err := engine.CompleteQuest(user.ID, "b1", 50, 60); err != nil {
		t.Fatalf("complete b1: %v", err)
	}
	unlocked, err := engine.CheckAchievements(user.ID)
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if len(unlocked) != 0 {
		t.Fatalf("expected no unlocks, got %v", unlocked)
	}

	if _, err := engine.CompleteQuest(user.ID, "b2", 50, 60); err != nil {
		t.Fatalf("complete b2: %v", err)
	}
	unlocked, err = engine.CheckAchievements(user.ID)
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if len(unlocked) != 1 || unlocked[0].ID != "budget-master" {
		t.Fatalf("expected budget-master, got %v", unlocked)
	}

	// The checker is idempotent even though explicit unlocks are not.
	again, err := engine.CheckAchievements(user.ID)
	if err != nil {
		t.Fatalf("check again: %v", err)
	}
	if len(again) != 0 {
		t.Fatalf("expected no repeat unlocks, got %v", again)
	}
}

func TestCheckAchievementsStreakRequirement(t *testing.T) {
	store := newTestStore(t)
	user := seedUser(t, store, 0, 0, 1)
	seedCategoryQuests(t, store)
	seedCategoryAchievements(t, store)

	engine := NewEngine(store)
	if _, err := engine.CompleteQuest(user.ID, "i1", 70, 120); err != nil {
		t.Fatalf("complete i1: %v", err)
	}

	// Category done but streak too low.
	unlocked, err := engine.CheckAchievements(user.ID)
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	for _, a := range unlocked {
		if a.ID == "golden-investor" {
			t.Fatal("golden-investor unlocked without streak")
		}
	}

	fresh, _ := store.GetUser(user.ID)
	fresh.Streak = 7
	if err := store.UpdateUser(fresh); err != nil {
		t.Fatalf("update streak: %v", err)
	}

	unlocked, err = engine.CheckAchievements(user.ID)
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if len(unlocked) != 1 || unlocked[0].ID != "golden-investor" {
		t.Fatalf("expected golden-investor, got %v", unlocked)
	}
}
