package services

import (
	"testing"

	"moneytree/models"
)

func TestBuildDashboardCompletionPercent(t *testing.T) {
	store := newTestStore(t)
	user := seedUser(t, store, 1250, 500, 5)

	if err := store.CreateQuest(&models.Quest{
		ID:       "q1",
		Category: "budgeting",
		Questions: []models.Question{
			{ID: "1"}, {ID: "2"}, {ID: "3"}, {ID: "4"},
		},
		IsActive: true,
	}); err != nil {
		t.Fatalf("seed quest: %v", err)
	}
	if err := store.CreateQuest(&models.Quest{
		ID:        "q2",
		Category:  "savings",
		Questions: []models.Question{{ID: "1"}},
		IsActive:  true,
	}); err != nil {
		t.Fatalf("seed quest: %v", err)
	}

	engine := NewEngine(store)
	if _, err := engine.RecordProgress(user.ID, "q1", 1, map[string]string{"1": "a"}); err != nil {
		t.Fatalf("record: %v", err)
	}
	if _, err := engine.CompleteQuest(user.ID, "q2", 10, 30); err != nil {
		t.Fatalf("complete: %v", err)
	}

	dashboard, err := BuildDashboard(store, user.ID)
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	if len(dashboard.Quests) != 2 {
		t.Fatalf("expected 2 quests, got %d", len(dashboard.Quests))
	}
	byID := map[string]QuestStatus{}
	for _, status := range dashboard.Quests {
		byID[status.Quest.ID] = status
	}

	if got := byID["q1"].CompletionPercent; got != 25 {
		t.Fatalf("expected 25%% on q1, got %v", got)
	}
	if got := byID["q2"].CompletionPercent; got != 100 {
		t.Fatalf("expected 100%% on q2, got %v", got)
	}
	if dashboard.CompletedQuests != 1 {
		t.Fatalf("expected 1 completed quest, got %d", dashboard.CompletedQuests)
	}
	if dashboard.XPToNextLevel != dashboard.User.Level*XPPerLevel-dashboard.User.XP {
		t.Fatalf("xpToNextLevel inconsistent: %d", dashboard.XPToNextLevel)
	}
}

func TestBuildDashboardUnknownUser(t *testing.T) {
	store := newTestStore(t)
	if _, err := BuildDashboard(store, "ghost"); err == nil {
		t.Fatal("expected error for unknown user")
	}
}
