package services

import (
	"testing"
	"time"

	"moneytree/models"
	"moneytree/storage"
)

func TestCleanupGuestsRemovesOnlyStaleGuests(t *testing.T) {
	store := storage.NewMemStore()

	old := time.Now().Add(-48 * time.Hour)
	recent := time.Now().Add(-time.Hour)

	staleGuest := &models.User{Username: "Guest_old", IsGuest: true, CreatedAt: old}
	freshGuest := &models.User{Username: "Guest_new", IsGuest: true, CreatedAt: recent}
	registered := &models.User{Username: "alex", CreatedAt: old}
	returningGuest := &models.User{Username: "Guest_back", IsGuest: true, CreatedAt: old, LastActiveDate: &recent}
	for _, user := range []*models.User{staleGuest, freshGuest, registered, returningGuest} {
		if err := store.CreateUser(user); err != nil {
			t.Fatalf("seed user: %v", err)
		}
	}

	// Stale guest data must go with the account.
	cq := 1
	if _, err := store.CreateOrUpdateUserProgress(staleGuest.ID, "q1", storage.ProgressUpdate{CurrentQuestion: &cq}); err != nil {
		t.Fatalf("seed progress: %v", err)
	}

	svc := NewCleanupService(store, time.Hour, 24*time.Hour)
	removed, err := svc.CleanupGuests()
	if err != nil {
		t.Fatalf("cleanup: %v", err)
	}
	if removed != 1 {
		t.Fatalf("expected 1 removal, got %d", removed)
	}

	if _, err := store.GetUser(staleGuest.ID); err != storage.ErrUserNotFound {
		t.Fatalf("stale guest still present: %v", err)
	}
	for _, user := range []*models.User{freshGuest, registered, returningGuest} {
		if _, err := store.GetUser(user.ID); err != nil {
			t.Fatalf("user %s removed unexpectedly: %v", user.Username, err)
		}
	}

	records, _ := store.GetUserProgress(staleGuest.ID)
	if len(records) != 0 {
		t.Fatalf("expected progress removed, got %d records", len(records))
	}
}

func TestCleanupServiceStartStop(t *testing.T) {
	svc := NewCleanupService(storage.NewMemStore(), 10*time.Millisecond, time.Hour)
	svc.Start()
	time.Sleep(30 * time.Millisecond)
	svc.Stop()
	// Stop is idempotent.
	svc.Stop()
}
