// catalog/seed.go - Fixture seeding
package catalog

import (
	"fmt"
	"log"
	"time"

	"moneytree/models"
	"moneytree/storage"
)

// DefaultUserID identifies the demo user created at startup.
const DefaultUserID = "user-1"

// DefaultUser is the seeded demo account.
func DefaultUser() models.User {
	email := "alex@example.com"
	now := time.Now()
	return models.User{
		ID:             DefaultUserID,
		Username:       "alex_johnson",
		DisplayName:    "Alex Johnson",
		Email:          &email,
		Coins:          500,
		XP:             1250,
		Level:          5,
		Streak:         7,
		LastActiveDate: &now,
		CreatedAt:      now,
	}
}

// Seed loads the quest/achievement/tip catalogs (built-ins merged with any
// YAML overrides from catalogDir) and the demo user into the store. Existing
// records keep their ids, so seeding an already-populated postgres backend is
// a no-op for users and an upsert for catalog data.
func Seed(store storage.Store, catalogDir string) error {
	quests, achievements, tips, err := LoadOverrides(catalogDir, Quests(), Achievements(), Tips())
	if err != nil {
		return err
	}

	for i := range quests {
		if err := validateQuest(&quests[i]); err != nil {
			return err
		}
		if err := store.CreateQuest(&quests[i]); err != nil {
			return fmt.Errorf("failed to seed quest %s: %w", quests[i].ID, err)
		}
	}
	for i := range achievements {
		if err := store.CreateAchievement(&achievements[i]); err != nil {
			return fmt.Errorf("failed to seed achievement %s: %w", achievements[i].ID, err)
		}
	}
	for i := range tips {
		if err := store.CreateTip(&tips[i]); err != nil {
			return fmt.Errorf("failed to seed tip %s: %w", tips[i].ID, err)
		}
	}

	if _, err := store.GetUser(DefaultUserID); err != nil {
		user := DefaultUser()
		if err := store.CreateUser(&user); err != nil && err != storage.ErrUsernameTaken {
			return fmt.Errorf("failed to seed default user: %w", err)
		}
	}

	log.Printf("Catalog seeded: %d quests, %d achievements, %d tips", len(quests), len(achievements), len(tips))
	return nil
}

// validateQuest rejects catalog entries whose correct answer points at a
// missing option.
func validateQuest(quest *models.Quest) error {
	for _, question := range quest.Questions {
		found := false
		for _, option := range question.Options {
			if option.ID == question.CorrectAnswer {
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("quest %s question %s: correct answer %q matches no option",
				quest.ID, question.ID, question.CorrectAnswer)
		}
	}
	return nil
}
