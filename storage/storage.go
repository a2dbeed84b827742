// storage/storage.go - Store contracts shared by the memory and postgres backends
package storage

import (
	"errors"
	"time"

	"moneytree/models"
)

var (
	// ErrUserNotFound is returned when no user matches the id or username.
	ErrUserNotFound = errors.New("user not found")
	// ErrUsernameTaken is returned when creating a user with a username or
	// email already in use.
	ErrUsernameTaken = errors.New("username or email already taken")
	// ErrQuestNotFound is returned when the quest catalog has no such id.
	ErrQuestNotFound = errors.New("quest not found")
	// ErrProgressNotFound is returned when a (user, quest) pair has no record.
	ErrProgressNotFound = errors.New("progress not found")
	// ErrAchievementNotFound is returned when no achievement matches the id.
	ErrAchievementNotFound = errors.New("achievement not found")
)

// ProgressUpdate carries the fields of a progress upsert. Nil fields are left
// untouched on an existing record, so a resume-pointer update cannot clobber a
// completion flag written earlier.
type ProgressUpdate struct {
	IsCompleted     *bool
	CurrentQuestion *int
	Score           *int
	TimeSpent       *int
	Answers         map[string]string
	CompletedAt     *time.Time
}

// Store is the repository boundary between the HTTP/engine layers and
// whatever holds the data. The memory backend is authoritative for semantics;
// the postgres backend mirrors them.
type Store interface {
	// Users
	GetUser(id string) (*models.User, error)
	GetUserByUsername(username string) (*models.User, error)
	CreateUser(user *models.User) error
	UpdateUser(user *models.User) error
	DeleteUser(id string) error
	GetAllUsers() ([]models.User, error)

	// Quest catalog
	GetAllQuests() ([]models.Quest, error)
	GetQuest(id string) (*models.Quest, error)
	CreateQuest(quest *models.Quest) error

	// Progress
	GetUserProgress(userID string) ([]models.UserProgress, error)
	GetUserQuestProgress(userID, questID string) (*models.UserProgress, error)
	CreateOrUpdateUserProgress(userID, questID string, upd ProgressUpdate) (*models.UserProgress, error)

	// Achievements
	GetAllAchievements() ([]models.Achievement, error)
	GetAchievement(id string) (*models.Achievement, error)
	CreateAchievement(achievement *models.Achievement) error
	GetUserAchievements(userID string) ([]models.UserAchievement, error)
	CreateUserAchievement(ua *models.UserAchievement) error

	// Auric tips
	GetActiveTips() ([]models.AuricTip, error)
	CreateTip(tip *models.AuricTip) error
}
