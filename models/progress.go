// models/progress.go
package models

import (
	"time"
)

// UserProgress tracks a user's resume/completion state for one quest. At most
// one record exists per (user, quest) pair; updates merge in place.
type UserProgress struct {
	ID              string            `gorm:"primaryKey;size:64" json:"id"`
	UserID          string            `gorm:"not null;size:64;uniqueIndex:idx_progress_user_quest" json:"userId"`
	QuestID         string            `gorm:"not null;size:64;uniqueIndex:idx_progress_user_quest" json:"questId"`
	IsCompleted     bool              `gorm:"default:false" json:"isCompleted"`
	CurrentQuestion int               `gorm:"default:0" json:"currentQuestion"`
	Score           int               `gorm:"default:0" json:"score"`
	TimeSpent       int               `gorm:"default:0" json:"timeSpent"` // seconds
	Answers         map[string]string `gorm:"serializer:json" json:"answers"`
	CompletedAt     *time.Time        `json:"completedAt,omitempty"`
	StartedAt       time.Time         `json:"startedAt"`
}

func (UserProgress) TableName() string {
	return "user_progress"
}
