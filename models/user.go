// models/user.go
package models

import (
	"time"
)

type User struct {
	ID          string  `gorm:"primaryKey;size:64" json:"id"`
	Username    string  `gorm:"uniqueIndex;not null" json:"username"`
	DisplayName string  `gorm:"not null" json:"displayName"`
	Email       *string `gorm:"uniqueIndex" json:"email,omitempty"`
	Password    string  `json:"-"`
	IsGuest     bool    `gorm:"default:false" json:"isGuest"`

	// Progression
	Coins  int `gorm:"default:0" json:"coins"`
	XP     int `gorm:"default:0" json:"xp"`
	Level  int `gorm:"default:1" json:"level"`
	Streak int `gorm:"default:0" json:"streak"`

	// Timestamps
	LastActiveDate *time.Time `json:"lastActiveDate,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
}

type UserAchievement struct {
	ID            string    `gorm:"primaryKey;size:64" json:"id"`
	UserID        string    `gorm:"not null;index;size:64" json:"userId"`
	AchievementID string    `gorm:"not null;index;size:64" json:"achievementId"`
	UnlockedAt    time.Time `json:"unlockedAt"`

	Achievement *Achievement `gorm:"foreignKey:AchievementID" json:"achievement,omitempty"`
}

func (User) TableName() string {
	return "users"
}

func (UserAchievement) TableName() string {
	return "user_achievements"
}
