// models/achievement.go
package models

// Requirement types understood by the unlock checker.
const (
	RequirementCompleteCategory  = "complete_category"
	RequirementStreakAndCategory = "streak_and_category"
)

// Requirements describes when an achievement unlocks. Type selects which of
// the remaining fields apply.
type Requirements struct {
	Type     string `json:"type"`
	Category string `json:"category,omitempty"`
	Streak   int    `json:"streak,omitempty"`
}

type Achievement struct {
	ID           string       `gorm:"primaryKey;size:64" json:"id"`
	Title        string       `gorm:"not null;size:200" json:"title"`
	Description  string       `gorm:"not null" json:"description"`
	Icon         string       `gorm:"size:50" json:"icon"`
	Category     string       `gorm:"not null;index;size:50" json:"category"`
	Requirements Requirements `gorm:"serializer:json" json:"requirements"`

	// Rewards
	XPReward   int `gorm:"default:50" json:"xpReward"`
	CoinReward int `gorm:"default:25" json:"coinReward"`

	IsActive bool `gorm:"default:true" json:"isActive"`
}

func (Achievement) TableName() string {
	return "achievements"
}
