// models/tip.go
package models

// Tip categories.
const (
	TipWelcome      = "welcome"
	TipMotivational = "motivational"
	TipEducational  = "educational"
	TipCelebration  = "celebration"
)

// AuricTip is one line of mascot flavor text. Context narrows when a tip
// should be surfaced (e.g. quest_complete, investment_question).
type AuricTip struct {
	ID       string `gorm:"primaryKey;size:64" json:"id"`
	Content  string `gorm:"not null;type:text" json:"content"`
	Category string `gorm:"not null;index;size:50" json:"category"`
	Context  string `gorm:"size:100" json:"context,omitempty"`
	IsActive bool   `gorm:"default:true" json:"isActive"`
}

func (AuricTip) TableName() string {
	return "auric_tips"
}
