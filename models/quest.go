// models/quest.go
package models

import (
	"time"
)

// Quest is a themed quiz bundle: questions, educational sections, and the
// rewards granted on completion. Catalog data is immutable after load.
type Quest struct {
	ID               string `gorm:"primaryKey;size:64" json:"id"`
	Title            string `gorm:"not null;size:200" json:"title"`
	Description      string `gorm:"type:text" json:"description"`
	Category         string `gorm:"not null;index;size:50" json:"category"` // budgeting, investing, savings, ...
	Difficulty       int    `gorm:"default:1" json:"difficulty"`            // 1-5
	EstimatedMinutes int    `gorm:"default:15" json:"estimatedMinutes"`
	XPReward         int    `gorm:"default:100" json:"xpReward"`
	CoinReward       int    `gorm:"default:25" json:"coinReward"`

	Questions           []Question           `gorm:"serializer:json" json:"questions"`
	EducationalSections []EducationalSection `gorm:"serializer:json" json:"educationalContent"`

	IsActive  bool      `gorm:"default:true" json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
}

// Question is a single multiple-choice question. CorrectAnswer always matches
// one of the option ids.
type Question struct {
	ID            string         `json:"id"`
	Question      string         `json:"question"`
	Options       []AnswerOption `json:"options"`
	CorrectAnswer string         `json:"correctAnswer"`
	Explanation   string         `json:"explanation"`
	AuricHint     string         `json:"auricHint,omitempty"`
}

type AnswerOption struct {
	ID          string `json:"id"`
	Text        string `json:"text"`
	Explanation string `json:"explanation"`
}

// EducationalSection is display-only content shown before question blocks.
type EducationalSection struct {
	ID           string              `json:"id"`
	Title        string              `json:"title"`
	Content      string              `json:"content"`
	ImageURL     string              `json:"imageUrl,omitempty"`
	AuricComment string              `json:"auricComment,omitempty"`
	KeyPoints    []string            `json:"keyPoints,omitempty"`
	Examples     map[string][]string `json:"examples,omitempty"`
}

// QuestionByID returns the question with the given id, if present.
func (q *Quest) QuestionByID(id string) (Question, bool) {
	for _, question := range q.Questions {
		if question.ID == id {
			return question, true
		}
	}
	return Question{}, false
}

func (Quest) TableName() string {
	return "quests"
}
