// catalog/loader.go - Optional YAML catalog overrides
package catalog

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"moneytree/models"
)

// File is the YAML document shape accepted from the catalog directory. Any
// entry whose id matches a built-in fixture replaces it; unknown ids are
// appended to the catalog.
type File struct {
	Quests       []questDoc       `yaml:"quests"`
	Achievements []achievementDoc `yaml:"achievements"`
	Tips         []tipDoc         `yaml:"tips"`
}

type questDoc struct {
	ID               string       `yaml:"id"`
	Title            string       `yaml:"title"`
	Description      string       `yaml:"description"`
	Category         string       `yaml:"category"`
	Difficulty       int          `yaml:"difficulty"`
	EstimatedMinutes int          `yaml:"estimated_minutes"`
	XPReward         int          `yaml:"xp_reward"`
	CoinReward       int          `yaml:"coin_reward"`
	Questions        []questionDoc `yaml:"questions"`
	Sections         []sectionDoc  `yaml:"educational_sections"`
}

type questionDoc struct {
	ID            string      `yaml:"id"`
	Question      string      `yaml:"question"`
	Options       []optionDoc `yaml:"options"`
	CorrectAnswer string      `yaml:"correct_answer"`
	Explanation   string      `yaml:"explanation"`
	AuricHint     string      `yaml:"auric_hint"`
}

type optionDoc struct {
	ID          string `yaml:"id"`
	Text        string `yaml:"text"`
	Explanation string `yaml:"explanation"`
}

type sectionDoc struct {
	ID           string              `yaml:"id"`
	Title        string              `yaml:"title"`
	Content      string              `yaml:"content"`
	ImageURL     string              `yaml:"image_url"`
	AuricComment string              `yaml:"auric_comment"`
	KeyPoints    []string            `yaml:"key_points"`
	Examples     map[string][]string `yaml:"examples"`
}

type achievementDoc struct {
	ID          string `yaml:"id"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Icon        string `yaml:"icon"`
	Category    string `yaml:"category"`
	Requirements struct {
		Type     string `yaml:"type"`
		Category string `yaml:"category"`
		Streak   int    `yaml:"streak"`
	} `yaml:"requirements"`
	XPReward   int `yaml:"xp_reward"`
	CoinReward int `yaml:"coin_reward"`
}

type tipDoc struct {
	ID       string `yaml:"id"`
	Content  string `yaml:"content"`
	Category string `yaml:"category"`
	Context  string `yaml:"context"`
}

// LoadOverrides reads every *.yaml/*.yml file in dir and merges it over the
// built-in fixtures. A missing or empty dir is not an error.
func LoadOverrides(dir string, quests []models.Quest, achievements []models.Achievement, tips []models.AuricTip) ([]models.Quest, []models.Achievement, []models.AuricTip, error) {
	if dir == "" {
		return quests, achievements, tips, nil
	}
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return quests, achievements, tips, nil
	}

	var files []string
	for _, pattern := range []string{"*.yaml", "*.yml"} {
		matched, err := filepath.Glob(filepath.Join(dir, pattern))
		if err != nil {
			return nil, nil, nil, fmt.Errorf("failed to read catalog directory: %w", err)
		}
		files = append(files, matched...)
	}

	for _, path := range files {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
		var doc File
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, nil, nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
		for _, q := range doc.Quests {
			quests = mergeQuest(quests, q.toModel())
		}
		for _, a := range doc.Achievements {
			achievements = mergeAchievement(achievements, a.toModel())
		}
		for _, t := range doc.Tips {
			tips = mergeTip(tips, t.toModel())
		}
	}
	return quests, achievements, tips, nil
}

func mergeQuest(quests []models.Quest, quest models.Quest) []models.Quest {
	for i := range quests {
		if quests[i].ID == quest.ID {
			quests[i] = quest
			return quests
		}
	}
	return append(quests, quest)
}

func mergeAchievement(achievements []models.Achievement, achievement models.Achievement) []models.Achievement {
	for i := range achievements {
		if achievements[i].ID == achievement.ID {
			achievements[i] = achievement
			return achievements
		}
	}
	return append(achievements, achievement)
}

func mergeTip(tips []models.AuricTip, tip models.AuricTip) []models.AuricTip {
	for i := range tips {
		if tips[i].ID == tip.ID {
			tips[i] = tip
			return tips
		}
	}
	return append(tips, tip)
}

func (d questDoc) toModel() models.Quest {
	quest := models.Quest{
		ID:               d.ID,
		Title:            d.Title,
		Description:      d.Description,
		Category:         d.Category,
		Difficulty:       d.Difficulty,
		EstimatedMinutes: d.EstimatedMinutes,
		XPReward:         d.XPReward,
		CoinReward:       d.CoinReward,
		IsActive:         true,
	}
	for _, q := range d.Questions {
		question := models.Question{
			ID:            q.ID,
			Question:      q.Question,
			CorrectAnswer: q.CorrectAnswer,
			Explanation:   q.Explanation,
			AuricHint:     q.AuricHint,
		}
		for _, o := range q.Options {
			question.Options = append(question.Options, models.AnswerOption{
				ID:          o.ID,
				Text:        o.Text,
				Explanation: o.Explanation,
			})
		}
		quest.Questions = append(quest.Questions, question)
	}
	for _, s := range d.Sections {
		quest.EducationalSections = append(quest.EducationalSections, models.EducationalSection{
			ID:           s.ID,
			Title:        s.Title,
			Content:      s.Content,
			ImageURL:     s.ImageURL,
			AuricComment: s.AuricComment,
			KeyPoints:    s.KeyPoints,
			Examples:     s.Examples,
		})
	}
	return quest
}

func (d achievementDoc) toModel() models.Achievement {
	return models.Achievement{
		ID:          d.ID,
		Title:       d.Title,
		Description: d.Description,
		Icon:        d.Icon,
		Category:    d.Category,
		Requirements: models.Requirements{
			Type:     d.Requirements.Type,
			Category: d.Requirements.Category,
			Streak:   d.Requirements.Streak,
		},
		XPReward:   d.XPReward,
		CoinReward: d.CoinReward,
		IsActive:   true,
	}
}

func (d tipDoc) toModel() models.AuricTip {
	return models.AuricTip{
		ID:       d.ID,
		Content:  d.Content,
		Category: d.Category,
		Context:  d.Context,
		IsActive: true,
	}
}
