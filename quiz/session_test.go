package quiz

import (
	"testing"
	"time"

	"moneytree/models"
)

func twoQuestionQuest() models.Quest {
	return models.Quest{
		ID:         "test-quest",
		Title:      "Test Quest",
		XPReward:   150,
		CoinReward: 50,
		Questions: []models.Question{
			{
				ID:       "1",
				Question: "First question?",
				Options: []models.AnswerOption{
					{ID: "a", Text: "Right"},
					{ID: "b", Text: "Wrong"},
				},
				CorrectAnswer: "a",
				Explanation:   "A is right.",
			},
			{
				ID:       "2",
				Question: "Second question?",
				Options: []models.AnswerOption{
					{ID: "a", Text: "Wrong"},
					{ID: "b", Text: "Right"},
				},
				CorrectAnswer: "b",
				Explanation:   "B is right.",
			},
		},
		EducationalSections: []models.EducationalSection{
			{ID: "intro", Title: "Intro", Content: "Read me first."},
		},
		IsActive: true,
	}
}

func TestSessionWalkthrough(t *testing.T) {
	var progressCalls []int
	var completed bool
	var finalScore, xp, coins int

	s := NewSession(twoQuestionQuest(),
		func(questID string, currentQuestion int, answers map[string]string) {
			progressCalls = append(progressCalls, currentQuestion)
		},
		func(questID string, score, xpReward, coinReward int) {
			completed = true
			finalScore, xp, coins = score, xpReward, coinReward
		})

	if s.State() != StateShowingEducation {
		t.Fatalf("expected education first, got %v", s.State())
	}
	if _, ok := s.CurrentSection(); !ok {
		t.Fatal("expected a section on screen")
	}
	if err := s.Continue(); err != nil {
		t.Fatalf("continue past education: %v", err)
	}
	if s.State() != StateAnsweringQuestion {
		t.Fatalf("expected answering, got %v", s.State())
	}

	// First question answered correctly.
	if err := s.Select("a"); err != nil {
		t.Fatalf("select: %v", err)
	}
	if err := s.Submit(); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if s.State() != StateShowingFeedback {
		t.Fatalf("expected feedback, got %v", s.State())
	}
	if fb := s.Feedback(); !fb.Correct || fb.Explanation != "A is right." {
		t.Fatalf("unexpected feedback %+v", fb)
	}
	if err := s.Continue(); err != nil {
		t.Fatalf("continue past feedback: %v", err)
	}

	// Second question answered incorrectly, then continue completes.
	if err := s.Select("a"); err != nil {
		t.Fatalf("select: %v", err)
	}
	if err := s.Submit(); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if fb := s.Feedback(); fb.Correct {
		t.Fatal("expected incorrect feedback")
	}
	if completed {
		t.Fatal("quest completed before continuing past last feedback")
	}
	if err := s.Continue(); err != nil {
		t.Fatalf("final continue: %v", err)
	}

	if s.State() != StateQuestComplete {
		t.Fatalf("expected complete, got %v", s.State())
	}
	if !completed {
		t.Fatal("completion callback never fired")
	}
	if finalScore != 10 {
		t.Fatalf("expected score 10, got %d", finalScore)
	}
	if xp != 150 || coins != 50 {
		t.Fatalf("expected rewards 150/50, got %d/%d", xp, coins)
	}
	if len(progressCalls) != 2 || progressCalls[0] != 1 || progressCalls[1] != 2 {
		t.Fatalf("unexpected progress calls %v", progressCalls)
	}
}

func TestSubmitRequiresSelection(t *testing.T) {
	s := NewSession(twoQuestionQuest(), nil, nil)
	_ = s.Continue()

	if err := s.Submit(); err != ErrNoSelection {
		t.Fatalf("expected ErrNoSelection, got %v", err)
	}
	if err := s.Select("nope"); err != ErrUnknownOption {
		t.Fatalf("expected ErrUnknownOption, got %v", err)
	}
}

func TestSkipRecordsEmptyAnswerAndCompletes(t *testing.T) {
	var completed bool
	var finalScore int
	s := NewSession(twoQuestionQuest(), nil,
		func(questID string, score, xpReward, coinReward int) {
			completed = true
			finalScore = score
		})
	_ = s.Continue()

	if err := s.Skip(); err != nil {
		t.Fatalf("skip: %v", err)
	}
	if s.State() != StateAnsweringQuestion {
		t.Fatalf("expected answering after skip, got %v", s.State())
	}
	if err := s.Skip(); err != nil {
		t.Fatalf("skip last: %v", err)
	}
	if !completed || finalScore != 0 {
		t.Fatalf("expected completion with score 0, got completed=%v score=%d", completed, finalScore)
	}
	if s.answers["1"] != "" || s.answers["2"] != "" {
		t.Fatalf("expected empty answers recorded, got %v", s.answers)
	}
}

func TestPreviousRestoresAnswer(t *testing.T) {
	s := NewSession(twoQuestionQuest(), nil, nil)
	_ = s.Continue()

	if err := s.Previous(); err != ErrInvalidTransition {
		t.Fatalf("expected ErrInvalidTransition on first question, got %v", err)
	}

	_ = s.Select("a")
	_ = s.Submit()

	if err := s.Previous(); err != ErrInvalidTransition {
		t.Fatalf("expected ErrInvalidTransition during feedback, got %v", err)
	}
	_ = s.Continue()

	if err := s.Previous(); err != nil {
		t.Fatalf("previous: %v", err)
	}
	if s.QuestionIndex() != 0 {
		t.Fatalf("expected index 0, got %d", s.QuestionIndex())
	}
	if s.selected != "a" {
		t.Fatalf("expected restored answer a, got %q", s.selected)
	}
}

func TestMidpointSectionShownOnce(t *testing.T) {
	quest := twoQuestionQuest()
	quest.Questions = append(quest.Questions, models.Question{
		ID:            "3",
		Question:      "Third?",
		Options:       []models.AnswerOption{{ID: "a", Text: "Yes"}},
		CorrectAnswer: "a",
	}, models.Question{
		ID:            "4",
		Question:      "Fourth?",
		Options:       []models.AnswerOption{{ID: "a", Text: "Yes"}},
		CorrectAnswer: "a",
	})
	quest.EducationalSections = append(quest.EducationalSections,
		models.EducationalSection{ID: "mid", Title: "Midpoint"})

	s := NewSession(quest, nil, nil)
	_ = s.Continue()

	answer := func() {
		_ = s.Select("a")
		_ = s.Submit()
		_ = s.Continue()
	}

	answer() // index 1
	answer() // index 2, the midpoint of 4 questions
	if s.State() != StateShowingEducation {
		t.Fatalf("expected midpoint section, got %v", s.State())
	}
	section, _ := s.CurrentSection()
	if section.ID != "mid" {
		t.Fatalf("expected mid section, got %q", section.ID)
	}
	if err := s.Continue(); err != nil {
		t.Fatalf("continue: %v", err)
	}

	// Going back and forward again must not re-show the section.
	_ = s.Previous()
	_ = s.Select("a")
	_ = s.Submit()
	_ = s.Continue()
	if s.State() != StateAnsweringQuestion {
		t.Fatalf("midpoint section shown twice, state %v", s.State())
	}
}

func TestCloseResetsSession(t *testing.T) {
	clock := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	s := NewSessionWithClock(twoQuestionQuest(), nil, nil, func() time.Time { return clock })
	_ = s.Continue()
	_ = s.Select("a")
	_ = s.Submit()

	s.Close()

	if s.State() != StateShowingEducation {
		t.Fatalf("expected fresh session to show education, got %v", s.State())
	}
	if s.Score() != 0 || s.QuestionIndex() != 0 || len(s.answers) != 0 {
		t.Fatalf("session not reset: score=%d index=%d answers=%v", s.Score(), s.QuestionIndex(), s.answers)
	}
}
