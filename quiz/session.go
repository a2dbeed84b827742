// quiz/session.go - Quest play-through state machine
package quiz

import (
	"errors"
	"time"

	"moneytree/models"
)

// State enumerates where a play-through currently is. The flow is
// ShowingEducation -> AnsweringQuestion -> ShowingFeedback -> next question or
// QuestComplete, with Skip and Previous as side transitions.
type State int

const (
	StateShowingEducation State = iota
	StateAnsweringQuestion
	StateShowingFeedback
	StateQuestComplete
)

func (s State) String() string {
	switch s {
	case StateShowingEducation:
		return "showing_education"
	case StateAnsweringQuestion:
		return "answering_question"
	case StateShowingFeedback:
		return "showing_feedback"
	case StateQuestComplete:
		return "quest_complete"
	}
	return "unknown"
}

var (
	ErrNoSelection       = errors.New("no answer selected")
	ErrUnknownOption     = errors.New("option not in current question")
	ErrInvalidTransition = errors.New("action not allowed in current state")
)

// Feedback is what the user sees after submitting an answer.
type Feedback struct {
	Correct     bool
	Message     string
	Explanation string
}

const (
	correctMessage   = "Correct! Your treasure of knowledge grows!"
	incorrectMessage = "Not quite - but every attempt makes you wiser."
)

// ProgressFunc receives the resume pointer and answers after each submission,
// mirroring the progress-update API call.
type ProgressFunc func(questID string, currentQuestion int, answers map[string]string)

// CompleteFunc fires once when the last question is resolved.
type CompleteFunc func(questID string, finalScore, xpReward, coinReward int)

// Session drives one play-through of a quest. All state is session-local;
// closing the session never reverts anything already persisted.
type Session struct {
	quest models.Quest

	state        State
	index        int
	selected     string
	answers      map[string]string
	score        int
	seenSections map[string]bool
	feedback     Feedback
	startedAt    time.Time
	now          func() time.Time

	onProgress ProgressFunc
	onComplete CompleteFunc
}

func NewSession(quest models.Quest, onProgress ProgressFunc, onComplete CompleteFunc) *Session {
	return NewSessionWithClock(quest, onProgress, onComplete, time.Now)
}

// NewSessionWithClock injects the clock for deterministic time-spent values.
func NewSessionWithClock(quest models.Quest, onProgress ProgressFunc, onComplete CompleteFunc, now func() time.Time) *Session {
	s := &Session{
		quest:      quest,
		now:        now,
		onProgress: onProgress,
		onComplete: onComplete,
	}
	s.reset()
	return s
}

func (s *Session) reset() {
	s.index = 0
	s.selected = ""
	s.answers = map[string]string{}
	s.score = 0
	s.seenSections = map[string]bool{}
	s.feedback = Feedback{}
	s.startedAt = s.now()
	s.state = StateAnsweringQuestion
	if _, ok := s.pendingSection(); ok {
		s.state = StateShowingEducation
	}
}

// pendingSection returns the unseen section gated on the current question
// index: the first section before question 0, the second at the question-count
// midpoint.
func (s *Session) pendingSection() (models.EducationalSection, bool) {
	sections := s.quest.EducationalSections
	idx := -1
	switch {
	case s.index == 0 && len(sections) > 0:
		idx = 0
	case len(s.quest.Questions) > 1 && s.index == len(s.quest.Questions)/2 && len(sections) > 1:
		idx = 1
	}
	if idx < 0 || s.seenSections[sections[idx].ID] {
		return models.EducationalSection{}, false
	}
	return sections[idx], true
}

// State reports the current machine state.
func (s *Session) State() State { return s.state }

// Score reports the running score.
func (s *Session) Score() int { return s.score }

// QuestionIndex reports the resume pointer.
func (s *Session) QuestionIndex() int { return s.index }

// CurrentQuestion returns the question being answered.
func (s *Session) CurrentQuestion() (models.Question, bool) {
	if s.index < 0 || s.index >= len(s.quest.Questions) {
		return models.Question{}, false
	}
	return s.quest.Questions[s.index], true
}

// CurrentSection returns the educational section on screen, if any.
func (s *Session) CurrentSection() (models.EducationalSection, bool) {
	if s.state != StateShowingEducation {
		return models.EducationalSection{}, false
	}
	return s.pendingSection()
}

// Hint returns the mascot hint for the current question.
func (s *Session) Hint() string {
	question, ok := s.CurrentQuestion()
	if !ok {
		return ""
	}
	return question.AuricHint
}

// Feedback returns what was shown after the last submission.
func (s *Session) Feedback() Feedback { return s.feedback }

// TimeSpent reports seconds since the session opened.
func (s *Session) TimeSpent() int {
	return int(s.now().Sub(s.startedAt) / time.Second)
}

// Select records the option the user has picked for the current question.
func (s *Session) Select(optionID string) error {
	if s.state != StateAnsweringQuestion {
		return ErrInvalidTransition
	}
	question, ok := s.CurrentQuestion()
	if !ok {
		return ErrInvalidTransition
	}
	if _, ok := optionByID(question, optionID); !ok {
		return ErrUnknownOption
	}
	s.selected = optionID
	return nil
}

// Continue advances past an educational section or past feedback. Continuing
// from the feedback of the last question completes the quest.
func (s *Session) Continue() error {
	switch s.state {
	case StateShowingEducation:
		section, ok := s.pendingSection()
		if !ok {
			return ErrInvalidTransition
		}
		s.seenSections[section.ID] = true
		s.state = StateAnsweringQuestion
		return nil
	case StateShowingFeedback:
		if s.index == len(s.quest.Questions)-1 {
			s.complete()
			return nil
		}
		s.advance()
		return nil
	}
	return ErrInvalidTransition
}

// Submit resolves the current question with the selected option, records the
// answer through the progress sink, and shows feedback.
func (s *Session) Submit() error {
	if s.state != StateAnsweringQuestion {
		return ErrInvalidTransition
	}
	if s.selected == "" {
		return ErrNoSelection
	}
	question, ok := s.CurrentQuestion()
	if !ok {
		return ErrInvalidTransition
	}

	s.answers[question.ID] = s.selected
	correct := s.selected == question.CorrectAnswer
	if correct {
		s.score += pointsPerCorrect
	}

	if s.onProgress != nil {
		s.onProgress(s.quest.ID, s.index+1, copyAnswers(s.answers))
	}

	s.feedback = Feedback{
		Correct:     correct,
		Message:     incorrectMessage,
		Explanation: question.Explanation,
	}
	if correct {
		s.feedback.Message = correctMessage
	}
	s.state = StateShowingFeedback
	return nil
}

// Skip records an empty answer and moves on, bypassing feedback. Skipping the
// last question completes the quest with the score as it stands.
func (s *Session) Skip() error {
	if s.state != StateAnsweringQuestion {
		return ErrInvalidTransition
	}
	question, ok := s.CurrentQuestion()
	if !ok {
		return ErrInvalidTransition
	}
	s.answers[question.ID] = ""

	if s.index == len(s.quest.Questions)-1 {
		s.complete()
		return nil
	}
	s.advance()
	return nil
}

// Previous steps back one question and restores its recorded answer. Not
// available on the first question or while feedback is showing.
func (s *Session) Previous() error {
	if s.state == StateShowingFeedback || s.index == 0 {
		return ErrInvalidTransition
	}
	s.index--
	question := s.quest.Questions[s.index]
	s.selected = s.answers[question.ID]
	s.state = StateAnsweringQuestion
	return nil
}

// Close resets all session-local state. Server-side progress is untouched.
func (s *Session) Close() {
	s.reset()
}

func (s *Session) advance() {
	s.index++
	s.selected = ""
	s.state = StateAnsweringQuestion
	if _, ok := s.pendingSection(); ok {
		s.state = StateShowingEducation
	}
}

func (s *Session) complete() {
	s.state = StateQuestComplete
	if s.onComplete != nil {
		s.onComplete(s.quest.ID, s.score, s.quest.XPReward, s.quest.CoinReward)
	}
}

const pointsPerCorrect = 10

func optionByID(question models.Question, id string) (models.AnswerOption, bool) {
	for _, option := range question.Options {
		if option.ID == id {
			return option, true
		}
	}
	return models.AnswerOption{}, false
}

func copyAnswers(answers map[string]string) map[string]string {
	copied := make(map[string]string, len(answers))
	for k, v := range answers {
		copied[k] = v
	}
	return copied
}
