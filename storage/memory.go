// storage/memory.go - In-memory Store implementation
package storage

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"moneytree/models"
)

// MemStore keeps everything in process-local maps guarded by a single RWMutex.
// Insertion order is tracked per collection so listings (and leaderboard
// tie-breaks) are stable. State lives for the process lifetime only.
type MemStore struct {
	mu sync.RWMutex

	users     map[string]*models.User
	userOrder []string

	quests     map[string]*models.Quest
	questOrder []string

	progress      map[string]*models.UserProgress
	progressOrder []string

	achievements     map[string]*models.Achievement
	achievementOrder []string

	userAchievements []models.UserAchievement

	tips     map[string]*models.AuricTip
	tipOrder []string

	now func() time.Time
}

func NewMemStore() *MemStore {
	return &MemStore{
		users:        make(map[string]*models.User),
		quests:       make(map[string]*models.Quest),
		progress:     make(map[string]*models.UserProgress),
		achievements: make(map[string]*models.Achievement),
		tips:         make(map[string]*models.AuricTip),
		now:          time.Now,
	}
}

// NewMemStoreWithClock is for deterministic timestamps in tests.
func NewMemStoreWithClock(now func() time.Time) *MemStore {
	s := NewMemStore()
	s.now = now
	return s
}

// Users

func (s *MemStore) GetUser(id string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.users[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

func (s *MemStore) GetUserByUsername(username string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, id := range s.userOrder {
		if s.users[id].Username == username {
			copied := *s.users[id]
			return &copied, nil
		}
	}
	return nil, ErrUserNotFound
}

func (s *MemStore) CreateUser(user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, id := range s.userOrder {
		existing := s.users[id]
		if existing.Username == user.Username {
			return ErrUsernameTaken
		}
		if user.Email != nil && existing.Email != nil && *existing.Email == *user.Email {
			return ErrUsernameTaken
		}
	}
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = s.now()
	}
	if user.Level == 0 {
		user.Level = 1
	}
	copied := *user
	s.users[user.ID] = &copied
	s.userOrder = append(s.userOrder, user.ID)
	return nil
}

func (s *MemStore) UpdateUser(user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[user.ID]; !ok {
		return ErrUserNotFound
	}
	copied := *user
	s.users[user.ID] = &copied
	return nil
}

// DeleteUser removes the user together with their progress records and
// achievement unlocks.
func (s *MemStore) DeleteUser(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[id]; !ok {
		return ErrUserNotFound
	}
	delete(s.users, id)
	s.userOrder = remove(s.userOrder, id)

	var keptProgress []string
	for _, pid := range s.progressOrder {
		if s.progress[pid].UserID == id {
			delete(s.progress, pid)
			continue
		}
		keptProgress = append(keptProgress, pid)
	}
	s.progressOrder = keptProgress

	kept := s.userAchievements[:0]
	for _, ua := range s.userAchievements {
		if ua.UserID != id {
			kept = append(kept, ua)
		}
	}
	s.userAchievements = kept
	return nil
}

func remove(ids []string, id string) []string {
	for i, candidate := range ids {
		if candidate == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}

func (s *MemStore) GetAllUsers() ([]models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	users := make([]models.User, 0, len(s.userOrder))
	for _, id := range s.userOrder {
		users = append(users, *s.users[id])
	}
	return users, nil
}

// Quest catalog

func (s *MemStore) GetAllQuests() ([]models.Quest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	quests := make([]models.Quest, 0, len(s.questOrder))
	for _, id := range s.questOrder {
		if s.quests[id].IsActive {
			quests = append(quests, *s.quests[id])
		}
	}
	return quests, nil
}

func (s *MemStore) GetQuest(id string) (*models.Quest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	quest, ok := s.quests[id]
	if !ok {
		return nil, ErrQuestNotFound
	}
	copied := *quest
	return &copied, nil
}

func (s *MemStore) CreateQuest(quest *models.Quest) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if quest.ID == "" {
		quest.ID = uuid.New().String()
	}
	if quest.CreatedAt.IsZero() {
		quest.CreatedAt = s.now()
	}
	if _, ok := s.quests[quest.ID]; !ok {
		s.questOrder = append(s.questOrder, quest.ID)
	}
	copied := *quest
	s.quests[quest.ID] = &copied
	return nil
}

// Progress

func (s *MemStore) GetUserProgress(userID string) ([]models.UserProgress, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	records := make([]models.UserProgress, 0)
	for _, id := range s.progressOrder {
		if s.progress[id].UserID == userID {
			records = append(records, *cloneProgress(s.progress[id]))
		}
	}
	return records, nil
}

func (s *MemStore) GetUserQuestProgress(userID, questID string) (*models.UserProgress, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	record := s.findProgressLocked(userID, questID)
	if record == nil {
		return nil, ErrProgressNotFound
	}
	return cloneProgress(record), nil
}

func (s *MemStore) CreateOrUpdateUserProgress(userID, questID string, upd ProgressUpdate) (*models.UserProgress, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record := s.findProgressLocked(userID, questID)
	if record == nil {
		record = &models.UserProgress{
			ID:        uuid.New().String(),
			UserID:    userID,
			QuestID:   questID,
			Answers:   map[string]string{},
			StartedAt: s.now(),
		}
		s.progress[record.ID] = record
		s.progressOrder = append(s.progressOrder, record.ID)
	}

	applyProgressUpdate(record, upd)
	return cloneProgress(record), nil
}

// cloneProgress copies the record including its Answers map, so callers can
// never write through to stored state without holding the mutex.
func cloneProgress(record *models.UserProgress) *models.UserProgress {
	copied := *record
	if record.Answers != nil {
		copied.Answers = make(map[string]string, len(record.Answers))
		for k, v := range record.Answers {
			copied.Answers[k] = v
		}
	}
	return &copied
}

func (s *MemStore) findProgressLocked(userID, questID string) *models.UserProgress {
	for _, id := range s.progressOrder {
		record := s.progress[id]
		if record.UserID == userID && record.QuestID == questID {
			return record
		}
	}
	return nil
}

func applyProgressUpdate(record *models.UserProgress, upd ProgressUpdate) {
	if upd.IsCompleted != nil {
		record.IsCompleted = *upd.IsCompleted
	}
	if upd.CurrentQuestion != nil {
		record.CurrentQuestion = *upd.CurrentQuestion
	}
	if upd.Score != nil {
		record.Score = *upd.Score
	}
	if upd.TimeSpent != nil {
		record.TimeSpent = *upd.TimeSpent
	}
	if upd.Answers != nil {
		record.Answers = make(map[string]string, len(upd.Answers))
		for k, v := range upd.Answers {
			record.Answers[k] = v
		}
	}
	if upd.CompletedAt != nil {
		record.CompletedAt = upd.CompletedAt
	}
}

// Achievements

func (s *MemStore) GetAllAchievements() ([]models.Achievement, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	achievements := make([]models.Achievement, 0, len(s.achievementOrder))
	for _, id := range s.achievementOrder {
		if s.achievements[id].IsActive {
			achievements = append(achievements, *s.achievements[id])
		}
	}
	return achievements, nil
}

func (s *MemStore) GetAchievement(id string) (*models.Achievement, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	achievement, ok := s.achievements[id]
	if !ok {
		return nil, ErrAchievementNotFound
	}
	copied := *achievement
	return &copied, nil
}

func (s *MemStore) CreateAchievement(achievement *models.Achievement) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if achievement.ID == "" {
		achievement.ID = uuid.New().String()
	}
	if _, ok := s.achievements[achievement.ID]; !ok {
		s.achievementOrder = append(s.achievementOrder, achievement.ID)
	}
	copied := *achievement
	s.achievements[achievement.ID] = &copied
	return nil
}

func (s *MemStore) GetUserAchievements(userID string) ([]models.UserAchievement, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	unlocked := make([]models.UserAchievement, 0)
	for _, ua := range s.userAchievements {
		if ua.UserID != userID {
			continue
		}
		copied := ua
		if achievement, ok := s.achievements[ua.AchievementID]; ok {
			joined := *achievement
			copied.Achievement = &joined
		}
		unlocked = append(unlocked, copied)
	}
	return unlocked, nil
}

func (s *MemStore) CreateUserAchievement(ua *models.UserAchievement) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if ua.ID == "" {
		ua.ID = uuid.New().String()
	}
	if ua.UnlockedAt.IsZero() {
		ua.UnlockedAt = s.now()
	}
	s.userAchievements = append(s.userAchievements, *ua)
	return nil
}

// Auric tips

func (s *MemStore) GetActiveTips() ([]models.AuricTip, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	tips := make([]models.AuricTip, 0, len(s.tipOrder))
	for _, id := range s.tipOrder {
		if s.tips[id].IsActive {
			tips = append(tips, *s.tips[id])
		}
	}
	return tips, nil
}

func (s *MemStore) CreateTip(tip *models.AuricTip) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if tip.ID == "" {
		tip.ID = uuid.New().String()
	}
	if _, ok := s.tips[tip.ID]; !ok {
		s.tipOrder = append(s.tipOrder, tip.ID)
	}
	copied := *tip
	s.tips[tip.ID] = &copied
	return nil
}
