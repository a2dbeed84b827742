// storage/postgres.go - PostgreSQL Store implementation (GORM)
package storage

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"moneytree/models"
)

// PostgresStore mirrors the MemStore semantics on top of GORM. It exists so
// the demo can be pointed at a durable backend without touching the engine or
// handlers.
type PostgresStore struct {
	db *gorm.DB
}

// OpenPostgres connects using DATABASE_URL or the individual DB_* variables,
// configures the pool, and runs migrations.
func OpenPostgres() (*PostgresStore, error) {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		host := getEnvOrDefault("DB_HOST", "localhost")
		port := getEnvOrDefault("DB_PORT", "5432")
		user := getEnvOrDefault("DB_USER", "postgres")
		password := getEnvOrDefault("DB_PASSWORD", "")
		dbname := getEnvOrDefault("DB_NAME", "moneytree")
		sslmode := getEnvOrDefault("DB_SSLMODE", "disable")

		dsn = fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			host, port, user, password, dbname, sslmode)
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	store := &PostgresStore{db: db}
	if err := store.migrate(); err != nil {
		return nil, err
	}

	log.Println("PostgreSQL database connected")
	return store, nil
}

func (s *PostgresStore) migrate() error {
	if err := s.db.AutoMigrate(
		&models.User{},
		&models.Quest{},
		&models.UserProgress{},
		&models.Achievement{},
		&models.UserAchievement{},
		&models.AuricTip{},
	); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	s.db.Exec("CREATE INDEX IF NOT EXISTS idx_users_xp ON users(xp DESC)")
	s.db.Exec("CREATE INDEX IF NOT EXISTS idx_user_achievements_user ON user_achievements(user_id)")
	s.db.Exec("CREATE INDEX IF NOT EXISTS idx_user_progress_user ON user_progress(user_id)")
	return nil
}

// Close releases the underlying connection pool.
func (s *PostgresStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// Users

func (s *PostgresStore) GetUser(id string) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (s *PostgresStore) GetUserByUsername(username string) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "username = ?", username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (s *PostgresStore) CreateUser(user *models.User) error {
	var count int64
	query := s.db.Model(&models.User{}).Where("username = ?", user.Username)
	if user.Email != nil {
		query = query.Or("email = ?", *user.Email)
	}
	if err := query.Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrUsernameTaken
	}
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	if user.Level == 0 {
		user.Level = 1
	}
	return s.db.Create(user).Error
}

func (s *PostgresStore) UpdateUser(user *models.User) error {
	result := s.db.Model(&models.User{}).Where("id = ?", user.ID).Select("*").Omit("id", "created_at").Updates(user)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (s *PostgresStore) DeleteUser(id string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", id).Delete(&models.UserProgress{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&models.UserAchievement{}).Error; err != nil {
			return err
		}
		result := tx.Where("id = ?", id).Delete(&models.User{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrUserNotFound
		}
		return nil
	})
}

func (s *PostgresStore) GetAllUsers() ([]models.User, error) {
	var users []models.User
	if err := s.db.Order("created_at ASC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// Quest catalog

func (s *PostgresStore) GetAllQuests() ([]models.Quest, error) {
	var quests []models.Quest
	if err := s.db.Where("is_active = ?", true).Order("created_at ASC").Find(&quests).Error; err != nil {
		return nil, err
	}
	return quests, nil
}

func (s *PostgresStore) GetQuest(id string) (*models.Quest, error) {
	var quest models.Quest
	if err := s.db.First(&quest, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrQuestNotFound
		}
		return nil, err
	}
	return &quest, nil
}

func (s *PostgresStore) CreateQuest(quest *models.Quest) error {
	if quest.ID == "" {
		quest.ID = uuid.New().String()
	}
	return s.db.Save(quest).Error
}

// Progress

func (s *PostgresStore) GetUserProgress(userID string) ([]models.UserProgress, error) {
	var records []models.UserProgress
	if err := s.db.Where("user_id = ?", userID).Order("started_at ASC").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (s *PostgresStore) GetUserQuestProgress(userID, questID string) (*models.UserProgress, error) {
	var record models.UserProgress
	err := s.db.Where("user_id = ? AND quest_id = ?", userID, questID).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProgressNotFound
		}
		return nil, err
	}
	return &record, nil
}

func (s *PostgresStore) CreateOrUpdateUserProgress(userID, questID string, upd ProgressUpdate) (*models.UserProgress, error) {
	var record models.UserProgress
	err := s.db.Where("user_id = ? AND quest_id = ?", userID, questID).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		record = models.UserProgress{
			ID:        uuid.New().String(),
			UserID:    userID,
			QuestID:   questID,
			Answers:   map[string]string{},
			StartedAt: time.Now(),
		}
	} else if err != nil {
		return nil, err
	}

	applyProgressUpdate(&record, upd)
	if err := s.db.Save(&record).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

// Achievements

func (s *PostgresStore) GetAllAchievements() ([]models.Achievement, error) {
	var achievements []models.Achievement
	if err := s.db.Where("is_active = ?", true).Find(&achievements).Error; err != nil {
		return nil, err
	}
	return achievements, nil
}

func (s *PostgresStore) GetAchievement(id string) (*models.Achievement, error) {
	var achievement models.Achievement
	if err := s.db.First(&achievement, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAchievementNotFound
		}
		return nil, err
	}
	return &achievement, nil
}

func (s *PostgresStore) CreateAchievement(achievement *models.Achievement) error {
	if achievement.ID == "" {
		achievement.ID = uuid.New().String()
	}
	return s.db.Save(achievement).Error
}

func (s *PostgresStore) GetUserAchievements(userID string) ([]models.UserAchievement, error) {
	var unlocked []models.UserAchievement
	err := s.db.Preload("Achievement").
		Where("user_id = ?", userID).
		Order("unlocked_at ASC").
		Find(&unlocked).Error
	if err != nil {
		return nil, err
	}
	return unlocked, nil
}

func (s *PostgresStore) CreateUserAchievement(ua *models.UserAchievement) error {
	if ua.ID == "" {
		ua.ID = uuid.New().String()
	}
	if ua.UnlockedAt.IsZero() {
		ua.UnlockedAt = time.Now()
	}
	return s.db.Create(ua).Error
}

// Auric tips

func (s *PostgresStore) GetActiveTips() ([]models.AuricTip, error) {
	var tips []models.AuricTip
	if err := s.db.Where("is_active = ?", true).Find(&tips).Error; err != nil {
		return nil, err
	}
	return tips, nil
}

func (s *PostgresStore) CreateTip(tip *models.AuricTip) error {
	if tip.ID == "" {
		tip.ID = uuid.New().String()
	}
	return s.db.Save(tip).Error
}
