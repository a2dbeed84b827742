// main.go
package main

import (
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/websocket/v2"
	"github.com/joho/godotenv"

	"moneytree/catalog"
	"moneytree/handlers"
	"moneytree/middleware"
	"moneytree/services"
	"moneytree/storage"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	validateEnvironment()

	store, err := openStore()
	if err != nil {
		log.Fatal("Failed to initialize storage:", err)
	}

	if err := catalog.Seed(store, os.Getenv("CATALOG_DIR")); err != nil {
		log.Fatal("Failed to seed catalog:", err)
	}

	engine := services.NewEngine(store)
	hub := services.NewLeaderboardHub()
	engine.SetRewardListener(func() {
		users, err := store.GetAllUsers()
		if err != nil {
			log.Printf("leaderboard snapshot: %v", err)
			return
		}
		hub.Broadcast(services.Leaderboard(users))
	})

	if getEnv("GUEST_CLEANUP_ENABLED", "true") == "true" {
		cleanup := services.NewCleanupService(store, time.Hour, 24*time.Hour)
		cleanup.Start()
		defer cleanup.Stop()
	}

	h := handlers.New(store, engine, hub, rand.New(rand.NewSource(time.Now().UnixNano())))

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: customErrorHandler,
		BodyLimit:    4 * 1024 * 1024, // 4MB
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${method} ${path} (${latency})\n",
	}))

	// CORS configuration
	corsOrigins := os.Getenv("CORS_ORIGINS")
	if corsOrigins == "" {
		corsOrigins = "http://localhost:3000"
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins:     corsOrigins,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
	}))

	app.Use(middleware.FiberRateLimitMiddleware())

	// API Routes
	api := app.Group("/api")

	// Auth routes with stricter rate limiting
	authGroup := api.Group("/auth")
	authGroup.Use(middleware.FiberAuthRateLimitMiddleware())
	authGroup.Post("/guest", h.GuestLogin)
	authGroup.Post("/login", h.Login)
	authGroup.Post("/register", h.Register)

	// User routes
	api.Get("/users/me", middleware.AuthMiddleware, h.Me)
	api.Get("/user/username/:username", h.GetUserByUsername)
	api.Get("/user/:id", h.GetUser)

	// Quest routes
	api.Get("/quests", h.GetQuests)
	api.Get("/quest/:id", h.GetQuest)

	// Progress routes
	api.Get("/user/:userId/progress", h.GetUserProgress)
	api.Get("/user/:userId/progress/:questId", h.GetUserQuestProgress)
	api.Post("/user/:userId/progress", h.UpdateProgress)
	api.Post("/user/:userId/complete-quest/:questId", h.CompleteQuest)

	// Achievement routes
	api.Get("/achievements", h.GetAchievements)
	api.Get("/user/:userId/achievements", h.GetUserAchievements)
	api.Post("/user/:userId/unlock-achievement/:achievementId", h.UnlockAchievement)
	api.Post("/user/:userId/check-achievements", h.CheckAchievements)

	// Mascot tip routes
	api.Get("/auric-tip", h.GetAuricTip)
	api.Get("/auric-tips", h.GetAuricTips)

	// Leaderboard routes
	api.Get("/leaderboard", h.GetLeaderboard)

	// Dashboard route
	api.Get("/user/:userId/dashboard", h.GetDashboard)

	// WebSocket leaderboard stream
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	app.Get("/ws/leaderboard", middleware.WebSocketAuthMiddleware, h.LeaderboardSocket())

	// Health check endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":    "healthy",
			"timestamp": time.Now().Unix(),
			"version":   "1.0.0",
		})
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	log.Printf("🚀 MoneyTree server starting on port %s", port)
	log.Printf("📊 Environment: %s", getEnv("APP_ENV", "development"))
	log.Printf("💾 Storage backend: %s", getEnv("STORAGE_BACKEND", "memory"))
	log.Printf("🔐 JWT Secret configured: %v", os.Getenv("JWT_SECRET") != "")
	log.Printf("🧹 Guest cleanup: %s", getEnv("GUEST_CLEANUP_ENABLED", "true"))

	if err := app.Listen(":" + port); err != nil {
		log.Fatal("Failed to start HTTP server:", err)
	}
}

// openStore picks the storage backend from STORAGE_BACKEND. The default is
// the in-memory store; "postgres" opens the GORM-backed store.
func openStore() (storage.Store, error) {
	switch getEnv("STORAGE_BACKEND", "memory") {
	case "postgres":
		return storage.OpenPostgres()
	default:
		return storage.NewMemStore(), nil
	}
}

// validateEnvironment checks for required environment variables
func validateEnvironment() {
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret != "" && len(jwtSecret) < 32 {
		log.Fatal("FATAL: JWT_SECRET must be at least 32 characters long")
	}

	if os.Getenv("APP_ENV") == "production" {
		if jwtSecret == "" {
			log.Fatal("FATAL: JWT_SECRET environment variable must be set. Generate one with: openssl rand -base64 64")
		}
		corsOrigins := os.Getenv("CORS_ORIGINS")
		if corsOrigins == "" || corsOrigins == "http://localhost:3000" {
			log.Println("WARNING: CORS_ORIGINS not properly configured for production")
		}
	}
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal server error"

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	// Don't expose internal errors in production
	if os.Getenv("APP_ENV") == "production" && code == 500 {
		message = "An error occurred. Please try again later."
	}

	return c.Status(code).JSON(fiber.Map{
		"message": message,
	})
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
