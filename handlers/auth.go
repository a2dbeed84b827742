// handlers/auth.go
package handlers

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"moneytree/middleware"
	"moneytree/models"
	"moneytree/storage"
)

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Username    string `json:"username"`
	DisplayName string `json:"displayName"`
	Email       string `json:"email"`
	Password    string `json:"password"`
}

type GuestLoginRequest struct {
	GuestName string `json:"guestName,omitempty"`
}

type AuthResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

// GuestLogin creates a new guest session
// POST /api/auth/guest
func (h *Handler) GuestLogin(c *fiber.Ctx) error {
	var req GuestLoginRequest
	// An empty body is fine for guest sessions.
	_ = c.BodyParser(&req)

	guestName := req.GuestName
	if guestName == "" {
		guestName = fmt.Sprintf("Guest_%s", uuid.New().String()[:8])
	}

	user := &models.User{
		Username:    guestName,
		DisplayName: guestName,
		IsGuest:     true,
	}
	if err := h.Store.CreateUser(user); err != nil {
		return storeError(c, err)
	}

	token, err := middleware.GenerateToken(user.ID, user.Username, true)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"message": "Failed to generate token"})
	}

	return c.JSON(AuthResponse{Token: token, User: user})
}

// Register creates a new user account
// POST /api/auth/register
func (h *Handler) Register(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"message": "Invalid request body"})
	}

	if req.Username == "" || req.Password == "" {
		return c.Status(400).JSON(fiber.Map{"message": "Username and password required"})
	}
	if len(req.Password) < 6 {
		return c.Status(400).JSON(fiber.Map{"message": "Password must be at least 6 characters"})
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"message": "Failed to hash password"})
	}

	displayName := req.DisplayName
	if displayName == "" {
		displayName = req.Username
	}

	user := &models.User{
		Username:    req.Username,
		DisplayName: displayName,
		Password:    string(hashed),
	}
	if req.Email != "" {
		user.Email = &req.Email
	}
	if err := h.Store.CreateUser(user); err != nil {
		return storeError(c, err)
	}

	token, err := middleware.GenerateToken(user.ID, user.Username, false)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"message": "Failed to generate token"})
	}

	return c.JSON(AuthResponse{Token: token, User: user})
}

// Login authenticates a registered user
// POST /api/auth/login
func (h *Handler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"message": "Invalid request body"})
	}

	if req.Username == "" || req.Password == "" {
		return c.Status(400).JSON(fiber.Map{"message": "Username and password required"})
	}

	user, err := h.Store.GetUserByUsername(req.Username)
	if err == storage.ErrUserNotFound {
		return c.Status(401).JSON(fiber.Map{"message": "Invalid credentials"})
	}
	if err != nil {
		return storeError(c, err)
	}
	if user.IsGuest {
		return c.Status(401).JSON(fiber.Map{"message": "Invalid credentials"})
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return c.Status(401).JSON(fiber.Map{"message": "Invalid credentials"})
	}

	now := time.Now()
	user.LastActiveDate = &now
	if err := h.Store.UpdateUser(user); err != nil {
		return storeError(c, err)
	}

	token, err := middleware.GenerateToken(user.ID, user.Username, false)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"message": "Failed to generate token"})
	}

	return c.JSON(AuthResponse{Token: token, User: user})
}
