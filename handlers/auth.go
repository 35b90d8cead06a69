// handlers/auth.go - Registration, login, and token issuance
package handlers

import (
	"time"
	"unicode/utf8"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"animalquiz/middleware"
	"animalquiz/models"
)

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	PhotoURL string `json:"photoUrl"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type AuthResponse struct {
	Token string   `json:"token"`
	User  UserInfo `json:"user"`
}

type UserInfo struct {
	ID            string    `json:"id"`
	Username      string    `json:"username"`
	Email         string    `json:"email,omitempty"`
	PhotoURL      string    `json:"photoUrl,omitempty"`
	TotalCoins    int       `json:"totalCoins"`
	TotalPoints   int       `json:"totalPoints"`
	CurrentStreak int       `json:"currentStreak"`
	CreatedAt     time.Time `json:"createdAt"`
}

// validUsername enforces the 2-30 character display name bound shared by
// registration and profile rename.
func validUsername(name string) bool {
	n := utf8.RuneCountInString(name)
	return n >= 2 && n <= 30
}

func userInfo(rec *models.UserRecord) UserInfo {
	email := ""
	if rec.Email != nil {
		email = *rec.Email
	}
	return UserInfo{
		ID:            rec.ID,
		Username:      rec.Username,
		Email:         email,
		PhotoURL:      rec.PhotoURL,
		TotalCoins:    rec.TotalCoins,
		TotalPoints:   rec.TotalPoints,
		CurrentStreak: rec.CurrentStreak,
		CreatedAt:     rec.CreatedAt,
	}
}

// Register creates a new user account
func Register(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return writeError(c, 400, "invalid_request", "Invalid request body")
	}

	if req.Username == "" || req.Password == "" {
		return writeError(c, 400, "invalid_request", "Username and password required")
	}

	if !validUsername(req.Username) {
		return writeError(c, 400, "invalid_request", "Username must be 2-30 characters")
	}

	if len(req.Password) < 6 {
		return writeError(c, 400, "invalid_request", "Password must be at least 6 characters")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return respondError(c, err)
	}

	rec := &models.UserRecord{
		ID:              uuid.NewString(),
		Username:        req.Username,
		PasswordHash:    string(hashedPassword),
		PhotoURL:        req.PhotoURL,
		Progress:        animalCatalog.EmptyProgress(),
		DailyChallenges: map[string]*models.ChallengeDay{},
		Achievements:    map[string]time.Time{},
		CreatedAt:       time.Now().UTC(),
	}
	if req.Email != "" {
		rec.Email = &req.Email
	}

	if err := userStore.Create(c.Context(), rec); err != nil {
		return respondError(c, err)
	}

	token, err := generateToken(rec)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(AuthResponse{Token: token, User: userInfo(rec)})
}

// Login authenticates a registered user
func Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return writeError(c, 400, "invalid_request", "Invalid request body")
	}

	if req.Username == "" || req.Password == "" {
		return writeError(c, 400, "invalid_request", "Username and password required")
	}

	rec, err := userStore.GetByUsername(c.Context(), req.Username)
	if err != nil {
		return writeError(c, 401, "unauthorized", "Invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(rec.PasswordHash), []byte(req.Password)); err != nil {
		return writeError(c, 401, "unauthorized", "Invalid credentials")
	}

	token, err := generateToken(rec)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(AuthResponse{Token: token, User: userInfo(rec)})
}

// Me returns the authenticated user's profile
func Me(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return err
	}

	rec, err := userStore.Get(c.Context(), userID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(userInfo(rec))
}

func generateToken(rec *models.UserRecord) (string, error) {
	claims := jwt.MapClaims{
		"user_id":  rec.ID,
		"username": rec.Username,
		"exp":      time.Now().Add(time.Hour * 720).Unix(), // 30 days
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(appConfig.JWTSecret))
}
