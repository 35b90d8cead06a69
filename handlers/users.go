// handlers/users.go - Profile, progress, coins, and reset
package handlers

import (
	"github.com/gofiber/fiber/v2"

	"animalquiz/middleware"
)

type UpdateProfileRequest struct {
	Username string `json:"username"`
}

// MyProgress returns the caller's per-level guessed flags
func MyProgress(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return err
	}

	progress, err := quizService.Progress(c.Context(), userID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"progress": progress})
}

// MyCoins returns the caller's coin balance
func MyCoins(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return err
	}

	coins, err := quizService.Coins(c.Context(), userID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"totalCoins": coins})
}

// UpdateProfile renames the caller's account
func UpdateProfile(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return err
	}

	var req UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return writeError(c, 400, "invalid_request", "Invalid request body")
	}
	if !validUsername(req.Username) {
		return writeError(c, 400, "invalid_request", "Username must be 2-30 characters")
	}

	rec, err := userStore.UpdateProfile(c.Context(), userID, req.Username)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(userInfo(rec))
}

// ResetProgress wipes the caller's game data but keeps the account
func ResetProgress(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return err
	}

	rec, err := userStore.Reset(c.Context(), userID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(userInfo(rec))
}
