// handlers/challenge.go - Daily challenge endpoints
package handlers

import (
	"github.com/gofiber/fiber/v2"

	"animalquiz/middleware"
	"animalquiz/models"
)

// ChallengeToday returns today's challenge and the caller's state in it
func ChallengeToday(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return err
	}

	today, err := challengeSvc.Today(c.Context(), userID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(today)
}

// SubmitChallengeAnswer grades one daily-challenge guess
func SubmitChallengeAnswer(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return err
	}

	var req models.ChallengeAnswerRequest
	if err := c.BodyParser(&req); err != nil {
		return writeError(c, 400, "invalid_request", "Invalid request body")
	}

	result, err := challengeSvc.SubmitAnswer(c.Context(), userID, req.AnimalIndex, req.Answer, req.AdRevealed)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(result)
}

// ChallengeLeaderboard ranks participants for a challenge date.
// ?date=YYYY-MM-DD, defaulting to today.
func ChallengeLeaderboard(c *fiber.Ctx) error {
	date, entries, err := challengeSvc.Leaderboard(c.Context(), c.Query("date"))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"date":    date,
		"entries": entries,
	})
}
