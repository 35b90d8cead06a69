// handlers/quiz.go - Level quiz answer submission
package handlers

import (
	"github.com/gofiber/fiber/v2"

	"animalquiz/middleware"
	"animalquiz/models"
)

// SubmitAnswer grades one level-quiz guess for the authenticated user
func SubmitAnswer(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return err
	}

	var req models.AnswerRequest
	if err := c.BodyParser(&req); err != nil {
		return writeError(c, 400, "invalid_request", "Invalid request body")
	}

	result, err := quizService.SubmitAnswer(c.Context(), userID, req.LevelID, req.AnimalIndex, req.Answer)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(result)
}
