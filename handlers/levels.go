// handlers/levels.go - Level listing and per-user level detail
package handlers

import (
	"github.com/gofiber/fiber/v2"

	"animalquiz/catalog"
	"animalquiz/middleware"
	"animalquiz/models"
)

func toQuizAnimals(animals []catalog.Animal) []models.QuizAnimal {
	out := make([]models.QuizAnimal, 0, len(animals))
	for _, a := range animals {
		out = append(out, models.QuizAnimal{ID: a.ID, Name: a.Name, Emoji: a.Emoji, ImageURL: a.ImageURL})
	}
	return out
}

// ListLevels returns every level with its animals in quiz order
func ListLevels(c *fiber.Ctx) error {
	levels := animalCatalog.Levels()
	out := make([]models.LevelSummary, 0, len(levels))
	for _, lvl := range levels {
		out = append(out, models.LevelSummary{
			ID:      lvl.ID,
			Title:   lvl.Title,
			Emoji:   lvl.Emoji,
			Animals: toQuizAnimals(lvl.Animals),
		})
	}
	return c.JSON(out)
}

// LevelDetail returns one level with the caller's guessed flags merged in
func LevelDetail(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return err
	}

	levelID, err := c.ParamsInt("id")
	if err != nil {
		return writeError(c, 400, "invalid_request", "Level id must be an integer")
	}

	lvl, ok := animalCatalog.LevelByID(levelID)
	if !ok {
		return writeError(c, fiber.StatusNotFound, "level_not_found", "Level not found")
	}

	guessed, err := quizService.LevelGuessed(c.Context(), userID, levelID)
	if err != nil {
		return respondError(c, err)
	}

	animals := make([]models.AnimalWithStatus, 0, len(lvl.Animals))
	for i, a := range lvl.Animals {
		animals = append(animals, models.AnimalWithStatus{
			QuizAnimal: models.QuizAnimal{ID: a.ID, Name: a.Name, Emoji: a.Emoji, ImageURL: a.ImageURL},
			Guessed:    i < len(guessed) && guessed[i],
		})
	}

	return c.JSON(models.LevelDetail{
		ID:      lvl.ID,
		Title:   lvl.Title,
		Emoji:   lvl.Emoji,
		Animals: animals,
	})
}
