// handlers/achievements.go - Achievement definitions and unlocks
package handlers

import (
	"sort"

	"github.com/gofiber/fiber/v2"

	"animalquiz/middleware"
	"animalquiz/models"
	"animalquiz/services"
)

// ListAchievements returns the static achievement definitions
func ListAchievements(c *fiber.Ctx) error {
	return c.JSON(services.AchievementDefinitions())
}

// MyAchievements returns the caller's unlocked achievements, oldest first
func MyAchievements(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return err
	}

	rec, err := userStore.Get(c.Context(), userID)
	if err != nil {
		return respondError(c, err)
	}

	unlocked := make([]models.UnlockedAchievement, 0, len(rec.Achievements))
	for id, at := range rec.Achievements {
		unlocked = append(unlocked, models.UnlockedAchievement{ID: id, UnlockedAt: at})
	}
	sort.Slice(unlocked, func(i, j int) bool {
		if !unlocked[i].UnlockedAt.Equal(unlocked[j].UnlockedAt) {
			return unlocked[i].UnlockedAt.Before(unlocked[j].UnlockedAt)
		}
		return unlocked[i].ID < unlocked[j].ID
	})

	return c.JSON(unlocked)
}
