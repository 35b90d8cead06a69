// handlers/leaderboard.go - Global points leaderboard
package handlers

import (
	"github.com/gofiber/fiber/v2"
)

// Leaderboard returns a page of the global leaderboard.
// ?limit= and ?offset= page the result, default 50 from the top.
func Leaderboard(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 50)
	offset := c.QueryInt("offset", 0)

	entries, total, err := leaderboardSvc.Global(c.Context(), limit, offset)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"entries": entries,
		"total":   total,
	})
}
