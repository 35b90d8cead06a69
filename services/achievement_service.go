// services/achievement_service.go - Achievement definitions and evaluation
package services

import (
	"time"

	"animalquiz/models"
)

var allAchievements = []models.Achievement{
	{ID: "first_correct", Name: "First Step", Description: "First correct answer ever"},
	{ID: "level_complete", Name: "Level Cleared", Description: "Guess every animal in a level"},
	{ID: "all_levels", Name: "Graduate", Description: "Reach 80% completion in every level"},
	{ID: "streak_7", Name: "On Fire", Description: "7-day streak"},
	{ID: "streak_30", Name: "Unstoppable", Description: "30-day streak"},
	{ID: "coins_500", Name: "Coin Collector", Description: "Accumulate 500 coins"},
	{ID: "daily_10", Name: "Daily Regular", Description: "Complete 10 daily challenges"},
}

// AchievementDefinitions returns all achievement definitions.
func AchievementDefinitions() []models.Achievement {
	out := make([]models.Achievement, len(allAchievements))
	copy(out, allAchievements)
	return out
}

// unlock records an achievement if it is not already set. Returns true when
// newly unlocked.
func unlock(rec *models.UserRecord, id string, now time.Time) bool {
	if rec.Achievements == nil {
		rec.Achievements = make(map[string]time.Time)
	}
	if _, done := rec.Achievements[id]; done {
		return false
	}
	rec.Achievements[id] = now.UTC()
	return true
}

// evaluateAnswerAchievements runs after a first-time-correct level answer,
// inside the same mutate window, so unlocks commit with the award.
func evaluateAnswerAchievements(rec *models.UserRecord, levelID int, now time.Time) []string {
	var newly []string

	totalGuessed := 0
	for _, bits := range rec.Progress {
		for _, b := range bits {
			if b {
				totalGuessed++
			}
		}
	}
	if totalGuessed == 1 && unlock(rec, "first_correct", now) {
		newly = append(newly, "first_correct")
	}

	if levelDone(rec.Progress[levelID]) && unlock(rec, "level_complete", now) {
		newly = append(newly, "level_complete")
	}

	if allLevelsNearlyDone(rec.Progress) && unlock(rec, "all_levels", now) {
		newly = append(newly, "all_levels")
	}

	newly = append(newly, evaluateStreakAchievements(rec, now)...)

	if rec.TotalCoins >= 500 && unlock(rec, "coins_500", now) {
		newly = append(newly, "coins_500")
	}
	return newly
}

// evaluateChallengeAchievements runs when a daily challenge reaches
// completion.
func evaluateChallengeAchievements(rec *models.UserRecord, now time.Time) []string {
	var newly []string

	completed := 0
	for _, day := range rec.DailyChallenges {
		if day.CompletedAt != nil {
			completed++
		}
	}
	if completed >= 10 && unlock(rec, "daily_10", now) {
		newly = append(newly, "daily_10")
	}

	newly = append(newly, evaluateStreakAchievements(rec, now)...)
	return newly
}

func evaluateStreakAchievements(rec *models.UserRecord, now time.Time) []string {
	var newly []string
	if rec.CurrentStreak >= 7 && unlock(rec, "streak_7", now) {
		newly = append(newly, "streak_7")
	}
	if rec.CurrentStreak >= 30 && unlock(rec, "streak_30", now) {
		newly = append(newly, "streak_30")
	}
	return newly
}

func levelDone(bits []bool) bool {
	if len(bits) == 0 {
		return false
	}
	for _, b := range bits {
		if !b {
			return false
		}
	}
	return true
}

// allLevelsNearlyDone checks the 80%-per-level graduation threshold.
func allLevelsNearlyDone(progress map[int][]bool) bool {
	if len(progress) == 0 {
		return false
	}
	for _, bits := range progress {
		if len(bits) == 0 {
			return false
		}
		guessed := 0
		for _, b := range bits {
			if b {
				guessed++
			}
		}
		if guessed*5 < len(bits)*4 {
			return false
		}
	}
	return true
}
