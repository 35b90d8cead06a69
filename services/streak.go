// services/streak.go - Shared daily streak update
package services

import (
	"time"

	"animalquiz/config"
	"animalquiz/models"
)

const dateLayout = "2006-01-02"

// applyStreak advances the user's daily streak for a first-time-correct
// answer and returns the streak bonus coins earned. One streak per user,
// shared between level quizzes and daily challenges.
//
// The first correct answer of a UTC day either continues the streak (previous
// activity was yesterday, or the reset-on-gap policy is disabled) or starts a
// new one at 1. Bonus coins are only paid when the streak continues; a fresh
// streak pays none. Subsequent correct answers on the same day change nothing.
func applyStreak(rec *models.UserRecord, cfg config.GameConfig, now time.Time) int {
	today := now.UTC().Format(dateLayout)
	if rec.LastActivityDate != nil && *rec.LastActivityDate == today {
		return 0
	}

	continued := false
	if rec.LastActivityDate != nil {
		if prev, err := time.Parse(dateLayout, *rec.LastActivityDate); err == nil {
			todayDate, _ := time.Parse(dateLayout, today)
			gapDays := int(todayDate.Sub(prev).Hours() / 24)
			if gapDays == 1 || !cfg.StreakResetOnGap {
				continued = true
			}
		}
	}

	if continued {
		rec.CurrentStreak++
	} else {
		rec.CurrentStreak = 1
	}
	rec.LastActivityDate = &today

	if !continued {
		return 0
	}
	bonus := rec.CurrentStreak * cfg.StreakBonusPerDay
	if bonus > cfg.StreakBonusCap {
		bonus = cfg.StreakBonusCap
	}
	return bonus
}
