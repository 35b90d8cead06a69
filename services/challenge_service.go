// services/challenge_service.go - Daily challenge selection, answers, ranking
package services

import (
	"context"
	"hash/fnv"
	"math/rand"
	"sort"
	"time"

	"animalquiz/catalog"
	"animalquiz/config"
	"animalquiz/models"
	"animalquiz/store"
)

// ChallengeService runs the date-scoped, globally-shared daily quiz.
type ChallengeService struct {
	store store.UserStore
	cat   *catalog.Catalog
	cfg   config.GameConfig
	now   func() time.Time
}

func NewChallengeService(st store.UserStore, cat *catalog.Catalog, cfg config.GameConfig) *ChallengeService {
	return NewChallengeServiceWithClock(st, cat, cfg, time.Now)
}

// NewChallengeServiceWithClock allows deterministic dates in tests.
func NewChallengeServiceWithClock(st store.UserStore, cat *catalog.Catalog, cfg config.GameConfig, now func() time.Time) *ChallengeService {
	return &ChallengeService{store: st, cat: cat, cfg: cfg, now: now}
}

func (s *ChallengeService) todayISO() string {
	return s.now().UTC().Format(dateLayout)
}

// SelectForDate maps a calendar date to that day's challenge animals. It is a
// pure function of the date string: the date seeds a PRNG which picks a
// fixed-size subset of the reserved pool, so every process derives the same
// sequence without shared state.
func (s *ChallengeService) SelectForDate(date string) []catalog.Animal {
	pool := s.cat.ChallengePool()
	if len(pool) <= s.cfg.ChallengeSize {
		return pool
	}

	h := fnv.New64a()
	h.Write([]byte(date))
	rng := rand.New(rand.NewSource(int64(h.Sum64())))

	picked := rng.Perm(len(pool))[:s.cfg.ChallengeSize]
	sort.Ints(picked)

	out := make([]catalog.Animal, 0, len(picked))
	for _, i := range picked {
		out = append(out, pool[i])
	}
	return out
}

// Today returns today's challenge sequence and the user's state in it.
func (s *ChallengeService) Today(ctx context.Context, userID string) (*models.ChallengeToday, error) {
	date := s.todayISO()
	animals := s.SelectForDate(date)

	rec, err := s.store.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	day := rec.EnsureChallenge(date, len(animals))

	completed := day.CompletedAt != nil || allAnswered(day.Answered)
	out := &models.ChallengeToday{
		Date:      date,
		Animals:   quizAnimals(animals),
		Answered:  append([]bool(nil), day.Answered...),
		Completed: completed,
	}
	if completed {
		score := day.Score
		out.Score = &score
	}
	return out, nil
}

// SubmitAnswer checks a challenge answer. First-time-correct awards points
// (reduced when the answer was ad-revealed) and advances the shared streak;
// challenge answers never pay coins. Completion at full size records the
// day's cumulative score for the leaderboard.
func (s *ChallengeService) SubmitAnswer(ctx context.Context, userID string, animalIndex int, answer string, adRevealed bool) (*models.AnswerResult, error) {
	date := s.todayISO()
	animals := s.SelectForDate(date)
	if animalIndex < 0 || animalIndex >= len(animals) {
		return nil, ErrInvalidRequest
	}
	expected := animals[animalIndex]
	isCorrect := answersMatch(answer, expected.Name)

	points := s.cfg.BasePointAward
	if adRevealed {
		points = s.cfg.ChallengeAdPoints
	}

	var result models.AnswerResult
	_, err := s.store.Mutate(ctx, userID, func(rec *models.UserRecord) error {
		result = models.AnswerResult{Correct: isCorrect, CorrectAnswer: expected.Name}

		day := rec.DailyChallenges[date]
		already := day != nil && animalIndex < len(day.Answered) && day.Answered[animalIndex]

		// The day entry is only materialized on a first correct answer, so
		// wrong-only participants never gain a leaderboard row.
		if isCorrect && !already {
			day = rec.EnsureChallenge(date, len(animals))
			day.Answered[animalIndex] = true
			day.Score += points
			rec.TotalPoints += points
			result.PointsAwarded = points

			// Streak state is shared with level quizzes, but the bonus
			// coins are not paid here: challenges never add to coins.
			applyStreak(rec, s.cfg, s.now())

			if allAnswered(day.Answered) && day.CompletedAt == nil {
				ts := s.now().UTC()
				day.CompletedAt = &ts
				result.NewAchievements = evaluateChallengeAchievements(rec, s.now())
			}
		}

		result.TotalCoins = rec.TotalCoins
		result.CurrentStreak = rec.CurrentStreak
		result.LastActivityDate = rec.LastActivityDate
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// Leaderboard ranks users by their cumulative score for a challenge date.
// date may be "today" or empty for the current UTC date. Ties break by
// earlier completion, then by identity for determinism.
func (s *ChallengeService) Leaderboard(ctx context.Context, date string) (string, []models.ChallengeLeaderboardEntry, error) {
	if date == "" || date == "today" {
		date = s.todayISO()
	}

	recs, err := s.store.ListAll(ctx)
	if err != nil {
		return date, nil, err
	}

	type row struct {
		rec *models.UserRecord
		day *models.ChallengeDay
	}
	var rows []row
	for _, rec := range recs {
		if day, ok := rec.DailyChallenges[date]; ok {
			rows = append(rows, row{rec: rec, day: day})
		}
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].day.Score != rows[j].day.Score {
			return rows[i].day.Score > rows[j].day.Score
		}
		ti, tj := rows[i].day.CompletedAt, rows[j].day.CompletedAt
		switch {
		case ti != nil && tj != nil && !ti.Equal(*tj):
			return ti.Before(*tj)
		case ti != nil && tj == nil:
			return true
		case ti == nil && tj != nil:
			return false
		}
		return rows[i].rec.ID < rows[j].rec.ID
	})

	entries := make([]models.ChallengeLeaderboardEntry, 0, len(rows))
	for i, r := range rows {
		entries = append(entries, models.ChallengeLeaderboardEntry{
			Rank:        i + 1,
			UserID:      r.rec.ID,
			Username:    r.rec.Username,
			Score:       r.day.Score,
			CompletedAt: r.day.CompletedAt,
			PhotoURL:    r.rec.PhotoURL,
		})
	}
	return date, entries, nil
}

func quizAnimals(animals []catalog.Animal) []models.QuizAnimal {
	out := make([]models.QuizAnimal, 0, len(animals))
	for _, a := range animals {
		out = append(out, models.QuizAnimal{ID: a.ID, Name: a.Name, Emoji: a.Emoji, ImageURL: a.ImageURL})
	}
	return out
}

func allAnswered(bits []bool) bool {
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
