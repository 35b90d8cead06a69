// services/quiz_service.go - Answer engine for level quizzes
package services

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"animalquiz/catalog"
	"animalquiz/config"
	"animalquiz/models"
	"animalquiz/store"
)

// ErrInvalidRequest is returned for submissions naming a level or index that
// does not exist. No record state is touched in that case.
var ErrInvalidRequest = errors.New("invalid level or animal index")

// QuizService validates level-quiz submissions, decides rewards, and commits
// progress updates through the store's per-identity mutate window.
type QuizService struct {
	store store.UserStore
	cat   *catalog.Catalog
	cfg   config.GameConfig
	now   func() time.Time
}

func NewQuizService(st store.UserStore, cat *catalog.Catalog, cfg config.GameConfig) *QuizService {
	return NewQuizServiceWithClock(st, cat, cfg, time.Now)
}

// NewQuizServiceWithClock allows deterministic dates in tests.
func NewQuizServiceWithClock(st store.UserStore, cat *catalog.Catalog, cfg config.GameConfig, now func() time.Time) *QuizService {
	return &QuizService{store: st, cat: cat, cfg: cfg, now: now}
}

// answersMatch compares a guess to the canonical name: surrounding whitespace
// is ignored and the comparison is case-insensitive.
func answersMatch(guess, canonical string) bool {
	return strings.EqualFold(strings.TrimSpace(guess), canonical)
}

// SubmitAnswer checks an answer and updates progress, coins, points, and
// streak atomically. The already-guessed check and the award are one unit
// inside Mutate, so concurrent duplicate submissions award at most once.
func (s *QuizService) SubmitAnswer(ctx context.Context, userID string, levelID, animalIndex int, answer string) (*models.AnswerResult, error) {
	expected, ok := s.cat.AnimalAt(levelID, animalIndex)
	if !ok {
		return nil, ErrInvalidRequest
	}
	isCorrect := answersMatch(answer, expected.Name)

	var result models.AnswerResult
	_, err := s.store.Mutate(ctx, userID, func(rec *models.UserRecord) error {
		result = models.AnswerResult{Correct: isCorrect, CorrectAnswer: expected.Name}

		rec.EnsureProgress(s.cat.EmptyProgress())
		bits := rec.Progress[levelID]
		alreadyGuessed := bits[animalIndex]

		if isCorrect && !alreadyGuessed {
			bits[animalIndex] = true
			bonus := applyStreak(rec, s.cfg, s.now())
			result.StreakBonusCoins = bonus
			result.CoinsAwarded = s.cfg.BaseCoinAward + bonus
			result.PointsAwarded = s.cfg.BasePointAward
			rec.TotalCoins += result.CoinsAwarded
			rec.TotalPoints += result.PointsAwarded
			result.NewAchievements = evaluateAnswerAchievements(rec, levelID, s.now())
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

// Progress returns per-level animals enriched with the user's guessed flags,
// keyed by level id string.
func (s *QuizService) Progress(ctx context.Context, userID string) (map[string][]models.AnimalWithStatus, error) {
	rec, err := s.store.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	rec.EnsureProgress(s.cat.EmptyProgress())

	out := make(map[string][]models.AnimalWithStatus, len(rec.Progress))
	for _, lvl := range s.cat.Levels() {
		bits := rec.Progress[lvl.ID]
		animals := make([]models.AnimalWithStatus, 0, len(lvl.Animals))
		for i, a := range lvl.Animals {
			animals = append(animals, models.AnimalWithStatus{
				QuizAnimal: models.QuizAnimal{ID: a.ID, Name: a.Name, Emoji: a.Emoji, ImageURL: a.ImageURL},
				Guessed:    i < len(bits) && bits[i],
			})
		}
		out[strconv.Itoa(lvl.ID)] = animals
	}
	return out, nil
}

// LevelGuessed returns the guessed bits for a single level.
func (s *QuizService) LevelGuessed(ctx context.Context, userID string, levelID int) ([]bool, error) {
	rec, err := s.store.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	rec.EnsureProgress(s.cat.EmptyProgress())
	return rec.Progress[levelID], nil
}

// Coins returns the user's total coins.
func (s *QuizService) Coins(ctx context.Context, userID string) (int, error) {
	rec, err := s.store.Get(ctx, userID)
	if err != nil {
		return 0, err
	}
	return rec.TotalCoins, nil
}
