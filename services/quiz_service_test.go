package services_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"animalquiz/services"
	"animalquiz/store"
)

func TestSubmitAnswerFirstCorrect(t *testing.T) {
	ctx := context.Background()
	cat := testCatalog(t)
	st := store.NewMemory(cat)
	clock := newFakeClock("2026-03-01")
	svc := services.NewQuizServiceWithClock(st, cat, testGameConfig(), clock.Now)
	createTestUser(t, st, cat, "u1", "alice")

	res, err := svc.SubmitAnswer(ctx, "u1", 1, 0, "Dog")
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if !res.Correct {
		t.Fatal("expected correct")
	}
	if res.CoinsAwarded != 10 || res.TotalCoins != 10 {
		t.Fatalf("expected 10 coins awarded and total, got %d/%d", res.CoinsAwarded, res.TotalCoins)
	}
	if res.PointsAwarded != 20 {
		t.Fatalf("expected 20 points, got %d", res.PointsAwarded)
	}
	if res.CurrentStreak != 1 {
		t.Fatalf("expected streak 1, got %d", res.CurrentStreak)
	}
	if res.StreakBonusCoins != 0 {
		t.Fatalf("fresh streak must pay no bonus, got %d", res.StreakBonusCoins)
	}
	if res.LastActivityDate == nil || *res.LastActivityDate != "2026-03-01" {
		t.Fatalf("expected activity date 2026-03-01, got %v", res.LastActivityDate)
	}
}

func TestSubmitAnswerRepeatAwardsOnce(t *testing.T) {
	ctx := context.Background()
	cat := testCatalog(t)
	st := store.NewMemory(cat)
	svc := services.NewQuizService(st, cat, testGameConfig())
	createTestUser(t, st, cat, "u1", "alice")

	if _, err := svc.SubmitAnswer(ctx, "u1", 1, 0, "Dog"); err != nil {
		t.Fatalf("first submit failed: %v", err)
	}
	res, err := svc.SubmitAnswer(ctx, "u1", 1, 0, "Dog")
	if err != nil {
		t.Fatalf("second submit failed: %v", err)
	}
	if !res.Correct {
		t.Fatal("repeat of a correct answer is still correct")
	}
	if res.CoinsAwarded != 0 || res.PointsAwarded != 0 {
		t.Fatalf("repeat must not award, got %d coins %d points", res.CoinsAwarded, res.PointsAwarded)
	}
	if res.TotalCoins != 10 {
		t.Fatalf("total coins changed on repeat: %d", res.TotalCoins)
	}
}

func TestSubmitAnswerNormalizesGuess(t *testing.T) {
	ctx := context.Background()
	cat := testCatalog(t)
	st := store.NewMemory(cat)
	svc := services.NewQuizService(st, cat, testGameConfig())
	createTestUser(t, st, cat, "u1", "alice")

	res, err := svc.SubmitAnswer(ctx, "u1", 1, 0, "  dOg ")
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if !res.Correct {
		t.Fatal("case and surrounding whitespace must not matter")
	}
}

func TestSubmitAnswerWrongGuess(t *testing.T) {
	ctx := context.Background()
	cat := testCatalog(t)
	st := store.NewMemory(cat)
	svc := services.NewQuizService(st, cat, testGameConfig())
	createTestUser(t, st, cat, "u1", "alice")

	res, err := svc.SubmitAnswer(ctx, "u1", 1, 0, "Wolf")
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if res.Correct {
		t.Fatal("expected incorrect")
	}
	if res.CorrectAnswer != "Dog" {
		t.Fatalf("expected canonical answer Dog, got %q", res.CorrectAnswer)
	}
	if res.TotalCoins != 0 || res.CurrentStreak != 0 {
		t.Fatalf("wrong guess must not change state, got %d coins streak %d", res.TotalCoins, res.CurrentStreak)
	}
}

func TestSubmitAnswerInvalidTarget(t *testing.T) {
	ctx := context.Background()
	cat := testCatalog(t)
	st := store.NewMemory(cat)
	svc := services.NewQuizService(st, cat, testGameConfig())
	createTestUser(t, st, cat, "u1", "alice")

	if _, err := svc.SubmitAnswer(ctx, "u1", 99, 0, "Dog"); !errors.Is(err, services.ErrInvalidRequest) {
		t.Fatalf("unknown level: expected ErrInvalidRequest, got %v", err)
	}
	if _, err := svc.SubmitAnswer(ctx, "u1", 1, 5, "Dog"); !errors.Is(err, services.ErrInvalidRequest) {
		t.Fatalf("index out of range: expected ErrInvalidRequest, got %v", err)
	}
	if _, err := svc.SubmitAnswer(ctx, "missing", 1, 0, "Dog"); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("unknown user: expected ErrNotFound, got %v", err)
	}
}

func TestStreakContinuesNextDay(t *testing.T) {
	ctx := context.Background()
	cat := testCatalog(t)
	st := store.NewMemory(cat)
	clock := newFakeClock("2026-03-01")
	svc := services.NewQuizServiceWithClock(st, cat, testGameConfig(), clock.Now)
	createTestUser(t, st, cat, "u1", "alice")

	if _, err := svc.SubmitAnswer(ctx, "u1", 1, 0, "Dog"); err != nil {
		t.Fatalf("day 1 submit failed: %v", err)
	}

	clock.Advance(24 * time.Hour)
	res, err := svc.SubmitAnswer(ctx, "u1", 1, 1, "Cat")
	if err != nil {
		t.Fatalf("day 2 submit failed: %v", err)
	}
	if res.CurrentStreak != 2 {
		t.Fatalf("expected streak 2, got %d", res.CurrentStreak)
	}
	if res.StreakBonusCoins != 4 {
		t.Fatalf("expected bonus 2*2=4, got %d", res.StreakBonusCoins)
	}
	if res.CoinsAwarded != 14 || res.TotalCoins != 24 {
		t.Fatalf("expected 14 awarded / 24 total, got %d/%d", res.CoinsAwarded, res.TotalCoins)
	}
}

func TestStreakResetsAfterGap(t *testing.T) {
	ctx := context.Background()
	cat := testCatalog(t)
	st := store.NewMemory(cat)
	clock := newFakeClock("2026-03-01")
	svc := services.NewQuizServiceWithClock(st, cat, testGameConfig(), clock.Now)
	createTestUser(t, st, cat, "u1", "alice")

	if _, err := svc.SubmitAnswer(ctx, "u1", 1, 0, "Dog"); err != nil {
		t.Fatalf("day 1 submit failed: %v", err)
	}

	clock.Advance(3 * 24 * time.Hour)
	res, err := svc.SubmitAnswer(ctx, "u1", 1, 1, "Cat")
	if err != nil {
		t.Fatalf("day 4 submit failed: %v", err)
	}
	if res.CurrentStreak != 1 {
		t.Fatalf("expected streak reset to 1, got %d", res.CurrentStreak)
	}
	if res.StreakBonusCoins != 0 || res.CoinsAwarded != 10 {
		t.Fatalf("reset streak must pay base only, got bonus %d award %d", res.StreakBonusCoins, res.CoinsAwarded)
	}
}

func TestStreakSameDayUnchanged(t *testing.T) {
	ctx := context.Background()
	cat := testCatalog(t)
	st := store.NewMemory(cat)
	clock := newFakeClock("2026-03-01")
	svc := services.NewQuizServiceWithClock(st, cat, testGameConfig(), clock.Now)
	createTestUser(t, st, cat, "u1", "alice")

	if _, err := svc.SubmitAnswer(ctx, "u1", 1, 0, "Dog"); err != nil {
		t.Fatalf("first submit failed: %v", err)
	}
	res, err := svc.SubmitAnswer(ctx, "u1", 1, 1, "Cat")
	if err != nil {
		t.Fatalf("second submit failed: %v", err)
	}
	if res.CurrentStreak != 1 {
		t.Fatalf("same-day answer must not advance streak, got %d", res.CurrentStreak)
	}
	if res.StreakBonusCoins != 0 || res.CoinsAwarded != 10 {
		t.Fatalf("same-day answer pays base only, got bonus %d award %d", res.StreakBonusCoins, res.CoinsAwarded)
	}
}

func TestConcurrentSubmissionsAwardOnce(t *testing.T) {
	ctx := context.Background()
	cat := testCatalog(t)
	st := store.NewMemory(cat)
	svc := services.NewQuizService(st, cat, testGameConfig())
	createTestUser(t, st, cat, "u1", "alice")

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = svc.SubmitAnswer(ctx, "u1", 1, 0, "Dog")
		}()
	}
	wg.Wait()

	coins, err := svc.Coins(ctx, "u1")
	if err != nil {
		t.Fatalf("coins failed: %v", err)
	}
	if coins != 10 {
		t.Fatalf("concurrent duplicates must award once, got %d coins", coins)
	}
}

func TestAnswerAchievements(t *testing.T) {
	ctx := context.Background()
	cat := testCatalog(t)
	st := store.NewMemory(cat)
	svc := services.NewQuizService(st, cat, testGameConfig())
	createTestUser(t, st, cat, "u1", "alice")

	res, err := svc.SubmitAnswer(ctx, "u1", 1, 0, "Dog")
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if !contains(res.NewAchievements, "first_correct") {
		t.Fatalf("expected first_correct, got %v", res.NewAchievements)
	}

	res, err = svc.SubmitAnswer(ctx, "u1", 1, 1, "Cat")
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if !contains(res.NewAchievements, "level_complete") {
		t.Fatalf("expected level_complete after clearing level 1, got %v", res.NewAchievements)
	}
	if contains(res.NewAchievements, "first_correct") {
		t.Fatal("first_correct must unlock only once")
	}
}

func TestProgressView(t *testing.T) {
	ctx := context.Background()
	cat := testCatalog(t)
	st := store.NewMemory(cat)
	svc := services.NewQuizService(st, cat, testGameConfig())
	createTestUser(t, st, cat, "u1", "alice")

	if _, err := svc.SubmitAnswer(ctx, "u1", 2, 1, "Owl"); err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	progress, err := svc.Progress(ctx, "u1")
	if err != nil {
		t.Fatalf("progress failed: %v", err)
	}
	if len(progress) != 2 {
		t.Fatalf("expected 2 levels, got %d", len(progress))
	}
	lvl2 := progress["2"]
	if len(lvl2) != 2 || !lvl2[1].Guessed || lvl2[0].Guessed {
		t.Fatalf("unexpected level 2 state: %+v", lvl2)
	}
}

func contains(list []string, want string) bool {
	for _, s := range list {
		if s == want {
			return true
		}
	}
	return false
}
