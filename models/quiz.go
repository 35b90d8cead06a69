// models/quiz.go - Wire types for quiz, challenge, and leaderboard responses
package models

import (
	"time"
)

// AnswerRequest is the level-quiz submission payload.
type AnswerRequest struct {
	LevelID     int    `json:"levelId"`
	AnimalIndex int    `json:"animalIndex"`
	Answer      string `json:"answer"`
}

// ChallengeAnswerRequest is the daily-challenge submission payload.
type ChallengeAnswerRequest struct {
	AnimalIndex int    `json:"animalIndex"`
	Answer      string `json:"answer"`
	AdRevealed  bool   `json:"adRevealed"`
}

// AnswerResult is returned for both quiz and challenge submissions.
type AnswerResult struct {
	Correct          bool     `json:"correct"`
	CoinsAwarded     int      `json:"coinsAwarded"`
	TotalCoins       int      `json:"totalCoins"`
	PointsAwarded    int      `json:"pointsAwarded"`
	CorrectAnswer    string   `json:"correctAnswer"`
	CurrentStreak    int      `json:"currentStreak"`
	LastActivityDate *string  `json:"lastActivityDate,omitempty"`
	StreakBonusCoins int      `json:"streakBonusCoins"`
	NewAchievements  []string `json:"newAchievements,omitempty"`
}

// QuizAnimal is the animal view used in level and challenge listings.
type QuizAnimal struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Emoji    string `json:"emoji"`
	ImageURL string `json:"imageUrl"`
}

// AnimalWithStatus adds the per-user guessed flag for level detail views.
type AnimalWithStatus struct {
	QuizAnimal
	Guessed bool `json:"guessed"`
}

// LevelSummary lists a level with its animals.
type LevelSummary struct {
	ID      int          `json:"id"`
	Title   string       `json:"title"`
	Emoji   string       `json:"emoji"`
	Animals []QuizAnimal `json:"animals"`
}

// LevelDetail is LevelSummary plus guessed status for the current user.
type LevelDetail struct {
	ID      int                `json:"id"`
	Title   string             `json:"title"`
	Emoji   string             `json:"emoji"`
	Animals []AnimalWithStatus `json:"animals"`
}

// LeaderboardEntry is one row of the global leaderboard.
type LeaderboardEntry struct {
	Rank            int    `json:"rank"`
	UserID          string `json:"userId"`
	Username        string `json:"username"`
	TotalPoints     int    `json:"totalPoints"`
	LevelsCompleted int    `json:"levelsCompleted"`
	CurrentStreak   int    `json:"currentStreak"`
	PhotoURL        string `json:"photoUrl,omitempty"`
}

// ChallengeLeaderboardEntry is one row of a daily challenge ranking.
type ChallengeLeaderboardEntry struct {
	Rank        int        `json:"rank"`
	UserID      string     `json:"userId"`
	Username    string     `json:"username"`
	Score       int        `json:"score"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
	PhotoURL    string     `json:"photoUrl,omitempty"`
}

// ChallengeToday describes today's challenge and the user's state in it.
type ChallengeToday struct {
	Date      string       `json:"date"`
	Animals   []QuizAnimal `json:"animals"`
	Answered  []bool       `json:"answered"`
	Completed bool         `json:"completed"`
	Score     *int         `json:"score,omitempty"`
}

// Achievement is a static achievement definition.
type Achievement struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// UnlockedAchievement pairs an achievement id with its unlock time.
type UnlockedAchievement struct {
	ID         string    `json:"id"`
	UnlockedAt time.Time `json:"unlockedAt"`
}
