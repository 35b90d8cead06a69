// models/user.go
package models

import (
	"time"
)

// ChallengeDay is one user's state for a single daily challenge date.
type ChallengeDay struct {
	Answered    []bool     `json:"answered"`
	Score       int        `json:"score"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// UserRecord is the per-user document owned by the store. Game-state maps are
// persisted as JSON columns; identity fields survive a reset.
type UserRecord struct {
	ID           string  `gorm:"primaryKey;size:64" json:"id"`
	Username     string  `gorm:"uniqueIndex;not null;size:30" json:"username"`
	Email        *string `gorm:"uniqueIndex" json:"email,omitempty"`
	PasswordHash string  `gorm:"not null" json:"-"`
	PhotoURL     string  `json:"photo_url"`

	TotalCoins       int     `gorm:"default:0" json:"total_coins"`
	TotalPoints      int     `gorm:"default:0" json:"total_points"`
	CurrentStreak    int     `gorm:"default:0" json:"current_streak"`
	LastActivityDate *string `gorm:"size:10" json:"last_activity_date,omitempty"`

	Progress        map[int][]bool           `gorm:"serializer:json" json:"progress,omitempty"`
	DailyChallenges map[string]*ChallengeDay `gorm:"serializer:json" json:"daily_challenges,omitempty"`
	Achievements    map[string]time.Time     `gorm:"serializer:json" json:"achievements,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (UserRecord) TableName() string {
	return "users"
}

// Clone returns a deep copy so a caller can mutate without touching the
// stored record until commit.
func (u *UserRecord) Clone() *UserRecord {
	cp := *u
	if u.Email != nil {
		email := *u.Email
		cp.Email = &email
	}
	if u.LastActivityDate != nil {
		d := *u.LastActivityDate
		cp.LastActivityDate = &d
	}
	if u.Progress != nil {
		cp.Progress = make(map[int][]bool, len(u.Progress))
		for lid, bits := range u.Progress {
			cp.Progress[lid] = append([]bool(nil), bits...)
		}
	}
	if u.DailyChallenges != nil {
		cp.DailyChallenges = make(map[string]*ChallengeDay, len(u.DailyChallenges))
		for date, day := range u.DailyChallenges {
			dayCopy := ChallengeDay{
				Answered: append([]bool(nil), day.Answered...),
				Score:    day.Score,
			}
			if day.CompletedAt != nil {
				ts := *day.CompletedAt
				dayCopy.CompletedAt = &ts
			}
			cp.DailyChallenges[date] = &dayCopy
		}
	}
	if u.Achievements != nil {
		cp.Achievements = make(map[string]time.Time, len(u.Achievements))
		for id, ts := range u.Achievements {
			cp.Achievements[id] = ts
		}
	}
	return &cp
}

// EnsureProgress lazily initializes progress and repairs level entries whose
// length drifted from the catalog (e.g. after a catalog update).
func (u *UserRecord) EnsureProgress(empty map[int][]bool) {
	if u.Progress == nil {
		u.Progress = make(map[int][]bool, len(empty))
	}
	for lid, blank := range empty {
		bits, ok := u.Progress[lid]
		if !ok {
			u.Progress[lid] = append([]bool(nil), blank...)
			continue
		}
		if len(bits) < len(blank) {
			u.Progress[lid] = append(bits, make([]bool, len(blank)-len(bits))...)
		} else if len(bits) > len(blank) {
			u.Progress[lid] = bits[:len(blank)]
		}
	}
}

// EnsureChallenge lazily initializes the entry for a challenge date, fixing
// the answered slice length if the challenge size changed.
func (u *UserRecord) EnsureChallenge(date string, size int) *ChallengeDay {
	if u.DailyChallenges == nil {
		u.DailyChallenges = make(map[string]*ChallengeDay)
	}
	day, ok := u.DailyChallenges[date]
	if !ok {
		day = &ChallengeDay{Answered: make([]bool, size)}
		u.DailyChallenges[date] = day
		return day
	}
	if len(day.Answered) < size {
		day.Answered = append(day.Answered, make([]bool, size-len(day.Answered))...)
	} else if len(day.Answered) > size {
		day.Answered = day.Answered[:size]
	}
	return day
}

// CompletedLevels counts levels where every animal has been guessed.
func (u *UserRecord) CompletedLevels() int {
	count := 0
	for _, bits := range u.Progress {
		if len(bits) == 0 {
			continue
		}
		done := true
		for _, b := range bits {
			if !b {
				done = false
				break
			}
		}
		if done {
			count++
		}
	}
	return count
}

// ResetGameData clears progress, rewards, streak, challenge history, and
// achievements while preserving identity fields.
func (u *UserRecord) ResetGameData(empty map[int][]bool) {
	u.TotalCoins = 0
	u.TotalPoints = 0
	u.CurrentStreak = 0
	u.LastActivityDate = nil
	u.Progress = empty
	u.DailyChallenges = make(map[string]*ChallengeDay)
	u.Achievements = make(map[string]time.Time)
}
