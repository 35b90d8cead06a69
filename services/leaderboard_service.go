// services/leaderboard_service.go - Global points ranking
package services

import (
	"context"
	"sort"

	"animalquiz/catalog"
	"animalquiz/models"
	"animalquiz/store"
)

// LeaderboardService ranks all users by lifetime points.
type LeaderboardService struct {
	store store.UserStore
	cat   *catalog.Catalog
}

func NewLeaderboardService(st store.UserStore, cat *catalog.Catalog) *LeaderboardService {
	return &LeaderboardService{store: st, cat: cat}
}

// Global returns a page of the all-time leaderboard ordered by total points.
// Ties break by identity so repeated calls produce a stable order. The second
// return value is the total number of ranked users before paging.
func (s *LeaderboardService) Global(ctx context.Context, limit, offset int) ([]models.LeaderboardEntry, int, error) {
	recs, err := s.store.ListAll(ctx)
	if err != nil {
		return nil, 0, err
	}

	sort.Slice(recs, func(i, j int) bool {
		if recs[i].TotalPoints != recs[j].TotalPoints {
			return recs[i].TotalPoints > recs[j].TotalPoints
		}
		return recs[i].ID < recs[j].ID
	})

	total := len(recs)
	if offset < 0 {
		offset = 0
	}
	if offset > total {
		offset = total
	}
	if limit <= 0 {
		limit = 50
	}
	end := offset + limit
	if end > total {
		end = total
	}

	entries := make([]models.LeaderboardEntry, 0, end-offset)
	for i := offset; i < end; i++ {
		rec := recs[i]
		entries = append(entries, models.LeaderboardEntry{
			Rank:            i + 1,
			UserID:          rec.ID,
			Username:        rec.Username,
			TotalPoints:     rec.TotalPoints,
			LevelsCompleted: rec.CompletedLevels(),
			CurrentStreak:   rec.CurrentStreak,
			PhotoURL:        rec.PhotoURL,
		})
	}
	return entries, total, nil
}
