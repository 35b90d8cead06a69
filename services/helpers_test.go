package services_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"animalquiz/catalog"
	"animalquiz/config"
	"animalquiz/models"
	"animalquiz/store"
)

const (
	testAnimals = `[
		{"name":"Dog","level":1,"rarity":1,"emoji":"d"},
		{"name":"Cat","level":1,"rarity":1,"emoji":"c"},
		{"name":"Fox","level":2,"rarity":2,"emoji":"f"},
		{"name":"Owl","level":2,"rarity":2,"emoji":"o"},
		{"name":"Numbat","level":0,"rarity":9},
		{"name":"Quokka","level":0,"rarity":8},
		{"name":"Axolotl","level":0,"rarity":9},
		{"name":"Okapi","level":0,"rarity":9},
		{"name":"Saola","level":0,"rarity":10}
	]`
	testLevels = `[
		{"id":1,"title":"One","emoji":"1"},
		{"id":2,"title":"Two","emoji":"2"}
	]`
)

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.Parse([]byte(testAnimals), []byte(testLevels))
	if err != nil {
		t.Fatalf("test catalog invalid: %v", err)
	}
	return cat
}

func testGameConfig() config.GameConfig {
	return config.GameConfig{
		BaseCoinAward:     10,
		BasePointAward:    20,
		ChallengeAdPoints: 3,
		ChallengeSize:     3,
		StreakBonusPerDay: 2,
		StreakBonusCap:    20,
		StreakResetOnGap:  true,
	}
}

// fakeClock is a settable time source shared with a service under test.
type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func newFakeClock(iso string) *fakeClock {
	ts, err := time.Parse("2006-01-02", iso)
	if err != nil {
		panic(err)
	}
	return &fakeClock{t: ts.Add(12 * time.Hour)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

func createTestUser(t *testing.T, st store.UserStore, cat *catalog.Catalog, id, username string) {
	t.Helper()
	err := st.Create(context.Background(), &models.UserRecord{
		ID:              id,
		Username:        username,
		PasswordHash:    "x",
		Progress:        cat.EmptyProgress(),
		DailyChallenges: map[string]*models.ChallengeDay{},
		Achievements:    map[string]time.Time{},
		CreatedAt:       time.Now().UTC(),
	})
	if err != nil {
		t.Fatalf("create user %s failed: %v", id, err)
	}
}
