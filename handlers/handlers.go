// handlers/handlers.go - Handler wiring
package handlers

import (
	"animalquiz/catalog"
	"animalquiz/config"
	"animalquiz/services"
	"animalquiz/store"
)

var (
	appConfig      *config.Config
	animalCatalog  *catalog.Catalog
	userStore      store.UserStore
	quizService    *services.QuizService
	challengeSvc   *services.ChallengeService
	leaderboardSvc *services.LeaderboardService
)

// Init wires the handler package to its dependencies. Call once at startup
// before registering routes.
func Init(cfg *config.Config, cat *catalog.Catalog, st store.UserStore) {
	appConfig = cfg
	animalCatalog = cat
	userStore = st
	quizService = services.NewQuizService(st, cat, cfg.Game)
	challengeSvc = services.NewChallengeService(st, cat, cfg.Game)
	leaderboardSvc = services.NewLeaderboardService(st, cat)
}
