// main.go
package main

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	"animalquiz/catalog"
	"animalquiz/config"
	"animalquiz/database"
	"animalquiz/handlers"
	"animalquiz/middleware"
	"animalquiz/store"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	cfg := config.Load()
	cfg.Validate()

	// Load the animal catalog from the embedded data files
	cat := catalog.MustLoad()
	log.Printf("✅ Catalog loaded: %d levels, %d challenge-pool animals", len(cat.Levels()), len(cat.ChallengePool()))

	// Pick the user store: PostgreSQL when configured, otherwise in-memory
	var userStore store.UserStore
	if cfg.DatabaseURL != "" {
		database.InitDB()
		defer database.CloseDB()
		userStore = store.NewGorm(database.GetDB(), cat)
	} else {
		log.Println("Warning: DATABASE_URL not set, using in-memory store (data is process-local)")
		userStore = store.NewMemory(cat)
	}

	handlers.Init(&cfg, cat, userStore)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: customErrorHandler,
		BodyLimit:    1 * 1024 * 1024, // 1MB
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${method} ${path} (${latency})\n",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, X-API-Key",
		AllowCredentials: true,
	}))

	// Apply rate limiting to all routes
	app.Use(middleware.RateLimitMiddleware())

	// API Routes
	api := app.Group("/api/v1")

	// Auth routes with stricter rate limiting
	authGroup := api.Group("/auth")
	authGroup.Use(middleware.AuthRateLimitMiddleware())
	authGroup.Post("/register", handlers.Register)
	authGroup.Post("/login", handlers.Login)

	// Level and catalog views
	api.Get("/levels", handlers.ListLevels)
	api.Get("/levels/:id", middleware.AuthMiddleware, handlers.LevelDetail)

	// Quiz answer submission
	api.Post("/quiz/answer", middleware.AuthMiddleware, handlers.SubmitAnswer)

	// Daily challenge routes
	challengeGroup := api.Group("/challenge")
	challengeGroup.Get("/today", middleware.AuthMiddleware, handlers.ChallengeToday)
	challengeGroup.Post("/answer", middleware.AuthMiddleware, handlers.SubmitChallengeAnswer)
	challengeGroup.Get("/leaderboard", handlers.ChallengeLeaderboard)

	// Global leaderboard
	api.Get("/leaderboard", handlers.Leaderboard)

	// Achievements
	api.Get("/achievements", handlers.ListAchievements)
	api.Get("/users/me/achievements", middleware.AuthMiddleware, handlers.MyAchievements)

	// User routes (require authentication)
	userGroup := api.Group("/users")
	userGroup.Use(middleware.AuthMiddleware)
	userGroup.Get("/me", handlers.Me)
	userGroup.Patch("/me", handlers.UpdateProfile)
	userGroup.Get("/me/progress", handlers.MyProgress)
	userGroup.Get("/me/coins", handlers.MyCoins)
	userGroup.Post("/me/reset", handlers.ResetProgress)

	// Legacy catalog routes guarded by the shared API key
	animalsGroup := api.Group("/animals")
	animalsGroup.Use(middleware.APIKeyMiddleware)
	animalsGroup.Get("/", handlers.ListAnimals)
	animalsGroup.Get("/:id", handlers.GetAnimal)

	// Health check endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":    "healthy",
			"timestamp": time.Now().Unix(),
			"version":   "1.0.0",
		})
	})

	log.Printf("🚀 HTTP server starting on port %s", cfg.Port)
	log.Printf("📊 Environment: %s", cfg.AppEnv)
	log.Printf("🔐 JWT Secret configured: %v", cfg.JWTSecret != "")

	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start HTTP server:", err)
	}
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal Server Error"

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	errCode := "internal_error"
	switch code {
	case fiber.StatusUnauthorized:
		errCode = "unauthorized"
	case fiber.StatusNotFound:
		errCode = "not_found"
	case fiber.StatusBadRequest:
		errCode = "invalid_request"
	}

	return c.Status(code).JSON(fiber.Map{
		"error": fiber.Map{"code": errCode, "message": message},
	})
}
