// database/migrate.go - Database Migration Runner
package database

import (
	"log"

	"animalquiz/models"
)

// RunMigrations runs all database migrations
func RunMigrations() {
	db := GetDB()
	log.Println("🔄 Running database migrations...")

	if err := db.AutoMigrate(
		&models.UserRecord{},
	); err != nil {
		log.Fatalf("❌ Failed to run migrations: %v", err)
	}

	createIndexes()

	log.Println("✅ All migrations completed successfully")
}

// createIndexes creates indexes used by the leaderboard queries
func createIndexes() {
	db := GetDB()

	db.Exec("CREATE INDEX IF NOT EXISTS idx_users_total_points ON users(total_points DESC)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_users_last_activity ON users(last_activity_date)")

	log.Println("✅ Indexes created successfully")
}
