// config/config.go - Application configuration from environment variables
package config

import (
	"log"
	"os"
	"strconv"
	"strings"
)

// Config holds runtime configuration loaded from the environment.
type Config struct {
	Port        string
	AppEnv      string
	JWTSecret   string
	APIKey      string
	CORSOrigins string
	DatabaseURL string

	Game GameConfig
}

// GameConfig groups the reward and streak tuning knobs.
type GameConfig struct {
	BaseCoinAward     int
	BasePointAward    int
	ChallengeAdPoints int
	ChallengeSize     int
	StreakBonusPerDay int
	StreakBonusCap    int
	StreakResetOnGap  bool
}

// Load reads configuration from environment variables, applying defaults.
func Load() Config {
	return Config{
		Port:        getEnv("PORT", "3000"),
		AppEnv:      getEnv("APP_ENV", "development"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		APIKey:      os.Getenv("API_KEY"),
		CORSOrigins: getEnv("CORS_ORIGINS", "http://localhost:3000"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		Game: GameConfig{
			BaseCoinAward:     getEnvInt("BASE_COIN_AWARD", 10),
			BasePointAward:    getEnvInt("BASE_POINT_AWARD", 20),
			ChallengeAdPoints: getEnvInt("CHALLENGE_AD_POINTS", 3),
			ChallengeSize:     getEnvInt("CHALLENGE_SIZE", 10),
			StreakBonusPerDay: getEnvInt("STREAK_BONUS_PER_DAY", 2),
			StreakBonusCap:    getEnvInt("STREAK_BONUS_CAP", 20),
			StreakResetOnGap:  getEnvBool("STREAK_RESET_ON_GAP", true),
		},
	}
}

// Validate fails fast on configuration that cannot work.
func (c Config) Validate() {
	if c.JWTSecret == "" {
		log.Fatal("FATAL: JWT_SECRET environment variable must be set. Generate one with: openssl rand -base64 64")
	}
	if len(c.JWTSecret) < 32 {
		log.Fatal("FATAL: JWT_SECRET must be at least 32 characters long")
	}
	if c.AppEnv == "production" {
		if c.CORSOrigins == "" || c.CORSOrigins == "http://localhost:3000" {
			log.Println("WARNING: CORS_ORIGINS not properly configured for production")
		}
		if c.APIKey == "" {
			log.Println("WARNING: API_KEY not set, legacy catalog routes are unprotected")
		}
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, def int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	val := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
	switch val {
	case "true", "1", "yes":
		return true
	case "false", "0", "no":
		return false
	}
	return def
}
