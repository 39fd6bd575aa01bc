package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port        string
	Timezone    string
	DBPath      string
	JWTSecret   string
	TokenTTLHrs int
	BcryptCost  int
}

func Load() AppConfig {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Printf("[cfg] No .env file found or error loading: %v", err)
	}

	get := func(k, def string) string {
		if v := os.Getenv(k); v != "" {
			return v
		}
		return def
	}
	getInt := func(k string, def int) int {
		if v, err := strconv.Atoi(os.Getenv(k)); err == nil && v > 0 {
			return v
		}
		return def
	}
	cfg := AppConfig{
		Port:        get("PORT", "8080"),
		Timezone:    get("TZ", "UTC"),
		DBPath:      get("DB_PATH", "harvestpro.db"),
		JWTSecret:   get("JWT_SECRET", "dev-secret-change-me"),
		TokenTTLHrs: getInt("TOKEN_TTL_HOURS", 72),
		BcryptCost:  getInt("BCRYPT_COST", 10),
	}
	log.Printf("[cfg] port=%s db=%s token_ttl=%dh", cfg.Port, cfg.DBPath, cfg.TokenTTLHrs)
	return cfg
}
