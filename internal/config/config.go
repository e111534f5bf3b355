package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"ticticpou-ranking/internal/constants"
)

type Config struct {
	DBPath         string
	ServerPort     string
	LogLevel       string
	RedisAddr      string
	RedisPassword  string
	IdentityAPIURL string
	IdentityAPIKey string

	DefaultLeaderboardLimit int
}

func Load(logger zerolog.Logger) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logger.Debug().Msg(".env file not found, using environment variables or defaults")
	}

	cfg := &Config{
		DBPath:         getEnv("DB_PATH", "ticticpou.db"),
		ServerPort:     getEnv("SERVER_PORT", "8080"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		RedisAddr:      getEnv("REDIS_ADDR", ""),
		RedisPassword:  getEnv("REDIS_PASSWORD", ""),
		IdentityAPIURL: getEnv("IDENTITY_API_URL", "https://api.clerk.com"),
		IdentityAPIKey: getEnv("IDENTITY_API_KEY", ""),
	}

	limit, err := strconv.Atoi(getEnv("LEADERBOARD_DEFAULT_LIMIT", strconv.Itoa(constants.DefaultLeaderboardLimit)))
	if err != nil {
		return nil, fmt.Errorf("invalid LEADERBOARD_DEFAULT_LIMIT: %w", err)
	}
	if limit <= 0 || limit > constants.MaxLeaderboardLimit {
		return nil, fmt.Errorf("LEADERBOARD_DEFAULT_LIMIT must be between 1 and %d, got %d", constants.MaxLeaderboardLimit, limit)
	}
	cfg.DefaultLeaderboardLimit = limit

	logger.Info().
		Str("db_path", cfg.DBPath).
		Str("server_port", cfg.ServerPort).
		Str("log_level", cfg.LogLevel).
		Bool("redis_enabled", cfg.RedisAddr != "").
		Bool("identity_enabled", cfg.IdentityAPIKey != "").
		Int("default_leaderboard_limit", cfg.DefaultLeaderboardLimit).
		Msg("configuration loaded")

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

var Module = fx.Provide(Load)
