package constants

import "time"

const (
	LeaderboardCacheTTL = 2 * time.Minute
)

const (
	IdentityAPITimeout = 5 * time.Second
	DatabaseTimeout    = 5 * time.Second
	RequestTimeout     = 30 * time.Second
	CacheTimeout       = 500 * time.Millisecond
)

const (
	DBMaxOpenConns    = 100
	DBMaxIdleConns    = 10
	DBConnMaxLifetime = 1 * time.Hour
	DBMaxIdleTime     = 10 * time.Minute
)

const (
	ShutdownTimeout = 5 * time.Second
)

const (
	DefaultLeaderboardLimit = 50
	MaxLeaderboardLimit     = 500
	DefaultHistoryLimit     = 20
	MaxParticipants         = 32
)
