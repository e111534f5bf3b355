package config

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DB_PATH", "")
	t.Setenv("REDIS_ADDR", "")
	t.Setenv("IDENTITY_API_KEY", "")
	t.Setenv("LEADERBOARD_DEFAULT_LIMIT", "")

	cfg, err := Load(zerolog.Nop())
	require.NoError(t, err)

	assert.Equal(t, "ticticpou.db", cfg.DBPath)
	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, 50, cfg.DefaultLeaderboardLimit)
	assert.Empty(t, cfg.RedisAddr)
}

func TestLoadRejectsBadLimit(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{"should reject non numeric", "ten"},
		{"should reject zero", "0"},
		{"should reject above max", "100000"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Setenv("LEADERBOARD_DEFAULT_LIMIT", test.value)
			_, err := Load(zerolog.Nop())
			assert.Error(t, err)
		})
	}
}
