package service

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ticticpou-ranking/internal/cache"
	"ticticpou-ranking/internal/config"
	"ticticpou-ranking/internal/domain"
	"ticticpou-ranking/internal/repository"
)

func seedLeague(t *testing.T, env *testEnv) {
	t.Helper()

	env.record(t, ffa(domain.ModeClassic, "ana", "bob", "cam", "dee"))
	env.record(t, ffa(domain.ModeDuel, "bob", "ana"))
	env.record(t, ffa(domain.ModeDuel, "bob", "cam"))

	elims := ffa(domain.ModeSurvival, "dee", "ana")
	elims.Participants[0].Eliminations = 2
	elims.Participants[1].Eliminations = 1
	env.record(t, elims)
}

func TestGlobalLeaderboard(t *testing.T) {
	env := newTestEnv(t)
	seedLeague(t, env)

	entries, err := env.rankings.Leaderboard(context.Background(), domain.ModeGlobal, 0)
	require.NoError(t, err)
	require.Len(t, entries, 4)

	for i, e := range entries {
		assert.Equal(t, i+1, e.Rank)
		assert.Equal(t, domain.ModeGlobal, e.Mode)
		assert.Equal(t, env.player(t, e.PlayerID).Rating, e.Rating)
		if i > 0 {
			assert.GreaterOrEqual(t, entries[i-1].Rating, e.Rating)
		}
	}

	var ana domain.RankingEntry
	for _, e := range entries {
		if e.PlayerID == "ana" {
			ana = e
		}
	}
	assert.Equal(t, 3, ana.MatchesPlayed)
	assert.Equal(t, 1, ana.Wins)
	assert.Equal(t, 2, ana.Losses)
	assert.Equal(t, 1, ana.TotalEliminations)
	assert.InDelta(t, 1.0/3.0, ana.WinRate, 1e-9)
	assert.InDelta(t, 1.0/3.0, ana.AvgEliminations, 1e-9)
}

func TestModeLeaderboard(t *testing.T) {
	env := newTestEnv(t)
	seedLeague(t, env)
	ctx := context.Background()

	duel, err := env.rankings.Leaderboard(ctx, domain.ModeDuel, 0)
	require.NoError(t, err)
	require.Len(t, duel, 3)
	assert.Equal(t, "bob", duel[0].PlayerID)
	assert.Equal(t, 2, duel[0].Wins)
	assert.Equal(t, 0, duel[0].Losses)
	assert.Equal(t, 1.0, duel[0].WinRate)

	for _, e := range duel {
		assert.NotEqual(t, "dee", e.PlayerID)
	}

	team, err := env.rankings.Leaderboard(ctx, domain.ModeTeam, 0)
	require.NoError(t, err)
	assert.Empty(t, team)
}

func TestLeaderboardLimit(t *testing.T) {
	env := newTestEnv(t)
	seedLeague(t, env)
	ctx := context.Background()

	full, err := env.rankings.Leaderboard(ctx, domain.ModeGlobal, 0)
	require.NoError(t, err)

	top, err := env.rankings.Leaderboard(ctx, domain.ModeGlobal, 2)
	require.NoError(t, err)
	assert.Equal(t, full[:2], top)
}

func TestLeaderboardUnknownMode(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.rankings.Leaderboard(context.Background(), domain.GameMode("poker"), 10)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestPlayerStats(t *testing.T) {
	env := newTestEnv(t)
	seedLeague(t, env)
	ctx := context.Background()

	entry, err := env.rankings.PlayerStats(ctx, "cam", domain.ModeDuel)
	require.NoError(t, err)
	assert.Equal(t, "cam", entry.PlayerID)
	assert.Equal(t, 1, entry.MatchesPlayed)
	assert.Equal(t, 0, entry.Wins)

	board, err := env.rankings.Leaderboard(ctx, domain.ModeDuel, 0)
	require.NoError(t, err)
	for _, e := range board {
		if e.PlayerID == "cam" {
			assert.Equal(t, e.Rank, entry.Rank)
		}
	}

	_, err = env.rankings.PlayerStats(ctx, "dee", domain.ModeDuel)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = env.rankings.PlayerStats(ctx, "nobody", domain.ModeGlobal)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestOverview(t *testing.T) {
	env := newTestEnv(t)
	seedLeague(t, env)

	boards, err := env.rankings.Overview(context.Background(), 10)
	require.NoError(t, err)

	assert.Len(t, boards, len(domain.GameModes)+1)
	assert.Len(t, boards[domain.ModeGlobal], 4)
	assert.Len(t, boards[domain.ModeClassic], 4)
	assert.Len(t, boards[domain.ModeSurvival], 2)
	assert.Empty(t, boards[domain.ModeTeam])
}

func TestHistory(t *testing.T) {
	env := newTestEnv(t)
	seedLeague(t, env)
	ctx := context.Background()

	history, err := env.rankings.History(ctx, "ana", 0)
	require.NoError(t, err)
	require.Len(t, history, 3)

	assert.Equal(t, domain.ModeSurvival, history[0].Mode)
	assert.Equal(t, domain.ModeClassic, history[2].Mode)
	assert.Equal(t, 1000, history[2].RatingBefore)
	for i := 0; i < len(history)-1; i++ {
		assert.Equal(t, history[i+1].RatingAfter, history[i].RatingBefore)
	}
	assert.Equal(t, env.player(t, "ana").Rating, history[0].RatingAfter)

	limited, err := env.rankings.History(ctx, "ana", 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)

	_, err = env.rankings.History(ctx, "nobody", 10)
	assert.ErrorIs(t, err, ErrNotFound)
}

// writeDuringScanCache invalidates right before the first Set, as a match
// write committing while a leaderboard is being computed would.
type writeDuringScanCache struct {
	*cache.RedisLeaderboardCache
	raced bool
}

func (c *writeDuringScanCache) Set(ctx context.Context, mode domain.GameMode, limit int, generation int64, entries []domain.RankingEntry) error {
	if !c.raced {
		c.raced = true
		if err := c.Invalidate(ctx); err != nil {
			return err
		}
	}
	return c.RedisLeaderboardCache.Set(ctx, mode, limit, generation, entries)
}

func TestLeaderboardNotCachedAcrossConcurrentWrite(t *testing.T) {
	env := newTestEnv(t)
	seedLeague(t, env)
	ctx := context.Background()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	redisCache := cache.NewRedisLeaderboardCache(client, zerolog.Nop())
	racing := &writeDuringScanCache{RedisLeaderboardCache: redisCache}
	rankings := NewRankingService(
		&config.Config{DefaultLeaderboardLimit: 50},
		env.playerRepo,
		env.matchRepo,
		repository.NewLedgerRepository(env.queries, zerolog.Nop()),
		racing,
		zerolog.Nop(),
	)

	entries, err := rankings.Leaderboard(ctx, domain.ModeGlobal, 0)
	require.NoError(t, err)
	require.Len(t, entries, 4)

	_, ok, err := redisCache.Get(ctx, domain.ModeGlobal, 50)
	require.NoError(t, err)
	assert.False(t, ok)

	again, err := rankings.Leaderboard(ctx, domain.ModeGlobal, 0)
	require.NoError(t, err)
	cached, ok, err := redisCache.Get(ctx, domain.ModeGlobal, 50)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, again, cached)
}
