package cache

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ticticpou-ranking/internal/constants"
	"ticticpou-ranking/internal/domain"
)

func newTestCache(t *testing.T) (*RedisLeaderboardCache, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewRedisLeaderboardCache(client, zerolog.Nop()), mr
}

func TestRedisLeaderboardCacheRoundTrip(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	_, ok, err := c.Get(ctx, domain.ModeDuel, 10)
	require.NoError(t, err)
	assert.False(t, ok)

	entries := []domain.RankingEntry{
		{Rank: 1, PlayerID: "ana", Mode: domain.ModeDuel, Rating: 1032, MatchesPlayed: 2, Wins: 2, WinRate: 1},
		{Rank: 2, PlayerID: "bob", Mode: domain.ModeDuel, Rating: 968, MatchesPlayed: 2, Losses: 2},
	}
	require.NoError(t, c.Set(ctx, domain.ModeDuel, 10, 0, entries))

	got, ok, err := c.Get(ctx, domain.ModeDuel, 10)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, entries, got)

	_, ok, err = c.Get(ctx, domain.ModeDuel, 5)
	require.NoError(t, err)
	assert.False(t, ok)

	assert.Equal(t, constants.LeaderboardCacheTTL, mr.TTL("leaderboard:duel"))
}

func TestRedisLeaderboardCacheInvalidate(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, domain.ModeGlobal, 50, 0, []domain.RankingEntry{{Rank: 1, PlayerID: "ana"}}))
	require.NoError(t, c.Set(ctx, domain.ModeClassic, 50, 0, []domain.RankingEntry{{Rank: 1, PlayerID: "ana"}}))

	require.NoError(t, c.Invalidate(ctx))

	assert.False(t, mr.Exists("leaderboard:global"))
	assert.False(t, mr.Exists("leaderboard:classic"))

	generation, err := c.Generation(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), generation)
}

func TestRedisLeaderboardCacheSkipsStaleGeneration(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()
	board := []domain.RankingEntry{{Rank: 1, PlayerID: "ana", Rating: 1016}}

	generation, err := c.Generation(ctx)
	require.NoError(t, err)
	assert.Zero(t, generation)

	// a match write lands between the storage scan and the cache write
	require.NoError(t, c.Invalidate(ctx))

	require.NoError(t, c.Set(ctx, domain.ModeGlobal, 50, generation, board))
	_, ok, err := c.Get(ctx, domain.ModeGlobal, 50)
	require.NoError(t, err)
	assert.False(t, ok)

	generation, err = c.Generation(ctx)
	require.NoError(t, err)
	require.NoError(t, c.Set(ctx, domain.ModeGlobal, 50, generation, board))
	got, ok, err := c.Get(ctx, domain.ModeGlobal, 50)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, board, got)
}

func TestNopLeaderboardCache(t *testing.T) {
	var c LeaderboardCache = NopLeaderboardCache{}
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, domain.ModeGlobal, 10, 0, []domain.RankingEntry{{Rank: 1}}))
	_, ok, err := c.Get(ctx, domain.ModeGlobal, 10)
	require.NoError(t, err)
	assert.False(t, ok)
	generation, err := c.Generation(ctx)
	require.NoError(t, err)
	assert.Zero(t, generation)
	assert.NoError(t, c.Invalidate(ctx))
}
