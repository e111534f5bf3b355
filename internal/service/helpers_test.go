package service

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"ticticpou-ranking/internal/api"
	"ticticpou-ranking/internal/cache"
	"ticticpou-ranking/internal/config"
	"ticticpou-ranking/internal/constants"
	"ticticpou-ranking/internal/database"
	"ticticpou-ranking/internal/db"
	"ticticpou-ranking/internal/domain"
	"ticticpou-ranking/internal/rating"
	"ticticpou-ranking/internal/repository"
)

type testEnv struct {
	players    *PlayerService
	matches    *MatchService
	rankings   *RankingService
	playerRepo *repository.PlayerRepository
	matchRepo  *repository.MatchRepository
	queries    *db.Queries
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	cfg := &config.Config{
		DBPath:                  filepath.Join(t.TempDir(), "test.db"),
		DefaultLeaderboardLimit: 50,
	}
	logger := zerolog.Nop()

	sqlDB, err := database.New(cfg, logger)
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	queries := db.New(sqlDB)
	playerRepo := repository.NewPlayerRepository(sqlDB, queries, logger)
	matchRepo := repository.NewMatchRepository(sqlDB, queries, logger)
	ledgerRepo := repository.NewLedgerRepository(queries, logger)
	leaderboards := cache.NopLeaderboardCache{}

	players := NewPlayerService(api.NewIdentityClient(cfg), playerRepo, leaderboards, logger)
	return &testEnv{
		players:    players,
		matches:    NewMatchService(players, matchRepo, leaderboards, logger),
		rankings:   NewRankingService(cfg, playerRepo, matchRepo, ledgerRepo, leaderboards, logger),
		playerRepo: playerRepo,
		matchRepo:  matchRepo,
		queries:    queries,
	}
}

// ffa builds a free-for-all result: ids[0] places first, ids[1] second...
func ffa(mode domain.GameMode, ids ...string) MatchInput {
	input := MatchInput{Mode: mode, RecordedBy: "ambassador"}
	for i, id := range ids {
		input.Participants = append(input.Participants, ParticipantInput{
			PlayerID:  id,
			Placement: i + 1,
		})
	}
	return input
}

func (e *testEnv) record(t *testing.T, input MatchInput) *domain.MatchWithParticipants {
	t.Helper()
	match, err := e.matches.RecordMatch(context.Background(), input)
	require.NoError(t, err)
	return match
}

func (e *testEnv) player(t *testing.T, id string) *domain.Player {
	t.Helper()
	p, err := e.players.GetPlayer(context.Background(), id)
	require.NoError(t, err)
	return p
}

// seedRatings stores one synthetic ledger row per player taking them from
// the default rating to the given one, so standings and ledger agree.
func (e *testEnv) seedRatings(t *testing.T, ratings map[string]int) {
	t.Helper()
	ctx := context.Background()

	ids := make([]string, 0, len(ratings))
	for id := range ratings {
		ids = append(ids, id)
	}
	require.NoError(t, e.players.EnsurePlayers(ctx, ids))

	now := time.Now().UTC()
	require.NoError(t, e.queries.InsertMatch(ctx, db.InsertMatchParams{
		ID:        "seed",
		Mode:      string(domain.ModeClassic),
		PlayedAt:  now,
		CreatedAt: now,
		UpdatedAt: now,
	}))

	for i, id := range ids {
		r := int64(ratings[id])
		require.NoError(t, e.queries.InsertParticipant(ctx, db.InsertParticipantParams{
			ID:           "seed-" + id,
			MatchID:      "seed",
			PlayerID:     id,
			Placement:    int64(i + 2),
			RatingBefore: rating.DefaultRating,
			RatingAfter:  r,
			RatingChange: r - rating.DefaultRating,
			CreatedAt:    now,
		}))
		require.NoError(t, e.queries.UpdatePlayerStanding(ctx, db.UpdatePlayerStandingParams{
			Rating:    r,
			Losses:    1,
			UpdatedAt: now,
			ID:        id,
		}))
	}
}

// requireLedgerChained checks every ledger row starts where the previous
// one ended and the newest one ends at the stored rating.
func (e *testEnv) requireLedgerChained(t *testing.T, ids ...string) {
	t.Helper()

	for _, id := range ids {
		history, err := e.rankings.History(context.Background(), id, constants.MaxLeaderboardLimit)
		require.NoError(t, err)

		expected := rating.DefaultRating
		for i := len(history) - 1; i >= 0; i-- {
			row := history[i]
			require.Equal(t, expected, row.RatingBefore, "%s row %d", id, i)
			require.Equal(t, row.RatingBefore+row.RatingChange, row.RatingAfter, "%s row %d", id, i)
			require.GreaterOrEqual(t, row.RatingAfter, rating.MinRating, "%s row %d", id, i)
			expected = row.RatingAfter
		}
		require.Equal(t, expected, e.player(t, id).Rating, id)
	}
}
