package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"connectrpc.com/connect"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/types/known/timestamppb"

	ticticpouv1 "ticticpou-ranking/gen/proto/ticticpou/v1"
	"ticticpou-ranking/gen/proto/ticticpou/v1/ticticpouv1connect"
	"ticticpou-ranking/internal/api"
	"ticticpou-ranking/internal/cache"
	"ticticpou-ranking/internal/config"
	"ticticpou-ranking/internal/database"
	"ticticpou-ranking/internal/db"
	"ticticpou-ranking/internal/repository"
	"ticticpou-ranking/internal/service"
)

type clients struct {
	ranking ticticpouv1connect.RankingServiceClient
	matches ticticpouv1connect.MatchServiceClient
	players ticticpouv1connect.PlayerServiceClient
}

func newTestClients(t *testing.T, opts ...connect.ClientOption) clients {
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

	playerSvc := service.NewPlayerService(api.NewIdentityClient(cfg), playerRepo, leaderboards, logger)
	matchSvc := service.NewMatchService(playerSvc, matchRepo, leaderboards, logger)
	rankingSvc := service.NewRankingService(cfg, playerRepo, matchRepo, ledgerRepo, leaderboards, logger)

	mux := http.NewServeMux()
	for path, handler := range NewLeagueServer(playerSvc, matchSvc, rankingSvc).Handlers(logger) {
		mux.Handle(path, handler)
	}

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	return clients{
		ranking: ticticpouv1connect.NewRankingServiceClient(srv.Client(), srv.URL, opts...),
		matches: ticticpouv1connect.NewMatchServiceClient(srv.Client(), srv.URL, opts...),
		players: ticticpouv1connect.NewPlayerServiceClient(srv.Client(), srv.URL, opts...),
	}
}

func duel(winner, loser string) []*ticticpouv1.Participant {
	return []*ticticpouv1.Participant{
		{PlayerId: winner, Placement: 1},
		{PlayerId: loser, Placement: 2},
	}
}

func TestRecordMatchAndLeaderboard(t *testing.T) {
	c := newTestClients(t)
	ctx := context.Background()

	playedAt := time.Date(2024, 5, 4, 18, 30, 0, 0, time.UTC)
	resp, err := c.matches.RecordMatch(ctx, connect.NewRequest(&ticticpouv1.RecordMatchRequest{
		Mode:       "classic",
		Location:   "schoolyard",
		PlayedAt:   timestamppb.New(playedAt),
		RecordedBy: "ambassador",
		Participants: []*ticticpouv1.Participant{
			{PlayerId: "ana", Placement: 1, ClassPlayed: "ninja"},
			{PlayerId: "bob", Placement: 2},
			{PlayerId: "cam", Placement: 3},
			{PlayerId: "dee", Placement: 4, Eliminations: 5},
		},
	}))
	require.NoError(t, err)

	match := resp.Msg.GetMatch()
	require.NotEmpty(t, match.GetMatchId())
	assert.Equal(t, "schoolyard", match.GetLocation())
	assert.True(t, match.GetPlayedAt().AsTime().Equal(playedAt))
	require.Len(t, match.GetParticipants(), 4)
	assert.Equal(t, int32(1016), match.GetParticipants()[0].GetRatingAfter())
	assert.Equal(t, "ninja", match.GetParticipants()[0].GetClassPlayed())
	assert.Equal(t, int32(999), match.GetParticipants()[3].GetRatingAfter())

	board, err := c.ranking.GetLeaderboard(ctx, connect.NewRequest(&ticticpouv1.GetLeaderboardRequest{Limit: 3}))
	require.NoError(t, err)
	assert.Equal(t, "global", board.Msg.GetLeaderboard().GetMode())
	entries := board.Msg.GetLeaderboard().GetEntries()
	require.Len(t, entries, 3)
	assert.Equal(t, "ana", entries[0].GetPlayerId())
	assert.Equal(t, "bob", entries[1].GetPlayerId())
	assert.Equal(t, "dee", entries[2].GetPlayerId())

	stats, err := c.ranking.GetPlayerStats(ctx, connect.NewRequest(&ticticpouv1.GetPlayerStatsRequest{PlayerId: "cam", Mode: "classic"}))
	require.NoError(t, err)
	assert.Equal(t, int32(4), stats.Msg.GetEntry().GetRank())
	assert.Equal(t, int32(995), stats.Msg.GetEntry().GetRating())

	history, err := c.ranking.GetRatingHistory(ctx, connect.NewRequest(&ticticpouv1.GetRatingHistoryRequest{PlayerId: "ana"}))
	require.NoError(t, err)
	require.Len(t, history.Msg.GetEntries(), 1)
	assert.Equal(t, match.GetMatchId(), history.Msg.GetEntries()[0].GetMatchId())
	assert.Equal(t, int32(16), history.Msg.GetEntries()[0].GetRatingChange())
}

func TestOverviewListsGlobalThenModes(t *testing.T) {
	c := newTestClients(t, connect.WithProtoJSON())
	ctx := context.Background()

	_, err := c.matches.RecordMatch(ctx, connect.NewRequest(&ticticpouv1.RecordMatchRequest{
		Mode:         "duel",
		Participants: duel("ana", "bob"),
	}))
	require.NoError(t, err)

	resp, err := c.ranking.GetOverview(ctx, connect.NewRequest(&ticticpouv1.GetOverviewRequest{}))
	require.NoError(t, err)

	var modes []string
	for _, board := range resp.Msg.GetBoards() {
		modes = append(modes, board.GetMode())
	}
	assert.Equal(t, []string{"global", "classic", "duel", "team", "survival"}, modes)
	assert.Len(t, resp.Msg.GetBoards()[0].GetEntries(), 2)
	assert.Len(t, resp.Msg.GetBoards()[2].GetEntries(), 2)
	assert.Empty(t, resp.Msg.GetBoards()[1].GetEntries())
}

func TestEditAndDeleteMatch(t *testing.T) {
	c := newTestClients(t)
	ctx := context.Background()

	resp, err := c.matches.RecordMatch(ctx, connect.NewRequest(&ticticpouv1.RecordMatchRequest{
		Mode:         "duel",
		Participants: duel("ana", "bob"),
	}))
	require.NoError(t, err)
	id := resp.Msg.GetMatch().GetMatchId()

	edited, err := c.matches.EditMatch(ctx, connect.NewRequest(&ticticpouv1.EditMatchRequest{
		MatchId:      id,
		Mode:         "duel",
		Participants: duel("bob", "ana"),
	}))
	require.NoError(t, err)
	assert.Equal(t, id, edited.Msg.GetMatch().GetMatchId())

	bob, err := c.players.GetPlayer(ctx, connect.NewRequest(&ticticpouv1.GetPlayerRequest{PlayerId: "bob"}))
	require.NoError(t, err)
	assert.Equal(t, int32(1016), bob.Msg.GetPlayer().GetRating())
	assert.Equal(t, int32(1), bob.Msg.GetPlayer().GetWins())

	deleted, err := c.matches.DeleteMatch(ctx, connect.NewRequest(&ticticpouv1.DeleteMatchRequest{MatchId: id}))
	require.NoError(t, err)
	assert.Equal(t, id, deleted.Msg.GetMatchId())

	bob, err = c.players.GetPlayer(ctx, connect.NewRequest(&ticticpouv1.GetPlayerRequest{PlayerId: "bob"}))
	require.NoError(t, err)
	assert.Equal(t, int32(1000), bob.Msg.GetPlayer().GetRating())
	assert.Zero(t, bob.Msg.GetPlayer().GetWins()+bob.Msg.GetPlayer().GetLosses())

	_, err = c.matches.GetMatch(ctx, connect.NewRequest(&ticticpouv1.GetMatchRequest{MatchId: id}))
	assert.Equal(t, connect.CodeNotFound, connect.CodeOf(err))

	_, err = c.matches.EditMatch(ctx, connect.NewRequest(&ticticpouv1.EditMatchRequest{
		MatchId:      id,
		Mode:         "duel",
		Participants: duel("ana", "bob"),
	}))
	assert.Equal(t, connect.CodeNotFound, connect.CodeOf(err))
}

func TestErrorCodes(t *testing.T) {
	c := newTestClients(t)
	ctx := context.Background()

	_, err := c.matches.RecordMatch(ctx, connect.NewRequest(&ticticpouv1.RecordMatchRequest{
		Mode:         "classic",
		Participants: []*ticticpouv1.Participant{{PlayerId: "ana", Placement: 1}},
	}))
	assert.Equal(t, connect.CodeInvalidArgument, connect.CodeOf(err))

	_, err = c.ranking.GetLeaderboard(ctx, connect.NewRequest(&ticticpouv1.GetLeaderboardRequest{Mode: "poker"}))
	assert.Equal(t, connect.CodeInvalidArgument, connect.CodeOf(err))

	empty, err := c.ranking.GetLeaderboard(ctx, connect.NewRequest(&ticticpouv1.GetLeaderboardRequest{Mode: "team"}))
	require.NoError(t, err)
	assert.Empty(t, empty.Msg.GetLeaderboard().GetEntries())

	_, err = c.ranking.GetPlayerStats(ctx, connect.NewRequest(&ticticpouv1.GetPlayerStatsRequest{PlayerId: "nobody"}))
	assert.Equal(t, connect.CodeNotFound, connect.CodeOf(err))

	_, err = c.players.SyncPlayerProfile(ctx, connect.NewRequest(&ticticpouv1.SyncPlayerProfileRequest{PlayerId: "ana"}))
	assert.Equal(t, connect.CodeFailedPrecondition, connect.CodeOf(err))

	rebuilt, err := c.players.RebuildStandings(ctx, connect.NewRequest(&ticticpouv1.RebuildStandingsRequest{}))
	require.NoError(t, err)
	assert.Zero(t, rebuilt.Msg.GetCorrected())
}
