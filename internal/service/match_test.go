package service

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ticticpou-ranking/internal/db"
	"ticticpou-ranking/internal/domain"
	"ticticpou-ranking/internal/rating"
)

func TestRecordMatch(t *testing.T) {
	env := newTestEnv(t)

	location := "  Lyon  "
	input := ffa(domain.ModeClassic, "ana", "bob", "cam", "dee")
	input.Location = &location
	input.Participants[0].ClassPlayed = "ninja"
	input.Participants[3].Eliminations = 5

	match := env.record(t, input)

	assert.NotEmpty(t, match.Match.ID)
	assert.Equal(t, domain.ModeClassic, match.Match.Mode)
	require.NotNil(t, match.Match.Location)
	assert.Equal(t, "Lyon", *match.Match.Location)
	assert.Equal(t, "ambassador", match.Match.RecordedBy)
	require.Len(t, match.Participants, 4)

	expected := map[string]struct {
		after  int
		change int
		winner bool
	}{
		"ana": {1016, 16, true},
		"bob": {1005, 5, false},
		"cam": {995, -5, false},
		"dee": {999, -1, false},
	}

	for _, p := range match.Participants {
		want := expected[p.PlayerID]
		assert.Equal(t, 1000, p.RatingBefore, p.PlayerID)
		assert.Equal(t, want.after, p.RatingAfter, p.PlayerID)
		assert.Equal(t, want.change, p.RatingChange, p.PlayerID)
		assert.Equal(t, want.winner, p.IsWinner, p.PlayerID)

		player := env.player(t, p.PlayerID)
		assert.Equal(t, want.after, player.Rating)
		if want.winner {
			assert.Equal(t, 1, player.Wins)
			assert.Equal(t, 0, player.Losses)
		} else {
			assert.Equal(t, 0, player.Wins)
			assert.Equal(t, 1, player.Losses)
		}
	}

	assert.Equal(t, "ninja", match.Participants[0].ClassPlayed)
	assert.Equal(t, "ana", env.player(t, "ana").DisplayName)
}

func TestRecordMatchInvalidInput(t *testing.T) {
	env := newTestEnv(t)

	tests := []struct {
		name  string
		input MatchInput
	}{{
		"should reject a single participant",
		ffa(domain.ModeClassic, "ana"),
	}, {
		"should reject the global sentinel as match mode",
		ffa(domain.ModeGlobal, "ana", "bob"),
	}, {
		"should reject unknown modes",
		ffa(domain.GameMode("poker"), "ana", "bob"),
	}, {
		"should reject a match without winner",
		MatchInput{Mode: domain.ModeDuel, Participants: []ParticipantInput{
			{PlayerID: "ana", Placement: 2},
			{PlayerID: "bob", Placement: 2},
		}},
	}, {
		"should reject the same player twice",
		ffa(domain.ModeDuel, "ana", "ana"),
	}}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := env.matches.RecordMatch(context.Background(), test.input)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}

	_, err := env.players.GetPlayer(context.Background(), "ana")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = env.matches.RecordMatch(context.Background(), ffa(domain.ModeDuel, "ana"))
	assert.ErrorIs(t, err, rating.ErrInvalidInput)
}

func TestRecordThenDeleteRestoresPlayers(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.record(t, ffa(domain.ModeDuel, "ana", "bob"))
	before := map[string]domain.Player{
		"ana": *env.player(t, "ana"),
		"bob": *env.player(t, "bob"),
	}

	match := env.record(t, ffa(domain.ModeClassic, "bob", "ana", "cam"))
	require.NoError(t, env.matches.DeleteMatch(ctx, match.Match.ID))

	for id, want := range before {
		got := env.player(t, id)
		assert.Equal(t, want.Rating, got.Rating, id)
		assert.Equal(t, want.Wins, got.Wins, id)
		assert.Equal(t, want.Losses, got.Losses, id)
	}

	cam := env.player(t, "cam")
	assert.Equal(t, rating.DefaultRating, cam.Rating)
	assert.Equal(t, 0, cam.Wins+cam.Losses)

	_, err := env.matches.GetMatch(ctx, match.Match.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestEditMatchReappliesFromRestoredRatings(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	match := env.record(t, ffa(domain.ModeDuel, "ana", "bob"))
	assert.Equal(t, 1016, env.player(t, "ana").Rating)

	edited, err := env.matches.EditMatch(ctx, match.Match.ID, ffa(domain.ModeDuel, "bob", "ana"))
	require.NoError(t, err)
	assert.Equal(t, match.Match.ID, edited.Match.ID)
	require.Len(t, edited.Participants, 2)

	for _, p := range edited.Participants {
		assert.Equal(t, 1000, p.RatingBefore)
	}

	ana := env.player(t, "ana")
	bob := env.player(t, "bob")
	assert.Equal(t, 984, ana.Rating)
	assert.Equal(t, 1016, bob.Rating)
	assert.Equal(t, 0, ana.Wins)
	assert.Equal(t, 1, ana.Losses)
	assert.Equal(t, 1, bob.Wins)
	assert.Equal(t, 0, bob.Losses)
}

func TestEditMatchCanChangeParticipantsAndMode(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	match := env.record(t, ffa(domain.ModeDuel, "ana", "bob"))

	edited, err := env.matches.EditMatch(ctx, match.Match.ID, ffa(domain.ModeSurvival, "cam", "ana"))
	require.NoError(t, err)
	assert.Equal(t, domain.ModeSurvival, edited.Match.Mode)

	bob := env.player(t, "bob")
	assert.Equal(t, 1000, bob.Rating)
	assert.Equal(t, 0, bob.Wins+bob.Losses)
	assert.Equal(t, 1016, env.player(t, "cam").Rating)
}

func TestEditAndDeleteUnknownMatch(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.record(t, ffa(domain.ModeDuel, "ana", "bob"))

	_, err := env.matches.EditMatch(ctx, "missing", ffa(domain.ModeDuel, "ana", "bob"))
	assert.ErrorIs(t, err, ErrNotFound)

	err = env.matches.DeleteMatch(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	assert.Equal(t, 1016, env.player(t, "ana").Rating)
}

func TestFailedReplaceLeavesPriorStateUntouched(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	match := env.record(t, ffa(domain.ModeDuel, "ana", "bob"))

	// Replace scores inside the transaction; a result set the engine rejects
	// must roll back the reversal that already ran.
	_, err := env.matchRepo.Replace(ctx, match.Match, []domain.MatchParticipant{
		{PlayerID: "ana", Placement: 2},
		{PlayerID: "bob", Placement: 2},
	})
	require.ErrorIs(t, err, rating.ErrInvalidInput)

	stored, err := env.matches.GetMatch(ctx, match.Match.ID)
	require.NoError(t, err)
	assert.Equal(t, match.Participants, stored.Participants)

	ana := env.player(t, "ana")
	assert.Equal(t, 1016, ana.Rating)
	assert.Equal(t, 1, ana.Wins)
}

func TestReversingOlderMatchKeepsLedgerFold(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	first := env.record(t, ffa(domain.ModeClassic, "ana", "bob", "cam"))
	env.record(t, ffa(domain.ModeDuel, "bob", "ana"))
	env.record(t, ffa(domain.ModeClassic, "cam", "ana", "bob"))

	_, err := env.matches.EditMatch(ctx, first.Match.ID, ffa(domain.ModeClassic, "cam", "bob", "ana"))
	require.NoError(t, err)

	corrected, err := env.players.RebuildStandings(ctx)
	require.NoError(t, err)
	assert.Zero(t, corrected)

	env.requireLedgerChained(t, "ana", "bob", "cam")

	require.NoError(t, env.matches.DeleteMatch(ctx, first.Match.ID))
	corrected, err = env.players.RebuildStandings(ctx)
	require.NoError(t, err)
	assert.Zero(t, corrected)
	env.requireLedgerChained(t, "ana", "bob", "cam")
}

func TestDeletingOlderMatchReplaysLaterRowsAtFloor(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.seedRatings(t, map[string]int{"xia": 100, "yan": 100})

	first := ffa(domain.ModeDuel, "xia", "yan")
	first.Participants[0].Eliminations = 10
	m1 := env.record(t, first)
	assert.Equal(t, 146, env.player(t, "xia").Rating)
	assert.Equal(t, 100, env.player(t, "yan").Rating)

	m2 := env.record(t, ffa(domain.ModeDuel, "yan", "xia"))
	assert.Equal(t, 128, env.player(t, "xia").Rating)
	assert.Equal(t, 118, env.player(t, "yan").Rating)

	require.NoError(t, env.matches.DeleteMatch(ctx, m1.Match.ID))

	// xia's -18 from the second match now starts at 100 and is floored
	assert.Equal(t, 100, env.player(t, "xia").Rating)
	assert.Equal(t, 118, env.player(t, "yan").Rating)

	stored, err := env.matches.GetMatch(ctx, m2.Match.ID)
	require.NoError(t, err)
	require.Len(t, stored.Participants, 2)
	yan, xia := stored.Participants[0], stored.Participants[1]
	assert.Equal(t, "xia", xia.PlayerID)
	assert.Equal(t, 100, xia.RatingBefore)
	assert.Equal(t, 100, xia.RatingAfter)
	assert.Equal(t, 0, xia.RatingChange)
	assert.Equal(t, 100, yan.RatingBefore)
	assert.Equal(t, 118, yan.RatingAfter)

	env.requireLedgerChained(t, "xia", "yan")

	corrected, err := env.players.RebuildStandings(ctx)
	require.NoError(t, err)
	assert.Zero(t, corrected)
}

func TestEditingOlderMatchReplaysLaterRows(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	first := env.record(t, ffa(domain.ModeDuel, "ana", "bob"))
	env.record(t, ffa(domain.ModeDuel, "ana", "bob"))

	edited, err := env.matches.EditMatch(ctx, first.Match.ID, ffa(domain.ModeDuel, "bob", "ana"))
	require.NoError(t, err)
	for _, p := range edited.Participants {
		assert.Equal(t, 1000, p.RatingBefore, p.PlayerID)
	}

	// the later match keeps its recorded +15/-15 on top of the new outcome
	ana := env.player(t, "ana")
	bob := env.player(t, "bob")
	assert.Equal(t, 999, ana.Rating)
	assert.Equal(t, 1001, bob.Rating)
	assert.Equal(t, 1, ana.Wins)
	assert.Equal(t, 1, ana.Losses)

	env.requireLedgerChained(t, "ana", "bob")
}

func TestConcurrentRecordsKeepLedgerConsistent(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	ids := []string{"ana", "bob", "cam", "dee"}
	require.NoError(t, env.players.EnsurePlayers(ctx, ids))

	var wg sync.WaitGroup
	errs := make(chan error, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			order := []string{ids[i%4], ids[(i+1)%4], ids[(i+2)%4]}
			if _, err := env.matches.RecordMatch(ctx, ffa(domain.ModeClassic, order...)); err != nil {
				errs <- fmt.Errorf("match %d: %w", i, err)
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	corrected, err := env.players.RebuildStandings(ctx)
	require.NoError(t, err)
	assert.Zero(t, corrected)

	games := 0
	for _, id := range ids {
		p := env.player(t, id)
		games += p.Wins + p.Losses
	}
	assert.Equal(t, 16*3, games)
}

func TestRebuildStandingsRepairsDrift(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.record(t, ffa(domain.ModeDuel, "ana", "bob"))

	err := env.queries.UpdatePlayerStanding(ctx, db.UpdatePlayerStandingParams{
		Rating:    1500,
		Wins:      7,
		Losses:    3,
		UpdatedAt: time.Now().UTC(),
		ID:        "ana",
	})
	require.NoError(t, err)

	corrected, err := env.players.RebuildStandings(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), corrected)

	ana := env.player(t, "ana")
	assert.Equal(t, 1016, ana.Rating)
	assert.Equal(t, 1, ana.Wins)
	assert.Equal(t, 0, ana.Losses)
}

func TestSyncProfileWithoutIdentityProvider(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.players.SyncProfile(context.Background(), "ana")
	assert.ErrorIs(t, err, ErrIdentityDisabled)
}
