package ranking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ticticpou-ranking/internal/domain"
)

func fixture() ([]domain.Player, []domain.Participation) {
	players := []domain.Player{
		{ID: "ana", DisplayName: "Ana", Rating: 1040},
		{ID: "bob", DisplayName: "Bob", Rating: 990},
		{ID: "cam", DisplayName: "Cam", Rating: 1040},
		{ID: "dee", DisplayName: "Dee", Rating: 1100},
		{ID: "eve", DisplayName: "Eve", Rating: 1000},
	}
	participations := []domain.Participation{
		{PlayerID: "ana", Mode: domain.ModeClassic, IsWinner: true, Eliminations: 3},
		{PlayerID: "bob", Mode: domain.ModeClassic, Eliminations: 1},
		{PlayerID: "cam", Mode: domain.ModeClassic, Eliminations: 0},
		{PlayerID: "ana", Mode: domain.ModeDuel, Eliminations: 1},
		{PlayerID: "dee", Mode: domain.ModeDuel, IsWinner: true, Eliminations: 2},
		{PlayerID: "cam", Mode: domain.ModeClassic, IsWinner: true, Eliminations: 4},
	}
	return players, participations
}

func TestBuildModeLeaderboard(t *testing.T) {
	players, participations := fixture()

	entries := Build(players, participations, domain.ModeClassic, 0)
	require.Len(t, entries, 3)

	assert.Equal(t, "ana", entries[0].PlayerID)
	assert.Equal(t, "cam", entries[1].PlayerID)
	assert.Equal(t, "bob", entries[2].PlayerID)

	cam := entries[1]
	assert.Equal(t, 2, cam.Rank)
	assert.Equal(t, domain.ModeClassic, cam.Mode)
	assert.Equal(t, 2, cam.MatchesPlayed)
	assert.Equal(t, 1, cam.Wins)
	assert.Equal(t, 1, cam.Losses)
	assert.Equal(t, 0.5, cam.WinRate)
	assert.Equal(t, 4, cam.TotalEliminations)
	assert.Equal(t, 2.0, cam.AvgEliminations)
}

func TestBuildGlobalLeaderboard(t *testing.T) {
	players, participations := fixture()

	entries := Build(players, participations, domain.ModeGlobal, 0)
	require.Len(t, entries, 4)

	ids := make([]string, len(entries))
	for i, e := range entries {
		ids[i] = e.PlayerID
		assert.Equal(t, i+1, e.Rank)
	}
	assert.Equal(t, []string{"dee", "ana", "cam", "bob"}, ids)

	ana := entries[1]
	assert.Equal(t, 2, ana.MatchesPlayed)
	assert.Equal(t, 1, ana.Wins)
	assert.Equal(t, 1, ana.Losses)
	assert.Equal(t, 4, ana.TotalEliminations)
}

func TestBuildTieBreakKeepsInputOrder(t *testing.T) {
	players, participations := fixture()

	players[0], players[2] = players[2], players[0]
	entries := Build(players, participations, domain.ModeClassic, 0)

	assert.Equal(t, "cam", entries[0].PlayerID)
	assert.Equal(t, "ana", entries[1].PlayerID)
}

func TestBuildLimitAppliesAfterSort(t *testing.T) {
	players, participations := fixture()

	entries := Build(players, participations, domain.ModeGlobal, 2)
	require.Len(t, entries, 2)
	assert.Equal(t, "dee", entries[0].PlayerID)
	assert.Equal(t, "ana", entries[1].PlayerID)
}

func TestBuildOrderingInvariant(t *testing.T) {
	players, participations := fixture()

	for _, mode := range append([]domain.GameMode{domain.ModeGlobal}, domain.GameModes...) {
		entries := Build(players, participations, mode, 0)
		for i := range entries {
			assert.Equal(t, i+1, entries[i].Rank)
			if i > 0 {
				assert.GreaterOrEqual(t, entries[i-1].Rating, entries[i].Rating)
			}
		}
	}
}

func TestBuildEmptyMode(t *testing.T) {
	players, participations := fixture()

	entries := Build(players, participations, domain.ModeSurvival, 10)
	assert.NotNil(t, entries)
	assert.Empty(t, entries)
}

func TestFind(t *testing.T) {
	players, participations := fixture()

	entry, ok := Find(players, participations, domain.ModeDuel, "ana")
	require.True(t, ok)
	assert.Equal(t, 2, entry.Rank)
	assert.Equal(t, 0, entry.Wins)
	assert.Equal(t, 1, entry.Losses)

	_, ok = Find(players, participations, domain.ModeDuel, "eve")
	assert.False(t, ok)
}
