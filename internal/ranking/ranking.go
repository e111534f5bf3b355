// Package ranking folds ledger rows into leaderboards.
//
// Modes and the global board share one code path: the global board simply
// does not filter participations by mode. Rating always comes from the
// player's stored scalar, which already covers every mode.
package ranking

import (
	"slices"

	"ticticpou-ranking/internal/domain"
)

type tally struct {
	matches      int
	wins         int
	eliminations int
}

// Build returns the leaderboard for mode, ordered by rating descending.
// Players keep their input order on equal ratings. Ranks are 1..n without
// gaps. limit <= 0 returns every ranked player.
func Build(players []domain.Player, participations []domain.Participation, mode domain.GameMode, limit int) []domain.RankingEntry {
	tallies := make(map[string]*tally)
	for _, p := range participations {
		if mode != domain.ModeGlobal && p.Mode != mode {
			continue
		}
		t, ok := tallies[p.PlayerID]
		if !ok {
			t = &tally{}
			tallies[p.PlayerID] = t
		}
		t.matches++
		if p.IsWinner {
			t.wins++
		}
		t.eliminations += p.Eliminations
	}

	entries := make([]domain.RankingEntry, 0, len(tallies))
	for _, player := range players {
		t, ok := tallies[player.ID]
		if !ok || t.matches == 0 {
			continue
		}
		entries = append(entries, newEntry(player, t, mode))
	}

	slices.SortStableFunc(entries, func(a, b domain.RankingEntry) int {
		return b.Rating - a.Rating
	})

	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries
}

// Find returns playerID's entry on the full mode leaderboard.
func Find(players []domain.Player, participations []domain.Participation, mode domain.GameMode, playerID string) (domain.RankingEntry, bool) {
	for _, entry := range Build(players, participations, mode, 0) {
		if entry.PlayerID == playerID {
			return entry, true
		}
	}
	return domain.RankingEntry{}, false
}

func newEntry(player domain.Player, t *tally, mode domain.GameMode) domain.RankingEntry {
	return domain.RankingEntry{
		PlayerID:          player.ID,
		DisplayName:       player.DisplayName,
		AvatarURL:         player.AvatarURL,
		Mode:              mode,
		Rating:            player.Rating,
		MatchesPlayed:     t.matches,
		Wins:              t.wins,
		Losses:            t.matches - t.wins,
		WinRate:           float64(t.wins) / float64(t.matches),
		TotalEliminations: t.eliminations,
		AvgEliminations:   float64(t.eliminations) / float64(t.matches),
	}
}
