package domain

import (
	"fmt"
	"time"
)

type GameMode string

const (
	ModeClassic  GameMode = "classic"
	ModeDuel     GameMode = "duel"
	ModeTeam     GameMode = "team"
	ModeSurvival GameMode = "survival"

	// ModeGlobal selects every mode; it is never stored on a match.
	ModeGlobal GameMode = "global"
)

var GameModes = []GameMode{ModeClassic, ModeDuel, ModeTeam, ModeSurvival}

func (m GameMode) IsMatchMode() bool {
	for _, mode := range GameModes {
		if m == mode {
			return true
		}
	}
	return false
}

func ParseMode(s string) (GameMode, error) {
	if s == "" {
		return ModeGlobal, nil
	}
	m := GameMode(s)
	if m == ModeGlobal || m.IsMatchMode() {
		return m, nil
	}
	return "", fmt.Errorf("unknown game mode %q", s)
}

type Player struct {
	ID          string
	DisplayName string
	AvatarURL   string
	Rating      int
	Wins        int
	Losses      int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type Match struct {
	ID         string
	Mode       GameMode
	Location   *string
	PlayedAt   time.Time
	RecordedBy string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// MatchParticipant is one ledger row: the rating snapshot taken when the
// match was applied. RatingAfter == RatingBefore + RatingChange.
type MatchParticipant struct {
	ID           string
	MatchID      string
	PlayerID     string
	ClassPlayed  string
	Placement    int
	Eliminations int
	IsWinner     bool
	RatingBefore int
	RatingAfter  int
	RatingChange int
	CreatedAt    time.Time
}

type MatchWithParticipants struct {
	Match        Match
	Participants []MatchParticipant
}

// Participation is the slice of a ledger row the ranking aggregator scans.
type Participation struct {
	PlayerID     string
	Mode         GameMode
	IsWinner     bool
	Eliminations int
}

// RatingHistoryEntry is a ledger row joined with its match.
type RatingHistoryEntry struct {
	MatchID      string
	Mode         GameMode
	PlayedAt     time.Time
	Placement    int
	Eliminations int
	IsWinner     bool
	RatingBefore int
	RatingAfter  int
	RatingChange int
}

type RankingEntry struct {
	Rank              int      `json:"rank"`
	PlayerID          string   `json:"player_id"`
	DisplayName       string   `json:"display_name"`
	AvatarURL         string   `json:"avatar_url"`
	Mode              GameMode `json:"mode"`
	Rating            int      `json:"rating"`
	MatchesPlayed     int      `json:"matches_played"`
	Wins              int      `json:"wins"`
	Losses            int      `json:"losses"`
	WinRate           float64  `json:"win_rate"`
	TotalEliminations int      `json:"total_eliminations"`
	AvgEliminations   float64  `json:"avg_eliminations"`
}
