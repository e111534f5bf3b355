package server

import (
	"google.golang.org/protobuf/types/known/timestamppb"

	ticticpouv1 "ticticpou-ranking/gen/proto/ticticpou/v1"
	"ticticpou-ranking/internal/domain"
	"ticticpou-ranking/internal/service"
)

// toMatchInput maps the fields record and edit requests share. An empty
// location means none and a missing played_at means now.
func toMatchInput(mode, location string, playedAt *timestamppb.Timestamp, participants []*ticticpouv1.Participant) service.MatchInput {
	input := service.MatchInput{
		Mode:         domain.GameMode(mode),
		Participants: make([]service.ParticipantInput, len(participants)),
	}
	if location != "" {
		input.Location = &location
	}
	if playedAt != nil {
		input.PlayedAt = playedAt.AsTime()
	}
	for i, p := range participants {
		input.Participants[i] = service.ParticipantInput{
			PlayerID:     p.GetPlayerId(),
			ClassPlayed:  p.GetClassPlayed(),
			Placement:    int(p.GetPlacement()),
			Eliminations: int(p.GetEliminations()),
		}
	}
	return input
}

func toMatch(m *domain.MatchWithParticipants) *ticticpouv1.Match {
	match := &ticticpouv1.Match{
		MatchId:      m.Match.ID,
		Mode:         string(m.Match.Mode),
		PlayedAt:     timestamppb.New(m.Match.PlayedAt),
		RecordedBy:   m.Match.RecordedBy,
		Participants: make([]*ticticpouv1.MatchParticipant, len(m.Participants)),
	}
	if m.Match.Location != nil {
		match.Location = *m.Match.Location
	}
	for i, p := range m.Participants {
		match.Participants[i] = &ticticpouv1.MatchParticipant{
			PlayerId:     p.PlayerID,
			ClassPlayed:  p.ClassPlayed,
			Placement:    int32(p.Placement),
			Eliminations: int32(p.Eliminations),
			IsWinner:     p.IsWinner,
			RatingBefore: int32(p.RatingBefore),
			RatingAfter:  int32(p.RatingAfter),
			RatingChange: int32(p.RatingChange),
		}
	}
	return match
}

func toLeaderboard(mode domain.GameMode, entries []domain.RankingEntry) *ticticpouv1.Leaderboard {
	board := &ticticpouv1.Leaderboard{
		Mode:    string(mode),
		Entries: make([]*ticticpouv1.RankingEntry, len(entries)),
	}
	for i, e := range entries {
		board.Entries[i] = toRankingEntry(e)
	}
	return board
}

func toRankingEntry(e domain.RankingEntry) *ticticpouv1.RankingEntry {
	return &ticticpouv1.RankingEntry{
		Rank:              int32(e.Rank),
		PlayerId:          e.PlayerID,
		DisplayName:       e.DisplayName,
		AvatarUrl:         e.AvatarURL,
		Mode:              string(e.Mode),
		Rating:            int32(e.Rating),
		MatchesPlayed:     int32(e.MatchesPlayed),
		Wins:              int32(e.Wins),
		Losses:            int32(e.Losses),
		WinRate:           e.WinRate,
		TotalEliminations: int32(e.TotalEliminations),
		AvgEliminations:   e.AvgEliminations,
	}
}

func toPlayer(p *domain.Player) *ticticpouv1.Player {
	return &ticticpouv1.Player{
		PlayerId:    p.ID,
		DisplayName: p.DisplayName,
		AvatarUrl:   p.AvatarURL,
		Rating:      int32(p.Rating),
		Wins:        int32(p.Wins),
		Losses:      int32(p.Losses),
	}
}
