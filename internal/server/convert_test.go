package server

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/types/known/timestamppb"

	ticticpouv1 "ticticpou-ranking/gen/proto/ticticpou/v1"
	"ticticpou-ranking/internal/domain"
)

func TestToMatchInputDefaults(t *testing.T) {
	input := toMatchInput("duel", "", nil, duel("ana", "bob"))

	assert.Equal(t, domain.ModeDuel, input.Mode)
	assert.Nil(t, input.Location)
	assert.True(t, input.PlayedAt.IsZero())
	require.Len(t, input.Participants, 2)
	assert.Equal(t, "ana", input.Participants[0].PlayerID)
	assert.Equal(t, 1, input.Participants[0].Placement)
}

func TestToMatchInputCarriesLocationAndTime(t *testing.T) {
	playedAt := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	input := toMatchInput("classic", "gym", timestamppb.New(playedAt), []*ticticpouv1.Participant{
		{PlayerId: "ana", ClassPlayed: "ninja", Placement: 2, Eliminations: 3},
	})

	require.NotNil(t, input.Location)
	assert.Equal(t, "gym", *input.Location)
	assert.True(t, input.PlayedAt.Equal(playedAt))
	assert.Equal(t, "ninja", input.Participants[0].ClassPlayed)
	assert.Equal(t, 3, input.Participants[0].Eliminations)
}

func TestToMatchOmitsMissingLocation(t *testing.T) {
	match := toMatch(&domain.MatchWithParticipants{
		Match: domain.Match{ID: "m1", Mode: domain.ModeDuel},
		Participants: []domain.MatchParticipant{
			{PlayerID: "ana", Placement: 1, IsWinner: true, RatingBefore: 1000, RatingAfter: 1016, RatingChange: 16},
		},
	})

	assert.Empty(t, match.GetLocation())
	assert.Equal(t, int32(16), match.GetParticipants()[0].GetRatingChange())
	assert.True(t, match.GetParticipants()[0].GetIsWinner())
}
