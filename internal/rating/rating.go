// Package rating converts the outcome of a single free-for-all match into
// per-player rating deltas.
//
// The curve is Elo's logistic expected score measured against the mean rating
// of the other participants, so one match is scored in O(N). Placement is
// normalized linearly (first = 1, last = 0), every elimination adds a flat
// bonus regardless of placement, and ratings never fall below MinRating.
package rating

import (
	"errors"
	"fmt"
	"math"
)

const (
	DefaultRating    = 1000
	MinRating        = 100
	KFactor          = 32
	EliminationBonus = 3
	Scale            = 400
)

var ErrInvalidInput = errors.New("invalid match result")

type PlayerResult struct {
	PlayerID      string
	Placement     int
	Eliminations  int
	CurrentRating int
}

type RatingChange struct {
	PlayerID     string
	RatingBefore int
	RatingAfter  int
	RatingChange int
}

// Compute returns one RatingChange per result, in input order. It never
// touches storage: callers supply each player's authoritative rating.
func Compute(results []PlayerResult) ([]RatingChange, error) {
	if err := Validate(results); err != nil {
		return nil, err
	}

	n := len(results)
	total := 0
	for _, r := range results {
		total += r.CurrentRating
	}

	changes := make([]RatingChange, n)
	for i, r := range results {
		avgOpponent := float64(total-r.CurrentRating) / float64(n-1)
		expected := ExpectedScore(float64(r.CurrentRating), avgOpponent)
		actual := ActualScore(r.Placement, n)

		delta := roundHalfUp(KFactor*(actual-expected)) + r.Eliminations*EliminationBonus

		after := r.CurrentRating + delta
		if after < MinRating {
			after = MinRating
		}

		changes[i] = RatingChange{
			PlayerID:     r.PlayerID,
			RatingBefore: r.CurrentRating,
			RatingAfter:  after,
			RatingChange: after - r.CurrentRating,
		}
	}

	return changes, nil
}

// Validate reports ErrInvalidInput for result sets Compute cannot score.
func Validate(results []PlayerResult) error {
	n := len(results)
	if n < 2 {
		return fmt.Errorf("%w: need at least 2 participants, got %d", ErrInvalidInput, n)
	}

	seen := make(map[string]struct{}, n)
	hasWinner := false
	for _, r := range results {
		if r.PlayerID == "" {
			return fmt.Errorf("%w: empty player id", ErrInvalidInput)
		}
		if _, dup := seen[r.PlayerID]; dup {
			return fmt.Errorf("%w: player %s appears more than once", ErrInvalidInput, r.PlayerID)
		}
		seen[r.PlayerID] = struct{}{}

		if r.Placement < 1 || r.Placement > n {
			return fmt.Errorf("%w: placement %d for player %s outside [1,%d]", ErrInvalidInput, r.Placement, r.PlayerID, n)
		}
		if r.Eliminations < 0 {
			return fmt.Errorf("%w: negative eliminations for player %s", ErrInvalidInput, r.PlayerID)
		}
		if r.Placement == 1 {
			hasWinner = true
		}
	}

	if !hasWinner {
		return fmt.Errorf("%w: no participant has placement 1", ErrInvalidInput)
	}
	return nil
}

// ExpectedScore is the probability that a player rated own beats a field
// whose mean rating is opponent.
func ExpectedScore(own, opponent float64) float64 {
	return 1 / (1 + math.Pow(10, (opponent-own)/Scale))
}

// ActualScore maps placement 1..n onto 1..0. n must be at least 2.
func ActualScore(placement, n int) float64 {
	return 1 - float64(placement-1)/float64(n-1)
}

// halves round toward +Inf: -0.5 becomes 0, 0.5 becomes 1
func roundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}
