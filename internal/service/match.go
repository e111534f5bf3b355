package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"ticticpou-ranking/internal/cache"
	"ticticpou-ranking/internal/constants"
	"ticticpou-ranking/internal/domain"
	"ticticpou-ranking/internal/rating"
	"ticticpou-ranking/internal/repository"
)

type ParticipantInput struct {
	PlayerID     string
	ClassPlayed  string
	Placement    int
	Eliminations int
}

type MatchInput struct {
	Mode         domain.GameMode
	Location     *string
	PlayedAt     time.Time
	RecordedBy   string
	Participants []ParticipantInput
}

type MatchService struct {
	players   *PlayerService
	matchRepo *repository.MatchRepository
	cache     cache.LeaderboardCache
	logger    zerolog.Logger
}

func NewMatchService(players *PlayerService, matchRepo *repository.MatchRepository, leaderboards cache.LeaderboardCache, logger zerolog.Logger) *MatchService {
	return &MatchService{players: players, matchRepo: matchRepo, cache: leaderboards, logger: logger}
}

func (s *MatchService) GetMatch(ctx context.Context, id string) (*domain.MatchWithParticipants, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	match, err := s.matchRepo.Get(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("match %s: %w", id, ErrNotFound)
	}
	if err != nil {
		s.logger.Error().Err(err).Str("match_id", id).Msg("failed to get match")
		return nil, fmt.Errorf("failed to get match: %w", err)
	}
	return match, nil
}

// RecordMatch scores a finished match and persists it with its ledger rows.
func (s *MatchService) RecordMatch(ctx context.Context, input MatchInput) (*domain.MatchWithParticipants, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.RequestTimeout)
	defer cancel()

	match, participants, err := s.prepare(input)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("mode", string(match.Mode)).
		Str("recorded_by", match.RecordedBy).
		Int("participants", len(participants)).
		Msg("recording match")

	if err := s.players.EnsurePlayers(ctx, playerIDs(participants)); err != nil {
		return nil, err
	}

	result, err := s.matchRepo.Record(ctx, match, participants)
	if err != nil {
		return nil, s.writeError(err, "record", "")
	}

	invalidateLeaderboards(ctx, s.cache, s.logger)
	return result, nil
}

// EditMatch replaces the outcome of a stored match: the old rating effect is
// reversed and the new outcome scored from the restored ratings, atomically.
func (s *MatchService) EditMatch(ctx context.Context, id string, input MatchInput) (*domain.MatchWithParticipants, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.RequestTimeout)
	defer cancel()

	match, participants, err := s.prepare(input)
	if err != nil {
		return nil, err
	}
	match.ID = id

	// unknown ids must not register players as a side effect
	if _, err := s.matchRepo.Get(ctx, id); err != nil {
		return nil, s.writeError(err, "edit", id)
	}

	if err := s.players.EnsurePlayers(ctx, playerIDs(participants)); err != nil {
		return nil, err
	}

	result, err := s.matchRepo.Replace(ctx, match, participants)
	if err != nil {
		return nil, s.writeError(err, "edit", id)
	}

	invalidateLeaderboards(ctx, s.cache, s.logger)
	return result, nil
}

// DeleteMatch removes a match and reverses its rating effect.
func (s *MatchService) DeleteMatch(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, constants.RequestTimeout)
	defer cancel()

	if err := s.matchRepo.Delete(ctx, id); err != nil {
		return s.writeError(err, "delete", id)
	}

	invalidateLeaderboards(ctx, s.cache, s.logger)
	return nil
}

func (s *MatchService) prepare(input MatchInput) (domain.Match, []domain.MatchParticipant, error) {
	if !input.Mode.IsMatchMode() {
		return domain.Match{}, nil, fmt.Errorf("%w: unknown game mode %q", ErrInvalidInput, input.Mode)
	}
	if len(input.Participants) > constants.MaxParticipants {
		return domain.Match{}, nil, fmt.Errorf("%w: at most %d participants, got %d", ErrInvalidInput, constants.MaxParticipants, len(input.Participants))
	}

	results := make([]rating.PlayerResult, len(input.Participants))
	participants := make([]domain.MatchParticipant, len(input.Participants))
	for i, p := range input.Participants {
		id := strings.TrimSpace(p.PlayerID)
		results[i] = rating.PlayerResult{
			PlayerID:     id,
			Placement:    p.Placement,
			Eliminations: p.Eliminations,
		}
		participants[i] = domain.MatchParticipant{
			PlayerID:     id,
			ClassPlayed:  strings.TrimSpace(p.ClassPlayed),
			Placement:    p.Placement,
			Eliminations: p.Eliminations,
			IsWinner:     p.Placement == 1,
		}
	}

	if err := rating.Validate(results); err != nil {
		return domain.Match{}, nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	playedAt := input.PlayedAt
	if playedAt.IsZero() {
		playedAt = time.Now()
	}

	var location *string
	if input.Location != nil {
		if l := strings.TrimSpace(*input.Location); l != "" {
			location = &l
		}
	}

	match := domain.Match{
		Mode:       input.Mode,
		Location:   location,
		PlayedAt:   playedAt.UTC(),
		RecordedBy: input.RecordedBy,
	}
	return match, participants, nil
}

func (s *MatchService) writeError(err error, op, id string) error {
	switch {
	case errors.Is(err, rating.ErrInvalidInput):
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	case errors.Is(err, sql.ErrNoRows):
		return fmt.Errorf("match %s: %w", id, ErrNotFound)
	}
	s.logger.Error().Err(err).Str("match_id", id).Str("op", op).Msg("match write failed")
	return fmt.Errorf("failed to %s match: %w", op, err)
}

func playerIDs(participants []domain.MatchParticipant) []string {
	ids := make([]string, len(participants))
	for i, p := range participants {
		ids[i] = p.PlayerID
	}
	return ids
}
