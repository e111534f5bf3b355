package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"ticticpou-ranking/internal/api"
	"ticticpou-ranking/internal/cache"
	"ticticpou-ranking/internal/constants"
	"ticticpou-ranking/internal/domain"
	"ticticpou-ranking/internal/repository"
)

type PlayerService struct {
	identity *api.IdentityClient
	repo     *repository.PlayerRepository
	cache    cache.LeaderboardCache
	logger   zerolog.Logger
}

func NewPlayerService(identity *api.IdentityClient, repo *repository.PlayerRepository, leaderboards cache.LeaderboardCache, logger zerolog.Logger) *PlayerService {
	return &PlayerService{identity: identity, repo: repo, cache: leaderboards, logger: logger}
}

func (s *PlayerService) GetPlayer(ctx context.Context, id string) (*domain.Player, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	player, err := s.repo.Get(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("player %s: %w", id, ErrNotFound)
	}
	if err != nil {
		s.logger.Error().Err(err).Str("player_id", id).Msg("failed to get player")
		return nil, fmt.Errorf("failed to get player: %w", err)
	}
	return player, nil
}

// EnsurePlayers creates the players that have never played. Their display
// identity comes from the identity provider when one is configured; lookup
// failures fall back to the player id and never block a match.
func (s *PlayerService) EnsurePlayers(ctx context.Context, ids []string) error {
	var missing []domain.Player
	for _, id := range ids {
		_, err := s.repo.Get(ctx, id)
		if err == nil {
			continue
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("failed to get player %s: %w", id, err)
		}
		missing = append(missing, domain.Player{ID: id, DisplayName: id})
	}

	if len(missing) == 0 {
		return nil
	}

	if s.identity.Enabled() {
		apiCtx, cancel := context.WithTimeout(ctx, constants.IdentityAPITimeout)
		defer cancel()

		g, gCtx := errgroup.WithContext(apiCtx)
		for i := range missing {
			p := &missing[i]
			g.Go(func() error {
				user, err := s.identity.GetUser(gCtx, p.ID)
				if err != nil {
					s.logger.Warn().Err(err).Str("player_id", p.ID).Msg("failed to resolve identity, using id as display name")
					return nil
				}
				p.DisplayName = user.DisplayName()
				p.AvatarURL = user.ImageURL
				return nil
			})
		}
		g.Wait() //nolint:errcheck
	}

	created, err := s.repo.EnsureExists(ctx, missing)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create players")
		return fmt.Errorf("failed to create players: %w", err)
	}

	s.logger.Info().Int("created", created).Msg("new players registered")
	return nil
}

// SyncProfile refreshes a player's display identity from the identity
// provider.
func (s *PlayerService) SyncProfile(ctx context.Context, id string) (*domain.Player, error) {
	if !s.identity.Enabled() {
		return nil, ErrIdentityDisabled
	}

	player, err := s.GetPlayer(ctx, id)
	if err != nil {
		return nil, err
	}

	apiCtx, cancel := context.WithTimeout(ctx, constants.IdentityAPITimeout)
	defer cancel()

	user, err := s.identity.GetUser(apiCtx, id)
	if errors.Is(err, api.ErrIdentityNotFound) {
		return nil, fmt.Errorf("identity %s: %w", id, ErrNotFound)
	}
	if err != nil {
		s.logger.Error().Err(err).Str("player_id", id).Msg("failed to fetch identity")
		return nil, fmt.Errorf("failed to fetch identity: %w", err)
	}

	player.DisplayName = user.DisplayName()
	player.AvatarURL = user.ImageURL
	if err := s.repo.UpdateProfile(ctx, player); err != nil {
		s.logger.Error().Err(err).Str("player_id", id).Msg("failed to update profile")
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	invalidateLeaderboards(ctx, s.cache, s.logger)
	s.logger.Info().Str("player_id", id).Str("display_name", player.DisplayName).Msg("profile synced")
	return player, nil
}

// RebuildStandings folds the ledger back into every player's cached rating
// and win/loss counters. It returns how many players were corrected.
func (s *PlayerService) RebuildStandings(ctx context.Context) (int64, error) {
	corrected, err := s.repo.RebuildStandings(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to rebuild standings: %w", err)
	}
	if corrected > 0 {
		invalidateLeaderboards(ctx, s.cache, s.logger)
	}
	return corrected, nil
}
