package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"ticticpou-ranking/internal/cache"
	"ticticpou-ranking/internal/config"
	"ticticpou-ranking/internal/constants"
	"ticticpou-ranking/internal/domain"
	"ticticpou-ranking/internal/ranking"
	"ticticpou-ranking/internal/repository"
)

type RankingService struct {
	playerRepo   *repository.PlayerRepository
	matchRepo    *repository.MatchRepository
	ledgerRepo   *repository.LedgerRepository
	cache        cache.LeaderboardCache
	defaultLimit int
	logger       zerolog.Logger
}

func NewRankingService(cfg *config.Config, playerRepo *repository.PlayerRepository, matchRepo *repository.MatchRepository, ledgerRepo *repository.LedgerRepository, leaderboards cache.LeaderboardCache, logger zerolog.Logger) *RankingService {
	return &RankingService{
		playerRepo:   playerRepo,
		matchRepo:    matchRepo,
		ledgerRepo:   ledgerRepo,
		cache:        leaderboards,
		defaultLimit: cfg.DefaultLeaderboardLimit,
		logger:       logger,
	}
}

// Leaderboard returns the top players of mode (or ModeGlobal) by rating.
// An empty board is not an error.
func (s *RankingService) Leaderboard(ctx context.Context, mode domain.GameMode, limit int) ([]domain.RankingEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	if mode != domain.ModeGlobal && !mode.IsMatchMode() {
		return nil, fmt.Errorf("%w: unknown game mode %q", ErrInvalidInput, mode)
	}
	limit = s.normalizeLimit(limit)

	if entries, ok := s.cached(ctx, mode, limit); ok {
		return entries, nil
	}

	// read before the scan so a write committed meanwhile makes Set a no-op
	generation, genOK := s.generation(ctx)

	players, participations, err := s.scan(ctx, mode)
	if err != nil {
		return nil, err
	}

	entries := ranking.Build(players, participations, mode, limit)

	if genOK {
		cacheCtx, cacheCancel := context.WithTimeout(ctx, constants.CacheTimeout)
		defer cacheCancel()
		if err := s.cache.Set(cacheCtx, mode, limit, generation, entries); err != nil {
			s.logger.Warn().Err(err).Str("mode", string(mode)).Msg("failed to cache leaderboard")
		}
	}

	s.logger.Debug().Str("mode", string(mode)).Int("limit", limit).Int("count", len(entries)).Msg("leaderboard computed")
	return entries, nil
}

// PlayerStats returns the player's standing on the mode board. ErrNotFound
// when the player is unknown or has no match in mode.
func (s *RankingService) PlayerStats(ctx context.Context, playerID string, mode domain.GameMode) (*domain.RankingEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	if mode != domain.ModeGlobal && !mode.IsMatchMode() {
		return nil, fmt.Errorf("%w: unknown game mode %q", ErrInvalidInput, mode)
	}

	players, participations, err := s.scan(ctx, mode)
	if err != nil {
		return nil, err
	}

	entry, ok := ranking.Find(players, participations, mode, playerID)
	if !ok {
		return nil, fmt.Errorf("player %s in mode %s: %w", playerID, mode, ErrNotFound)
	}
	return &entry, nil
}

// Overview computes the global board and every mode board concurrently.
func (s *RankingService) Overview(ctx context.Context, limit int) (map[domain.GameMode][]domain.RankingEntry, error) {
	modes := append([]domain.GameMode{domain.ModeGlobal}, domain.GameModes...)

	var mu sync.Mutex
	boards := make(map[domain.GameMode][]domain.RankingEntry, len(modes))

	g, gCtx := errgroup.WithContext(ctx)
	for _, mode := range modes {
		g.Go(func() error {
			entries, err := s.Leaderboard(gCtx, mode, limit)
			if err != nil {
				return err
			}
			mu.Lock()
			boards[mode] = entries
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return boards, nil
}

// History returns a player's rating ledger, newest first.
func (s *RankingService) History(ctx context.Context, playerID string, limit int) ([]domain.RatingHistoryEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	if _, err := s.playerRepo.Get(ctx, playerID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("player %s: %w", playerID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get player: %w", err)
	}

	if limit <= 0 {
		limit = constants.DefaultHistoryLimit
	}
	if limit > constants.MaxLeaderboardLimit {
		limit = constants.MaxLeaderboardLimit
	}

	history, err := s.ledgerRepo.GetByPlayer(ctx, playerID, limit)
	if err != nil {
		s.logger.Error().Err(err).Str("player_id", playerID).Msg("failed to get rating history")
		return nil, fmt.Errorf("failed to get rating history: %w", err)
	}
	return history, nil
}

func (s *RankingService) scan(ctx context.Context, mode domain.GameMode) ([]domain.Player, []domain.Participation, error) {
	players, err := s.playerRepo.ListAll(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list players")
		return nil, nil, fmt.Errorf("failed to list players: %w", err)
	}

	participations, err := s.matchRepo.ListParticipations(ctx, mode)
	if err != nil {
		s.logger.Error().Err(err).Str("mode", string(mode)).Msg("failed to list participations")
		return nil, nil, fmt.Errorf("failed to list participations: %w", err)
	}
	return players, participations, nil
}

func (s *RankingService) cached(ctx context.Context, mode domain.GameMode, limit int) ([]domain.RankingEntry, bool) {
	cacheCtx, cancel := context.WithTimeout(ctx, constants.CacheTimeout)
	defer cancel()

	entries, ok, err := s.cache.Get(cacheCtx, mode, limit)
	if err != nil {
		s.logger.Warn().Err(err).Str("mode", string(mode)).Msg("leaderboard cache read failed")
		return nil, false
	}
	return entries, ok
}

func (s *RankingService) generation(ctx context.Context) (int64, bool) {
	cacheCtx, cancel := context.WithTimeout(ctx, constants.CacheTimeout)
	defer cancel()

	generation, err := s.cache.Generation(cacheCtx)
	if err != nil {
		s.logger.Warn().Err(err).Msg("leaderboard cache generation read failed")
		return 0, false
	}
	return generation, true
}

func (s *RankingService) normalizeLimit(limit int) int {
	if limit <= 0 {
		return s.defaultLimit
	}
	if limit > constants.MaxLeaderboardLimit {
		return constants.MaxLeaderboardLimit
	}
	return limit
}

func invalidateLeaderboards(ctx context.Context, leaderboards cache.LeaderboardCache, logger zerolog.Logger) {
	cacheCtx, cancel := context.WithTimeout(ctx, constants.CacheTimeout)
	defer cancel()

	if err := leaderboards.Invalidate(cacheCtx); err != nil {
		logger.Warn().Err(err).Msg("failed to invalidate leaderboard cache")
	}
}
