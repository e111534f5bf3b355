package repository

import (
	"context"

	"github.com/rs/zerolog"

	"ticticpou-ranking/internal/db"
	"ticticpou-ranking/internal/domain"
)

// LedgerRepository reads the per-match rating snapshots. Rows are only
// written by MatchRepository, inside the match transaction.
type LedgerRepository struct {
	queries *db.Queries
	logger  zerolog.Logger
}

func NewLedgerRepository(queries *db.Queries, logger zerolog.Logger) *LedgerRepository {
	return &LedgerRepository{
		queries: queries,
		logger:  logger,
	}
}

// GetByPlayer returns the newest limit ledger rows of a player.
func (r *LedgerRepository) GetByPlayer(ctx context.Context, playerID string, limit int) ([]domain.RatingHistoryEntry, error) {
	records, err := r.queries.ListRatingHistory(ctx, db.ListRatingHistoryParams{
		PlayerID: playerID,
		Limit:    int64(limit),
	})
	if err != nil {
		r.logger.Error().Err(err).Str("player_id", playerID).Msg("failed to read ledger")
		return nil, err
	}

	result := make([]domain.RatingHistoryEntry, len(records))
	for i, rec := range records {
		result[i] = domain.RatingHistoryEntry{
			MatchID:      rec.MatchID,
			Mode:         domain.GameMode(rec.Mode),
			PlayedAt:     rec.PlayedAt,
			Placement:    int(rec.Placement),
			Eliminations: int(rec.Eliminations),
			IsWinner:     rec.IsWinner,
			RatingBefore: int(rec.RatingBefore),
			RatingAfter:  int(rec.RatingAfter),
			RatingChange: int(rec.RatingChange),
		}
	}
	return result, nil
}
