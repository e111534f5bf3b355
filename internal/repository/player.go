package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"ticticpou-ranking/internal/db"
	"ticticpou-ranking/internal/domain"
)

type PlayerRepository struct {
	queries *db.Queries
	db      *sql.DB
	logger  zerolog.Logger
}

func NewPlayerRepository(sqlDB *sql.DB, queries *db.Queries, logger zerolog.Logger) *PlayerRepository {
	return &PlayerRepository{
		queries: queries,
		db:      sqlDB,
		logger:  logger,
	}
}

func (r *PlayerRepository) Get(ctx context.Context, id string) (*domain.Player, error) {
	player, err := r.queries.GetPlayer(ctx, id)
	if err != nil {
		return nil, err
	}
	p := toDomainPlayer(player)
	return &p, nil
}

// ListAll returns every player ordered by creation, the scan order the
// leaderboard tie-break relies on.
func (r *PlayerRepository) ListAll(ctx context.Context) ([]domain.Player, error) {
	players, err := r.queries.ListPlayers(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]domain.Player, len(players))
	for i, p := range players {
		result[i] = toDomainPlayer(p)
	}
	return result, nil
}

// EnsureExists inserts the players that are not stored yet with the default
// standing. Existing rows are left untouched. It returns how many were created.
func (r *PlayerRepository) EnsureExists(ctx context.Context, players []domain.Player) (int, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	qtx := r.queries.WithTx(tx)

	created := 0
	now := time.Now().UTC()
	for _, p := range players {
		n, err := qtx.InsertPlayerIfMissing(ctx, db.InsertPlayerIfMissingParams{
			ID:          p.ID,
			DisplayName: p.DisplayName,
			AvatarUrl:   p.AvatarURL,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
		if err != nil {
			return 0, fmt.Errorf("failed to insert player %s: %w", p.ID, err)
		}
		created += int(n)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit players: %w", err)
	}
	return created, nil
}

func (r *PlayerRepository) UpdateProfile(ctx context.Context, player *domain.Player) error {
	n, err := r.queries.UpdatePlayerProfile(ctx, db.UpdatePlayerProfileParams{
		DisplayName: player.DisplayName,
		AvatarUrl:   player.AvatarURL,
		UpdatedAt:   time.Now().UTC(),
		ID:          player.ID,
	})
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// RebuildStandings recomputes every player's rating, wins and losses by
// folding the participant ledger, and returns how many rows were corrected.
func (r *PlayerRepository) RebuildStandings(ctx context.Context) (int64, error) {
	n, err := r.queries.RebuildPlayerStandings(ctx, time.Now().UTC())
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to rebuild player standings")
		return 0, err
	}
	r.logger.Info().Int64("corrected", n).Msg("player standings rebuilt from ledger")
	return n, nil
}

func toDomainPlayer(p db.Player) domain.Player {
	return domain.Player{
		ID:          p.ID,
		DisplayName: p.DisplayName,
		AvatarURL:   p.AvatarUrl,
		Rating:      int(p.Rating),
		Wins:        int(p.Wins),
		Losses:      int(p.Losses),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
