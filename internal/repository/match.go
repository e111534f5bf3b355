package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/rs/zerolog"

	"ticticpou-ranking/internal/db"
	"ticticpou-ranking/internal/domain"
	"ticticpou-ranking/internal/rating"
)

type MatchRepository struct {
	queries *db.Queries
	db      *sql.DB
	logger  zerolog.Logger
}

func NewMatchRepository(sqlDB *sql.DB, queries *db.Queries, logger zerolog.Logger) *MatchRepository {
	return &MatchRepository{
		queries: queries,
		db:      sqlDB,
		logger:  logger,
	}
}

func (r *MatchRepository) Get(ctx context.Context, id string) (*domain.MatchWithParticipants, error) {
	return r.load(ctx, r.queries, id)
}

// Record stores a new match and applies its rating effect. Current ratings
// are read inside the write transaction so the ledger snapshot matches what
// was applied.
func (r *MatchRepository) Record(ctx context.Context, match domain.Match, participants []domain.MatchParticipant) (*domain.MatchWithParticipants, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	qtx := r.queries.WithTx(tx)

	if match.ID == "" {
		if match.ID, err = gonanoid.New(); err != nil {
			return nil, fmt.Errorf("failed to generate nanoid: %w", err)
		}
	}
	now := time.Now().UTC()
	match.CreatedAt = now
	match.UpdatedAt = now

	err = qtx.InsertMatch(ctx, db.InsertMatchParams{
		ID:         match.ID,
		Mode:       string(match.Mode),
		Location:   match.Location,
		PlayedAt:   match.PlayedAt,
		RecordedBy: match.RecordedBy,
		CreatedAt:  match.CreatedAt,
		UpdatedAt:  match.UpdatedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to insert match %s: %w", match.ID, err)
	}

	stored, err := qtx.GetMatch(ctx, match.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load match %s: %w", match.ID, err)
	}

	if err := r.apply(ctx, qtx, match.ID, stored.Seq, participants, now); err != nil {
		return nil, err
	}

	result, err := r.load(ctx, qtx, match.ID)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit match %s: %w", match.ID, err)
	}

	r.logger.Info().
		Str("match_id", match.ID).
		Str("mode", string(match.Mode)).
		Int("participants", len(participants)).
		Msg("match recorded")
	return result, nil
}

// Replace reverses the stored effect of match.ID, then re-scores the new
// participants from the restored ratings. All or nothing.
func (r *MatchRepository) Replace(ctx context.Context, match domain.Match, participants []domain.MatchParticipant) (*domain.MatchWithParticipants, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	qtx := r.queries.WithTx(tx)

	stored, err := qtx.GetMatch(ctx, match.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load match %s: %w", match.ID, err)
	}

	if err := r.reverse(ctx, qtx, stored); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	n, err := qtx.UpdateMatch(ctx, db.UpdateMatchParams{
		Mode:      string(match.Mode),
		Location:  match.Location,
		PlayedAt:  match.PlayedAt,
		UpdatedAt: now,
		ID:        match.ID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update match %s: %w", match.ID, err)
	}
	if n == 0 {
		return nil, fmt.Errorf("match %s: %w", match.ID, sql.ErrNoRows)
	}

	if err := r.apply(ctx, qtx, match.ID, stored.Seq, participants, now); err != nil {
		return nil, err
	}

	result, err := r.load(ctx, qtx, match.ID)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit match %s: %w", match.ID, err)
	}

	r.logger.Info().
		Str("match_id", match.ID).
		Int("participants", len(participants)).
		Msg("match replaced")
	return result, nil
}

// Delete reverses the stored effect of the match and removes it.
func (r *MatchRepository) Delete(ctx context.Context, id string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	qtx := r.queries.WithTx(tx)

	stored, err := qtx.GetMatch(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to load match %s: %w", id, err)
	}

	if err := r.reverse(ctx, qtx, stored); err != nil {
		return err
	}

	n, err := qtx.DeleteMatch(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete match %s: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("match %s: %w", id, sql.ErrNoRows)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit match deletion %s: %w", id, err)
	}

	r.logger.Info().Str("match_id", id).Msg("match deleted")
	return nil
}

// ListParticipations scans the ledger in application order. ModeGlobal
// returns every row.
func (r *MatchRepository) ListParticipations(ctx context.Context, mode domain.GameMode) ([]domain.Participation, error) {
	filter := string(mode)
	if mode == domain.ModeGlobal {
		filter = ""
	}

	rows, err := r.queries.ListParticipations(ctx, filter)
	if err != nil {
		return nil, err
	}

	result := make([]domain.Participation, len(rows))
	for i, row := range rows {
		result[i] = domain.Participation{
			PlayerID:     row.PlayerID,
			Mode:         domain.GameMode(row.Mode),
			IsWinner:     row.IsWinner,
			Eliminations: int(row.Eliminations),
		}
	}
	return result, nil
}

// apply scores participants of the match at ledger position seq and writes
// their rows. A player's starting rating is the stored one, unless the
// player has ledger rows after seq (an edited older match): then it is the
// rating right before seq, and the later rows are replayed on top.
func (r *MatchRepository) apply(ctx context.Context, qtx *db.Queries, matchID string, seq int64, participants []domain.MatchParticipant, now time.Time) error {
	players := make([]db.Player, len(participants))
	later := make([][]db.ListLedgerAfterRow, len(participants))
	results := make([]rating.PlayerResult, len(participants))
	for i, p := range participants {
		player, err := qtx.GetPlayer(ctx, p.PlayerID)
		if err != nil {
			return fmt.Errorf("failed to load player %s: %w", p.PlayerID, err)
		}
		players[i] = player

		later[i], err = qtx.ListLedgerAfter(ctx, db.ListLedgerAfterParams{PlayerID: p.PlayerID, Seq: seq})
		if err != nil {
			return fmt.Errorf("failed to load ledger of player %s: %w", p.PlayerID, err)
		}

		current := player.Rating
		if len(later[i]) > 0 {
			if current, err = r.ratingBefore(ctx, qtx, p.PlayerID, seq); err != nil {
				return err
			}
		}

		results[i] = rating.PlayerResult{
			PlayerID:      p.PlayerID,
			Placement:     p.Placement,
			Eliminations:  p.Eliminations,
			CurrentRating: int(current),
		}
	}

	changes, err := rating.Compute(results)
	if err != nil {
		return err
	}

	for i, change := range changes {
		p := participants[i]
		isWinner := p.Placement == 1

		id, err := gonanoid.New()
		if err != nil {
			return fmt.Errorf("failed to generate nanoid: %w", err)
		}

		err = qtx.InsertParticipant(ctx, db.InsertParticipantParams{
			ID:           id,
			MatchID:      matchID,
			PlayerID:     change.PlayerID,
			ClassPlayed:  p.ClassPlayed,
			Placement:    int64(p.Placement),
			Eliminations: int64(p.Eliminations),
			IsWinner:     isWinner,
			RatingBefore: int64(change.RatingBefore),
			RatingAfter:  int64(change.RatingAfter),
			RatingChange: int64(change.RatingChange),
			CreatedAt:    now,
		})
		if err != nil {
			return fmt.Errorf("failed to insert participant %s/%s: %w", matchID, change.PlayerID, err)
		}

		final, err := r.replay(ctx, qtx, change.PlayerID, int64(change.RatingAfter), later[i])
		if err != nil {
			return err
		}

		player := players[i]
		wins, losses := player.Wins, player.Losses
		if isWinner {
			wins++
		} else {
			losses++
		}

		err = qtx.UpdatePlayerStanding(ctx, db.UpdatePlayerStandingParams{
			Rating:    final,
			Wins:      wins,
			Losses:    losses,
			UpdatedAt: now,
			ID:        change.PlayerID,
		})
		if err != nil {
			return fmt.Errorf("failed to update player %s: %w", change.PlayerID, err)
		}

		r.logger.Debug().
			Str("match_id", matchID).
			Str("player_id", change.PlayerID).
			Int("rating_before", change.RatingBefore).
			Int("rating_after", change.RatingAfter).
			Int("rating_change", change.RatingChange).
			Int("replayed", len(later[i])).
			Msg("rating change applied")
	}

	return nil
}

// reverse undoes the rating effect recorded for match and drops its ledger
// rows. Each participant goes back to RatingBefore; ledger rows recorded
// after the match are then replayed from there so the chain stays unbroken
// and the player's rating is the last replayed RatingAfter.
func (r *MatchRepository) reverse(ctx context.Context, qtx *db.Queries, match db.Match) error {
	rows, err := qtx.ListParticipantsByMatch(ctx, match.ID)
	if err != nil {
		return fmt.Errorf("failed to load participants of match %s: %w", match.ID, err)
	}

	now := time.Now().UTC()
	for _, row := range rows {
		player, err := qtx.GetPlayer(ctx, row.PlayerID)
		if err != nil {
			return fmt.Errorf("failed to load player %s: %w", row.PlayerID, err)
		}

		later, err := qtx.ListLedgerAfter(ctx, db.ListLedgerAfterParams{PlayerID: row.PlayerID, Seq: match.Seq})
		if err != nil {
			return fmt.Errorf("failed to load ledger of player %s: %w", row.PlayerID, err)
		}

		restored, err := r.replay(ctx, qtx, row.PlayerID, row.RatingBefore, later)
		if err != nil {
			return err
		}
		if len(later) > 0 {
			r.logger.Info().
				Str("match_id", match.ID).
				Str("player_id", row.PlayerID).
				Int("replayed", len(later)).
				Int64("rating", restored).
				Msg("later ledger rows replayed")
		}

		wins, losses := player.Wins, player.Losses
		if row.IsWinner {
			wins = max(wins-1, 0)
		} else {
			losses = max(losses-1, 0)
		}

		err = qtx.UpdatePlayerStanding(ctx, db.UpdatePlayerStandingParams{
			Rating:    restored,
			Wins:      wins,
			Losses:    losses,
			UpdatedAt: now,
			ID:        row.PlayerID,
		})
		if err != nil {
			return fmt.Errorf("failed to restore player %s: %w", row.PlayerID, err)
		}
	}

	if _, err := qtx.DeleteParticipantsByMatch(ctx, match.ID); err != nil {
		return fmt.Errorf("failed to delete participants of match %s: %w", match.ID, err)
	}
	return nil
}

// replay re-chains rows (in ledger order) starting from start. Each row
// keeps its recorded change, floored at MinRating. It returns the final
// rating.
func (r *MatchRepository) replay(ctx context.Context, qtx *db.Queries, playerID string, start int64, rows []db.ListLedgerAfterRow) (int64, error) {
	current := start
	for _, row := range rows {
		after := max(current+row.RatingChange, rating.MinRating)
		if current == row.RatingBefore && after == row.RatingAfter {
			current = after
			continue
		}

		err := qtx.UpdateParticipantRating(ctx, db.UpdateParticipantRatingParams{
			RatingBefore: current,
			RatingAfter:  after,
			RatingChange: after - current,
			ID:           row.ID,
		})
		if err != nil {
			return 0, fmt.Errorf("failed to replay ledger row %s of player %s: %w", row.ID, playerID, err)
		}
		current = after
	}
	return current, nil
}

// ratingBefore is the player's rating right before ledger position seq.
func (r *MatchRepository) ratingBefore(ctx context.Context, qtx *db.Queries, playerID string, seq int64) (int64, error) {
	prior, err := qtx.GetRatingBefore(ctx, db.GetRatingBeforeParams{PlayerID: playerID, Seq: seq})
	if errors.Is(err, sql.ErrNoRows) {
		return rating.DefaultRating, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to load rating of player %s before match: %w", playerID, err)
	}
	return prior, nil
}

func (r *MatchRepository) load(ctx context.Context, q *db.Queries, id string) (*domain.MatchWithParticipants, error) {
	match, err := q.GetMatch(ctx, id)
	if err != nil {
		return nil, err
	}

	rows, err := q.ListParticipantsByMatch(ctx, id)
	if err != nil {
		return nil, err
	}

	result := &domain.MatchWithParticipants{
		Match: domain.Match{
			ID:         match.ID,
			Mode:       domain.GameMode(match.Mode),
			Location:   match.Location,
			PlayedAt:   match.PlayedAt,
			RecordedBy: match.RecordedBy,
			CreatedAt:  match.CreatedAt,
			UpdatedAt:  match.UpdatedAt,
		},
		Participants: make([]domain.MatchParticipant, len(rows)),
	}
	for i, p := range rows {
		result.Participants[i] = domain.MatchParticipant{
			ID:           p.ID,
			MatchID:      p.MatchID,
			PlayerID:     p.PlayerID,
			ClassPlayed:  p.ClassPlayed,
			Placement:    int(p.Placement),
			Eliminations: int(p.Eliminations),
			IsWinner:     p.IsWinner,
			RatingBefore: int(p.RatingBefore),
			RatingAfter:  int(p.RatingAfter),
			RatingChange: int(p.RatingChange),
			CreatedAt:    p.CreatedAt,
		}
	}
	return result, nil
}
