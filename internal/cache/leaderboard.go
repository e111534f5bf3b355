// Package cache keeps computed leaderboards in Redis between match writes.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"ticticpou-ranking/internal/config"
	"ticticpou-ranking/internal/constants"
	"ticticpou-ranking/internal/domain"
)

var errStaleGeneration = errors.New("leaderboard generation changed")

const (
	leaderboardKeyPrefix = "leaderboard:"
	generationKey        = leaderboardKeyPrefix + "generation"
)

// LeaderboardCache stores computed boards. Callers read Generation before
// scanning storage and hand it back to Set; Invalidate bumps the
// generation, so a board computed from data older than the last
// invalidation is never stored.
type LeaderboardCache interface {
	Get(ctx context.Context, mode domain.GameMode, limit int) ([]domain.RankingEntry, bool, error)
	Generation(ctx context.Context) (int64, error)
	Set(ctx context.Context, mode domain.GameMode, limit int, generation int64, entries []domain.RankingEntry) error
	Invalidate(ctx context.Context) error
}

// New returns a Redis backed cache, or a no-op one when REDIS_ADDR is unset.
func New(lc fx.Lifecycle, cfg *config.Config, logger zerolog.Logger) (LeaderboardCache, error) {
	if cfg.RedisAddr == "" {
		logger.Info().Msg("redis not configured, leaderboard cache disabled")
		return NopLeaderboardCache{}, nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       0,
	})

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := rdb.Ping(ctx).Err(); err != nil {
				return fmt.Errorf("failed to connect to redis: %w", err)
			}
			logger.Info().Str("addr", cfg.RedisAddr).Msg("connected to redis")
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return rdb.Close()
		},
	})

	return NewRedisLeaderboardCache(rdb, logger), nil
}

type RedisLeaderboardCache struct {
	client *redis.Client
	logger zerolog.Logger
}

func NewRedisLeaderboardCache(client *redis.Client, logger zerolog.Logger) *RedisLeaderboardCache {
	return &RedisLeaderboardCache{client: client, logger: logger}
}

// One hash per mode, one field per requested limit, so a match write only
// has to drop a fixed set of keys.
func leaderboardKey(mode domain.GameMode) string {
	return leaderboardKeyPrefix + string(mode)
}

func (c *RedisLeaderboardCache) Get(ctx context.Context, mode domain.GameMode, limit int) ([]domain.RankingEntry, bool, error) {
	data, err := c.client.HGet(ctx, leaderboardKey(mode), strconv.Itoa(limit)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var entries []domain.RankingEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, false, err
	}
	return entries, true, nil
}

func (c *RedisLeaderboardCache) Generation(ctx context.Context) (int64, error) {
	generation, err := c.client.Get(ctx, generationKey).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return generation, err
}

// Set stores entries only if no invalidation happened since generation was
// read. A stale or contended write is dropped silently.
func (c *RedisLeaderboardCache) Set(ctx context.Context, mode domain.GameMode, limit int, generation int64, entries []domain.RankingEntry) error {
	data, err := json.Marshal(entries)
	if err != nil {
		return err
	}

	key := leaderboardKey(mode)
	err = c.client.Watch(ctx, func(tx *redis.Tx) error {
		current, err := tx.Get(ctx, generationKey).Int64()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}
		if current != generation {
			return errStaleGeneration
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.HSet(ctx, key, strconv.Itoa(limit), data)
			pipe.Expire(ctx, key, constants.LeaderboardCacheTTL)
			return nil
		})
		return err
	}, generationKey)

	if errors.Is(err, errStaleGeneration) || errors.Is(err, redis.TxFailedErr) {
		c.logger.Debug().Str("mode", string(mode)).Int64("generation", generation).Msg("stale leaderboard not cached")
		return nil
	}
	return err
}

func (c *RedisLeaderboardCache) Invalidate(ctx context.Context) error {
	keys := []string{leaderboardKey(domain.ModeGlobal)}
	for _, mode := range domain.GameModes {
		keys = append(keys, leaderboardKey(mode))
	}

	pipe := c.client.TxPipeline()
	pipe.Incr(ctx, generationKey)
	pipe.Del(ctx, keys...)
	if _, err := pipe.Exec(ctx); err != nil {
		return err
	}
	c.logger.Debug().Strs("keys", keys).Msg("leaderboard cache invalidated")
	return nil
}

type NopLeaderboardCache struct{}

func (NopLeaderboardCache) Get(context.Context, domain.GameMode, int) ([]domain.RankingEntry, bool, error) {
	return nil, false, nil
}

func (NopLeaderboardCache) Generation(context.Context) (int64, error) {
	return 0, nil
}

func (NopLeaderboardCache) Set(context.Context, domain.GameMode, int, int64, []domain.RankingEntry) error {
	return nil
}

func (NopLeaderboardCache) Invalidate(context.Context) error {
	return nil
}
