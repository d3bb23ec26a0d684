package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/nhattranq/profilehub/internal/domain/profile"
	"github.com/nhattranq/profilehub/pkg/logger"
)

const (
	aggregateKeyPrefix  = "profile:aggregate:"
	resetTokenKeyPrefix = "auth:reset:"
)

// RedisAggregateCache keeps whole aggregates as JSON. A cache problem is never
// fatal: misses and redis errors both fall through to Postgres.
type RedisAggregateCache struct {
	rdb    *redis.Client
	ttl    time.Duration
	logger logger.Logger
}

func NewRedisAggregateCache(rdb *redis.Client, ttl time.Duration, log logger.Logger) *RedisAggregateCache {
	return &RedisAggregateCache{rdb: rdb, ttl: ttl, logger: log}
}

func (c *RedisAggregateCache) Get(ctx context.Context, userID uuid.UUID) (*profile.Aggregate, bool) {
	raw, err := c.rdb.Get(ctx, aggregateKeyPrefix+userID.String()).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn("aggregate cache read failed", zap.String("user_id", userID.String()), zap.Error(err))
		}
		return nil, false
	}

	agg := &profile.Aggregate{}
	if err := json.Unmarshal(raw, agg); err != nil {
		c.logger.Warn("aggregate cache entry corrupt", zap.String("user_id", userID.String()), zap.Error(err))
		return nil, false
	}
	agg.Normalize()
	c.logger.Debug("aggregate cache hit", zap.String("user_id", userID.String()))
	return agg, true
}

func (c *RedisAggregateCache) Set(ctx context.Context, userID uuid.UUID, agg *profile.Aggregate) {
	raw, err := json.Marshal(agg)
	if err != nil {
		c.logger.Warn("aggregate cache marshal failed", zap.String("user_id", userID.String()), zap.Error(err))
		return
	}
	if err := c.rdb.Set(ctx, aggregateKeyPrefix+userID.String(), raw, c.ttl).Err(); err != nil {
		c.logger.Warn("aggregate cache write failed", zap.String("user_id", userID.String()), zap.Error(err))
	}
}

func (c *RedisAggregateCache) Invalidate(ctx context.Context, userID uuid.UUID) {
	if err := c.rdb.Del(ctx, aggregateKeyPrefix+userID.String()).Err(); err != nil {
		c.logger.Warn("aggregate cache invalidation failed", zap.String("user_id", userID.String()), zap.Error(err))
	}
}

// RedisResetTokenStore holds one-shot password reset tokens with a TTL.
type RedisResetTokenStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisResetTokenStore(rdb *redis.Client, ttl time.Duration) *RedisResetTokenStore {
	return &RedisResetTokenStore{rdb: rdb, ttl: ttl}
}

func (s *RedisResetTokenStore) Put(ctx context.Context, token string, userID uuid.UUID) error {
	return s.rdb.Set(ctx, resetTokenKeyPrefix+token, userID.String(), s.ttl).Err()
}

// Take consumes the token: a second Take of the same token misses.
func (s *RedisResetTokenStore) Take(ctx context.Context, token string) (uuid.UUID, bool, error) {
	raw, err := s.rdb.GetDel(ctx, resetTokenKeyPrefix+token).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return uuid.Nil, false, nil
		}
		return uuid.Nil, false, err
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, false, nil
	}
	return id, true, nil
}
