package locking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

const (
	lockKeyPrefix      = "programtracker-lock||"
	DefaultLockTTL     = 10 * time.Second
	defaultRetryPeriod = 25 * time.Millisecond
)

// releaseScript deletes the lock only if it still holds our token
const releaseScript = `
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
else
	return 0
end`

var ErrLockNotAcquired = errors.New("lock not acquired")

// RedisLocker serializes work across processes sharing one redis.
// The TTL bounds how long a crashed holder can block others.
type RedisLocker struct {
	redisClient *redis.Client
	ttl         time.Duration
	retryPeriod time.Duration
	// ability to inject token generation (for unit testing)
	TokenFunc func() string
}

func NewRedisLocker(redisClient *redis.Client, ttl time.Duration) *RedisLocker {
	if ttl <= 0 {
		ttl = DefaultLockTTL
	}
	return &RedisLocker{
		redisClient: redisClient,
		ttl:         ttl,
		retryPeriod: defaultRetryPeriod,
		TokenFunc:   uuid.NewString,
	}
}

func (rl *RedisLocker) Lock(ctx context.Context, key string) (Unlock, error) {
	lockKey := lockKeyPrefix + key
	token := rl.TokenFunc()

	for {
		acquired, err := rl.redisClient.SetNX(ctx, lockKey, token, rl.ttl).Result()
		if err != nil {
			return nil, fmt.Errorf("setnx %s: %w", lockKey, err)
		}
		if acquired {
			break
		}

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("%w: %s: %w", ErrLockNotAcquired, key, ctx.Err())
		case <-time.After(rl.retryPeriod):
		}
	}

	return func() {
		// release must not depend on the caller's (possibly cancelled) context
		releaseCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := rl.redisClient.Eval(releaseCtx, releaseScript, []string{lockKey}, token).Err(); err != nil {
			log.Errorf("release lock %s: %s", lockKey, err)
		}
	}, nil
}
