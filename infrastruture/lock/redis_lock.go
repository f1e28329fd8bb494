package lock

import (
	"context"
	"fmt"
	"time"

	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/redis/go-redis/v9"
)

const defaultLockExpiry = 10 * time.Second

// RedisLocker hands out redsync mutexes so that a maze is solved by one
// process at a time.
type RedisLocker struct {
	locker *redsync.Redsync
	prefix string
	expiry time.Duration
}

// NewRedisLocker initializes a RedisLocker on the provided Redis client.
func NewRedisLocker(client *redis.Client, prefix string, expiry time.Duration) *RedisLocker {
	if expiry <= 0 {
		expiry = defaultLockExpiry
	}
	pool := goredis.NewPool(client)
	return &RedisLocker{
		locker: redsync.New(pool),
		prefix: prefix,
		expiry: expiry,
	}
}

// Lock acquires the mutex for key, retrying until ctx is done.
func (l *RedisLocker) Lock(ctx context.Context, key string) (i.UnlockFunc, error) {
	mutex := l.locker.NewMutex(l.prefix+key+":lock", redsync.WithExpiry(l.expiry))
	if err := mutex.LockContext(ctx); err != nil {
		return nil, fmt.Errorf("locking %s: %w", key, err)
	}

	return func(ctx context.Context) error {
		if _, err := mutex.UnlockContext(ctx); err != nil {
			return fmt.Errorf("unlocking %s: %w", key, err)
		}
		return nil
	}, nil
}
