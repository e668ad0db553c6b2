// internal/ratelimit/redis.go
package ratelimit

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const counterScript = `
local current = redis.call("INCR", KEYS[1])
if current == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return current
`

// RedisStore shares the submission counter across processes. It fails open:
// a Redis error lets the request through rather than blocking submissions.
type RedisStore struct {
	client *redis.Client
	script *redis.Script
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{
		client: client,
		script: redis.NewScript(counterScript),
	}
}

func (s *RedisStore) Check(ctx context.Context, key string, limit int, window time.Duration) (Result, error) {
	ttl := window.Milliseconds()
	if ttl <= 0 {
		ttl = 1
	}

	ctx, cancel := context.WithTimeout(ctx, 250*time.Millisecond)
	defer cancel()

	current, err := s.script.Run(ctx, s.client, []string{"ratelimit:submission:" + key}, ttl).Int64()
	if err != nil {
		logrus.WithError(err).Warn("Rate limit counter unavailable, allowing request")
		return Result{Allowed: true, Remaining: 0}, nil
	}

	if current > int64(limit) {
		return Result{Allowed: false, Remaining: 0}, nil
	}

	return Result{Allowed: true, Remaining: limit - int(current)}, nil
}
