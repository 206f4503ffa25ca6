package redis

import (
	"context"
	"encoding/json"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

var (
	Client *redis.Client
	Ctx    = context.Background()
)

// InitRedis connects the cache client. When REDIS_ADDR is unset the cache is
// disabled and every lookup is a miss. Slot state is never cached here; only
// the service catalog is (stale slot state would break the booking gate).
func InitRedis() {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		log.Warn().Msg("REDIS_ADDR not set, cache disabled")
		return
	}

	Client = redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   0,
	})

	if _, err := Client.Ping(Ctx).Result(); err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	log.Info().Str("addr", addr).Msg("connected to redis")
}

// GetJSON loads a cached value into dest, reporting whether it was a hit.
func GetJSON(key string, dest any) bool {
	if Client == nil {
		return false
	}
	data, err := Client.Get(Ctx, key).Bytes()
	if err != nil {
		return false
	}
	return json.Unmarshal(data, dest) == nil
}

// SetJSON stores a value under key with a TTL. Failures only cost a cache hit.
func SetJSON(key string, value any, ttl time.Duration) {
	if Client == nil {
		return
	}
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := Client.Set(Ctx, key, data, ttl).Err(); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("cache set failed")
	}
}

// Invalidate drops cached keys after a write.
func Invalidate(keys ...string) {
	if Client == nil || len(keys) == 0 {
		return
	}
	if err := Client.Del(Ctx, keys...).Err(); err != nil {
		log.Warn().Err(err).Msg("cache invalidation failed")
	}
}
