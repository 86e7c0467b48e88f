// File: ainfakroun/utils/cache.go
package utils

import (
	"context"
	"time"

	"ainfakroun/config"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// AuthCacheClient is the dedicated client for the token denylist. It stays
// nil when REDIS_ADDR is not configured; signed-out tokens then remain valid
// until natural expiry.
var AuthCacheClient *redis.Client

const revokedTokenPrefix = "revokedToken:"

// InitRedis connects the auth cache client. A missing or unreachable Redis
// is not fatal: the denylist is an optional hardening layer.
func InitRedis() {
	if config.AppConfig.RedisAddr == "" {
		GetLogger().Info("Redis not configured; sign-out denylist disabled")
		return
	}
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisAuthDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		GetLogger().Warn("Failed to connect to Redis; sign-out denylist disabled", zap.Error(err))
		return
	}
	AuthCacheClient = client
}

// RevokeToken records a token hash in the denylist until the token's own
// expiry, after which the entry is pointless anyway.
func RevokeToken(tokenHash string, ttl time.Duration) error {
	if AuthCacheClient == nil || ttl <= 0 {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	return AuthCacheClient.Set(ctx, revokedTokenPrefix+tokenHash, "1", ttl).Err()
}

// IsTokenRevoked reports whether a token hash is on the denylist. Cache
// errors are treated as "not revoked" so that a Redis outage cannot lock
// every session out.
func IsTokenRevoked(tokenHash string) bool {
	if AuthCacheClient == nil {
		return false
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := AuthCacheClient.Get(ctx, revokedTokenPrefix+tokenHash).Result()
	if err == redis.Nil {
		return false
	}
	if err != nil {
		GetLogger().Warn("Error checking token denylist", zap.Error(err))
		return false
	}
	return true
}
