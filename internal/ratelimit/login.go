package ratelimit

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/piadesu/attn-store/internal/config"
	redis "github.com/redis/go-redis/v9"
)

const keyLogin = "login:%s:%s"

// LoginLimiter throttles login attempts per username and client address.
// It is disabled when no redis address is configured: every attempt is
// allowed and the store runs without redis at all.
type LoginLimiter struct {
	enabled bool
	bucket  *TokenBucket
	rate    float64
	burst   int
}

func NewLoginLimiter(cfg config.Config) *LoginLimiter {
	addr := strings.TrimSpace(cfg.RedisAddr)
	if addr == "" {
		return &LoginLimiter{}
	}

	rate := cfg.LoginRate
	if rate <= 0 {
		rate = 0.2
	}
	burst := cfg.LoginBurst
	if burst <= 0 {
		burst = 5
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: strings.TrimSpace(cfg.RedisPassword),
		DB:       cfg.RedisDB,
	})

	return &LoginLimiter{
		enabled: true,
		bucket:  NewTokenBucket(client),
		rate:    rate,
		burst:   burst,
	}
}

func (l *LoginLimiter) Enabled() bool {
	return l != nil && l.enabled
}

// Allow reports whether another login attempt may proceed. Limiter
// errors fail open so a redis outage never locks the owner out.
func (l *LoginLimiter) Allow(ctx context.Context, username, ip string) (bool, time.Duration) {
	if !l.Enabled() {
		return true, 0
	}
	key := fmt.Sprintf(keyLogin, strings.ToLower(strings.TrimSpace(username)), strings.TrimSpace(ip))
	res, err := l.bucket.Allow(ctx, key, l.rate, l.burst)
	if err != nil {
		return true, 0
	}
	return res.Allowed, res.RetryAfter
}
