package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	// ErrRateLimited means the identifier exhausted its attempts in the
	// current window.
	ErrRateLimited = errors.New("too many login attempts")
	// ErrLimiterUnavailable wraps redis failures so callers can decide to
	// fail open instead of blocking all logins during an outage.
	ErrLimiterUnavailable = errors.New("login limiter unavailable")
)

// LoginLimiter throttles login attempts per email and per client IP using
// rolling redis counters.
type LoginLimiter struct {
	redis       *redis.Client
	maxAttempts int
	window      time.Duration
}

// NewLoginLimiter builds a limiter. A nil client disables throttling.
func NewLoginLimiter(client *redis.Client, maxAttempts int, window time.Duration) *LoginLimiter {
	if maxAttempts <= 0 {
		maxAttempts = 10
	}
	if window <= 0 {
		window = 15 * time.Minute
	}
	return &LoginLimiter{redis: client, maxAttempts: maxAttempts, window: window}
}

// Enforce counts an attempt and returns ErrRateLimited once either key is
// over budget.
func (l *LoginLimiter) Enforce(ctx context.Context, email, ip string) error {
	if l == nil || l.redis == nil {
		return nil
	}
	if err := l.enforceKey(ctx, loginEmailKey(email)); err != nil {
		return err
	}
	if ip != "" {
		return l.enforceKey(ctx, loginIPKey(ip))
	}
	return nil
}

// Reset clears counters after a successful login.
func (l *LoginLimiter) Reset(ctx context.Context, email, ip string) error {
	if l == nil || l.redis == nil {
		return nil
	}
	keys := []string{loginEmailKey(email)}
	if ip != "" {
		keys = append(keys, loginIPKey(ip))
	}
	return l.redis.Del(ctx, keys...).Err()
}

func (l *LoginLimiter) enforceKey(ctx context.Context, key string) error {
	count, err := l.redis.Incr(ctx, key).Result()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrLimiterUnavailable, err)
	}
	if count == 1 {
		if err := l.redis.Expire(ctx, key, l.window).Err(); err != nil {
			return fmt.Errorf("%w: %v", ErrLimiterUnavailable, err)
		}
	}
	if count > int64(l.maxAttempts) {
		return ErrRateLimited
	}
	return nil
}

func loginEmailKey(email string) string {
	return "login:email:" + email
}

func loginIPKey(ip string) string {
	return "login:ip:" + ip
}
