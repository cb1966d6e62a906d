package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	defaultAttemptLimit = 10
	defaultWindow       = time.Minute
)

// LoginThrottle bounds login attempts per originating client using a Redis
// fixed-window counter. Key format: login_attempts:<client_ip>
type LoginThrottle struct {
	client *redis.Client
	limit  int64
	window time.Duration
}

// NewLoginThrottle creates a LoginThrottle allowing limit attempts per window.
// Non-positive arguments fall back to 10 attempts per minute.
func NewLoginThrottle(client *redis.Client, limit int, window time.Duration) *LoginThrottle {
	if limit <= 0 {
		limit = defaultAttemptLimit
	}
	if window <= 0 {
		window = defaultWindow
	}
	return &LoginThrottle{client: client, limit: int64(limit), window: window}
}

// Allow records an attempt for key and reports whether it is within the
// window's limit. The counter expires on its own once the window elapses.
func (t *LoginThrottle) Allow(ctx context.Context, key string) (bool, error) {
	counter := "login_attempts:" + key

	n, err := t.client.Incr(ctx, counter).Result()
	if err != nil {
		return false, fmt.Errorf("throttle incr: %w", err)
	}
	if n == 1 {
		if err := t.client.Expire(ctx, counter, t.window).Err(); err != nil {
			return false, fmt.Errorf("throttle expire: %w", err)
		}
	}
	return n <= t.limit, nil
}
