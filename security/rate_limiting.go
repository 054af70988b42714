package security

import (
	"context"
	"fmt"
	"strings"
	"time"

	"munasabat-backend/internal/storage"
)

// LoginLimiter caps login attempts per identifier (email plus client IP)
// inside a rolling window, backed by KV counters with a TTL.
type LoginLimiter struct {
	kv          storage.KV
	maxAttempts int64
	window      time.Duration
}

func NewLoginLimiter(kv storage.KV, maxAttempts int, window time.Duration) *LoginLimiter {
	return &LoginLimiter{
		kv:          kv,
		maxAttempts: int64(maxAttempts),
		window:      window,
	}
}

// Allow records one attempt for id and reports whether it is still within the
// limit. Backend failures fail open: a broken counter must not lock everyone
// out.
func (l *LoginLimiter) Allow(ctx context.Context, id string) bool {
	key := fmt.Sprintf("login:attempts:%s", strings.ToLower(id))

	count, err := l.kv.Incr(ctx, key)
	if err != nil {
		return true
	}
	if count == 1 {
		l.kv.Expire(ctx, key, l.window)
	}
	return count <= l.maxAttempts
}

// Reset clears the counter for id, called after a successful login.
func (l *LoginLimiter) Reset(ctx context.Context, id string) {
	key := fmt.Sprintf("login:attempts:%s", strings.ToLower(id))
	l.kv.Delete(ctx, key)
}
