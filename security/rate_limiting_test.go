package security

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"munasabat-backend/internal/storage"
)

func TestLoginLimiter_AllowsUpToMax(t *testing.T) {
	limiter := NewLoginLimiter(storage.NewMemoryKV(), 3, time.Minute)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		assert.True(t, limiter.Allow(ctx, "a@b.com"))
	}
	assert.False(t, limiter.Allow(ctx, "a@b.com"))

	// Other identifiers keep their own budget.
	assert.True(t, limiter.Allow(ctx, "c@d.com"))
}

func TestLoginLimiter_CaseInsensitiveIdentifier(t *testing.T) {
	limiter := NewLoginLimiter(storage.NewMemoryKV(), 2, time.Minute)
	ctx := context.Background()

	assert.True(t, limiter.Allow(ctx, "A@B.com"))
	assert.True(t, limiter.Allow(ctx, "a@b.COM"))
	assert.False(t, limiter.Allow(ctx, "a@b.com"))
}

func TestLoginLimiter_ResetRestoresBudget(t *testing.T) {
	limiter := NewLoginLimiter(storage.NewMemoryKV(), 2, time.Minute)
	ctx := context.Background()

	limiter.Allow(ctx, "a@b.com")
	limiter.Allow(ctx, "a@b.com")
	assert.False(t, limiter.Allow(ctx, "a@b.com"))

	limiter.Reset(ctx, "a@b.com")
	assert.True(t, limiter.Allow(ctx, "a@b.com"))
}

func TestLoginLimiter_WindowExpires(t *testing.T) {
	limiter := NewLoginLimiter(storage.NewMemoryKV(), 1, 5*time.Millisecond)
	ctx := context.Background()

	assert.True(t, limiter.Allow(ctx, "a@b.com"))
	assert.False(t, limiter.Allow(ctx, "a@b.com"))

	time.Sleep(10 * time.Millisecond)
	assert.True(t, limiter.Allow(ctx, "a@b.com"))
}

type brokenKV struct {
	storage.KV
}

func (brokenKV) Incr(context.Context, string) (int64, error) {
	return 0, errors.New("backend down")
}

func TestLoginLimiter_FailsOpen(t *testing.T) {
	limiter := NewLoginLimiter(brokenKV{}, 1, time.Minute)
	assert.True(t, limiter.Allow(context.Background(), "a@b.com"))
}
