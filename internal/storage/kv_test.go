package storage

import (
	"context"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisKV_Get_MissingKey(t *testing.T) {
	db, mock := redismock.NewClientMock()
	kv := NewRedisKV(db)

	mock.ExpectGet("vendors").RedisNil()

	_, err := kv.Get(context.Background(), "vendors")
	assert.ErrorIs(t, err, ErrKeyMissing)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisKV_SetAndGet(t *testing.T) {
	db, mock := redismock.NewClientMock()
	kv := NewRedisKV(db)
	ctx := context.Background()

	mock.ExpectSet("schema_version", SchemaVersion, 0).SetVal("OK")
	mock.ExpectGet("schema_version").SetVal(SchemaVersion)

	require.NoError(t, kv.Set(ctx, "schema_version", SchemaVersion))

	val, err := kv.Get(ctx, "schema_version")
	require.NoError(t, err)
	assert.Equal(t, SchemaVersion, val)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisKV_Exists(t *testing.T) {
	db, mock := redismock.NewClientMock()
	kv := NewRedisKV(db)
	ctx := context.Background()

	mock.ExpectExists("events").SetVal(1)
	mock.ExpectExists("missing").SetVal(0)

	exists, err := kv.Exists(ctx, "events")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = kv.Exists(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisKV_IncrAndExpire(t *testing.T) {
	db, mock := redismock.NewClientMock()
	kv := NewRedisKV(db)
	ctx := context.Background()

	mock.ExpectIncr("login:attempts:a@b.com").SetVal(1)
	mock.ExpectExpire("login:attempts:a@b.com", time.Minute).SetVal(true)

	count, err := kv.Incr(ctx, "login:attempts:a@b.com")
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
	require.NoError(t, kv.Expire(ctx, "login:attempts:a@b.com", time.Minute))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMemoryKV_Expiry(t *testing.T) {
	kv := NewMemoryKV()
	ctx := context.Background()

	require.NoError(t, kv.Set(ctx, "k", "v"))
	require.NoError(t, kv.Expire(ctx, "k", time.Millisecond))
	time.Sleep(5 * time.Millisecond)

	_, err := kv.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrKeyMissing)

	exists, err := kv.Exists(ctx, "k")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestMemoryKV_IncrCounts(t *testing.T) {
	kv := NewMemoryKV()
	ctx := context.Background()

	for want := int64(1); want <= 3; want++ {
		got, err := kv.Incr(ctx, "counter")
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}
