package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRedis struct {
	values map[string]string
	err    error
}

func (f *fakeRedis) Get(_ context.Context, key string) *redis.StringCmd {
	if f.err != nil {
		return redis.NewStringResult("", f.err)
	}
	v, ok := f.values[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (f *fakeRedis) Set(_ context.Context, key string, value interface{}, _ time.Duration) *redis.StatusCmd {
	if f.err != nil {
		return redis.NewStatusResult("", f.err)
	}
	f.values[key] = string(value.([]byte))
	return redis.NewStatusResult("OK", nil)
}

func TestRedisStore_PrefixedRoundTrip(t *testing.T) {
	ctx := context.Background()
	client := &fakeRedis{values: map[string]string{}}
	store := NewRedisStore(client, "booth:")

	require.NoError(t, store.Write(ctx, PromptsKey, []byte(`[]`)))

	assert.Contains(t, client.values, "booth:"+PromptsKey)
	payload, found, err := store.Read(ctx, PromptsKey)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `[]`, string(payload))
}

func TestRedisStore_MissingKey(t *testing.T) {
	store := NewRedisStore(&fakeRedis{values: map[string]string{}}, "")

	_, found, err := store.Read(context.Background(), RecordingsKey)

	assert.NoError(t, err)
	assert.False(t, found)
}

func TestRedisStore_ConnectionError(t *testing.T) {
	store := NewRedisStore(&fakeRedis{values: map[string]string{}, err: errors.New("connection refused")}, "")

	_, found, err := store.Read(context.Background(), RecordingsKey)
	assert.Error(t, err)
	assert.False(t, found)

	assert.Error(t, store.Write(context.Background(), RecordingsKey, []byte(`[]`)))
}
