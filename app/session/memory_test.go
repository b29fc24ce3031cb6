package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "tok", 42, time.Hour))
	id, err := s.Get(ctx, "tok")
	require.NoError(t, err)
	assert.Equal(t, uint(42), id)

	require.NoError(t, s.Destroy(ctx, "tok"))
	_, err = s.Get(ctx, "tok")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreUnknownToken(t *testing.T) {
	s := NewMemoryStore()
	_, err := s.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreExpiry(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	now := time.Now()
	s.now = func() time.Time { return now }
	require.NoError(t, s.Set(ctx, "tok", 7, time.Minute))

	id, err := s.Get(ctx, "tok")
	require.NoError(t, err)
	assert.Equal(t, uint(7), id)

	s.now = func() time.Time { return now.Add(2 * time.Minute) }
	_, err = s.Get(ctx, "tok")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreDestroyIsIdempotent(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, s.Destroy(ctx, "never-existed"))
	require.NoError(t, s.Destroy(ctx, "never-existed"))
}
