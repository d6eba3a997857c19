package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestMemoryRoundTrip(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	type payload struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}

	require.NoError(t, m.Set(ctx, "k", payload{Name: "x", Count: 3}, time.Minute))

	var got payload
	hit, err := m.Get(ctx, "k", &got)
	require.NoError(t, err)
	require.True(t, hit)
	require.Equal(t, payload{Name: "x", Count: 3}, got)
}

func TestMemoryMiss(t *testing.T) {
	m := NewMemory()

	var got string
	hit, err := m.Get(context.Background(), "absent", &got)
	require.NoError(t, err)
	require.False(t, hit)
}

func TestMemoryTTLExpiry(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	base := time.Now()
	m.now = func() time.Time { return base }
	require.NoError(t, m.Set(ctx, "k", "v", time.Minute))

	var got string
	hit, err := m.Get(ctx, "k", &got)
	require.NoError(t, err)
	require.True(t, hit)

	m.now = func() time.Time { return base.Add(time.Minute) }
	hit, err = m.Get(ctx, "k", &got)
	require.NoError(t, err)
	require.False(t, hit)
}

func TestMemoryZeroTTLNeverExpires(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	base := time.Now()
	m.now = func() time.Time { return base }
	require.NoError(t, m.Set(ctx, "k", 42, 0))

	m.now = func() time.Time { return base.Add(24 * time.Hour) }
	var got int
	hit, err := m.Get(ctx, "k", &got)
	require.NoError(t, err)
	require.True(t, hit)
	require.Equal(t, 42, got)
}

func TestMemoryInvalidate(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	require.NoError(t, m.Set(ctx, "k", "v", time.Minute))
	require.NoError(t, m.Invalidate(ctx, "k"))

	var got string
	hit, err := m.Get(ctx, "k", &got)
	require.NoError(t, err)
	require.False(t, hit)
}
