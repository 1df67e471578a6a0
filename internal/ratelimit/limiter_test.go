package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWait_WithinBurstDoesNotBlock(t *testing.T) {
	r := NewResourceLimiter(Config{RequestsPerSecond: 1, Burst: 5})

	start := time.Now()
	for i := 0; i < 5; i++ {
		require.NoError(t, r.Wait(context.Background(), "flight-offers"))
	}
	assert.Less(t, time.Since(start), 100*time.Millisecond)
}

func TestWait_ResourcesHaveIndependentBuckets(t *testing.T) {
	r := NewResourceLimiter(Config{RequestsPerSecond: 1, Burst: 1})

	// Drain the flight bucket; the token bucket must be unaffected.
	require.NoError(t, r.Wait(context.Background(), "flight-offers"))

	start := time.Now()
	require.NoError(t, r.Wait(context.Background(), "token"))
	assert.Less(t, time.Since(start), 100*time.Millisecond)
}

func TestWait_SameResourceReusesBucket(t *testing.T) {
	r := NewResourceLimiter(Config{RequestsPerSecond: 1, Burst: 1})

	require.NoError(t, r.Wait(context.Background(), "flight-offers"))

	// The bucket is drained, so a cancelled context must fail fast
	// instead of waiting out the refill.
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.Error(t, r.Wait(ctx, "flight-offers"))
}

func TestSetLimit_OverridesResource(t *testing.T) {
	r := NewResourceLimiter(Config{RequestsPerSecond: 1, Burst: 1})
	r.SetLimit("token", 100, 50)

	start := time.Now()
	for i := 0; i < 50; i++ {
		require.NoError(t, r.Wait(context.Background(), "token"))
	}
	assert.Less(t, time.Since(start), 200*time.Millisecond)
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 10.0, cfg.RequestsPerSecond)
	assert.Equal(t, 20, cfg.Burst)
}
