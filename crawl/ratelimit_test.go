package crawl_test

import (
	"context"
	"testing"
	"time"

	"github.com/sennevb/docrawl/crawl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDelayLimiter_FirstRequestPassesImmediately(t *testing.T) {
	t.Parallel()

	l := crawl.NewDelayLimiter(time.Hour)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	start := time.Now()
	require.NoError(t, l.Wait(ctx))
	assert.Less(t, time.Since(start), 100*time.Millisecond)
}

func TestDelayLimiter_SecondRequestWaitsOutTheDelay(t *testing.T) {
	t.Parallel()

	delay := 50 * time.Millisecond
	l := crawl.NewDelayLimiter(delay)

	require.NoError(t, l.Wait(context.Background()))

	start := time.Now()
	require.NoError(t, l.Wait(context.Background()))
	assert.GreaterOrEqual(t, time.Since(start), delay/2)
}

func TestDelayLimiter_ZeroDelayDisablesPacing(t *testing.T) {
	t.Parallel()

	l := crawl.NewDelayLimiter(0)

	start := time.Now()
	for range 10 {
		require.NoError(t, l.Wait(context.Background()))
	}
	assert.Less(t, time.Since(start), 100*time.Millisecond)
}

func TestDelayLimiter_ContextCancellation(t *testing.T) {
	t.Parallel()

	l := crawl.NewDelayLimiter(time.Hour)
	require.NoError(t, l.Wait(context.Background()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.Error(t, l.Wait(ctx))
}
