package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/sennevb/docrawl/mock"
	dcslog "github.com/sennevb/docrawl/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingFetcher_DelegatesAndLogs(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	inner := &mock.Fetcher{
		FetchFn: func(_ context.Context, url string) (string, error) {
			return "<html>body</html>", nil
		},
	}

	f := dcslog.NewLoggingFetcher(inner, logger)
	html, err := f.Fetch(context.Background(), "https://x/manual")
	require.NoError(t, err)
	assert.Equal(t, "<html>body</html>", html)

	out := buf.String()
	assert.Contains(t, out, "fetch")
	assert.Contains(t, out, "https://x/manual")
	assert.Contains(t, out, "bytes=17")

	require.NoError(t, f.Close())
}
