package sqlite_test

import (
	"context"
	"testing"

	"github.com/sennevb/docrawl"
	"github.com/sennevb/docrawl/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mustOpenDB returns an open in-memory database for testing.
func mustOpenDB(t *testing.T) *sqlite.DB {
	t.Helper()

	db := sqlite.NewDB(":memory:")
	require.NoError(t, db.Open())
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestStore_SavePage(t *testing.T) {
	t.Parallel()

	db := mustOpenDB(t)
	store := sqlite.NewStore(db)
	ctx := context.Background()

	page := &docrawl.Page{URL: "https://x/manual", Title: "Manual", Markdown: "# Manual"}
	require.NoError(t, store.SavePage(ctx, page))

	var title string
	err := db.QueryRowContext(ctx, "SELECT title FROM pages WHERE id = ?", page.Key()).Scan(&title)
	require.NoError(t, err)
	assert.Equal(t, "Manual", title)
}

func TestStore_SavePage_UpsertIsIdempotent(t *testing.T) {
	t.Parallel()

	db := mustOpenDB(t)
	store := sqlite.NewStore(db)
	ctx := context.Background()

	page := &docrawl.Page{URL: "https://x/manual", Title: "Manual", Markdown: "# Manual"}
	require.NoError(t, store.SavePage(ctx, page))

	page.Markdown = "# Manual\n\nUpdated."
	require.NoError(t, store.SavePage(ctx, page))

	var count int
	require.NoError(t, db.QueryRowContext(ctx, "SELECT COUNT(*) FROM pages").Scan(&count))
	assert.Equal(t, 1, count)

	var markdown string
	require.NoError(t, db.QueryRowContext(ctx, "SELECT markdown FROM pages WHERE id = ?", page.Key()).Scan(&markdown))
	assert.Equal(t, "# Manual\n\nUpdated.", markdown)
}

func TestStore_WriteChunk_UpsertIsIdempotent(t *testing.T) {
	t.Parallel()

	db := mustOpenDB(t)
	store := sqlite.NewStore(db)
	ctx := context.Background()

	chunk := &docrawl.Chunk{
		ID:       docrawl.ShortHash("https://x/manual|0"),
		Title:    "Manual",
		Heading:  "Install",
		URL:      "https://x/manual",
		Markdown: "## Install\n\nSteps.",
	}
	require.NoError(t, store.WriteChunk(ctx, chunk))
	require.NoError(t, store.WriteChunk(ctx, chunk))

	var count int
	require.NoError(t, db.QueryRowContext(ctx, "SELECT COUNT(*) FROM chunks").Scan(&count))
	assert.Equal(t, 1, count, "re-running a crawl must not duplicate chunks")
}

func TestStore_RejectsInvalidRecords(t *testing.T) {
	t.Parallel()

	db := mustOpenDB(t)
	store := sqlite.NewStore(db)
	ctx := context.Background()

	err := store.SavePage(ctx, &docrawl.Page{Title: "No URL"})
	assert.Equal(t, docrawl.EINVALID, docrawl.ErrorCode(err))

	err = store.WriteChunk(ctx, &docrawl.Chunk{URL: "https://x/p"})
	assert.Equal(t, docrawl.EINVALID, docrawl.ErrorCode(err))
}
