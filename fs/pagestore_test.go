package fs_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/sennevb/docrawl"
	"github.com/sennevb/docrawl/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPageStore_SavePage(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "pages")
	store, err := fs.NewPageStore(dir)
	require.NoError(t, err)

	page := &docrawl.Page{
		URL:      "https://x/manual/install",
		Title:    "Install",
		Markdown: "# Install\n\nRun the installer.",
	}
	require.NoError(t, store.SavePage(context.Background(), page))

	path := filepath.Join(dir, page.Key()+".json")
	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var got docrawl.Page
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, *page, got)
}

func TestPageStore_SavePage_IsIdempotent(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "pages")
	store, err := fs.NewPageStore(dir)
	require.NoError(t, err)

	page := &docrawl.Page{URL: "https://x/manual", Title: "Manual", Markdown: "# Manual"}
	require.NoError(t, store.SavePage(context.Background(), page))
	require.NoError(t, store.SavePage(context.Background(), page))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestPageStore_SavePage_RejectsInvalidPage(t *testing.T) {
	t.Parallel()

	store, err := fs.NewPageStore(filepath.Join(t.TempDir(), "pages"))
	require.NoError(t, err)

	err = store.SavePage(context.Background(), &docrawl.Page{Title: "No URL"})
	assert.Equal(t, docrawl.EINVALID, docrawl.ErrorCode(err))
}

func TestNewPageStore_CreatesDirectory(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "corpus", "pages")
	store, err := fs.NewPageStore(dir)
	require.NoError(t, err)
	assert.Equal(t, dir, store.Dir())
	assert.DirExists(t, dir)
}
