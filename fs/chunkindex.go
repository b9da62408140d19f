package fs

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/sennevb/docrawl"
)

// Ensure ChunkIndex implements docrawl.ChunkWriter at compile time.
var _ docrawl.ChunkWriter = (*ChunkIndex)(nil)

// ChunkIndex is the append-only, line-oriented chunk sink: one compact JSON
// chunk record per line, written in emission order.
type ChunkIndex struct {
	path string
	file *os.File
}

// NewChunkIndex truncates (or creates) the index file at path and returns a
// writer appending to it. The caller owns Close.
func NewChunkIndex(path string) (*ChunkIndex, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, err
		}
	}
	file, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	return &ChunkIndex{path: path, file: file}, nil
}

// Path returns the index file location.
func (ix *ChunkIndex) Path() string {
	return ix.path
}

// WriteChunk appends one chunk record as a single JSON line.
func (ix *ChunkIndex) WriteChunk(_ context.Context, chunk *docrawl.Chunk) error {
	if err := chunk.Validate(); err != nil {
		return err
	}

	data, err := json.Marshal(chunk)
	if err != nil {
		return err
	}
	data = append(data, '\n')

	_, err = ix.file.Write(data)
	return err
}

// Close flushes and closes the index file.
func (ix *ChunkIndex) Close() error {
	return ix.file.Close()
}
