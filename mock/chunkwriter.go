package mock

import (
	"context"

	"github.com/sennevb/docrawl"
)

var _ docrawl.ChunkWriter = (*ChunkWriter)(nil)

// ChunkWriter is a mock implementation of docrawl.ChunkWriter.
type ChunkWriter struct {
	WriteChunkFn func(ctx context.Context, chunk *docrawl.Chunk) error
}

func (w *ChunkWriter) WriteChunk(ctx context.Context, chunk *docrawl.Chunk) error {
	return w.WriteChunkFn(ctx, chunk)
}
