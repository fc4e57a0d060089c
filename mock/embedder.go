// Package mock provides function-field mock implementations of the refdex
// interfaces for testing.
package mock

import (
	"context"

	"github.com/fwojciec/refdex"
)

var _ refdex.Embedder = (*Embedder)(nil)

// Embedder is a mock implementation of refdex.Embedder.
type Embedder struct {
	EmbedTextsFn func(ctx context.Context, texts []string) ([][]float32, error)
}

func (e *Embedder) EmbedTexts(ctx context.Context, texts []string) ([][]float32, error) {
	return e.EmbedTextsFn(ctx, texts)
}
