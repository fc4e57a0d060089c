package mock

import (
	"context"

	"github.com/fwojciec/refdex"
)

var _ refdex.DocumentStore = (*DocumentStore)(nil)

// DocumentStore is a mock implementation of refdex.DocumentStore.
type DocumentStore struct {
	InsertDocumentsFn func(ctx context.Context, docs []*refdex.Document) error
}

func (s *DocumentStore) InsertDocuments(ctx context.Context, docs []*refdex.Document) error {
	return s.InsertDocumentsFn(ctx, docs)
}

var _ refdex.SimilaritySearcher = (*SimilaritySearcher)(nil)

// SimilaritySearcher is a mock implementation of refdex.SimilaritySearcher.
type SimilaritySearcher struct {
	SearchSimilarFn func(ctx context.Context, embedding []float32, limit int) ([]refdex.SearchResult, error)
}

func (s *SimilaritySearcher) SearchSimilar(ctx context.Context, embedding []float32, limit int) ([]refdex.SearchResult, error) {
	return s.SearchSimilarFn(ctx, embedding, limit)
}
