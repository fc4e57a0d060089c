package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/refdex"
)

// Ensure LoggingDocumentStore implements refdex.DocumentStore.
var _ refdex.DocumentStore = (*LoggingDocumentStore)(nil)

// LoggingDocumentStore wraps a DocumentStore with logging.
type LoggingDocumentStore struct {
	next   refdex.DocumentStore
	logger *slog.Logger
}

// NewLoggingDocumentStore creates a new LoggingDocumentStore.
func NewLoggingDocumentStore(next refdex.DocumentStore, logger *slog.Logger) *LoggingDocumentStore {
	return &LoggingDocumentStore{next: next, logger: logger}
}

// InsertDocuments delegates to the wrapped store and logs the operation.
func (s *LoggingDocumentStore) InsertDocuments(ctx context.Context, docs []*refdex.Document) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("document insertion",
			"count", len(docs),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.InsertDocuments(ctx, docs)
}
