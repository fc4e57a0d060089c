// Package ingest provides corpus-to-vector-store ingestion orchestration.
// It streams entity records from a JSON Lines corpus, renders them into
// retrievable documents, and pushes them to a document store in fixed-size
// embedded batches.
package ingest

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/refdex"
	"github.com/fwojciec/refdex/fs"
)

// DefaultBatchSize bounds peak memory to one batch of documents.
const DefaultBatchSize = 1000

// Ingestor orchestrates corpus ingestion into a vector store.
type Ingestor struct {
	Embedder refdex.Embedder
	Store    refdex.DocumentStore

	// Dedup, when set, suppresses entities whose ID was already ingested.
	Dedup refdex.DedupFilter

	// BatchSize is the number of documents per insertion call.
	// Defaults to DefaultBatchSize when zero.
	BatchSize int

	Logger *slog.Logger
}

// Result holds the outcome of an ingestion run.
type Result struct {
	Inserted      int
	Duplicates    int
	Malformed     int
	FailedBatches int
}

// Run ingests the corpus read from r. Malformed lines are logged with their
// line number and skipped. A failed batch is logged with the running
// document count and discarded; processing continues with the next batch.
// Only infrastructure failures (unreadable input) abort the run.
func (ing *Ingestor) Run(ctx context.Context, r io.Reader) (*Result, error) {
	logger := ing.Logger
	if logger == nil {
		logger = slog.Default()
	}

	batchSize := ing.BatchSize
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}

	var res Result
	batch := make([]*refdex.Document, 0, batchSize)

	flush := func() {
		if len(batch) == 0 {
			return
		}
		if err := ing.insertBatch(ctx, batch); err != nil {
			logger.Error("batch insertion failed",
				"inserted", res.Inserted,
				"batch_size", len(batch),
				"err", err,
			)
			res.FailedBatches++
		} else {
			res.Inserted += len(batch)
		}
		batch = batch[:0]
	}

	sc := fs.NewCorpusScanner(r)
	for sc.Scan() {
		entity, err := sc.Entity()
		if err != nil {
			logger.Warn("skipping malformed corpus line", "line", sc.Line(), "err", err)
			res.Malformed++
			continue
		}

		if ing.Dedup != nil {
			if ing.Dedup.Test(entity.ID) {
				res.Duplicates++
				continue
			}
			ing.Dedup.Add(entity.ID)
		}

		batch = append(batch, refdex.NewDocument(entity))
		if len(batch) == batchSize {
			flush()
		}
	}
	if err := sc.Err(); err != nil {
		return &res, err
	}

	flush()
	return &res, nil
}

// insertBatch embeds one batch and inserts it into the store.
func (ing *Ingestor) insertBatch(ctx context.Context, docs []*refdex.Document) error {
	texts := make([]string, len(docs))
	for i, doc := range docs {
		texts[i] = doc.Content
	}

	vecs, err := ing.Embedder.EmbedTexts(ctx, texts)
	if err != nil {
		return err
	}
	if len(vecs) != len(docs) {
		return refdex.Errorf(refdex.EINTERNAL, "embedder returned %d vectors for %d documents", len(vecs), len(docs))
	}

	for i, doc := range docs {
		doc.Embedding = vecs[i]
	}

	return ing.Store.InsertDocuments(ctx, docs)
}
