package main

import (
	"fmt"
	"os"

	"github.com/fwojciec/refdex"
	"github.com/fwojciec/refdex/bloom"
	"github.com/fwojciec/refdex/ingest"
)

// dedupCapacity sizes the bloom filter for a full reference corpus.
const dedupCapacity = 100000

// Run executes the ingest command.
func (c *IngestCmd) Run(deps *Dependencies) error {
	f, err := os.Open(c.Corpus)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: corpus file %q not found\n", c.Corpus)
		return refdex.Errorf(refdex.ENOTFOUND, "corpus file %q not found", c.Corpus)
	}
	defer f.Close()

	ingestor := &ingest.Ingestor{
		Embedder:  deps.Embedder,
		Store:     deps.Store,
		Dedup:     bloom.NewFilter(dedupCapacity, 0.01),
		BatchSize: c.BatchSize,
		Logger:    deps.Logger,
	}

	result, err := ingestor.Run(deps.Ctx, f)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", refdex.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Ingested %d documents (%d duplicates, %d malformed, %d failed batches)\n",
		result.Inserted, result.Duplicates, result.Malformed, result.FailedBatches)
	return nil
}
