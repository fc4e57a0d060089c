// Package bloom provides entity-ID deduplication using Bloom filters.
package bloom

import (
	"github.com/bits-and-blooms/bloom/v3"
	"github.com/fwojciec/refdex"
)

// Ensure Filter implements refdex.DedupFilter at compile time.
var _ refdex.DedupFilter = (*Filter)(nil)

// Filter wraps a Bloom filter for entity-ID deduplication during ingestion.
// Overlapping documentation pages re-emit the same entities; the filter lets
// the ingestor skip repeats without holding every seen ID in memory.
type Filter struct {
	f *bloom.BloomFilter
}

// NewFilter creates a new Bloom filter sized for n expected items
// with the given false positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// Add adds an entity ID to the filter.
func (f *Filter) Add(id string) {
	f.f.AddString(id)
}

// Test returns true if the ID might have been seen already.
// False positives are possible; false negatives are not.
func (f *Filter) Test(id string) bool {
	return f.f.TestString(id)
}

// EstimatedCount returns the approximate number of items in the filter.
func (f *Filter) EstimatedCount() uint {
	return uint(f.f.ApproximatedSize())
}
