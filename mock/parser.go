package mock

import (
	"io"

	"github.com/fwojciec/refdex"
)

var _ refdex.EntityParser = (*EntityParser)(nil)

// EntityParser is a mock implementation of refdex.EntityParser.
type EntityParser struct {
	ParseFn func(r io.Reader, pageName string) ([]*refdex.Entity, error)
}

func (p *EntityParser) Parse(r io.Reader, pageName string) ([]*refdex.Entity, error) {
	return p.ParseFn(r, pageName)
}

var _ refdex.DedupFilter = (*DedupFilter)(nil)

// DedupFilter is a mock implementation of refdex.DedupFilter.
type DedupFilter struct {
	AddFn  func(key string)
	TestFn func(key string) bool
}

func (f *DedupFilter) Add(key string)       { f.AddFn(key) }
func (f *DedupFilter) Test(key string) bool { return f.TestFn(key) }
