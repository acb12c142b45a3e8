package filter

import (
	"github.com/vburojevic/benchconv/internal/domain"
)

// Filter determines if a benchmark record should be kept
type Filter interface {
	// Match returns true if the record passes the filter
	Match(record *domain.BenchmarkRecord) bool
}

// Chain combines multiple filters (all must pass)
type Chain struct {
	filters []Filter
}

// NewChain creates a filter chain from multiple filters
func NewChain(filters ...Filter) *Chain {
	return &Chain{filters: filters}
}

// Match returns true only if all filters pass
func (c *Chain) Match(record *domain.BenchmarkRecord) bool {
	for _, f := range c.filters {
		if !f.Match(record) {
			return false
		}
	}
	return true
}

// Add appends a filter to the chain
func (c *Chain) Add(f Filter) {
	c.filters = append(c.filters, f)
}

// Len returns the number of filters in the chain
func (c *Chain) Len() int {
	return len(c.filters)
}

// Apply returns the records that pass f, in their original order.
// A nil filter keeps everything.
func Apply(records []domain.BenchmarkRecord, f Filter) []domain.BenchmarkRecord {
	if f == nil {
		return records
	}
	kept := make([]domain.BenchmarkRecord, 0, len(records))
	for i := range records {
		if f.Match(&records[i]) {
			kept = append(kept, records[i])
		}
	}
	return kept
}

// Build creates a chain from include and exclude name patterns.
// Empty patterns are skipped.
func Build(match, exclude string) (*Chain, error) {
	chain := NewChain()
	if match != "" {
		f, err := NewNameFilter(match)
		if err != nil {
			return nil, err
		}
		chain.Add(f)
	}
	if exclude != "" {
		f, err := NewExcludeNameFilter(exclude)
		if err != nil {
			return nil, err
		}
		chain.Add(f)
	}
	return chain, nil
}
