package filter

import (
	"regexp"

	"github.com/vburojevic/benchconv/internal/domain"
)

// NameFilter keeps records whose name matches a pattern
type NameFilter struct {
	pattern *regexp.Regexp
}

// NewNameFilter creates a name filter from a pattern string
func NewNameFilter(pattern string) (*NameFilter, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}
	return &NameFilter{pattern: re}, nil
}

// Match returns true if the record name matches the pattern
func (f *NameFilter) Match(record *domain.BenchmarkRecord) bool {
	return f.pattern.MatchString(record.Name)
}
