package filter

import (
	"regexp"

	"github.com/vburojevic/benchconv/internal/domain"
)

// ExcludeNameFilter drops records whose name matches a pattern
type ExcludeNameFilter struct {
	pattern *regexp.Regexp
}

// NewExcludeNameFilter creates an exclusion filter from a pattern string
func NewExcludeNameFilter(pattern string) (*ExcludeNameFilter, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}
	return &ExcludeNameFilter{pattern: re}, nil
}

// Match returns true if the record name does NOT match the exclusion pattern
func (f *ExcludeNameFilter) Match(record *domain.BenchmarkRecord) bool {
	return !f.pattern.MatchString(record.Name)
}
