package parser

import (
	"errors"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/vburojevic/benchconv/internal/domain"
)

var (
	// "benchmark name: sort_small"
	nameLinePattern = regexp.MustCompile(`(?i)^benchmark name:\s*(.+)$`)
	// "mean: 120.5 ns", "mean: 2 µs"; the unit is any run of Unicode letters, digits or "_"
	meanLinePattern = regexp.MustCompile(`(?i)^mean:\s*([\d.]+)\s*([\p{L}\p{N}_]+)$`)
)

// Parser extracts benchmark records from Catch2-style console output.
// It holds no state between calls.
type Parser struct{}

// NewParser creates a new benchmark log parser
func NewParser() *Parser {
	return &Parser{}
}

// ConvertFile reads the benchmark log at path and returns its records in
// completion order. The only error is an unreadable input file.
func ConvertFile(path string) ([]domain.BenchmarkRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &InputError{Path: path, Err: err}
	}
	return NewParser().ParseLines(SplitLines(string(data))), nil
}

// Parse reads all of r and returns the benchmark records it contains
func Parse(r io.Reader) ([]domain.BenchmarkRecord, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return NewParser().ParseLines(SplitLines(string(data))), nil
}

// ParseLines pairs every name line with the next mean line that follows it.
//
// A name line replaces any name still waiting for its mean. A mean line with
// no waiting name is ignored, as is any other line. A name that never gets
// a mean line is dropped. The returned slice is never nil.
func (p *Parser) ParseLines(lines []string) []domain.BenchmarkRecord {
	records := make([]domain.BenchmarkRecord, 0)
	var pending *domain.BenchmarkRecord

	for _, raw := range lines {
		line := strings.TrimSpace(raw)

		if m := nameLinePattern.FindStringSubmatch(line); m != nil {
			pending = &domain.BenchmarkRecord{Name: strings.TrimSpace(m[1])}
			continue
		}

		if pending == nil {
			continue
		}

		m := meanLinePattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		ns, ok := meanNanoseconds(m[1], m[2])
		if !ok {
			continue
		}

		pending.MeanNs = ns
		records = append(records, *pending)
		pending = nil
	}

	return records
}

// meanNanoseconds converts the captured number and unit of a mean line.
// Digit runs that are not a decimal number ("1.2.3", ".") are rejected.
func meanNanoseconds(number, unit string) (int64, bool) {
	value, err := strconv.ParseFloat(number, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	return ToNanoseconds(value, unit), true
}

// SplitLines splits text on "\n", "\r\n" and lone "\r" line endings
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return strings.Split(text, "\n")
}
