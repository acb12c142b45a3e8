package parser

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vburojevic/benchconv/internal/domain"
)

func parseString(t *testing.T, input string) []domain.BenchmarkRecord {
	t.Helper()
	records, err := Parse(strings.NewReader(input))
	require.NoError(t, err)
	return records
}

func TestParse(t *testing.T) {
	t.Run("end to end example", func(t *testing.T) {
		input := "Benchmark Name: sort_small\nMean: 120.5 ns\nbenchmark name: sort_large\nmean: 3.2 ms\n"
		records := parseString(t, input)

		assert.Equal(t, []domain.BenchmarkRecord{
			{Name: "sort_small", MeanNs: 120},
			{Name: "sort_large", MeanNs: 3200000},
		}, records)
	})

	t.Run("empty input yields empty non-nil slice", func(t *testing.T) {
		records := parseString(t, "")
		require.NotNil(t, records)
		assert.Empty(t, records)
	})

	t.Run("name without mean is dropped", func(t *testing.T) {
		records := parseString(t, "benchmark name: lonely\nsamples: 100\n")
		assert.Empty(t, records)
	})

	t.Run("mean without name is ignored", func(t *testing.T) {
		records := parseString(t, "mean: 5 ns\nbenchmark name: a\nmean: 7 ns\nmean: 9 ns\n")
		assert.Equal(t, []domain.BenchmarkRecord{{Name: "a", MeanNs: 7}}, records)
	})

	t.Run("last name wins", func(t *testing.T) {
		records := parseString(t, "benchmark name: first\nbenchmark name: second\nmean: 3 us\n")
		assert.Equal(t, []domain.BenchmarkRecord{{Name: "second", MeanNs: 3000}}, records)
	})

	t.Run("unknown unit counts as nanoseconds", func(t *testing.T) {
		records := parseString(t, "benchmark name: odd\nmean: 5 foo\n")
		assert.Equal(t, []domain.BenchmarkRecord{{Name: "odd", MeanNs: 5}}, records)
	})

	t.Run("non-ASCII unit counts as nanoseconds", func(t *testing.T) {
		records := parseString(t, "benchmark name: x\nmean: 2 µs\n")
		assert.Equal(t, []domain.BenchmarkRecord{{Name: "x", MeanNs: 2}}, records)
	})

	t.Run("truncates instead of rounding", func(t *testing.T) {
		records := parseString(t, "benchmark name: t\nmean: 1.9999 ns\n")
		assert.Equal(t, []domain.BenchmarkRecord{{Name: "t", MeanNs: 1}}, records)
	})

	t.Run("surrounding whitespace is ignored", func(t *testing.T) {
		records := parseString(t, "   benchmark name:    spaced out  \t\n\t mean:   42   ns  \n")
		assert.Equal(t, []domain.BenchmarkRecord{{Name: "spaced out", MeanNs: 42}}, records)
	})

	t.Run("unit may follow the number directly", func(t *testing.T) {
		records := parseString(t, "benchmark name: tight\nmean: 4ms\n")
		assert.Equal(t, []domain.BenchmarkRecord{{Name: "tight", MeanNs: 4000000}}, records)
	})

	t.Run("malformed number keeps the pending name", func(t *testing.T) {
		records := parseString(t, "benchmark name: n\nmean: 1.2.3 ns\nmean: 8 ns\n")
		assert.Equal(t, []domain.BenchmarkRecord{{Name: "n", MeanNs: 8}}, records)
	})

	t.Run("lines with trailing text are not mean lines", func(t *testing.T) {
		records := parseString(t, "benchmark name: n\nmean: 8 ns (estimated)\nlow mean: 7 ns\n")
		assert.Empty(t, records)
	})

	t.Run("empty name is not a name line", func(t *testing.T) {
		records := parseString(t, "benchmark name: kept\nbenchmark name:   \nmean: 1 ns\n")
		assert.Equal(t, []domain.BenchmarkRecord{{Name: "kept", MeanNs: 1}}, records)
	})

	t.Run("windows and old mac line endings", func(t *testing.T) {
		records := parseString(t, "benchmark name: a\r\nmean: 1 us\r\nbenchmark name: b\rmean: 2 ns\r")
		assert.Equal(t, []domain.BenchmarkRecord{
			{Name: "a", MeanNs: 1000},
			{Name: "b", MeanNs: 2},
		}, records)
	})

	t.Run("bare number lends its last digit to the unit", func(t *testing.T) {
		records := parseString(t, "benchmark name: b\nmean: 10\n")
		assert.Equal(t, []domain.BenchmarkRecord{{Name: "b", MeanNs: 1}}, records)
	})

	t.Run("name keeps inner colons", func(t *testing.T) {
		records := parseString(t, "benchmark name: vector::push_back: 1k\nmean: 10 ns\n")
		assert.Equal(t, []domain.BenchmarkRecord{{Name: "vector::push_back: 1k", MeanNs: 10}}, records)
	})
}

func TestParseLines_NoFinalNewline(t *testing.T) {
	p := NewParser()
	records := p.ParseLines([]string{"benchmark name: x", "mean: 2 s"})
	assert.Equal(t, []domain.BenchmarkRecord{{Name: "x", MeanNs: 2000000000}}, records)
}

func TestSplitLines(t *testing.T) {
	assert.Nil(t, SplitLines(""))
	assert.Equal(t, []string{"a", "b", ""}, SplitLines("a\r\nb\n"))
	assert.Equal(t, []string{"a", "b"}, SplitLines("a\rb"))
}

func TestConvertFile(t *testing.T) {
	t.Run("reads fixture", func(t *testing.T) {
		records, err := ConvertFile(filepath.Join("testdata", "arena_bench.txt"))
		require.NoError(t, err)

		assert.Equal(t, []domain.BenchmarkRecord{
			{Name: "arena_alloc_small", MeanNs: 12},
			{Name: "arena_alloc_large", MeanNs: 1750},
			{Name: "malloc_baseline", MeanNs: 2500000},
			{Name: "arena_reset", MeanNs: 750000000},
		}, records)
	})

	t.Run("empty file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "empty.txt")
		require.NoError(t, os.WriteFile(path, nil, 0644))

		records, err := ConvertFile(path)
		require.NoError(t, err)
		assert.Empty(t, records)
	})

	t.Run("missing file is an input error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "missing.txt")

		records, err := ConvertFile(path)
		assert.Nil(t, records)

		var inputErr *InputError
		require.True(t, errors.As(err, &inputErr))
		assert.Equal(t, path, inputErr.Path)
		assert.True(t, errors.Is(err, fs.ErrNotExist))
		assert.Contains(t, err.Error(), "missing.txt")
	})

	t.Run("directory is an input error", func(t *testing.T) {
		_, err := ConvertFile(t.TempDir())

		var inputErr *InputError
		assert.True(t, errors.As(err, &inputErr))
	})
}
