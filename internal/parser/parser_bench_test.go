package parser

import (
	"fmt"
	"strings"
	"testing"
)

func BenchmarkParseLines(b *testing.B) {
	var sb strings.Builder
	for i := 0; i < 500; i++ {
		fmt.Fprintf(&sb, "benchmark name: bench_%d\nsamples: 100\nmean: %d.25 us\nstd dev: 1 ns\n\n", i, i)
	}
	lines := SplitLines(sb.String())
	p := NewParser()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if got := p.ParseLines(lines); len(got) != 500 {
			b.Fatalf("got %d records", len(got))
		}
	}
}
