package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"sort"

	"github.com/tidwall/gjson"
)

// parseResultsFile reads a benchconv JSON file into name -> mean_ns
func parseResultsFile(path string) (map[string]float64, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return parseResults(data)
}

func parseResults(data []byte) (map[string]float64, error) {
	if !gjson.ValidBytes(data) {
		return nil, errors.New("invalid JSON")
	}
	doc := gjson.ParseBytes(data)
	if !doc.IsArray() {
		return nil, errors.New("expected a JSON array of benchmark records")
	}

	results := make(map[string]float64)
	doc.ForEach(func(_, rec gjson.Result) bool {
		name := rec.Get("name")
		mean := rec.Get("mean_ns")
		if name.Type != gjson.String || mean.Type != gjson.Number {
			return true
		}
		results[name.String()] = mean.Float()
		return true
	})
	return results, nil
}

type regression struct {
	Name  string
	Base  float64
	Head  float64
	Ratio float64
}

func ratio(base, head float64) float64 {
	if base == 0 {
		if head == 0 {
			return 1
		}
		return math.Inf(1)
	}
	return head / base
}

// compare returns the benchmarks whose mean grew by more than maxRatio,
// worst first, and how many names both files share.
func compare(base, head map[string]float64, maxRatio float64) ([]regression, int) {
	var regressions []regression
	compared := 0
	for name, b := range base {
		h, ok := head[name]
		if !ok {
			continue
		}
		compared++

		if r := ratio(b, h); r > maxRatio {
			regressions = append(regressions, regression{Name: name, Base: b, Head: h, Ratio: r})
		}
	}

	sort.Slice(regressions, func(i, j int) bool {
		if regressions[i].Ratio == regressions[j].Ratio {
			return regressions[i].Name < regressions[j].Name
		}
		return regressions[i].Ratio > regressions[j].Ratio
	})
	return regressions, compared
}

// run returns the exit code: 0 ok, 1 regressions found, 2 usage or read errors
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("benchguard", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var basePath string
	var headPath string
	var maxTimeRatio float64

	fs.StringVar(&basePath, "base", "", "Path to base benchconv JSON output")
	fs.StringVar(&headPath, "head", "", "Path to head benchconv JSON output")
	fs.Float64Var(&maxTimeRatio, "max-time-ratio", 2.0, "Fail if mean_ns regresses by more than this ratio")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if basePath == "" || headPath == "" {
		_, _ = fmt.Fprintln(stderr, "usage: benchguard --base <file.json> --head <file.json>")
		return 2
	}

	base, err := parseResultsFile(basePath)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "failed to parse base: %v\n", err)
		return 2
	}
	head, err := parseResultsFile(headPath)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "failed to parse head: %v\n", err)
		return 2
	}

	regressions, compared := compare(base, head, maxTimeRatio)
	if compared == 0 {
		_, _ = fmt.Fprintln(stderr, "no overlapping benchmarks found between base and head outputs")
		return 2
	}

	if len(regressions) == 0 {
		_, _ = fmt.Fprintf(stdout, "benchguard: ok (%d benchmarks compared)\n", compared)
		return 0
	}

	_, _ = fmt.Fprintf(stdout, "benchguard: found %d regressions (%d benchmarks compared)\n", len(regressions), compared)
	for _, r := range regressions {
		_, _ = fmt.Fprintf(stdout, "- %s mean: %.0fns -> %.0fns (x%.2f)\n", r.Name, r.Base, r.Head, r.Ratio)
	}
	return 1
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
