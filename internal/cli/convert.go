package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/vburojevic/benchconv/internal/filter"
	"github.com/vburojevic/benchconv/internal/output"
	"github.com/vburojevic/benchconv/internal/parser"
	"go.uber.org/zap"
)

// Run converts the benchmark log at the first path into JSON at the second
func (c *CLI) Run(globals *Globals) error {
	if len(c.Paths) != 2 {
		fmt.Fprintln(globals.Stdout, Usage)
		return &CLIError{Code: CodeUsage, Message: fmt.Sprintf("expected 2 arguments, got %d", len(c.Paths))}
	}
	inputPath, outputPath := c.Paths[0], c.Paths[1]
	logger := globals.Logger.With(zap.String("input", inputPath), zap.String("output", outputPath))

	chain, err := filter.Build(globals.Match, globals.Exclude)
	if err != nil {
		return outputErrorCommon(globals, CodeInvalidFilter, fmt.Sprintf("invalid name filter: %s", err), "Patterns use Go regexp syntax, e.g. --match '^arena_'")
	}

	start := globals.Clock.Now()

	records, err := parser.ConvertFile(inputPath)
	if err != nil {
		return outputErrorCommon(globals, CodeInputIO, err.Error(), hintForInput(err))
	}
	parsed := len(records)

	if chain.Len() > 0 {
		records = filter.Apply(records, chain)
		logger.Debug("applied name filters",
			zap.String("match", globals.Match),
			zap.String("exclude", globals.Exclude),
			zap.Int("kept", len(records)),
			zap.Int("dropped", parsed-len(records)))
	}

	if err := output.WriteFile(outputPath, records); err != nil {
		var outErr *output.OutputError
		if !errors.As(err, &outErr) {
			return err
		}
		return outputErrorCommon(globals, CodeOutputIO, err.Error(), hintForOutput(err))
	}

	logger.Debug("converted benchmarks",
		zap.Int("parsed", parsed),
		zap.Int("written", len(records)),
		zap.Duration("elapsed", globals.Clock.Since(start)))

	if globals.Summary {
		if err := output.WriteSummary(globals.Stdout, records, summaryStyles(globals)); err != nil {
			logger.Warn("failed to print summary", zap.Error(err))
		}
	}

	return nil
}

// summaryStyles drops colors unless stdout is a terminal
func summaryStyles(globals *Globals) output.SummaryStyles {
	if globals == nil || globals.Stdout == nil {
		return output.PlainStyles
	}
	if f, ok := globals.Stdout.(*os.File); ok {
		if isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()) {
			return output.Styles
		}
	}
	return output.PlainStyles
}
