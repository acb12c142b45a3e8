package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/alecthomas/kong"
	"github.com/vburojevic/benchconv/internal/config"
)

// Execute parses args, runs the conversion and returns the process exit code
func Execute(args []string, stdout, stderr io.Writer) int {
	var c CLI

	exitCode := -1
	parser, err := kong.New(&c,
		kong.Name("benchconv"),
		kong.Description("Convert benchmark console output (benchmark name / mean lines) into a JSON array of {name, mean_ns} records. Paths that start with '-' must follow --."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(code int) {
			if exitCode < 0 {
				exitCode = code
			}
		}),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
			Summary: true,
		}),
		kong.Vars{"version": fmt.Sprintf("benchconv version %s (%s)", Version, Commit)},
	)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	if _, err := parser.Parse(args); err != nil {
		if exitCode >= 0 {
			return exitCode
		}
		fmt.Fprintln(stdout, Usage)
		fmt.Fprintf(stderr, "Error [%s]: %v\n", CodeUsage, err)
		return 1
	}
	// --help and --version already printed and asked to exit
	if exitCode >= 0 {
		return exitCode
	}

	// Argument count is checked before any file is touched, config included
	if len(c.Paths) != 2 {
		fmt.Fprintln(stdout, Usage)
		return 1
	}

	cfg, err := loadConfig(&c, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "Error [%s]: %v\n", CodeConfig, err)
		return 1
	}

	globals := NewGlobalsWithConfig(&c, cfg, stdout, stderr)
	defer func() { _ = globals.Logger.Sync() }()

	if err := c.Run(globals); err != nil {
		var cliErr *CLIError
		if !errors.As(err, &cliErr) {
			fmt.Fprintf(stderr, "Error: %v\n", err)
		}
		return 1
	}
	return 0
}

// loadConfig honours --config, otherwise searches the standard locations.
// A broken config found by searching only produces a warning.
func loadConfig(c *CLI, stderr io.Writer) (*config.Config, error) {
	if c.Config != "" {
		return config.LoadFromFile(c.Config)
	}
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "Warning: failed to load config: %v\n", err)
		return config.Default(), nil
	}
	return cfg, nil
}
