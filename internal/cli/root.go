package cli

import (
	"io"

	"github.com/alecthomas/kong"
	"github.com/benbjohnson/clock"
	"github.com/vburojevic/benchconv/internal/config"
	"go.uber.org/zap"
)

// Usage is printed to stdout when the positional arguments are wrong
const Usage = "Usage: benchconv <input.txt> <output.json>"

// CLI is the root command structure for benchconv
type CLI struct {
	// Global flags
	Config   string           `type:"path" placeholder:"FILE" help:"Config file (default: search ./.benchconv.yaml, ~/.benchconv.yaml, ~/.config/benchconv/config.yaml)"`
	Verbose  bool             `short:"v" help:"Show debug output (paths, record counts, timing)"`
	LogLevel string           `placeholder:"LEVEL" help:"Minimum log level: debug, info, warn, error (default: warn)"`
	Summary  bool             `help:"Print a table of converted benchmarks to stdout"`
	Match    string           `placeholder:"REGEX" help:"Only keep benchmarks whose name matches"`
	Exclude  string           `placeholder:"REGEX" help:"Drop benchmarks whose name matches"`
	Version  kong.VersionFlag `help:"Show version information"`

	Paths []string `arg:"" optional:"" name:"path" help:"Benchmark log to read, then JSON file to write (put -- before paths starting with '-')"`
}

// Globals holds shared state for a conversion run
type Globals struct {
	Verbose bool
	Summary bool
	Match   string
	Exclude string
	Stdout  io.Writer
	Stderr  io.Writer
	Config  *config.Config
	Logger  *zap.Logger
	Clock   clock.Clock
}

// NewGlobalsWithConfig creates a new Globals instance with config fallbacks.
// Flags win over config values; the logger writes to stderr.
func NewGlobalsWithConfig(cli *CLI, cfg *config.Config, stdout, stderr io.Writer) *Globals {
	if cfg == nil {
		cfg = config.Default()
	}

	g := &Globals{
		Verbose: cli.Verbose || cfg.Verbose,
		Summary: cli.Summary || cfg.Summary,
		Match:   cfg.Match,
		Exclude: cfg.Exclude,
		Stdout:  stdout,
		Stderr:  stderr,
		Config:  cfg,
		Clock:   clock.New(),
	}
	if cli.Match != "" {
		g.Match = cli.Match
	}
	if cli.Exclude != "" {
		g.Exclude = cli.Exclude
	}

	logCfg := *cfg
	logCfg.Verbose = g.Verbose
	if cli.LogLevel != "" {
		logCfg.LogLevel = cli.LogLevel
	}
	g.Logger = logCfg.NewLogger(stderr)

	return g
}

// Version information (set at build time)
var (
	Version = "dev"
	Commit  = "none"
)
