package commands

import (
	stdErrors "errors"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/jonboulle/clockwork"

	"github.com/security-e/security-e.github.io/internal/config"
)

// Global carries process-wide dependencies into every command.
type Global struct {
	Logger *slog.Logger
	Clock  clockwork.Clock
	Stdout io.Writer
}

// NewGlobal returns the dependencies used outside tests.
func NewGlobal() *Global {
	return &Global{Logger: slog.Default(), Clock: clockwork.NewRealClock(), Stdout: os.Stdout}
}

// CLI definition & global flags.
type CLI struct {
	Config    string           `short:"c" help:"Overrides file path (skipped when the default file is absent)" default:"siteconfig.yaml"`
	Verbose   bool             `short:"v" help:"Enable verbose logging"`
	LogFormat string           `name:"log-format" help:"Log output format (text, json)" enum:"text,json" default:"text"`
	Version   kong.VersionFlag `name:"version" help:"Show version and exit"`

	Render   RenderCmd   `cmd:"" help:"Evaluate the site record and write the Docusaurus config"`
	Validate ValidateCmd `cmd:"" help:"Evaluate and validate the site record"`
	Check    CheckCmd    `cmd:"" help:"Validate and check the project tree before a build"`
	Init     InitCmd     `cmd:"" help:"Write an example overrides file"`
}

// AfterApply runs after flag parsing; setup logging once.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply() error {
	slog.SetDefault(newLogger(os.Stderr, c.Verbose, c.LogFormat))
	return nil
}

func newLogger(w io.Writer, verbose bool, format string) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}
	if format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// overridesPath returns the file Load should read. A missing default file
// means "declared record only"; an explicit path must exist.
func (c *CLI) overridesPath() string {
	if c.Config != config.DefaultOverridesFile {
		return c.Config
	}
	if _, err := os.Stat(c.Config); stdErrors.Is(err, fs.ErrNotExist) {
		return ""
	}
	return c.Config
}

// loadConfig evaluates the site record for the current run.
func loadConfig(g *Global, root *CLI) (*config.Config, error) {
	path := root.overridesPath()
	if path == "" {
		g.Logger.Debug("No overrides file; using declared record")
	}
	return config.Load(path, g.Clock, g.Logger)
}
