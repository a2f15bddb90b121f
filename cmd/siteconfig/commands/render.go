package commands

import (
	"github.com/security-e/security-e.github.io/internal/docusaurus"
	"github.com/security-e/security-e.github.io/internal/foundation/errors"
	"github.com/security-e/security-e.github.io/internal/logfields"
)

// stdoutPath selects standard output instead of a file.
const stdoutPath = "-"

// RenderCmd implements the 'render' command.
type RenderCmd struct {
	Format string `short:"f" help:"Output format (ts, json, yaml)" default:"ts"`
	Output string `short:"o" help:"Output file, '-' for stdout (default docusaurus.config.<format>)"`
}

func (r *RenderCmd) Run(g *Global, root *CLI) error {
	format, err := docusaurus.ParseFormat(r.Format)
	if err != nil {
		return errors.ValidationError(err.Error()).WithContext("format", r.Format).Build()
	}
	cfg, err := loadConfig(g, root)
	if err != nil {
		return err
	}
	data, err := docusaurus.Render(cfg, format)
	if err != nil {
		return err
	}

	if r.Output == stdoutPath {
		if _, err := g.Stdout.Write(data); err != nil {
			return errors.WrapError(err, errors.CategoryFileSystem, "write to stdout").Build()
		}
		return nil
	}

	path := r.Output
	if path == "" {
		path = format.DefaultFilename()
	}
	changed, err := docusaurus.WriteFile(path, data)
	if err != nil {
		return err
	}
	if !changed {
		g.Logger.Info("Docusaurus configuration unchanged", logfields.Path(path))
		return nil
	}
	g.Logger.Info("Rendered Docusaurus configuration",
		logfields.Path(path), logfields.Format(string(format)), logfields.Bytes(len(data)))
	return nil
}
