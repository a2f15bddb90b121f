package main

import (
	"log/slog"

	"github.com/alecthomas/kong"

	"github.com/security-e/security-e.github.io/cmd/siteconfig/commands"
	"github.com/security-e/security-e.github.io/internal/foundation/errors"
	"github.com/security-e/security-e.github.io/internal/version"
)

func main() {
	var cli commands.CLI
	ctx := kong.Parse(&cli,
		kong.Name("siteconfig"),
		kong.Description("Evaluate, validate and render the Security E Docusaurus configuration."),
		kong.UsageOnError(),
		kong.Vars{"version": version.String()},
	)

	// AfterApply has installed the configured logger by now.
	if err := ctx.Run(commands.NewGlobal(), &cli); err != nil {
		errors.NewCLIErrorAdapter(cli.Verbose, slog.Default()).HandleError(err)
	}
}
