package commands

import (
	"fmt"

	"github.com/security-e/security-e.github.io/internal/preflight"
)

// CheckCmd implements the 'check' command.
type CheckCmd struct {
	Root string `help:"Docusaurus project root" default:"." type:"existingdir"`
}

func (c *CheckCmd) Run(g *Global, root *CLI) error {
	cfg, err := loadConfig(g, root)
	if err != nil {
		return err
	}
	report := preflight.Run(cfg, c.Root)
	report.Log(g.Logger)
	_, _ = fmt.Fprintf(g.Stdout, "pre-flight: %d error(s), %d warning(s)\n", report.ErrorCount(), report.WarningCount())
	return report.Err()
}
