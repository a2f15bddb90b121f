package commands

import "fmt"

// ValidateCmd implements the 'validate' command.
type ValidateCmd struct{}

func (v *ValidateCmd) Run(g *Global, root *CLI) error {
	if _, err := loadConfig(g, root); err != nil {
		return err
	}
	_, _ = fmt.Fprintln(g.Stdout, "configuration is valid")
	return nil
}
