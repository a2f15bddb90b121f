package preflight

import (
	"github.com/security-e/security-e.github.io/internal/config"
)

// Run checks the project at root against cfg. root is the directory holding
// docusaurus.config.ts.
func Run(cfg *config.Config, root string) *Report {
	r := &Report{Root: root}
	checkFiles(cfg, root, r)
	checkSidebars(cfg, root, r)
	checkLinks(cfg, root, r)
	checkGitRemote(cfg, root, r)
	return r
}
