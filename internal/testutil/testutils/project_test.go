package helpers

import (
	"testing"
	"time"

	"github.com/security-e/security-e.github.io/internal/config"
)

func TestScaffoldProjectCoversReferences(t *testing.T) {
	cfg := config.SecurityE(time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC))
	root := ScaffoldProject(t, cfg)

	NewFileAssertions(t, root).
		AssertFileContains("sidebars.ts", "docsSidebar").
		AssertFileExists("src/css/custom.css").
		AssertFileExists("static/img/favicon.ico").
		AssertFileExists("static/img/logo.svg").
		AssertFileExists("static/img/docusaurus-social-card.jpg").
		AssertFileExists("docs/intro.md").
		AssertFileExists("blog/2024-01-01-welcome.md").
		AssertFileNotExists("docusaurus.config.ts")
}

func TestInitGitRepoWithOrigin(t *testing.T) {
	repo := InitGitRepo(t, t.TempDir(), "https://github.com/security-e/security-e.github.io.git")
	remote, err := repo.Remote("origin")
	if err != nil {
		t.Fatalf("origin remote: %v", err)
	}
	if got := remote.Config().URLs[0]; got != "https://github.com/security-e/security-e.github.io.git" {
		t.Fatalf("unexpected origin url %s", got)
	}
}
