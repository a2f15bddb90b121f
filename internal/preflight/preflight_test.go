package preflight

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/security-e/security-e.github.io/internal/config"
	"github.com/security-e/security-e.github.io/internal/foundation/errors"
	helpers "github.com/security-e/security-e.github.io/internal/testutil/testutils"
)

func siteRecord() *config.Config {
	return config.SecurityE(time.Date(2026, time.July, 1, 0, 0, 0, 0, time.UTC))
}

func scaffold(t *testing.T) string {
	t.Helper()
	return helpers.ScaffoldProject(t, siteRecord())
}

func findingsFor(r *Report, check string) []Finding {
	var out []Finding
	for _, f := range r.Findings {
		if f.Check == check {
			out = append(out, f)
		}
	}
	return out
}

func TestRunCompleteProject(t *testing.T) {
	root := scaffold(t)
	r := Run(siteRecord(), root)

	assert.False(t, r.HasErrors(), "findings: %v", r.Findings)
	assert.Zero(t, r.WarningCount(), "findings: %v", r.Findings)
	assert.NoError(t, r.Err())

	git := findingsFor(r, CheckGit)
	require.Len(t, git, 1)
	assert.Equal(t, SeverityInfo, git[0].Severity)
}

func TestRunMissingFiles(t *testing.T) {
	root := scaffold(t)
	require.NoError(t, os.Remove(filepath.Join(root, "src", "css", "custom.css")))
	require.NoError(t, os.Remove(filepath.Join(root, "static", "img", "logo.svg")))

	r := Run(siteRecord(), root)
	files := findingsFor(r, CheckFiles)
	require.Len(t, files, 2)
	assert.Equal(t, "presets[0].theme.custom_css", files[0].Field)
	assert.Equal(t, "navbar.logo.src", files[1].Field)
	assert.Equal(t, 2, r.ErrorCount())

	err := r.Err()
	require.Error(t, err)
	assert.True(t, errors.HasCategory(err, errors.CategoryBuild))
	assert.Contains(t, err.Error(), "custom.css")
}

func TestRunDirectoryInsteadOfFile(t *testing.T) {
	root := scaffold(t)
	require.NoError(t, os.Remove(filepath.Join(root, "sidebars.ts")))
	require.NoError(t, os.Mkdir(filepath.Join(root, "sidebars.ts"), 0o750))

	r := Run(siteRecord(), root)
	files := findingsFor(r, CheckFiles)
	require.Len(t, files, 1)
	assert.Contains(t, files[0].Message, "is a directory")
}

func TestRunBrokenLinkSeverityFollowsPolicy(t *testing.T) {
	tests := []struct {
		policy config.LinkPolicy
		want   []Severity
	}{
		{config.LinkPolicyThrow, []Severity{SeverityError}},
		{config.LinkPolicyWarn, []Severity{SeverityWarning}},
		{config.LinkPolicyLog, []Severity{SeverityInfo}},
		{config.LinkPolicyIgnore, nil},
	}
	for _, tt := range tests {
		t.Run(string(tt.policy), func(t *testing.T) {
			root := scaffold(t)
			require.NoError(t, os.Remove(filepath.Join(root, "docs", "intro.md")))
			cfg := siteRecord()
			cfg.OnBrokenLinks = tt.policy

			links := findingsFor(Run(cfg, root), CheckLinks)
			var got []Severity
			for _, f := range links {
				got = append(got, f.Severity)
				assert.Equal(t, "footer.links[0].items[0].to", f.Field)
				assert.Equal(t, "/docs/intro", f.Target)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRunMissingBlogDirectory(t *testing.T) {
	root := scaffold(t)
	require.NoError(t, os.RemoveAll(filepath.Join(root, "blog")))

	links := findingsFor(Run(siteRecord(), root), CheckLinks)
	// navbar and footer both link to /blog
	require.Len(t, links, 2)
	assert.Equal(t, "navbar.items[1].to", links[0].Field)
	assert.Equal(t, "footer.links[1].items[0].to", links[1].Field)
}

func TestRouteExists(t *testing.T) {
	root := t.TempDir()
	helpers.WriteFile(t, root, "docs/intro.mdx", "x")
	helpers.WriteFile(t, root, "docs/guides/index.md", "x")
	helpers.WriteFile(t, root, "src/pages/index.tsx", "x")
	helpers.WriteFile(t, root, "src/pages/about.md", "x")
	require.NoError(t, os.MkdirAll(filepath.Join(root, "blog"), 0o750))

	tests := map[string]bool{
		"/docs/intro":       true,
		"/docs/intro#setup": true,
		"/docs/guides":      true,
		"/docs/missing":     false,
		"/docs":             true,
		"/blog":             true,
		"/blog/tags":        true,
		"/":                 true,
		"/about":            true,
		"/about?x=1":        true,
		"/contact":          false,
		"/docs/../about":    true,
	}
	for to, want := range tests {
		assert.Equal(t, want, routeExists(root, to), "route %s", to)
	}
}

func TestRunDocItem(t *testing.T) {
	root := scaffold(t)
	cfg := siteRecord()
	cfg.ThemeConfig.Navbar.Items = append(cfg.ThemeConfig.Navbar.Items,
		config.NavbarItem{Type: config.NavbarItemDoc, DocID: "guides/setup", Label: "Setup", Position: config.PositionLeft})

	links := findingsFor(Run(cfg, root), CheckLinks)
	require.Len(t, links, 1)
	assert.Equal(t, "navbar.items[4].doc_id", links[0].Field)

	helpers.WriteFile(t, root, "docs/guides/setup.md", "# Setup\n")
	assert.Empty(t, findingsFor(Run(cfg, root), CheckLinks))
}

func TestRunUnknownSidebar(t *testing.T) {
	root := scaffold(t)
	cfg := siteRecord()
	cfg.ThemeConfig.Navbar.Items[0].SidebarID = "apiSidebar"

	sidebar := findingsFor(Run(cfg, root), CheckSidebar)
	require.Len(t, sidebar, 1)
	assert.Equal(t, SeverityWarning, sidebar[0].Severity)
	assert.Equal(t, "navbar.items[0].sidebar_id", sidebar[0].Field)
}

func TestRunGitRemote(t *testing.T) {
	tests := []struct {
		name    string
		remotes []string
		want    []Severity
		gitErr  bool
	}{
		{"https remote matches", []string{"https://github.com/security-e/security-e.github.io.git"}, nil, false},
		{"ssh remote matches", []string{"git@github.com:security-e/security-e.github.io.git"}, nil, false},
		{"case-insensitive match", []string{"https://github.com/Security-E/Security-E.github.io"}, nil, false},
		{"other repository", []string{"https://github.com/someone/fork.git"}, []Severity{SeverityWarning}, false},
		{"no origin", nil, []Severity{SeverityWarning}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := scaffold(t)
			helpers.InitGitRepo(t, root, tt.remotes...)

			var got []Severity
			for _, f := range findingsFor(Run(siteRecord(), root), CheckGit) {
				got = append(got, f.Severity)
				assert.Equal(t, tt.gitErr, f.Err != nil)
				if f.Err != nil {
					assert.True(t, errors.HasCategory(f.Err, errors.CategoryGit))
				}
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRunGitRemoteUnreadableRepository(t *testing.T) {
	root := scaffold(t)
	helpers.WriteFile(t, root, ".git", "not a gitdir pointer\n")

	git := findingsFor(Run(siteRecord(), root), CheckGit)
	require.Len(t, git, 1)
	assert.Equal(t, SeverityWarning, git[0].Severity)
	require.Error(t, git[0].Err)
	assert.True(t, errors.HasCategory(git[0].Err, errors.CategoryGit))
	classified, ok := errors.AsClassified(git[0].Err)
	require.True(t, ok)
	assert.Equal(t, errors.SeverityWarning, classified.Severity())

	var buf bytes.Buffer
	(&Report{Findings: git}).Log(slog.New(slog.NewTextHandler(&buf, nil)))
	assert.Contains(t, buf.String(), "error=")
}

func TestRunGitRemoteFromSubdirectory(t *testing.T) {
	root := scaffold(t)
	helpers.InitGitRepo(t, root, "https://github.com/someone/fork.git")
	site := filepath.Join(root, "website")
	require.NoError(t, os.Mkdir(site, 0o750))

	git := findingsFor(Run(siteRecord(), site), CheckGit)
	require.Len(t, git, 1)
	assert.Equal(t, SeverityWarning, git[0].Severity)
	assert.Equal(t, "https://github.com/someone/fork.git", git[0].Target)
}

func TestRepoSlug(t *testing.T) {
	tests := map[string]string{
		"https://github.com/security-e/security-e.github.io.git": "security-e/security-e.github.io",
		"https://github.com/security-e/security-e.github.io/":    "security-e/security-e.github.io",
		"git@github.com:security-e/site.git":                     "security-e/site",
		"ssh://git@github.com/security-e/site":                   "security-e/site",
		"/srv/git/security-e/site.git":                           "security-e/site",
	}
	for in, want := range tests {
		assert.Equal(t, want, repoSlug(in), "url %s", in)
	}
}

func TestReportLog(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	r := &Report{Findings: []Finding{
		{Check: CheckFiles, Severity: SeverityError, Field: "favicon", Target: "static/img/favicon.ico", Message: "missing"},
		{Check: CheckGit, Severity: SeverityInfo, Target: "/tmp/x", Message: "skipped"},
	}}
	r.Log(logger)

	out := buf.String()
	assert.Contains(t, out, "level=ERROR msg=missing check=files target=static/img/favicon.ico field=favicon")
	assert.Contains(t, out, "level=INFO msg=skipped check=git-remote target=/tmp/x")
}

func TestSeverityString(t *testing.T) {
	assert.Equal(t, "INFO", SeverityInfo.String())
	assert.Equal(t, "WARNING", SeverityWarning.String())
	assert.Equal(t, "ERROR", SeverityError.String())
	assert.Equal(t, "UNKNOWN", Severity(9).String())
}
