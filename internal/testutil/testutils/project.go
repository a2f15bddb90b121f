package helpers

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/security-e/security-e.github.io/internal/config"
)

const (
	testDirPermissions  = 0o750
	testFilePermissions = 0o600
)

// ScaffoldProject creates a Docusaurus project tree in a temp directory that
// satisfies every file and route cfg refers to, and returns its root.
func ScaffoldProject(t *testing.T, cfg *config.Config) string {
	t.Helper()
	root := t.TempDir()

	var sidebarIDs []string
	for _, it := range cfg.ThemeConfig.Navbar.Items {
		if it.SidebarID != "" {
			sidebarIDs = append(sidebarIDs, it.SidebarID+": [{type: 'autogenerated', dirName: '.'}]")
		}
		if it.DocID != "" {
			WriteFile(t, root, filepath.Join("docs", it.DocID+".md"), "# "+it.DocID+"\n")
		}
	}
	for _, p := range cfg.Presets {
		if p.Docs != nil && p.Docs.SidebarPath != "" {
			WriteFile(t, root, p.Docs.SidebarPath,
				fmt.Sprintf("const sidebars = { %s };\nexport default sidebars;\n", strings.Join(sidebarIDs, ", ")))
		}
		if p.Theme != nil && p.Theme.CustomCSS != "" {
			WriteFile(t, root, p.Theme.CustomCSS, ":root {}\n")
		}
	}
	for _, asset := range []string{cfg.Favicon, cfg.ThemeConfig.Image, logoSrc(cfg)} {
		if asset != "" {
			WriteFile(t, root, filepath.Join("static", asset), "asset")
		}
	}
	for _, section := range cfg.ThemeConfig.Footer.Links {
		for _, it := range section.Items {
			if id, ok := strings.CutPrefix(it.To, "/docs/"); ok {
				WriteFile(t, root, filepath.Join("docs", id+".md"), "# "+id+"\n")
			}
		}
	}
	WriteFile(t, root, "blog/2024-01-01-welcome.md", "# Welcome\n")
	return root
}

func logoSrc(cfg *config.Config) string {
	if cfg.ThemeConfig.Navbar.Logo == nil {
		return ""
	}
	return cfg.ThemeConfig.Navbar.Logo.Src
}

// WriteFile writes content to rel under root, creating parent directories.
func WriteFile(t *testing.T, root, rel, content string) {
	t.Helper()
	full := filepath.Join(root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(full), testDirPermissions); err != nil {
		t.Fatalf("failed to create %s: %v", filepath.Dir(full), err)
	}
	if err := os.WriteFile(full, []byte(content), testFilePermissions); err != nil {
		t.Fatalf("failed to write %s: %v", full, err)
	}
}
