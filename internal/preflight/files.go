package preflight

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/security-e/security-e.github.io/internal/config"
)

// staticDir holds assets served from the site root.
const staticDir = "static"

type fileRef struct {
	field string
	path  string // relative to the project root
}

// fileRefs lists every file the record points at.
func fileRefs(cfg *config.Config) []fileRef {
	var refs []fileRef
	for i, p := range cfg.Presets {
		if p.Docs != nil && p.Docs.SidebarPath != "" {
			refs = append(refs, fileRef{fmt.Sprintf("presets[%d].docs.sidebar_path", i), p.Docs.SidebarPath})
		}
		if p.Theme != nil && p.Theme.CustomCSS != "" {
			refs = append(refs, fileRef{fmt.Sprintf("presets[%d].theme.custom_css", i), p.Theme.CustomCSS})
		}
	}
	if cfg.Favicon != "" {
		refs = append(refs, fileRef{"favicon", staticAsset(cfg.Favicon)})
	}
	tc := cfg.ThemeConfig
	if tc.Image != "" {
		refs = append(refs, fileRef{"theme_config.image", staticAsset(tc.Image)})
	}
	if tc.Navbar.Logo != nil && tc.Navbar.Logo.Src != "" {
		refs = append(refs, fileRef{"navbar.logo.src", staticAsset(tc.Navbar.Logo.Src)})
	}
	return refs
}

func staticAsset(p string) string {
	return filepath.Join(staticDir, strings.TrimPrefix(p, "/"))
}

func checkFiles(cfg *config.Config, root string, r *Report) {
	for _, ref := range fileRefs(cfg) {
		full := filepath.Join(root, filepath.FromSlash(ref.path))
		info, err := os.Stat(full)
		switch {
		case err != nil:
			r.add(Finding{Check: CheckFiles, Severity: SeverityError, Field: ref.field, Target: ref.path,
				Message: fmt.Sprintf("referenced file %s does not exist", filepath.Clean(ref.path))})
		case info.IsDir():
			r.add(Finding{Check: CheckFiles, Severity: SeverityError, Field: ref.field, Target: ref.path,
				Message: fmt.Sprintf("referenced file %s is a directory", filepath.Clean(ref.path))})
		}
	}
}

// checkSidebars warns when a docSidebar navbar item names a sidebar the
// sidebars file never mentions.
func checkSidebars(cfg *config.Config, root string, r *Report) {
	classic, ok := cfg.Preset(config.PresetClassic)
	if !ok || classic.Docs == nil || classic.Docs.SidebarPath == "" {
		return
	}
	// #nosec G304 - path comes from the site record
	data, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(classic.Docs.SidebarPath)))
	if err != nil {
		return // reported by checkFiles
	}
	for i, it := range cfg.ThemeConfig.Navbar.Items {
		if it.Kind() != config.NavbarItemDocSidebar || it.SidebarID == "" {
			continue
		}
		if !bytes.Contains(data, []byte(it.SidebarID)) {
			r.add(Finding{Check: CheckSidebar, Severity: SeverityWarning,
				Field:   fmt.Sprintf("navbar.items[%d].sidebar_id", i),
				Target:  it.SidebarID,
				Message: fmt.Sprintf("sidebar %q is not defined in %s", it.SidebarID, classic.Docs.SidebarPath)})
		}
	}
}
