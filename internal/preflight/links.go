package preflight

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/security-e/security-e.github.io/internal/config"
)

var (
	docExtensions  = []string{".md", ".mdx"}
	pageExtensions = []string{".md", ".mdx", ".js", ".jsx", ".ts", ".tsx"}
)

type linkRef struct {
	field string
	to    string
	docID bool // to is a doc id rather than a route
}

func linkRefs(cfg *config.Config) []linkRef {
	var refs []linkRef
	for i, it := range cfg.ThemeConfig.Navbar.Items {
		field := fmt.Sprintf("navbar.items[%d]", i)
		switch {
		case it.Kind() == config.NavbarItemDoc && it.DocID != "":
			refs = append(refs, linkRef{field + ".doc_id", it.DocID, true})
		case it.To != "":
			refs = append(refs, linkRef{field + ".to", it.To, false})
		}
	}
	for si, section := range cfg.ThemeConfig.Footer.Links {
		for ii, it := range section.Items {
			if it.To != "" {
				refs = append(refs, linkRef{fmt.Sprintf("footer.links[%d].items[%d].to", si, ii), it.To, false})
			}
		}
	}
	return refs
}

// checkLinks resolves internal routes against the project tree. The severity
// of a miss follows on_broken_links.
func checkLinks(cfg *config.Config, root string, r *Report) {
	sev, ok := policySeverity(cfg.OnBrokenLinks)
	if !ok {
		return
	}
	for _, ref := range linkRefs(cfg) {
		var found bool
		if ref.docID {
			found = docExists(root, ref.to)
		} else {
			found = routeExists(root, ref.to)
		}
		if !found {
			r.add(Finding{Check: CheckLinks, Severity: sev, Field: ref.field, Target: ref.to,
				Message: fmt.Sprintf("link target %s does not resolve to a doc, blog or page", ref.to)})
		}
	}
}

func policySeverity(p config.LinkPolicy) (Severity, bool) {
	switch p {
	case config.LinkPolicyThrow:
		return SeverityError, true
	case config.LinkPolicyWarn:
		return SeverityWarning, true
	case config.LinkPolicyLog:
		return SeverityInfo, true
	default:
		return SeverityInfo, false
	}
}

// routeExists maps a client-side route onto the plugin that serves it.
func routeExists(root, to string) bool {
	route := strings.SplitN(strings.SplitN(to, "#", 2)[0], "?", 2)[0]
	route = path.Clean("/" + route)
	switch {
	case route == "/docs" || strings.HasPrefix(route, "/docs/"):
		id := strings.TrimPrefix(strings.TrimPrefix(route, "/docs"), "/")
		if id == "" {
			return isDir(filepath.Join(root, "docs"))
		}
		return docExists(root, id)
	case route == "/blog" || strings.HasPrefix(route, "/blog/"):
		return isDir(filepath.Join(root, "blog"))
	default:
		return pageExists(root, strings.TrimPrefix(route, "/"))
	}
}

func docExists(root, id string) bool {
	base := filepath.Join(root, "docs", filepath.FromSlash(id))
	return anyFile(base, docExtensions) || anyFile(filepath.Join(base, "index"), docExtensions)
}

func pageExists(root, p string) bool {
	base := filepath.Join(root, "src", "pages", filepath.FromSlash(p))
	if p == "" {
		base = filepath.Join(root, "src", "pages", "index")
	}
	return anyFile(base, pageExtensions) || anyFile(filepath.Join(base, "index"), pageExtensions)
}

func anyFile(base string, exts []string) bool {
	for _, ext := range exts {
		if info, err := os.Stat(base + ext); err == nil && !info.IsDir() {
			return true
		}
	}
	return false
}

func isDir(p string) bool {
	info, err := os.Stat(p)
	return err == nil && info.IsDir()
}
