package config

import (
	"fmt"
	"slices"
	"sort"
	"strings"
)

// NormalizationResult captures adjustments & warnings from normalization pass.
type NormalizationResult struct{ Warnings []string }

func (r *NormalizationResult) warn(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

// NormalizeConfig canonicalizes enumerated and list fields prior to default
// application. It mutates c in place and reports each coercion as a warning.
// Unknown navbar types, positions, presets and prism themes are left untouched
// so validation can reject them with the field path.
func NormalizeConfig(c *Config) (*NormalizationResult, error) {
	if c == nil {
		return nil, fmt.Errorf("config nil")
	}
	res := &NormalizationResult{}
	normalizeSite(c, res)
	normalizeI18n(&c.I18n, res)
	for i := range c.Presets {
		normalizePreset(&c.Presets[i], i, res)
	}
	normalizeNavbar(&c.ThemeConfig.Navbar, res)
	normalizeFooter(&c.ThemeConfig.Footer, res)
	normalizePrism(&c.ThemeConfig.Prism, res)
	return res, nil
}

func normalizeSite(c *Config, res *NormalizationResult) {
	c.Title = strings.TrimSpace(c.Title)
	c.URL = strings.TrimSpace(c.URL)
	c.BaseURL = strings.TrimSpace(c.BaseURL)
	c.OnBrokenLinks = normalizePolicy("on_broken_links", c.OnBrokenLinks, LinkPolicyThrow, res)
	c.OnBrokenMarkdownLinks = normalizePolicy("on_broken_markdown_links", c.OnBrokenMarkdownLinks, LinkPolicyWarn, res)
}

func normalizePolicy(field string, raw, def LinkPolicy, res *NormalizationResult) LinkPolicy {
	if strings.TrimSpace(string(raw)) == "" {
		return ""
	}
	if p := NormalizeLinkPolicy(string(raw)); p != "" {
		if p != raw {
			res.Warnings = append(res.Warnings, warnChanged(field, raw, p))
		}
		return p
	}
	res.Warnings = append(res.Warnings, warnUnknown(field, string(raw), string(def)))
	return def
}

func normalizeI18n(i *I18nConfig, res *NormalizationResult) {
	if d := CanonicalLocale(i.DefaultLocale); d != i.DefaultLocale {
		res.Warnings = append(res.Warnings, warnChanged("i18n.default_locale", i.DefaultLocale, d))
		i.DefaultLocale = d
	}
	normalizeLocaleConfigs(i, res)
	if len(i.Locales) == 0 {
		return
	}
	seen := make(map[string]struct{}, len(i.Locales))
	out := make([]string, 0, len(i.Locales))
	for _, l := range i.Locales {
		cl := CanonicalLocale(l)
		if cl == "" {
			continue
		}
		if _, dup := seen[cl]; dup {
			continue
		}
		seen[cl] = struct{}{}
		out = append(out, cl)
	}
	if !slices.Equal(out, i.Locales) {
		res.warn("normalized i18n.locales list (%d -> %d entries)", len(i.Locales), len(out))
	}
	i.Locales = out
}

// normalizeLocaleConfigs re-keys locale_configs by canonical locale name. When
// two keys name the same locale the canonical spelling wins, else the first key
// in sort order.
func normalizeLocaleConfigs(i *I18nConfig, res *NormalizationResult) {
	if len(i.LocaleConfigs) == 0 {
		return
	}
	keys := make([]string, 0, len(i.LocaleConfigs))
	for k := range i.LocaleConfigs {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(a, b int) bool {
		ca, cb := keys[a] == CanonicalLocale(keys[a]), keys[b] == CanonicalLocale(keys[b])
		if ca != cb {
			return ca
		}
		return keys[a] < keys[b]
	})
	out := make(map[string]LocaleConfig, len(keys))
	for _, k := range keys {
		ck := CanonicalLocale(k)
		if _, dup := out[ck]; dup {
			res.warn("dropped i18n.locale_configs.%s: locale '%s' is already configured", k, ck)
			continue
		}
		if ck != k {
			res.Warnings = append(res.Warnings, warnChanged("i18n.locale_configs key", k, ck))
		}
		out[ck] = i.LocaleConfigs[k]
	}
	i.LocaleConfigs = out
}

func normalizePreset(p *Preset, idx int, res *NormalizationResult) {
	if n := NormalizePresetName(string(p.Name)); n != "" && n != p.Name {
		res.Warnings = append(res.Warnings, warnChanged(fmt.Sprintf("presets[%d].name", idx), p.Name, n))
		p.Name = n
	}
}

func normalizeNavbar(n *Navbar, res *NormalizationResult) {
	for idx := range n.Items {
		it := &n.Items[idx]
		if strings.TrimSpace(string(it.Type)) != "" {
			if t := NormalizeNavbarItemType(string(it.Type)); t != "" && t != it.Type {
				res.Warnings = append(res.Warnings, warnChanged(fmt.Sprintf("navbar.items[%d].type", idx), it.Type, t))
				it.Type = t
			}
		}
		if p := NormalizePosition(string(it.Position)); p != "" && p != it.Position {
			res.Warnings = append(res.Warnings, warnChanged(fmt.Sprintf("navbar.items[%d].position", idx), it.Position, p))
			it.Position = p
		}
		it.Label = strings.TrimSpace(it.Label)
	}
}

func normalizeFooter(f *Footer, res *NormalizationResult) {
	if strings.TrimSpace(string(f.Style)) == "" {
		return
	}
	if s := NormalizeFooterStyle(string(f.Style)); s != "" {
		if s != f.Style {
			res.Warnings = append(res.Warnings, warnChanged("footer.style", f.Style, s))
			f.Style = s
		}
		return
	}
	res.Warnings = append(res.Warnings, warnUnknown("footer.style", string(f.Style), string(FooterStyleDark)))
	f.Style = FooterStyleDark
}

func normalizePrism(p *Prism, res *NormalizationResult) {
	if t := NormalizePrismTheme(p.Theme); t != "" && t != p.Theme {
		res.Warnings = append(res.Warnings, warnChanged("prism.theme", p.Theme, t))
		p.Theme = t
	}
	if t := NormalizePrismTheme(p.DarkTheme); t != "" && t != p.DarkTheme {
		res.Warnings = append(res.Warnings, warnChanged("prism.dark_theme", p.DarkTheme, t))
		p.DarkTheme = t
	}
	p.AdditionalLanguages = normalizeStringSlice("prism.additional_languages", p.AdditionalLanguages, res)
}

// normalizeStringSlice lower-cases, trims, dedupes and sorts a string slice.
func normalizeStringSlice(label string, in []string, res *NormalizationResult) []string {
	if len(in) == 0 {
		return in
	}
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	changed := false
	for _, v := range in {
		t := strings.ToLower(strings.TrimSpace(v))
		if t != v {
			changed = true
		}
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			changed = true
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	if len(out) != len(in) || changed {
		res.warn("normalized %s list (%d -> %d entries)", label, len(in), len(out))
	}
	sort.Strings(out)
	return out
}

func warnChanged(field string, from, to any) string {
	return fmt.Sprintf("normalized %s from '%v' to '%v'", field, from, to)
}

func warnUnknown(field, value, def string) string {
	return fmt.Sprintf("unknown %s '%s', defaulting to %s", field, value, def)
}
