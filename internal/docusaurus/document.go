package docusaurus

import (
	"github.com/security-e/security-e.github.io/internal/config"
)

// TypeScript types the preset options and theme config are checked against.
const (
	presetOptionsType = "Preset.Options"
	themeConfigType   = "Preset.ThemeConfig"
)

// Document maps cfg onto the Docusaurus configuration object. Keys follow the
// order Docusaurus documents them in; optional empty fields are left out.
func Document(cfg *config.Config) Object {
	doc := Object{}.
		Set("title", cfg.Title).
		Set("tagline", cfg.Tagline).
		SetIf(cfg.Favicon != "", "favicon", cfg.Favicon).
		Set("url", cfg.URL).
		Set("baseUrl", cfg.BaseURL).
		SetIf(cfg.OrganizationName != "", "organizationName", cfg.OrganizationName).
		SetIf(cfg.ProjectName != "", "projectName", cfg.ProjectName).
		Set("onBrokenLinks", string(cfg.OnBrokenLinks)).
		Set("onBrokenMarkdownLinks", string(cfg.OnBrokenMarkdownLinks)).
		Set("i18n", i18nObject(cfg.I18n))

	presets := make([]any, 0, len(cfg.Presets))
	for _, p := range cfg.Presets {
		presets = append(presets, presetTuple(p))
	}
	doc = doc.Set("presets", presets)

	return doc.Set("themeConfig", Satisfies{Value: themeConfigObject(cfg.ThemeConfig), Type: themeConfigType})
}

func i18nObject(i config.I18nConfig) Object {
	locales := make([]any, len(i.Locales))
	for idx, l := range i.Locales {
		locales[idx] = l
	}
	obj := Object{}.
		Set("defaultLocale", i.DefaultLocale).
		Set("locales", locales)
	if len(i.LocaleConfigs) == 0 {
		return obj
	}
	// Iterate locales rather than the map so output order is stable.
	configs := Object{}
	for _, l := range i.Locales {
		lc, ok := i.LocaleConfigs[l]
		if !ok {
			continue
		}
		configs = configs.Set(l, Object{}.
			SetIf(lc.Label != "", "label", lc.Label).
			SetIf(lc.Direction != "", "direction", lc.Direction).
			SetIf(lc.HTMLLang != "", "htmlLang", lc.HTMLLang))
	}
	return obj.Set("localeConfigs", configs)
}

// presetTuple renders a preset as the [name, options] pair Docusaurus expects.
func presetTuple(p config.Preset) []any {
	opts := Object{}
	if d := p.Docs; d != nil {
		opts = opts.Set("docs", Object{}.
			Set("sidebarPath", d.SidebarPath).
			Set("showLastUpdateAuthor", d.ShowLastUpdateAuthor).
			Set("showLastUpdateTime", d.ShowLastUpdateTime).
			SetIf(d.EditURL != "", "editUrl", d.EditURL))
	}
	if b := p.Blog; b != nil {
		opts = opts.Set("blog", Object{}.
			Set("showReadingTime", b.ShowReadingTime).
			SetIf(b.BlogSidebarTitle != "", "blogSidebarTitle", b.BlogSidebarTitle).
			SetIf(b.EditURL != "", "editUrl", b.EditURL))
	}
	if th := p.Theme; th != nil {
		opts = opts.Set("theme", Object{}.Set("customCss", th.CustomCSS))
	}
	return []any{string(p.Name), Satisfies{Value: opts, Type: presetOptionsType}}
}

func themeConfigObject(tc config.ThemeConfig) Object {
	return Object{}.
		SetIf(tc.Image != "", "image", tc.Image).
		Set("navbar", navbarObject(tc.Navbar)).
		Set("footer", footerObject(tc.Footer)).
		Set("prism", prismObject(tc.Prism))
}

func navbarObject(n config.Navbar) Object {
	obj := Object{}.Set("title", n.Title)
	if n.Logo != nil {
		obj = obj.Set("logo", Object{}.Set("alt", n.Logo.Alt).Set("src", n.Logo.Src))
	}
	items := make([]any, 0, len(n.Items))
	for _, it := range n.Items {
		items = append(items, Object{}.
			SetIf(it.Type != "", "type", string(it.Type)).
			SetIf(it.SidebarID != "", "sidebarId", it.SidebarID).
			SetIf(it.DocID != "", "docId", it.DocID).
			SetIf(it.To != "", "to", it.To).
			SetIf(it.Href != "", "href", it.Href).
			SetIf(it.Label != "", "label", it.Label).
			Set("position", string(it.Position)))
	}
	return obj.Set("items", items)
}

func footerObject(f config.Footer) Object {
	links := make([]any, 0, len(f.Links))
	for _, section := range f.Links {
		items := make([]any, 0, len(section.Items))
		for _, it := range section.Items {
			items = append(items, Object{}.
				Set("label", it.Label).
				SetIf(it.To != "", "to", it.To).
				SetIf(it.Href != "", "href", it.Href))
		}
		links = append(links, Object{}.
			SetIf(section.Title != "", "title", section.Title).
			Set("items", items))
	}
	return Object{}.
		Set("style", string(f.Style)).
		Set("links", links).
		Set("copyright", f.Copyright)
}

func prismObject(p config.Prism) Object {
	obj := Object{}.
		Set("theme", ThemeRef(p.Theme)).
		SetIf(p.DarkTheme != "", "darkTheme", ThemeRef(p.DarkTheme))
	if len(p.AdditionalLanguages) > 0 {
		langs := make([]any, len(p.AdditionalLanguages))
		for i, l := range p.AdditionalLanguages {
			langs[i] = l
		}
		obj = obj.Set("additionalLanguages", langs)
	}
	return obj
}
