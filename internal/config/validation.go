package config

import (
	"fmt"
	"net/url"
	"slices"
	"strings"

	"golang.org/x/net/idna"

	"github.com/security-e/security-e.github.io/internal/foundation"
)

// ValidateConfig checks the structural invariants of the record and returns a
// validation error listing every failing field. File existence is not checked
// here; see package preflight.
func ValidateConfig(cfg *Config) error {
	return newConfigurationValidator(cfg).validate().ToError()
}

// Validate is ValidateConfig returning the raw result.
func Validate(cfg *Config) foundation.ValidationResult {
	return newConfigurationValidator(cfg).validate()
}

type configurationValidator struct {
	config *Config
}

func newConfigurationValidator(config *Config) *configurationValidator {
	return &configurationValidator{config: config}
}

func (cv *configurationValidator) validate() foundation.ValidationResult {
	return foundation.NewValidatorChain[*configurationValidator](
		(*configurationValidator).validateSite,
		(*configurationValidator).validateLinkPolicies,
		(*configurationValidator).validateI18n,
		(*configurationValidator).validatePresets,
		(*configurationValidator).validateNavbar,
		(*configurationValidator).validateFooter,
		(*configurationValidator).validatePrism,
	).Validate(cv)
}

func (cv *configurationValidator) validateSite() foundation.ValidationResult {
	c := cv.config
	res := foundation.Required("title")(c.Title)
	if err := checkSiteURL(c.URL); err != nil {
		res = res.Add("url", "url", err.Error())
	}
	if !strings.HasPrefix(c.BaseURL, "/") || !strings.HasSuffix(c.BaseURL, "/") {
		res = res.Add("base_url", "base_url", fmt.Sprintf("base_url %q must start and end with '/'", c.BaseURL))
	}
	return res
}

// checkSiteURL requires an absolute http(s) URL with a valid host and no path.
func checkSiteURL(raw string) error {
	if raw == "" {
		return fmt.Errorf("url is required")
	}
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("url %q: %w", raw, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("url %q must use http or https", raw)
	}
	if u.Hostname() == "" {
		return fmt.Errorf("url %q has no host", raw)
	}
	if _, err := idna.Lookup.ToASCII(u.Hostname()); err != nil {
		return fmt.Errorf("url %q has invalid host: %w", raw, err)
	}
	if u.Path != "" && u.Path != "/" {
		return fmt.Errorf("url %q must not contain a path; use base_url", raw)
	}
	return nil
}

func checkEditURL(raw string) error {
	if raw == "" {
		return nil
	}
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("edit_url %q must be an absolute http(s) URL", raw)
	}
	return nil
}

func (cv *configurationValidator) validateLinkPolicies() foundation.ValidationResult {
	return foundation.OneOf("on_broken_links", LinkPolicies)(cv.config.OnBrokenLinks).
		Combine(foundation.OneOf("on_broken_markdown_links", LinkPolicies)(cv.config.OnBrokenMarkdownLinks))
}

func (cv *configurationValidator) validateI18n() foundation.ValidationResult {
	i := cv.config.I18n
	res := foundation.Required("i18n.default_locale")(i.DefaultLocale)
	if len(i.Locales) == 0 {
		res = res.Add("i18n.locales", "required", "at least one locale is required")
	}
	if i.DefaultLocale != "" && !slices.Contains(i.Locales, i.DefaultLocale) {
		res = res.Add("i18n.locales", "missing_default",
			fmt.Sprintf("locales %v must include default locale %q", i.Locales, i.DefaultLocale))
	}
	seen := make(map[string]bool, len(i.Locales))
	for idx, l := range i.Locales {
		field := fmt.Sprintf("i18n.locales[%d]", idx)
		if seen[l] {
			res = res.Add(field, "duplicate", fmt.Sprintf("duplicate locale %q", l))
		}
		seen[l] = true
		if _, err := ParseLocale(l); err != nil {
			res = res.Add(field, "locale", err.Error())
		}
	}
	for name, lc := range i.LocaleConfigs {
		field := "i18n.locale_configs." + name
		if !seen[name] {
			res = res.Add(field, "unknown_locale", fmt.Sprintf("locale %q is not in i18n.locales", name))
		}
		if lc.Direction != "" && lc.Direction != DirectionLTR && lc.Direction != DirectionRTL {
			res = res.Add(field+".direction", "one_of", fmt.Sprintf("direction %q must be ltr or rtl", lc.Direction))
		}
	}
	return res
}

func (cv *configurationValidator) validatePresets() foundation.ValidationResult {
	if len(cv.config.Presets) == 0 {
		return foundation.Invalid(foundation.NewValidationError("presets", "required", "at least one preset is required"))
	}
	res := foundation.Valid()
	for idx, p := range cv.config.Presets {
		field := fmt.Sprintf("presets[%d]", idx)
		res = res.Combine(foundation.OneOf(field+".name", KnownPresets)(p.Name))
		if p.Name != PresetClassic {
			continue
		}
		if p.Docs == nil {
			res = res.Add(field+".docs", "required", "classic preset requires docs options")
		} else {
			res = res.Combine(foundation.Required(field + ".docs.sidebar_path")(p.Docs.SidebarPath))
			if err := checkEditURL(p.Docs.EditURL); err != nil {
				res = res.Add(field+".docs.edit_url", "url", err.Error())
			}
		}
		if p.Blog == nil {
			res = res.Add(field+".blog", "required", "classic preset requires blog options")
		} else if err := checkEditURL(p.Blog.EditURL); err != nil {
			res = res.Add(field+".blog.edit_url", "url", err.Error())
		}
		if p.Theme == nil {
			res = res.Add(field+".theme", "required", "classic preset requires theme options")
		}
	}
	return res
}

func (cv *configurationValidator) validateNavbar() foundation.ValidationResult {
	res := foundation.Valid()
	for idx, it := range cv.config.ThemeConfig.Navbar.Items {
		field := fmt.Sprintf("navbar.items[%d]", idx)
		kind := it.Kind()
		res = res.Combine(foundation.OneOf(field+".type", NavbarItemTypes)(kind))
		res = res.Combine(foundation.OneOf(field+".position", []Position{PositionLeft, PositionRight})(it.Position))
		if !kind.LabelOptional() && it.Label == "" {
			res = res.Add(field+".label", "required", "navbar item label is required")
		}
		res = res.Combine(validateNavbarTarget(field, kind, it))
	}
	return res
}

// validateNavbarTarget checks that the item carries exactly the target its type needs.
func validateNavbarTarget(field string, kind NavbarItemType, it NavbarItem) foundation.ValidationResult {
	res := foundation.Valid()
	switch kind {
	case NavbarItemDocSidebar:
		if it.SidebarID == "" {
			res = res.Add(field+".sidebar_id", "required", "docSidebar item requires sidebar_id")
		}
	case NavbarItemDoc:
		if it.DocID == "" {
			res = res.Add(field+".doc_id", "required", "doc item requires doc_id")
		}
	case NavbarItemDefault:
		switch {
		case it.To == "" && it.Href == "":
			res = res.Add(field+".to", "target", "link item requires to or href")
		case it.To != "" && it.Href != "":
			res = res.Add(field+".to", "target", "link item must not set both to and href")
		}
	case NavbarItemLocaleDropdown, NavbarItemSearch:
		if it.To != "" || it.Href != "" || it.SidebarID != "" || it.DocID != "" {
			res = res.Add(field, "target", fmt.Sprintf("%s item takes no target", kind))
		}
	}
	return res
}

func (cv *configurationValidator) validateFooter() foundation.ValidationResult {
	f := cv.config.ThemeConfig.Footer
	res := foundation.OneOf("footer.style", []FooterStyle{FooterStyleDark, FooterStyleLight})(f.Style)
	for si, section := range f.Links {
		field := fmt.Sprintf("footer.links[%d]", si)
		if len(section.Items) == 0 {
			res = res.Add(field+".items", "required", "footer link section needs at least one item")
		}
		for ii, item := range section.Items {
			itemField := fmt.Sprintf("%s.items[%d]", field, ii)
			if item.Label == "" {
				res = res.Add(itemField+".label", "required", "footer link label is required")
			}
			switch {
			case item.To == "" && item.Href == "":
				res = res.Add(itemField+".to", "target", "footer link requires to or href")
			case item.To != "" && item.Href != "":
				res = res.Add(itemField+".to", "target", "footer link must not set both to and href")
			}
		}
	}
	return res
}

func (cv *configurationValidator) validatePrism() foundation.ValidationResult {
	p := cv.config.ThemeConfig.Prism
	res := foundation.OneOf("prism.theme", PrismThemes)(p.Theme)
	if p.DarkTheme != "" {
		res = res.Combine(foundation.OneOf("prism.dark_theme", PrismThemes)(p.DarkTheme))
	}
	for idx, lang := range p.AdditionalLanguages {
		if strings.TrimSpace(lang) == "" {
			res = res.Add(fmt.Sprintf("prism.additional_languages[%d]", idx), "required", "language name is empty")
		}
	}
	return res
}
