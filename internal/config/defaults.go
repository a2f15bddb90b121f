package config

import "fmt"

// DefaultApplier applies defaults for a specific configuration domain.
type DefaultApplier interface {
	ApplyDefaults(cfg *Config) error
	Domain() string
}

// SiteDefaultApplier handles identity and link policy defaults.
type SiteDefaultApplier struct{}

func (s *SiteDefaultApplier) Domain() string { return "site" }

func (s *SiteDefaultApplier) ApplyDefaults(cfg *Config) error {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "/"
	}
	if cfg.OnBrokenLinks == "" {
		cfg.OnBrokenLinks = LinkPolicyThrow
	}
	if cfg.OnBrokenMarkdownLinks == "" {
		cfg.OnBrokenMarkdownLinks = LinkPolicyWarn
	}
	return nil
}

// I18nDefaultApplier handles locale defaults.
type I18nDefaultApplier struct{}

func (i *I18nDefaultApplier) Domain() string { return "i18n" }

func (i *I18nDefaultApplier) ApplyDefaults(cfg *Config) error {
	if cfg.I18n.DefaultLocale == "" {
		cfg.I18n.DefaultLocale = "en"
	}
	if len(cfg.I18n.Locales) == 0 {
		cfg.I18n.Locales = []string{cfg.I18n.DefaultLocale}
	}
	return nil
}

// ThemeDefaultApplier handles footer and prism defaults.
type ThemeDefaultApplier struct{}

func (t *ThemeDefaultApplier) Domain() string { return "theme" }

func (t *ThemeDefaultApplier) ApplyDefaults(cfg *Config) error {
	tc := &cfg.ThemeConfig
	if tc.Footer.Style == "" {
		tc.Footer.Style = FooterStyleDark
	}
	if tc.Prism.Theme == "" {
		tc.Prism.Theme = "palenight"
	}
	if tc.Prism.DarkTheme == "" {
		tc.Prism.DarkTheme = tc.Prism.Theme
	}
	return nil
}

// CompositeDefaultApplier runs domain appliers in order.
type CompositeDefaultApplier struct {
	appliers []DefaultApplier
}

// NewDefaultApplier returns the applier used by Load.
func NewDefaultApplier() *CompositeDefaultApplier {
	return &CompositeDefaultApplier{appliers: []DefaultApplier{
		&SiteDefaultApplier{},
		&I18nDefaultApplier{},
		&ThemeDefaultApplier{},
	}}
}

func (c *CompositeDefaultApplier) ApplyDefaults(cfg *Config) error {
	for _, a := range c.appliers {
		if err := a.ApplyDefaults(cfg); err != nil {
			return fmt.Errorf("apply %s defaults: %w", a.Domain(), err)
		}
	}
	return nil
}
