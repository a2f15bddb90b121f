package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/security-e/security-e.github.io/internal/foundation/errors"
)

func validRecord() *Config {
	return SecurityE(time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC))
}

func TestValidateConfigFailures(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"empty title", func(c *Config) { c.Title = " " }, "title"},
		{"missing url", func(c *Config) { c.URL = "" }, "url"},
		{"url with path", func(c *Config) { c.URL = "https://security-e.github.io/docs" }, "url"},
		{"url without scheme", func(c *Config) { c.URL = "security-e.github.io" }, "url"},
		{"ftp url", func(c *Config) { c.URL = "ftp://security-e.github.io" }, "url"},
		{"base url without trailing slash", func(c *Config) { c.BaseURL = "/site" }, "base_url"},
		{"base url without leading slash", func(c *Config) { c.BaseURL = "site/" }, "base_url"},
		{"unknown link policy", func(c *Config) { c.OnBrokenLinks = "explode" }, "on_broken_links"},
		{"unknown markdown link policy", func(c *Config) { c.OnBrokenMarkdownLinks = "" }, "on_broken_markdown_links"},
		{"default locale not listed", func(c *Config) { c.I18n.Locales = []string{"en"} }, "i18n.locales"},
		{"duplicate locale", func(c *Config) { c.I18n.Locales = []string{"zh-tw", "zh-tw"} }, "i18n.locales[1]"},
		{"malformed locale", func(c *Config) {
			c.I18n.Locales = append(c.I18n.Locales, "not a locale")
		}, "i18n.locales[1]"},
		{"locale config for unlisted locale", func(c *Config) {
			c.I18n.LocaleConfigs = map[string]LocaleConfig{"fr": {Label: "Français"}}
		}, "i18n.locale_configs.fr"},
		{"bad locale direction", func(c *Config) {
			c.I18n.LocaleConfigs = map[string]LocaleConfig{"zh-tw": {Direction: "up"}}
		}, "i18n.locale_configs.zh-tw.direction"},
		{"no presets", func(c *Config) { c.Presets = nil }, "presets"},
		{"unknown preset", func(c *Config) { c.Presets[0].Name = "fancy" }, "presets[0].name"},
		{"classic without docs", func(c *Config) { c.Presets[0].Docs = nil }, "presets[0].docs"},
		{"classic without blog", func(c *Config) { c.Presets[0].Blog = nil }, "presets[0].blog"},
		{"classic without theme", func(c *Config) { c.Presets[0].Theme = nil }, "presets[0].theme"},
		{"docs without sidebar", func(c *Config) { c.Presets[0].Docs.SidebarPath = "" }, "presets[0].docs.sidebar_path"},
		{"relative edit url", func(c *Config) { c.Presets[0].Blog.EditURL = "/edit" }, "presets[0].blog.edit_url"},
		{"navbar item without label", func(c *Config) { c.ThemeConfig.Navbar.Items[1].Label = "" }, "navbar.items[1].label"},
		{"navbar item bad position", func(c *Config) { c.ThemeConfig.Navbar.Items[0].Position = "center" }, "navbar.items[0].position"},
		{"navbar unknown type", func(c *Config) { c.ThemeConfig.Navbar.Items[0].Type = "mega" }, "navbar.items[0].type"},
		{"docSidebar without sidebar id", func(c *Config) { c.ThemeConfig.Navbar.Items[0].SidebarID = "" }, "navbar.items[0].sidebar_id"},
		{"link with both targets", func(c *Config) { c.ThemeConfig.Navbar.Items[1].Href = "https://x.example" }, "navbar.items[1].to"},
		{"link without target", func(c *Config) { c.ThemeConfig.Navbar.Items[3].Href = "" }, "navbar.items[3].to"},
		{"locale dropdown with target", func(c *Config) { c.ThemeConfig.Navbar.Items[2].To = "/x" }, "navbar.items[2]"},
		{"doc item without doc id", func(c *Config) {
			c.ThemeConfig.Navbar.Items = append(c.ThemeConfig.Navbar.Items,
				NavbarItem{Type: NavbarItemDoc, Label: "Intro", Position: PositionLeft})
		}, "navbar.items[4].doc_id"},
		{"bad footer style", func(c *Config) { c.ThemeConfig.Footer.Style = "neon" }, "footer.style"},
		{"empty footer section", func(c *Config) { c.ThemeConfig.Footer.Links[0].Items = nil }, "footer.links[0].items"},
		{"footer item without label", func(c *Config) { c.ThemeConfig.Footer.Links[1].Items[0].Label = "" }, "footer.links[1].items[0].label"},
		{"footer item without target", func(c *Config) { c.ThemeConfig.Footer.Links[1].Items[1].Href = "" }, "footer.links[1].items[1].to"},
		{"unknown prism theme", func(c *Config) { c.ThemeConfig.Prism.Theme = "solarized" }, "prism.theme"},
		{"unknown prism dark theme", func(c *Config) { c.ThemeConfig.Prism.DarkTheme = "solarized" }, "prism.dark_theme"},
		{"blank prism language", func(c *Config) { c.ThemeConfig.Prism.AdditionalLanguages = []string{" "} }, "prism.additional_languages[0]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validRecord()
			tt.mutate(cfg)
			res := Validate(cfg)
			require.False(t, res.Valid)
			assert.Contains(t, res.Fields(), tt.field)
		})
	}
}

func TestValidateConfigAcceptsVariants(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"url with trailing slash", func(c *Config) { c.URL = "https://security-e.github.io/" }},
		{"nested base url", func(c *Config) { c.BaseURL = "/docs/site/" }},
		{"unicode host", func(c *Config) { c.URL = "https://bücher.example" }},
		{"second locale", func(c *Config) { c.I18n.Locales = []string{"zh-tw", "en"} }},
		{"empty edit url", func(c *Config) { c.Presets[0].Docs.EditURL = "" }},
		{"search item without label", func(c *Config) {
			c.ThemeConfig.Navbar.Items = append(c.ThemeConfig.Navbar.Items,
				NavbarItem{Type: NavbarItemSearch, Position: PositionRight})
		}},
		{"light footer without links", func(c *Config) {
			c.ThemeConfig.Footer.Style = FooterStyleLight
			c.ThemeConfig.Footer.Links = nil
		}},
		{"no dark theme", func(c *Config) { c.ThemeConfig.Prism.DarkTheme = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validRecord()
			tt.mutate(cfg)
			assert.NoError(t, ValidateConfig(cfg))
		})
	}
}

func TestValidateConfigErrorIsClassified(t *testing.T) {
	cfg := validRecord()
	cfg.Title = ""
	cfg.BaseURL = "x"

	err := ValidateConfig(cfg)
	require.Error(t, err)
	assert.True(t, errors.HasCategory(err, errors.CategoryValidation))
	assert.Contains(t, err.Error(), "field 'title'")
	assert.Contains(t, err.Error(), "field 'base_url'")

	ce, ok := errors.AsClassified(err)
	require.True(t, ok)
	field, _ := ce.Context().GetString("field")
	assert.Equal(t, "title", field)
}
