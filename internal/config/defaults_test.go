package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultApplierFillsEmptyFields(t *testing.T) {
	cfg := &Config{}
	require.NoError(t, NewDefaultApplier().ApplyDefaults(cfg))

	assert.Equal(t, "/", cfg.BaseURL)
	assert.Equal(t, LinkPolicyThrow, cfg.OnBrokenLinks)
	assert.Equal(t, LinkPolicyWarn, cfg.OnBrokenMarkdownLinks)
	assert.Equal(t, "en", cfg.I18n.DefaultLocale)
	assert.Equal(t, []string{"en"}, cfg.I18n.Locales)
	assert.Equal(t, FooterStyleDark, cfg.ThemeConfig.Footer.Style)
	assert.Equal(t, "palenight", cfg.ThemeConfig.Prism.Theme)
	assert.Equal(t, "palenight", cfg.ThemeConfig.Prism.DarkTheme)
}

func TestDefaultApplierKeepsExplicitValues(t *testing.T) {
	cfg := validRecord()
	want := validRecord()
	require.NoError(t, NewDefaultApplier().ApplyDefaults(cfg))
	assert.Equal(t, want, cfg)
}

func TestDefaultApplierLocalesFollowDefaultLocale(t *testing.T) {
	cfg := &Config{I18n: I18nConfig{DefaultLocale: "ja"}}
	require.NoError(t, (&I18nDefaultApplier{}).ApplyDefaults(cfg))
	assert.Equal(t, []string{"ja"}, cfg.I18n.Locales)
}

func TestDefaultApplierDarkThemeFollowsTheme(t *testing.T) {
	cfg := &Config{ThemeConfig: ThemeConfig{Prism: Prism{Theme: "github"}}}
	require.NoError(t, (&ThemeDefaultApplier{}).ApplyDefaults(cfg))
	assert.Equal(t, "github", cfg.ThemeConfig.Prism.DarkTheme)
}

func TestDefaultApplierDomains(t *testing.T) {
	domains := make([]string, 0, 3)
	for _, a := range NewDefaultApplier().appliers {
		domains = append(domains, a.Domain())
	}
	assert.Equal(t, []string{"site", "i18n", "theme"}, domains)
}
