package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeConfigEnums(t *testing.T) {
	cfg := &Config{
		OnBrokenLinks:         "THROW",
		OnBrokenMarkdownLinks: "Warn",
		Presets:               []Preset{{Name: "Classic"}},
		ThemeConfig: ThemeConfig{
			Navbar: Navbar{Items: []NavbarItem{
				{Type: "docsidebar", Position: "LEFT", Label: "  Docs "},
				{Type: "LOCALEDROPDOWN", Position: "Right"},
			}},
			Footer: Footer{Style: "Light"},
			Prism:  Prism{Theme: "OCEANICNEXT", DarkTheme: "draCULA"},
		},
	}
	res, err := NormalizeConfig(cfg)
	require.NoError(t, err)

	assert.Equal(t, LinkPolicyThrow, cfg.OnBrokenLinks)
	assert.Equal(t, LinkPolicyWarn, cfg.OnBrokenMarkdownLinks)
	assert.Equal(t, PresetClassic, cfg.Presets[0].Name)
	assert.Equal(t, NavbarItemDocSidebar, cfg.ThemeConfig.Navbar.Items[0].Type)
	assert.Equal(t, PositionLeft, cfg.ThemeConfig.Navbar.Items[0].Position)
	assert.Equal(t, "Docs", cfg.ThemeConfig.Navbar.Items[0].Label)
	assert.Equal(t, NavbarItemLocaleDropdown, cfg.ThemeConfig.Navbar.Items[1].Type)
	assert.Equal(t, PositionRight, cfg.ThemeConfig.Navbar.Items[1].Position)
	assert.Equal(t, FooterStyleLight, cfg.ThemeConfig.Footer.Style)
	assert.Equal(t, "oceanicNext", cfg.ThemeConfig.Prism.Theme)
	assert.Equal(t, "dracula", cfg.ThemeConfig.Prism.DarkTheme)
	assert.Len(t, res.Warnings, 10)
}

func TestNormalizeConfigUnknowns(t *testing.T) {
	cfg := &Config{
		OnBrokenLinks:         "explode",
		OnBrokenMarkdownLinks: "shrug",
		Presets:               []Preset{{Name: "fancy"}},
		ThemeConfig: ThemeConfig{
			Navbar: Navbar{Items: []NavbarItem{{Type: "mega", Position: "center"}}},
			Footer: Footer{Style: "neon"},
			Prism:  Prism{Theme: "solarized"},
		},
	}
	res, err := NormalizeConfig(cfg)
	require.NoError(t, err)

	// Policies and footer style fall back; the rest is left for validation.
	assert.Equal(t, LinkPolicyThrow, cfg.OnBrokenLinks)
	assert.Equal(t, LinkPolicyWarn, cfg.OnBrokenMarkdownLinks)
	assert.Equal(t, FooterStyleDark, cfg.ThemeConfig.Footer.Style)
	assert.Equal(t, PresetName("fancy"), cfg.Presets[0].Name)
	assert.Equal(t, NavbarItemType("mega"), cfg.ThemeConfig.Navbar.Items[0].Type)
	assert.Equal(t, Position("center"), cfg.ThemeConfig.Navbar.Items[0].Position)
	assert.Equal(t, "solarized", cfg.ThemeConfig.Prism.Theme)
	assert.Len(t, res.Warnings, 3)
}

func TestNormalizeConfigLocales(t *testing.T) {
	cfg := &Config{I18n: I18nConfig{
		DefaultLocale: " zh_tw ",
		Locales:       []string{"zh_tw", "en", "zh-tw", " ", "en"},
	}}
	res, err := NormalizeConfig(cfg)
	require.NoError(t, err)

	assert.Equal(t, "zh-tw", cfg.I18n.DefaultLocale)
	assert.Equal(t, []string{"zh-tw", "en"}, cfg.I18n.Locales)
	assert.Contains(t, res.Warnings, "normalized i18n.locales list (5 -> 2 entries)")
}

func TestNormalizeConfigLocaleConfigKeys(t *testing.T) {
	tests := []struct {
		name     string
		configs  map[string]LocaleConfig
		want     map[string]LocaleConfig
		warnings []string
	}{
		{
			name:     "underscore key",
			configs:  map[string]LocaleConfig{"zh_tw": {Label: "中文"}},
			want:     map[string]LocaleConfig{"zh-tw": {Label: "中文"}},
			warnings: []string{"normalized i18n.locale_configs key from 'zh_tw' to 'zh-tw'"},
		},
		{
			name:    "canonical key kept",
			configs: map[string]LocaleConfig{"zh-tw": {Label: "中文"}},
			want:    map[string]LocaleConfig{"zh-tw": {Label: "中文"}},
		},
		{
			name: "collision prefers canonical spelling",
			configs: map[string]LocaleConfig{
				"zh_tw":   {Label: "respelled"},
				" zh-tw ": {Label: "padded"},
				"zh-tw":   {Label: "canonical"},
			},
			want:     map[string]LocaleConfig{"zh-tw": {Label: "canonical"}},
			warnings: []string{
				"dropped i18n.locale_configs. zh-tw : locale 'zh-tw' is already configured",
				"dropped i18n.locale_configs.zh_tw: locale 'zh-tw' is already configured",
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{I18n: I18nConfig{
				DefaultLocale: "zh_tw",
				Locales:       []string{"zh_tw"},
				LocaleConfigs: tt.configs,
			}}
			res, err := NormalizeConfig(cfg)
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg.I18n.LocaleConfigs)
			for _, w := range tt.warnings {
				assert.Contains(t, res.Warnings, w)
			}
			for _, field := range Validate(cfg).Fields() {
				assert.NotContains(t, field, "i18n.", "normalized locales should validate")
			}
		})
	}
}

func TestNormalizeConfigLocaleCaseKept(t *testing.T) {
	cfg := &Config{I18n: I18nConfig{DefaultLocale: "zh-TW", Locales: []string{"zh-TW"}}}
	res, err := NormalizeConfig(cfg)
	require.NoError(t, err)
	assert.Equal(t, "zh-TW", cfg.I18n.DefaultLocale)
	assert.Empty(t, res.Warnings)
}

func TestNormalizeConfigAdditionalLanguages(t *testing.T) {
	cfg := &Config{ThemeConfig: ThemeConfig{Prism: Prism{
		AdditionalLanguages: []string{"Java", "bash", "java", " rust "},
	}}}
	res, err := NormalizeConfig(cfg)
	require.NoError(t, err)
	assert.Equal(t, []string{"bash", "java", "rust"}, cfg.ThemeConfig.Prism.AdditionalLanguages)
	assert.Len(t, res.Warnings, 1)
}

func TestNormalizeConfigDeclaredRecordUnchanged(t *testing.T) {
	cfg := validRecord()
	want := validRecord()
	res, err := NormalizeConfig(cfg)
	require.NoError(t, err)
	assert.Empty(t, res.Warnings)
	assert.Equal(t, want, cfg)
}

func TestNormalizeConfigNil(t *testing.T) {
	_, err := NormalizeConfig(nil)
	assert.Error(t, err)
}
