// Package config declares the documentation site's configuration record and
// the passes (overrides, normalization, defaults, validation) that turn it into
// the value handed to the Docusaurus build.
//
// The record is evaluated once per process. Nothing mutates it after Load returns.
package config

// Config is the site configuration consumed by Docusaurus. YAML tags describe the
// overrides file schema; the Docusaurus field names are produced by the renderer.
type Config struct {
	Title            string `yaml:"title"`
	Tagline          string `yaml:"tagline"`
	Favicon          string `yaml:"favicon,omitempty"`
	URL              string `yaml:"url"`      // canonical production URL, no path
	BaseURL          string `yaml:"base_url"` // pathname the site is served under
	OrganizationName string `yaml:"organization_name,omitempty"`
	ProjectName      string `yaml:"project_name,omitempty"`

	OnBrokenLinks         LinkPolicy `yaml:"on_broken_links"`
	OnBrokenMarkdownLinks LinkPolicy `yaml:"on_broken_markdown_links"`

	I18n        I18nConfig  `yaml:"i18n"`
	Presets     []Preset    `yaml:"presets"`
	ThemeConfig ThemeConfig `yaml:"theme_config"`
}

// I18nConfig controls locales. Locale names double as i18n directory names.
type I18nConfig struct {
	DefaultLocale string                  `yaml:"default_locale"`
	Locales       []string                `yaml:"locales"`
	LocaleConfigs map[string]LocaleConfig `yaml:"locale_configs,omitempty"`
}

// LocaleConfig carries per-locale presentation metadata.
type LocaleConfig struct {
	Label     string `yaml:"label,omitempty"`
	Direction string `yaml:"direction,omitempty"` // ltr|rtl
	HTMLLang  string `yaml:"html_lang,omitempty"`
}

// Preset is a named bundle of build behaviours expanded by Docusaurus.
// Nil option blocks are omitted from the rendered tuple.
type Preset struct {
	Name  PresetName    `yaml:"name"`
	Docs  *DocsOptions  `yaml:"docs,omitempty"`
	Blog  *BlogOptions  `yaml:"blog,omitempty"`
	Theme *ThemeOptions `yaml:"theme,omitempty"`
}

// DocsOptions configures the docs plugin of the classic preset.
type DocsOptions struct {
	SidebarPath          string `yaml:"sidebar_path"`
	ShowLastUpdateAuthor bool   `yaml:"show_last_update_author"`
	ShowLastUpdateTime   bool   `yaml:"show_last_update_time"`
	EditURL              string `yaml:"edit_url,omitempty"` // empty removes "edit this page" links
}

// BlogOptions configures the blog plugin of the classic preset.
type BlogOptions struct {
	ShowReadingTime  bool   `yaml:"show_reading_time"`
	BlogSidebarTitle string `yaml:"blog_sidebar_title,omitempty"`
	EditURL          string `yaml:"edit_url,omitempty"`
}

// ThemeOptions configures the classic theme.
type ThemeOptions struct {
	CustomCSS string `yaml:"custom_css"`
}

// ThemeConfig holds the theme-level settings: social card, navbar, footer, prism.
type ThemeConfig struct {
	Image  string `yaml:"image,omitempty"` // social card, relative to static/
	Navbar Navbar `yaml:"navbar"`
	Footer Footer `yaml:"footer"`
	Prism  Prism  `yaml:"prism"`
}

// Navbar is the top navigation bar.
type Navbar struct {
	Title string       `yaml:"title"`
	Logo  *Logo        `yaml:"logo,omitempty"`
	Items []NavbarItem `yaml:"items"`
}

// Logo is an image shown next to the navbar title.
type Logo struct {
	Alt string `yaml:"alt"`
	Src string `yaml:"src"` // relative to static/
}

// NavbarItem is one entry of the navbar. Type selects the renderer and which
// target field is meaningful.
type NavbarItem struct {
	Type      NavbarItemType `yaml:"type,omitempty"`
	Label     string         `yaml:"label,omitempty"`
	Position  Position       `yaml:"position"`
	SidebarID string         `yaml:"sidebar_id,omitempty"` // type docSidebar
	DocID     string         `yaml:"doc_id,omitempty"`     // type doc
	To        string         `yaml:"to,omitempty"`         // client-side route
	Href      string         `yaml:"href,omitempty"`       // external URL
}

// Footer is the page footer.
type Footer struct {
	Style     FooterStyle         `yaml:"style"`
	Links     []FooterLinkSection `yaml:"links"`
	Copyright string              `yaml:"copyright"`
}

// FooterLinkSection is a titled column of footer links.
type FooterLinkSection struct {
	Title string           `yaml:"title"`
	Items []FooterLinkItem `yaml:"items"`
}

// FooterLinkItem is a footer link; exactly one of To and Href is set.
type FooterLinkItem struct {
	Label string `yaml:"label"`
	To    string `yaml:"to,omitempty"`
	Href  string `yaml:"href,omitempty"`
}

// Target returns the link destination regardless of kind.
func (i FooterLinkItem) Target() string {
	if i.To != "" {
		return i.To
	}
	return i.Href
}

// Prism configures syntax highlighting. Theme names refer to prism-react-renderer themes.
type Prism struct {
	Theme               string   `yaml:"theme"`
	DarkTheme           string   `yaml:"dark_theme,omitempty"`
	AdditionalLanguages []string `yaml:"additional_languages,omitempty"`
}

// Preset returns the first preset with the given name.
func (c *Config) Preset(name PresetName) (*Preset, bool) {
	for i := range c.Presets {
		if c.Presets[i].Name == name {
			return &c.Presets[i], true
		}
	}
	return nil, false
}
