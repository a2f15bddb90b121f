package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	siteTitle = "Security E"
	orgName   = "security-e"

	// editURL points "edit this page" links at the upstream template sources.
	editURL = "https://github.com/facebook/docusaurus/tree/main/packages/create-docusaurus/templates/shared/"
)

// YearPlaceholder is replaced with the evaluation year in copyright strings.
const YearPlaceholder = "{year}"

// CopyrightNotice renders the footer copyright line for holder and year.
func CopyrightNotice(holder string, year int) string {
	return fmt.Sprintf("Copyright © %d %s. Built with Docusaurus.", year, holder)
}

// ExpandYear substitutes YearPlaceholder in s.
func ExpandYear(s string, year int) string {
	return strings.ReplaceAll(s, YearPlaceholder, strconv.Itoa(year))
}

// SecurityE returns the declared site record. now only feeds the copyright year.
func SecurityE(now time.Time) *Config {
	return &Config{
		Title:   siteTitle,
		Tagline: "",
		Favicon: "img/favicon.ico",

		URL:     "https://security-e.github.io",
		BaseURL: "/",

		// GitHub Pages deployment.
		OrganizationName: orgName,
		ProjectName:      "security-e.github.io",

		OnBrokenLinks:         LinkPolicyThrow,
		OnBrokenMarkdownLinks: LinkPolicyWarn,

		I18n: I18nConfig{
			DefaultLocale: "zh-tw",
			Locales:       []string{"zh-tw"},
		},

		Presets: []Preset{{
			Name: PresetClassic,
			Docs: &DocsOptions{
				SidebarPath:          "./sidebars.ts",
				ShowLastUpdateAuthor: true,
				ShowLastUpdateTime:   true,
				EditURL:              editURL,
			},
			Blog: &BlogOptions{
				ShowReadingTime:  true,
				BlogSidebarTitle: "最近貼文",
				EditURL:          editURL,
			},
			Theme: &ThemeOptions{
				CustomCSS: "./src/css/custom.css",
			},
		}},

		ThemeConfig: ThemeConfig{
			Image: "img/docusaurus-social-card.jpg",
			Navbar: Navbar{
				Title: siteTitle,
				Logo:  &Logo{Alt: "", Src: "img/logo.svg"},
				Items: []NavbarItem{
					{Type: NavbarItemDocSidebar, SidebarID: "docsSidebar", Position: PositionLeft, Label: "文件"},
					{To: "/blog", Label: "部落格", Position: PositionLeft},
					{Type: NavbarItemLocaleDropdown, Position: PositionRight},
					{Href: "https://github.com/orgs/" + orgName, Label: "GitHub", Position: PositionRight},
				},
			},
			Footer: Footer{
				Style: FooterStyleDark,
				Links: []FooterLinkSection{
					{
						Title: "目錄",
						Items: []FooterLinkItem{{Label: "文件", To: "/docs/intro"}},
					},
					{
						Title: "更多",
						Items: []FooterLinkItem{
							{Label: "部落格", To: "/blog"},
							{Label: "GitHub", Href: "https://github.com/" + orgName},
						},
					},
				},
				Copyright: CopyrightNotice(siteTitle, now.Year()),
			},
			Prism: Prism{
				Theme:               "oceanicNext",
				DarkTheme:           "oceanicNext",
				AdditionalLanguages: []string{"java"},
			},
		},
	}
}
