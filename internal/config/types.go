package config

import (
	"github.com/security-e/security-e.github.io/internal/foundation/normalization"
)

// LinkPolicy is the reaction Docusaurus applies to a broken link.
type LinkPolicy string

const (
	LinkPolicyIgnore LinkPolicy = "ignore"
	LinkPolicyLog    LinkPolicy = "log"
	LinkPolicyWarn   LinkPolicy = "warn"
	LinkPolicyThrow  LinkPolicy = "throw"
)

// LinkPolicies lists the accepted policies.
var LinkPolicies = []LinkPolicy{LinkPolicyIgnore, LinkPolicyLog, LinkPolicyWarn, LinkPolicyThrow}

var linkPolicyNormalizer = normalization.NewNormalizer(map[string]LinkPolicy{
	"ignore": LinkPolicyIgnore,
	"log":    LinkPolicyLog,
	"warn":   LinkPolicyWarn,
	"throw":  LinkPolicyThrow,
}, "")

// NormalizeLinkPolicy canonicalizes a policy, returning empty string if unknown.
func NormalizeLinkPolicy(raw string) LinkPolicy { return linkPolicyNormalizer.Normalize(raw) }

// FailsBuild reports whether the policy aborts the build.
func (p LinkPolicy) FailsBuild() bool { return p == LinkPolicyThrow }

// NavbarItemType selects the navbar renderer for an item.
type NavbarItemType string

const (
	NavbarItemDefault        NavbarItemType = "default" // plain link (to/href)
	NavbarItemDoc            NavbarItemType = "doc"
	NavbarItemDocSidebar     NavbarItemType = "docSidebar"
	NavbarItemLocaleDropdown NavbarItemType = "localeDropdown"
	NavbarItemSearch         NavbarItemType = "search"
)

// NavbarItemTypes lists the accepted item types.
var NavbarItemTypes = []NavbarItemType{
	NavbarItemDefault, NavbarItemDoc, NavbarItemDocSidebar, NavbarItemLocaleDropdown, NavbarItemSearch,
}

var navbarItemTypeNormalizer = normalization.NewNormalizer(map[string]NavbarItemType{
	"default":        NavbarItemDefault,
	"doc":            NavbarItemDoc,
	"docSidebar":     NavbarItemDocSidebar,
	"localeDropdown": NavbarItemLocaleDropdown,
	"search":         NavbarItemSearch,
}, "")

// NormalizeNavbarItemType canonicalizes an item type, returning empty string if unknown.
func NormalizeNavbarItemType(raw string) NavbarItemType {
	return navbarItemTypeNormalizer.Normalize(raw)
}

// Kind returns the effective type; an empty type is a plain link.
func (i NavbarItem) Kind() NavbarItemType {
	if i.Type == "" {
		return NavbarItemDefault
	}
	return i.Type
}

// LabelOptional reports whether the renderer supplies the label itself.
func (t NavbarItemType) LabelOptional() bool {
	return t == NavbarItemLocaleDropdown || t == NavbarItemSearch
}

// Position places a navbar item.
type Position string

const (
	PositionLeft  Position = "left"
	PositionRight Position = "right"
)

var positionNormalizer = normalization.NewNormalizer(map[string]Position{
	"left":  PositionLeft,
	"right": PositionRight,
}, "")

// NormalizePosition canonicalizes a position, returning empty string if unknown.
func NormalizePosition(raw string) Position { return positionNormalizer.Normalize(raw) }

// FooterStyle is the footer colour scheme.
type FooterStyle string

const (
	FooterStyleDark  FooterStyle = "dark"
	FooterStyleLight FooterStyle = "light"
)

var footerStyleNormalizer = normalization.NewNormalizer(map[string]FooterStyle{
	"dark":  FooterStyleDark,
	"light": FooterStyleLight,
}, "")

// NormalizeFooterStyle canonicalizes a footer style, returning empty string if unknown.
func NormalizeFooterStyle(raw string) FooterStyle { return footerStyleNormalizer.Normalize(raw) }

// PresetName names a preset known to Docusaurus.
type PresetName string

// PresetClassic is the only preset this site uses.
const PresetClassic PresetName = "classic"

// KnownPresets lists preset names the build recognizes.
var KnownPresets = []PresetName{PresetClassic}

var presetNormalizer = normalization.NewNormalizer(map[string]PresetName{
	"classic": PresetClassic,
}, "")

// NormalizePresetName canonicalizes a preset name, returning empty string if unknown.
func NormalizePresetName(raw string) PresetName { return presetNormalizer.Normalize(raw) }

// PrismThemes lists the theme names exported by prism-react-renderer.
var PrismThemes = []string{
	"dracula", "duotoneDark", "duotoneLight", "github", "gruvboxMaterialDark",
	"gruvboxMaterialLight", "jettwaveDark", "jettwaveLight", "nightOwl", "nightOwlLight",
	"oceanicNext", "okaidia", "oneDark", "oneLight", "palenight", "shadesOfPurple",
	"synthwave84", "ultramin", "vsDark", "vsLight",
}

var prismThemeNormalizer = func() *normalization.Normalizer[string] {
	m := make(map[string]string, len(PrismThemes))
	for _, name := range PrismThemes {
		m[name] = name
	}
	return normalization.NewNormalizer(m, "")
}()

// NormalizePrismTheme maps a case-insensitive theme name onto its exported spelling.
func NormalizePrismTheme(raw string) string { return prismThemeNormalizer.Normalize(raw) }
