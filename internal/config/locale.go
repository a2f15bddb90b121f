package config

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

const (
	DirectionLTR = "ltr"
	DirectionRTL = "rtl"
)

// rtlScripts are the ISO 15924 scripts written right to left.
var rtlScripts = map[string]bool{
	"Arab": true, "Hebr": true, "Thaa": true, "Syrc": true,
	"Nkoo": true, "Adlm": true, "Rohg": true, "Mand": true,
}

// CanonicalLocale trims a locale name and uses '-' as the subtag separator.
// Case is preserved: locale names are also directory names under i18n/.
func CanonicalLocale(raw string) string {
	return strings.ReplaceAll(strings.TrimSpace(raw), "_", "-")
}

// ParseLocale parses a locale name as a BCP 47 tag.
func ParseLocale(raw string) (language.Tag, error) {
	tag, err := language.Parse(CanonicalLocale(raw))
	if err != nil {
		return language.Und, fmt.Errorf("invalid locale %q: %w", raw, err)
	}
	return tag, nil
}

// DescribeLocale derives label, direction and html lang for a locale.
func DescribeLocale(raw string) (LocaleConfig, error) {
	tag, err := ParseLocale(raw)
	if err != nil {
		return LocaleConfig{}, err
	}
	dir := DirectionLTR
	if script, _ := tag.Script(); rtlScripts[script.String()] {
		dir = DirectionRTL
	}
	label := display.Self.Name(tag)
	if label == "" {
		label = tag.String()
	}
	return LocaleConfig{Label: label, Direction: dir, HTMLLang: tag.String()}, nil
}

// DescribeLocales fills a LocaleConfig for each configured locale.
func DescribeLocales(locales []string) (map[string]LocaleConfig, error) {
	out := make(map[string]LocaleConfig, len(locales))
	for _, l := range locales {
		lc, err := DescribeLocale(l)
		if err != nil {
			return nil, err
		}
		out[l] = lc
	}
	return out, nil
}
