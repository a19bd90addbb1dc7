// Package translate converts message text through an external
// translation provider.
package translate

import (
	"unicode"

	"golang.org/x/text/language"
)

// Short UI codes offered in the translate submenu.
const (
	CodeHindi   = "hi"
	CodeTamil   = "ta"
	CodeTelugu  = "te"
	CodeEnglish = "en"
)

// Provider locale tags for the supported languages.
var (
	localeHindi   = language.MustParse("hi-IN")
	localeTamil   = language.MustParse("ta-IN")
	localeTelugu  = language.MustParse("te-IN")
	localeEnglish = language.MustParse("en-IN")
)

// uiToLocale maps short UI codes to provider locale tags.
var uiToLocale = map[string]language.Tag{
	CodeHindi:   localeHindi,
	CodeTamil:   localeTamil,
	CodeTelugu:  localeTelugu,
	CodeEnglish: localeEnglish,
}

// SupportedCodes returns the UI codes in submenu display order.
func SupportedCodes() []string {
	return []string{CodeHindi, CodeTamil, CodeTelugu, CodeEnglish}
}

// IsSupported reports whether code maps to a provider locale.
func IsSupported(code string) bool {
	_, ok := uiToLocale[code]
	return ok
}

// ProviderLocale resolves a UI code to its provider locale tag.
func ProviderLocale(code string) (language.Tag, bool) {
	tag, ok := uiToLocale[code]
	return tag, ok
}

// DisplayName returns the submenu label for a UI code.
func DisplayName(code string) string {
	switch code {
	case CodeHindi:
		return "Hindi"
	case CodeTamil:
		return "Tamil"
	case CodeTelugu:
		return "Telugu"
	case CodeEnglish:
		return "English"
	}
	return code
}

// scriptProbe pairs a Unicode script with the locale it implies.
type scriptProbe struct {
	table *unicode.RangeTable
	tag   language.Tag
}

// Probed in priority order: a single Devanagari rune marks the whole
// text Hindi even if Tamil runes follow.
var scriptProbes = []scriptProbe{
	{unicode.Devanagari, localeHindi},
	{unicode.Tamil, localeTamil},
	{unicode.Telugu, localeTelugu},
}

// DetectLocale guesses the source locale of text by script. Text with
// no recognized Indic script counts as English.
func DetectLocale(text string) language.Tag {
	for _, probe := range scriptProbes {
		for _, r := range text {
			if unicode.Is(probe.table, r) {
				return probe.tag
			}
		}
	}
	return localeEnglish
}
