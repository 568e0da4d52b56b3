// Package i18n resolves the site locale (English or Dutch) for a request.
package i18n

import (
	"golang.org/x/text/language"
)

const (
	EN = "en"
	NL = "nl"
)

var matcher = language.NewMatcher([]language.Tag{language.English, language.Dutch})

// Normalize maps any of the given locale strings or Accept-Language values to
// "en" or "nl". The first argument that names a supported language wins;
// anything unsupported falls back to English.
func Normalize(candidates ...string) string {
	for _, candidate := range candidates {
		if candidate == "" {
			continue
		}
		tag, _, confidence := matcher.Match(parse(candidate)...)
		if confidence == language.No {
			continue
		}
		base, _ := tag.Base()
		if base.String() == NL {
			return NL
		}
		return EN
	}
	return EN
}

// Pick returns the Dutch text for "nl" and the English text otherwise.
func Pick(locale, en, nl string) string {
	if locale == NL {
		return nl
	}
	return en
}

func parse(value string) []language.Tag {
	tags, _, err := language.ParseAcceptLanguage(value)
	if err != nil || len(tags) == 0 {
		return []language.Tag{language.Und}
	}
	return tags
}
