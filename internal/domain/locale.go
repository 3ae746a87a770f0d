package domain

import (
	"time"

	"github.com/go-playground/locales"
	"github.com/go-playground/locales/de_DE"
	"github.com/go-playground/locales/en_GB"
	"github.com/go-playground/locales/en_US"
	"golang.org/x/text/language"
)

// Locale controls how dates and times are labelled for display. Day labels
// come from the CLDR long date format of the matching translator.
type Locale struct {
	Tag        language.Tag
	translator locales.Translator
	clock12    bool
}

var (
	LocaleEnUS = Locale{Tag: language.AmericanEnglish, translator: en_US.New(), clock12: true}
	LocaleEnGB = Locale{Tag: language.BritishEnglish, translator: en_GB.New()}
	LocaleDeDE = Locale{Tag: language.MustParse("de-DE"), translator: de_DE.New()}
)

// supportedLocales is ordered by preference; the first entry is the default.
var supportedLocales = []Locale{LocaleEnUS, LocaleEnGB, LocaleDeDE}

var localeMatcher = language.NewMatcher([]language.Tag{
	LocaleEnUS.Tag,
	LocaleEnGB.Tag,
	LocaleDeDE.Tag,
})

// ParseLocale resolves a BCP 47 tag ("en", "de-AT", "en_GB") to the closest
// supported locale. Unknown or empty input yields LocaleEnUS.
func ParseLocale(tag string) Locale {
	_, idx := language.MatchStrings(localeMatcher, tag)
	if idx < 0 || idx >= len(supportedLocales) {
		return LocaleEnUS
	}
	return supportedLocales[idx]
}

func (l Locale) String() string {
	return l.Tag.String()
}

// FormatDate renders the calendar day of t, ignoring the time of day:
// "January 5, 2024", "5 January 2024" or "5. Januar 2024".
func (l Locale) FormatDate(t time.Time) string {
	if l.translator == nil {
		return LocaleEnUS.FormatDate(t)
	}
	return l.translator.FmtDateLong(t)
}

// FormatTime renders hour and minute, "02:30 PM" on a 12-hour clock and
// "14:30" otherwise.
func (l Locale) FormatTime(t time.Time) string {
	if l.clock12 {
		return t.Format("03:04 PM")
	}
	return t.Format("15:04")
}
