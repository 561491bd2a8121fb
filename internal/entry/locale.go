package entry

import (
	"os"
	"strings"
)

// preferredLocales derives the locale preference list once per parse from
// LC_ALL, LC_MESSAGES, LANG (first set wins), per spec.md §4.1
// "Localization". The raw value has any ".<encoding>" or "@<modifier>"
// suffix stripped, giving a primary locale (e.g. "fr_FR"). The preference
// list is: primary locale, then its language part before '_', then its
// language part before '-', deduplicated, with the primary always first.
func preferredLocales() []string {
	raw := firstNonEmpty(os.Getenv("LC_ALL"), os.Getenv("LC_MESSAGES"), os.Getenv("LANG"))
	loc := cleanLocale(raw)
	if loc == "" {
		return nil
	}

	prefs := []string{loc}
	if lang, _, ok := cutFirst(loc, '_'); ok && lang != "" {
		prefs = appendUnique(prefs, lang)
	}
	if lang, _, ok := cutFirst(loc, '-'); ok && lang != "" {
		prefs = appendUnique(prefs, lang)
	}
	return prefs
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

// cleanLocale drops any ".<encoding>" or "@<modifier>" suffix:
// "fr_FR.UTF-8@euro" => "fr_FR".
func cleanLocale(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	if i := strings.IndexByte(s, '.'); i >= 0 {
		s = s[:i]
	}
	if i := strings.IndexByte(s, '@'); i >= 0 {
		s = s[:i]
	}
	return s
}

func cutFirst(s string, sep byte) (before, after string, found bool) {
	i := strings.IndexByte(s, sep)
	if i < 0 {
		return s, "", false
	}
	return s[:i], s[i+1:], true
}

func appendUnique(list []string, v string) []string {
	for _, x := range list {
		if x == v {
			return list
		}
	}
	return append(list, v)
}

// localizedField tracks the default (non-localized) value and the
// best-ranked localized value for one key across a parse.
type localizedField struct {
	prefs    []string
	hasDef   bool
	def      string
	bestRank int
	hasBest  bool
	best     string
}

func newLocalizedField(prefs []string) localizedField {
	return localizedField{prefs: prefs, bestRank: len(prefs)}
}

// set records value for an occurrence with the given locale suffix (empty
// string means the unsuffixed, default key).
func (f *localizedField) set(locale, value string) {
	if locale == "" {
		f.hasDef = true
		f.def = value
		return
	}
	for i, p := range f.prefs {
		if p == locale {
			if !f.hasBest || i < f.bestRank {
				f.bestRank = i
				f.best = value
				f.hasBest = true
			}
			break
		}
	}
}

// resolve returns the best localized value if any, else the default, else
// ("", false).
func (f *localizedField) resolve() (string, bool) {
	if f.hasBest {
		return f.best, true
	}
	if f.hasDef {
		return f.def, true
	}
	return "", false
}
