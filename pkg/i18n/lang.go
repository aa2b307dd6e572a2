package i18n

import (
	"fmt"

	"golang.org/x/text/language"
)

// matcher resolves requested language tags against the catalog's languages.
type matcher struct {
	matcher   language.Matcher
	supported []string
}

// newMatcher builds a matcher over the supported languages with defaultLang
// as the fallback. x/text treats the first supported tag as the match of
// last resort, so the default language leads the list.
func newMatcher(defaultLang string, supported []string) (matcher, error) {
	ordered := make([]string, 0, len(supported))
	ordered = append(ordered, defaultLang)
	for _, lang := range supported {
		if lang != defaultLang {
			ordered = append(ordered, lang)
		}
	}

	tags := make([]language.Tag, 0, len(ordered))
	for _, lang := range ordered {
		tag, err := language.Parse(lang)
		if err != nil {
			return matcher{}, fmt.Errorf("%w: language %q: %v", ErrInvalidCatalog, lang, err)
		}
		tags = append(tags, tag)
	}

	return matcher{
		matcher:   language.NewMatcher(tags),
		supported: ordered,
	}, nil
}

// match returns the supported language that best fits the requested tags,
// in preference order. Unparsable tags are skipped; when nothing matches,
// the default language is returned.
func (m matcher) match(requested ...string) string {
	var tags []language.Tag
	for _, r := range requested {
		if tag, err := language.Parse(r); err == nil {
			tags = append(tags, tag)
		}
	}
	if len(tags) == 0 {
		return m.supported[0]
	}

	_, index, _ := m.matcher.Match(tags...)
	return m.supported[index]
}

// MatchLanguage returns the catalog language best matching the requested
// BCP 47 tags, in preference order, e.g. from an Accept-Language header
// already split into tags. Unknown or unparsable tags resolve to the
// default language.
func (c *Catalog) MatchLanguage(requested ...string) string {
	return c.matcher.match(requested...)
}
