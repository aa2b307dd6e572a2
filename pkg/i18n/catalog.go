package i18n

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"regexp"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/propkit/pkg/validator"
)

// DefaultLanguage is used when no language is requested or matched.
const DefaultLanguage = "en"

// Catalog maps validation rule codes to localized message templates, one
// template set per language. A catalog is fully populated at construction
// and read-only afterwards, so it is safe to share between goroutines.
type Catalog struct {
	messages          map[string]map[int]string
	defaultLang       string
	fallbackToMessage bool
	logger            *slog.Logger
	languages         []string
	matcher           matcher
}

// New reads a YAML catalog from r and returns the catalog. The expected
// document shape is language → rule code → template:
//
//	en:
//	  1000: "must not be empty"
//	  1001: "must be between %{min} and %{max} characters"
//	de:
//	  1000: "darf nicht leer sein"
func New(r io.Reader, opts ...Option) (*Catalog, error) {
	if r == nil {
		return nil, ErrNilSource
	}

	content, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Join(ErrFailedToParseCatalog, err)
	}

	var messages map[string]map[int]string
	if err := yaml.Unmarshal(content, &messages); err != nil {
		return nil, errors.Join(ErrFailedToParseCatalog, err)
	}

	return NewFromMap(messages, opts...)
}

// NewFS reads a YAML catalog file from fsys, which makes embedded catalogs
// (embed.FS) convenient to load.
func NewFS(fsys fs.FS, name string, opts ...Option) (*Catalog, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, errors.Join(ErrFailedToParseCatalog, err)
	}
	defer f.Close()
	return New(f, opts...)
}

// NewFromMap builds a catalog from an already-parsed message map.
func NewFromMap(messages map[string]map[int]string, opts ...Option) (*Catalog, error) {
	c := &Catalog{
		messages:          messages,
		defaultLang:       DefaultLanguage,
		fallbackToMessage: true,
		logger:            slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}

	if len(c.messages) == 0 {
		return nil, ErrEmptyCatalog
	}
	for lang, templates := range c.messages {
		if lang == "" {
			return nil, fmt.Errorf("%w: empty language code", ErrInvalidCatalog)
		}
		if len(templates) == 0 {
			return nil, fmt.Errorf("%w: no messages for language %q", ErrInvalidCatalog, lang)
		}
	}
	if _, ok := c.messages[c.defaultLang]; !ok {
		return nil, fmt.Errorf("%w: default language %q has no messages", ErrInvalidCatalog, c.defaultLang)
	}

	c.languages = make([]string, 0, len(c.messages))
	for lang := range c.messages {
		c.languages = append(c.languages, lang)
	}
	sort.Strings(c.languages)

	m, err := newMatcher(c.defaultLang, c.languages)
	if err != nil {
		return nil, err
	}
	c.matcher = m

	return c, nil
}

// Languages returns the sorted language codes the catalog covers.
func (c *Catalog) Languages() []string {
	out := make([]string, len(c.languages))
	copy(out, c.languages)
	return out
}

// Translate resolves the template for code in the given language and
// substitutes %{name} placeholders from values. When the language has no
// entry the default language is consulted; a code missing from both is
// logged and reported with ok == false.
func (c *Catalog) Translate(lang string, code int, values map[string]any) (string, bool) {
	templates, ok := c.messages[lang]
	if !ok {
		templates = c.messages[c.defaultLang]
	}

	template, ok := templates[code]
	if !ok {
		template, ok = c.messages[c.defaultLang][code]
	}
	if !ok {
		c.logger.Warn("missing catalog entry", "lang", lang, "code", code)
		return "", false
	}

	return interpolate(template, values), true
}

// TranslateError localizes a validation error by its rule code. Errors
// that carry no ValidationError, or codes absent from the catalog, fall
// back to the error's own message (configurable via WithFallbackToMessage).
func (c *Catalog) TranslateError(lang string, err error) string {
	if err == nil {
		return ""
	}

	ve, ok := validator.ExtractValidationError(err)
	if !ok {
		return err.Error()
	}

	if msg, ok := c.Translate(lang, ve.Code, ve.TranslationValues); ok {
		return msg
	}
	if c.fallbackToMessage {
		return ve.Message
	}
	return err.Error()
}

// Regex for named parameters in the form %{name}.
var paramRegex = regexp.MustCompile(`%\{([^}]+)\}`)

// interpolate substitutes %{name} placeholders from values, leaving
// unknown placeholders untouched.
func interpolate(template string, values map[string]any) string {
	if len(values) == 0 {
		return template
	}
	return paramRegex.ReplaceAllStringFunc(template, func(match string) string {
		name := match[2 : len(match)-1]
		if v, ok := values[name]; ok {
			return fmt.Sprint(v)
		}
		return match
	})
}
