package i18n

import "log/slog"

// Option configures a Catalog during construction.
type Option func(*Catalog)

// WithDefaultLanguage sets the language used when a requested language is
// missing from the catalog. The catalog must contain messages for it.
func WithDefaultLanguage(lang string) Option {
	return func(c *Catalog) {
		if lang != "" {
			c.defaultLang = lang
		}
	}
}

// WithLogger sets the logger used to report missing catalog entries. The
// default logger discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Catalog) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithFallbackToMessage controls whether TranslateError falls back to the
// validation error's own message when its code has no catalog entry.
// Enabled by default.
func WithFallbackToMessage(enabled bool) Option {
	return func(c *Catalog) {
		c.fallbackToMessage = enabled
	}
}
