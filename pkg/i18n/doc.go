// Package i18n localizes validation failures by their stable rule codes.
//
// A Catalog is loaded once from a YAML document mapping language → rule
// code → message template and is immutable afterwards. Because lookup is
// keyed by the numeric code rather than the message text, localized
// catalogs stay decoupled from whatever free-form message a rule produces:
//
//	en:
//	  1000: "must not be empty"
//	  1001: "must be between %{min} and %{max} characters"
//	de:
//	  1000: "darf nicht leer sein"
//	  1001: "muss zwischen %{min} und %{max} Zeichen lang sein"
//
// Templates use %{name} placeholders, filled from the validation error's
// TranslationValues:
//
//	catalog, err := i18n.New(file)
//	// ...
//	if err := prop.Set(input); err != nil {
//	    lang := catalog.MatchLanguage("de-AT", "en")
//	    msg := catalog.TranslateError(lang, err) // "muss zwischen 4 und 32 Zeichen lang sein"
//	}
//
// Language resolution uses golang.org/x/text matching, so regional tags
// ("de-AT") resolve to the closest catalog language ("de"). Codes missing
// from the catalog fall back to the error's own message by default and can
// be surfaced through an optional slog.Logger instead.
package i18n
