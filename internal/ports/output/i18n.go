package output

// Strings resolves a key from a string table for the active locale.
type Strings interface {
	Localize(table, key string) string
}

// T exposes a locale-explicit i18n contract for user-facing messages.
// Implementations provide message lookup + templating for a given locale.
type T interface {
	// T renders the message identified by key in table for the given locale.
	// data is an optional map used for template placeholders (may be nil).
	T(locale, table, key string, data map[string]any) string
}
