package i18n

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path"
	"sort"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"

	"commentsview/internal/domain"
	"commentsview/internal/ports/output"
)

//go:embed locales/*.toml
var localeFS embed.FS

// Ensure Translator implements the output.T port.
var _ output.T = (*Translator)(nil)

// Translator is a thin wrapper around go-i18n, with one Bundle per string
// table. Locale files are named <Table>.<lang>.toml.
type Translator struct {
	bundles         map[string]*i18n.Bundle
	defaultLanguage language.Tag
}

// NewTranslator builds a Translator backed by go-i18n using the given default
// locale (e.g. "fr"). Unparseable locales fall back to English.
//
// It loads translations from the embedded locales/*.toml files.
func NewTranslator(defaultLocale string) *Translator {
	tag, err := language.Parse(defaultLocale)
	if err != nil {
		slog.Warn("i18n: invalid default locale, using English", "locale", defaultLocale, "error", err)
		tag = language.English
	}

	t := &Translator{
		bundles:         make(map[string]*i18n.Bundle),
		defaultLanguage: tag,
	}

	files, err := fs.Glob(localeFS, "locales/*.toml")
	if err != nil {
		slog.Error("i18n: listing locale files", "error", err)
		return t
	}
	for _, file := range files {
		table := tableName(file)
		bundle, ok := t.bundles[table]
		if !ok {
			bundle = i18n.NewBundle(tag)
			bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)
			t.bundles[table] = bundle
		}
		if _, err := bundle.LoadMessageFileFS(localeFS, file); err != nil {
			slog.Error("i18n: failed to load locale file", "file", file, "error", err)
		}
	}

	return t
}

// tableName returns "Comments" for "locales/Comments.fr.toml".
func tableName(file string) string {
	base := path.Base(file)
	if i := strings.IndexByte(base, '.'); i >= 0 {
		return base[:i]
	}
	return base
}

// T renders the message identified by key in table for the given locale.
// If the key/locale is not found, it falls back to the default locale,
// then finally to the key itself.
func (t *Translator) T(locale, table, key string, data map[string]any) string {
	if key == "" {
		return ""
	}

	bundle, ok := t.bundles[table]
	if !ok {
		slog.Error("i18n: unknown table", "table", table, "key", key)
		return key
	}

	languages := []string{}
	if locale != "" {
		languages = append(languages, locale)
	}
	languages = append(languages, t.defaultLanguage.String())

	localizer := i18n.NewLocalizer(bundle, languages...)
	msg, err := localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: data,
	})
	if err != nil {
		slog.Error("i18n: localize failed", "table", table, "key", key, "locales", languages, "error", err)
		return key
	}
	return msg
}

// ForLocale binds the translator to one locale.
func (t *Translator) ForLocale(locale string) *Strings {
	return &Strings{translator: t, locale: locale}
}

// Tables returns the loaded table names, sorted.
func (t *Translator) Tables() []string {
	tables := make([]string, 0, len(t.bundles))
	for name := range t.bundles {
		tables = append(tables, name)
	}
	sort.Strings(tables)
	return tables
}

// Locales returns the languages bundled for table.
func (t *Translator) Locales(table string) []language.Tag {
	bundle, ok := t.bundles[table]
	if !ok {
		return nil
	}
	return bundle.LanguageTags()
}

// Verify checks that every key is translated in every language bundled for
// table. A key that only resolves through the default-language fallback, or
// whose translation equals the key, is reported as missing.
func (t *Translator) Verify(table string, keys ...string) error {
	bundle, ok := t.bundles[table]
	if !ok {
		return fmt.Errorf("i18n: %w: %q", domain.ErrUnknownTable, table)
	}

	var errs []error
	for _, tag := range bundle.LanguageTags() {
		localizer := i18n.NewLocalizer(bundle, tag.String())
		for _, key := range keys {
			msg, got, err := localizer.LocalizeWithTag(&i18n.LocalizeConfig{MessageID: key})
			switch {
			case err != nil:
				errs = append(errs, fmt.Errorf("i18n: %s/%s [%s]: %w", table, key, tag, err))
			case got != tag:
				errs = append(errs, fmt.Errorf("i18n: %s/%s [%s]: missing, falls back to %s", table, key, tag, got))
			case msg == key:
				errs = append(errs, fmt.Errorf("i18n: %s/%s [%s]: not translated", table, key, tag))
			}
		}
	}
	return errors.Join(errs...)
}

var _ output.Strings = (*Strings)(nil)

// Strings resolves keys for a single locale.
type Strings struct {
	translator *Translator
	locale     string
}

// Locale returns the bound locale.
func (s *Strings) Locale() string {
	return s.locale
}

func (s *Strings) Localize(table, key string) string {
	return s.translator.T(s.locale, table, key, nil)
}
