// Package i18n holds the user-facing messages of the web form and the CLI.
package i18n

import (
	"embed"
	"fmt"
	"log/slog"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"
)

//go:embed active.*.toml
var localeFS embed.FS

var localeFiles = []string{"active.ru.toml", "active.en.toml"}

// Catalog is a thin wrapper around go-i18n's Bundle/Localizer bound to one
// locale.
type Catalog struct {
	bundle    *i18n.Bundle
	localizer *i18n.Localizer
	tag       language.Tag
}

// NewCatalog loads the embedded message files. Unknown locales fall back to
// Russian.
func NewCatalog(locale string) (*Catalog, error) {
	bundle := i18n.NewBundle(language.Russian)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	for _, file := range localeFiles {
		if _, err := bundle.LoadMessageFileFS(localeFS, file); err != nil {
			return nil, fmt.Errorf("i18n: failed to load %s: %w", file, err)
		}
	}

	tag := language.Russian
	if locale != "" {
		matcher := language.NewMatcher(bundle.LanguageTags())
		matched, _, confidence := matcher.Match(language.Make(locale))
		if confidence != language.No {
			base, _ := matched.Base()
			tag = language.Make(base.String())
		}
	}

	return &Catalog{
		bundle:    bundle,
		localizer: i18n.NewLocalizer(bundle, tag.String(), language.Russian.String()),
		tag:       tag,
	}, nil
}

// Locale is the negotiated locale, suitable for <html lang>.
func (c *Catalog) Locale() string {
	return c.tag.String()
}

// T renders the message identified by key. Missing keys render as the key
// itself.
func (c *Catalog) T(key string, data map[string]any) string {
	if key == "" {
		return ""
	}

	msg, err := c.localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: data,
	})
	if err != nil {
		slog.Warn("i18n: localize failed", "key", key, "locale", c.tag.String(), "error", err)
		return key
	}
	return msg
}

// Labels renders every key in keys with no template data.
func (c *Catalog) Labels(keys ...string) map[string]string {
	out := make(map[string]string, len(keys))
	for _, k := range keys {
		out[k] = c.T(k, nil)
	}
	return out
}
