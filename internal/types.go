package internal

import (
	"strings"

	"golang.org/x/text/language"
)

// Language is a translation target offered by the form.
type Language struct {
	Name string
	Tag  language.Tag
}

var (
	English = Language{Name: "English", Tag: language.English}
	French  = Language{Name: "French", Tag: language.French}
	German  = Language{Name: "German", Tag: language.German}
)

// SupportedLanguages lists the targets in the order the form shows them.
var SupportedLanguages = []Language{English, French, German}

// LanguageByName returns the supported Language whose Name is exactly name,
// as the form's select submits it.
func LanguageByName(name string) (Language, bool) {
	for _, l := range SupportedLanguages {
		if l.Name == name {
			return l, true
		}
	}
	return Language{}, false
}

// LookupLanguage is the lenient resolver used by the CLI: a case-insensitive
// name or a BCP 47 code ("de", "fr-CA").
func LookupLanguage(value string) (Language, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return Language{}, false
	}

	for _, l := range SupportedLanguages {
		if strings.EqualFold(l.Name, value) {
			return l, true
		}
	}

	tag, err := language.Parse(value)
	if err != nil {
		return Language{}, false
	}
	base, _ := tag.Base()
	for _, l := range SupportedLanguages {
		if lb, _ := l.Tag.Base(); lb == base {
			return l, true
		}
	}

	return Language{}, false
}

type TranslationRequest struct {
	OriginalText   string
	TargetLanguage Language
}

type JudgeRequest struct {
	OriginalText   string
	TranslatedText string
}
