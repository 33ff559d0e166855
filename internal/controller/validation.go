package controller

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/valpere/perevodchik/internal"
)

// MaxTextLength is the longest accepted input, in characters.
const MaxTextLength = 5000

// ValidationError rejects a submission before any call is made. MessageID
// and Data key into the i18n catalog; Error returns the Russian text.
type ValidationError struct {
	MessageID string
	Data      map[string]any
	text      string
}

func (e *ValidationError) Error() string {
	return e.text
}

func errEmptyText() *ValidationError {
	return &ValidationError{
		MessageID: "EmptyText",
		text:      "Пожалуйста, введите текст для перевода.",
	}
}

func errTextTooLong() *ValidationError {
	return &ValidationError{
		MessageID: "TextTooLong",
		Data:      map[string]any{"MaxChars": MaxTextLength},
		text:      fmt.Sprintf("Слишком длинный текст для перевода (макс. %d символов).", MaxTextLength),
	}
}

func errUnsupportedLanguage(lang string) *ValidationError {
	return &ValidationError{
		MessageID: "UnsupportedLanguage",
		Data:      map[string]any{"Language": lang},
		text:      fmt.Sprintf("Язык %q не поддерживается.", lang),
	}
}

func errMissingTranslation() *ValidationError {
	return &ValidationError{
		MessageID: "MissingTranslation",
		text:      "Сначала выполните перевод.",
	}
}

func errUnknownAction(action string) *ValidationError {
	return &ValidationError{
		MessageID: "UnknownAction",
		Data:      map[string]any{"Action": action},
		text:      fmt.Sprintf("Неизвестное действие %q.", action),
	}
}

// validate trims text and resolves the language, in that order. Only the
// exact names of SupportedLanguages are accepted.
func validate(text, lang string) (string, internal.Language, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", internal.Language{}, errEmptyText()
	}
	if utf8.RuneCountInString(text) > MaxTextLength {
		return "", internal.Language{}, errTextTooLong()
	}

	if lang == "" {
		lang = internal.English.Name
	}
	l, ok := internal.LanguageByName(lang)
	if !ok {
		return "", internal.Language{}, errUnsupportedLanguage(lang)
	}

	return text, l, nil
}
