package i18n

import "testing"

func TestNewCatalog_DefaultsToRussian(t *testing.T) {
	c, err := NewCatalog("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if c.Locale() != "ru" {
		t.Errorf("expected locale 'ru', got %q", c.Locale())
	}
	if got := c.T("TranslateButton", nil); got != "Перевести" {
		t.Errorf("expected 'Перевести', got %q", got)
	}
	if got := c.T("JudgeButton", nil); got != "Оценить при помощи LLM-as-a-Judge" {
		t.Errorf("unexpected judge label %q", got)
	}
}

func TestNewCatalog_English(t *testing.T) {
	c, err := NewCatalog("en-US")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if c.Locale() != "en" {
		t.Errorf("expected locale 'en', got %q", c.Locale())
	}
	if got := c.T("EmptyText", nil); got != "Please enter text to translate." {
		t.Errorf("unexpected message %q", got)
	}
}

func TestNewCatalog_UnknownLocaleFallsBack(t *testing.T) {
	c, err := NewCatalog("ja")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := c.T("EmptyText", nil); got != "Пожалуйста, введите текст для перевода." {
		t.Errorf("expected Russian fallback, got %q", got)
	}
}

func TestCatalog_T_TemplateData(t *testing.T) {
	c, _ := NewCatalog("ru")

	got := c.T("UnsupportedLanguage", map[string]any{"Language": "Spanish"})
	if got != `Язык "Spanish" не поддерживается.` {
		t.Errorf("unexpected message %q", got)
	}

	got = c.T("TextTooLong", map[string]any{"MaxChars": 5000})
	if got != "Слишком длинный текст для перевода (макс. 5000 символов)." {
		t.Errorf("unexpected message %q", got)
	}
}

func TestCatalog_T_MissingKey(t *testing.T) {
	c, _ := NewCatalog("ru")

	if got := c.T("NoSuchKey", nil); got != "NoSuchKey" {
		t.Errorf("expected key echo, got %q", got)
	}
	if got := c.T("", nil); got != "" {
		t.Errorf("expected empty string, got %q", got)
	}
}

func TestCatalog_Labels(t *testing.T) {
	c, _ := NewCatalog("en")

	labels := c.Labels("TranslateButton", "GradeHeading")
	if labels["TranslateButton"] != "Translate" || labels["GradeHeading"] != "Grade" {
		t.Errorf("unexpected labels %v", labels)
	}
}
