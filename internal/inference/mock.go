package inference

import (
	"context"
	"fmt"
	"strings"
)

// MockClient answers without touching the network. The reply is chosen by
// model name: translation models echo a fragment of the text, grading models
// return a canned verdict.
type MockClient struct{}

func NewMockClient() *MockClient {
	return &MockClient{}
}

func (m *MockClient) Call(ctx context.Context, model, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", &CallError{Model: model, Err: err}
	}

	name := strings.ToLower(model)
	switch {
	case strings.Contains(name, "qwen"):
		parts := strings.Split(prompt, "\n\n")
		return fmt.Sprintf("(mock) Перевод: %s ...", truncate(parts[len(parts)-1], 300)), nil
	case strings.Contains(name, "claude"), strings.Contains(name, "judge"):
		return "(mock) Оценка: 8/10. Аргументация: перевод адекватен, но требует стилистической правки.", nil
	default:
		return fmt.Sprintf("(mock) Ответ модели %s: %s...", model, truncate(prompt, 200)), nil
	}
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
