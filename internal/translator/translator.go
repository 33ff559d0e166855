package translator

import (
	"context"
	"fmt"

	"github.com/valpere/perevodchik/internal"
	"github.com/valpere/perevodchik/internal/inference"
)

const DefaultModel = "Qwen/Qwen3-VL-30B-A3B-Instruct"

// Translator turns a TranslationRequest into one inference call against the
// translation model.
type Translator struct {
	caller inference.Caller
	model  string
}

func New(caller inference.Caller, model string) *Translator {
	if model == "" {
		model = DefaultModel
	}
	return &Translator{
		caller: caller,
		model:  model,
	}
}

func (t *Translator) Model() string {
	return t.model
}

// Translate returns the model's answer verbatim, or the marker text on failure.
func (t *Translator) Translate(ctx context.Context, req internal.TranslationRequest) inference.Result {
	return inference.Run(ctx, t.caller, t.model, buildTranslationPrompt(req))
}

func buildTranslationPrompt(req internal.TranslationRequest) string {
	return fmt.Sprintf("Переведи следующий текст на %s:\n\n%s", req.TargetLanguage.Name, req.OriginalText)
}
