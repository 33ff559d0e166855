// Package judge grades a finished translation with a second model
// (LLM-as-a-Judge).
package judge

import (
	"context"
	"fmt"

	"github.com/valpere/perevodchik/internal"
	"github.com/valpere/perevodchik/internal/inference"
)

const DefaultModel = "claude-sonnet-4-5-20250929"

type Judge struct {
	caller inference.Caller
	model  string
}

func New(caller inference.Caller, model string) *Judge {
	if model == "" {
		model = DefaultModel
	}
	return &Judge{
		caller: caller,
		model:  model,
	}
}

func (j *Judge) Model() string {
	return j.model
}

// Evaluate asks the judge model for a 1-10 score with reasoning. The grade
// text is returned verbatim.
func (j *Judge) Evaluate(ctx context.Context, req internal.JudgeRequest) inference.Result {
	return inference.Run(ctx, j.caller, j.model, buildJudgePrompt(req))
}

func buildJudgePrompt(req internal.JudgeRequest) string {
	return fmt.Sprintf("Оцени качество перевода от 1 до 10 и аргументируй.\n\nОригинал:\n%s\n\nПеревод:\n%s",
		req.OriginalText, req.TranslatedText)
}
