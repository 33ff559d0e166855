// Package controller implements the form workflow: validate a submission,
// pick the model and prompt for the requested action, run exactly one
// inference call and hand back a display-ready Outcome.
package controller

import (
	"context"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/valpere/perevodchik/internal"
	"github.com/valpere/perevodchik/internal/inference"
	"github.com/valpere/perevodchik/internal/store"
)

type Translator interface {
	Model() string
	Translate(ctx context.Context, req internal.TranslationRequest) inference.Result
}

type Judge interface {
	Model() string
	Evaluate(ctx context.Context, req internal.JudgeRequest) inference.Result
}

// Journal receives one record per inference call.
type Journal interface {
	Record(ctx context.Context, rec store.CallRecord) error
}

// Submission is one form post.
type Submission struct {
	OriginalText   string
	Language       string
	TranslatedText string
	Action         Action
}

// Outcome is what the page renders after a submission.
type Outcome struct {
	State        State
	OriginalText string
	Language     internal.Language
	Translation  inference.Result
	Grade        inference.Result
}

// HasTranslation reports whether a usable translation exists for judging.
func (o Outcome) HasTranslation() bool {
	return o.Translation.Success && o.Translation.Text != ""
}

type Controller struct {
	translator Translator
	judge      Judge
	journal    Journal
}

type Option func(*Controller)

// WithJournal records every call in j. Journal failures are logged only.
func WithJournal(j Journal) Option {
	return func(c *Controller) {
		c.journal = j
	}
}

func New(translator Translator, judge Judge, opts ...Option) *Controller {
	c := &Controller{
		translator: translator,
		judge:      judge,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Handle validates sub and dispatches it to Translate or Judge. The error is
// non-nil only for a *ValidationError; inference failures are reported
// through the Outcome.
func (c *Controller) Handle(ctx context.Context, sub Submission) (Outcome, error) {
	action, err := ParseAction(string(sub.Action))
	if err != nil {
		return Outcome{State: StateIdle, OriginalText: sub.OriginalText}, err
	}

	text, lang, err := validate(sub.OriginalText, sub.Language)
	if err != nil {
		return Outcome{State: StateIdle, OriginalText: sub.OriginalText}, err
	}

	switch action {
	case ActionJudge:
		if strings.TrimSpace(sub.TranslatedText) == "" {
			return Outcome{State: StateIdle, OriginalText: text, Language: lang}, errMissingTranslation()
		}
		out := c.Judge(ctx, internal.JudgeRequest{OriginalText: text, TranslatedText: sub.TranslatedText})
		out.Language = lang
		return out, nil
	default:
		return c.Translate(ctx, internal.TranslationRequest{OriginalText: text, TargetLanguage: lang}), nil
	}
}

// Translate runs the translation model. The state ends as Translated or Error.
func (c *Controller) Translate(ctx context.Context, req internal.TranslationRequest) Outcome {
	out := Outcome{State: StateTranslating, OriginalText: req.OriginalText, Language: req.TargetLanguage}

	start := time.Now()
	out.Translation = c.translator.Translate(ctx, req)
	c.record(ctx, ActionTranslate, c.translator.Model(), req.TargetLanguage.Name, req.OriginalText, out.Translation, time.Since(start))

	out.State = out.State.next(out.Translation.Success)
	return out
}

// Judge grades an existing translation. The state ends as Judged or Error.
func (c *Controller) Judge(ctx context.Context, req internal.JudgeRequest) Outcome {
	out := Outcome{
		State:        StateJudging,
		OriginalText: req.OriginalText,
		Translation:  inference.Result{Success: true, Text: req.TranslatedText},
	}

	start := time.Now()
	out.Grade = c.judge.Evaluate(ctx, req)
	c.record(ctx, ActionJudge, c.judge.Model(), "", req.OriginalText+req.TranslatedText, out.Grade, time.Since(start))

	out.State = out.State.next(out.Grade.Success)
	return out
}

func (c *Controller) record(ctx context.Context, action Action, model, lang, text string, res inference.Result, latency time.Duration) {
	slog.Info("inference call",
		"action", action,
		"model", model,
		"success", res.Success,
		"latency", latency)

	if c.journal == nil {
		return
	}

	rec := store.CallRecord{
		Action:         string(action),
		Model:          model,
		TargetLanguage: lang,
		PromptChars:    utf8.RuneCountInString(text),
		Success:        res.Success,
		LatencyMs:      int(latency.Milliseconds()),
	}
	if !res.Success {
		rec.Error = res.Text
	}

	// The journal must never fail a user request.
	if err := c.journal.Record(context.WithoutCancel(ctx), rec); err != nil {
		slog.Error("journal write failed", "action", action, "error", err)
	}
}
