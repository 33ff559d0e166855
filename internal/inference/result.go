package inference

import (
	"context"
	"errors"
	"fmt"
)

// ErrorMarker prefixes every failure shown to the user.
const ErrorMarker = "Ошибка при обращении к LLM"

// CallError covers network errors, non-200 statuses and malformed bodies.
// StatusCode is zero when no response was received.
type CallError struct {
	Model      string
	StatusCode int
	Err        error
}

func (e *CallError) Error() string {
	return fmt.Sprintf("%s: %v", ErrorMarker, e.Err)
}

func (e *CallError) Unwrap() error {
	return e.Err
}

// Result is the display-ready outcome of one call.
type Result struct {
	Success bool
	Text    string
}

// Failed wraps err into a Result carrying the marker text.
func Failed(model string, err error) Result {
	var callErr *CallError
	if !errors.As(err, &callErr) {
		callErr = &CallError{Model: model, Err: err}
	}
	return Result{Success: false, Text: callErr.Error()}
}

// Run performs one call and folds the outcome into a Result.
func Run(ctx context.Context, c Caller, model, prompt string) Result {
	text, err := c.Call(ctx, model, prompt)
	if err != nil {
		return Failed(model, err)
	}
	return Result{Success: true, Text: text}
}
