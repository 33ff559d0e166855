package controller

import "strings"

// State tracks the form workflow:
// Idle → Translating → Translated → Judging → Judged, with Error reachable
// from Translating or Judging.
type State int

const (
	StateIdle State = iota
	StateTranslating
	StateTranslated
	StateJudging
	StateJudged
	StateError
)

var stateNames = map[State]string{
	StateIdle:        "idle",
	StateTranslating: "translating",
	StateTranslated:  "translated",
	StateJudging:     "judging",
	StateJudged:      "judged",
	StateError:       "error",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "unknown"
}

// next resolves an in-flight state once its call has finished. Settled
// states are returned unchanged.
func (s State) next(success bool) State {
	switch s {
	case StateTranslating:
		if success {
			return StateTranslated
		}
		return StateError
	case StateJudging:
		if success {
			return StateJudged
		}
		return StateError
	default:
		return s
	}
}

// Action is the submit button that was pressed.
type Action string

const (
	ActionTranslate Action = "translate"
	ActionJudge     Action = "judge"
)

// ParseAction maps a form value to an Action. An empty value means translate,
// which is what a browser sends when the form is submitted with Enter.
func ParseAction(value string) (Action, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", string(ActionTranslate):
		return ActionTranslate, nil
	case string(ActionJudge):
		return ActionJudge, nil
	default:
		return "", errUnknownAction(value)
	}
}
