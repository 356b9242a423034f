package app

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/Mig-uel/event-emitter-demo/internal/app/components/child"
)

// ErrUnknownAction is returned for an action name that is not recognised.
var ErrUnknownAction = errors.New("unknown action")

// Action is a user action on the child component.
type Action string

const (
	Increment Action = "increment"
	Decrement Action = "decrement"
)

// ParseAction accepts "increment", "inc", "+", "decrement", "dec" and "-".
func ParseAction(s string) (Action, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "increment", "inc", "+":
		return Increment, nil
	case "decrement", "dec", "-":
		return Decrement, nil
	}
	return "", errors.Wrapf(ErrUnknownAction, "%q", s)
}

// ParseActions parses every name in order, stopping at the first bad one.
func ParseActions(names []string) ([]Action, error) {
	actions := make([]Action, 0, len(names))
	for _, name := range names {
		a, err := ParseAction(name)
		if err != nil {
			return nil, err
		}
		actions = append(actions, a)
	}
	return actions, nil
}

// elementID is the id of the button that triggers the action.
func (a Action) elementID() string {
	if a == Decrement {
		return child.DecrementID
	}
	return child.IncrementID
}
