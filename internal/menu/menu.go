package menu

import (
	"fmt"
	"strings"
)

// Action names a built-in behaviour an item can trigger instead of opening
// another menu.
type Action string

const (
	ActionNone        Action = ""
	ActionBack        Action = "back"
	ActionClose       Action = "close"
	ActionRemoveBelow Action = "remove-below"
	ActionQuit        Action = "quit"
)

// Valid reports whether a is a known action.
func (a Action) Valid() bool {
	switch a {
	case ActionNone, ActionBack, ActionClose, ActionRemoveBelow, ActionQuit:
		return true
	}
	return false
}

// ParseAction normalises a raw action name.
func ParseAction(raw string) (Action, error) {
	a := Action(strings.ToLower(strings.TrimSpace(raw)))
	if !a.Valid() {
		return ActionNone, fmt.Errorf("unknown action %q", raw)
	}
	return a, nil
}

// Item represents a selectable menu entry. An item either opens the menu
// named by Target or runs Action.
type Item struct {
	ID     string `yaml:"id" toml:"id" json:"id"`
	Label  string `yaml:"label" toml:"label" json:"label"`
	Target string `yaml:"target,omitempty" toml:"target,omitempty" json:"target,omitempty"`
	Action Action `yaml:"action,omitempty" toml:"action,omitempty" json:"action,omitempty"`
}

// Definition describes one menu panel kind.
type Definition struct {
	Kind  string `yaml:"kind" toml:"kind" json:"kind"`
	Title string `yaml:"title" toml:"title" json:"title"`
	Items []Item `yaml:"items" toml:"items" json:"items"`
}

// DisplayTitle falls back to the kind when no title is set.
func (d *Definition) DisplayTitle() string {
	if t := strings.TrimSpace(d.Title); t != "" {
		return t
	}
	return d.Kind
}
