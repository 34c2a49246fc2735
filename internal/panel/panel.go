// Package panel models a single menu screen with an explicit open/close
// lifecycle.
//
// A Panel moves through the states
//
//	Closed/Hidden ──Open──► Opening ──DidOpen──► Open ──Close──► Closing ──FinishClose──► Destroyed | Hidden
//
// Transitions that involve an animation are asynchronous: Open and Close ask
// the Animator to play a named transition and the Animator calls back when it
// settles. Without an Animator both transitions complete synchronously.
package panel

import (
	"fmt"

	"github.com/atomicstack/menu-stack/internal/logging/events"
	"github.com/google/uuid"
)

// State is the lifecycle state of a Panel.
type State int

const (
	StateClosed State = iota
	StateOpening
	StateOpen
	StateClosing
	StateHidden
	StateDestroyed
)

func (s State) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateOpening:
		return "opening"
	case StateOpen:
		return "open"
	case StateClosing:
		return "closing"
	case StateHidden:
		return "hidden"
	case StateDestroyed:
		return "destroyed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Outcome is the terminal result of a finished close.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeHidden
	OutcomeDestroyed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomeHidden:
		return "hidden"
	case OutcomeDestroyed:
		return "destroyed"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Transition names an animated lifecycle step.
type Transition string

const (
	TransitionOpen  Transition = "open"
	TransitionClose Transition = "close"
)

// Animator plays a named transition for a panel and calls done once the
// transition has finished. done must be invoked at most once and on the same
// goroutine that drives the panel.
type Animator interface {
	Play(p *Panel, t Transition, done func())
}

// Hooks receives lifecycle completion notifications for a panel.
type Hooks interface {
	OnOpenComplete(p *Panel)
	OnCloseComplete(p *Panel, outcome Outcome)
}

// HookFuncs adapts plain functions to Hooks. Nil fields are skipped.
type HookFuncs struct {
	OpenComplete  func(p *Panel)
	CloseComplete func(p *Panel, outcome Outcome)
}

func (h HookFuncs) OnOpenComplete(p *Panel) {
	if h.OpenComplete != nil {
		h.OpenComplete(p)
	}
}

func (h HookFuncs) OnCloseComplete(p *Panel, outcome Outcome) {
	if h.CloseComplete != nil {
		h.CloseComplete(p, outcome)
	}
}

// Template describes how to build a fresh Panel.
type Template struct {
	Kind  string
	Title string
	Hooks Hooks
}

// Panel is one screen in a navigation stack.
type Panel struct {
	id       uuid.UUID
	kind     string
	title    string
	hooks    Hooks
	animator Animator

	state        State
	outcome      Outcome
	destroyAfter bool
	visible      bool
	seq          uint64

	data any
}

// New instantiates a panel from tpl. animator may be nil.
func New(tpl Template, animator Animator) *Panel {
	return &Panel{
		id:       uuid.New(),
		kind:     tpl.Kind,
		title:    tpl.Title,
		hooks:    tpl.Hooks,
		animator: animator,
		state:    StateClosed,
	}
}

func (p *Panel) ID() uuid.UUID { return p.id }

func (p *Panel) Kind() string { return p.kind }

func (p *Panel) Title() string { return p.title }

func (p *Panel) State() State { return p.state }

// Outcome reports how the most recent close finished.
func (p *Panel) Outcome() Outcome { return p.outcome }

// Visible reports whether the panel's visual representation is active.
func (p *Panel) Visible() bool { return p.visible }

// Interactive reports whether the panel is opening or open.
func (p *Panel) Interactive() bool {
	return p.state == StateOpening || p.state == StateOpen
}

// DestroyOnClose reports what the pending or last close was asked to do.
func (p *Panel) DestroyOnClose() bool { return p.destroyAfter }

// Data returns the caller supplied payload.
func (p *Panel) Data() any { return p.data }

// SetData attaches a caller supplied payload.
func (p *Panel) SetData(v any) { p.data = v }

// Open makes the panel visible and starts the open transition. Without an
// animator, or when animate is false, DidOpen runs before Open returns. A
// panel that is already opening or open, or destroyed, ignores the call; a
// running close is superseded.
func (p *Panel) Open(animate bool) {
	switch p.state {
	case StateDestroyed, StateOpening, StateOpen:
		events.Panel.Ignored(p.kind, p.id.String(), "open", p.state.String())
		return
	}
	p.seq++
	p.state = StateOpening
	p.outcome = OutcomeNone
	p.destroyAfter = false
	p.visible = true
	events.Panel.Open(p.kind, p.id.String(), animate)
	if animate && p.animator != nil {
		p.animator.Play(p, TransitionOpen, p.completion(p.seq, TransitionOpen, p.DidOpen))
		return
	}
	if p.animator == nil {
		events.Panel.AnimatorMissing(p.kind, p.id.String(), string(TransitionOpen))
	}
	p.DidOpen()
}

// DidOpen completes the open transition.
func (p *Panel) DidOpen() {
	if p.state != StateOpening {
		events.Panel.Ignored(p.kind, p.id.String(), "did-open", p.state.String())
		return
	}
	p.state = StateOpen
	events.Panel.Opened(p.kind, p.id.String())
	if p.hooks != nil {
		p.hooks.OnOpenComplete(p)
	}
}

// Close starts the close transition. destroyAfter selects whether the panel
// is destroyed or merely hidden once the transition finishes. The close only
// animates when the panel is visible.
func (p *Panel) Close(destroyAfter, animate bool) {
	if p.state == StateDestroyed {
		events.Panel.Ignored(p.kind, p.id.String(), "close", p.state.String())
		return
	}
	p.seq++
	p.state = StateClosing
	p.destroyAfter = destroyAfter
	events.Panel.Close(p.kind, p.id.String(), destroyAfter, animate)
	if animate && p.visible && p.animator != nil {
		p.animator.Play(p, TransitionClose, p.completion(p.seq, TransitionClose, p.FinishClose))
		return
	}
	if animate && p.animator == nil {
		events.Panel.AnimatorMissing(p.kind, p.id.String(), string(TransitionClose))
	}
	p.FinishClose()
}

// FinishClose completes the close transition, destroying or hiding the panel.
func (p *Panel) FinishClose() {
	if p.state != StateClosing {
		events.Panel.Ignored(p.kind, p.id.String(), "finish-close", p.state.String())
		return
	}
	p.visible = false
	if p.destroyAfter {
		p.state = StateDestroyed
		p.outcome = OutcomeDestroyed
	} else {
		p.state = StateHidden
		p.outcome = OutcomeHidden
	}
	events.Panel.Closed(p.kind, p.id.String(), p.outcome.String())
	if p.hooks != nil {
		p.hooks.OnCloseComplete(p, p.outcome)
	}
}

// completion wraps fn so that it only runs while seq is still the panel's
// latest transition.
func (p *Panel) completion(seq uint64, t Transition, fn func()) func() {
	fired := false
	return func() {
		if fired {
			return
		}
		fired = true
		if seq != p.seq {
			events.Panel.Stale(p.kind, p.id.String(), string(t))
			return
		}
		fn()
	}
}
