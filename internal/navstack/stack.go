// Package navstack maintains the ordered history of displayed menu panels and
// keeps exactly the top panel interactive.
//
// A Stack is not safe for concurrent use. Callers drive it from a single
// goroutine (the Bubble Tea update loop in this program) and animators must
// deliver completion callbacks on that same goroutine.
package navstack

import (
	"github.com/atomicstack/menu-stack/internal/logging/events"
	"github.com/atomicstack/menu-stack/internal/panel"
)

// Backdrop is the visual container shown while the stack is non-empty.
type Backdrop interface {
	SetVisible(visible bool)
}

// Stack is an ordered collection of panels. The last entry is the top.
type Stack struct {
	entries   []*panel.Panel
	animator  panel.Animator
	backdrop  Backdrop
	observers observers

	nextSubscriber uint64
}

// New creates an empty stack. animator and backdrop may be nil.
func New(animator panel.Animator, backdrop Backdrop) *Stack {
	return &Stack{
		animator:  animator,
		backdrop:  backdrop,
		observers: make(observers),
	}
}

// Len returns the number of panels on the stack.
func (s *Stack) Len() int {
	return len(s.entries)
}

// IsEmpty reports whether the stack has no panels.
func (s *Stack) IsEmpty() bool {
	return len(s.entries) == 0
}

// Push instantiates a panel from tpl and makes it the interactive top. The
// previous top is hidden without animation. The panel is on the stack before
// it opens, so its hooks already see it as the top.
func (s *Stack) Push(tpl panel.Template) *panel.Panel {
	if len(s.entries) == 0 {
		s.start()
	} else {
		s.hideTop()
	}
	p := panel.New(tpl, s.animator)
	s.entries = append(s.entries, p)
	events.Stack.Push(p.Kind(), p.ID().String(), len(s.entries))
	p.Open(true)
	s.observers.notify(EventPanelAdded)
	return p
}

// Pop destroys the top panel with its close animation and reopens the panel
// beneath it. Popping an empty stack does nothing.
func (s *Stack) Pop() {
	if len(s.entries) == 0 {
		events.Stack.PopEmpty()
		return
	}
	top := s.entries[len(s.entries)-1]
	s.entries[len(s.entries)-1] = nil
	s.entries = s.entries[:len(s.entries)-1]
	events.Stack.Pop(top.Kind(), top.ID().String(), len(s.entries))
	top.Close(true, true)
	s.afterTopRemoved()
	s.observers.notify(EventPanelRemoved)
}

// Remove takes target out of the stack wherever it sits, preserving the
// order of every other entry. Only a target on top plays its close
// animation; relocated entries are left untouched. Removing a panel that is
// not on the stack does nothing.
func (s *Stack) Remove(target *panel.Panel) {
	if target == nil {
		return
	}
	rest, removed, held, ok := holdAndRestore(s.entries, func(p *panel.Panel) bool {
		return p == target
	})
	if !ok {
		events.Stack.RemoveMissing(target.ID().String())
		return
	}
	s.entries = rest
	events.Stack.Remove(removed.Kind(), removed.ID().String(), held, len(s.entries))
	removed.Close(true, held == 0)
	if held == 0 {
		s.afterTopRemoved()
	}
	s.observers.notify(EventPanelRemoved)
}

// Peek returns the top panel, or nil when the stack is empty.
func (s *Stack) Peek() *panel.Panel {
	if len(s.entries) == 0 {
		return nil
	}
	return s.entries[len(s.entries)-1]
}

// Clear destroys every panel and ends the stack. Only the top panel animates
// its close since the others are not visible.
func (s *Stack) Clear() {
	if len(s.entries) == 0 {
		return
	}
	entries := s.entries
	s.entries = nil
	events.Stack.Clear(len(entries))
	for i := len(entries) - 1; i >= 0; i-- {
		entries[i].Close(true, i == len(entries)-1)
	}
	s.end()
}

// Contains reports whether a panel of the given kind is on the stack.
func (s *Stack) Contains(kind string) bool {
	for _, p := range s.entries {
		if p.Kind() == kind {
			return true
		}
	}
	return false
}

// index returns the position of p counted from the bottom, or -1.
func (s *Stack) index(p *panel.Panel) int {
	for i, entry := range s.entries {
		if entry == p {
			return i
		}
	}
	return -1
}

// Panels returns a snapshot of the stack ordered bottom to top.
func (s *Stack) Panels() []*panel.Panel {
	out := make([]*panel.Panel, len(s.entries))
	copy(out, s.entries)
	return out
}

// Kinds returns the panel kinds ordered bottom to top.
func (s *Stack) Kinds() []string {
	out := make([]string, len(s.entries))
	for i, p := range s.entries {
		out[i] = p.Kind()
	}
	return out
}

func (s *Stack) afterTopRemoved() {
	if len(s.entries) == 0 {
		s.end()
		return
	}
	s.entries[len(s.entries)-1].Open(true)
}

func (s *Stack) hideTop() {
	if top := s.Peek(); top != nil {
		top.Close(false, false)
	}
}

func (s *Stack) start() {
	events.Stack.Started()
	if s.backdrop != nil {
		s.backdrop.SetVisible(true)
	}
	s.observers.notify(EventStackStarted)
}

func (s *Stack) end() {
	events.Stack.Ended()
	if s.backdrop != nil {
		s.backdrop.SetVisible(false)
	}
	s.observers.notify(EventStackEnded)
}
