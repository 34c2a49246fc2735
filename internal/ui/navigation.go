package ui

import (
	"fmt"

	"github.com/atomicstack/menu-stack/internal/logging/events"
	"github.com/atomicstack/menu-stack/internal/menu"
	"github.com/atomicstack/menu-stack/internal/panel"
	uistate "github.com/atomicstack/menu-stack/internal/ui/state"
	tea "github.com/charmbracelet/bubbletea"
)

// push opens the menu named kind on top of the stack.
func (m *Model) push(kind string) bool {
	def, ok := m.catalog.Find(kind)
	if !ok {
		return false
	}
	tpl, _ := m.catalog.Template(kind)
	tpl.Hooks = panel.HookFuncs{CloseComplete: m.panelClosed}
	p := m.stack.Push(tpl)
	l := uistate.LevelFromDefinition(def)
	p.SetData(l)
	m.syncViewport(l)
	return true
}

func (m *Model) panelClosed(p *panel.Panel, outcome panel.Outcome) {
	if outcome == panel.OutcomeDestroyed && m.animator != nil {
		m.animator.Forget(p.ID())
	}
}

// pop closes the top panel and reveals the one beneath it.
func (m *Model) pop() {
	top := m.stack.Peek()
	if top == nil {
		return
	}
	events.UI.MenuBack(top.Kind(), m.stack.Len()-1)
	m.stack.Pop()
	m.noteLeaving(top)
}

// removeBelow drops the panel directly beneath the top without touching the
// top itself.
func (m *Model) removeBelow() {
	panels := m.stack.Panels()
	if len(panels) < 2 {
		m.setInfo("Nothing beneath this menu")
		return
	}
	below := panels[len(panels)-2]
	m.stack.Remove(below)
	m.setInfo(fmt.Sprintf("Closed %s", below.Title()))
}

// clearAll empties the stack, animating only the top panel away.
func (m *Model) clearAll() {
	top := m.stack.Peek()
	m.stack.Clear()
	m.noteLeaving(top)
}

func (m *Model) noteLeaving(p *panel.Panel) {
	if p != nil && m.stack.IsEmpty() && p.State() == panel.StateClosing {
		m.leaving = p
	}
}

func (m *Model) handleEscapeKey() tea.Cmd {
	m.errMsg = ""
	m.forceClearInfo()
	m.pop()
	return nil
}

func (m *Model) handleEnterKey() tea.Cmd {
	current := m.currentLevel()
	if current == nil {
		return nil
	}
	item, ok := current.Current()
	if !ok {
		return nil
	}
	events.UI.MenuEnter(current.Kind, item.ID, item.Label, current.Filter)
	m.errMsg = ""
	m.forceClearInfo()
	if item.Target != "" {
		if !m.push(item.Target) {
			m.errMsg = fmt.Sprintf("menu %q is not defined", item.Target)
		}
		return nil
	}
	return m.runAction(item, current)
}

func (m *Model) runAction(item menu.Item, current *level) tea.Cmd {
	if item.Action == menu.ActionNone {
		m.setInfo(fmt.Sprintf("Selected %s", item.Label))
		return nil
	}
	events.Action.Run(string(item.Action), current.Kind)
	switch item.Action {
	case menu.ActionBack:
		m.pop()
	case menu.ActionClose:
		m.clearAll()
	case menu.ActionRemoveBelow:
		m.removeBelow()
	case menu.ActionQuit:
		m.quitting = true
		return tea.Quit
	}
	return nil
}

func (m *Model) moveCursor(delta int) {
	if current := m.currentLevel(); current != nil && current.Step(delta) {
		events.UI.MenuCursor(current.Kind, current.Cursor)
		m.syncViewport(current)
	}
}

func (m *Model) moveCursorWith(move func(*level) bool) {
	if current := m.currentLevel(); current != nil && move(current) {
		events.UI.MenuCursor(current.Kind, current.Cursor)
		m.syncViewport(current)
	}
}

func (m *Model) syncViewport(l *level) {
	if l == nil {
		return
	}
	l.EnsureCursorVisible(m.maxVisibleItems())
}

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch keyMsg.String() {
	case "ctrl+c":
		m.quitting = true
		return tea.Quit
	case "esc":
		return m.handleEscapeKey()
	case "enter":
		return m.handleEnterKey()
	case "ctrl+r":
		m.removeBelow()
		return nil
	case "ctrl+x":
		m.clearAll()
		return nil
	}
	if handled, cmd := m.handleTextInput(keyMsg); handled {
		return cmd
	}
	page := m.maxVisibleItems()
	switch keyMsg.String() {
	case "up", "ctrl+p":
		m.moveCursor(-1)
	case "down", "ctrl+n":
		m.moveCursor(1)
	case "pgup":
		m.moveCursorWith(func(l *level) bool { return l.MoveCursorPageUp(page) })
	case "pgdown":
		m.moveCursorWith(func(l *level) bool { return l.MoveCursorPageDown(page) })
	case "home":
		m.moveCursorWith((*level).MoveCursorHome)
	case "end":
		m.moveCursorWith((*level).MoveCursorEnd)
	}
	return nil
}

// currentLevel returns the level of the interactive top panel.
func (m *Model) currentLevel() *level {
	return levelOf(m.stack.Peek())
}

func levelOf(p *panel.Panel) *level {
	if p == nil {
		return nil
	}
	l, _ := p.Data().(*level)
	return l
}
