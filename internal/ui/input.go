package ui

import (
	"unicode"

	"github.com/atomicstack/menu-stack/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const filterPlaceholder = "(type to filter)"

func (m *Model) updateFilterCursorModel(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.filterCursor, cmd = m.filterCursor.Update(msg)
	return cmd
}

// cursorMoves are filter keys that only move the caret.
var cursorMoves = map[string]struct {
	move func(*level) bool
	word bool
}{
	"ctrl+a": {move: (*level).MoveFilterCursorStart},
	"ctrl+e": {move: (*level).MoveFilterCursorEnd},
	"alt+b":  {move: (*level).MoveFilterCursorWordBackward, word: true},
	"alt+f":  {move: (*level).MoveFilterCursorWordForward, word: true},
	"left":   {move: (*level).MoveFilterCursorRuneBackward},
	"right":  {move: (*level).MoveFilterCursorRuneForward},
}

func (m *Model) handleTextInput(msg tea.KeyMsg) (bool, tea.Cmd) {
	current := m.currentLevel()
	if current == nil {
		return false, nil
	}
	key := msg.String()
	if op, ok := cursorMoves[key]; ok {
		if !op.move(current) {
			return false, nil
		}
		m.filterCursorDirty = true
		if op.word {
			events.Filter.CursorWord(current.Kind, current.FilterCursor)
		} else {
			events.Filter.Cursor(current.Kind, current.FilterCursor)
		}
		return true, nil
	}
	switch key {
	case "ctrl+u":
		if !current.ClearFilter() {
			return false, nil
		}
		events.Filter.Cleared(current.Kind)
		return m.filterEdited(current), nil
	case "ctrl+w":
		if !current.DeleteFilterWordBackward() {
			return false, nil
		}
		events.Filter.WordBackspace(current.Kind, current.Filter)
		return m.filterEdited(current), nil
	}
	switch msg.Type {
	case tea.KeyBackspace, tea.KeyCtrlH:
		if !current.DeleteFilterRuneBackward() {
			return false, nil
		}
		events.Filter.Backspace(current.Kind, current.Filter)
		return m.filterEdited(current), nil
	case tea.KeySpace:
		return m.appendToFilter(current, " "), nil
	case tea.KeyRunes:
		if msg.Alt || len(msg.Runes) == 0 {
			return false, nil
		}
		for _, r := range msg.Runes {
			if unicode.IsControl(r) {
				return false, nil
			}
		}
		return m.appendToFilter(current, string(msg.Runes)), nil
	}
	return false, nil
}

func (m *Model) appendToFilter(current *level, text string) bool {
	if !current.InsertFilterText(text) {
		return false
	}
	events.Filter.Append(current.Kind, current.Filter)
	return m.filterEdited(current)
}

func (m *Model) filterEdited(current *level) bool {
	m.filterCursorDirty = true
	m.forceClearInfo()
	m.errMsg = ""
	m.syncViewport(current)
	return true
}

// filterPrompt renders the filter line with the caret in place.
func (m *Model) filterPrompt() string {
	prompt := "» "
	if styles.FilterPrompt != nil {
		prompt = styles.FilterPrompt.Render(prompt)
	}
	current := m.currentLevel()
	if current == nil {
		return prompt
	}
	if current.Filter == "" {
		runes := []rune(filterPlaceholder)
		return prompt + m.renderFilterCursor(string(runes[0]), styles.FilterPlaceholder) +
			render(styles.FilterPlaceholder, string(runes[1:]))
	}
	runes := []rune(current.Filter)
	pos := current.FilterCursorPos()
	caret, after := " ", ""
	if pos < len(runes) {
		caret = string(runes[pos])
		after = string(runes[pos+1:])
	}
	return prompt + render(styles.Filter, string(runes[:pos])) +
		m.renderFilterCursor(caret, styles.Filter) + render(styles.Filter, after)
}

func (m *Model) renderFilterCursor(char string, text *lipgloss.Style) string {
	base := lipgloss.NewStyle()
	if text != nil {
		base = text.Copy()
	}
	base = base.Inline(true)
	if m.filterCursor.Blink {
		return base.Render(char)
	}
	if styles.Cursor != nil {
		return base.Inherit(styles.Cursor.Copy().Inline(true)).Blink(false).Render(char)
	}
	return base.Reverse(true).Render(char)
}

func render(style *lipgloss.Style, value string) string {
	if style == nil || value == "" {
		return value
	}
	return style.Render(value)
}
