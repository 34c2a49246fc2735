package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestHandleTextInputAppendsRunes(t *testing.T) {
	m := NewModel(Options{})
	handled, _ := m.handleTextInput(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("set")})
	if !handled {
		t.Fatalf("expected key press to be handled")
	}
	current := m.currentLevel()
	if current.Filter != "set" {
		t.Fatalf("expected filter 'set', got %q", current.Filter)
	}
	if pos := current.FilterCursorPos(); pos != 3 {
		t.Fatalf("expected cursor at end, got %d", pos)
	}
	if item, _ := current.Current(); item.ID != "settings" {
		t.Fatalf("expected cursor on settings, got %q", item.ID)
	}
}

func TestHandleTextInputIgnoresAltRunes(t *testing.T) {
	m := NewModel(Options{})
	if handled, _ := m.handleTextInput(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x"), Alt: true}); handled {
		t.Fatalf("expected alt+x to be ignored")
	}
}

func TestHandleTextInputCursorMovement(t *testing.T) {
	m := NewModel(Options{})
	current := m.currentLevel()
	current.SetFilter("ab cd", 5)

	if handled, _ := m.handleTextInput(tea.KeyMsg{Type: tea.KeyLeft}); !handled {
		t.Fatalf("expected left arrow to be handled")
	}
	if pos := current.FilterCursorPos(); pos != 4 {
		t.Fatalf("expected cursor at 4 after left, got %d", pos)
	}
	if handled, _ := m.handleTextInput(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("b"), Alt: true}); !handled {
		t.Fatalf("expected alt+b to be handled")
	}
	if pos := current.FilterCursorPos(); pos != 3 {
		t.Fatalf("expected cursor at word start 3, got %d", pos)
	}
	if handled, _ := m.handleTextInput(tea.KeyMsg{Type: tea.KeyCtrlE}); !handled {
		t.Fatalf("expected ctrl+e to be handled")
	}
	if pos := current.FilterCursorPos(); pos != 5 {
		t.Fatalf("expected cursor at end, got %d", pos)
	}
	if handled, _ := m.handleTextInput(tea.KeyMsg{Type: tea.KeyRight}); handled {
		t.Fatalf("expected right arrow at end to fall through")
	}
}

func TestHandleTextInputEditing(t *testing.T) {
	m := NewModel(Options{})
	current := m.currentLevel()
	current.SetFilter("ab cd", 5)

	m.handleTextInput(tea.KeyMsg{Type: tea.KeyCtrlW})
	if current.Filter != "ab " {
		t.Fatalf("expected word removed, got %q", current.Filter)
	}
	m.handleTextInput(tea.KeyMsg{Type: tea.KeyBackspace})
	if current.Filter != "ab" {
		t.Fatalf("expected rune removed, got %q", current.Filter)
	}
	m.handleTextInput(tea.KeyMsg{Type: tea.KeySpace})
	if current.Filter != "ab " {
		t.Fatalf("expected space appended, got %q", current.Filter)
	}
	if handled, _ := m.handleTextInput(tea.KeyMsg{Type: tea.KeyCtrlU}); !handled {
		t.Fatalf("expected ctrl+u to clear")
	}
	if current.Filter != "" || len(current.Items) != len(current.Full) {
		t.Fatalf("expected filter cleared, got %q", current.Filter)
	}
	if handled, _ := m.handleTextInput(tea.KeyMsg{Type: tea.KeyCtrlU}); handled {
		t.Fatalf("expected ctrl+u on empty filter to fall through")
	}
}

func TestFilterPromptPlaceholder(t *testing.T) {
	m := NewModel(Options{})
	if prompt := m.filterPrompt(); !strings.Contains(prompt, "type to filter") {
		t.Fatalf("expected placeholder in prompt, got %q", prompt)
	}
	m.currentLevel().SetFilter("vid", 3)
	if prompt := m.filterPrompt(); !strings.Contains(prompt, "vid") {
		t.Fatalf("expected query in prompt, got %q", prompt)
	}
}
