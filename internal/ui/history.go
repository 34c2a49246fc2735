package ui

import (
	"github.com/atomicstack/menu-stack/internal/session"
)

// History snapshots the stack, bottom first, for the session store.
func (m *Model) History() session.History {
	panels := m.stack.Panels()
	h := session.History{Panels: make([]session.Entry, 0, len(panels))}
	for _, p := range panels {
		entry := session.Entry{Kind: p.Kind()}
		if l := levelOf(p); l != nil {
			entry.Cursor = l.Cursor
			entry.Filter = l.Filter
		}
		h.Panels = append(h.Panels, entry)
	}
	return h
}

// Restore replaces the stack with the panels recorded in h. Entries naming
// menus the catalog no longer defines are skipped. It returns how many
// panels were restored and skipped; nothing changes when none can be
// restored.
func (m *Model) Restore(h session.History) (restored, skipped int) {
	known := make([]session.Entry, 0, len(h.Panels))
	for _, e := range h.Panels {
		if _, ok := m.catalog.Find(e.Kind); ok {
			known = append(known, e)
		} else {
			skipped++
		}
	}
	if len(known) == 0 {
		return 0, skipped
	}
	m.stack.Clear()
	m.leaving = nil
	for _, e := range known {
		m.push(e.Kind)
		l := m.currentLevel()
		if e.Filter != "" {
			l.SetFilter(e.Filter, len([]rune(e.Filter)))
		}
		if e.Cursor >= 0 && e.Cursor < len(l.Items) {
			l.Cursor = e.Cursor
		}
		m.syncViewport(l)
	}
	return len(known), skipped
}
