package ui

import (
	"github.com/atomicstack/menu-stack/internal/backend"
	"github.com/atomicstack/menu-stack/internal/logging"
	"github.com/atomicstack/menu-stack/internal/menu"
	tea "github.com/charmbracelet/bubbletea"
)

func waitForCatalogEvent(w *backend.Watcher) tea.Cmd {
	return func() tea.Msg {
		evt, ok := <-w.Events()
		if !ok {
			return catalogDoneMsg{}
		}
		return catalogEventMsg{event: evt}
	}
}

type catalogEventMsg struct {
	event backend.Event
}

type catalogDoneMsg struct{}

func (m *Model) handleCatalogEventMsg(msg tea.Msg) tea.Cmd {
	eventMsg, ok := msg.(catalogEventMsg)
	if !ok {
		return nil
	}
	m.applyCatalogEvent(eventMsg.event)
	if m.watcher != nil {
		return waitForCatalogEvent(m.watcher)
	}
	return nil
}

func (m *Model) handleCatalogDoneMsg(tea.Msg) tea.Cmd {
	m.watcher = nil
	return nil
}

// applyCatalogEvent swaps in a reloaded catalog and refreshes the items of
// every stacked panel whose kind still exists.
func (m *Model) applyCatalogEvent(evt backend.Event) {
	if evt.Err != nil {
		logging.Error(evt.Err)
		m.errMsg = evt.Err.Error()
		return
	}
	if evt.Catalog == nil {
		return
	}
	m.catalog = evt.Catalog
	m.errMsg = ""
	m.refreshPanels(evt.Catalog)
	m.setInfo("Menus reloaded")
}

func (m *Model) refreshPanels(c *menu.Catalog) {
	for _, p := range m.stack.Panels() {
		l := levelOf(p)
		if l == nil {
			continue
		}
		def, ok := c.Find(p.Kind())
		if !ok {
			continue
		}
		l.Title = def.DisplayTitle()
		l.UpdateItems(def.Items)
		m.syncViewport(l)
	}
}
