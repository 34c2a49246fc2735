package events

import "github.com/atomicstack/menu-stack/internal/logging"

type UITracer struct{}

type FilterTracer struct{}

type ActionTracer struct{}

var (
	UI     = UITracer{}
	Filter = FilterTracer{}
	Action = ActionTracer{}
)

func (UITracer) MenuEnter(panelKind, itemID, label, filter string) {
	logging.Trace("menu.enter", map[string]interface{}{
		"panel":  panelKind,
		"item":   itemID,
		"label":  label,
		"filter": filter,
	})
}

func (UITracer) MenuCursor(panelKind string, cursor int) {
	logging.Trace("menu.cursor", map[string]interface{}{"panel": panelKind, "cursor": cursor})
}

func (UITracer) MenuBack(panelKind string, depth int) {
	logging.Trace("menu.back", map[string]interface{}{"panel": panelKind, "depth": depth})
}

func (ActionTracer) Run(action, panelKind string) {
	logging.Trace("action.run", map[string]interface{}{"action": action, "panel": panelKind})
}

func (ActionTracer) Error(err error) {
	if err == nil {
		return
	}
	logging.Trace("action.error", map[string]interface{}{"error": err.Error()})
}

func (FilterTracer) Cleared(panelKind string) {
	logging.Trace("filter.clear", map[string]interface{}{"panel": panelKind})
}

func (FilterTracer) WordBackspace(panelKind, filter string) {
	logging.Trace("filter.word-backspace", map[string]interface{}{"panel": panelKind, "filter": filter})
}

func (FilterTracer) Cursor(panelKind string, pos int) {
	logging.Trace("filter.cursor", map[string]interface{}{"panel": panelKind, "cursor": pos})
}

func (FilterTracer) CursorWord(panelKind string, pos int) {
	logging.Trace("filter.cursor-word", map[string]interface{}{"panel": panelKind, "cursor": pos})
}

func (FilterTracer) Append(panelKind, filter string) {
	logging.Trace("filter.append", map[string]interface{}{"panel": panelKind, "filter": filter})
}

func (FilterTracer) Backspace(panelKind, filter string) {
	logging.Trace("filter.backspace", map[string]interface{}{"panel": panelKind, "filter": filter})
}
