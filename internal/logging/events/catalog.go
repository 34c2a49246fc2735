package events

import "github.com/atomicstack/menu-stack/internal/logging"

type CatalogTracer struct{}

type SessionTracer struct{}

var (
	Catalog = CatalogTracer{}
	Session = SessionTracer{}
)

func (CatalogTracer) Load(path string, menus int) {
	logging.Trace("catalog.load", map[string]interface{}{"path": path, "menus": menus})
}

func (CatalogTracer) Reload(path string, menus int) {
	logging.Trace("catalog.reload", map[string]interface{}{"path": path, "menus": menus})
}

func (CatalogTracer) Error(path string, err error) {
	if err == nil {
		return
	}
	logging.Trace("catalog.error", map[string]interface{}{"path": path, "error": err.Error()})
}

func (SessionTracer) Save(path string, panels int) {
	logging.Trace("session.save", map[string]interface{}{"path": path, "panels": panels})
}

func (SessionTracer) Restore(path string, panels, skipped int) {
	logging.Trace("session.restore", map[string]interface{}{"path": path, "panels": panels, "skipped": skipped})
}
