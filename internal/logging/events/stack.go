package events

import "github.com/atomicstack/menu-stack/internal/logging"

type StackTracer struct{}

type PanelTracer struct{}

var (
	Stack = StackTracer{}
	Panel = PanelTracer{}
)

func (StackTracer) Started() {
	logging.Trace("stack.start", nil)
}

func (StackTracer) Ended() {
	logging.Trace("stack.end", nil)
}

func (StackTracer) Push(kind, id string, depth int) {
	logging.Trace("stack.push", map[string]interface{}{"kind": kind, "id": id, "depth": depth})
}

func (StackTracer) Pop(kind, id string, depth int) {
	logging.Trace("stack.pop", map[string]interface{}{"kind": kind, "id": id, "depth": depth})
}

func (StackTracer) PopEmpty() {
	logging.Trace("stack.pop.empty", nil)
}

func (StackTracer) Remove(kind, id string, held, depth int) {
	logging.Trace("stack.remove", map[string]interface{}{"kind": kind, "id": id, "held": held, "depth": depth})
}

func (StackTracer) RemoveMissing(id string) {
	logging.Trace("stack.remove.missing", map[string]interface{}{"id": id})
}

func (StackTracer) Clear(count int) {
	logging.Trace("stack.clear", map[string]interface{}{"count": count})
}

func (PanelTracer) Open(kind, id string, animate bool) {
	logging.Trace("panel.open", map[string]interface{}{"kind": kind, "id": id, "animate": animate})
}

func (PanelTracer) Opened(kind, id string) {
	logging.Trace("panel.opened", map[string]interface{}{"kind": kind, "id": id})
}

func (PanelTracer) Close(kind, id string, destroy, animate bool) {
	logging.Trace("panel.close", map[string]interface{}{"kind": kind, "id": id, "destroy": destroy, "animate": animate})
}

func (PanelTracer) Closed(kind, id, outcome string) {
	logging.Trace("panel.closed", map[string]interface{}{"kind": kind, "id": id, "outcome": outcome})
}

func (PanelTracer) AnimatorMissing(kind, id, transition string) {
	logging.Trace("panel.animator.missing", map[string]interface{}{"kind": kind, "id": id, "transition": transition})
}

func (PanelTracer) Ignored(kind, id, op, state string) {
	logging.Trace("panel.ignored", map[string]interface{}{"kind": kind, "id": id, "op": op, "state": state})
}

func (PanelTracer) Stale(kind, id, transition string) {
	logging.Trace("panel.completion.stale", map[string]interface{}{"kind": kind, "id": id, "transition": transition})
}
