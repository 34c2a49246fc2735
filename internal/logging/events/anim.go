package events

import "github.com/atomicstack/menu-stack/internal/logging"

type AnimTracer struct{}

var Anim = AnimTracer{}

func (AnimTracer) Play(id, transition string, from, to float64) {
	logging.Trace("anim.play", map[string]interface{}{"id": id, "transition": transition, "from": from, "to": to})
}

func (AnimTracer) Settle(id, transition string, frames int) {
	logging.Trace("anim.settle", map[string]interface{}{"id": id, "transition": transition, "frames": frames})
}

func (AnimTracer) Budget(id, transition string, frames int) {
	logging.Trace("anim.budget", map[string]interface{}{"id": id, "transition": transition, "frames": frames})
}
