package navstack

import "fmt"

// Event identifies a stack lifecycle notification.
type Event int

const (
	EventStackStarted Event = iota
	EventStackEnded
	EventPanelAdded
	EventPanelRemoved
)

func (e Event) String() string {
	switch e {
	case EventStackStarted:
		return "stack-started"
	case EventStackEnded:
		return "stack-ended"
	case EventPanelAdded:
		return "panel-added"
	case EventPanelRemoved:
		return "panel-removed"
	default:
		return fmt.Sprintf("Event(%d)", int(e))
	}
}

type subscriber struct {
	id uint64
	fn func()
}

type observers map[Event][]subscriber

// Subscribe registers fn for evt. The returned function removes the
// registration and is safe to call more than once.
func (s *Stack) Subscribe(evt Event, fn func()) (unsubscribe func()) {
	if fn == nil {
		return func() {}
	}
	s.nextSubscriber++
	id := s.nextSubscriber
	s.observers[evt] = append(s.observers[evt], subscriber{id: id, fn: fn})
	return func() {
		subs := s.observers[evt]
		for i, sub := range subs {
			if sub.id == id {
				s.observers[evt] = append(subs[:i:i], subs[i+1:]...)
				return
			}
		}
	}
}

func (o observers) notify(evt Event) {
	subs := o[evt]
	if len(subs) == 0 {
		return
	}
	snapshot := make([]subscriber, len(subs))
	copy(snapshot, subs)
	for _, sub := range snapshot {
		sub.fn()
	}
}
