package scroll

// EventType selects which subscribers receive an Event.
type EventType int

const (
	EventScroll  EventType = iota // the eased position moved this update
	EventSettled                  // a glide reached its target
)

// Event describes the scroll state after an update.
type Event struct {
	Type      EventType
	Scroll    float64 // current eased position in page pixels
	Velocity  float64 // pixels moved this update; positive scrolls down
	Direction int     // -1, 0 or 1
	Progress  float64 // Scroll / limit, 0 when the page does not scroll
}

// Handler receives events synchronously from Smooth.Update.
type Handler func(Event)

// EventBus fans scroll events out to subscribers in registration order.
// It is not safe for concurrent use; the frame loop owns it.
type EventBus struct {
	subs map[EventType][]Handler
}

func NewEventBus() *EventBus {
	return &EventBus{subs: make(map[EventType][]Handler)}
}

// Subscribe registers fn for events of type t.
func (b *EventBus) Subscribe(t EventType, fn Handler) {
	b.subs[t] = append(b.subs[t], fn)
}

// Emit calls every subscriber of e.Type before returning.
func (b *EventBus) Emit(e Event) {
	for _, fn := range b.subs[e.Type] {
		fn(e)
	}
}
