package probe

// History is an insertion-ordered journal of decoded events. It is bounded:
// once capacity is reached the oldest record is dropped. Capacity <= 0 means
// unbounded growth, which will exhaust memory on long capture sessions.
type History struct {
	capacity int
	events   []DecodedEvent
	ids      []uint64
	nextID   uint64
}

// DefaultHistoryCapacity bounds the journal unless configured otherwise.
const DefaultHistoryCapacity = 1024

// NewHistory returns a journal holding at most capacity events.
func NewHistory(capacity int) *History {
	return &History{capacity: capacity}
}

// Append records an event and returns its record ID. IDs are monotonic for
// the life of the journal and survive Clear.
func (h *History) Append(event DecodedEvent) uint64 {
	id := h.nextID
	h.nextID++
	h.events = append(h.events, event)
	h.ids = append(h.ids, id)
	if h.capacity > 0 && len(h.events) > h.capacity {
		drop := len(h.events) - h.capacity
		h.events = append(h.events[:0], h.events[drop:]...)
		h.ids = append(h.ids[:0], h.ids[drop:]...)
	}
	return id
}

// Len returns the number of retained events.
func (h *History) Len() int {
	return len(h.events)
}

// Events returns the retained events in insertion order. The slice is a
// snapshot; appending to the journal does not disturb it.
func (h *History) Events() []DecodedEvent {
	out := make([]DecodedEvent, len(h.events))
	copy(out, h.events)
	return out
}

// IDs returns the record IDs matching Events, in the same order.
func (h *History) IDs() []uint64 {
	out := make([]uint64, len(h.ids))
	copy(out, h.ids)
	return out
}

// Last returns the most recent event, if any.
func (h *History) Last() (DecodedEvent, bool) {
	if len(h.events) == 0 {
		return DecodedEvent{}, false
	}
	return h.events[len(h.events)-1], true
}

// Clear empties the journal unconditionally.
func (h *History) Clear() {
	h.events = nil
	h.ids = nil
}
