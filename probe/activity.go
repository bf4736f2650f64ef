package probe

import (
	"fmt"
	"sort"

	"github.com/EMATech/midiexplorer/midi"
)

// Key identifies one monitored category: a message kind, a channel, or a
// controller number.
type Key string

const (
	// KeyChannelVoice is active while any channel-scoped message arrives.
	KeyChannelVoice Key = "c"
	// KeySystem is active while any channel-less message arrives.
	KeySystem Key = "s"
)

// ChannelKey returns the activity key for a zero-based channel.
func ChannelKey(channel uint8) Key {
	return Key(fmt.Sprintf("ch_%d", channel))
}

// ControllerKey returns the activity key for a controller number.
func ControllerKey(controller uint8) Key {
	return Key(fmt.Sprintf("cc_%d", controller))
}

// TypeKey returns the activity key for a message type.
func TypeKey(t midi.MessageType) Key {
	return Key(t.String())
}

// Tracker records, per category, the instant until which the category counts
// as active, plus the set of notes currently held down. It carries no
// synchronization: it is only touched from the consumer goroutine.
type Tracker struct {
	activeUntil map[Key]float64
	held        map[uint8]struct{}
}

// NewTracker returns an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{
		activeUntil: make(map[Key]float64),
		held:        make(map[uint8]struct{}),
	}
}

// Mark extends the category's activity window to the given instant.
func (t *Tracker) Mark(key Key, until float64) {
	t.activeUntil[key] = until
}

// ActiveAt reports whether the category is active at the given instant.
// The boundary is exclusive: a category whose window ends exactly at now is
// no longer active.
func (t *Tracker) ActiveAt(key Key, now float64) bool {
	return t.activeUntil[key] > now
}

// NoteOn records a held note.
func (t *Tracker) NoteOn(note uint8) {
	t.held[note] = struct{}{}
}

// NoteOff releases a held note.
func (t *Tracker) NoteOff(note uint8) {
	delete(t.held, note)
}

// HeldNotes returns the notes currently down, ascending.
func (t *Tracker) HeldNotes() []uint8 {
	notes := make([]uint8, 0, len(t.held))
	for n := range t.held {
		notes = append(notes, n)
	}
	sort.Slice(notes, func(i, j int) bool { return notes[i] < notes[j] })
	return notes
}

// Held reports whether a note is currently down.
func (t *Tracker) Held(note uint8) bool {
	_, ok := t.held[note]
	return ok
}

// Clear resets all activity windows and held notes.
func (t *Tracker) Clear() {
	t.activeUntil = make(map[Key]float64)
	t.held = make(map[uint8]struct{})
}
