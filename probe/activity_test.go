package probe

import "testing"

func TestActivityExpiryIsExclusive(t *testing.T) {
	tracker := NewTracker()
	tracker.Mark(KeySystem, 1.0)

	if !tracker.ActiveAt(KeySystem, 0.999) {
		t.Fatalf("expected active just before expiry")
	}
	if tracker.ActiveAt(KeySystem, 1.0) {
		t.Fatalf("expected inactive exactly at expiry")
	}
	if tracker.ActiveAt(KeySystem, 1.001) {
		t.Fatalf("expected inactive after expiry")
	}
}

func TestActivityUnknownKeyIdle(t *testing.T) {
	tracker := NewTracker()
	if tracker.ActiveAt(ChannelKey(3), 0) {
		t.Fatalf("unmarked key must be idle")
	}
}

func TestActivityKeys(t *testing.T) {
	if ChannelKey(0) != "ch_0" || ChannelKey(15) != "ch_15" {
		t.Fatalf("unexpected channel keys %q %q", ChannelKey(0), ChannelKey(15))
	}
	if ControllerKey(64) != "cc_64" {
		t.Fatalf("unexpected controller key %q", ControllerKey(64))
	}
}

func TestActivityClear(t *testing.T) {
	tracker := NewTracker()
	tracker.Mark(KeyChannelVoice, 10)
	tracker.NoteOn(60)

	tracker.Clear()

	if tracker.ActiveAt(KeyChannelVoice, 0) {
		t.Fatalf("expected all activity cleared")
	}
	if tracker.Held(60) {
		t.Fatalf("expected held notes cleared")
	}
}

func TestHeldNotesSorted(t *testing.T) {
	tracker := NewTracker()
	tracker.NoteOn(64)
	tracker.NoteOn(60)
	tracker.NoteOn(67)
	tracker.NoteOff(64)

	held := tracker.HeldNotes()
	if len(held) != 2 || held[0] != 60 || held[1] != 67 {
		t.Fatalf("unexpected held notes %v", held)
	}
}
