package probe

import (
	"testing"
	"time"

	"github.com/EMATech/midiexplorer/midi"
)

func testClock(at *time.Time) *Clock {
	return NewClockAt(func() time.Time { return *at })
}

func newTestDecoder(settings *Settings) (*Decoder, *Tracker, *time.Time) {
	now := time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)
	tracker := NewTracker()
	decoder := NewDecoder(settings, tracker, testClock(&now), nil)
	return decoder, tracker, &now
}

func noteOn(channel, note, velocity uint8) midi.RawEvent {
	return midi.RawEvent{
		Type:     midi.NoteOn,
		Channel:  channel,
		Note:     note,
		Velocity: velocity,
		Bytes:    []byte{0x90 | channel, note, velocity},
	}
}

func TestZeroVelocityNoteOnMarksNoteOff(t *testing.T) {
	decoder, tracker, _ := newTestDecoder(DefaultSettings())

	event := decoder.Decode(noteOn(0, 60, 0), "in", 0)

	if !tracker.ActiveAt(TypeKey(midi.NoteOff), 0) {
		t.Fatalf("expected note_off active")
	}
	if tracker.ActiveAt(TypeKey(midi.NoteOn), 0) {
		t.Fatalf("expected note_on inactive")
	}
	// The decoded label is unaffected by the activity policy.
	if event.StatusLabel != "Note On" {
		t.Fatalf("unexpected status label %q", event.StatusLabel)
	}
}

func TestZeroVelocityPolicyDisabled(t *testing.T) {
	settings := DefaultSettings()
	settings.ZeroVelocityNoteOnIsNoteOff = false
	decoder, tracker, _ := newTestDecoder(settings)

	decoder.Decode(noteOn(0, 60, 0), "in", 0)

	if !tracker.ActiveAt(TypeKey(midi.NoteOn), 0) {
		t.Fatalf("expected note_on active with policy off")
	}
	if tracker.ActiveAt(TypeKey(midi.NoteOff), 0) {
		t.Fatalf("expected note_off inactive with policy off")
	}
}

func TestChannelLabels(t *testing.T) {
	decoder, tracker, _ := newTestDecoder(DefaultSettings())

	event := decoder.Decode(noteOn(4, 60, 100), "in", 0)
	if event.ChannelLabel != "5" {
		t.Fatalf("expected 1-based channel label 5, got %q", event.ChannelLabel)
	}
	if !tracker.ActiveAt(KeyChannelVoice, 0) {
		t.Fatalf("expected channel-voice kind active")
	}
	if !tracker.ActiveAt(ChannelKey(4), 0) {
		t.Fatalf("expected channel 4 active")
	}

	event = decoder.Decode(midi.RawEvent{Type: midi.Clock, Bytes: []byte{0xF8}}, "in", 0)
	if event.ChannelLabel != GlobalChannelLabel {
		t.Fatalf("expected Global label for clock, got %q", event.ChannelLabel)
	}
	if !tracker.ActiveAt(KeySystem, 0) {
		t.Fatalf("expected system kind active")
	}
}

func TestControlChangeDecoding(t *testing.T) {
	decoder, tracker, _ := newTestDecoder(DefaultSettings())

	event := decoder.Decode(midi.RawEvent{
		Type:       midi.ControlChange,
		Channel:    2,
		Controller: 7,
		Value:      99,
		Bytes:      []byte{0xB2, 7, 99},
	}, "in", 0)

	if event.Data0.Name != "Controller" || event.Data0.Value != 7 {
		t.Fatalf("unexpected data0 %+v", event.Data0)
	}
	if event.Data0.Alias != "Channel Volume" {
		t.Fatalf("expected controller alias, got %q", event.Data0.Alias)
	}
	if event.Data1.Value != 99 {
		t.Fatalf("unexpected data1 %+v", event.Data1)
	}
	if !tracker.ActiveAt(ControllerKey(7), 0) {
		t.Fatalf("expected controller 7 active")
	}
	if tracker.ActiveAt(ControllerKey(8), 0) {
		t.Fatalf("controller 8 should be idle")
	}
}

func TestNoteDecodingAlias(t *testing.T) {
	decoder, _, _ := newTestDecoder(DefaultSettings())

	event := decoder.Decode(noteOn(0, 69, 100), "in", 0)
	if event.Data0.Alias != "A4" {
		t.Fatalf("expected A4 alias, got %q", event.Data0.Alias)
	}
	if event.Data1.Name != "Velocity" || event.Data1.Value != 100 {
		t.Fatalf("unexpected velocity field %+v", event.Data1)
	}
	if event.RawHex != "90 45 64" {
		t.Fatalf("unexpected raw hex %q", event.RawHex)
	}
	if event.RawBinary != "10010000 01000101 01100100" {
		t.Fatalf("unexpected raw binary %q", event.RawBinary)
	}
}

func TestFirstEventDelta(t *testing.T) {
	decoder, _, _ := newTestDecoder(DefaultSettings())

	event := decoder.Decode(noteOn(0, 60, 100), "in", 1.5)
	if event.DeltaMs != 0.32 {
		t.Fatalf("expected minimum turnaround delta 0.32, got %v", event.DeltaMs)
	}
}

func TestHostClockDelta(t *testing.T) {
	decoder, _, _ := newTestDecoder(DefaultSettings())

	decoder.Decode(noteOn(0, 60, 100), "in", 1.0)
	event := decoder.Decode(noteOn(0, 60, 0), "in", 1.25)
	if event.DeltaMs != 250 {
		t.Fatalf("expected 250ms delta, got %v", event.DeltaMs)
	}
}

func TestDeviceDeltaPreferred(t *testing.T) {
	decoder, _, _ := newTestDecoder(DefaultSettings())

	decoder.Decode(noteOn(0, 60, 100), "in", 1.0)
	raw := noteOn(0, 62, 100)
	device := 0.005
	raw.DeviceDelta = &device
	event := decoder.Decode(raw, "in", 3.0)
	if event.DeltaMs != 5 {
		t.Fatalf("expected transport-reported 5ms delta, got %v", event.DeltaMs)
	}
}

func TestDeltaPerSource(t *testing.T) {
	decoder, _, _ := newTestDecoder(DefaultSettings())

	decoder.Decode(noteOn(0, 60, 100), "a", 1.0)
	event := decoder.Decode(noteOn(0, 60, 100), "b", 2.0)
	if event.DeltaMs != 0.32 {
		t.Fatalf("expected first-event delta for new source, got %v", event.DeltaMs)
	}
	event = decoder.Decode(noteOn(0, 62, 100), "a", 2.5)
	if event.DeltaMs != 1500 {
		t.Fatalf("expected per-source delta 1500ms, got %v", event.DeltaMs)
	}
}

func TestDeltaLegacySharedClock(t *testing.T) {
	settings := DefaultSettings()
	settings.LegacySharedClock = true
	decoder, _, _ := newTestDecoder(settings)

	decoder.Decode(noteOn(0, 60, 100), "a", 1.0)
	event := decoder.Decode(noteOn(0, 60, 100), "b", 2.0)
	if event.DeltaMs != 1000 {
		t.Fatalf("expected shared-clock delta 1000ms, got %v", event.DeltaMs)
	}
}

func TestDeltaNeverNegative(t *testing.T) {
	decoder, _, _ := newTestDecoder(DefaultSettings())

	decoder.Decode(noteOn(0, 60, 100), "in", 2.0)
	event := decoder.Decode(noteOn(0, 60, 100), "in", 1.0)
	if event.DeltaMs != 0 {
		t.Fatalf("expected clamped zero delta, got %v", event.DeltaMs)
	}
}

func TestUnknownTypeDecodesEmpty(t *testing.T) {
	decoder, _, _ := newTestDecoder(DefaultSettings())

	event := decoder.Decode(midi.RawEvent{Type: midi.Unknown, Bytes: []byte{0x00}}, "in", 0)
	if event.Data0.Present || event.Data1.Present {
		t.Fatalf("expected empty payload fields, got %+v %+v", event.Data0, event.Data1)
	}
	if event.SysEx != nil {
		t.Fatalf("unexpected sysex decoding")
	}
	if event.ChannelLabel != GlobalChannelLabel {
		t.Fatalf("unexpected channel label %q", event.ChannelLabel)
	}
}

func TestHeldNotes(t *testing.T) {
	decoder, tracker, _ := newTestDecoder(DefaultSettings())

	decoder.Decode(noteOn(0, 60, 100), "in", 0)
	decoder.Decode(noteOn(0, 64, 100), "in", 0)
	if !tracker.Held(60) || !tracker.Held(64) {
		t.Fatalf("expected notes 60 and 64 held")
	}

	// Zero-velocity note-on releases under the default policy.
	decoder.Decode(noteOn(0, 60, 0), "in", 0)
	if tracker.Held(60) {
		t.Fatalf("expected note 60 released")
	}
	held := tracker.HeldNotes()
	if len(held) != 1 || held[0] != 64 {
		t.Fatalf("unexpected held notes %v", held)
	}
}

func TestBlinkDurationZeroNeverActive(t *testing.T) {
	settings := DefaultSettings()
	settings.BlinkDuration = 0
	decoder, tracker, _ := newTestDecoder(settings)

	decoder.Decode(noteOn(0, 60, 100), "in", 0)
	if tracker.ActiveAt(TypeKey(midi.NoteOn), 0) {
		t.Fatalf("zero persistence must not blink")
	}
}
