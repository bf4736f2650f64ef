package probe

import (
	"go.uber.org/zap"

	"github.com/EMATech/midiexplorer/midi"
)

// GlobalChannelLabel is the channel column value for channel-less messages.
const GlobalChannelLabel = "Global"

// minTurnaroundMs is the wire time of a single MIDI byte at 31250 baud
// (10 symbols), used as the delta for the first event of a session.
const minTurnaroundMs = 0.32

// DataField is one interpreted payload value of a decoded event.
type DataField struct {
	Present bool
	Name    string // semantic name, empty for unnamed payload bytes
	Value   int
	Alias   string // decoded rendering (note name, controller name)
	Bytes   []byte // set instead of Value for sysex payloads
}

// Display returns the preferred rendering: alias when decoded, raw value
// otherwise.
func (f DataField) Display() string {
	if !f.Present {
		return ""
	}
	if f.Alias != "" {
		return f.Alias
	}
	if f.Bytes != nil {
		return HexString(f.Bytes)
	}
	return itoa(f.Value)
}

// DecodedEvent is the fully interpreted form of one captured message.
// It is never mutated after Decode returns it.
type DecodedEvent struct {
	Timestamp    float64 // capture time, seconds since the session epoch
	Source       string  // originating port
	DeltaMs      float64
	RawHex       string
	RawBinary    string
	StatusLabel  string
	ChannelLabel string
	Data0        DataField
	Data1        DataField
	SysEx        *SysExDecoding // non-nil iff the message type is sysex
}

// Settings are the live-tunable decode policies. The presentation layer
// mutates them between ticks; the decoder only reads them.
type Settings struct {
	// BlinkDuration is how long a category stays highlighted, in seconds.
	BlinkDuration float64
	// ZeroVelocityNoteOnIsNoteOff treats a velocity-0 note-on as a note-off
	// for activity purposes, per the MIDI specification. The decoded status
	// label is unaffected.
	ZeroVelocityNoteOnIsNoteOff bool
	// LegacySharedClock computes deltas against a single clock shared by all
	// sources. Off, deltas are per source.
	LegacySharedClock bool
}

// DefaultSettings returns the recommended decode policies.
func DefaultSettings() *Settings {
	return &Settings{
		BlinkDuration:               0.25,
		ZeroVelocityNoteOnIsNoteOff: true,
	}
}

// Decoder turns raw events into DecodedEvents and drives the activity
// tracker. It holds all decode state explicitly so independent sessions can
// coexist; it carries no locking and must only be used from one goroutine.
type Decoder struct {
	settings *Settings
	tracker  *Tracker
	clock    *Clock
	log      *zap.Logger

	prevBySource map[string]float64
	prevShared   float64
	hasShared    bool
}

// NewDecoder wires a decoder to its tracker and clock.
func NewDecoder(settings *Settings, tracker *Tracker, clock *Clock, log *zap.Logger) *Decoder {
	if log == nil {
		log = zap.NewNop()
	}
	return &Decoder{
		settings:     settings,
		tracker:      tracker,
		clock:        clock,
		log:          log,
		prevBySource: make(map[string]float64),
	}
}

// Decode classifies one raw event captured at timestamp (session seconds)
// from the named source. It never fails: malformed input decodes to empty or
// "Undefined" fields.
func (d *Decoder) Decode(raw midi.RawEvent, source string, timestamp float64) DecodedEvent {
	event := DecodedEvent{
		Timestamp:    timestamp,
		Source:       source,
		DeltaMs:      d.deltaMs(source, timestamp, raw.DeviceDelta),
		RawHex:       HexString(raw.Bytes),
		RawBinary:    BinString(raw.Bytes),
		StatusLabel:  midi.StatusLabel(raw.Type),
		ChannelLabel: GlobalChannelLabel,
	}
	if raw.Type.HasChannel() {
		event.ChannelLabel = itoa(int(raw.Channel) + 1)
	}

	switch raw.Type {
	case midi.NoteOn, midi.NoteOff:
		event.Data0 = DataField{Present: true, Name: "Note", Value: int(raw.Note), Alias: midi.NoteName(raw.Note)}
		event.Data1 = DataField{Present: true, Name: "Velocity", Value: int(raw.Velocity)}
	case midi.PolyTouch:
		event.Data0 = DataField{Present: true, Value: int(raw.Note), Alias: midi.NoteName(raw.Note)}
		event.Data1 = DataField{Present: true, Value: int(raw.Value)}
	case midi.ControlChange:
		event.Data0 = DataField{Present: true, Name: "Controller", Value: int(raw.Controller), Alias: midi.ControllerName(raw.Controller)}
		event.Data1 = DataField{Present: true, Name: "Value", Value: int(raw.Value)}
	case midi.ProgramChange:
		event.Data0 = DataField{Present: true, Name: "Program", Value: int(raw.Program)}
	case midi.AfterTouch:
		event.Data0 = DataField{Present: true, Name: "Value", Value: int(raw.Value)}
	case midi.PitchWheel:
		event.Data0 = DataField{Present: true, Name: "Pitch", Value: int(raw.Pitch)}
	case midi.SysEx:
		event.Data0 = DataField{Present: true, Name: "Data", Bytes: raw.Data}
		event.SysEx = d.decodeSysEx(raw.Data)
	case midi.QuarterFrame:
		event.Data0 = DataField{Present: true, Name: "Frame type", Value: int(raw.FrameType)}
		event.Data1 = DataField{Present: true, Name: "Frame value", Value: int(raw.FrameValue)}
	case midi.SongPos:
		event.Data0 = DataField{Present: true, Name: "Position Pointer", Value: int(raw.Pos)}
	case midi.SongSelect:
		event.Data0 = DataField{Present: true, Name: "Song #", Value: int(raw.Song)}
	}

	d.markActivity(raw)
	return event
}

// markActivity lights the categories matching the event for the configured
// blink duration.
func (d *Decoder) markActivity(raw midi.RawEvent) {
	now := d.clock.Now()
	until := now + d.settings.BlinkDuration

	asNoteOff := d.settings.ZeroVelocityNoteOnIsNoteOff && raw.IsZeroVelocityNoteOn()

	typeKey := TypeKey(raw.Type)
	if asNoteOff {
		typeKey = TypeKey(midi.NoteOff)
	}
	d.tracker.Mark(typeKey, until)

	if raw.Type.HasChannel() {
		d.tracker.Mark(KeyChannelVoice, until)
		d.tracker.Mark(ChannelKey(raw.Channel), until)
	} else {
		d.tracker.Mark(KeySystem, until)
	}

	if raw.Type == midi.ControlChange {
		d.tracker.Mark(ControllerKey(raw.Controller), until)
	}

	switch raw.Type {
	case midi.NoteOn:
		if asNoteOff {
			d.tracker.NoteOff(raw.Note)
		} else {
			d.tracker.NoteOn(raw.Note)
		}
	case midi.NoteOff:
		d.tracker.NoteOff(raw.Note)
	}
}

// deltaMs derives the inter-message delta. Transport-reported deltas win;
// otherwise the previous capture timestamp is used. The first event of a
// session gets the minimum wire turnaround time.
func (d *Decoder) deltaMs(source string, timestamp float64, deviceDelta *float64) float64 {
	prev, known := d.previous(source)
	d.remember(source, timestamp)

	if deviceDelta != nil {
		d.log.Debug("timing: using transport time delta", zap.Float64("delta", *deviceDelta))
		return *deviceDelta * 1000
	}
	if !known {
		return minTurnaroundMs
	}
	delta := (timestamp - prev) * 1000
	if delta < 0 {
		delta = 0
	}
	return delta
}

func (d *Decoder) previous(source string) (float64, bool) {
	if d.settings.LegacySharedClock {
		return d.prevShared, d.hasShared
	}
	prev, ok := d.prevBySource[source]
	return prev, ok
}

// remember updates both clocks unconditionally so toggling the legacy mode
// mid-session stays coherent.
func (d *Decoder) remember(source string, timestamp float64) {
	d.prevShared = timestamp
	d.hasShared = true
	d.prevBySource[source] = timestamp
}
