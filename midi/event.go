package midi

// MessageType is the closed set of MIDI 1.0 message types.
type MessageType uint8

const (
	NoteOff MessageType = iota
	NoteOn
	PolyTouch
	ControlChange
	ProgramChange
	AfterTouch
	PitchWheel
	SysEx
	QuarterFrame
	SongPos
	SongSelect
	TuneRequest
	EndOfExclusive
	Clock
	Start
	Continue
	Stop
	ActiveSensing
	Reset
	Unknown
)

// typeNames are the stable identifiers used for activity keys and logs.
var typeNames = map[MessageType]string{
	NoteOff:        "note_off",
	NoteOn:         "note_on",
	PolyTouch:      "polytouch",
	ControlChange:  "control_change",
	ProgramChange:  "program_change",
	AfterTouch:     "aftertouch",
	PitchWheel:     "pitchwheel",
	SysEx:          "sysex",
	QuarterFrame:   "quarter_frame",
	SongPos:        "songpos",
	SongSelect:     "song_select",
	TuneRequest:    "tune_request",
	EndOfExclusive: "end_of_exclusive",
	Clock:          "clock",
	Start:          "start",
	Continue:       "continue",
	Stop:           "stop",
	ActiveSensing:  "active_sensing",
	Reset:          "reset",
	Unknown:        "unknown",
}

func (t MessageType) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "unknown"
}

// HasChannel reports whether the type carries a channel nibble.
func (t MessageType) HasChannel() bool {
	switch t {
	case NoteOff, NoteOn, PolyTouch, ControlChange, ProgramChange, AfterTouch, PitchWheel:
		return true
	}
	return false
}

// StatusByte returns the base status byte for the type, without the channel
// nibble for channel-scoped types. Unknown types map to 0.
func (t MessageType) StatusByte() uint8 {
	switch t {
	case NoteOff:
		return 0x80
	case NoteOn:
		return 0x90
	case PolyTouch:
		return 0xA0
	case ControlChange:
		return 0xB0
	case ProgramChange:
		return 0xC0
	case AfterTouch:
		return 0xD0
	case PitchWheel:
		return 0xE0
	case SysEx:
		return 0xF0
	case QuarterFrame:
		return 0xF1
	case SongPos:
		return 0xF2
	case SongSelect:
		return 0xF3
	case TuneRequest:
		return 0xF6
	case EndOfExclusive:
		return 0xF7
	case Clock:
		return 0xF8
	case Start:
		return 0xFA
	case Continue:
		return 0xFB
	case Stop:
		return 0xFC
	case ActiveSensing:
		return 0xFE
	case Reset:
		return 0xFF
	}
	return 0
}

// RawEvent is one captured MIDI message. Only the fields relevant to the
// message type are meaningful; Bytes always holds the wire bytes.
type RawEvent struct {
	Type    MessageType
	Channel uint8 // 0-15, valid when Type.HasChannel()

	Note       uint8
	Velocity   uint8
	Controller uint8
	Value      uint8
	Program    uint8
	Pitch      int16 // -8192..8191, centered at 0
	Pos        uint16
	Song       uint8
	FrameType  uint8
	FrameValue uint8
	Data       []byte // sysex payload, without the F0/F7 framing

	Bytes []byte // full wire bytes, including framing

	// DeviceDelta is the transport-reported time since the previous message
	// on the same port, in seconds. Nil when the transport supplied none.
	DeviceDelta *float64
}

const noteOffVelocity = 0

// IsZeroVelocityNoteOn reports whether the event is a note-on that the MIDI
// specification defines as equivalent to a note-off.
func (e RawEvent) IsZeroVelocityNoteOn() bool {
	return e.Type == NoteOn && e.Velocity == noteOffVelocity
}
