package midi

// StatusNames maps base status bytes to their MIDI 1.0 names.
var StatusNames = map[uint8]string{
	0x80: "Note Off",
	0x90: "Note On",
	0xA0: "Polyphonic Key Pressure",
	0xB0: "Control Change",
	0xC0: "Program Change",
	0xD0: "Channel Pressure",
	0xE0: "Pitch Bend Change",
	0xF0: "System Exclusive",
	0xF1: "MIDI Time Code Quarter Frame",
	0xF2: "Song Position Pointer",
	0xF3: "Song Select",
	0xF4: "Undefined",
	0xF5: "Undefined",
	0xF6: "Tune Request",
	0xF7: "End of Exclusive",
	0xF8: "Timing Clock",
	0xF9: "Undefined",
	0xFA: "Start",
	0xFB: "Continue",
	0xFC: "Stop",
	0xFD: "Undefined",
	0xFE: "Active Sensing",
	0xFF: "System Reset",
}

// StatusLabel resolves a message type to its status-byte name.
// Unrecognized types resolve to "Undefined" rather than failing.
func StatusLabel(t MessageType) string {
	if name, ok := StatusNames[t.StatusByte()]; ok {
		return name
	}
	return "Undefined"
}

// ChannelVoiceMessages maps status high nibbles to voice message names.
var ChannelVoiceMessages = map[uint8]string{
	0x8: "Note Off",
	0x9: "Note On",
	0xA: "Polyphonic Key Pressure (Aftertouch)",
	0xB: "Control Change",
	0xC: "Program Change",
	0xD: "Channel Pressure (Aftertouch)",
	0xE: "Pitch Bend Change",
}

// ChannelModeMessages maps controller numbers 120-127 to mode message names.
var ChannelModeMessages = map[uint8]string{
	120: "All Sound Off",
	121: "Reset All Controllers",
	122: "Local Control",
	123: "All Notes Off",
	124: "Omni Mode Off",
	125: "Omni Mode On",
	126: "Mono Mode On",
	127: "Poly Mode On",
}

// SystemCommonMessages maps system common status bytes to names.
var SystemCommonMessages = map[uint8]string{
	0xF1: "MIDI Time Code Quarter Frame",
	0xF2: "Song Position Pointer",
	0xF3: "Song Select",
	0xF4: "Undefined",
	0xF5: "Undefined",
	0xF6: "Tune Request",
	0xF7: "End of Exclusive",
}

// SystemRealTimeMessages maps system real-time status bytes to names.
var SystemRealTimeMessages = map[uint8]string{
	0xF8: "Timing Clock",
	0xF9: "Undefined",
	0xFA: "Start",
	0xFB: "Continue",
	0xFC: "Stop",
	0xFD: "Undefined",
	0xFE: "Active Sensing",
	0xFF: "System Reset",
}

// SystemExclusiveMessages maps the sysex framing bytes to names.
var SystemExclusiveMessages = map[uint8]string{
	0xF0: "Start of Exclusive",
	0xF7: "End of Exclusive",
}
