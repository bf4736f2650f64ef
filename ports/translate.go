package ports

import "github.com/EMATech/midiexplorer/midi"

// FromBytes parses one MIDI 1.0 wire message into a RawEvent. Truncated
// messages leave the missing fields zero; an unrecognized status byte yields
// the Unknown type. The input is copied, drivers may reuse their buffers.
func FromBytes(b []byte) midi.RawEvent {
	e := midi.RawEvent{Type: midi.Unknown}
	if len(b) == 0 {
		return e
	}
	e.Bytes = make([]byte, len(b))
	copy(e.Bytes, b)
	b = e.Bytes

	status := b[0]
	if status < 0x80 {
		return e
	}

	if status < 0xF0 {
		e.Channel = status & 0x0F
		switch status & 0xF0 {
		case 0x80:
			e.Type = midi.NoteOff
			e.Note = dataByte(b, 1)
			e.Velocity = dataByte(b, 2)
		case 0x90:
			e.Type = midi.NoteOn
			e.Note = dataByte(b, 1)
			e.Velocity = dataByte(b, 2)
		case 0xA0:
			e.Type = midi.PolyTouch
			e.Note = dataByte(b, 1)
			e.Value = dataByte(b, 2)
		case 0xB0:
			e.Type = midi.ControlChange
			e.Controller = dataByte(b, 1)
			e.Value = dataByte(b, 2)
		case 0xC0:
			e.Type = midi.ProgramChange
			e.Program = dataByte(b, 1)
		case 0xD0:
			e.Type = midi.AfterTouch
			e.Value = dataByte(b, 1)
		case 0xE0:
			e.Type = midi.PitchWheel
			raw := uint16(dataByte(b, 1)) | uint16(dataByte(b, 2))<<7
			e.Pitch = int16(raw) - 8192
		}
		return e
	}

	switch status {
	case 0xF0:
		e.Type = midi.SysEx
		payload := b[1:]
		if n := len(payload); n > 0 && payload[n-1] == 0xF7 {
			payload = payload[:n-1]
		}
		e.Data = payload
	case 0xF1:
		e.Type = midi.QuarterFrame
		e.FrameType = dataByte(b, 1) >> 4
		e.FrameValue = dataByte(b, 1) & 0x0F
	case 0xF2:
		e.Type = midi.SongPos
		e.Pos = uint16(dataByte(b, 1)) | uint16(dataByte(b, 2))<<7
	case 0xF3:
		e.Type = midi.SongSelect
		e.Song = dataByte(b, 1)
	case 0xF6:
		e.Type = midi.TuneRequest
	case 0xF7:
		e.Type = midi.EndOfExclusive
	case 0xF8:
		e.Type = midi.Clock
	case 0xFA:
		e.Type = midi.Start
	case 0xFB:
		e.Type = midi.Continue
	case 0xFC:
		e.Type = midi.Stop
	case 0xFE:
		e.Type = midi.ActiveSensing
	case 0xFF:
		e.Type = midi.Reset
	}
	return e
}

func dataByte(b []byte, i int) uint8 {
	if i >= len(b) {
		return 0
	}
	return b[i] & 0x7F
}
