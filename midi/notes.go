package midi

import "fmt"

var (
	notesAlphaEN = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}
	notesAlphaDE = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "H"}
	notesSyllab  = [12]string{"Do", "Do#", "Re", "Re#", "Mi", "Fa", "Fa#", "Sol", "Sol#", "La", "La#", "Si"}
)

// NoteName returns the English alphabetical name of a MIDI note number,
// octave -1 through 9 (note 0 = C-1, note 69 = A4).
func NoteName(note uint8) string {
	return noteName(notesAlphaEN, note)
}

// NoteNameDE returns the German alphabetical name (B natural is "H").
func NoteNameDE(note uint8) string {
	return noteName(notesAlphaDE, note)
}

// NoteNameSyllabic returns the syllabic (solfège) name.
func NoteNameSyllabic(note uint8) string {
	return noteName(notesSyllab, note)
}

// IsSharp reports whether the note is a black key.
func IsSharp(note uint8) bool {
	switch note % 12 {
	case 1, 3, 6, 8, 10:
		return true
	}
	return false
}

func noteName(names [12]string, note uint8) string {
	if note > 127 {
		return ""
	}
	return fmt.Sprintf("%s%d", names[note%12], int(note/12)-1)
}
