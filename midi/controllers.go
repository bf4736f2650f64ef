package midi

// ControllerNames holds the defined controller number names from the MIDI 1.0
// specification controller table.
var ControllerNames = [128]string{
	0:   "Bank Select",
	1:   "Modulation Wheel",
	2:   "Breath Controller",
	3:   "Undefined",
	4:   "Foot Controller",
	5:   "Portamento Time",
	6:   "Data Entry MSB",
	7:   "Channel Volume",
	8:   "Balance",
	9:   "Undefined",
	10:  "Pan",
	11:  "Expression Controller",
	12:  "Effect Control 1",
	13:  "Effect Control 2",
	14:  "Undefined",
	15:  "Undefined",
	16:  "General Purpose Controller 1",
	17:  "General Purpose Controller 2",
	18:  "General Purpose Controller 3",
	19:  "General Purpose Controller 4",
	20:  "Undefined",
	21:  "Undefined",
	22:  "Undefined",
	23:  "Undefined",
	24:  "Undefined",
	25:  "Undefined",
	26:  "Undefined",
	27:  "Undefined",
	28:  "Undefined",
	29:  "Undefined",
	30:  "Undefined",
	31:  "Undefined",
	32:  "Bank Select LSB",
	33:  "Modulation Wheel LSB",
	34:  "Breath Controller LSB",
	35:  "Undefined LSB (3)",
	36:  "Foot Controller LSB",
	37:  "Portamento Time LSB",
	38:  "Data Entry LSB",
	39:  "Channel Volume LSB",
	40:  "Balance LSB",
	41:  "Undefined LSB (9)",
	42:  "Pan LSB",
	43:  "Expression Controller LSB",
	44:  "Effect Control 1 LSB",
	45:  "Effect Control 2 LSB",
	46:  "Undefined LSB (14)",
	47:  "Undefined LSB (15)",
	48:  "General Purpose Controller 1 LSB",
	49:  "General Purpose Controller 2 LSB",
	50:  "General Purpose Controller 3 LSB",
	51:  "General Purpose Controller 4 LSB",
	52:  "Undefined LSB (20)",
	53:  "Undefined LSB (21)",
	54:  "Undefined LSB (22)",
	55:  "Undefined LSB (23)",
	56:  "Undefined LSB (24)",
	57:  "Undefined LSB (25)",
	58:  "Undefined LSB (26)",
	59:  "Undefined LSB (27)",
	60:  "Undefined LSB (28)",
	61:  "Undefined LSB (29)",
	62:  "Undefined LSB (30)",
	63:  "Undefined LSB (31)",
	64:  "Damper Pedal (Sustain)",
	65:  "Portamento On/Off",
	66:  "Sostenuto",
	67:  "Soft Pedal",
	68:  "Legato Footswitch",
	69:  "Hold 2",
	70:  "Sound Controller 1 (Sound Variation)",
	71:  "Sound Controller 2 (Timbre/Harmonic Intensity)",
	72:  "Sound Controller 3 (Release Time)",
	73:  "Sound Controller 4 (Attack Time)",
	74:  "Sound Controller 5 (Brightness)",
	75:  "Sound Controller 6 (Decay Time)",
	76:  "Sound Controller 7 (Vibrato Rate)",
	77:  "Sound Controller 8 (Vibrato Depth)",
	78:  "Sound Controller 9 (Vibrato Delay)",
	79:  "Sound Controller 10",
	80:  "General Purpose Controller 5",
	81:  "General Purpose Controller 6",
	82:  "General Purpose Controller 7",
	83:  "General Purpose Controller 8",
	84:  "Portamento Control",
	85:  "Undefined",
	86:  "Undefined",
	87:  "Undefined",
	88:  "High Resolution Velocity Prefix",
	89:  "Undefined",
	90:  "Undefined",
	91:  "Effects 1 Depth (Reverb Send Level)",
	92:  "Effects 2 Depth (Tremolo Depth)",
	93:  "Effects 3 Depth (Chorus Send Level)",
	94:  "Effects 4 Depth (Celeste Depth)",
	95:  "Effects 5 Depth (Phaser Depth)",
	96:  "Data Increment",
	97:  "Data Decrement",
	98:  "Non-Registered Parameter Number LSB",
	99:  "Non-Registered Parameter Number MSB",
	100: "Registered Parameter Number LSB",
	101: "Registered Parameter Number MSB",
	102: "Undefined",
	103: "Undefined",
	104: "Undefined",
	105: "Undefined",
	106: "Undefined",
	107: "Undefined",
	108: "Undefined",
	109: "Undefined",
	110: "Undefined",
	111: "Undefined",
	112: "Undefined",
	113: "Undefined",
	114: "Undefined",
	115: "Undefined",
	116: "Undefined",
	117: "Undefined",
	118: "Undefined",
	119: "Undefined",
	120: "All Sound Off",
	121: "Reset All Controllers",
	122: "Local Control On/Off",
	123: "All Notes Off",
	124: "Omni Mode Off",
	125: "Omni Mode On",
	126: "Mono Mode On",
	127: "Poly Mode On",
}

// ControllerName returns the controller table name for a controller number.
func ControllerName(controller uint8) string {
	if controller > 127 {
		return "Undefined"
	}
	return ControllerNames[controller]
}
