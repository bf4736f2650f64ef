package midi

// System Exclusive identification tables from the MIDI 1.0 Detailed
// Specification (manufacturer IDs) and the Defined Universal System Exclusive
// Messages tables. Manufacturer tables are a curated subset of the published
// registry; anything missing resolves to "Undefined".

// SysExUniversalNonRealTime and SysExUniversalRealTime are the two reserved
// 1-byte IDs that introduce Defined Universal System Exclusive Messages.
const (
	SysExUniversalNonRealTime uint8 = 0x7E
	SysExUniversalRealTime    uint8 = 0x7F
	SysExNonCommercial        uint8 = 0x7D
)

// SysExIDGroup classifies the first ID byte.
func SysExIDGroup(id uint8) string {
	switch id {
	case SysExNonCommercial:
		return "Non-Commercial"
	case SysExUniversalNonRealTime:
		return "Universal Non-Real Time"
	case SysExUniversalRealTime:
		return "Universal Real Time"
	default:
		return "Manufacturer"
	}
}

// SysExIDRegion returns the geographic region of a manufacturer ID byte.
// For 3-byte IDs the second byte carries the region. Reserved IDs (0x7D-0x7F)
// have no region and yield the empty string.
func SysExIDRegion(id uint8) string {
	switch {
	case id >= 0x01 && id <= 0x1F:
		return "American"
	case id >= 0x20 && id <= 0x3F:
		return "European"
	case id >= 0x40 && id <= 0x5F:
		return "Japanese"
	case id >= 0x60 && id <= 0x7C:
		return "Other"
	}
	return ""
}

// manufacturers1 maps 1-byte manufacturer IDs to names.
var manufacturers1 = map[uint8]string{
	0x01: "Sequential Circuits",
	0x02: "IDP",
	0x03: "Voyetra Turtle Beach",
	0x04: "Moog",
	0x05: "Passport Designs",
	0x06: "Lexicon",
	0x07: "Kurzweil",
	0x08: "Fender",
	0x09: "MIDI9",
	0x0A: "AKG Acoustics",
	0x0B: "Voyce Music",
	0x0C: "WaveFrame",
	0x0D: "ADA Signal Processors",
	0x0E: "Garfield Electronics",
	0x0F: "Ensoniq",
	0x10: "Oberheim",
	0x11: "Apple",
	0x12: "Grey Matter Response",
	0x13: "Digidesign",
	0x14: "Palmtree Instruments",
	0x15: "JLCooper Electronics",
	0x16: "Lowrey",
	0x17: "Adams-Smith",
	0x18: "E-mu",
	0x19: "Harmony Systems",
	0x1A: "ART",
	0x1B: "Baldwin",
	0x1C: "Eventide",
	0x1D: "Inventronics",
	0x1E: "Key Concepts",
	0x1F: "Clarity",
	0x20: "Passac",
	0x21: "Proel Labs (SIEL)",
	0x22: "Synthaxe",
	0x23: "Stepp",
	0x24: "Hohner",
	0x25: "Twister",
	0x26: "Ketron",
	0x27: "Jellinghaus MS",
	0x28: "Southworth Music Systems",
	0x29: "PPG",
	0x2A: "JEN",
	0x2B: "Solid State Logic",
	0x2C: "Audio Veritrieb-P. Struven",
	0x2D: "Neve",
	0x2E: "Soundtracs",
	0x2F: "Elka",
	0x30: "Dynacord",
	0x31: "Viscount International",
	0x32: "Drawmer",
	0x33: "Clavia Digital Instruments",
	0x34: "Audio Architecture",
	0x35: "Generalmusic",
	0x36: "Cheetah Marketing",
	0x37: "C.T.M.",
	0x38: "Simmons UK",
	0x39: "Soundcraft Electronics",
	0x3A: "Steinberg Media Technologies",
	0x3B: "Wersi",
	0x3C: "AVAB Niethammer",
	0x3D: "Digigram",
	0x3E: "Waldorf Electronics",
	0x3F: "Quasimidi",
	0x40: "Kawai",
	0x41: "Roland",
	0x42: "Korg",
	0x43: "Yamaha",
	0x44: "Casio",
	0x46: "Kamiya Studio",
	0x47: "Akai Electric",
	0x48: "Victor Company of Japan",
	0x4B: "Fujitsu",
	0x4C: "Sony",
	0x4E: "Teac",
	0x50: "Matsushita Electric Industrial",
	0x51: "Fostex",
	0x52: "Zoom",
	0x54: "Matsushita Communication Industrial",
	0x55: "Suzuki Musical Instruments",
	0x56: "Fuji Sound",
	0x57: "Acoustic Technical Laboratory",
	0x59: "Faith",
	0x5A: "Internet Corporation",
	0x5C: "Seekers",
	0x5F: "SD Card Association",
	0x7D: "Non-Commercial/Educational Use",
	0x7E: "Universal Non-Real Time",
	0x7F: "Universal Real Time",
}

// manufacturers3 maps 3-byte manufacturer IDs (first byte 0x00) to names,
// keyed by the second then third byte.
var manufacturers3 = map[uint8]map[uint8]string{
	// American group
	0x00: {
		0x01: "Time/Warner Interactive",
		0x07: "Digital Music Corporation",
		0x0E: "Alesis Studio Electronics",
		0x1B: "Peavey Electronics",
		0x20: "DOD Electronics",
		0x3B: "Mark of the Unicorn",
		0x41: "Microsoft",
		0x66: "Mackie Designs",
	},
	0x01: {
		0x05: "M-Audio (Midiman)",
		0x55: "Numark Industries",
		0x61: "Akai Professional",
		0x79: "Native Instruments USA",
	},
	0x02: {
		0x3C: "Universal Audio",
	},
	// European group
	0x20: {
		0x13: "Kenton Electronics",
		0x1F: "TC Electronic",
		0x29: "Novation EMS",
		0x2B: "Medeli Electronics",
		0x2F: "Behringer",
		0x32: "Soundart (Zeta Technology)",
		0x33: "Access Music Electronics",
		0x3C: "Elektron",
	},
	0x21: {
		0x09: "Ploytec",
		0x10: "Waldorf Music",
		0x1D: "Ableton",
		0x27: "Expert Sleepers",
		0x35: "Teenage Engineering",
	},
	// Japanese group
	0x40: {
		0x00: "Crimson Technology",
		0x01: "Softbank Mobile",
		0x03: "D&M Holdings",
		0x04: "Xing",
		0x05: "Alpha Theta (Pioneer DJ)",
	},
}

// SysExManufacturerName resolves a 1- or 3-byte manufacturer ID to its
// registered name. Unknown IDs resolve to "Undefined".
func SysExManufacturerName(id []byte) string {
	const undefined = "Undefined"
	switch len(id) {
	case 1:
		if name, ok := manufacturers1[id[0]]; ok {
			return name
		}
	case 3:
		if id[0] != 0x00 {
			return undefined
		}
		if region, ok := manufacturers3[id[1]]; ok {
			if name, ok := region[id[2]]; ok {
				return name
			}
		}
	}
	return undefined
}

// NonRealTimeSubID1 names sub-ID#1 bytes of Universal Non-Real Time messages.
var NonRealTimeSubID1 = map[uint8]string{
	0x01: "Sample Dump Header",
	0x02: "Sample Data Packet",
	0x03: "Sample Dump Request",
	0x04: "MIDI Time Code",
	0x05: "Sample Dump Extensions",
	0x06: "General Information",
	0x07: "File Dump",
	0x08: "MIDI Tuning Standard (Non-Real Time)",
	0x09: "General MIDI",
	0x0A: "Downloadable Sounds",
	0x0B: "File Reference Message",
	0x0C: "MIDI Visual Control",
	0x0D: "MIDI Capability Inquiry",
	0x7B: "End of File",
	0x7C: "Wait",
	0x7D: "Cancel",
	0x7E: "NAK",
	0x7F: "ACK",
}

// NonRealTimeSubID2 names sub-ID#2 bytes, keyed by the sub-ID#1 that carries
// them. A sub-ID#1 present here has a sub-ID#2 byte on the wire.
var NonRealTimeSubID2 = map[uint8]map[uint8]string{
	0x04: {
		0x00: "Special",
		0x01: "Punch In Points",
		0x02: "Punch Out Points",
		0x03: "Delete Punch In Point",
		0x04: "Delete Punch Out Point",
		0x05: "Event Start Point",
		0x06: "Event Stop Point",
		0x07: "Event Start Points with Additional Info",
		0x08: "Event Stop Points with Additional Info",
		0x09: "Delete Event Start Point",
		0x0A: "Delete Event Stop Point",
		0x0B: "Cue Points",
		0x0C: "Cue Points with Additional Info",
		0x0D: "Delete Cue Point",
		0x0E: "Event Name in Additional Info",
	},
	0x05: {
		0x01: "Loop Points Transmission",
		0x02: "Loop Points Request",
		0x03: "Sample Name Transmission",
		0x04: "Sample Name Request",
		0x05: "Extended Dump Header",
		0x06: "Extended Loop Points Transmission",
		0x07: "Extended Loop Points Request",
	},
	0x06: {
		0x01: "Identity Request",
		0x02: "Identity Reply",
	},
	0x07: {
		0x01: "Header",
		0x02: "Data Packet",
		0x03: "Request",
	},
	0x08: {
		0x00: "Bulk Dump Request",
		0x01: "Bulk Dump Reply",
		0x03: "Tuning Dump Request",
		0x04: "Key-Based Tuning Dump",
		0x05: "Scale/Octave Tuning Dump, 1 byte format",
		0x06: "Scale/Octave Tuning Dump, 2 byte format",
		0x07: "Single Note Tuning Change with Bank Select",
		0x08: "Scale/Octave Tuning, 1 byte format",
		0x09: "Scale/Octave Tuning, 2 byte format",
	},
	0x09: {
		0x01: "General MIDI 1 System On",
		0x02: "General MIDI System Off",
		0x03: "General MIDI 2 System On",
	},
	0x0A: {
		0x01: "Turn DLS On",
		0x02: "Turn DLS Off",
		0x03: "Turn DLS Voice Allocation Off",
		0x04: "Turn DLS Voice Allocation On",
	},
	0x0B: {
		0x01: "Open File",
		0x02: "Select or Reselect Contents",
		0x03: "Open File and Select Contents",
		0x04: "Close File",
	},
	0x0C: {
		0x00: "MVC Command",
	},
	0x0D: {
		0x10: "Discovery",
		0x11: "Reply to Discovery",
		0x20: "Inquiry: Protocol Negotiation",
	},
}

// RealTimeSubID1 names sub-ID#1 bytes of Universal Real Time messages.
var RealTimeSubID1 = map[uint8]string{
	0x01: "MIDI Time Code",
	0x02: "MIDI Show Control",
	0x03: "Notation Information",
	0x04: "Device Control",
	0x05: "Real Time MTC Cueing",
	0x06: "MIDI Machine Control Commands",
	0x07: "MIDI Machine Control Responses",
	0x08: "MIDI Tuning Standard (Real Time)",
	0x09: "Controller Destination Setting",
	0x0A: "Key-based Instrument Control",
	0x0B: "Scalable Polyphony MIDI MIP Message",
	0x0C: "Mobile Phone Control Message",
}

// RealTimeSubID2 names sub-ID#2 bytes, keyed by the sub-ID#1 that carries
// them.
var RealTimeSubID2 = map[uint8]map[uint8]string{
	0x01: {
		0x01: "Full Message",
		0x02: "User Bits",
	},
	0x03: {
		0x01: "Bar Number",
		0x02: "Time Signature (Immediate)",
		0x42: "Time Signature (Delayed)",
	},
	0x04: {
		0x01: "Master Volume",
		0x02: "Master Balance",
		0x03: "Master Fine Tuning",
		0x04: "Master Coarse Tuning",
		0x05: "Global Parameter Control",
	},
	0x05: {
		0x00: "Special",
		0x01: "Punch In Points",
		0x02: "Punch Out Points",
		0x05: "Event Start Points",
		0x06: "Event Stop Points",
		0x07: "Event Start Points with Additional Info",
		0x08: "Event Stop Points with Additional Info",
		0x0B: "Cue Points",
		0x0C: "Cue Points with Additional Info",
		0x0E: "Event Name in Additional Info",
	},
	0x08: {
		0x02: "Single Note Tuning Change",
		0x07: "Single Note Tuning Change with Bank Select",
		0x08: "Scale/Octave Tuning, 1 byte format",
		0x09: "Scale/Octave Tuning, 2 byte format",
	},
	0x09: {
		0x01: "Channel Pressure (Aftertouch)",
		0x02: "Polyphonic Key Pressure (Aftertouch)",
		0x03: "Controller (Control Change)",
	},
}
