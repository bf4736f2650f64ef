package probe

import (
	"go.uber.org/zap"

	"github.com/EMATech/midiexplorer/midi"
)

const undefinedLabel = "Undefined"

// SysExDecoding is the identification hierarchy of one System Exclusive
// message: manufacturer ID, device ID, universal sub-IDs and whatever payload
// remains undecoded. Fields stay nil/empty when the payload ends before them.
type SysExDecoding struct {
	IDType      string // e.g. "European Manufacturer ID", "Universal Real Time ID"
	ID          []byte // 1 or 3 bytes
	IDLabel     string
	DeviceID    *uint8
	SubID1      *uint8
	SubID1Label string
	SubID2      *uint8
	SubID2Label string
	Payload     []byte // undecoded tail
}

// decodeSysEx walks the ID/sub-ID hierarchy over the sysex payload (framing
// bytes excluded). Every read is bounds-checked: a short payload truncates
// the decoding, it never fails.
func (d *Decoder) decodeSysEx(data []byte) *SysExDecoding {
	dec := &SysExDecoding{IDType: "ID", IDLabel: undefinedLabel}
	if len(data) == 0 {
		return dec
	}

	// A leading 0x00 announces a 3-byte ID.
	idLen := 1
	if data[0] == 0x00 {
		idLen = 3
	}
	if len(data) < idLen {
		dec.ID = data
		return dec
	}
	dec.ID = data[:idLen]

	group := midi.SysExIDGroup(data[0])
	regionByte := data[0]
	if idLen == 3 {
		regionByte = data[1]
	}
	if region := midi.SysExIDRegion(regionByte); region != "" {
		dec.IDType = region + " " + group + " ID"
	} else {
		dec.IDType = group + " ID"
	}
	dec.IDLabel = midi.SysExManufacturerName(dec.ID)
	d.log.Debug("sysex id", zap.String("label", dec.IDLabel), zap.String("type", dec.IDType))

	next := idLen
	if next >= len(data) {
		return dec
	}
	device := data[next]
	dec.DeviceID = &device

	if idLen == 1 && (data[0] == midi.SysExUniversalNonRealTime || data[0] == midi.SysExUniversalRealTime) {
		sub1Names := midi.NonRealTimeSubID1
		sub2Names := midi.NonRealTimeSubID2
		if data[0] == midi.SysExUniversalRealTime {
			sub1Names = midi.RealTimeSubID1
			sub2Names = midi.RealTimeSubID2
		}

		next++
		if next >= len(data) {
			return dec
		}
		sub1 := data[next]
		dec.SubID1 = &sub1
		dec.SubID1Label = lookup(sub1Names, sub1)
		d.log.Debug("sysex sub-id#1", zap.Uint8("sub1", sub1), zap.String("label", dec.SubID1Label))

		if nested, ok := sub2Names[sub1]; ok {
			next++
			if next >= len(data) {
				return dec
			}
			sub2 := data[next]
			dec.SubID2 = &sub2
			dec.SubID2Label = lookup(nested, sub2)
			d.log.Debug("sysex sub-id#2", zap.Uint8("sub2", sub2), zap.String("label", dec.SubID2Label))
		}
	}

	if next+1 < len(data) {
		dec.Payload = data[next+1:]
	}
	return dec
}

func lookup(names map[uint8]string, key uint8) string {
	if name, ok := names[key]; ok {
		return name
	}
	return undefinedLabel
}
