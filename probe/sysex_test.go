package probe

import (
	"bytes"
	"testing"
)

func decodeSysExBytes(t *testing.T, data []byte) *SysExDecoding {
	t.Helper()
	decoder, _, _ := newTestDecoder(DefaultSettings())
	dec := decoder.decodeSysEx(data)
	if dec == nil {
		t.Fatalf("decodeSysEx returned nil")
	}
	return dec
}

func TestSysExExtendedManufacturer(t *testing.T) {
	dec := decodeSysExBytes(t, []byte{0x00, 0x20, 0x29, 0x10, 0x01, 0x02})

	if !bytes.Equal(dec.ID, []byte{0x00, 0x20, 0x29}) {
		t.Fatalf("expected 3-byte ID, got % X", dec.ID)
	}
	if dec.IDLabel != "Novation EMS" {
		t.Fatalf("unexpected id label %q", dec.IDLabel)
	}
	if dec.IDType != "European Manufacturer ID" {
		t.Fatalf("unexpected id type %q", dec.IDType)
	}
	if dec.DeviceID == nil || *dec.DeviceID != 0x10 {
		t.Fatalf("unexpected device id %v", dec.DeviceID)
	}
	if dec.SubID1 != nil || dec.SubID2 != nil {
		t.Fatalf("manufacturer messages carry no universal sub-IDs")
	}
	if !bytes.Equal(dec.Payload, []byte{0x01, 0x02}) {
		t.Fatalf("unexpected payload % X", dec.Payload)
	}
}

func TestSysExSingleByteManufacturer(t *testing.T) {
	dec := decodeSysExBytes(t, []byte{0x41, 0x10, 0x42})

	if !bytes.Equal(dec.ID, []byte{0x41}) {
		t.Fatalf("expected 1-byte ID, got % X", dec.ID)
	}
	if dec.IDLabel != "Roland" {
		t.Fatalf("unexpected id label %q", dec.IDLabel)
	}
	if dec.IDType != "Japanese Manufacturer ID" {
		t.Fatalf("unexpected id type %q", dec.IDType)
	}
	if dec.SubID1 != nil || dec.SubID2 != nil {
		t.Fatalf("manufacturer messages carry no universal sub-IDs")
	}
	if !bytes.Equal(dec.Payload, []byte{0x42}) {
		t.Fatalf("unexpected payload % X", dec.Payload)
	}
}

func TestSysExUniversalIdentityRequest(t *testing.T) {
	dec := decodeSysExBytes(t, []byte{0x7E, 0x7F, 0x06, 0x01})

	if dec.IDType != "Universal Non-Real Time ID" {
		t.Fatalf("unexpected id type %q", dec.IDType)
	}
	if dec.DeviceID == nil || *dec.DeviceID != 0x7F {
		t.Fatalf("unexpected device id %v", dec.DeviceID)
	}
	if dec.SubID1Label != "General Information" {
		t.Fatalf("unexpected sub-id#1 label %q", dec.SubID1Label)
	}
	if dec.SubID2Label != "Identity Request" {
		t.Fatalf("unexpected sub-id#2 label %q", dec.SubID2Label)
	}
	if len(dec.Payload) != 0 {
		t.Fatalf("expected empty payload, got % X", dec.Payload)
	}
}

func TestSysExUnknownManufacturerUndefined(t *testing.T) {
	dec := decodeSysExBytes(t, []byte{0x60, 0x01})
	if dec.IDLabel != "Undefined" {
		t.Fatalf("unexpected id label %q", dec.IDLabel)
	}
	if dec.IDType != "Other Manufacturer ID" {
		t.Fatalf("unexpected id type %q", dec.IDType)
	}
}

func TestSysExTruncatedPayloads(t *testing.T) {
	// None of the short payloads may panic; fields past the end stay unset.
	cases := [][]byte{
		nil,
		{},
		{0x00},
		{0x00, 0x20},
		{0x41},
		{0x7E},
		{0x7E, 0x7F},
		{0x7E, 0x7F, 0x06},
	}
	for _, data := range cases {
		dec := decodeSysExBytes(t, data)
		if dec.SubID2 != nil {
			t.Fatalf("payload % X: unexpected sub-id#2", data)
		}
	}

	dec := decodeSysExBytes(t, []byte{0x7E, 0x7F, 0x06})
	if dec.SubID1 == nil || dec.SubID1Label != "General Information" {
		t.Fatalf("expected sub-id#1 decoded, got %+v", dec)
	}

	dec = decodeSysExBytes(t, []byte{})
	if dec.IDType != "ID" || dec.IDLabel != "Undefined" {
		t.Fatalf("unexpected empty decoding %+v", dec)
	}
}
