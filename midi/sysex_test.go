package midi

import "testing"

func TestSysExIDGroup(t *testing.T) {
	cases := []struct {
		id   uint8
		want string
	}{
		{0x41, "Manufacturer"},
		{0x00, "Manufacturer"},
		{0x7D, "Non-Commercial"},
		{0x7E, "Universal Non-Real Time"},
		{0x7F, "Universal Real Time"},
	}
	for _, c := range cases {
		if got := SysExIDGroup(c.id); got != c.want {
			t.Errorf("SysExIDGroup(%#02x) = %q, want %q", c.id, got, c.want)
		}
	}
}

func TestSysExIDRegion(t *testing.T) {
	cases := []struct {
		id   uint8
		want string
	}{
		{0x01, "American"},
		{0x1F, "American"},
		{0x20, "European"},
		{0x3F, "European"},
		{0x40, "Japanese"},
		{0x5F, "Japanese"},
		{0x60, "Other"},
		{0x7C, "Other"},
		{0x00, ""},
		{0x7D, ""},
		{0x7E, ""},
		{0x7F, ""},
	}
	for _, c := range cases {
		if got := SysExIDRegion(c.id); got != c.want {
			t.Errorf("SysExIDRegion(%#02x) = %q, want %q", c.id, got, c.want)
		}
	}
}

func TestSysExManufacturerName(t *testing.T) {
	cases := []struct {
		id   []byte
		want string
	}{
		{[]byte{0x41}, "Roland"},
		{[]byte{0x43}, "Yamaha"},
		{[]byte{0x7D}, "Non-Commercial/Educational Use"},
		{[]byte{0x00, 0x20, 0x29}, "Novation EMS"},
		{[]byte{0x00, 0x21, 0x1D}, "Ableton"},
		{[]byte{0x45}, "Undefined"},
		{[]byte{0x00, 0x20, 0x00}, "Undefined"},
		{[]byte{0x01, 0x20, 0x29}, "Undefined"},
		{[]byte{}, "Undefined"},
		{[]byte{0x00, 0x20}, "Undefined"},
	}
	for _, c := range cases {
		if got := SysExManufacturerName(c.id); got != c.want {
			t.Errorf("SysExManufacturerName(% X) = %q, want %q", c.id, got, c.want)
		}
	}
}

func TestUniversalSubIDTables(t *testing.T) {
	if NonRealTimeSubID1[0x06] != "General Information" {
		t.Fatalf("unexpected sub-id#1 name %q", NonRealTimeSubID1[0x06])
	}
	if NonRealTimeSubID2[0x06][0x01] != "Identity Request" {
		t.Fatalf("unexpected sub-id#2 name %q", NonRealTimeSubID2[0x06][0x01])
	}
	if RealTimeSubID1[0x04] != "Device Control" {
		t.Fatalf("unexpected sub-id#1 name %q", RealTimeSubID1[0x04])
	}
	if RealTimeSubID2[0x04][0x01] != "Master Volume" {
		t.Fatalf("unexpected sub-id#2 name %q", RealTimeSubID2[0x04][0x01])
	}
	// Every sub-ID#2 table must hang off a named sub-ID#1.
	for sub1 := range NonRealTimeSubID2 {
		if _, ok := NonRealTimeSubID1[sub1]; !ok {
			t.Errorf("non-real time sub-id#2 table %#02x has no sub-id#1 name", sub1)
		}
	}
	for sub1 := range RealTimeSubID2 {
		if _, ok := RealTimeSubID1[sub1]; !ok {
			t.Errorf("real time sub-id#2 table %#02x has no sub-id#1 name", sub1)
		}
	}
}
