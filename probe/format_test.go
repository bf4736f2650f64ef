package probe

import (
	"strings"
	"testing"
)

func TestHexString(t *testing.T) {
	if got := HexString([]byte{0x90, 0x3C, 0x7F}); got != "90 3C 7F" {
		t.Fatalf("unexpected hex %q", got)
	}
	if got := HexString(nil); got != "" {
		t.Fatalf("expected empty for nil, got %q", got)
	}
}

func TestBinString(t *testing.T) {
	if got := BinString([]byte{0xF8, 0x01}); got != "11111000 00000001" {
		t.Fatalf("unexpected binary %q", got)
	}
}

func TestConversions(t *testing.T) {
	got := Conversions(0x3C, 0x64)
	lines := strings.Split(got, "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if lines[0] != "Hexadecimal: 3C 64" {
		t.Fatalf("unexpected hex line %q", lines[0])
	}
	if lines[1] != "Decimal:     060 100" {
		t.Fatalf("unexpected decimal line %q", lines[1])
	}
	if lines[2] != "Binary:      00111100 01100100" {
		t.Fatalf("unexpected binary line %q", lines[2])
	}
}
