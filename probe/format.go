package probe

import (
	"fmt"
	"strconv"
	"strings"
)

// HexString renders bytes as uppercase hex pairs separated by spaces, the
// format of the raw message column.
func HexString(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	var sb strings.Builder
	for i, v := range b {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%02X", v)
	}
	return sb.String()
}

// BinString renders bytes as 8-bit binary groups separated by spaces.
func BinString(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	var sb strings.Builder
	for i, v := range b {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%08b", v)
	}
	return sb.String()
}

// Conversions renders a value in hexadecimal, decimal and binary, one line
// each, for detail panes.
func Conversions(values ...int) string {
	var hexes, decs, bins []string
	for _, v := range values {
		hexes = append(hexes, fmt.Sprintf("%02X", v))
		decs = append(decs, fmt.Sprintf("%03d", v))
		bins = append(bins, fmt.Sprintf("%08b", v))
	}
	return fmt.Sprintf("Hexadecimal: %s\nDecimal:     %s\nBinary:      %s",
		strings.Join(hexes, " "), strings.Join(decs, " "), strings.Join(bins, " "))
}

func itoa(v int) string {
	return strconv.Itoa(v)
}
