package tui

import (
	"fmt"
	"strings"

	"github.com/EMATech/midiexplorer/probe"
)

var historyHeaderLine = fmt.Sprintf("%12s %10s  %-18s %-23s %-22s %-6s %-16s %-10s",
	"Time (ms)", "Delta (ms)", "Source", "Raw Message (HEX)", "Status", "Chan", "Data 1", "Data 2")

// historyContent renders the journal as fixed-width rows, newest last.
func (m Model) historyContent() string {
	events := m.history.Events()
	lines := make([]string, 0, len(events))
	for _, ev := range events {
		lines = append(lines, historyLine(ev))
	}
	return strings.Join(lines, "\n")
}

func historyLine(ev probe.DecodedEvent) string {
	return fmt.Sprintf("%12.3f %10.2f  %-18s %-23s %-22s %-6s %-16s %-10s",
		ev.Timestamp*1000,
		ev.DeltaMs,
		truncate(ev.Source, 18),
		truncate(ev.RawHex, 23),
		truncate(ev.StatusLabel, 22),
		ev.ChannelLabel,
		truncate(ev.Data0.Display(), 16),
		truncate(ev.Data1.Display(), 10),
	)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 1 {
		return s[:max]
	}
	return s[:max-1] + "…"
}

func (m Model) sysexView() string {
	dec := m.lastSysEx
	if dec == nil {
		return panelTitleStyle.Render("System Exclusive") + " " + idleStyle.Render("(none seen)")
	}

	var sb strings.Builder
	sb.WriteString(panelTitleStyle.Render("System Exclusive"))
	sb.WriteString("\n")
	fmt.Fprintf(&sb, "  %-24s %-10s %s\n", dec.IDType, probe.HexString(dec.ID), dec.IDLabel)
	fmt.Fprintf(&sb, "  %-24s %s\n", "Device ID", optByte(dec.DeviceID))
	fmt.Fprintf(&sb, "  %-24s %-10s %s\n", "Sub-ID#1", optByte(dec.SubID1), dec.SubID1Label)
	fmt.Fprintf(&sb, "  %-24s %-10s %s\n", "Sub-ID#2", optByte(dec.SubID2), dec.SubID2Label)
	fmt.Fprintf(&sb, "  %-24s %s", "Undecoded payload", probe.HexString(dec.Payload))
	return sb.String()
}

func optByte(b *uint8) string {
	if b == nil {
		return ""
	}
	return fmt.Sprintf("%02X", *b)
}
