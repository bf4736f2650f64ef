package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/EMATech/midiexplorer/config"
	"github.com/EMATech/midiexplorer/midi"
	"github.com/EMATech/midiexplorer/probe"
)

var (
	headerStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	titleStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Width(10)
	activeStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Background(lipgloss.Color("9"))
	idleStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	tableHeaderStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	panelTitleStyle  = lipgloss.NewStyle().Bold(true)
)

func (m Model) headerLine() string {
	onOff := "off"
	if m.settings.ZeroVelocityNoteOnIsNoteOff {
		onOff = "on"
	}
	return fmt.Sprintf("MIDI Explorer  mode:%s  persistence:%.2fs  0vel-note-off:%s  events:%d",
		m.manager.Mode(), m.settings.BlinkDuration, onOff, m.history.Len())
}

// cell renders one monitor indicator, highlighted while its category blinks.
func (m Model) cell(label string, key probe.Key, now float64) string {
	if m.tracker.ActiveAt(key, now) {
		return activeStyle.Render(label)
	}
	return idleStyle.Render(label)
}

func (m Model) monitorView(now float64) string {
	var rows []string

	rows = append(rows, titleStyle.Render("Type")+
		m.cell(" CHANNEL ", probe.KeyChannelVoice, now)+" "+
		m.cell(" SYSTEM ", probe.KeySystem, now))

	var chans strings.Builder
	for ch := uint8(0); ch < 16; ch++ {
		chans.WriteString(m.cell(fmt.Sprintf(" %2d ", ch+1), probe.ChannelKey(ch), now))
	}
	rows = append(rows, titleStyle.Render("Channel")+chans.String())

	voice := []struct {
		label string
		t     midi.MessageType
	}{
		{" N OF ", midi.NoteOff},
		{" N ON ", midi.NoteOn},
		{" PKPR ", midi.PolyTouch},
		{"  CC  ", midi.ControlChange},
		{"  PC  ", midi.ProgramChange},
		{" CHPR ", midi.AfterTouch},
		{" PBCH ", midi.PitchWheel},
	}
	var voiceRow strings.Builder
	for _, v := range voice {
		voiceRow.WriteString(m.cell(v.label, probe.TypeKey(v.t), now))
	}
	rows = append(rows, titleStyle.Render("Voice")+voiceRow.String())

	common := []struct {
		label string
		t     midi.MessageType
	}{
		{"  QF  ", midi.QuarterFrame},
		{" SGPS ", midi.SongPos},
		{" SGSL ", midi.SongSelect},
		{"  TR  ", midi.TuneRequest},
	}
	var commonRow strings.Builder
	for _, v := range common {
		commonRow.WriteString(m.cell(v.label, probe.TypeKey(v.t), now))
	}
	if m.cfg.EOXCategory == config.EOXSystemCommon {
		commonRow.WriteString(m.cell(" EOX  ", probe.TypeKey(midi.EndOfExclusive), now))
	}
	rows = append(rows, titleStyle.Render("Common")+commonRow.String())

	realTime := []struct {
		label string
		t     midi.MessageType
	}{
		{" CLK  ", midi.Clock},
		{" STRT ", midi.Start},
		{" CTNU ", midi.Continue},
		{" STOP ", midi.Stop},
		{"  AS  ", midi.ActiveSensing},
		{" RST  ", midi.Reset},
	}
	var rtRow strings.Builder
	for _, v := range realTime {
		rtRow.WriteString(m.cell(v.label, probe.TypeKey(v.t), now))
	}
	rows = append(rows, titleStyle.Render("Real-Time")+rtRow.String())

	var exRow strings.Builder
	exRow.WriteString(m.cell(" SOX  ", probe.TypeKey(midi.SysEx), now))
	if m.cfg.EOXCategory == config.EOXSystemExclusive {
		exRow.WriteString(m.cell(" EOX  ", probe.TypeKey(midi.EndOfExclusive), now))
	}
	rows = append(rows, titleStyle.Render("Exclusive")+exRow.String())

	return strings.Join(rows, "\n")
}

func (m Model) keyboardView() string {
	held := m.tracker.HeldNotes()
	if len(held) == 0 {
		return titleStyle.Render("Notes") + idleStyle.Render("(none held)")
	}
	names := make([]string, len(held))
	for i, n := range held {
		names[i] = activeStyle.Render(" " + midi.NoteName(n) + " ")
	}
	return titleStyle.Render("Notes") + strings.Join(names, " ")
}

func (m Model) controllersView(now float64) string {
	var rows []string
	for row := 0; row < 8; row++ {
		var sb strings.Builder
		title := ""
		if row == 0 {
			title = "Ctrl"
		}
		sb.WriteString(titleStyle.Render(title))
		for col := 0; col < 16; col++ {
			cc := uint8(row*16 + col)
			sb.WriteString(m.cell(fmt.Sprintf("%3d ", cc), probe.ControllerKey(cc), now))
		}
		rows = append(rows, sb.String())
	}
	return strings.Join(rows, "\n")
}
