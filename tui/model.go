package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/EMATech/midiexplorer/config"
	"github.com/EMATech/midiexplorer/ports"
	"github.com/EMATech/midiexplorer/probe"
)

// tickInterval drives queue draining and blink polling, roughly frame rate.
const tickInterval = 33 * time.Millisecond

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

type Model struct {
	cfg      *config.Config
	settings *probe.Settings
	clock    *probe.Clock
	tracker  *probe.Tracker
	decoder  *probe.Decoder
	history  *probe.History
	queue    *ports.Queue
	manager  *ports.Manager
	log      *zap.Logger

	keys       keyMap
	help       help.Model
	viewport   viewport.Model
	autoScroll bool
	ready      bool
	quitting   bool
	width      int

	lastSysEx *probe.SysExDecoding
}

// NewModel assembles the monitor TUI around an already-wired probe.
func NewModel(
	cfg *config.Config,
	settings *probe.Settings,
	clock *probe.Clock,
	tracker *probe.Tracker,
	decoder *probe.Decoder,
	history *probe.History,
	queue *ports.Queue,
	manager *ports.Manager,
	log *zap.Logger,
) Model {
	if log == nil {
		log = zap.NewNop()
	}
	return Model{
		cfg:        cfg,
		settings:   settings,
		clock:      clock,
		tracker:    tracker,
		decoder:    decoder,
		history:    history,
		queue:      queue,
		manager:    manager,
		log:        log,
		keys:       defaultKeyMap(),
		help:       help.New(),
		autoScroll: true,
	}
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Clear):
			m.history.Clear()
			m.lastSysEx = nil
			m.viewport.SetContent("")

		case key.Matches(msg, m.keys.InputMode):
			mode := config.InputCallback
			if m.manager.Mode() == config.InputCallback {
				mode = config.InputPolling
			}
			m.cfg.InputMode = mode
			m.manager.SetMode(mode)

		case key.Matches(msg, m.keys.BlinkUp):
			m.setBlink(m.settings.BlinkDuration + 0.05)

		case key.Matches(msg, m.keys.BlinkDown):
			m.setBlink(m.settings.BlinkDuration - 0.05)

		case key.Matches(msg, m.keys.ZeroVel):
			m.settings.ZeroVelocityNoteOnIsNoteOff = !m.settings.ZeroVelocityNoteOnIsNoteOff
			m.cfg.ZeroVelocityNoteOnIsNoteOff = m.settings.ZeroVelocityNoteOnIsNoteOff

		case key.Matches(msg, m.keys.EOX):
			if m.cfg.EOXCategory == config.EOXSystemCommon {
				m.cfg.EOXCategory = config.EOXSystemExclusive
			} else {
				m.cfg.EOXCategory = config.EOXSystemCommon
			}

		case key.Matches(msg, m.keys.AutoScroll):
			m.autoScroll = !m.autoScroll

		case key.Matches(msg, m.keys.Refresh):
			m.manager.Refresh()

		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll

		default:
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		height := msg.Height - m.chromeHeight()
		if height < 3 {
			height = 3
		}
		if !m.ready {
			m.viewport = viewport.New(msg.Width, height)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = height
		}
		m.refreshHistory()

	case tickMsg:
		m.consume()
		return m, tick()
	}

	return m, nil
}

// consume drains pending traffic and feeds the probe. This is the single
// consumer: decoder, tracker and history are only ever touched here.
func (m *Model) consume() {
	var packets []ports.Packet
	if m.manager.Mode() == config.InputPolling {
		packets = m.manager.Poll()
	} else {
		packets = m.queue.Drain()
	}

	changed := false
	for _, pkt := range packets {
		if !m.manager.Route(pkt) {
			continue
		}
		event := m.decoder.Decode(pkt.Raw, pkt.Source, pkt.Timestamp)
		m.history.Append(event)
		if event.SysEx != nil {
			m.lastSysEx = event.SysEx
		}
		changed = true
	}
	if changed {
		m.refreshHistory()
	}
}

func (m *Model) refreshHistory() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(m.historyContent())
	if m.autoScroll {
		m.viewport.GotoBottom()
	}
}

func (m *Model) setBlink(d float64) {
	if d < config.MinBlinkDuration {
		d = config.MinBlinkDuration
	}
	if d > config.MaxBlinkDuration {
		d = config.MaxBlinkDuration
	}
	m.settings.BlinkDuration = d
	m.cfg.BlinkDuration = d
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	now := m.clock.Now()

	header := headerStyle.Render(m.headerLine())
	monitor := m.monitorView(now)
	keyboard := m.keyboardView()
	controllers := m.controllersView(now)
	sysex := m.sysexView()
	historyHeader := tableHeaderStyle.Render(historyHeaderLine)
	helpView := m.help.View(m.keys)

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		monitor,
		keyboard,
		controllers,
		sysex,
		historyHeader,
		m.viewport.View(),
		helpView,
	)
}

// chromeHeight is everything above and below the history viewport.
func (m Model) chromeHeight() int {
	now := m.clock.Now()
	fixed := lipgloss.Height(headerStyle.Render(m.headerLine())) +
		lipgloss.Height(m.monitorView(now)) +
		lipgloss.Height(m.keyboardView()) +
		lipgloss.Height(m.controllersView(now)) +
		lipgloss.Height(m.sysexView()) +
		1 + // history header
		lipgloss.Height(m.help.View(m.keys))
	return fixed
}
