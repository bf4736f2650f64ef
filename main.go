package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/EMATech/midiexplorer/config"
	"github.com/EMATech/midiexplorer/ports"
	"github.com/EMATech/midiexplorer/probe"
	"github.com/EMATech/midiexplorer/tui"
)

func main() {
	probeFlag := flag.String("probe", "", "input port to patch into the probe (default: first available)")
	thruFlag := flag.String("thru", "", "output port to echo probe traffic to")
	listFlag := flag.Bool("list", false, "list MIDI ports and exit")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		cfg = config.DefaultConfig()
	}

	logger := newLogger()
	defer logger.Sync()
	logger.Info("midiexplorer starting")

	clock := probe.NewClock()
	settings := &probe.Settings{
		BlinkDuration:               cfg.BlinkDuration,
		ZeroVelocityNoteOnIsNoteOff: cfg.ZeroVelocityNoteOnIsNoteOff,
		LegacySharedClock:           cfg.LegacySharedClock,
	}
	tracker := probe.NewTracker()
	decoder := probe.NewDecoder(settings, tracker, clock, logger)
	history := probe.NewHistory(cfg.HistoryCapacity)
	queue := ports.NewQueue(ports.DefaultQueueCapacity, logger)
	manager := ports.NewManager(queue, cfg.InputMode, clock.Now, logger)
	defer manager.Close()

	manager.Refresh()

	if *listFlag {
		listPorts(manager)
		return
	}

	probePort := *probeFlag
	if probePort == "" {
		if inputs := manager.Inputs(); len(inputs) > 0 {
			probePort = inputs[0].Name
		}
	}
	if probePort == "" {
		fmt.Fprintln(os.Stderr, "warning: no MIDI input available, monitoring nothing")
		logger.Warn("no MIDI input available")
	} else if err := manager.ConnectProbe(probePort); err != nil {
		// Port unavailable is a warning, not a crash.
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
		logger.Warn("probe connection failed", zap.Error(err))
	}

	if *thruFlag != "" {
		if err := manager.ConnectThru(*thruFlag); err != nil {
			fmt.Fprintf(os.Stderr, "warning: %v\n", err)
			logger.Warn("thru connection failed", zap.Error(err))
		}
	}

	m := tui.NewModel(cfg, settings, clock, tracker, decoder, history, queue, manager, logger)
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	if err := cfg.Save(); err != nil {
		logger.Warn("saving config failed", zap.Error(err))
	}
}

func listPorts(manager *ports.Manager) {
	fmt.Println("=== MIDI Input Ports ===")
	for _, in := range manager.Inputs() {
		fmt.Printf("[%d] %s\n", in.Num, in.Name)
	}
	fmt.Println("=== MIDI Output Ports ===")
	for _, out := range manager.Outputs() {
		fmt.Printf("[%d] %s\n", out.Num, out.Name)
	}
}

// newLogger builds a file logger; the terminal belongs to the TUI.
func newLogger() *zap.Logger {
	zcfg := zap.NewDevelopmentConfig()
	if dir, err := config.ConfigDir(); err == nil {
		if err := os.MkdirAll(dir, 0755); err == nil {
			path := filepath.Join(dir, "midiexplorer.log")
			zcfg.OutputPaths = []string{path}
			zcfg.ErrorOutputPaths = []string{path}
		}
	}
	logger, err := zcfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
