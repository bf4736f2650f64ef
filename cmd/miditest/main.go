package main

import (
	"encoding/hex"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/EMATech/midiexplorer/config"
	"github.com/EMATech/midiexplorer/ports"
	"github.com/EMATech/midiexplorer/probe"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		return
	}

	switch os.Args[1] {
	case "list":
		listPorts()
	case "dump":
		if len(os.Args) < 3 {
			usage()
			return
		}
		dump(os.Args[2])
	case "sysex":
		if len(os.Args) < 3 {
			usage()
			return
		}
		decodeSysEx(strings.Join(os.Args[2:], ""))
	default:
		usage()
	}
}

func usage() {
	fmt.Println("MIDI Test Scripts")
	fmt.Println("")
	fmt.Println("Commands:")
	fmt.Println("  list          - List all MIDI ports")
	fmt.Println("  dump <port>   - Decode traffic from a port to stdout")
	fmt.Println("  sysex <hex>   - Decode a sysex payload offline (framing optional)")
}

func newManager() (*ports.Manager, *ports.Queue, *probe.Clock) {
	clock := probe.NewClock()
	queue := ports.NewQueue(ports.DefaultQueueCapacity, zap.NewNop())
	manager := ports.NewManager(queue, config.InputCallback, clock.Now, zap.NewNop())
	manager.Refresh()
	return manager, queue, clock
}

func listPorts() {
	manager, _, _ := newManager()
	defer manager.Close()

	fmt.Println("=== MIDI Input Ports ===")
	for _, in := range manager.Inputs() {
		fmt.Printf("[%d] %s\n", in.Num, in.Name)
	}
	fmt.Println("")
	fmt.Println("=== MIDI Output Ports ===")
	for _, out := range manager.Outputs() {
		fmt.Printf("[%d] %s\n", out.Num, out.Name)
	}
}

func dump(portName string) {
	manager, queue, clock := newManager()
	defer manager.Close()

	if err := manager.ConnectProbe(portName); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}

	settings := probe.DefaultSettings()
	decoder := probe.NewDecoder(settings, probe.NewTracker(), clock, zap.NewNop())

	fmt.Printf("Dumping from %q, ctrl+c to stop\n", portName)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt)

	ticker := time.NewTicker(10 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-sigChan:
			return
		case <-ticker.C:
			for _, pkt := range queue.Drain() {
				if !manager.Route(pkt) {
					continue
				}
				ev := decoder.Decode(pkt.Raw, pkt.Source, pkt.Timestamp)
				fmt.Printf("%12.3f %8.2fms  %-22s ch:%-6s %-16s %s\n",
					ev.Timestamp*1000, ev.DeltaMs, ev.StatusLabel,
					ev.ChannelLabel, ev.Data0.Display(), ev.Data1.Display())
				if ev.SysEx != nil {
					fmt.Printf("    %s %s %s\n", ev.SysEx.IDType, probe.HexString(ev.SysEx.ID), ev.SysEx.IDLabel)
				}
			}
		}
	}
}

func decodeSysEx(arg string) {
	cleaned := strings.Map(func(r rune) rune {
		if r == ' ' || r == ',' {
			return -1
		}
		return r
	}, arg)

	payload, err := hex.DecodeString(cleaned)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: bad hex: %v\n", err)
		os.Exit(1)
	}

	// Accept both framed and bare payloads.
	wire := payload
	if len(wire) == 0 || wire[0] != 0xF0 {
		wire = append([]byte{0xF0}, wire...)
	}
	if wire[len(wire)-1] != 0xF7 {
		wire = append(wire, 0xF7)
	}

	raw := ports.FromBytes(wire)
	clock := probe.NewClock()
	decoder := probe.NewDecoder(probe.DefaultSettings(), probe.NewTracker(), clock, zap.NewNop())
	ev := decoder.Decode(raw, "offline", clock.Now())

	dec := ev.SysEx
	fmt.Printf("Raw:               %s\n", ev.RawHex)
	fmt.Printf("%-18s %s %s\n", dec.IDType+":", probe.HexString(dec.ID), dec.IDLabel)
	if dec.DeviceID != nil {
		fmt.Printf("Device ID:         %02X\n", *dec.DeviceID)
	}
	if dec.SubID1 != nil {
		fmt.Printf("Sub-ID#1:          %02X %s\n", *dec.SubID1, dec.SubID1Label)
	}
	if dec.SubID2 != nil {
		fmt.Printf("Sub-ID#2:          %02X %s\n", *dec.SubID2, dec.SubID2Label)
	}
	fmt.Printf("Undecoded payload: %s\n", probe.HexString(dec.Payload))
}
