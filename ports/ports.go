package ports

import (
	"fmt"
	"runtime"
	"sync"

	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
	"go.uber.org/zap"

	"github.com/EMATech/midiexplorer/config"
)

// InPort wraps one hardware or virtual MIDI input. Once opened toward a
// destination, the driver callback timestamps each message under the port
// lock and hands it to the queue (callback mode) or buffers it until the
// consumer polls (polling mode).
type InPort struct {
	Name string
	Num  int

	port drivers.In
	stop func()

	mu           sync.Mutex
	mode         config.InputMode
	dest         string
	queue        *Queue
	now          func() float64
	log          *zap.Logger
	pending      []Packet
	lastDeviceMs int32
	hasDeviceMs  bool
}

// Open attaches the driver callback, delivering messages toward dest.
func (p *InPort) Open(dest string) error {
	p.mu.Lock()
	p.dest = dest
	p.mu.Unlock()

	stop, err := gomidi.ListenTo(p.port, p.receive,
		gomidi.UseSysEx(), gomidi.UseActiveSense(), gomidi.UseTimeCode())
	if err != nil {
		return fmt.Errorf("open input %s: %w", p.Name, err)
	}
	p.stop = stop
	p.log.Info("opened MIDI input", zap.String("port", p.Name), zap.String("dest", dest))
	return nil
}

// receive runs on the driver's thread.
func (p *InPort) receive(msg gomidi.Message, timestampms int32) {
	p.mu.Lock()
	defer p.mu.Unlock()

	timestamp := p.now()
	raw := FromBytes(msg)
	if p.hasDeviceMs && timestampms >= p.lastDeviceMs {
		delta := float64(timestampms-p.lastDeviceMs) / 1000
		raw.DeviceDelta = &delta
	}
	p.lastDeviceMs = timestampms
	p.hasDeviceMs = true

	pkt := Packet{Timestamp: timestamp, Source: p.Name, Dest: p.dest, Raw: raw}
	if p.mode == config.InputPolling {
		p.pending = append(p.pending, pkt)
		return
	}
	p.queue.Put(pkt)
}

// SetMode switches between callback and polling delivery.
func (p *InPort) SetMode(mode config.InputMode) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.mode = mode
}

// Poll drains the packets buffered since the last poll. Only meaningful in
// polling mode; in callback mode the buffer stays empty.
func (p *InPort) Poll() []Packet {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := p.pending
	p.pending = nil
	return out
}

// Close detaches the driver callback.
func (p *InPort) Close() {
	if p.stop != nil {
		p.stop()
		p.stop = nil
	}
}

// OutPort wraps one MIDI output.
type OutPort struct {
	Name string
	Num  int

	port drivers.Out
	send func(gomidi.Message) error
	log  *zap.Logger
}

// Open prepares the port for sending.
func (p *OutPort) Open() error {
	send, err := gomidi.SendTo(p.port)
	if err != nil {
		return fmt.Errorf("open output %s: %w", p.Name, err)
	}
	p.send = send
	p.log.Info("opened MIDI output", zap.String("port", p.Name))
	return nil
}

// Send writes raw wire bytes to the port.
func (p *OutPort) Send(b []byte) error {
	if p.send == nil {
		return fmt.Errorf("output %s not open", p.Name)
	}
	return p.send(gomidi.Message(b))
}

// Close releases the port.
func (p *OutPort) Close() {
	if p.port != nil {
		p.port.Close()
	}
	p.send = nil
}

// Manager owns port enumeration and the patch state: which input feeds the
// probe, which output serves as probe Thru, and direct port-to-port links.
type Manager struct {
	log   *zap.Logger
	now   func() float64
	queue *Queue

	mu      sync.Mutex
	mode    config.InputMode
	ins     []*InPort
	outs    []*OutPort
	probeIn *InPort
	thru    *OutPort
	links   map[string]*OutPort // input name -> echoed output
}

// NewManager wires a port manager. now provides session-epoch seconds for
// capture timestamps.
func NewManager(queue *Queue, mode config.InputMode, now func() float64, log *zap.Logger) *Manager {
	if log == nil {
		log = zap.NewNop()
	}
	return &Manager{
		log:   log,
		now:   now,
		queue: queue,
		mode:  mode,
		links: make(map[string]*OutPort),
	}
}

// DedupePortNames removes duplicate names from a port list. Needed because
// macOS lists every port twice and Linux lists the Through port twice.
func DedupePortNames(names []string) []string {
	if runtime.GOOS != "darwin" && runtime.GOOS != "linux" {
		return names
	}
	seen := make(map[string]struct{}, len(names))
	out := names[:0:0]
	for _, name := range names {
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	return out
}

// Refresh closes all open ports and re-enumerates the system's inputs and
// outputs.
func (m *Manager) Refresh() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.closeAllLocked()

	inPorts := gomidi.GetInPorts()
	names := make([]string, len(inPorts))
	byName := make(map[string]drivers.In, len(inPorts))
	for i, in := range inPorts {
		names[i] = in.String()
		byName[in.String()] = inPorts[i]
	}
	m.ins = nil
	for i, name := range DedupePortNames(names) {
		m.ins = append(m.ins, &InPort{
			Name:  name,
			Num:   i,
			port:  byName[name],
			mode:  m.mode,
			queue: m.queue,
			now:   m.now,
			log:   m.log,
		})
	}

	outPorts := gomidi.GetOutPorts()
	names = make([]string, len(outPorts))
	outByName := make(map[string]drivers.Out, len(outPorts))
	for i, out := range outPorts {
		names[i] = out.String()
		outByName[out.String()] = outPorts[i]
	}
	m.outs = nil
	for i, name := range DedupePortNames(names) {
		m.outs = append(m.outs, &OutPort{
			Name: name,
			Num:  i,
			port: outByName[name],
			log:  m.log,
		})
	}

	m.log.Debug("refreshed MIDI ports",
		zap.Int("inputs", len(m.ins)), zap.Int("outputs", len(m.outs)))
}

// Inputs returns the enumerated input ports.
func (m *Manager) Inputs() []*InPort {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*InPort(nil), m.ins...)
}

// Outputs returns the enumerated output ports.
func (m *Manager) Outputs() []*OutPort {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*OutPort(nil), m.outs...)
}

// FindInput returns the named input port.
func (m *Manager) FindInput(name string) (*InPort, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, in := range m.ins {
		if in.Name == name {
			return in, nil
		}
	}
	return nil, fmt.Errorf("input port %q not found", name)
}

// FindOutput returns the named output port.
func (m *Manager) FindOutput(name string) (*OutPort, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, out := range m.outs {
		if out.Name == name {
			return out, nil
		}
	}
	return nil, fmt.Errorf("output port %q not found", name)
}

// ConnectProbe patches an input into the analyzer.
func (m *Manager) ConnectProbe(inputName string) error {
	in, err := m.FindInput(inputName)
	if err != nil {
		return err
	}
	if err := in.Open(ProbeDest); err != nil {
		return err
	}
	m.mu.Lock()
	m.probeIn = in
	m.mu.Unlock()
	return nil
}

// ConnectThru patches the probe Thru pin to an output, echoing every message
// the probe receives.
func (m *Manager) ConnectThru(outputName string) error {
	out, err := m.FindOutput(outputName)
	if err != nil {
		return err
	}
	if err := out.Open(); err != nil {
		return err
	}
	m.mu.Lock()
	m.thru = out
	m.mu.Unlock()
	return nil
}

// ConnectPorts patches an input directly to an output.
func (m *Manager) ConnectPorts(inputName, outputName string) error {
	out, err := m.FindOutput(outputName)
	if err != nil {
		return err
	}
	if err := out.Open(); err != nil {
		return err
	}
	in, err := m.FindInput(inputName)
	if err != nil {
		out.Close()
		return err
	}
	if err := in.Open(out.Name); err != nil {
		out.Close()
		return err
	}
	m.mu.Lock()
	m.links[in.Name] = out
	m.mu.Unlock()
	return nil
}

// SetMode switches the delivery mode on all enumerated inputs.
func (m *Manager) SetMode(mode config.InputMode) {
	m.mu.Lock()
	m.mode = mode
	ins := append([]*InPort(nil), m.ins...)
	m.mu.Unlock()
	for _, in := range ins {
		in.SetMode(mode)
	}
	m.log.Info("input mode changed", zap.String("mode", string(mode)))
}

// Mode returns the current delivery mode.
func (m *Manager) Mode() config.InputMode {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.mode
}

// Poll drains the pending buffers of all open inputs, in port order.
// Used by the consumer tick in polling mode.
func (m *Manager) Poll() []Packet {
	m.mu.Lock()
	ins := append([]*InPort(nil), m.ins...)
	m.mu.Unlock()

	var out []Packet
	for _, in := range ins {
		out = append(out, in.Poll()...)
	}
	return out
}

// Route handles a packet's echo destinations and reports whether the packet
// is for the probe. Probe traffic is additionally echoed to the Thru output
// when one is patched.
func (m *Manager) Route(pkt Packet) bool {
	m.mu.Lock()
	thru := m.thru
	var link *OutPort
	if pkt.Dest != ProbeDest {
		link = m.links[pkt.Source]
	}
	m.mu.Unlock()

	if pkt.Dest == ProbeDest {
		if thru != nil {
			if err := thru.Send(pkt.Raw.Bytes); err != nil {
				m.log.Warn("thru echo failed", zap.Error(err))
			}
		}
		return true
	}
	if link != nil && link.Name == pkt.Dest {
		if err := link.Send(pkt.Raw.Bytes); err != nil {
			m.log.Warn("port echo failed", zap.String("dest", pkt.Dest), zap.Error(err))
		}
	}
	return false
}

// Close releases every open port.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closeAllLocked()
}

func (m *Manager) closeAllLocked() {
	for _, in := range m.ins {
		in.Close()
	}
	for _, out := range m.outs {
		out.Close()
	}
	m.probeIn = nil
	m.thru = nil
	m.links = make(map[string]*OutPort)
}
