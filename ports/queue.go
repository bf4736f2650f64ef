package ports

import (
	"go.uber.org/zap"

	"github.com/EMATech/midiexplorer/midi"
)

// ProbeDest marks packets patched into the protocol analyzer.
const ProbeDest = "probe_in"

// Packet is one captured message with its capture envelope, mirroring what
// the receive callback enqueues: when it arrived, where from, where to.
type Packet struct {
	Timestamp float64 // session seconds at capture
	Source    string  // input port name
	Dest      string  // ProbeDest or an output port name
	Raw       midi.RawEvent
}

// Queue is the process-wide FIFO between producer callbacks and the single
// consumer. Producers never block: when the queue is full the packet is
// dropped and logged.
type Queue struct {
	ch  chan Packet
	log *zap.Logger
}

// DefaultQueueCapacity is plenty for one consumer tick at wire rate.
const DefaultQueueCapacity = 1024

// NewQueue returns a queue with the given capacity.
func NewQueue(capacity int, log *zap.Logger) *Queue {
	if capacity <= 0 {
		capacity = DefaultQueueCapacity
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Queue{ch: make(chan Packet, capacity), log: log}
}

// Put enqueues without blocking.
func (q *Queue) Put(pkt Packet) {
	select {
	case q.ch <- pkt:
	default:
		q.log.Warn("queue full, dropping packet", zap.String("source", pkt.Source))
	}
}

// TryGet dequeues without blocking.
func (q *Queue) TryGet() (Packet, bool) {
	select {
	case pkt := <-q.ch:
		return pkt, true
	default:
		return Packet{}, false
	}
}

// Drain empties the queue, returning packets in arrival order.
func (q *Queue) Drain() []Packet {
	var out []Packet
	for {
		pkt, ok := q.TryGet()
		if !ok {
			return out
		}
		out = append(out, pkt)
	}
}
