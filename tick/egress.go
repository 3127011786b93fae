package tick

import (
	"context"
	"log"

	jp "github.com/go-mcbot/client/protocol"
)

// SendPacket is a request to serialise and write one packet for an entity,
// queued by user code or the scheduler and consumed by the writer task.
type SendPacket struct {
	Entity int32
	Packet jp.Packet
}

// Sender writes one packet to the wire. *conn.StateMachine satisfies this.
type Sender interface {
	Send(p jp.Packet) error
}

// egressQueueCapacity bounds the writer's backlog. Enqueue blocks once
// the queue is full, which per the backpressure rule is the intended
// behaviour: a caller issuing packets faster than the wire can carry them
// should stall, not have its packets dropped or reordered.
const egressQueueCapacity = 256

// EgressQueue is a bounded, strictly-FIFO queue of outbound packets for one
// connection, drained by a single writer task. Packet ordering per
// connection is exactly enqueue order; cross-connection ordering is
// unspecified because each connection owns its own queue and writer.
type EgressQueue struct {
	ch     chan SendPacket
	logger *log.Logger
	debug  bool
}

// NewEgressQueue builds a bounded egress queue. logger may be nil.
func NewEgressQueue(logger *log.Logger, debug bool) *EgressQueue {
	if logger == nil {
		logger = log.Default()
	}
	return &EgressQueue{
		ch:     make(chan SendPacket, egressQueueCapacity),
		logger: logger,
		debug:  debug,
	}
}

// Enqueue blocks until the packet is accepted into the queue or ctx is
// cancelled.
func (q *EgressQueue) Enqueue(ctx context.Context, sp SendPacket) error {
	select {
	case q.ch <- sp:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Run drains the queue and writes each packet via sender, in strict FIFO
// order, until ctx is cancelled or sender.Send returns a fatal error. It
// returns the first write error, or nil if ctx was cancelled first.
func (q *EgressQueue) Run(ctx context.Context, sender Sender) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case sp := <-q.ch:
			if q.debug {
				q.logger.Printf("tick: egress write entity=%d %T", sp.Entity, sp.Packet)
			}
			if err := sender.Send(sp.Packet); err != nil {
				return err
			}
		}
	}
}
