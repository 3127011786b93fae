package tick

import (
	"sync"

	jp "github.com/go-mcbot/client/protocol"
)

// PacketEvent pairs a decoded packet with the entity (connection) it
// arrived on. Multiple clients may share a scheduler in principle, so
// every queued event carries its origin explicitly rather than relying on
// queue identity.
type PacketEvent struct {
	Entity int32
	Packet jp.Packet
}

// IngressQueue accumulates PacketEvents as the reader task deserialises
// them, for the scheduler to drain once per run. The reader task is the
// only producer; the scheduler's dispatch stage is the only consumer.
// Queueing is unbounded on purpose: draining happens every tick, so the
// implementation favours memory growth under overload (visible to an
// operator) over dropping or blocking the reader mid-frame.
type IngressQueue struct {
	mu    sync.Mutex
	batch []PacketEvent
}

// NewIngressQueue builds an empty queue.
func NewIngressQueue() *IngressQueue {
	return &IngressQueue{}
}

// Enqueue appends ev to the current batch.
func (q *IngressQueue) Enqueue(ev PacketEvent) {
	q.mu.Lock()
	q.batch = append(q.batch, ev)
	q.mu.Unlock()
}

// Drain returns every event queued since the last Drain and clears the
// batch, so a dispatch stage that calls Drain once per run never
// double-processes an event even if Enqueue races with it.
func (q *IngressQueue) Drain() []PacketEvent {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.batch) == 0 {
		return nil
	}
	drained := q.batch
	q.batch = nil
	return drained
}
