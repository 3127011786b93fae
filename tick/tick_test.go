package tick

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	jp "github.com/go-mcbot/client/protocol"
	ns "github.com/go-mcbot/client/protocol/net_structures"
)

// fakePacket is a minimal jp.Packet stand-in for queue/bus tests that never
// touch the wire.
type fakePacket struct{ tag int }

func (fakePacket) ID() ns.VarInt                    { return 0 }
func (fakePacket) State() jp.State                  { return jp.StatePlay }
func (fakePacket) Bound() jp.Bound                  { return jp.S2C }
func (fakePacket) Read(buf *ns.PacketBuffer) error  { return nil }
func (fakePacket) Write(buf *ns.PacketBuffer) error { return nil }

func TestSchedulerNudgeTriggersRun(t *testing.T) {
	var runs int32
	done := make(chan struct{})
	s := NewScheduler(func() {
		if atomic.AddInt32(&runs, 1) == 1 {
			close(done)
		}
	}, nil, false)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go s.Run(ctx)

	s.Nudge()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("expected Nudge to trigger a run")
	}
}

func TestSchedulerNudgeCoalesces(t *testing.T) {
	s := NewScheduler(func() {}, nil, false)
	s.Nudge()
	s.Nudge()
	s.Nudge()
	if len(s.trigger) != 1 {
		t.Fatalf("trigger channel len = %d, want 1 (coalesced)", len(s.trigger))
	}
}

func TestSchedulerRunPanicRecovers(t *testing.T) {
	var ran int32
	s := NewScheduler(func() {
		atomic.AddInt32(&ran, 1)
		panic("boom")
	}, nil, false)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go s.Run(ctx)

	s.Nudge()
	time.Sleep(50 * time.Millisecond)
	s.Nudge()
	time.Sleep(50 * time.Millisecond)

	if atomic.LoadInt32(&ran) < 2 {
		t.Fatalf("expected the scheduler to survive a panicking run and keep running, ran=%d", ran)
	}
}

func TestIngressQueueDrainClears(t *testing.T) {
	q := NewIngressQueue()
	q.Enqueue(PacketEvent{Entity: 1, Packet: fakePacket{tag: 1}})
	q.Enqueue(PacketEvent{Entity: 1, Packet: fakePacket{tag: 2}})

	drained := q.Drain()
	if len(drained) != 2 {
		t.Fatalf("len(drained) = %d, want 2", len(drained))
	}

	again := q.Drain()
	if len(again) != 0 {
		t.Fatalf("second Drain returned %d events, want 0 (batch must clear)", len(again))
	}
}

func TestIngressQueueOrderPreserved(t *testing.T) {
	q := NewIngressQueue()
	for i := 0; i < 5; i++ {
		q.Enqueue(PacketEvent{Entity: 1, Packet: fakePacket{tag: i}})
	}
	drained := q.Drain()
	for i, ev := range drained {
		if ev.Packet.(fakePacket).tag != i {
			t.Fatalf("drained[%d].tag = %d, want %d (arrival order must be preserved)", i, ev.Packet.(fakePacket).tag, i)
		}
	}
}

func TestEventBusPublishesToAllSubscribers(t *testing.T) {
	b := NewEventBus(nil)
	var mu sync.Mutex
	var seen []int

	b.Subscribe(func(ev Event) {
		mu.Lock()
		defer mu.Unlock()
		seen = append(seen, ev.(int)*10)
	})
	b.Subscribe(func(ev Event) {
		mu.Lock()
		defer mu.Unlock()
		seen = append(seen, ev.(int)*100)
	})

	b.Publish(3)

	mu.Lock()
	defer mu.Unlock()
	if len(seen) != 2 || seen[0] != 30 || seen[1] != 300 {
		t.Fatalf("seen = %v, want [30 300]", seen)
	}
}

func TestEventBusHandlerPanicDoesNotStopOthers(t *testing.T) {
	b := NewEventBus(nil)
	var secondCalled bool

	b.Subscribe(func(Event) { panic("bad handler") })
	b.Subscribe(func(Event) { secondCalled = true })

	b.Publish("x")

	if !secondCalled {
		t.Fatal("expected the second handler to still run after the first panicked")
	}
}

type fakeSender struct {
	mu  sync.Mutex
	got []jp.Packet
}

func (s *fakeSender) Send(p jp.Packet) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.got = append(s.got, p)
	return nil
}

func TestEgressQueueFIFO(t *testing.T) {
	q := NewEgressQueue(nil, false)
	sender := &fakeSender{}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	for i := 0; i < 4; i++ {
		if err := q.Enqueue(ctx, SendPacket{Entity: 1, Packet: fakePacket{tag: i}}); err != nil {
			t.Fatalf("Enqueue: %v", err)
		}
	}

	done := make(chan struct{})
	go func() {
		q.Run(ctx, sender)
		close(done)
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()
	<-done

	sender.mu.Lock()
	defer sender.mu.Unlock()
	if len(sender.got) != 4 {
		t.Fatalf("sender received %d packets, want 4", len(sender.got))
	}
	for i, p := range sender.got {
		if p.(fakePacket).tag != i {
			t.Fatalf("sender.got[%d].tag = %d, want %d (FIFO order required)", i, p.(fakePacket).tag, i)
		}
	}
}

func TestEgressQueueEnqueueBlocksUntilCancelled(t *testing.T) {
	q := NewEgressQueue(nil, false)
	// Fill the queue without a consumer running.
	fullCtx := context.Background()
	for i := 0; i < egressQueueCapacity; i++ {
		if err := q.Enqueue(fullCtx, SendPacket{Entity: 1, Packet: fakePacket{tag: i}}); err != nil {
			t.Fatalf("Enqueue #%d: %v", i, err)
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := q.Enqueue(ctx, SendPacket{Entity: 1, Packet: fakePacket{tag: -1}}); !errors.Is(err, context.Canceled) {
		t.Fatalf("Enqueue on a full queue with a cancelled context = %v, want context.Canceled", err)
	}
}
