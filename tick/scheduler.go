// Package tick drives the fixed-rate simulation loop: a single logical
// scheduler owns one client's world and steps it either on a 50ms tick
// boundary or immediately when ingress packets arrive, per the teacher's
// read/write task split (java_protocol.TCPClient/BaseTCP) generalised from
// a blocking request/response loop into a scheduler with two trigger
// sources.
package tick

import (
	"context"
	"log"
	"time"
)

// tickInterval is the fixed simulation rate: one GameTick every 50ms (20Hz).
const tickInterval = 50 * time.Millisecond

// RunFunc is invoked once per scheduler run, whether triggered by the
// ticker or by an immediate-run request.
type RunFunc func()

// Scheduler runs RunFunc at a fixed 20Hz rate, or sooner when Nudge is
// called after ingress packets arrive. Only one run executes at a time;
// Nudge while a run is already pending for this tick is a no-op (the
// channel has capacity 1, matching azalea's unbounded-but-coalescing
// run_schedule_sender in spirit: bursts of ingress collapse to one extra
// run, they don't queue up one run per packet).
type Scheduler struct {
	run     RunFunc
	trigger chan struct{}
	logger  *log.Logger
	debug   bool
}

// NewScheduler builds a Scheduler that calls run on every tick or nudge.
// logger may be nil, in which case the standard logger is used.
func NewScheduler(run RunFunc, logger *log.Logger, debug bool) *Scheduler {
	if logger == nil {
		logger = log.Default()
	}
	return &Scheduler{
		run:     run,
		trigger: make(chan struct{}, 1),
		logger:  logger,
		debug:   debug,
	}
}

// Nudge requests a scheduler run outside of the regular tick boundary,
// e.g. right after a batch of packets has been enqueued. Non-blocking:
// if a nudge is already pending, this is a no-op.
func (s *Scheduler) Nudge() {
	select {
	case s.trigger <- struct{}{}:
	default:
	}
}

// Run blocks until ctx is cancelled, invoking the scheduler's RunFunc on
// every 50ms tick and on every Nudge. Runs never overlap: this goroutine
// is the only caller of RunFunc.
func (s *Scheduler) Run(ctx context.Context) {
	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-s.trigger:
		case <-ticker.C:
		}
		s.runOnce()
	}
}

func (s *Scheduler) runOnce() {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Printf("tick: scheduler run panicked: %v", r)
		}
	}()
	if s.debug {
		s.logger.Printf("tick: running schedule")
	}
	s.run()
}
