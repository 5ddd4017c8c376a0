// Package runtime drives the simulation: the time-ordered event queue and
// the model that owns the actor registry, the id generators and the
// observability fan-out. It orchestrates without containing business logic
// or domain rules.
package runtime

import (
	"container/heap"
	"context"
	"log/slog"
	"time"

	"trade-lab/errors"
)

// Scheduler is the single global event queue. Callbacks fire in
// non-decreasing time order; equal times fire in schedule order (FIFO
// tie-break via a sequence number). Execution is single-threaded and
// cooperative: Run pops one callback at a time and runs it to completion.
type Scheduler struct {
	log   *slog.Logger
	now   time.Time
	seq   uint64
	queue eventQueue
}

func NewScheduler(log *slog.Logger, start time.Time) *Scheduler {
	return &Scheduler{log: log, now: start}
}

// Now is the current simulation time.
func (s *Scheduler) Now() time.Time { return s.now }

// Pending is the number of callbacks still queued.
func (s *Scheduler) Pending() int { return s.queue.Len() }

// At schedules fn at an absolute simulation time. A time already in the
// past is clamped to now, so the callback fires next in queue order.
func (s *Scheduler) At(t time.Time, fn func()) {
	if t.Before(s.now) {
		t = s.now
	}
	s.seq++
	heap.Push(&s.queue, &scheduledEvent{at: t, seq: s.seq, fn: fn})
}

// After schedules fn after a relative delay. Negative delays are usage
// errors; a zero delay fires at the same logical time, after everything
// already scheduled for it.
func (s *Scheduler) After(delay time.Duration, fn func()) error {
	if delay < 0 {
		return errors.ErrNegativeDelay
	}
	s.At(s.now.Add(delay), fn)
	return nil
}

// Run pops and executes callbacks until the queue is empty or the context
// is canceled. The clock jumps from event to event; there is no wall-clock
// pacing.
func (s *Scheduler) Run(ctx context.Context) error {
	return s.RunUntil(ctx, time.Time{})
}

// RunUntil behaves like Run but stops before executing any callback
// scheduled after the horizon. A zero horizon means no limit.
func (s *Scheduler) RunUntil(ctx context.Context, horizon time.Time) error {
	for s.queue.Len() > 0 {
		if err := ctx.Err(); err != nil {
			return err
		}
		next := s.queue[0]
		if !horizon.IsZero() && next.at.After(horizon) {
			s.now = horizon
			return nil
		}
		heap.Pop(&s.queue)
		s.now = next.at
		next.fn()
	}
	return nil
}

type scheduledEvent struct {
	at  time.Time
	seq uint64
	fn  func()
}

type eventQueue []*scheduledEvent

func (q eventQueue) Len() int { return len(q) }

func (q eventQueue) Less(i, j int) bool {
	if q[i].at.Equal(q[j].at) {
		return q[i].seq < q[j].seq
	}
	return q[i].at.Before(q[j].at)
}

func (q eventQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *eventQueue) Push(x any) { *q = append(*q, x.(*scheduledEvent)) }

func (q *eventQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]
	return item
}
