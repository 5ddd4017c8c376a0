package runtime

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"trade-lab/actor"
	"trade-lab/content"
	"trade-lab/contract"
	"trade-lab/domain"
	"trade-lab/errors"
)

// Model owns everything one simulation run shares: the scheduler, the id
// generators, the actor registry and the content sinks. It is the courier
// resolving receiver identities to live actors, the locator resolving them
// to map positions, and the fan-out point for content-sent events.
type Model struct {
	log       *slog.Logger
	scheduler *Scheduler
	ids       *domain.IDGenerator
	actors    map[domain.ActorID]*actor.Actor
	order     []domain.ActorID
	sinks     []contract.ContentSink
}

func NewModel(log *slog.Logger, start time.Time) *Model {
	return &Model{
		log:       log,
		scheduler: NewScheduler(log, start),
		ids:       NewIdentifiers(),
		actors:    make(map[domain.ActorID]*actor.Actor),
	}
}

// NewIdentifiers returns the generator a model hands out for id minting.
func NewIdentifiers() *domain.IDGenerator { return domain.NewIDGenerator() }

func (m *Model) Scheduler() *Scheduler    { return m.scheduler }
func (m *Model) IDs() *domain.IDGenerator { return m.ids }
func (m *Model) Now() time.Time           { return m.scheduler.Now() }

// NewActor creates an actor wired to this model's scheduler, courier and
// sink fan-out, and registers it.
func (m *Model) NewActor(name string, location domain.Location) *actor.Actor {
	a := actor.NewActor(m.log, m.scheduler, m, m, name, location)
	m.actors[a.ID] = a
	m.order = append(m.order, a.ID)
	return a
}

// Actor looks up a registered actor by identity.
func (m *Model) Actor(id domain.ActorID) (*actor.Actor, bool) {
	a, ok := m.actors[id]
	return a, ok
}

// Actors returns all registered actors in registration order.
func (m *Model) Actors() []*actor.Actor {
	out := make([]*actor.Actor, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, m.actors[id])
	}
	return out
}

// LocationOf implements contract.Locator.
func (m *Model) LocationOf(id domain.ActorID) (domain.Location, bool) {
	a, ok := m.actors[id]
	if !ok {
		return domain.Location{}, false
	}
	return a.Location, true
}

// AddSink registers a content sink. Sinks see every successful send.
func (m *Model) AddSink(sinks ...contract.ContentSink) {
	m.sinks = append(m.sinks, sinks...)
}

// Consume implements contract.ContentSink by fanning the event out to
// every registered sink. A failing sink is reported but never stops the
// others.
func (m *Model) Consume(e contract.SentContent) error {
	for _, sink := range m.sinks {
		if err := sink.Consume(e); err != nil {
			m.log.Warn("sink failed", "error", err)
		}
	}
	return nil
}

// Deliver implements contract.Courier: schedule the receiver's Receive
// after the delay. The callback re-resolves nothing and checks nothing;
// cancellation semantics live in the handlers, not here.
func (m *Model) Deliver(c content.Content, delay time.Duration) error {
	receiver, ok := m.actors[c.Receiver()]
	if !ok {
		return fmt.Errorf("deliver %s: %w", c.Kind(), errors.ErrUnknownActor)
	}
	return m.scheduler.After(delay, func() { receiver.Receive(c) })
}

// Every schedules fn periodically, starting one interval from now, until
// the scheduler drains or the horizon passes. Periodic processes such as
// restock checks use it.
func (m *Model) Every(interval time.Duration, fn func()) error {
	if interval <= 0 {
		return errors.ErrNegativeDelay
	}
	var tick func()
	tick = func() {
		fn()
		// Re-arm; errors cannot occur for a positive interval.
		_ = m.scheduler.After(interval, tick)
	}
	return m.scheduler.After(interval, tick)
}

// Run executes the simulation until the horizon (zero: until the queue
// drains). A panicking handler is a defect in scenario code; the model
// recovers, logs it and stops the run instead of crashing the process.
func (m *Model) Run(ctx context.Context, horizon time.Time) (err error) {
	defer func() {
		if r := recover(); r != nil {
			m.log.Error("simulation panicked", "panic", r)
			err = fmt.Errorf("simulation panicked: %v", r)
		}
	}()
	return m.scheduler.RunUntil(ctx, horizon)
}
