package actor

import (
	"log/slog"
	"time"

	"trade-lab/content"
	"trade-lab/contract"
	"trade-lab/domain"
	"trade-lab/errors"
)

// Actor is an addressable simulated entity: identity, a location, one
// content store and a set of roles. Receiving content is its single entry
// point; the content is recorded first, then fanned out to every role.
type Actor struct {
	ID       domain.ActorID
	Name     string
	Location domain.Location

	log       *slog.Logger
	scheduler contract.Scheduler
	courier   contract.Courier
	sink      contract.ContentSink
	store     *ContentStore
	roles     map[domain.RoleKind]*Role
	roleOrder []domain.RoleKind
}

// NewActor creates an actor with a fresh identity and an empty store.
// Roles are attached afterwards via NewRole. sink may be nil when nothing
// observes the run.
func NewActor(log *slog.Logger, scheduler contract.Scheduler, courier contract.Courier,
	sink contract.ContentSink, name string, location domain.Location) *Actor {
	id := domain.NewActorID()
	return &Actor{
		ID:        id,
		Name:      name,
		Location:  location,
		log:       log,
		scheduler: scheduler,
		courier:   courier,
		sink:      sink,
		store:     NewContentStore(log, id),
	}
}

func (a *Actor) Store() *ContentStore          { return a.store }
func (a *Actor) Scheduler() contract.Scheduler { return a.scheduler }

// Role returns the actor's role of the given kind, or nil.
func (a *Actor) Role(kind domain.RoleKind) *Role { return a.roles[kind] }

func (a *Actor) registerRole(r *Role) error {
	if a.roles == nil {
		a.roles = make(map[domain.RoleKind]*Role)
	}
	if _, ok := a.roles[r.kind]; ok {
		return errors.ErrDuplicateRole
	}
	a.roles[r.kind] = r
	a.roleOrder = append(a.roleOrder, r.kind)
	return nil
}

// Receive is the single entry point for delivered content. Content
// addressed to somebody else is a protocol anomaly: it is logged but still
// processed. The content is recorded in the store before dispatch, so by
// the time a handler runs, causal cleanup has already retired whatever
// this document supersedes. Every role gets a chance; dispatch is not
// first-match-wins across roles.
func (a *Actor) Receive(c content.Content) {
	if c.Receiver() != a.ID {
		a.log.Warn("content delivered to wrong receiver",
			"actor", a.Name, "kind", c.Kind(), "content_id", c.UniqueID(),
			"addressed_to", c.Receiver())
	}

	a.store.Add(c, false)

	handled := false
	for _, kind := range a.roleOrder {
		if a.roles[kind].HandleContent(c) {
			handled = true
		}
	}
	if !handled {
		a.log.Warn("no handler for content",
			"actor", a.Name, "kind", c.Kind(), "content_id", c.UniqueID())
	}
}

// Send schedules the content's delivery after the delay, records it as
// sent and fires the content-sent observability event. A sender mismatch
// is logged but the content is sent anyway. A zero delay delivers at the
// same logical time, next in queue order. Nothing undeliverable ever
// enters the sent history: recording happens only once the courier has
// accepted the content.
func (a *Actor) Send(c content.Content, delay time.Duration) error {
	if delay < 0 {
		return errors.ErrNegativeDelay
	}
	if c.Sender() != a.ID {
		a.log.Warn("content sent by a party other than its declared sender",
			"actor", a.Name, "kind", c.Kind(), "content_id", c.UniqueID(),
			"declared_sender", c.Sender())
	}

	if err := a.courier.Deliver(c, delay); err != nil {
		a.log.Warn("delivery failed",
			"actor", a.Name, "kind", c.Kind(), "content_id", c.UniqueID(), "error", err)
		return err
	}

	a.store.Add(c, true)

	if a.sink != nil {
		event := contract.SentContent{Sender: a.ID, Content: c, At: a.scheduler.Now()}
		if err := a.sink.Consume(event); err != nil {
			a.log.Warn("content sink failed", "actor", a.Name, "error", err)
		}
	}
	return nil
}
