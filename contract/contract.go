//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"time"

	"trade-lab/content"
	"trade-lab/domain"
)

// Scheduler is the global time-ordered callback queue driving the
// simulation. Callbacks fire in non-decreasing time order; callbacks for
// equal times fire in schedule order. Execution is cooperative: a callback
// runs to completion before the next one starts, so handler logic never
// needs locks. There is no cancellation primitive; a handler that must
// suppress a previously scheduled action checks store state inside the
// later callback instead.
type Scheduler interface {
	Now() time.Time
	// At schedules fn at an absolute simulation time. A time already in
	// the past is clamped to now, next in queue order.
	At(t time.Time, fn func())
	// After schedules fn after a relative delay. A negative delay is a
	// usage error.
	After(delay time.Duration, fn func()) error
}

// Courier delivers content to its receiver after a delay. Implemented by
// the model, which resolves the receiver identity to a live actor. A zero
// delay means same logical time, next in queue order, so a send always
// strictly precedes its receive.
type Courier interface {
	Deliver(c content.Content, delay time.Duration) error
}

// SentContent is the observability event fired on every successful send.
type SentContent struct {
	Sender  domain.ActorID
	Content content.Content
	At      time.Time
}

// ContentSink consumes sent-content events: monitoring counters, the
// negotiation ledger, external animation.
type ContentSink interface {
	Consume(e SentContent) error
}

// Inventory is the physical stock collaborator. Quantities are expressed
// in the product's unit of measure. Available excludes reservations.
type Inventory interface {
	Available(p domain.Product) domain.Amount
	// Incoming is the amount already ordered but not yet received.
	Incoming(p domain.Product) domain.Amount
	Reserve(p domain.Product, amount domain.Amount) error
	Release(p domain.Product, amount domain.Amount)
	// Order books an expected incoming amount.
	Order(p domain.Product, amount domain.Amount)
	// Enter adds received stock and clears the matching incoming amount.
	Enter(p domain.Product, amount domain.Amount)
	// Remove takes previously reserved stock out for shipping.
	Remove(p domain.Product, amount domain.Amount) error
}

// TransportPlanner is the route collaborator: given an origin and a
// destination, return a priced route.
type TransportPlanner interface {
	Route(from, to domain.Location) (domain.TransportOption, error)
}

// Locator resolves an actor identity to its location. Quote selection uses
// it to rank sellers by distance from the buyer.
type Locator interface {
	LocationOf(id domain.ActorID) (domain.Location, bool)
}
