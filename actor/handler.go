// Package actor implements the dispatch kernel: actors fan incoming
// content out to their roles, roles look up one handler per content kind,
// and every piece of content sent or received lands in the actor's content
// store before any business logic runs.
package actor

import (
	"time"

	"trade-lab/content"
	"trade-lab/contract"
)

// ContentHandler is the unit of business logic. Handle decides
// applicability, optionally emits new content, and reports whether it
// handled the item.
type ContentHandler interface {
	Handle(c content.Content) bool
}

// HandlerFunc adapts a plain function to ContentHandler.
type HandlerFunc func(c content.Content) bool

func (f HandlerFunc) Handle(c content.Content) bool { return f(c) }

// ContentReceiver is the pipeline between handler lookup and handler
// invocation. It may introduce a processing delay, e.g. to model staff
// availability.
type ContentReceiver interface {
	Receive(c content.Content, h ContentHandler) bool
}

// DirectReceiver invokes the handler immediately and returns its verdict.
type DirectReceiver struct{}

func (DirectReceiver) Receive(c content.Content, h ContentHandler) bool {
	return h.Handle(c)
}

// DelayedReceiver schedules the handler invocation after a fixed delay.
// The verdict of a deferred handler cannot be known synchronously, so
// Receive reports the content as accepted.
type DelayedReceiver struct {
	Scheduler contract.Scheduler
	Delay     time.Duration
}

func (r DelayedReceiver) Receive(c content.Content, h ContentHandler) bool {
	if err := r.Scheduler.After(r.Delay, func() { h.Handle(c) }); err != nil {
		return h.Handle(c)
	}
	return true
}
