package actor

import (
	"fmt"
	"log/slog"

	"trade-lab/content"
	"trade-lab/domain"
)

// Role is a named behavioral facet of an actor. It owns a table mapping
// content kind to handler and a content-receiver pipeline. A role is
// created during actor setup, self-registers with its actor, and never
// migrates to another one.
type Role struct {
	kind     domain.RoleKind
	actor    *Actor
	log      *slog.Logger
	receiver ContentReceiver
	handlers map[content.Kind]ContentHandler
}

// NewRole attaches a new role to the actor. Registering a second role of
// the same kind is a setup error.
func NewRole(a *Actor, kind domain.RoleKind, receiver ContentReceiver) (*Role, error) {
	if receiver == nil {
		receiver = DirectReceiver{}
	}
	r := &Role{
		kind:     kind,
		actor:    a,
		log:      a.log,
		receiver: receiver,
		handlers: make(map[content.Kind]ContentHandler),
	}
	if err := a.registerRole(r); err != nil {
		return nil, fmt.Errorf("attach role %s: %w", kind, err)
	}
	return r, nil
}

func (r *Role) Kind() domain.RoleKind { return r.kind }
func (r *Role) Actor() *Actor         { return r.actor }

// RegisterHandler binds a handler to a content kind. At most one handler
// per kind: a second registration silently replaces the first. That is
// safe because registration only happens at setup time, before the
// scheduler starts.
func (r *Role) RegisterHandler(kind content.Kind, h ContentHandler) {
	if _, ok := r.handlers[kind]; ok {
		r.log.Debug("replacing handler",
			"actor", r.actor.Name, "role", r.kind, "kind", kind)
	}
	r.handlers[kind] = h
}

// HandleContent looks up the handler for the content's kind. Without one
// it reports not-handled; otherwise the content-receiver pipeline runs the
// handler and its verdict is returned.
func (r *Role) HandleContent(c content.Content) bool {
	h, ok := r.handlers[c.Kind()]
	if !ok {
		return false
	}
	return r.receiver.Receive(c, h)
}
