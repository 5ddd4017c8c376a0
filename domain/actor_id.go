package domain

import "github.com/google/uuid"

// ActorID identifies an addressable actor. Stable for the whole run.
type ActorID string

func NewActorID() ActorID {
	return ActorID(uuid.NewString())
}

// RoleKind names a behavioral facet of an actor.
// An actor owns at most one role per kind.
type RoleKind string

const (
	RolePurchasing RoleKind = "PURCHASING"
	RoleSelling    RoleKind = "SELLING"
	RoleFinancing  RoleKind = "FINANCING"
	RoleBanking    RoleKind = "BANKING"
)
