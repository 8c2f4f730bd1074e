package order

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
)

var ErrActorIsNotConstructed = errors.New("Actor must be created via SystemActor or UserActor")

type actorKind int

const (
	actorUnset actorKind = iota
	actorSystem
	actorUser
)

// Actor identifies who a status change is attributed to: either a user
// (buyer or staff member) or the system itself, as for the stale-shipment sweep.
type Actor struct {
	kind   actorKind
	userID kernel.UUID
}

// SystemActor attributes a change to the service itself.
func SystemActor() Actor {
	return Actor{kind: actorSystem}
}

// UserActor attributes a change to the given user.
func UserActor(userID kernel.UUID) Actor {
	return Actor{kind: actorUser, userID: userID}
}

// IsSystem reports whether the change was system-initiated.
func (a Actor) IsSystem() bool {
	return a.kind == actorSystem
}

// UserID returns the acting user, or false for the system actor.
func (a Actor) UserID() (kernel.UUID, bool) {
	if a.kind != actorUser {
		return kernel.UUID{}, false
	}
	return a.userID, true
}

// Validate rejects the zero Actor and user actors without a valid id.
func (a Actor) Validate() error {
	switch a.kind {
	case actorSystem:
		return nil
	case actorUser:
		return a.userID.Validate()
	default:
		return ErrActorIsNotConstructed
	}
}

func (a Actor) String() string {
	if id, ok := a.UserID(); ok {
		return "user:" + id.String()
	}
	if a.IsSystem() {
		return "system"
	}
	return "unknown"
}
