package kernel

import (
	"errors"
)

var ErrActorIsNotConstructed = errors.New("Actor must be created via NewActor or NewSystemActor")

// Actor is the identity a workflow request is made under. The identity provider
// supplies it and the workflow engines trust it as given.
type Actor struct {
	id    UUID
	role  Role
	valid bool
}

func NewActor(id UUID, role Role) (Actor, error) {
	if err := errors.Join(id.Validate(), role.Validate()); err != nil {
		return Actor{}, err
	}
	if role == System {
		return Actor{}, errors.New("system actor must be created via NewSystemActor")
	}
	return Actor{id: id, role: role, valid: true}, nil
}

// NewSystemActor attributes a cascaded transition to the user whose action triggered it.
func NewSystemActor(onBehalfOf UUID) Actor {
	return Actor{id: onBehalfOf, role: System, valid: true}
}

func (a Actor) ID() UUID {
	return a.id
}

func (a Actor) Role() Role {
	return a.role
}

func (a Actor) IsSystem() bool {
	return a.role == System
}

func (a Actor) Validate() error {
	if !a.valid {
		return ErrActorIsNotConstructed
	}
	return nil
}
