// Package actor models the resolved capability of a caller. Authentication is
// an external collaborator: by the time a request reaches the engine it has
// already been reduced to an identifier and a role, and authorization inside
// the domain is a predicate over this value object plus record ownership —
// never a branch on user types.
package actor

import (
	"assetflow/internal/core/domain/model/kernel"
	"assetflow/internal/pkg/errs"
)

// Role is the capability class of a caller.
type Role string

const (
	// Investor creates, views, and may cancel or self-reject their own orders.
	Investor Role = "investor"

	// Registrar advances or rejects orders on behalf of the processing
	// pipeline; registrars never cancel.
	Registrar Role = "registrar"
)

// ParseRole validates a role arriving as unvalidated input.
func ParseRole(s string) (Role, error) {
	role := Role(s)
	if err := role.Validate(); err != nil {
		return "", err
	}
	return role, nil
}

// Validate rejects anything outside the enumeration.
func (r Role) Validate() error {
	switch r {
	case Investor, Registrar:
		return nil
	default:
		return errs.NewValueIsInvalidError("role")
	}
}

// String returns the wire representation.
func (r Role) String() string {
	return string(r)
}

// Actor is the immutable capability passed into every engine operation.
// The zero value is invalid; use NewActor.
type Actor struct {
	id   kernel.UUID
	role Role
}

// NewActor builds a validated actor from a resolved identity.
func NewActor(id kernel.UUID, role Role) (Actor, error) {
	if err := id.Validate(); err != nil {
		return Actor{}, err
	}
	if err := role.Validate(); err != nil {
		return Actor{}, err
	}
	return Actor{id: id, role: role}, nil
}

// ID returns the actor's identifier.
func (a Actor) ID() kernel.UUID {
	return a.id
}

// Role returns the actor's role.
func (a Actor) Role() Role {
	return a.role
}

// IsRegistrar reports whether the actor carries the registrar capability.
func (a Actor) IsRegistrar() bool {
	return a.role == Registrar
}

// Validate guards against zero-value actors reaching the engine.
func (a Actor) Validate() error {
	if err := a.id.Validate(); err != nil {
		return err
	}
	return a.role.Validate()
}
