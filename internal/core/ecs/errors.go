package ecs

import "errors"

var (
	// ErrComponentNotFound is returned by direct reference access when the
	// entity does not own a component of the requested type.
	ErrComponentNotFound = errors.New("ecs: component not found")
	// ErrDuplicateViewType is the panic value when one component type is
	// listed twice in a single view.
	ErrDuplicateViewType = errors.New("ecs: duplicate component type in view")
	// ErrEntityIDsExhausted is the panic value when an EntityPool has issued
	// every possible ID.
	ErrEntityIDsExhausted = errors.New("ecs: entity ids exhausted")
)
