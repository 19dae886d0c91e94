package ecs

import "github.com/rotisserie/eris"

var (
	// ErrNotRegistered is returned when no store is bound to a component type.
	ErrNotRegistered = eris.New("component type not registered")
	// ErrAlreadyRegistered is returned when a component type is bound twice.
	ErrAlreadyRegistered = eris.New("component type already registered")
	// ErrNilStore is returned when registering a nil store.
	ErrNilStore = eris.New("store must not be nil")
	// ErrNotMember is returned by checked accessors for entities lacking the component.
	ErrNotMember = eris.New("entity does not have component")
	// ErrInvalidCapacity is returned when a bounded store is given a non-positive capacity.
	ErrInvalidCapacity = eris.New("capacity must be positive")
)
