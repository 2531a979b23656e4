package stack

import (
	"errors"
)

var (
	// ErrEmptyStack is returned by Pop and Top on a stack without elements.
	ErrEmptyStack = errors.New("empty stack")

	// ErrStackFull is returned by Push on a FixedStack that reached its maximum length.
	ErrStackFull = errors.New("the stack is full")

	// ErrInvalidCapacity is returned when a FixedStack is created with a non-positive maximum length.
	ErrInvalidCapacity = errors.New("the maximum length must be a positive integer")

	// ErrCapacityNotGrowing is returned by Extend when the new length does not exceed the current one.
	ErrCapacityNotGrowing = errors.New("the new length must be greater than the current maximum length")

	// ErrNilID is returned when uuid.Nil is supplied as a stack ID.
	ErrNilID = errors.New("stack id must not be nil")

	// ErrGeneratingIDFailed is returned when no stack ID could be generated.
	ErrGeneratingIDFailed = errors.New("generating stack id failed")
)
