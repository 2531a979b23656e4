package stack

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/google/uuid"
)

// DefaultMaxLength is the maximum length used by NewFixedDefault.
const DefaultMaxLength = 100

// FixedStack is a LIFO container with a maximum length.
//
// It is backed by a buffer of exactly maxLength slots plus an explicit element count,
// so 0 <= Len() <= Cap() holds at all times. The capacity only changes through Extend.
type FixedStack[T any] struct {
	items  []T
	length int
	config config
}

// NewFixed creates an empty FixedStack that holds at most maxLength elements.
//
// Returns ErrInvalidCapacity if maxLength is not positive.
func NewFixed[T any](maxLength int, options ...Option) (*FixedStack[T], error) {
	if maxLength <= 0 {
		return nil, errors.Join(ErrInvalidCapacity, fmt.Errorf("got %d", maxLength))
	}

	c, err := buildConfig(options)
	if err != nil {
		return nil, err
	}

	return &FixedStack[T]{
		items:  make([]T, maxLength),
		config: c,
	}, nil
}

// NewFixedDefault creates an empty FixedStack with DefaultMaxLength.
func NewFixedDefault[T any](options ...Option) (*FixedStack[T], error) {
	return NewFixed[T](DefaultMaxLength, options...)
}

// ID returns the identifier attached to the stack's log records.
func (s *FixedStack[T]) ID() uuid.UUID {
	return s.config.id
}

// IsEmpty reports whether the stack has no elements.
func (s *FixedStack[T]) IsEmpty() bool {
	return s.length == 0
}

// Len returns the number of elements.
func (s *FixedStack[T]) Len() int {
	return s.length
}

// Cap returns the maximum number of elements.
func (s *FixedStack[T]) Cap() int {
	return len(s.items)
}

// Push puts item on top of the stack.
//
// Returns ErrStackFull if the stack already holds Cap() elements.
func (s *FixedStack[T]) Push(item T) error {
	if s.length == len(s.items) {
		s.config.logRejected(logMsgPushRejected, ErrStackFull, logAttrLength, s.length, logAttrMaxLength, len(s.items))
		return ErrStackFull
	}

	s.items[s.length] = item
	s.length++

	return nil
}

// Pop removes and returns the top element and clears its slot.
//
// Returns ErrEmptyStack if the stack has no elements.
func (s *FixedStack[T]) Pop() (T, error) {
	var zero T

	if s.IsEmpty() {
		s.config.logRejected(logMsgPopRejected, ErrEmptyStack, logAttrMaxLength, len(s.items))
		return zero, ErrEmptyStack
	}

	s.length--
	item := s.items[s.length]
	s.items[s.length] = zero

	return item, nil
}

// Top returns the top element without removing it.
//
// Returns ErrEmptyStack if the stack has no elements.
func (s *FixedStack[T]) Top() (T, error) {
	if s.IsEmpty() {
		s.config.logRejected(logMsgTopRejected, ErrEmptyStack, logAttrMaxLength, len(s.items))

		var zero T
		return zero, ErrEmptyStack
	}

	return s.items[s.length-1], nil
}

// Extend grows the maximum length to newLength.
//
// Returns ErrCapacityNotGrowing if newLength is not greater than Cap().
func (s *FixedStack[T]) Extend(newLength int) error {
	if newLength <= len(s.items) {
		err := errors.Join(ErrCapacityNotGrowing, fmt.Errorf("got %d, current maximum length is %d", newLength, len(s.items)))
		s.config.logRejected(logMsgExtendRejected, err, logAttrMaxLength, len(s.items), logAttrNewLength, newLength)

		return err
	}

	items := make([]T, newLength)
	copy(items, s.items[:s.length])

	s.config.logDebug(logMsgExtended, logAttrLength, s.length, logAttrMaxLength, len(s.items), logAttrNewLength, newLength)
	s.items = items

	return nil
}

// String renders the elements from bottom to top, e.g. "(1 2 3)".
func (s *FixedStack[T]) String() string {
	return render(s.items[:s.length])
}

// GoString implements fmt.GoStringer, e.g. "FixedStack(100)".
func (s *FixedStack[T]) GoString() string {
	return "FixedStack(" + strconv.Itoa(len(s.items)) + ")"
}
