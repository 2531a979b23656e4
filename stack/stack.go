package stack

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Stack is a LIFO container backed by a growable slice.
type Stack[T any] struct {
	items  []T
	config config
}

// New creates an empty Stack with optional configuration.
func New[T any](options ...Option) (*Stack[T], error) {
	c, err := buildConfig(options)
	if err != nil {
		return nil, err
	}

	return &Stack[T]{config: c}, nil
}

// ID returns the identifier attached to the stack's log records.
func (s *Stack[T]) ID() uuid.UUID {
	return s.config.id
}

// IsEmpty reports whether the stack has no elements.
func (s *Stack[T]) IsEmpty() bool {
	return len(s.items) == 0
}

// Len returns the number of elements on the stack.
func (s *Stack[T]) Len() int {
	return len(s.items)
}

// Push puts item on top of the stack.
func (s *Stack[T]) Push(item T) {
	s.items = append(s.items, item)
}

// Pop removes and returns the top element.
//
// Returns ErrEmptyStack if the stack has no elements.
func (s *Stack[T]) Pop() (T, error) {
	var zero T

	if s.IsEmpty() {
		s.config.logRejected(logMsgPopRejected, ErrEmptyStack)
		return zero, ErrEmptyStack
	}

	last := len(s.items) - 1
	item := s.items[last]
	s.items[last] = zero
	s.items = s.items[:last]

	return item, nil
}

// Top returns the top element without removing it.
//
// Returns ErrEmptyStack if the stack has no elements.
func (s *Stack[T]) Top() (T, error) {
	if s.IsEmpty() {
		s.config.logRejected(logMsgTopRejected, ErrEmptyStack)

		var zero T
		return zero, ErrEmptyStack
	}

	return s.items[len(s.items)-1], nil
}

// String renders the elements from bottom to top, e.g. "(1 2 3)".
func (s *Stack[T]) String() string {
	return render(s.items)
}

// GoString implements fmt.GoStringer.
func (s *Stack[T]) GoString() string {
	return "Stack()"
}

func render[T any](items []T) string {
	var b strings.Builder

	b.WriteString("(")

	for i, item := range items {
		if i > 0 {
			b.WriteString(" ")
		}

		fmt.Fprint(&b, item)
	}

	b.WriteString(")")

	return b.String()
}
