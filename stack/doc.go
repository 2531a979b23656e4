// Package stack provides two LIFO containers:
//   - Stack: backed by a growable slice, unbounded
//   - FixedStack: backed by a fixed-capacity buffer that only grows through an explicit Extend
//
// Both are generic over the element type and are not safe for concurrent use.
//
// Each stack gets a unique ID at construction time. An optional Logger receives debug
// records for rejected operations (push on a full FixedStack, pop/top on an empty stack)
// and for capacity changes, each tagged with the stack ID:
//
//	s, err := stack.NewFixed[string](
//		2,
//		stack.WithLogger(slog.Default()),
//	)
//	if err != nil {
//		// handle error
//	}
//
//	_ = s.Push("a")
//	_ = s.Push("b")
//	err = s.Push("c") // errors.Is(err, stack.ErrStackFull)
//	_ = s.Extend(4)
package stack
