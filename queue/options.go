package queue

// EmptyBehavior dictates how 'Take'/'Peek' behave when called against an empty queue. The behavior is fixed at
// construction time, a queue never mixes the two contracts.
type EmptyBehavior int

const (
	// EmptyBehaviorNil means 'Take'/'Peek' return a nil item, and no error, when no items are resident.
	EmptyBehaviorNil EmptyBehavior = iota

	// EmptyBehaviorError means 'Take'/'Peek' return 'ErrEmptyQueue' when no items are resident.
	EmptyBehaviorError
)

// Options encapsulates the available options which can be used when creating a queue.
type Options struct {
	// Capacity is the initial capacity of the underlying heap.
	//
	// NOTE: The capacity has the same behavior as a slices capacity meaning the queue may grow beyond the given
	// capacity, the capacity is there for performance optimizations.
	Capacity int

	// EmptyBehavior dictates what 'Take'/'Peek' return when the queue is empty. Defaults to 'EmptyBehaviorNil'.
	EmptyBehavior EmptyBehavior
}
