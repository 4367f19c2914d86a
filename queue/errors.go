package queue

import "errors"

// Sentinel errors returned by queue operations, all of them are recoverable by the caller and none of them leave the
// queue in a modified state.
var (
	// ErrInvalidPriority is returned by 'Add' when given a priority outside the fixed set of accepted levels.
	ErrInvalidPriority = errors.New("invalid priority")

	// ErrNilPayload is returned by 'Add' when given a nil payload, enqueuing meaningless work is always rejected.
	ErrNilPayload = errors.New("payload must not be nil")

	// ErrEmptyQueue is returned by 'Take'/'Peek' when no items are resident and the queue was created with the
	// 'EmptyBehaviorError' behavior.
	ErrEmptyQueue = errors.New("queue is empty")
)
