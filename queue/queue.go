// Package queue exposes a concurrency safe priority ordered task queue. Items are served highest urgency first,
// items which share a priority are served in arrival order.
package queue

import (
	"container/heap"
	"fmt"
	"reflect"
	"sync"

	"golang.org/x/exp/slices"
)

// Queue is a priority ordered task queue which is safe for concurrent use by any number of goroutines.
//
// Every operation appears to take effect atomically at a single point between its invocation and return; each item
// added is removed exactly once, by exactly one call to 'Take' (or discarded by 'Clear').
type Queue[T any] struct {
	lock    sync.Mutex
	pending pending[T]
	seq     uint64
	opts    Options
}

// NewQueue creates a new empty queue using the given options.
func NewQueue[T any](opts Options) *Queue[T] {
	return &Queue[T]{pending: make(pending[T], 0, opts.Capacity), opts: opts}
}

// Add enqueues the given payload at the given priority. Upon return the item is immediately visible to 'Take', 'Peek'
// and 'Len' from any goroutine.
//
// Validation takes place strictly before any mutation, a rejected add leaves the queue unchanged.
func (q *Queue[T]) Add(payload T, priority Priority) error {
	if !priority.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidPriority, int(priority))
	}

	if isNil(payload) {
		return ErrNilPayload
	}

	q.lock.Lock()
	defer q.lock.Unlock()

	// The sequence assignment and the insertion share a critical section, no observer may see one without the other.
	q.seq++

	heap.Push(&q.pending, entry[T]{item: Item[T]{Payload: payload, Priority: priority}, seq: q.seq})

	return nil
}

// Take removes and returns the highest urgency resident item, ties are broken by arrival order. No two calls to
// 'Take' may return the same item.
//
// When the queue is empty the return values follow the configured 'EmptyBehavior'.
func (q *Queue[T]) Take() (*Item[T], error) {
	if item := q.pop(); item != nil {
		return item, nil
	}

	return nil, q.emptyErr()
}

// Peek returns the item the next call to 'Take' would return without removing it; repeated peeks with no intervening
// add/take return the same item.
//
// When the queue is empty the return values follow the configured 'EmptyBehavior'.
func (q *Queue[T]) Peek() (*Item[T], error) {
	q.lock.Lock()
	defer q.lock.Unlock()

	if len(q.pending) == 0 {
		return nil, q.emptyErr()
	}

	item := q.pending[0].item

	return &item, nil
}

// Len returns the number of resident items as a single consistent snapshot.
func (q *Queue[T]) Len() int {
	q.lock.Lock()
	defer q.lock.Unlock()

	return len(q.pending)
}

// IsEmpty returns a boolean indicating whether any items are resident, under the same atomicity guarantee as 'Len'.
func (q *Queue[T]) IsEmpty() bool {
	return q.Len() == 0
}

// Clear discards all resident items and resets the internal sequence counter to its initial value. Discarded items
// are owed no ordering guarantee, they are dropped, not delivered.
func (q *Queue[T]) Clear() {
	q.lock.Lock()
	defer q.lock.Unlock()

	q.pending = q.pending[:0]
	q.seq = 0
}

// Drain removes items from the queue running the given function on each item until the queue is empty. In the event
// of an error, dequeuing stops early, and returns the error.
//
// NOTE: The given function is run without holding the internal lock, items added concurrently whilst draining will
// also be served.
func (q *Queue[T]) Drain(fn func(item Item[T]) error) error {
	for item := q.pop(); item != nil; item = q.pop() {
		if err := fn(*item); err != nil {
			return err
		}
	}

	return nil
}

// Items returns a copy of the resident items in the order they would be served.
//
// NOTE: The snapshot reflects the queue state at a single point in time, though it may be stale by the time the
// caller observes it.
func (q *Queue[T]) Items() []Item[T] {
	q.lock.Lock()
	snapshot := slices.Clone(q.pending)
	q.lock.Unlock()

	// The heap layout is not the delivery order, sort the snapshot outside the critical section.
	slices.SortFunc(snapshot, func(a, b entry[T]) int {
		if a.item.Priority != b.item.Priority {
			return int(a.item.Priority) - int(b.item.Priority)
		}

		switch {
		case a.seq < b.seq:
			return -1
		case a.seq > b.seq:
			return 1
		}

		return 0
	})

	items := make([]Item[T], 0, len(snapshot))

	for _, e := range snapshot {
		items = append(items, e.item)
	}

	return items
}

// Stats is a snapshot of the number of resident items at each priority level.
type Stats struct {
	Total  int
	High   int
	Medium int
	Low    int
}

// Stats returns a single consistent snapshot of the resident item counts.
func (q *Queue[T]) Stats() Stats {
	q.lock.Lock()
	defer q.lock.Unlock()

	stats := Stats{Total: len(q.pending)}

	for _, e := range q.pending {
		switch e.item.Priority {
		case PriorityHigh:
			stats.High++
		case PriorityMedium:
			stats.Medium++
		case PriorityLow:
			stats.Low++
		}
	}

	return stats
}

// pop removes and returns the next item to be served, or nil if the queue is empty.
func (q *Queue[T]) pop() *Item[T] {
	q.lock.Lock()
	defer q.lock.Unlock()

	if len(q.pending) == 0 {
		return nil
	}

	popped := heap.Pop(&q.pending).(entry[T])
	item := popped.item

	return &item
}

// emptyErr returns the empty queue contract for the configured behavior.
func (q *Queue[T]) emptyErr() error {
	if q.opts.EmptyBehavior == EmptyBehaviorError {
		return ErrEmptyQueue
	}

	return nil
}

// isNil returns a boolean indicating whether the given payload is nil, either an untyped nil, or a typed nil for the
// kinds which have one.
func isNil(payload any) bool {
	if payload == nil {
		return true
	}

	value := reflect.ValueOf(payload)

	switch value.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice:
		return value.IsNil()
	}

	return false
}
