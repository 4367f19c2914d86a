package queue

// Item encapsulates a payload and the priority it was enqueued with.
type Item[T any] struct {
	Payload  T
	Priority Priority
}

// entry is the internal representation of a resident item, the sequence number is assigned at insertion time and
// breaks ties between items which share a priority; it is never exposed to callers and never reused.
type entry[T any] struct {
	item Item[T]
	seq  uint64
}
