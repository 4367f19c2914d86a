package queue

// Priority indicates the relative urgency of a task, tasks with a lower priority value are always served first.
type Priority int

const (
	// PriorityHigh tasks are served before all others.
	PriorityHigh Priority = iota + 1

	// PriorityMedium tasks are served once no high priority tasks remain.
	PriorityMedium

	// PriorityLow tasks are served last.
	PriorityLow
)

// Valid returns a boolean indicating whether the priority is one of the fixed set of accepted levels.
func (p Priority) Valid() bool {
	return p >= PriorityHigh && p <= PriorityLow
}

// String returns a human readable representation of the priority.
func (p Priority) String() string {
	switch p {
	case PriorityHigh:
		return "high"
	case PriorityMedium:
		return "medium"
	case PriorityLow:
		return "low"
	}

	return "unknown"
}
