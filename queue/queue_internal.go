package queue

// pending implements the required interface to be used as a heap data structure using 'container/heap'. Entries are
// ordered by the pair (priority, sequence) compared together so that entries which share a priority degrade
// gracefully to arrival order.
type pending[T any] []entry[T]

func (p pending[T]) Len() int {
	return len(p)
}

func (p pending[T]) Less(i, j int) bool {
	if p[i].item.Priority != p[j].item.Priority {
		return p[i].item.Priority < p[j].item.Priority
	}

	return p[i].seq < p[j].seq
}

func (p pending[T]) Swap(i, j int) {
	p[i], p[j] = p[j], p[i]
}

func (p *pending[T]) Push(x any) {
	*p = append(*p, x.(entry[T]))
}

func (p *pending[T]) Pop() any {
	x := (*p)[len(*p)-1]
	(*p) = (*p)[:len(*p)-1]

	return x
}
