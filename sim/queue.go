package sim

import "container/heap"

// queue is a time-ordered priority queue of pending events, ties broken
// by insertion order (spec.md §3.7, §8). No third-party priority-queue
// library appears anywhere in the retrieved example pack, so this uses
// container/heap directly; see DESIGN.md for that justification.
type queue struct {
	items []Event
	seq   uint64
}

func newQueue() *queue {
	q := &queue{}
	heap.Init(q)
	return q
}

func (q *queue) push(e Event) {
	e.seq = q.seq
	q.seq++
	heap.Push(q, e)
}

func (q *queue) peek() (Event, bool) {
	if len(q.items) == 0 {
		return Event{}, false
	}
	return q.items[0], true
}

func (q *queue) pop() Event {
	return heap.Pop(q).(Event)
}

func (q *queue) Len() int { return len(q.items) }

func (q *queue) Less(i, j int) bool {
	if q.items[i].Time != q.items[j].Time {
		return q.items[i].Time < q.items[j].Time
	}
	return q.items[i].seq < q.items[j].seq
}

func (q *queue) Swap(i, j int) {
	q.items[i], q.items[j] = q.items[j], q.items[i]
}

func (q *queue) Push(x interface{}) {
	q.items = append(q.items, x.(Event))
}

func (q *queue) Pop() interface{} {
	old := q.items
	n := len(old)
	e := old[n-1]
	q.items = old[:n-1]
	return e
}
