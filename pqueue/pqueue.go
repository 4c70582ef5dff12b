// Package pqueue implements the min-priority queue used by Dijkstra and A*.
//
// Contract:
//   - Enqueue inserts an element with a priority; Dequeue removes the element
//     with the smallest priority.
//   - Ties are FIFO: among equal priorities, the element enqueued first is
//     dequeued first. Trace order of the search algorithms depends on this.
//   - There is no decrease-key. Callers re-enqueue with the better priority and
//     filter stale duplicates on dequeue with their own visited set
//     (the "lazy decrease-key" pattern).
//
// Complexity: Enqueue and Dequeue are O(log n); Len, IsEmpty and Peek are O(1).
package pqueue

import (
	"cmp"
	"container/heap"
)

// item pairs an element with its priority and arrival sequence number.
type item[T any, P cmp.Ordered] struct {
	elem T
	prio P
	seq  uint64
}

// itemHeap is a min-heap ordered by (prio, seq).
type itemHeap[T any, P cmp.Ordered] []item[T, P]

func (h itemHeap[T, P]) Len() int { return len(h) }

func (h itemHeap[T, P]) Less(i, j int) bool {
	if c := cmp.Compare(h[i].prio, h[j].prio); c != 0 {
		return c < 0
	}
	return h[i].seq < h[j].seq
}

func (h itemHeap[T, P]) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *itemHeap[T, P]) Push(x any) { *h = append(*h, x.(item[T, P])) }

func (h *itemHeap[T, P]) Pop() any {
	old := *h
	n := len(old)
	it := old[n-1]
	old[n-1] = item[T, P]{} // drop reference for GC
	*h = old[:n-1]

	return it
}

// Queue is a stable min-priority queue. The zero value is ready to use.
// A Queue is not safe for concurrent use.
type Queue[T any, P cmp.Ordered] struct {
	h   itemHeap[T, P]
	seq uint64
}

// New returns an empty queue with room for capacity elements.
func New[T any, P cmp.Ordered](capacity int) *Queue[T, P] {
	return &Queue[T, P]{h: make(itemHeap[T, P], 0, capacity)}
}

// Enqueue inserts elem with the given priority. It is placed after every
// element already queued with an equal priority.
func (q *Queue[T, P]) Enqueue(elem T, prio P) {
	heap.Push(&q.h, item[T, P]{elem: elem, prio: prio, seq: q.seq})
	q.seq++
}

// Dequeue removes and returns the minimum-priority element.
// ok is false when the queue is empty.
func (q *Queue[T, P]) Dequeue() (elem T, ok bool) {
	if len(q.h) == 0 {
		return elem, false
	}
	it := heap.Pop(&q.h).(item[T, P])

	return it.elem, true
}

// Peek returns the minimum-priority element and its priority without removing it.
func (q *Queue[T, P]) Peek() (elem T, prio P, ok bool) {
	if len(q.h) == 0 {
		return elem, prio, false
	}
	return q.h[0].elem, q.h[0].prio, true
}

// IsEmpty reports whether the queue holds no elements.
func (q *Queue[T, P]) IsEmpty() bool { return len(q.h) == 0 }

// Len returns the number of queued elements, stale duplicates included.
func (q *Queue[T, P]) Len() int { return len(q.h) }
