package pqueue

import (
	"cmp"
	"container/heap"
)

// Queue is a hierarchical FIFO-bucket priority queue over priorities P.
// The zero value is not usable; construct one with New.
type Queue[P cmp.Ordered] struct {
	buckets map[P][]int
	keys    priorityHeap[P]
}

// New returns an empty Queue.
func New[P cmp.Ordered]() *Queue[P] {
	return &Queue[P]{buckets: make(map[P][]int)}
}

// Empty reports whether the queue holds no buckets.
func (q *Queue[P]) Empty() bool { return len(q.buckets) == 0 }

// Len returns the number of distinct live priorities (not the total number
// of queued indices).
func (q *Queue[P]) Len() int { return len(q.buckets) }

// Push appends i to the bucket for priority p, creating the bucket (and
// registering p in the priority heap) if this is the first entry at p.
func (q *Queue[P]) Push(p P, i int) {
	if _, ok := q.buckets[p]; !ok {
		heap.Push(&q.keys, p)
	}
	q.buckets[p] = append(q.buckets[p], i)
}

// PopBucket removes and returns the bucket with the minimum priority and the
// priority itself. ok is false if the queue is empty.
func (q *Queue[P]) PopBucket() (p P, bucket []int, ok bool) {
	if q.Empty() {
		return p, nil, false
	}

	p = heap.Pop(&q.keys).(P)
	bucket = q.buckets[p]
	delete(q.buckets, p)

	return p, bucket, true
}

// priorityHeap is a plain min-heap of distinct priorities, ordered by cmp.Compare.
type priorityHeap[P cmp.Ordered] []P

func (h priorityHeap[P]) Len() int            { return len(h) }
func (h priorityHeap[P]) Less(i, j int) bool  { return cmp.Compare(h[i], h[j]) < 0 }
func (h priorityHeap[P]) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *priorityHeap[P]) Push(x interface{}) { *h = append(*h, x.(P)) }
func (h *priorityHeap[P]) Pop() interface{} {
	old := *h
	n := len(old)
	v := old[n-1]
	*h = old[:n-1]

	return v
}
