// Package pqueue implements a hierarchical FIFO-bucket priority queue: an
// ordered mapping from a comparable priority to a FIFO sequence of indices.
// It is the plain (duplicate-admitting) queue used by the Meyer marker-flood
// engine; see package apqueue for the value-addressable variant used by IFT.
//
// What
//
//   - Push(p, i) appends i to the bucket for priority p.
//   - PopBucket() removes and returns the bucket with the minimum priority,
//     as a FIFO-ordered slice of indices.
//   - The same index may be pushed more than once, at the same or different
//     priorities; callers that need "process each index once" track that
//     themselves (the Meyer engine does this via Output[i] != 0).
//
// Complexity
//
//   - Push:      O(log K) where K is the number of distinct live priorities.
//   - PopBucket: O(log K).
//   - Draining a bucket once popped: O(1) per index.
//
// Implementation
//
//	Distinct priorities are tracked in a binary min-heap (container/heap);
//	each heap entry points at a bucket (a plain slice of indices) stored in
//	a map keyed by priority. This matches the "ordered-by-key mapping of
//	buckets" implementation freedom: pushing to an existing bucket is O(1)
//	append, pushing a new priority is a single heap insertion.
package pqueue
