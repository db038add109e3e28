// Package meyer implements the Meyer-style marker-flooding watershed
// (MWFM): a state machine that labels each pixel at most once by flooding
// outward from marker seeds under a pixel-pair dissimilarity cost, using a
// hierarchical FIFO-bucket priority queue (package pqueue).
//
// Algorithm
//
//  1. Output starts as a copy of Markers (0 elsewhere).
//  2. Every marker pixel enqueues its unmarked neighbors at the cost of
//     stepping from the marker to that neighbor.
//  3. While the queue is non-empty, the lowest-priority bucket is drained in
//     FIFO order. A popped pixel already labeled is stale and skipped. An
//     unlabeled pixel inherits the single distinct non-zero label observed
//     among its neighbors, or becomes a permanent watershed pixel (stays 0)
//     if two distinct labels are observed (a collision). On success, its
//     still-unlabeled neighbors are enqueued at their step cost.
//
// Determinism and ties
//
//	A newly enqueued neighbor whose step cost equals the priority of the
//	bucket currently being drained is appended to that same bucket instead
//	of being reinserted into the ordered queue. This is the "plateau
//	shortcut": it is only valid because the new entry's priority truly
//	equals the bucket's priority, so ordering is preserved; Run takes the
//	shortcut only when the step cost equals the bucket's priority, not for
//	every non-positive cost. Any other step cost goes back through the
//	ordered queue.
//
// Complexity
//
//   - Time:  O(N*d*log K) where N = pixel count, d = neighbors per pixel,
//     K = distinct priorities ever queued.
//   - Space: O(N) for Output plus O(N*d) worst case for queue entries
//     (duplicates are allowed by design).
package meyer
