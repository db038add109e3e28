// Package ift implements the Image Foresting Transform watershed: each
// pixel carries a mutable path cost equal to the maximum edge weight along
// its current best path from a marker (a bottleneck / min-max criterion).
// Cheaper paths overwrite earlier labelings; ties are broken by a monotonic
// insertion counter so that plateaus resolve in FIFO arrival order.
//
// Algorithm
//
//  1. Every marker pixel starts with cost 0 and is queued (unless it has no
//     unmarked neighbor, in which case it is immediately final).
//  2. While the addressable queue is non-empty, the minimum-priority pixel
//     is popped and marked done (its cost and label are now final). Each
//     not-yet-done neighbor's candidate cost is max(current pixel's cost,
//     the step cost to that neighbor); if strictly better than the
//     neighbor's best known cost, the neighbor's cost and label are updated
//     and it is (re)inserted into the queue.
//
// Priority
//
//	The effective priority compared by the queue is the pair (cost,
//	insertion-time), lexicographic: lower cost wins, ties broken by which
//	relaxation happened first. This is what makes the result a
//	deterministic shortest-path (bottleneck) forest rather than merely "a"
//	valid one.
//
// Complexity
//
//   - Time:  O(N*d*log N) where N = pixel count, d = neighbors per pixel
//     (each pixel has at most one live queue entry, so the queue holds
//     O(N) entries rather than O(N*d)).
//   - Space: O(N) for Output, cost, done, and the queue.
package ift
