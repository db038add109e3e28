// Package apqueue implements a value-addressable priority queue: a min-heap
// that admits at most one live entry per index, plus decrease-key via
// InsertOrUpdate. It backs the IFT watershed engine's path-cost relaxation.
//
// What
//
//   - InsertOrUpdate(i, p): inserts i at priority p if absent; relocates i to
//     p if p strictly precedes i's current priority; otherwise no-op.
//   - PopMin(): removes and returns the minimum-priority entry.
//   - Empty(), Len().
//
// Why a caller-supplied Less instead of a cmp.Ordered constraint
//
//	IFT's effective priority is the pair (cost, insertion time), compared
//	lexicographically, so ties on cost resolve by arrival order (spec
//	invariant: FIFO on plateaus). A Go struct type cannot satisfy the
//	built-in cmp.Ordered constraint (it is not one of the basic ordered
//	kinds), so Queue takes an explicit Less func at construction — the same
//	shape as sort.Slice / slices.SortFunc's comparator argument.
//
// Implementation
//
//	A binary heap (container/heap) holds (priority, index) entries; a
//	parallel map from index to heap position lets InsertOrUpdate locate an
//	existing entry in O(1) and re-heapify in O(log N) via heap.Fix. This is
//	option (a) of the two contract-satisfying implementations: two
//	cross-indexed structures, one ordered by priority, one by index.
//
// Complexity
//
//   - InsertOrUpdate: O(log N)
//   - PopMin:         O(log N)
//   - Empty, Len:     O(1)
package apqueue
