// Package lattice provides N-dimensional index arithmetic for dense rectangular
// grids: linear/tuple coordinate conversion, a deterministic pixel iterator,
// and neighbor enumeration under face- or fully-connected topology.
//
// What
//
//   - A Lattice describes the shape of a dense grid (d1,...,dn) and converts
//     between a linear index and its tuple coordinate in O(n).
//   - A Scanner enumerates, for a given pixel, the linear indices of its
//     neighbors under Face or Full connectivity, skipping anything outside
//     the grid. Enumeration order is fixed per Lattice+Connectivity pair so
//     that callers relying on tie-break order (flooding engines, tests) see
//     reproducible results.
//   - Buffer[E] pairs a Lattice with a flat slice of element type E; it is
//     used for both pixel-value buffers (scalar or vector) and label buffers.
//
// Why
//
//   - Flooding engines never need to know about rows/columns/slices; they
//     only need "the neighbors of pixel i" and "is this coordinate inside
//     the grid", which is exactly what Lattice/Scanner expose.
//
// Determinism
//
//	Offsets are generated once per (ndim, Connectivity) in a fixed order:
//	Face yields, dimension by dimension, the negative offset then the
//	positive offset; Full yields all of {-1,0,1}^ndim except the zero
//	vector in the natural nested-loop order (dimension 0 slowest). Neither
//	order depends on grid contents, so two Scanners built from lattices of
//	the same shape always agree.
//
// Complexity (ndim = number of dimensions, d = neighbors per pixel)
//
//   - Index/Coord: O(ndim)
//   - Scanner.Neighbors: O(d), d = 2*ndim (Face) or 3^ndim-1 (Full)
package lattice
