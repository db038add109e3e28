// Package linepaint implements the optional watershed-line fill post-pass:
// for every still-unlabeled pixel, it assigns the label of the neighbor
// that minimizes the dissimilarity cost to it, breaking ties by the fixed
// neighborhood enumeration order (package lattice).
//
// This is a single sweep over the already-flooded Output buffer: it reads
// the labels produced by meyer.Run or ift.Run and does not itself flood or
// iterate to a fixed point, matching the spec's "single-sweep, does not
// iterate" contract. A pixel with no labeled neighbor at all is left at 0.
package linepaint
