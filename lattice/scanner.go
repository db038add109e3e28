package lattice

// Scanner enumerates the neighbors of a pixel under a fixed Connectivity,
// reusing internal coordinate buffers across calls. A Scanner is bound to
// one Lattice and is not safe for concurrent use (the core is single-
// threaded per spec; a caller needing concurrent scans builds one Scanner
// per goroutine).
type Scanner struct {
	lat     *Lattice
	mode    Connectivity
	offsets [][]int
	coord   []int
	ncoord  []int
}

// NewScanner builds a Scanner over lat for the given connectivity mode.
// The neighbor offset table is computed once here and reused for every
// subsequent call to Neighbors.
func NewScanner(lat *Lattice, mode Connectivity) *Scanner {
	return &Scanner{
		lat:     lat,
		mode:    mode,
		offsets: offsetsFor(lat.NDim(), mode),
		coord:   make([]int, lat.NDim()),
		ncoord:  make([]int, lat.NDim()),
	}
}

// Degree returns the number of offsets considered per pixel (before bounds
// clipping): 2*ndim for Face, 3^ndim-1 for Full.
func (s *Scanner) Degree() int { return len(s.offsets) }

// Neighbors appends to dst (which may be nil) the linear indices of the
// in-bounds neighbors of pixel i, in the Scanner's fixed enumeration order,
// and returns the extended slice. Out-of-bounds offsets are silently
// skipped, so pixels outside the grid behave as if already processed.
func (s *Scanner) Neighbors(i int, dst []int) ([]int, error) {
	coord, err := s.lat.Coord(i, s.coord)
	if err != nil {
		return dst, err
	}

	for _, off := range s.offsets {
		ok := true
		for k, d := range off {
			nc := coord[k] + d
			if nc < 0 || nc >= s.lat.shape[k] {
				ok = false
				break
			}
			s.ncoord[k] = nc
		}
		if !ok {
			continue
		}

		nidx, err := s.lat.Index(s.ncoord)
		if err != nil {
			// Index() re-validates bounds we already checked; it cannot fail here.
			return dst, err
		}
		dst = append(dst, nidx)
	}

	return dst, nil
}

// offsetsFor builds the fixed-order neighbor offset table for ndim dimensions
// under the given connectivity. See doc.go for the exact ordering guarantee.
func offsetsFor(ndim int, mode Connectivity) [][]int {
	if mode == Face {
		offsets := make([][]int, 0, 2*ndim)
		for d := 0; d < ndim; d++ {
			neg := make([]int, ndim)
			neg[d] = -1
			offsets = append(offsets, neg)

			pos := make([]int, ndim)
			pos[d] = 1
			offsets = append(offsets, pos)
		}

		return offsets
	}

	// Full: every tuple in {-1,0,1}^ndim except the all-zero vector, dimension
	// 0 varying slowest (standard nested-loop / odometer order).
	offsets := make([][]int, 0, pow3(ndim)-1)
	cur := make([]int, ndim)
	var rec func(dim int)
	rec = func(dim int) {
		if dim == ndim {
			allZero := true
			for _, v := range cur {
				if v != 0 {
					allZero = false
					break
				}
			}
			if !allZero {
				tup := make([]int, ndim)
				copy(tup, cur)
				offsets = append(offsets, tup)
			}

			return
		}
		for _, v := range [3]int{-1, 0, 1} {
			cur[dim] = v
			rec(dim + 1)
		}
	}
	rec(0)

	return offsets
}

func pow3(n int) int {
	p := 1
	for i := 0; i < n; i++ {
		p *= 3
	}

	return p
}
