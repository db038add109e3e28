package meyer

import (
	"cmp"
	"fmt"

	"github.com/katalvlaran/watershed/lattice"
	"github.com/katalvlaran/watershed/pqueue"
)

// Run floods input outward from the non-zero connected components of
// markers, under the dissimilarity functor, using connectivity mode conn,
// and returns the resulting label buffer. Markers and input are read-only;
// the returned buffer is freshly allocated.
//
// Preconditions: input != nil, markers != nil, input.Lat and markers.Lat
// must describe identical shapes (ErrSizeMismatch otherwise).
func Run[T any, L lattice.Label, P cmp.Ordered](
	input *lattice.Buffer[T],
	markers *lattice.Buffer[L],
	functor Functor[T, P],
	conn lattice.Connectivity,
) (*lattice.Buffer[L], error) {
	if input == nil {
		return nil, ErrNilInput
	}
	if markers == nil {
		return nil, ErrNilMarkers
	}
	if !input.Lat.SameShape(markers.Lat) {
		return nil, fmt.Errorf("%w: input=%v markers=%v", ErrSizeMismatch, input.Lat.Shape(), markers.Lat.Shape())
	}

	scanner := lattice.NewScanner(input.Lat, conn)
	r := &runner[T, L, P]{
		input:    input,
		markers:  markers,
		output:   lattice.NewBuffer[L](input.Lat),
		functor:  functor,
		scanner:  scanner,
		queue:    pqueue.New[P](),
		neighbor: make([]int, 0, scanner.Degree()),
	}

	if err := r.init(); err != nil {
		return nil, err
	}
	if err := r.flood(); err != nil {
		return nil, err
	}

	return r.output, nil
}

// runner holds the mutable state of a single Meyer flooding run.
type runner[T any, L lattice.Label, P cmp.Ordered] struct {
	input    *lattice.Buffer[T]
	markers  *lattice.Buffer[L]
	output   *lattice.Buffer[L]
	functor  Functor[T, P]
	scanner  *lattice.Scanner
	queue    *pqueue.Queue[P]
	neighbor []int // reused scratch buffer for neighbor enumeration
}

// init copies markers verbatim into output and enqueues, for every marker
// pixel, its unmarked neighbors at their step cost.
func (r *runner[T, L, P]) init() error {
	for i, m := range r.markers.Data {
		if m == 0 {
			continue
		}
		r.output.Data[i] = m

		neighbors, err := r.scanner.Neighbors(i, r.neighbor[:0])
		if err != nil {
			return err
		}
		for _, j := range neighbors {
			if r.output.Data[j] != 0 {
				continue
			}
			p := r.functor.Eval(r.input.Data[i], r.input.Data[j])
			r.queue.Push(p, j)
		}
	}

	return nil
}

// flood drains the queue bucket by bucket, labeling pixels and detecting
// collisions, until the queue is exhausted.
func (r *runner[T, L, P]) flood() error {
	for !r.queue.Empty() {
		p, bucket, ok := r.queue.PopBucket()
		if !ok {
			break
		}

		for idx := 0; idx < len(bucket); idx++ {
			i := bucket[idx]
			if r.output.Data[i] != 0 {
				continue // stale entry: already labeled (a collided pixel stays 0 and is re-checked, colliding again)
			}

			neighbors, err := r.scanner.Neighbors(i, r.neighbor[:0])
			if err != nil {
				return err
			}

			var label L
			collision := false
			for _, j := range neighbors {
				lj := r.output.Data[j]
				if lj == 0 {
					continue
				}
				if label == 0 {
					label = lj
				} else if label != lj {
					collision = true
					break
				}
			}
			if collision || label == 0 {
				continue // watershed line pixel: Output[i] stays 0, no further enqueue
			}

			r.output.Data[i] = label
			for _, j := range neighbors {
				if r.output.Data[j] != 0 {
					continue
				}
				step := r.functor.Eval(r.input.Data[i], r.input.Data[j])
				if step == p {
					// Plateau shortcut: the new entry's priority equals the bucket
					// currently draining, so appending here (rather than routing
					// through the ordered queue) preserves pop order exactly.
					bucket = append(bucket, j)
				} else {
					r.queue.Push(step, j)
				}
			}
		}
	}

	return nil
}
