package ift

import (
	"cmp"
	"fmt"

	"github.com/katalvlaran/watershed/apqueue"
	"github.com/katalvlaran/watershed/lattice"
)

// Run computes the Image Foresting Transform watershed of input, seeded by
// the non-zero connected components of markers, under the dissimilarity
// functor and connectivity mode conn. Markers and input are read-only; the
// returned buffer is freshly allocated.
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

	n := input.Lat.NumPixels()
	scanner := lattice.NewScanner(input.Lat, conn)
	r := &runner[T, L, P]{
		input:    input,
		markers:  markers,
		output:   lattice.NewBuffer[L](input.Lat),
		cost:     make([]P, n),
		costSet:  make([]bool, n),
		done:     make([]bool, n),
		functor:  functor,
		scanner:  scanner,
		queue:    apqueue.New[priority[P]](less[P]),
		neighbor: make([]int, 0, scanner.Degree()),
	}

	if err := r.init(); err != nil {
		return nil, err
	}
	if err := r.relax(); err != nil {
		return nil, err
	}

	return r.output, nil
}

// runner holds the mutable state of a single IFT run.
type runner[T any, L lattice.Label, P cmp.Ordered] struct {
	input    *lattice.Buffer[T]
	markers  *lattice.Buffer[L]
	output   *lattice.Buffer[L]
	cost     []P    // best known path cost per pixel; meaningful iff costSet[i]
	costSet  []bool // whether cost[i] has been set (false == +infinity)
	done     []bool // whether the pixel's cost/label are final
	functor  Functor[T, P]
	scanner  *lattice.Scanner
	queue    *apqueue.Queue[priority[P]]
	seq      uint64 // monotonically increasing insertion counter
	neighbor []int  // reused scratch buffer for neighbor enumeration
}

// init seeds every marker pixel with cost 0 and queues it unless it has no
// unmarked neighbor, in which case it is already final.
func (r *runner[T, L, P]) init() error {
	var zero P
	for i, m := range r.markers.Data {
		if m == 0 {
			continue
		}
		r.output.Data[i] = m
		r.cost[i] = zero
		r.costSet[i] = true

		neighbors, err := r.scanner.Neighbors(i, r.neighbor[:0])
		if err != nil {
			return err
		}

		hasUnmarked := false
		for _, j := range neighbors {
			if r.markers.Data[j] == 0 {
				hasUnmarked = true
				break
			}
		}

		if hasUnmarked {
			r.queue.InsertOrUpdate(i, priority[P]{cost: zero, seq: r.seq})
			r.seq++
		} else {
			r.done[i] = true
		}
	}

	return nil
}

// relax drains the queue, relaxing each popped pixel's not-yet-done
// neighbors under the bottleneck (max-edge-weight) path cost criterion.
func (r *runner[T, L, P]) relax() error {
	for !r.queue.Empty() {
		_, i, ok := r.queue.PopMin()
		if !ok {
			break
		}
		r.done[i] = true

		ci := r.cost[i]
		vi := r.input.Data[i]
		li := r.output.Data[i]

		neighbors, err := r.scanner.Neighbors(i, r.neighbor[:0])
		if err != nil {
			return err
		}

		for _, j := range neighbors {
			if r.done[j] {
				continue
			}

			step := r.functor.Eval(vi, r.input.Data[j])
			newCost := ci
			if step > ci {
				newCost = step
			}

			if r.costSet[j] && !(newCost < r.cost[j]) {
				continue // not strictly better than the neighbor's current best
			}

			r.cost[j] = newCost
			r.costSet[j] = true
			r.output.Data[j] = li
			r.queue.InsertOrUpdate(j, priority[P]{cost: newCost, seq: r.seq})
			r.seq++
		}
	}

	return nil
}
