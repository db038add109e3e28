package watershed

import (
	"cmp"
	"fmt"

	"github.com/katalvlaran/watershed/ift"
	"github.com/katalvlaran/watershed/lattice"
	"github.com/katalvlaran/watershed/linepaint"
	"github.com/katalvlaran/watershed/meyer"
)

// Run segments input into the labeled regions seeded by markers. It
// validates shapes, dispatches to the engine named by opts (MWFM by
// default), and, when WithMarkLines(false) is given, runs linepaint.Fill so
// watershed-line pixels take a neighbor's label. With the default
// MarkLines == true the engine's output is returned with its lines at 0.
//
// Preconditions: input != nil, markers != nil, functor != nil, input.Lat and
// markers.Lat describe identical shapes.
func Run[T any, L lattice.Label, P cmp.Ordered](
	input *lattice.Buffer[T],
	markers *lattice.Buffer[L],
	functor Functor[T, P],
	opts ...Option,
) (*lattice.Buffer[L], error) {
	if input == nil || markers == nil {
		return nil, fmt.Errorf("watershed: input and markers buffers must be non-nil")
	}
	if functor == nil {
		return nil, ErrNilFunctor
	}
	if !input.Lat.SameShape(markers.Lat) {
		return nil, fmt.Errorf("%w: input=%v markers=%v", ErrSizeMismatch, input.Lat.Shape(), markers.Lat.Shape())
	}

	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Ctx == nil {
		cfg.Ctx = DefaultConfig().Ctx
	}

	if err := cfg.Ctx.Err(); err != nil {
		return nil, err
	}

	var (
		labeled *lattice.Buffer[L]
		err     error
	)
	switch cfg.Engine {
	case IFT:
		labeled, err = ift.Run[T, L, P](input, markers, functor, cfg.Connectivity)
	case MWFM:
		labeled, err = meyer.Run[T, L, P](input, markers, functor, cfg.Connectivity)
	default:
		return nil, fmt.Errorf("watershed: unknown engine %v", cfg.Engine)
	}
	if err != nil {
		return nil, err
	}

	if cfg.MarkLines {
		return labeled, nil
	}

	if err := cfg.Ctx.Err(); err != nil {
		return nil, err
	}

	return linepaint.Fill[T, L, P](input, labeled, functor, cfg.Connectivity)
}
