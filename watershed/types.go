package watershed

import (
	"cmp"
	"context"
	"fmt"

	"github.com/katalvlaran/watershed/lattice"
)

// Engine selects which flooding state machine Run uses.
type Engine int

const (
	// MWFM selects the Meyer-style marker-flooding engine (package meyer).
	MWFM Engine = iota
	// IFT selects the Image Foresting Transform engine (package ift).
	IFT
)

// String renders the engine choice for diagnostics.
func (e Engine) String() string {
	switch e {
	case MWFM:
		return "MWFM"
	case IFT:
		return "IFT"
	default:
		return "Engine(unknown)"
	}
}

// Functor is the dissimilarity contract Run requires. It mirrors the local
// Functor interfaces declared by packages meyer, ift, and linepaint; a
// single cost.Grad/cost.NeighbourOnly/cost.VecNorm value (or a caller's own
// type) satisfies all of them without any package importing another's
// interface declaration.
type Functor[T any, P cmp.Ordered] interface {
	Eval(a, b T) P
}

// Config configures a Run invocation.
type Config struct {
	// Engine selects MWFM or IFT. Default: MWFM.
	Engine Engine
	// Connectivity selects Face or Full neighbor enumeration. Default: Face.
	Connectivity lattice.Connectivity
	// MarkLines, if false, runs the linepaint post-pass so no pixel remains
	// a watershed line. Default: true (lines are kept).
	MarkLines bool
	// Ctx, if cancelled before Run starts flooding or before the optional
	// linepaint pass, makes Run return ctx.Err() instead of a result. This
	// is the only place the otherwise strictly sequential engines observe
	// anything outside their own buffers; mid-flood cancellation would
	// require threading ctx through meyer/ift's drain loops, which neither
	// engine does today. Default: context.Background() (never cancels).
	Ctx context.Context
}

// Option configures a Config.
type Option func(*Config)

// DefaultConfig returns MWFM, Face connectivity, lines kept, no cancellation.
func DefaultConfig() Config {
	return Config{
		Engine:       MWFM,
		Connectivity: lattice.Face,
		MarkLines:    true,
		Ctx:          context.Background(),
	}
}

// WithEngine selects the flooding engine.
func WithEngine(e Engine) Option {
	return func(c *Config) { c.Engine = e }
}

// WithConnectivity selects the neighbor connectivity mode.
func WithConnectivity(conn lattice.Connectivity) Option {
	return func(c *Config) { c.Connectivity = conn }
}

// WithMarkLines controls whether watershed-line pixels are left at 0 (true,
// the default) or filled in by linepaint.Fill (false).
func WithMarkLines(mark bool) Option {
	return func(c *Config) { c.MarkLines = mark }
}

// WithContext sets the cooperative-cancellation context, checked before Run
// starts flooding and again before the optional linepaint pass — not polled
// mid-flood, since neither meyer.Run nor ift.Run takes a context.
func WithContext(ctx context.Context) Option {
	return func(c *Config) { c.Ctx = ctx }
}

// ValidateVectorChannels reports whether every pixel in buf has the same
// channel count as the first pixel. cost.VecNorm.Eval has no way to check
// this itself (it only ever sees one pair at a time), so a caller building a
// []float64 vector buffer by hand — or decoding one via internal/rawimage —
// should call this once, before Run, rather than let a length mismatch
// surface as a panic deep inside gonum/floats.Distance. An empty buffer is
// trivially valid.
func ValidateVectorChannels(buf *lattice.Buffer[[]float64]) error {
	if len(buf.Data) == 0 {
		return nil
	}

	want := len(buf.Data[0])
	for _, px := range buf.Data {
		if len(px) != want {
			return fmt.Errorf("%w: want %d, got %d", ErrChannelMismatch, want, len(px))
		}
	}

	return nil
}

// ValidateLabelFit reports whether every value in raw fits in the label
// type L, i.e. none exceeds L's maximum representable value. It is meant
// for callers that decode marker data from an untyped source (see package
// internal/rawimage) before narrowing it into a lattice.Buffer[L]; compile-
// time Go code operating only on lattice.Buffer[L] can never violate this,
// since the type system already enforces it.
func ValidateLabelFit[L lattice.Label](raw []uint64) bool {
	var maxLabel L
	maxLabel--          // unsigned underflow: wraps to the type's maximum value
	max := uint64(maxLabel)
	for _, v := range raw {
		if v > max {
			return false
		}
	}

	return true
}
