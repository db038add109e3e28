// Package watershed is the driver: it binds a dissimilarity cost functor, an
// engine choice (Meyer or IFT), a connectivity mode, and a watershed-line
// policy to a pair of input/marker buffers, validates their shapes, and
// returns the resulting label buffer.
//
// This is the only package a typical caller needs to import; meyer, ift,
// lattice, and linepaint remain usable standalone for callers who want
// finer control (e.g. running the engine once and Fill-ing separately).
//
// Usage
//
//	lat, _ := lattice.New([]int{512, 512})
//	input, _ := lattice.WrapBuffer[int16](lat, pixels)
//	markers, _ := lattice.WrapBuffer[uint16](lat, seeds)
//
//	out, err := watershed.Run[int16, uint16, int16](
//	    input, markers, cost.Grad[int16]{},
//	    watershed.WithEngine(watershed.IFT),
//	    watershed.WithConnectivity(lattice.Full),
//	)
package watershed
