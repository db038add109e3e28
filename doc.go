// Package watershed (root) is a documentation-only package: the module's
// working code lives in its subpackages, not here.
//
// What this module is
//
//	A marker-controlled watershed segmentation library for N-dimensional
//	scalar and vector images, offering two flooding engines that share a
//	lattice/queue/cost skeleton:
//
//	  - MWFM — Meyer-style marker flooding (package meyer)
//	  - IFT  — Image Foresting Transform, bottleneck path cost (package ift)
//
// Under the hood, the module is organized as:
//
//	lattice/     — N-D shape/index arithmetic and neighbor enumeration
//	pqueue/      — hierarchical FIFO-bucket priority queue (MWFM's queue)
//	apqueue/     — addressable priority queue with decrease-key (IFT's queue)
//	cost/        — pluggable dissimilarity functors (Grad, NeighbourOnly, VecNorm)
//	meyer/       — the MWFM engine
//	ift/         — the IFT engine
//	linepaint/   — optional watershed-line fill post-pass
//	watershed/   — the driver binding a functor, engine, and connectivity to buffers
//	internal/rawimage/ — a minimal dense N-D buffer codec for the CLI tools
//	cmd/markerws/, cmd/markerwsmulticomp/ — CLI surfaces over the driver
//
// Quick usage:
//
//	lat, _ := lattice.New([]int{512, 512})
//	input, _ := lattice.WrapBuffer[int16](lat, pixels)
//	markers, _ := lattice.WrapBuffer[uint16](lat, seeds)
//	labels, err := watershed.Run[int16, uint16, int16](input, markers, cost.Grad[int16]{})
//
// See DESIGN.md in the module root for the grounding behind each package.
package watershed
