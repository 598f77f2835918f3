// Package reflect: sentinel error set. All public entry points return
// these sentinels; tests match them via errors.Is.

package reflect

import "errors"

var (
	// ErrTooFewSlabs indicates a slab table without at least a fronting
	// and a backing medium.
	ErrTooFewSlabs = errors.New("reflect: need at least fronting and backing slabs")

	// ErrBadSlab indicates a slab with a negative thickness or roughness,
	// or a non-finite value.
	ErrBadSlab = errors.New("reflect: invalid slab value")

	// ErrBadResolution indicates a negative dQ/Q or a quadrature order
	// below 3.
	ErrBadResolution = errors.New("reflect: invalid resolution settings")

	// ErrNoSolvent indicates a structure that needs solvation but has
	// neither an explicit solvent nor a backing slab to take it from.
	ErrNoSolvent = errors.New("reflect: no solvent available for solvation")
)
