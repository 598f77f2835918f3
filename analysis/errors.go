// Package analysis: sentinel error set.
// All public entry points return these sentinels (possibly wrapped with
// fmt.Errorf("...: %w", err) for context); tests match them via errors.Is.
// Panics are reserved for programmer errors in private helpers.

package analysis

import "errors"

var (
	// ErrNilModel is returned when an Objective is built without a model.
	ErrNilModel = errors.New("analysis: model is nil")

	// ErrNilData is returned when an Objective is built without data.
	ErrNilData = errors.New("analysis: dataset is nil")

	// ErrNoVarying indicates that a fit or sample was requested while no
	// parameter has Vary set.
	ErrNoVarying = errors.New("analysis: no varying parameters")

	// ErrParamLength indicates a value vector whose length does not match
	// the number of varying parameters.
	ErrParamLength = errors.New("analysis: parameter vector length mismatch")

	// ErrBoundsRequired indicates a varying parameter without finite bounds
	// in a routine that needs a bounded search box (DE, walker init).
	ErrBoundsRequired = errors.New("analysis: varying parameter requires finite bounds")

	// ErrBadBounds indicates an invalid interval (lower > upper, or a
	// non-finite limit where a finite one is required).
	ErrBadBounds = errors.New("analysis: invalid bounds")

	// ErrBadOptions indicates an options struct that fails validation.
	ErrBadOptions = errors.New("analysis: invalid options")

	// ErrNonFinite indicates a NaN or Inf value where a finite one is
	// required (parameter values, data ordinates).
	ErrNonFinite = errors.New("analysis: non-finite value")

	// ErrChainTooShort indicates burn/thin settings that leave no samples.
	ErrChainTooShort = errors.New("analysis: chain too short for burn/thin")
)
