package analysis

import (
	"fmt"
	"math"
)

// Parameter is a single named model value.
//
// Parameters are shared by pointer: the same *Parameter may appear in
// several components (a solvent SLD reused across layers, a roughness tied
// between interfaces) and is counted exactly once by Parameters.Flatten.
//
// The zero value is not useful; use NewParameter.
type Parameter struct {
	name   string
	units  string
	value  float64
	stderr float64
	vary   bool
	bounds Bounds
}

// NewParameter returns a fixed (non-varying) parameter with the given name
// and value. Configure it fluently:
//
//	thick := analysis.NewParameter("thickness", 25).
//		WithUnits("Å").
//		WithBounds(analysis.Interval{Lb: 10, Ub: 50}).
//		WithVary(true)
func NewParameter(name string, value float64) *Parameter {
	return &Parameter{name: name, value: value}
}

// WithUnits sets the unit label and returns p for chaining.
func (p *Parameter) WithUnits(u string) *Parameter { p.units = u; return p }

// WithBounds attaches a prior and returns p for chaining.
func (p *Parameter) WithBounds(b Bounds) *Parameter { p.bounds = b; return p }

// WithVary marks the parameter as fitted (or held) and returns p.
func (p *Parameter) WithVary(v bool) *Parameter { p.vary = v; return p }

// Name returns the parameter name.
func (p *Parameter) Name() string { return p.name }

// Units returns the unit label ("" when unset).
func (p *Parameter) Units() string { return p.units }

// Value returns the current value.
func (p *Parameter) Value() float64 { return p.value }

// Stderr returns the 1-σ uncertainty assigned by chain processing,
// or 0 when the parameter has not been sampled.
func (p *Parameter) Stderr() float64 { return p.stderr }

// Vary reports whether the parameter is fitted.
func (p *Parameter) Vary() bool { return p.vary }

// Bounds returns the attached prior (nil when unset).
func (p *Parameter) Bounds() Bounds { return p.bounds }

// SetValue assigns a new value. NaN is rejected with ErrNonFinite.
func (p *Parameter) SetValue(v float64) error {
	if math.IsNaN(v) {
		return fmt.Errorf("parameter %q: %w", p.name, ErrNonFinite)
	}
	p.value = v
	return nil
}

// setStderr is written by ProcessChain.
func (p *Parameter) setStderr(s float64) { p.stderr = s }

// LogProb returns the log prior density of the current value.
// A parameter without bounds contributes 0 (improper flat prior).
func (p *Parameter) LogProb() float64 {
	if p.bounds == nil {
		return 0
	}
	return p.bounds.LogProb(p.value)
}

// String renders "name: value ± stderr [units]" for reports.
func (p *Parameter) String() string {
	s := fmt.Sprintf("%s: %g", p.name, p.value)
	if p.stderr != 0 {
		s += fmt.Sprintf(" ± %g", p.stderr)
	}
	if p.units != "" {
		s += " " + p.units
	}
	return s
}

// Parameters is an ordered collection of *Parameter.
//
// Collections may contain the same pointer more than once (a solvent shared
// by two components); Flatten deduplicates while preserving first-seen
// order, and every vector-valued operation below works on the flattened
// varying subset.
type Parameters []*Parameter

// Flatten returns the unique parameters in first-seen order.
func (ps Parameters) Flatten() Parameters {
	seen := make(map[*Parameter]struct{}, len(ps))
	out := make(Parameters, 0, len(ps))
	for _, p := range ps {
		if p == nil {
			continue
		}
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return out
}

// Varying returns the unique varying parameters in first-seen order.
func (ps Parameters) Varying() Parameters {
	flat := ps.Flatten()
	out := make(Parameters, 0, len(flat))
	for _, p := range flat {
		if p.vary {
			out = append(out, p)
		}
	}
	return out
}

// Values returns the current values, in order.
func (ps Parameters) Values() []float64 {
	out := make([]float64, len(ps))
	for i, p := range ps {
		out[i] = p.value
	}
	return out
}

// SetValues assigns vals element-wise. Returns ErrParamLength when the
// lengths differ; on error no parameter is modified.
func (ps Parameters) SetValues(vals []float64) error {
	if len(vals) != len(ps) {
		return ErrParamLength
	}
	for _, v := range vals {
		if math.IsNaN(v) {
			return ErrNonFinite
		}
	}
	for i, p := range ps {
		p.value = vals[i]
	}
	return nil
}

// Names returns the parameter names, in order.
func (ps Parameters) Names() []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.name
	}
	return out
}

// LogPrior sums the log prior densities of the unique varying parameters.
// Returns -Inf as soon as any parameter sits outside its prior support.
func (ps Parameters) LogPrior() float64 {
	total := 0.0
	for _, p := range ps.Varying() {
		lp := p.LogProb()
		if math.IsInf(lp, -1) {
			return lp
		}
		total += lp
	}
	return total
}

// boxes returns the finite [lo,hi] search boxes of the collection, in
// order. Returns ErrBoundsRequired when a parameter has no bounds, and
// ErrBadBounds when a range is non-finite or inverted.
func (ps Parameters) boxes() ([][2]float64, error) {
	out := make([][2]float64, len(ps))
	for i, p := range ps {
		if p.bounds == nil {
			return nil, fmt.Errorf("parameter %q: %w", p.name, ErrBoundsRequired)
		}
		lo, hi := p.bounds.Range()
		if math.IsNaN(lo) || math.IsNaN(hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) || lo > hi {
			return nil, fmt.Errorf("parameter %q: %w", p.name, ErrBadBounds)
		}
		out[i] = [2]float64{lo, hi}
	}
	return out, nil
}
