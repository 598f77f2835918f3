package analysis

import (
	"context"
	"math"
)

// CurveFitter drives the refinement of a single Objective: a global DE
// fit of the varying parameters, followed (optionally) by MCMC sampling
// of their posterior.
//
// The fitted values are written back into the parameters, so a fit
// composes naturally with a subsequent Sample call:
//
//	fitter := analysis.NewCurveFitter(obj)
//	if _, err := fitter.Fit(ctx, analysis.DefaultDEOptions()); err != nil { ... }
//	chain, err := fitter.Sample(ctx, analysis.DefaultSamplerOptions(2000))
type CurveFitter struct {
	obj *Objective
}

// NewCurveFitter wraps an Objective.
func NewCurveFitter(obj *Objective) *CurveFitter {
	return &CurveFitter{obj: obj}
}

// FitResult holds the outcome of a Fit.
type FitResult struct {
	// Params are the fitted varying-parameter values, already written
	// back into the model.
	Params []float64

	// Chisqr is the chi-squared at the fitted values.
	Chisqr float64

	// Generations and Evaluations report the DE effort spent.
	Generations int
	Evaluations int

	// Converged reports whether DE met its tolerance test.
	Converged bool
}

// Fit minimizes chi-squared over the varying parameters with
// differential evolution. Every varying parameter must carry finite
// bounds (ErrBoundsRequired otherwise). States with -Inf log-prior
// (e.g. an unphysical lipid volume fraction) are rejected by mapping
// them to +Inf energy.
func (f *CurveFitter) Fit(ctx context.Context, opts DEOptions) (*FitResult, error) {
	varying := f.obj.Varying()
	if len(varying) == 0 {
		return nil, ErrNoVarying
	}
	box, err := varying.boxes()
	if err != nil {
		return nil, err
	}

	energy := func(x []float64) float64 {
		if err := f.obj.SetP(x); err != nil {
			return math.Inf(1)
		}
		if math.IsInf(f.obj.LogPrior(), -1) {
			return math.Inf(1)
		}
		chi2, err := f.obj.Chisqr()
		if err != nil || math.IsNaN(chi2) {
			return math.Inf(1)
		}
		return chi2
	}

	res, err := DifferentialEvolution(ctx, energy, box, opts)
	if err != nil {
		return nil, err
	}
	if err := f.obj.SetP(res.X); err != nil {
		return nil, err
	}
	return &FitResult{
		Params:      res.X,
		Chisqr:      res.Energy,
		Generations: res.Generations,
		Evaluations: res.Evaluations,
		Converged:   res.Converged,
	}, nil
}

// relative scale of the initialization ball around the current values.
const walkerJitter = 1e-3

// Sample runs the ensemble sampler on the objective's log-posterior.
// Walkers start in a tight ball around the current varying values
// (jittered by walkerJitter of each parameter's box width and clamped
// inside the box), so Sample is normally called after Fit.
func (f *CurveFitter) Sample(ctx context.Context, opts SamplerOptions) (*Chain, error) {
	varying := f.obj.Varying()
	ndim := len(varying)
	if ndim == 0 {
		return nil, ErrNoVarying
	}
	box, err := varying.boxes()
	if err != nil {
		return nil, err
	}

	walkers := opts.Walkers
	if walkers == 0 {
		walkers = 2 * ndim
		if walkers < 50 {
			walkers = 50
		}
	}
	if walkers%2 != 0 {
		walkers++
	}
	opts.Walkers = walkers

	center := varying.Values()
	r := rngFromSeed(deriveSeed(opts.Seed, 0xFEED))
	start := make([][]float64, walkers)
	for w := range start {
		row := make([]float64, ndim)
		for d := 0; d < ndim; d++ {
			lo, hi := box[d][0], box[d][1]
			v := center[d] + walkerJitter*(hi-lo)*r.NormFloat64()
			// keep strictly inside the box so the prior is finite
			if v <= lo {
				v = math.Nextafter(lo, hi)
			}
			if v >= hi {
				v = math.Nextafter(hi, lo)
			}
			row[d] = v
		}
		start[w] = row
	}

	return Sample(ctx, f.obj.LogPosterior, start, opts)
}
