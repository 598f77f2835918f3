package analysis

import (
	"math"
	"sync"

	"github.com/haydenrob/refnx/dataset"
)

// Model is the forward-model contract consumed by an Objective.
//
//   - Model evaluates the theoretical curve on the given abscissae using
//     the current parameter values.
//   - Params returns every parameter of the model; duplicates are allowed
//     and are deduplicated by the Objective.
//   - LogP returns extra log-prior terms that are not expressible as
//     per-parameter bounds (e.g. a component penalizing an unphysical
//     volume fraction with -Inf). Models without such terms return 0.
type Model interface {
	Model(x []float64) ([]float64, error)
	Params() Parameters
	LogP() float64
}

// Objective pairs a Model with a 1-D dataset and exposes the statistical
// quantities a minimizer or sampler needs: residuals, chi-squared,
// log-likelihood, log-prior and log-posterior.
//
// The default energy is chi-squared, Σ((y−model)/σ)²; points without
// uncertainties use σ=1 so the energy degrades to plain least squares.
type Objective struct {
	model Model
	data  *dataset.Data1D
	name  string

	// guards LogPosterior: parameter values are shared state, and the
	// sampler evaluates the posterior from several goroutines.
	mu sync.Mutex
}

// NewObjective builds an Objective. Returns ErrNilModel / ErrNilData on
// missing arguments.
func NewObjective(m Model, d *dataset.Data1D) (*Objective, error) {
	if m == nil {
		return nil, ErrNilModel
	}
	if d == nil {
		return nil, ErrNilData
	}
	return &Objective{model: m, data: d, name: d.Name}, nil
}

// Name returns the objective's name (the dataset name by default).
func (o *Objective) Name() string { return o.name }

// Data returns the underlying dataset.
func (o *Objective) Data() *dataset.Data1D { return o.data }

// ModelOf returns the underlying model.
func (o *Objective) ModelOf() Model { return o.model }

// Varying returns the unique varying parameters of the model.
func (o *Objective) Varying() Parameters {
	return o.model.Params().Varying()
}

// P returns the current values of the varying parameters.
func (o *Objective) P() []float64 {
	return o.Varying().Values()
}

// SetP writes a varying-parameter vector back into the model.
func (o *Objective) SetP(vals []float64) error {
	return o.Varying().SetValues(vals)
}

// Generative evaluates the model on the unmasked abscissae.
func (o *Objective) Generative() ([]float64, error) {
	q, _, _ := o.data.Masked()
	return o.model.Model(q)
}

// Residuals returns (y − model)/σ over the unmasked points.
func (o *Objective) Residuals() ([]float64, error) {
	q, y, sigma := o.data.Masked()
	m, err := o.model.Model(q)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(y))
	for i := range y {
		s := 1.0
		if sigma != nil && sigma[i] > 0 {
			s = sigma[i]
		}
		out[i] = (y[i] - m[i]) / s
	}
	return out, nil
}

// Chisqr returns the sum of squared normalized residuals.
func (o *Objective) Chisqr() (float64, error) {
	res, err := o.Residuals()
	if err != nil {
		return 0, err
	}
	total := 0.0
	for _, r := range res {
		total += r * r
	}
	return total, nil
}

// LogLikelihood returns the Gaussian log-likelihood,
//
//	-0.5 Σ [ ((y−model)/σ)² + ln(2πσ²) ].
func (o *Objective) LogLikelihood() (float64, error) {
	q, y, sigma := o.data.Masked()
	m, err := o.model.Model(q)
	if err != nil {
		return 0, err
	}
	total := 0.0
	for i := range y {
		s := 1.0
		if sigma != nil && sigma[i] > 0 {
			s = sigma[i]
		}
		r := (y[i] - m[i]) / s
		total += r*r + math.Log(2*math.Pi*s*s)
	}
	return -0.5 * total, nil
}

// LogPrior sums the parameter priors and the model's own LogP term.
func (o *Objective) LogPrior() float64 {
	lp := o.model.Params().LogPrior()
	if math.IsInf(lp, -1) {
		return lp
	}
	return lp + o.model.LogP()
}

// LogPosterior sets the varying parameters to vals and returns
// log-prior + log-likelihood. States outside the prior support return
// -Inf without evaluating the model, as do model failures; this is the
// density the ensemble sampler targets.
//
// LogPosterior is safe for concurrent use; evaluations are serialized
// because parameter values are shared state.
func (o *Objective) LogPosterior(vals []float64) float64 {
	o.mu.Lock()
	defer o.mu.Unlock()
	if err := o.SetP(vals); err != nil {
		return math.Inf(-1)
	}
	lp := o.LogPrior()
	if math.IsInf(lp, -1) || math.IsNaN(lp) {
		return math.Inf(-1)
	}
	ll, err := o.LogLikelihood()
	if err != nil || math.IsNaN(ll) {
		return math.Inf(-1)
	}
	return lp + ll
}

// GlobalObjective co-refines several objectives whose models may share
// *Parameter pointers; shared parameters are counted once and updated
// everywhere by a single SetP.
type GlobalObjective struct {
	objectives []*Objective

	mu sync.Mutex
}

// NewGlobalObjective builds a GlobalObjective over objs.
// Returns ErrNilData when objs is empty or contains a nil entry.
func NewGlobalObjective(objs ...*Objective) (*GlobalObjective, error) {
	if len(objs) == 0 {
		return nil, ErrNilData
	}
	for _, o := range objs {
		if o == nil {
			return nil, ErrNilData
		}
	}
	return &GlobalObjective{objectives: objs}, nil
}

// Varying returns the union of varying parameters across all objectives,
// deduplicated in first-seen order.
func (g *GlobalObjective) Varying() Parameters {
	all := make(Parameters, 0)
	for _, o := range g.objectives {
		all = append(all, o.model.Params()...)
	}
	return all.Varying()
}

// SetP writes a value vector across the union of varying parameters.
func (g *GlobalObjective) SetP(vals []float64) error {
	return g.Varying().SetValues(vals)
}

// Chisqr sums the chi-squared of every constituent objective.
func (g *GlobalObjective) Chisqr() (float64, error) {
	total := 0.0
	for _, o := range g.objectives {
		c, err := o.Chisqr()
		if err != nil {
			return 0, err
		}
		total += c
	}
	return total, nil
}

// LogPosterior sets the shared parameter vector and sums the posterior
// terms of every constituent objective. Safe for concurrent use.
func (g *GlobalObjective) LogPosterior(vals []float64) float64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	if err := g.SetP(vals); err != nil {
		return math.Inf(-1)
	}
	total := 0.0
	for _, o := range g.objectives {
		lp := o.LogPrior()
		if math.IsInf(lp, -1) || math.IsNaN(lp) {
			return math.Inf(-1)
		}
		ll, err := o.LogLikelihood()
		if err != nil || math.IsNaN(ll) {
			return math.Inf(-1)
		}
		total += lp + ll
	}
	return total
}
