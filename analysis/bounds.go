package analysis

import (
	"math"
	"math/rand"
)

// ln(2π)/2, the normalization constant of a unit Gaussian log-pdf.
const halfLogTwoPi = 0.9189385332046727

// Bounds is the prior attached to a Parameter.
//
// Implementations must be pure: LogProb and Range may be called from
// multiple goroutines during sampling.
//
//   - LogProb(v) — log prior density at v; -Inf outside the support.
//   - Range()    — a finite search box [lo, hi] enclosing essentially all
//     prior mass, used by DE and walker initialization.
//   - Sample(r)  — one draw from the prior using the supplied RNG.
type Bounds interface {
	LogProb(v float64) float64
	Range() (lo, hi float64)
	Sample(r *rand.Rand) float64
}

// Interval is a uniform prior on [Lb, Ub].
//
// LogProb is -ln(Ub-Lb) inside the interval and -Inf outside, so that the
// prior is properly normalized.
type Interval struct {
	Lb, Ub float64
}

// NewInterval returns a uniform prior on [lb, ub].
// Returns ErrBadBounds if lb > ub or either limit is NaN.
func NewInterval(lb, ub float64) (Interval, error) {
	if math.IsNaN(lb) || math.IsNaN(ub) || lb > ub {
		return Interval{}, ErrBadBounds
	}
	return Interval{Lb: lb, Ub: ub}, nil
}

// LogProb returns the log prior density at v.
func (iv Interval) LogProb(v float64) float64 {
	if v < iv.Lb || v > iv.Ub {
		return math.Inf(-1)
	}
	if iv.Ub == iv.Lb {
		return 0
	}
	return -math.Log(iv.Ub - iv.Lb)
}

// Range returns the interval itself.
func (iv Interval) Range() (float64, float64) { return iv.Lb, iv.Ub }

// Sample draws uniformly from [Lb, Ub).
func (iv Interval) Sample(r *rand.Rand) float64 {
	return uniformIn(r, iv.Lb, iv.Ub)
}

// Clip returns v clamped to [Lb, Ub].
func (iv Interval) Clip(v float64) float64 {
	return math.Max(iv.Lb, math.Min(iv.Ub, v))
}

// Normal is a Gaussian prior with mean Mu and standard deviation Sigma.
type Normal struct {
	Mu, Sigma float64
}

// NewNormal returns a Gaussian prior. Sigma must be positive and finite.
func NewNormal(mu, sigma float64) (Normal, error) {
	if math.IsNaN(mu) || math.IsInf(mu, 0) || !(sigma > 0) || math.IsInf(sigma, 0) {
		return Normal{}, ErrBadBounds
	}
	return Normal{Mu: mu, Sigma: sigma}, nil
}

// LogProb returns the Gaussian log-pdf at v.
func (n Normal) LogProb(v float64) float64 {
	z := (v - n.Mu) / n.Sigma
	return -0.5*z*z - math.Log(n.Sigma) - halfLogTwoPi
}

// Range returns Mu ± 5·Sigma, enclosing all but ~6e-7 of the prior mass.
// A finite box is required by the DE minimizer.
func (n Normal) Range() (float64, float64) {
	return n.Mu - 5*n.Sigma, n.Mu + 5*n.Sigma
}

// Sample draws from N(Mu, Sigma²).
func (n Normal) Sample(r *rand.Rand) float64 {
	return n.Mu + n.Sigma*r.NormFloat64()
}
