package analysis

import (
	"fmt"
	"math"

	"github.com/montanaflynn/stats"
)

// ParameterStats summarizes one marginal posterior.
//
// Median is the point estimate; Lo/Hi bracket the 68% credible interval
// (15.87 and 84.13 percentiles); Stderr is half the interval width.
type ParameterStats struct {
	Name   string
	Median float64
	Stderr float64
	Lo     float64
	Hi     float64
}

// percentile points of the ±1σ credible interval.
const (
	loPercentile = 15.87
	hiPercentile = 84.13
)

// ProcessChain reduces a chain to per-parameter statistics and writes the
// result back into params: Value ← median, Stderr ← half the 68% interval.
//
// burn discards the first burn steps, thin keeps every thin-th step of
// the remainder. len(params) must equal the chain dimension.
//
// Returns ErrParamLength on a dimension mismatch and ErrChainTooShort
// when burn/thin leave no samples.
func ProcessChain(c *Chain, burn, thin int, params Parameters) ([]ParameterStats, error) {
	if c == nil {
		return nil, ErrChainTooShort
	}
	if len(params) != c.Dim {
		return nil, ErrParamLength
	}
	flat, err := c.Flat(burn, thin)
	if err != nil {
		return nil, err
	}

	out := make([]ParameterStats, c.Dim)
	col := make([]float64, len(flat))
	for d := 0; d < c.Dim; d++ {
		for i, row := range flat {
			col[i] = row[d]
		}
		med, err := stats.Median(col)
		if err != nil {
			return nil, fmt.Errorf("chain statistics: %w", err)
		}
		lo, err := stats.Percentile(col, loPercentile)
		if err != nil {
			return nil, fmt.Errorf("chain statistics: %w", err)
		}
		hi, err := stats.Percentile(col, hiPercentile)
		if err != nil {
			return nil, fmt.Errorf("chain statistics: %w", err)
		}

		out[d] = ParameterStats{
			Name:   params[d].Name(),
			Median: med,
			Stderr: 0.5 * (hi - lo),
			Lo:     lo,
			Hi:     hi,
		}
		if err := params[d].SetValue(med); err != nil {
			return nil, err
		}
		params[d].setStderr(out[d].Stderr)
	}
	return out, nil
}

// IntegratedAutocorrTime estimates the integrated autocorrelation time of
// one chain dimension, averaged over walkers:
//
//	τ = 1 + 2 Σ ρ(t)
//
// summed over the initial positive sequence of the normalized
// autocorrelation ρ. A τ of k means roughly one independent sample per k
// steps; chains shorter than ~50·τ are poorly converged.
//
// Returns ErrChainTooShort for chains of fewer than 4 steps.
func IntegratedAutocorrTime(c *Chain, dim int) (float64, error) {
	if c == nil || c.Steps < 4 {
		return 0, ErrChainTooShort
	}
	if dim < 0 || dim >= c.Dim {
		return 0, ErrParamLength
	}

	n := c.Steps
	total := 0.0
	for w := 0; w < c.Walkers; w++ {
		x := make([]float64, n)
		mean := 0.0
		for s := 0; s < n; s++ {
			x[s] = c.At(s, w)[dim]
			mean += x[s]
		}
		mean /= float64(n)

		var c0 float64
		for s := 0; s < n; s++ {
			d := x[s] - mean
			c0 += d * d
		}
		c0 /= float64(n)

		tau := 1.0
		if c0 > 0 {
			for t := 1; t < n; t++ {
				var ct float64
				for s := 0; s+t < n; s++ {
					ct += (x[s] - mean) * (x[s+t] - mean)
				}
				ct /= float64(n - t)
				rho := ct / c0
				if rho <= 0 {
					break
				}
				tau += 2 * rho
			}
		}
		total += tau
	}
	tau := total / float64(c.Walkers)
	if math.IsNaN(tau) {
		return 0, ErrNonFinite
	}
	return tau, nil
}
