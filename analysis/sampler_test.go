package analysis_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haydenrob/refnx/analysis"
)

// stdNormal is an isotropic unit Gaussian log-density.
func stdNormal(x []float64) float64 {
	s := 0.0
	for _, v := range x {
		s += v * v
	}
	return -0.5 * s
}

// gaussStart spreads walkers deterministically around the origin.
func gaussStart(walkers, dim int) [][]float64 {
	out := make([][]float64, walkers)
	for w := range out {
		row := make([]float64, dim)
		for d := range row {
			// small deterministic jitter, distinct per walker
			row[d] = 0.01 * float64(w%7-3) * float64(d+1)
		}
		out[w] = row
	}
	return out
}

// TestSample_RecoversGaussianMoments runs the ensemble on a unit
// Gaussian and checks the posterior mean and spread.
func TestSample_RecoversGaussianMoments(t *testing.T) {
	const (
		dim     = 2
		walkers = 20
		steps   = 3000
		burn    = 1000
	)
	opts := analysis.DefaultSamplerOptions(steps)
	opts.Walkers = walkers
	opts.Seed = 7

	chain, err := analysis.Sample(context.Background(), stdNormal,
		gaussStart(walkers, dim), opts)
	require.NoError(t, err)
	assert.Equal(t, steps, chain.Steps)
	assert.Equal(t, walkers, chain.Walkers)
	assert.Equal(t, dim, chain.Dim)

	flat, err := chain.Flat(burn, 1)
	require.NoError(t, err)

	for d := 0; d < dim; d++ {
		mean, va := 0.0, 0.0
		for _, row := range flat {
			mean += row[d]
		}
		mean /= float64(len(flat))
		for _, row := range flat {
			dv := row[d] - mean
			va += dv * dv
		}
		std := math.Sqrt(va / float64(len(flat)))

		assert.InDelta(t, 0, mean, 0.1, "dim %d mean", d)
		assert.InDelta(t, 1, std, 0.15, "dim %d std", d)
	}

	frac := chain.AcceptanceFraction()
	assert.Greater(t, frac, 0.2, "stretch move on a Gaussian accepts freely")
	assert.Less(t, frac, 0.95)
}

// TestSample_Deterministic: identical seeds give identical chains even
// with parallel workers, thanks to per-walker RNG streams.
func TestSample_Deterministic(t *testing.T) {
	opts := analysis.DefaultSamplerOptions(100)
	opts.Walkers = 12
	opts.Seed = 3

	serial := opts
	serial.Workers = 1
	parallel := opts
	parallel.Workers = 4

	a, err := analysis.Sample(context.Background(), stdNormal, gaussStart(12, 2), serial)
	require.NoError(t, err)
	b, err := analysis.Sample(context.Background(), stdNormal, gaussStart(12, 2), parallel)
	require.NoError(t, err)

	assert.Equal(t, a.Samples, b.Samples, "scheduling must not change the chain")
}

// TestSample_NeverAcceptsForbidden: a log-density of -Inf outside the
// unit box must never be recorded.
func TestSample_NeverAcceptsForbidden(t *testing.T) {
	boxed := func(x []float64) float64 {
		for _, v := range x {
			if v < -1 || v > 1 {
				return math.Inf(-1)
			}
		}
		return 0
	}
	opts := analysis.DefaultSamplerOptions(500)
	opts.Walkers = 10
	opts.Seed = 11

	chain, err := analysis.Sample(context.Background(), boxed, gaussStart(10, 1), opts)
	require.NoError(t, err)
	for i, v := range chain.Samples {
		require.GreaterOrEqual(t, v, -1.0, "sample %d", i)
		require.LessOrEqual(t, v, 1.0, "sample %d", i)
	}
}

// TestSample_Validation covers walker-count and options sentinels.
func TestSample_Validation(t *testing.T) {
	opts := analysis.DefaultSamplerOptions(10)

	// odd walker count
	opts.Walkers = 11
	_, err := analysis.Sample(context.Background(), stdNormal, gaussStart(11, 2), opts)
	assert.ErrorIs(t, err, analysis.ErrBadOptions)

	// too few walkers for the dimension
	opts.Walkers = 2
	_, err = analysis.Sample(context.Background(), stdNormal, gaussStart(2, 2), opts)
	assert.ErrorIs(t, err, analysis.ErrBadOptions)

	// NaN start position
	opts.Walkers = 4
	start := gaussStart(4, 2)
	start[0][0] = math.NaN()
	_, err = analysis.Sample(context.Background(), stdNormal, start, opts)
	assert.ErrorIs(t, err, analysis.ErrNonFinite)
}

// TestChain_Flat covers burn/thin bookkeeping and its sentinel.
func TestChain_Flat(t *testing.T) {
	opts := analysis.DefaultSamplerOptions(10)
	opts.Walkers = 4
	chain, err := analysis.Sample(context.Background(), stdNormal, gaussStart(4, 1), opts)
	require.NoError(t, err)

	flat, err := chain.Flat(4, 2)
	require.NoError(t, err)
	// steps 4,6,8 of 10 → 3 steps × 4 walkers
	assert.Len(t, flat, 12)

	_, err = chain.Flat(10, 1)
	assert.ErrorIs(t, err, analysis.ErrChainTooShort)
}
