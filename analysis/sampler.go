package analysis

import (
	"context"
	"math"
	"math/rand"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Sample — affine-invariant ensemble MCMC (stretch move).
//
// Description:
//
//	Samples a log-density with an ensemble of walkers using the
//	Goodman–Weare stretch move. The ensemble is split into two halves;
//	each half is updated in turn against the frozen complementary half,
//	which keeps the within-half updates independent and therefore safe to
//	run in parallel.
//
// Algorithm Outline (one step, one half):
//  1. For each walker X in the half, draw a complement walker C.
//  2. Draw z from g(z) ∝ 1/√z on [1/a, a]:  z = ((a−1)·u + 1)²/a.
//  3. Propose Y = C + z·(X − C).
//  4. Accept with probability min(1, z^(d−1) · p(Y)/p(X)).
//
// Determinism:
//
//	Each walker owns an RNG stream derived from Options.Seed via a
//	SplitMix64 mix, so the chain is identical regardless of how the
//	parallel updates are scheduled.
//
// Errors:
//   - ErrBadOptions — walker count odd, below 2·dim, or a < 1.
//   - ErrNonFinite  — a start position with NaN coordinates.
//   - ctx.Err()     — when the context is cancelled mid-run.

// SamplerOptions configures Sample.
//
// Fields:
//   - Walkers      — ensemble size; must be even and ≥ 2·dim.
//     0 ⇒ max(2·dim rounded up to even, 50).
//   - Steps        — number of ensemble steps to record.
//   - StretchScale — the stretch parameter a (default 2.0).
//   - Seed         — RNG seed; 0 means the fixed default stream.
//   - Workers      — parallel log-density evaluations; 0 ⇒ GOMAXPROCS.
//   - Progress     — optional per-step callback; used by the CLI bar.
type SamplerOptions struct {
	Walkers      int
	Steps        int
	StretchScale float64
	Seed         int64
	Workers      int
	Progress     func(step, steps int)
}

// DefaultSamplerOptions returns the conventional settings for a run of
// the given length: auto-sized ensemble, a=2, serial-equivalent parallel
// evaluation.
func DefaultSamplerOptions(steps int) SamplerOptions {
	return SamplerOptions{Steps: steps, StretchScale: 2.0}
}

// Chain is the recorded output of Sample.
//
// Samples is laid out step-major: the coordinates of (step s, walker w)
// occupy Samples[(s·Walkers+w)·Dim : (s·Walkers+w+1)·Dim].
type Chain struct {
	Steps   int
	Walkers int
	Dim     int

	Samples []float64
	LogProb []float64

	accepted int
	proposed int
}

// At returns the coordinate vector of (step, walker) as a shared slice.
func (c *Chain) At(step, walker int) []float64 {
	off := (step*c.Walkers + walker) * c.Dim
	return c.Samples[off : off+c.Dim]
}

// AcceptanceFraction returns the fraction of accepted proposals.
func (c *Chain) AcceptanceFraction() float64 {
	if c.proposed == 0 {
		return 0
	}
	return float64(c.accepted) / float64(c.proposed)
}

// Flat discards the first burn steps, keeps every thin-th of the rest and
// returns the surviving states as rows. thin < 1 is treated as 1.
// Returns ErrChainTooShort when nothing survives.
func (c *Chain) Flat(burn, thin int) ([][]float64, error) {
	if thin < 1 {
		thin = 1
	}
	if burn < 0 || burn >= c.Steps {
		return nil, ErrChainTooShort
	}
	var out [][]float64
	for s := burn; s < c.Steps; s += thin {
		for w := 0; w < c.Walkers; w++ {
			out = append(out, append([]float64(nil), c.At(s, w)...))
		}
	}
	if len(out) == 0 {
		return nil, ErrChainTooShort
	}
	return out, nil
}

// Sample runs the ensemble sampler on logpost starting from start
// (one row per walker). The walker count is taken from opts.Walkers when
// set, otherwise from len(start).
//
// logpost is called from up to opts.Workers goroutines at once and must
// be safe for concurrent use (Objective.LogPosterior is).
func Sample(
	ctx context.Context,
	logpost func(x []float64) float64,
	start [][]float64,
	opts SamplerOptions,
) (*Chain, error) {
	if len(start) == 0 || len(start[0]) == 0 {
		return nil, ErrBadOptions
	}
	dim := len(start[0])
	walkers := opts.Walkers
	if walkers == 0 {
		walkers = len(start)
	}
	if walkers != len(start) || walkers%2 != 0 || walkers < 2*dim {
		return nil, ErrBadOptions
	}
	a := opts.StretchScale
	if a == 0 {
		a = 2.0
	}
	if a < 1 || opts.Steps <= 0 {
		return nil, ErrBadOptions
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	// Working state: current positions and log-densities.
	pos := make([][]float64, walkers)
	lp := make([]float64, walkers)
	for w := range start {
		if len(start[w]) != dim {
			return nil, ErrBadOptions
		}
		for _, v := range start[w] {
			if math.IsNaN(v) {
				return nil, ErrNonFinite
			}
		}
		pos[w] = append([]float64(nil), start[w]...)
		lp[w] = logpost(pos[w])
	}

	// One RNG stream per walker keeps the chain independent of goroutine
	// scheduling.
	rngs := make([]*rand.Rand, walkers)
	for w := range rngs {
		rngs[w] = deriveRNG(opts.Seed, uint64(w))
	}

	chain := &Chain{
		Steps:   opts.Steps,
		Walkers: walkers,
		Dim:     dim,
		Samples: make([]float64, opts.Steps*walkers*dim),
		LogProb: make([]float64, opts.Steps*walkers),
	}
	acceptedBy := make([]int, walkers)
	half := walkers / 2

	for s := 0; s < opts.Steps; s++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		// Update the two halves in turn; the complementary half is frozen
		// while a half moves, so within-half updates are independent.
		for _, lohi := range [2][2]int{{0, half}, {half, walkers}} {
			clo, chi := half, walkers
			if lohi[0] == half {
				clo, chi = 0, half
			}

			g, _ := errgroup.WithContext(ctx)
			g.SetLimit(workers)
			for w := lohi[0]; w < lohi[1]; w++ {
				w := w
				g.Go(func() error {
					r := rngs[w]
					c := pos[clo+r.Intn(chi-clo)]

					u := r.Float64()
					z := (u*(a-1) + 1)
					z = z * z / a

					y := make([]float64, dim)
					for d := 0; d < dim; d++ {
						y[d] = c[d] + z*(pos[w][d]-c[d])
					}
					ly := logpost(y)

					// ln q = (d−1)·ln z + ln p(Y) − ln p(X)
					lnq := float64(dim-1)*math.Log(z) + ly - lp[w]
					if lnq >= 0 || math.Log(r.Float64()) < lnq {
						copy(pos[w], y)
						lp[w] = ly
						acceptedBy[w]++
					}
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return nil, err
			}
		}

		for w := 0; w < walkers; w++ {
			copy(chain.At(s, w), pos[w])
			chain.LogProb[s*walkers+w] = lp[w]
		}
		if opts.Progress != nil {
			opts.Progress(s+1, opts.Steps)
		}
	}

	for _, n := range acceptedBy {
		chain.accepted += n
	}
	chain.proposed = opts.Steps * walkers
	return chain, nil
}
