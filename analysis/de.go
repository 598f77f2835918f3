package analysis

import (
	"context"
	"math"
)

// DifferentialEvolution — global minimization over a bounded box.
//
// Description:
//
//	Best/1/bin differential evolution. A population of candidate vectors
//	explores the search box; each generation every member is challenged by
//	a trial vector built from the current best plus a scaled difference of
//	two distinct members, mixed in by binomial crossover.
//
// Algorithm Outline:
//  1. Initialize NP = PopMult·ndim members uniformly inside the box and
//     evaluate their energies.
//  2. Per generation, draw the mutation factor F uniformly from
//     [MutationMin, MutationMax) (dither).
//  3. For each member i: pick distinct r1, r2 ≠ i,
//     mutant = best + F·(x[r1] − x[r2]), clamped to the box.
//     Binomial crossover with probability Recombination per dimension
//     (one dimension is always taken from the mutant).
//  4. Replace member i when the trial energy is not worse.
//  5. Stop when std(energies) ≤ ATol + Tol·|mean(energies)|, or after
//     MaxIter generations, or when ctx is cancelled.
//
// Determinism:
//
//	All randomness flows from Options.Seed (0 ⇒ fixed default), so a run
//	is exactly reproducible.
//
// Complexity: O(MaxIter · NP · ndim) energy evaluations at worst.
//
// Errors:
//   - ErrBadBounds  — empty box, inverted or non-finite limits.
//   - ErrBadOptions — non-positive population or iteration budget, or a
//     recombination probability outside (0, 1].
//   - ctx.Err()     — when the context is cancelled mid-run.

// DEOptions configures DifferentialEvolution.
//
// Fields:
//   - PopMult       — population size per dimension (NP = PopMult·ndim,
//     floored at minPopulation).
//   - MaxIter       — maximum number of generations.
//   - Tol, ATol     — relative/absolute convergence tolerances.
//   - MutationMin/Max — dither interval for the mutation factor F.
//   - Recombination — crossover probability CR in (0, 1].
//   - Seed          — RNG seed; 0 means the fixed default stream.
//   - Progress      — optional per-generation callback (gen, MaxIter,
//     best energy); used by the CLI progress bar. May be nil.
type DEOptions struct {
	PopMult       int
	MaxIter       int
	Tol           float64
	ATol          float64
	MutationMin   float64
	MutationMax   float64
	Recombination float64
	Seed          int64
	Progress      func(gen, maxIter int, best float64)
}

// minPopulation is the smallest population that keeps best/1/bin well
// defined (best + two distinct others + the challenged member).
const minPopulation = 5

// DefaultDEOptions mirrors the conventional settings of the scipy solver
// family: popsize 15, dithered F in [0.5, 1), CR 0.7.
func DefaultDEOptions() DEOptions {
	return DEOptions{
		PopMult:       15,
		MaxIter:       1000,
		Tol:           1e-2,
		ATol:          0,
		MutationMin:   0.5,
		MutationMax:   1.0,
		Recombination: 0.7,
	}
}

// DEResult holds the outcome of a DifferentialEvolution run.
type DEResult struct {
	// X is the best vector found.
	X []float64

	// Energy is the objective value at X.
	Energy float64

	// Generations actually performed.
	Generations int

	// Evaluations counts energy-function calls.
	Evaluations int

	// Converged reports whether the tolerance test was met before the
	// iteration budget ran out.
	Converged bool
}

// DifferentialEvolution minimizes energy over the box bounds.
// energy must be finite or +Inf (use +Inf to reject unphysical states).
func DifferentialEvolution(
	ctx context.Context,
	energy func(x []float64) float64,
	bounds [][2]float64,
	opts DEOptions,
) (DEResult, error) {
	ndim := len(bounds)
	if ndim == 0 {
		return DEResult{}, ErrBadBounds
	}
	for _, b := range bounds {
		if math.IsNaN(b[0]) || math.IsNaN(b[1]) ||
			math.IsInf(b[0], 0) || math.IsInf(b[1], 0) || b[0] > b[1] {
			return DEResult{}, ErrBadBounds
		}
	}
	if opts.PopMult <= 0 || opts.MaxIter <= 0 ||
		opts.Recombination <= 0 || opts.Recombination > 1 ||
		opts.MutationMin < 0 || opts.MutationMax < opts.MutationMin {
		return DEResult{}, ErrBadOptions
	}

	rng := rngFromSeed(opts.Seed)
	np := opts.PopMult * ndim
	if np < minPopulation {
		np = minPopulation
	}

	// Population init: uniform inside the box.
	pop := make([][]float64, np)
	energies := make([]float64, np)
	evals := 0
	best := 0
	for i := range pop {
		pop[i] = make([]float64, ndim)
		for d := 0; d < ndim; d++ {
			pop[i][d] = uniformIn(rng, bounds[d][0], bounds[d][1])
		}
		energies[i] = energy(pop[i])
		evals++
		if energies[i] < energies[best] {
			best = i
		}
	}

	trial := make([]float64, ndim)
	pick := make([]int, 2)
	res := DEResult{}

	for gen := 1; gen <= opts.MaxIter; gen++ {
		if err := ctx.Err(); err != nil {
			return DEResult{}, err
		}

		f := uniformIn(rng, opts.MutationMin, opts.MutationMax)

		for i := 0; i < np; i++ {
			pickDistinct(rng, np, i, pick)
			forced := rng.Intn(ndim)
			for d := 0; d < ndim; d++ {
				if d == forced || rng.Float64() < opts.Recombination {
					v := pop[best][d] + f*(pop[pick[0]][d]-pop[pick[1]][d])
					// Clamp to the box; DE never proposes outside it.
					if v < bounds[d][0] {
						v = bounds[d][0]
					} else if v > bounds[d][1] {
						v = bounds[d][1]
					}
					trial[d] = v
				} else {
					trial[d] = pop[i][d]
				}
			}
			e := energy(trial)
			evals++
			if e <= energies[i] {
				copy(pop[i], trial)
				energies[i] = e
				if e < energies[best] {
					best = i
				}
			}
		}

		res.Generations = gen
		if opts.Progress != nil {
			opts.Progress(gen, opts.MaxIter, energies[best])
		}
		if populationConverged(energies, opts.Tol, opts.ATol) {
			res.Converged = true
			break
		}
	}

	res.X = append([]float64(nil), pop[best]...)
	res.Energy = energies[best]
	res.Evaluations = evals
	return res, nil
}

// populationConverged applies std ≤ atol + tol·|mean| over the finite
// member energies. Infinite energies (rejected states) keep the test
// failing until the population leaves the forbidden region.
func populationConverged(energies []float64, tol, atol float64) bool {
	mean := 0.0
	for _, e := range energies {
		if math.IsInf(e, 0) || math.IsNaN(e) {
			return false
		}
		mean += e
	}
	mean /= float64(len(energies))
	va := 0.0
	for _, e := range energies {
		d := e - mean
		va += d * d
	}
	std := math.Sqrt(va / float64(len(energies)))
	return std <= atol+tol*math.Abs(mean)
}
