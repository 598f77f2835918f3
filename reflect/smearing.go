package reflect

import "math"

// Resolution smearing for constant dQ/Q instruments.
//
// The measured curve is the true reflectivity convolved with a Gaussian
// resolution kernel whose FWHM grows linearly with q. SmearedReflectivity
// evaluates that convolution point-wise by Gauss–Legendre quadrature over
// ±intLimit standard deviations, renormalized by the truncated Gaussian
// mass so a flat curve smears to itself.

const (
	// fwhm = 2·√(2·ln 2) · σ for a Gaussian.
	fwhmToSigma = 2.354820045030949

	// integration half-width in units of σ.
	intLimit = 3.5

	// DefaultQuadOrder is the quadrature order used by ReflectModel.
	DefaultQuadOrder = 17
)

// SmearedReflectivity computes the resolution-smeared reflectivity of a
// slab table. dqPercent is the FWHM resolution dQ/Q as a percentage
// (5 means 5%); 0 short-circuits to the bare kernel. order is the
// Gauss–Legendre order (≥ 3).
//
// Errors: ErrBadResolution for dqPercent < 0 or order < 3, plus anything
// Reflectivity returns.
func SmearedReflectivity(q []float64, slabs []SlabRow, dqPercent float64, order int) ([]float64, error) {
	if dqPercent < 0 || (dqPercent > 0 && order < 3) {
		return nil, ErrBadResolution
	}
	if dqPercent == 0 {
		return Reflectivity(q, slabs)
	}

	nodes, weights := gaussLegendre(order)

	// Evaluate the kernel at every quadrature abscissa in one call.
	qeval := make([]float64, 0, len(q)*order)
	for _, qv := range q {
		sigma := math.Abs(qv) * dqPercent / 100 / fwhmToSigma
		for _, x := range nodes {
			qeval = append(qeval, qv+x*intLimit*sigma)
		}
	}
	rEval, err := Reflectivity(qeval, slabs)
	if err != nil {
		return nil, err
	}

	// Mass of the Gaussian inside ±intLimit σ; renormalizes truncation.
	norm := math.Erf(intLimit / math.Sqrt2)

	out := make([]float64, len(q))
	for i := range q {
		acc := 0.0
		for j, x := range nodes {
			// substitution u = x·intLimit: weight × N(u) × R
			u := x * intLimit
			g := math.Exp(-0.5*u*u) / math.Sqrt(2*math.Pi)
			acc += weights[j] * g * rEval[i*order+j]
		}
		out[i] = acc * intLimit / norm
	}
	return out, nil
}

// gaussLegendre returns the order-n Gauss–Legendre nodes on [-1, 1] and
// their weights, by Newton iteration on the Legendre recurrence.
//
// Complexity: O(n²); called once per smeared evaluation, order ≤ ~33.
func gaussLegendre(n int) (x, w []float64) {
	x = make([]float64, n)
	w = make([]float64, n)
	m := (n + 1) / 2
	for i := 0; i < m; i++ {
		// Chebyshev estimate of the i-th root, then Newton polish.
		z := math.Cos(math.Pi * (float64(i) + 0.75) / (float64(n) + 0.5))
		var pp float64
		for {
			p1, p2 := 1.0, 0.0
			for j := 0; j < n; j++ {
				p3 := p2
				p2 = p1
				p1 = ((2*float64(j)+1)*z*p2 - float64(j)*p3) / float64(j+1)
			}
			pp = float64(n) * (z*p1 - p2) / (z*z - 1)
			z1 := z
			z = z1 - p1/pp
			if math.Abs(z-z1) < 1e-15 {
				break
			}
		}
		x[i] = -z
		x[n-1-i] = z
		w[i] = 2 / ((1 - z*z) * pp * pp)
		w[n-1-i] = w[i]
	}
	return x, w
}
