package reflect

import (
	"math"
	"math/cmplx"
)

// Reflectivity — Abelès transfer-matrix kernel.
//
// Description:
//
//	Computes the specular reflectivity R(q) of a slab table using the
//	Abelès (Parratt-equivalent) characteristic-matrix method with
//	Névot–Croce Gaussian roughness factors.
//
// Algorithm Outline (per q point):
//  1. kz = q/2 in the fronting medium.
//  2. In every medium n: kₙ = √(kz² − 4π(ρₙ − ρ₀)), with ρ in Å⁻²
//     (the table stores 10⁻⁶ Å⁻², scaled here). The principal complex
//     square root keeps evanescent waves decaying.
//  3. Each interface n|n+1 contributes a Fresnel coefficient
//     r = (kₙ − kₙ₊₁)/(kₙ + kₙ₊₁) · exp(−2 kₙ kₙ₊₁ σₙ₊₁²)
//     and each interior layer a phase β = i·kₙ·dₙ.
//  4. The 2×2 characteristic matrices are multiplied front to back and
//     R = |M₁₀/M₀₀|².
//
// Properties:
//   - For an absorption-free, roughness-free system R = 1 below the
//     critical edge q_c = √(16π Δρ).
//   - A bare interface reduces exactly to the Fresnel formula; a single
//     layer to the Airy summation.
//
// Complexity: O(len(q) · len(slabs)).
//
// Errors:
//   - ErrTooFewSlabs — fewer than 2 rows.
//   - ErrBadSlab     — negative thickness/roughness or non-finite values.
func Reflectivity(q []float64, slabs []SlabRow) ([]float64, error) {
	if len(slabs) < 2 {
		return nil, ErrTooFewSlabs
	}
	for _, s := range slabs {
		if err := validateRow(s); err != nil {
			return nil, err
		}
	}

	n := len(slabs)
	// SLD contrasts relative to the fronting medium, in Å⁻².
	rho0 := complex(slabs[0].SLDRe, slabs[0].SLDIm)
	contrast := make([]complex128, n)
	for i, s := range slabs {
		contrast[i] = (complex(s.SLDRe, s.SLDIm) - rho0) * 1e-6
	}

	out := make([]float64, len(q))
	k := make([]complex128, n)
	for iq, qv := range q {
		kz := math.Abs(qv) / 2
		kz2 := complex(kz*kz, 0)

		for i := 0; i < n; i++ {
			k[i] = cmplx.Sqrt(kz2 - 4*math.Pi*contrast[i])
		}

		// M accumulates the characteristic-matrix product.
		m00 := complex(1, 0)
		m01 := complex(0, 0)
		m10 := complex(0, 0)
		m11 := complex(1, 0)

		for i := 0; i < n-1; i++ {
			r := (k[i] - k[i+1]) / (k[i] + k[i+1])
			sigma := slabs[i+1].Rough
			if sigma > 0 {
				r *= cmplx.Exp(-2 * k[i] * k[i+1] * complex(sigma*sigma, 0))
			}

			// The fronting medium carries no phase; interior layers do.
			beta := complex(0, 0)
			if i > 0 {
				beta = complex(0, 1) * k[i] * complex(slabs[i].Thick, 0)
			}
			ep := cmplx.Exp(beta)
			em := cmplx.Exp(-beta)

			c00 := ep
			c01 := r * ep
			c10 := r * em
			c11 := em

			t00 := m00*c00 + m01*c10
			t01 := m00*c01 + m01*c11
			t10 := m10*c00 + m11*c10
			t11 := m10*c01 + m11*c11
			m00, m01, m10, m11 = t00, t01, t10, t11
		}

		refl := m10 / m00
		out[iq] = real(refl * cmplx.Conj(refl))
	}
	return out, nil
}
