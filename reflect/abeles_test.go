package reflect_test

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haydenrob/refnx/reflect"
)

// air | Si, no roughness: the classic bare-substrate system.
// Si SLD 2.07e-6 Å⁻² gives a critical edge at q_c = √(16π·2.07e-6).
func bareSilicon() []reflect.SlabRow {
	return []reflect.SlabRow{
		{SLDRe: 0},
		{SLDRe: 2.07},
	}
}

// TestReflectivity_TotalReflection: below the critical edge an
// absorption-free interface reflects everything.
func TestReflectivity_TotalReflection(t *testing.T) {
	qc := math.Sqrt(16 * math.Pi * 2.07e-6)
	q := []float64{qc * 0.3, qc * 0.6, qc * 0.9}

	r, err := reflect.Reflectivity(q, bareSilicon())
	require.NoError(t, err)
	for i := range r {
		assert.InDelta(t, 1.0, r[i], 1e-9, "q=%g below q_c=%g", q[i], qc)
	}
}

// TestReflectivity_FresnelAboveEdge compares the kernel against the
// real-arithmetic Fresnel formula, a fully independent calculation.
func TestReflectivity_FresnelAboveEdge(t *testing.T) {
	q := []float64{0.02, 0.05, 0.1, 0.2, 0.3}
	r, err := reflect.Reflectivity(q, bareSilicon())
	require.NoError(t, err)

	for i, qv := range q {
		kz := qv / 2
		k1 := math.Sqrt(kz*kz - 4*math.Pi*2.07e-6)
		fr := (kz - k1) / (kz + k1)
		assert.InDelta(t, fr*fr, r[i], 1e-12, "q=%g", qv)
	}
}

// TestReflectivity_SingleLayerAiry compares a one-layer film against the
// closed-form Airy summation r = (r01 + r12·e^{2ik₁d}) / (1 + r01·r12·e^{2ik₁d}).
func TestReflectivity_SingleLayerAiry(t *testing.T) {
	const (
		rho1 = 2.0  // film SLD
		rho2 = 2.07 // substrate SLD
		d    = 120.0
	)
	slabs := []reflect.SlabRow{
		{SLDRe: 0},
		{Thick: d, SLDRe: rho1},
		{SLDRe: rho2},
	}

	var q []float64
	for qv := 0.02; qv <= 0.3; qv += 0.004 {
		q = append(q, qv)
	}
	r, err := reflect.Reflectivity(q, slabs)
	require.NoError(t, err)

	for i, qv := range q {
		kz := complex(qv/2, 0)
		k1 := cmplx.Sqrt(kz*kz - 4*math.Pi*rho1*1e-6)
		k2 := cmplx.Sqrt(kz*kz - 4*math.Pi*rho2*1e-6)
		r01 := (kz - k1) / (kz + k1)
		r12 := (k1 - k2) / (k1 + k2)
		phase := cmplx.Exp(2i * k1 * complex(d, 0))
		airy := (r01 + r12*phase) / (1 + r01*r12*phase)
		want := real(airy * cmplx.Conj(airy))

		assert.InDelta(t, want, r[i], 1e-12, "q=%g", qv)
	}
}

// TestReflectivity_RoughnessDamps: Névot–Croce roughness must reduce the
// reflectivity above the critical edge and leave total reflection alone.
func TestReflectivity_RoughnessDamps(t *testing.T) {
	smooth := bareSilicon()
	rough := bareSilicon()
	rough[1].Rough = 5

	q := []float64{0.05, 0.1, 0.2}
	rs, err := reflect.Reflectivity(q, smooth)
	require.NoError(t, err)
	rr, err := reflect.Reflectivity(q, rough)
	require.NoError(t, err)

	for i := range q {
		assert.Less(t, rr[i], rs[i], "q=%g", q[i])
	}
}

// TestReflectivity_AbsorptionBreaksTotalReflection: an imaginary SLD
// soaks up intensity even below the critical edge.
func TestReflectivity_AbsorptionBreaksTotalReflection(t *testing.T) {
	slabs := bareSilicon()
	slabs[1].SLDIm = 0.5

	qc := math.Sqrt(16 * math.Pi * 2.07e-6)
	r, err := reflect.Reflectivity([]float64{qc * 0.5}, slabs)
	require.NoError(t, err)
	assert.Less(t, r[0], 1.0)
	assert.Greater(t, r[0], 0.5)
}

// TestReflectivity_Validation covers slab-table sentinels.
func TestReflectivity_Validation(t *testing.T) {
	_, err := reflect.Reflectivity([]float64{0.1}, []reflect.SlabRow{{SLDRe: 2.07}})
	assert.ErrorIs(t, err, reflect.ErrTooFewSlabs)

	bad := bareSilicon()
	bad[1].SLDRe = math.NaN()
	_, err = reflect.Reflectivity([]float64{0.1}, bad)
	assert.ErrorIs(t, err, reflect.ErrBadSlab)

	neg := bareSilicon()
	neg[1].Rough = -1
	_, err = reflect.Reflectivity([]float64{0.1}, neg)
	assert.ErrorIs(t, err, reflect.ErrBadSlab)
}
