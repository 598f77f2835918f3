package reflect_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haydenrob/refnx/reflect"
)

// TestSmearedReflectivity_ZeroResolution: dQ/Q = 0 must short-circuit to
// the bare kernel.
func TestSmearedReflectivity_ZeroResolution(t *testing.T) {
	q := []float64{0.02, 0.1, 0.25}
	slabs := bareSilicon()

	plain, err := reflect.Reflectivity(q, slabs)
	require.NoError(t, err)
	smeared, err := reflect.SmearedReflectivity(q, slabs, 0, reflect.DefaultQuadOrder)
	require.NoError(t, err)
	assert.Equal(t, plain, smeared)
}

// TestSmearedReflectivity_FlatRegion: deep inside total reflection the
// curve is flat at 1, so the smeared value must also be 1 — this pins
// the quadrature-weight normalization.
func TestSmearedReflectivity_FlatRegion(t *testing.T) {
	// q_c ≈ 0.0102; 5% resolution at q=0.006 reaches only q ≈ 0.0065.
	q := []float64{0.004, 0.005, 0.006}
	r, err := reflect.SmearedReflectivity(q, bareSilicon(), 5.0, reflect.DefaultQuadOrder)
	require.NoError(t, err)
	for i := range r {
		assert.InDelta(t, 1.0, r[i], 1e-6, "q=%g", q[i])
	}
}

// TestSmearedReflectivity_TinyResolutionConverges: dQ/Q → 0 approaches
// the unsmeared kernel everywhere.
func TestSmearedReflectivity_TinyResolutionConverges(t *testing.T) {
	var q []float64
	for qv := 0.02; qv <= 0.3; qv += 0.01 {
		q = append(q, qv)
	}
	slabs := []reflect.SlabRow{
		{SLDRe: 0},
		{Thick: 80, SLDRe: 3.47, Rough: 3},
		{SLDRe: 2.07, Rough: 3},
	}

	plain, err := reflect.Reflectivity(q, slabs)
	require.NoError(t, err)
	smeared, err := reflect.SmearedReflectivity(q, slabs, 0.01, reflect.DefaultQuadOrder)
	require.NoError(t, err)
	for i := range q {
		assert.InEpsilon(t, plain[i], smeared[i], 1e-3, "q=%g", q[i])
	}
}

// TestSmearedReflectivity_FillsFringeMinima: resolution smearing raises
// the sharp Kiessig minima of a thick film.
func TestSmearedReflectivity_FillsFringeMinima(t *testing.T) {
	slabs := []reflect.SlabRow{
		{SLDRe: 0},
		{Thick: 300, SLDRe: 2.0},
		{SLDRe: 2.07},
	}
	// dense grid so we can locate a genuine local minimum
	var q []float64
	for qv := 0.03; qv <= 0.1; qv += 0.0002 {
		q = append(q, qv)
	}
	plain, err := reflect.Reflectivity(q, slabs)
	require.NoError(t, err)
	smeared, err := reflect.SmearedReflectivity(q, slabs, 5.0, reflect.DefaultQuadOrder)
	require.NoError(t, err)

	raised := 0
	for i := 1; i < len(q)-1; i++ {
		if plain[i] < plain[i-1] && plain[i] < plain[i+1] {
			if smeared[i] > plain[i] {
				raised++
			}
		}
	}
	assert.Greater(t, raised, 3, "smearing must lift the interference minima")
}

// TestSmearedReflectivity_Validation covers resolution sentinels.
func TestSmearedReflectivity_Validation(t *testing.T) {
	q := []float64{0.1}
	_, err := reflect.SmearedReflectivity(q, bareSilicon(), -1, 17)
	assert.ErrorIs(t, err, reflect.ErrBadResolution)

	_, err = reflect.SmearedReflectivity(q, bareSilicon(), 5, 2)
	assert.ErrorIs(t, err, reflect.ErrBadResolution)
}
