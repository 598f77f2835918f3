package reflect_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haydenrob/refnx/reflect"
)

// TestReflectModel_ScaleAndBackground: with resolution switched off the
// model is exactly scale·R(q)+bkg.
func TestReflectModel_ScaleAndBackground(t *testing.T) {
	s, _ := threeLayer()
	model := reflect.NewReflectModel(s)
	require.NoError(t, model.Scale.SetValue(0.9))
	require.NoError(t, model.Bkg.SetValue(1e-6))
	require.NoError(t, model.Dq.SetValue(0))

	q := []float64{0.02, 0.1, 0.25}
	got, err := model.Model(q)
	require.NoError(t, err)

	rows, err := s.Slabs()
	require.NoError(t, err)
	plain, err := reflect.Reflectivity(q, rows)
	require.NoError(t, err)

	for i := range q {
		assert.InDelta(t, 0.9*plain[i]+1e-6, got[i], 1e-15, "q=%g", q[i])
	}
}

// TestReflectModel_Defaults checks the conventional defaults.
func TestReflectModel_Defaults(t *testing.T) {
	s, _ := threeLayer()
	model := reflect.NewReflectModel(s)
	assert.Equal(t, 1.0, model.Scale.Value())
	assert.Equal(t, 1e-7, model.Bkg.Value())
	assert.Equal(t, 5.0, model.Dq.Value())
}

// TestReflectModel_ParamsIncludeInstrumental: scale/bkg/dq lead the
// parameter list so they can be varied like any structural parameter.
func TestReflectModel_ParamsIncludeInstrumental(t *testing.T) {
	s, _ := threeLayer()
	model := reflect.NewReflectModel(s)
	ps := model.Params()
	require.NotEmpty(t, ps)
	assert.Same(t, model.Scale, ps[0])
	assert.Same(t, model.Bkg, ps[1])
	assert.Same(t, model.Dq, ps[2])

	// structural parameters follow
	assert.Greater(t, len(ps), 3)
}

// TestReflectModel_BadResolution surfaces kernel sentinels through
// Model.
func TestReflectModel_BadResolution(t *testing.T) {
	s, _ := threeLayer()
	model := reflect.NewReflectModel(s)
	require.NoError(t, model.Dq.SetValue(-2))

	_, err := model.Model([]float64{0.1})
	assert.ErrorIs(t, err, reflect.ErrBadResolution)
}
