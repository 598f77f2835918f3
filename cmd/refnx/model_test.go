package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const modelFixture = `name: polymer film on silicon
structure:
  fronting: {name: air, sld: 0.0}
  layers:
    - name: film
      sld: 2.0
      thick: 250
      rough: 4
      vary:
        thick: [200, 300]
        sld: [1.0, 3.0]
  backing: {name: Si, sld: 2.07, rough: 3}
scale: 1.0
bkg: 1.0e-7
dq: 5.0
vary:
  bkg: [0.0, 1.0e-5]
`

func writeModel(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "model.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// TestLoadModel_BuildsStructure materializes the fixture and checks the
// resulting slab table and varying parameters.
func TestLoadModel_BuildsStructure(t *testing.T) {
	model, err := loadModel(writeModel(t, modelFixture))
	require.NoError(t, err)

	rows, err := model.Structure().Slabs()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, 250.0, rows[1].Thick)
	assert.Equal(t, 2.0, rows[1].SLDRe)
	assert.Equal(t, 3.0, rows[2].Rough)

	assert.Equal(t, 1e-7, model.Bkg.Value())
	assert.Equal(t, 5.0, model.Dq.Value())

	varying := model.Params().Varying()
	require.Len(t, varying, 3, "thick, sld and bkg vary")
	for _, p := range varying {
		assert.NotNil(t, p.Bounds(), "vary entries carry interval priors")
	}
}

// TestLoadModel_UnknownVaryKey rejects typos in the vary map.
func TestLoadModel_UnknownVaryKey(t *testing.T) {
	bad := `structure:
  fronting: {sld: 0.0}
  layers:
    - {sld: 2.0, thick: 100, vary: {thikc: [50, 150]}}
  backing: {sld: 2.07}
`
	_, err := loadModel(writeModel(t, bad))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "thikc")
}

// TestLoadModel_BadInterval rejects inverted vary limits.
func TestLoadModel_BadInterval(t *testing.T) {
	bad := `structure:
  fronting: {sld: 0.0}
  layers:
    - {sld: 2.0, thick: 100, vary: {thick: [150, 50]}}
  backing: {sld: 2.07}
`
	_, err := loadModel(writeModel(t, bad))
	require.Error(t, err)
}

// TestLoadModel_Evaluates runs the built model through the kernel.
func TestLoadModel_Evaluates(t *testing.T) {
	model, err := loadModel(writeModel(t, modelFixture))
	require.NoError(t, err)

	r, err := model.Model([]float64{0.02, 0.1})
	require.NoError(t, err)
	require.Len(t, r, 2)
	assert.Greater(t, r[0], r[1], "reflectivity falls with q")
}
