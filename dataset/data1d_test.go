package dataset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haydenrob/refnx/dataset"
)

// TestNewData1D_Validation covers the constructor sentinels.
func TestNewData1D_Validation(t *testing.T) {
	_, err := dataset.NewData1D("x", nil, nil, nil, nil)
	assert.ErrorIs(t, err, dataset.ErrNoData)

	_, err = dataset.NewData1D("x", []float64{1, 2}, []float64{1}, nil, nil)
	assert.ErrorIs(t, err, dataset.ErrLengthMismatch)

	_, err = dataset.NewData1D("x", []float64{1, 2}, []float64{1, 2}, []float64{0.1}, nil)
	assert.ErrorIs(t, err, dataset.ErrLengthMismatch)
}

// TestData1D_SortQ: all columns (and the mask) must be permuted
// together.
func TestData1D_SortQ(t *testing.T) {
	d, err := dataset.NewData1D("x",
		[]float64{0.03, 0.01, 0.02},
		[]float64{3, 1, 2},
		[]float64{0.3, 0.1, 0.2},
		[]float64{30, 10, 20})
	require.NoError(t, err)
	require.NoError(t, d.SetMask([]bool{false, true, true}))

	d.SortQ()
	assert.Equal(t, []float64{0.01, 0.02, 0.03}, d.Q)
	assert.Equal(t, []float64{1, 2, 3}, d.R)
	assert.Equal(t, []float64{0.1, 0.2, 0.3}, d.DR)
	assert.Equal(t, []float64{10, 20, 30}, d.DQ)
	assert.Equal(t, []bool{true, true, false}, d.Mask())
}

// TestData1D_Masked: with no mask the stored slices come back; with one,
// only the included points.
func TestData1D_Masked(t *testing.T) {
	d, err := dataset.NewData1D("x",
		[]float64{0.01, 0.02, 0.03},
		[]float64{1, 2, 3},
		[]float64{0.1, 0.2, 0.3}, nil)
	require.NoError(t, err)

	q, r, dr := d.Masked()
	assert.Len(t, q, 3)

	require.NoError(t, d.SetMask([]bool{true, false, true}))
	q, r, dr = d.Masked()
	assert.Equal(t, []float64{0.01, 0.03}, q)
	assert.Equal(t, []float64{1, 3}, r)
	assert.Equal(t, []float64{0.1, 0.3}, dr)

	assert.ErrorIs(t, d.SetMask([]bool{true}), dataset.ErrMaskLength)
}

// TestData1D_Scale multiplies R and dR, leaving q untouched.
func TestData1D_Scale(t *testing.T) {
	d, err := dataset.NewData1D("x",
		[]float64{0.01, 0.02},
		[]float64{1, 2},
		[]float64{0.1, 0.2}, nil)
	require.NoError(t, err)

	d.Scale(2)
	assert.Equal(t, []float64{2, 4}, d.R)
	assert.Equal(t, []float64{0.2, 0.4}, d.DR)
	assert.Equal(t, []float64{0.01, 0.02}, d.Q)
}
