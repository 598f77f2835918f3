package dataset

import "sort"

// Data1D holds one measured reflectivity curve.
//
// Q is momentum transfer (Å⁻¹), R the reflectivity, DR the 1σ
// uncertainty on R and DQ the 1σ q-resolution. DR and DQ are nil when
// the source had no such columns.
//
// A mask selects the points used by an analysis.Objective; a nil mask
// means "use everything".
type Data1D struct {
	Name string

	Q  []float64
	R  []float64
	DR []float64
	DQ []float64

	mask []bool
}

// NewData1D builds a dataset from columns. r must match q in length;
// dr/dq may each be nil or match q in length.
func NewData1D(name string, q, r, dr, dq []float64) (*Data1D, error) {
	if len(q) == 0 {
		return nil, ErrNoData
	}
	if len(r) != len(q) ||
		(dr != nil && len(dr) != len(q)) ||
		(dq != nil && len(dq) != len(q)) {
		return nil, ErrLengthMismatch
	}
	return &Data1D{Name: name, Q: q, R: r, DR: dr, DQ: dq}, nil
}

// Len returns the total number of points, masked or not.
func (d *Data1D) Len() int { return len(d.Q) }

// SetMask installs a point mask (true = include). A nil mask clears it.
func (d *Data1D) SetMask(mask []bool) error {
	if mask != nil && len(mask) != len(d.Q) {
		return ErrMaskLength
	}
	d.mask = mask
	return nil
}

// Mask returns the current mask (nil when all points are included).
func (d *Data1D) Mask() []bool { return d.mask }

// Masked returns the included q, R and dR columns. With a nil mask the
// stored slices are returned directly; otherwise fresh slices are built.
// dr is nil when the dataset carries no uncertainties.
func (d *Data1D) Masked() (q, r, dr []float64) {
	if d.mask == nil {
		return d.Q, d.R, d.DR
	}
	for i, use := range d.mask {
		if !use {
			continue
		}
		q = append(q, d.Q[i])
		r = append(r, d.R[i])
		if d.DR != nil {
			dr = append(dr, d.DR[i])
		}
	}
	return q, r, dr
}

// SortQ sorts all columns (and the mask) together by ascending q.
// The sort is stable so duplicate q points keep their file order.
func (d *Data1D) SortQ() {
	idx := make([]int, len(d.Q))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return d.Q[idx[a]] < d.Q[idx[b]] })

	d.Q = permute(d.Q, idx)
	d.R = permute(d.R, idx)
	if d.DR != nil {
		d.DR = permute(d.DR, idx)
	}
	if d.DQ != nil {
		d.DQ = permute(d.DQ, idx)
	}
	if d.mask != nil {
		m := make([]bool, len(idx))
		for i, j := range idx {
			m[i] = d.mask[j]
		}
		d.mask = m
	}
}

// Scale multiplies R and dR by factor (e.g. normalizing to the critical
// edge).
func (d *Data1D) Scale(factor float64) {
	for i := range d.R {
		d.R[i] *= factor
	}
	for i := range d.DR {
		d.DR[i] *= factor
	}
}

func permute(v []float64, idx []int) []float64 {
	out := make([]float64, len(idx))
	for i, j := range idx {
		out[i] = v[j]
	}
	return out
}
