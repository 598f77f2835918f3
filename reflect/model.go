package reflect

import (
	"fmt"

	"github.com/haydenrob/refnx/analysis"
)

// ReflectModel turns a Structure into a fittable curve:
//
//	R_meas(q) = Scale · R_smeared(q) + Bkg
//
// Scale absorbs imperfect normalization to the critical edge, Bkg the
// incoherent background, and Dq is the constant dQ/Q resolution as a
// percentage FWHM. All three are analysis parameters and can be fitted.
//
// ReflectModel satisfies analysis.Model.
type ReflectModel struct {
	structure *Structure

	Scale *analysis.Parameter
	Bkg   *analysis.Parameter
	Dq    *analysis.Parameter

	quadOrder int
}

// NewReflectModel wraps a structure with the conventional defaults:
// scale 1, background 1e-7, 5% dQ/Q resolution.
func NewReflectModel(s *Structure) *ReflectModel {
	name := s.Name()
	if name == "" {
		name = "model"
	}
	return &ReflectModel{
		structure: s,
		Scale:     analysis.NewParameter(fmt.Sprintf("%s - scale", name), 1.0),
		Bkg:       analysis.NewParameter(fmt.Sprintf("%s - bkg", name), 1e-7),
		Dq:        analysis.NewParameter(fmt.Sprintf("%s - dq/q", name), 5.0).WithUnits("% FWHM"),
		quadOrder: DefaultQuadOrder,
	}
}

// WithQuadOrder overrides the smearing quadrature order (≥ 3) and
// returns the model for chaining.
func (m *ReflectModel) WithQuadOrder(order int) *ReflectModel {
	m.quadOrder = order
	return m
}

// Structure returns the wrapped structure.
func (m *ReflectModel) Structure() *Structure { return m.structure }

// Model evaluates scale·R(q)+bkg with resolution smearing.
func (m *ReflectModel) Model(x []float64) ([]float64, error) {
	slabs, err := m.structure.Slabs()
	if err != nil {
		return nil, err
	}
	r, err := SmearedReflectivity(x, slabs, m.Dq.Value(), m.quadOrder)
	if err != nil {
		return nil, err
	}
	scale, bkg := m.Scale.Value(), m.Bkg.Value()
	for i := range r {
		r[i] = scale*r[i] + bkg
	}
	return r, nil
}

// Params returns the instrumental parameters plus everything the
// structure contributes.
func (m *ReflectModel) Params() analysis.Parameters {
	out := analysis.Parameters{m.Scale, m.Bkg, m.Dq}
	return append(out, m.structure.Params()...)
}

// LogP forwards the structure's internal constraints.
func (m *ReflectModel) LogP() float64 { return m.structure.LogP() }
