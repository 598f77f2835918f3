package reflect

import (
	"fmt"

	"github.com/haydenrob/refnx/analysis"
)

// SLD is a complex scattering-length density in units of 10⁻⁶ Å⁻².
// Real and Imag are full analysis parameters, so either part can be
// fitted or shared between components (the same D2O SLD reused as a
// solvent and as a backing medium).
type SLD struct {
	name string

	Real *analysis.Parameter
	Imag *analysis.Parameter
}

// NewSLD returns an SLD with the given real and imaginary parts.
func NewSLD(name string, re, im float64) *SLD {
	return &SLD{
		name: name,
		Real: analysis.NewParameter(fmt.Sprintf("%s - sld", name), re).WithUnits("1e-6 Å⁻²"),
		Imag: analysis.NewParameter(fmt.Sprintf("%s - isld", name), im).WithUnits("1e-6 Å⁻²"),
	}
}

// Name returns the material name.
func (s *SLD) Name() string { return s.name }

// Complex returns the SLD as a complex number (still ×10⁻⁶ Å⁻²).
func (s *SLD) Complex() complex128 {
	return complex(s.Real.Value(), s.Imag.Value())
}

// Params returns the two underlying parameters.
func (s *SLD) Params() analysis.Parameters {
	return analysis.Parameters{s.Real, s.Imag}
}

// Slab wraps this material into a layer of the given thickness and
// interfacial roughness (both Å). Fronting/backing media use thickness 0.
func (s *SLD) Slab(thick, rough float64) *Slab {
	return NewSlab(s.name, s, thick, rough)
}
