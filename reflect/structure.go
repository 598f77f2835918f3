package reflect

import (
	"fmt"
	"math"

	"github.com/haydenrob/refnx/analysis"
)

// SlabRow is one row of the flattened slab table consumed by the
// reflectivity kernel:
//
//	[ thickness (Å), Re SLD, Im SLD (10⁻⁶ Å⁻²), roughness σ (Å), vfsolv ]
//
// Rough is the roughness of the interface between this slab and the one
// before it (fronting side). VolFracSolvent is the solvent volume
// fraction still to be mixed in by the Structure; components that solvate
// themselves emit 0 here.
type SlabRow struct {
	Thick          float64
	SLDRe          float64
	SLDIm          float64
	Rough          float64
	VolFracSolvent float64
}

// Component is anything that can contribute slabs to a Structure.
//
//   - Slabs returns the component's rows, fronting side first. The host
//     structure is passed so components can consult shared context.
//   - Params returns every parameter of the component (duplicates fine).
//   - LogP returns an extra log-prior term; 0 when the component has no
//     internal constraints, -Inf to veto an unphysical state.
type Component interface {
	Slabs(host *Structure) []SlabRow
	Params() analysis.Parameters
	LogP() float64
}

// Slab is the basic Component: one uniform layer.
type Slab struct {
	name string

	Thick          *analysis.Parameter
	Rough          *analysis.Parameter
	VolFracSolvent *analysis.Parameter
	Material       *SLD
}

// NewSlab builds a layer of material sld with the given thickness and
// fronting-interface roughness (both Å).
func NewSlab(name string, sld *SLD, thick, rough float64) *Slab {
	return &Slab{
		name:           name,
		Thick:          analysis.NewParameter(fmt.Sprintf("%s - thick", name), thick).WithUnits("Å"),
		Rough:          analysis.NewParameter(fmt.Sprintf("%s - rough", name), rough).WithUnits("Å"),
		VolFracSolvent: analysis.NewParameter(fmt.Sprintf("%s - volfrac solvent", name), 0),
		Material:       sld,
	}
}

// Name returns the slab name.
func (s *Slab) Name() string { return s.name }

// Slabs returns the single row of this layer.
func (s *Slab) Slabs(_ *Structure) []SlabRow {
	return []SlabRow{{
		Thick:          s.Thick.Value(),
		SLDRe:          s.Material.Real.Value(),
		SLDIm:          s.Material.Imag.Value(),
		Rough:          s.Rough.Value(),
		VolFracSolvent: s.VolFracSolvent.Value(),
	}}
}

// Params returns thickness, SLD, roughness and solvation parameters.
func (s *Slab) Params() analysis.Parameters {
	out := analysis.Parameters{s.Thick}
	out = append(out, s.Material.Params()...)
	out = append(out, s.Rough, s.VolFracSolvent)
	return out
}

// LogP returns -Inf for a solvent volume fraction outside [0, 1].
func (s *Slab) LogP() float64 {
	vf := s.VolFracSolvent.Value()
	if vf < 0 || vf > 1 {
		return math.Inf(-1)
	}
	return 0
}

// Structure is an ordered stack of Components, fronting medium first and
// backing medium last.
//
// Solvation: interior rows with VolFracSolvent > 0 are mixed with the
// structure solvent, ρ ← ρ·(1−vf) + ρ_solv·vf. The solvent defaults to
// the backing medium (the usual solid/liquid cell geometry) and can be
// overridden with SetSolvent.
type Structure struct {
	name       string
	components []Component
	solvent    *SLD
}

// NewStructure stacks components fronting → backing.
func NewStructure(components ...Component) *Structure {
	return &Structure{components: append([]Component(nil), components...)}
}

// WithName names the structure and returns it for chaining.
func (st *Structure) WithName(name string) *Structure { st.name = name; return st }

// Name returns the structure name.
func (st *Structure) Name() string { return st.name }

// Append adds components at the backing side.
func (st *Structure) Append(components ...Component) {
	st.components = append(st.components, components...)
}

// Components returns the stack in order.
func (st *Structure) Components() []Component { return st.components }

// SetSolvent overrides the solvation medium (nil restores the default,
// the backing medium).
func (st *Structure) SetSolvent(s *SLD) { st.solvent = s }

// Solvent returns the effective solvation medium.
// Falls back to the backing slab's material when unset.
func (st *Structure) Solvent() (*SLD, error) {
	if st.solvent != nil {
		return st.solvent, nil
	}
	if len(st.components) < 2 {
		return nil, ErrNoSolvent
	}
	back, ok := st.components[len(st.components)-1].(*Slab)
	if !ok {
		return nil, ErrNoSolvent
	}
	return back.Material, nil
}

// Slabs flattens the stack into the kernel's slab table, applying
// solvation exactly once per interior row. Returns ErrTooFewSlabs for
// stacks without distinct fronting and backing media, and ErrBadSlab for
// negative thickness/roughness or non-finite values.
func (st *Structure) Slabs() ([]SlabRow, error) {
	var rows []SlabRow
	for _, c := range st.components {
		rows = append(rows, c.Slabs(st)...)
	}
	if len(rows) < 2 {
		return nil, ErrTooFewSlabs
	}

	for i := range rows {
		if err := validateRow(rows[i]); err != nil {
			return nil, err
		}
	}

	// Solvate interior rows that still carry a solvent fraction.
	for i := 1; i < len(rows)-1; i++ {
		if rows[i].VolFracSolvent == 0 {
			continue
		}
		solv, err := st.Solvent()
		if err != nil {
			return nil, err
		}
		rows[i] = overallSLD(rows[i], solv.Complex())
	}
	return rows, nil
}

// Params returns the parameters of every component.
func (st *Structure) Params() analysis.Parameters {
	var out analysis.Parameters
	for _, c := range st.components {
		out = append(out, c.Params()...)
	}
	if st.solvent != nil {
		out = append(out, st.solvent.Params()...)
	}
	return out
}

// LogP sums the component log-prior terms.
func (st *Structure) LogP() float64 {
	total := 0.0
	for _, c := range st.components {
		lp := c.LogP()
		if math.IsInf(lp, -1) {
			return lp
		}
		total += lp
	}
	return total
}

// overallSLD mixes a row with solvent: ρ ← ρ·(1−vf) + ρ_solv·vf, and
// clears the remaining solvent fraction.
func overallSLD(row SlabRow, solvent complex128) SlabRow {
	vf := row.VolFracSolvent
	row.SLDRe = row.SLDRe*(1-vf) + real(solvent)*vf
	row.SLDIm = row.SLDIm*(1-vf) + imag(solvent)*vf
	row.VolFracSolvent = 0
	return row
}

func validateRow(r SlabRow) error {
	for _, v := range [...]float64{r.Thick, r.SLDRe, r.SLDIm, r.Rough, r.VolFracSolvent} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return ErrBadSlab
		}
	}
	if r.Thick < 0 || r.Rough < 0 {
		return ErrBadSlab
	}
	return nil
}
