package reflect

import (
	"fmt"
	"math"

	"github.com/haydenrob/refnx/analysis"
)

// LipidLeaflet describes a lipid monolayer at an interface as two slabs,
// a head-group region and a tail-group region.
//
// The region SLDs are derived quantities: ρ = b/Vm · 10⁶, where b is the
// summed coherent scattering length (Å) and Vm the molecular volume (Å³)
// of the group. The area per molecule ties the two regions together: the
// volume fraction of lipid in a region is Vm/(APM·thickness), and the
// remainder is solvent.
//
// By default heads face the fronting medium; Reverse flips the leaflet.
// Each region may carry its own solvent; regions without one are left to
// the host Structure's solvation.
type LipidLeaflet struct {
	name string

	APM *analysis.Parameter

	BHeadsReal *analysis.Parameter
	BHeadsImag *analysis.Parameter
	VmHeads    *analysis.Parameter
	ThickHeads *analysis.Parameter

	BTailsReal *analysis.Parameter
	BTailsImag *analysis.Parameter
	VmTails    *analysis.Parameter
	ThickTails *analysis.Parameter

	RoughHeadTail  *analysis.Parameter
	RoughPreceding *analysis.Parameter

	HeadSolvent *SLD
	TailSolvent *SLD

	Reverse bool
}

// LipidLeafletConfig carries the construction values of a LipidLeaflet.
//
// Fields:
//   - APM                — area per molecule (Å²)
//   - BHeads, BTails     — summed coherent scattering lengths (Å);
//     complex to allow absorbing isotopes
//   - VmHeads, VmTails   — molecular volumes (Å³)
//   - ThickHeads/Tails   — region thicknesses (Å)
//   - RoughHeadTail      — head|tail interface roughness (Å)
//   - RoughPreceding     — roughness to the preceding component (Å)
//   - HeadSolvent/TailSolvent — per-region solvents; nil defers to the
//     host structure
//   - Reverse            — tails toward the fronting medium
type LipidLeafletConfig struct {
	APM        float64
	BHeads     complex128
	VmHeads    float64
	ThickHeads float64
	BTails     complex128
	VmTails    float64
	ThickTails float64

	RoughHeadTail  float64
	RoughPreceding float64

	HeadSolvent *SLD
	TailSolvent *SLD

	Reverse bool
}

// NewLipidLeaflet builds the component, wrapping every scalar of the
// config in a named parameter so any of them can be fitted.
func NewLipidLeaflet(name string, cfg LipidLeafletConfig) *LipidLeaflet {
	p := func(suffix string, v float64, units string) *analysis.Parameter {
		return analysis.NewParameter(fmt.Sprintf("%s - %s", name, suffix), v).WithUnits(units)
	}
	return &LipidLeaflet{
		name: name,

		APM: p("area_per_molecule", cfg.APM, "Å²"),

		BHeadsReal: p("b_heads_real", real(cfg.BHeads), "Å"),
		BHeadsImag: p("b_heads_imag", imag(cfg.BHeads), "Å"),
		VmHeads:    p("vm_heads", cfg.VmHeads, "Å³"),
		ThickHeads: p("thickness_heads", cfg.ThickHeads, "Å"),

		BTailsReal: p("b_tails_real", real(cfg.BTails), "Å"),
		BTailsImag: p("b_tails_imag", imag(cfg.BTails), "Å"),
		VmTails:    p("vm_tails", cfg.VmTails, "Å³"),
		ThickTails: p("thickness_tails", cfg.ThickTails, "Å"),

		RoughHeadTail:  p("rough_head_tail", cfg.RoughHeadTail, "Å"),
		RoughPreceding: p("rough_fronting_mono", cfg.RoughPreceding, "Å"),

		HeadSolvent: cfg.HeadSolvent,
		TailSolvent: cfg.TailSolvent,
		Reverse:     cfg.Reverse,
	}
}

// Name returns the component name.
func (l *LipidLeaflet) Name() string { return l.name }

// VolFracHeads is the lipid volume fraction of the head region,
// Vm/(APM·thickness).
func (l *LipidLeaflet) VolFracHeads() float64 {
	return l.VmHeads.Value() / (l.APM.Value() * l.ThickHeads.Value())
}

// VolFracTails is the lipid volume fraction of the tail region.
func (l *LipidLeaflet) VolFracTails() float64 {
	return l.VmTails.Value() / (l.APM.Value() * l.ThickTails.Value())
}

// Slabs returns the head and tail rows. Regions with their own solvent
// are solvated here and emit VolFracSolvent=0, suppressing the host
// structure's solvation for that row.
func (l *LipidLeaflet) Slabs(_ *Structure) []SlabRow {
	head := SlabRow{
		Thick: l.ThickHeads.Value(),
		SLDRe: l.BHeadsReal.Value() / l.VmHeads.Value() * 1e6,
		SLDIm: l.BHeadsImag.Value() / l.VmHeads.Value() * 1e6,
		Rough: l.RoughPreceding.Value(),

		VolFracSolvent: 1 - l.VolFracHeads(),
	}
	tail := SlabRow{
		Thick: l.ThickTails.Value(),
		SLDRe: l.BTailsReal.Value() / l.VmTails.Value() * 1e6,
		SLDIm: l.BTailsImag.Value() / l.VmTails.Value() * 1e6,
		Rough: l.RoughHeadTail.Value(),

		VolFracSolvent: 1 - l.VolFracTails(),
	}

	if l.HeadSolvent != nil {
		head = overallSLD(head, l.HeadSolvent.Complex())
	}
	if l.TailSolvent != nil {
		tail = overallSLD(tail, l.TailSolvent.Complex())
	}

	if l.Reverse {
		// Swap the regions but keep the roughness sequence: the first
		// row still joins the preceding component, the second row the
		// internal head|tail interface.
		head.Rough, tail.Rough = tail.Rough, head.Rough
		return []SlabRow{tail, head}
	}
	return []SlabRow{head, tail}
}

// Params returns every parameter of the leaflet, including per-region
// solvent SLDs when present.
func (l *LipidLeaflet) Params() analysis.Parameters {
	out := analysis.Parameters{
		l.APM,
		l.BHeadsReal, l.BHeadsImag, l.VmHeads, l.ThickHeads,
		l.BTailsReal, l.BTailsImag, l.VmTails, l.ThickTails,
		l.RoughHeadTail, l.RoughPreceding,
	}
	if l.HeadSolvent != nil {
		out = append(out, l.HeadSolvent.Params()...)
	}
	if l.TailSolvent != nil {
		out = append(out, l.TailSolvent.Params()...)
	}
	return out
}

// LogP vetoes unphysical packing: a lipid volume fraction above 1 means
// the molecules do not fit in the region volume.
func (l *LipidLeaflet) LogP() float64 {
	if l.VolFracHeads() > 1 || l.VolFracTails() > 1 {
		return math.Inf(-1)
	}
	return 0
}
