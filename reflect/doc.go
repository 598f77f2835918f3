// Package reflect builds slab models of layered interfaces and computes
// their specular neutron/X-ray reflectivity.
//
// 🚀 What is reflect?
//
//	The forward-model layer of refnx:
//	  • SLD — complex scattering-length density (10⁻⁶ Å⁻²)
//	  • Slab — thickness / SLD / roughness / solvent volume fraction
//	  • Structure — an ordered stack of Components from fronting medium
//	    to backing medium, with solvent solvation
//	  • LipidLeaflet — a head/tail lipid monolayer component built from
//	    scattering-length sums and molecular volumes
//	  • Reflectivity — Abelès transfer-matrix kernel with Névot–Croce
//	    roughness
//	  • ReflectModel — scale·R(q)+background with constant-dQ/Q Gaussian
//	    resolution smearing; plugs into analysis.Objective
//
// ⚙️ Usage:
//
//	air := reflect.NewSLD("air", 0, 0)
//	sio2 := reflect.NewSLD("SiO2", 3.47, 0)
//	si := reflect.NewSLD("Si", 2.07, 0)
//
//	s := reflect.NewStructure(
//		air.Slab(0, 0),
//		sio2.Slab(25, 3),
//		si.Slab(0, 3),
//	)
//	model := reflect.NewReflectModel(s)
//	r, err := model.Model(q)
//
// Conventions:
//
//	q is momentum transfer (Å⁻¹), SLDs are in 10⁻⁶ Å⁻², thicknesses and
//	roughnesses in Å. A Structure runs fronting → backing; the fronting
//	and backing slabs have zero thickness and their roughness fields give
//	the roughness of the interface they form with their neighbour.
package reflect
