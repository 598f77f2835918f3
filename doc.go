// Package refnx is a toolkit for analysing neutron and X-ray specular
// reflectometry data: composable slab models, a transfer-matrix forward
// calculator, and least-squares plus Bayesian (MCMC) curve fitting.
//
// 🚀 What is refnx?
//
//	A self-contained library that brings together:
//		• Slab models: SLD, Slab, Structure, LipidLeaflet components
//		• Forward model: Abelès transfer-matrix reflectivity with
//		  Névot–Croce roughness and Gaussian resolution smearing
//		• Fitting: parameter/prior framework, chi-squared objectives,
//		  differential evolution, affine-invariant ensemble MCMC
//		• Data: 1-D reflectivity datasets from column text or ORSO .ort
//
// ✨ Why choose refnx?
//
//   - Deterministic by default – fixed seeds, reproducible fits & chains
//   - Explicit errors – sentinel errors, no panics on user input
//   - Concurrency-aware – context cancellation, parallel walker updates
//
// Everything is organized under four packages:
//
//	analysis/ — parameters, bounds, objectives, DE minimizer, MCMC sampler
//	dataset/  — Data1D loading (column text, ORSO .ort)
//	reflect/  — slab structures, components, reflectivity kernel, models
//	cmd/refnx — command-line entry point (calc, fit)
//
// Quick ASCII example of a three-medium system:
//
//	    air      (fronting)
//	    ────────
//	    SiO2     25 Å
//	    ────────
//	    Si       (backing)
//
//	go get github.com/haydenrob/refnx
package refnx
