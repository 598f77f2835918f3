// Package dataset loads and manages 1-D reflectivity data.
//
// 🚀 What is dataset?
//
//	The data layer of refnx:
//	  • Data1D — q / R / dR / dQ columns with an optional point mask,
//	    stable q-sorting and intensity scaling
//	  • Column text loader — 2 to 4 whitespace- or comma-separated
//	    columns, '#' comments, blank lines ignored
//	  • ORSO .ort reader — the Open Reflectometry Standards Organisation
//	    text format: a '#'-prefixed YAML header followed by a data block
//
// ⚙️ Usage:
//
//	d, err := dataset.Load("c_PLP0011859_q.txt")
//	if err != nil { ... }
//	q, r, dr := d.Masked()
//
// Column conventions follow the reflectometry standard ordering:
// q (Å⁻¹), R, dR (1σ), dQ (1σ, FWHM/2.3548). Missing uncertainty columns
// simply yield nil slices.
package dataset
