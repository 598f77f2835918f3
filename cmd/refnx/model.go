package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/haydenrob/refnx/analysis"
	"github.com/haydenrob/refnx/reflect"
)

// modelSpec is the YAML description of a reflectometry model.
//
// Example:
//
//	name: polymer film on silicon
//	structure:
//	  fronting: {name: air, sld: 0.0}
//	  layers:
//	    - name: film
//	      sld: 2.0
//	      thick: 250
//	      rough: 4
//	      vary:
//	        thick: [200, 300]
//	        sld: [1.0, 3.0]
//	  backing: {name: Si, sld: 2.07, rough: 3}
//	scale: 1.0
//	bkg: 1.0e-7
//	dq: 5.0
//	vary:
//	  scale: [0.9, 1.1]
//	  bkg: [0.0, 1.0e-5]
type modelSpec struct {
	Name      string `yaml:"name"`
	Structure struct {
		Fronting mediumSpec  `yaml:"fronting"`
		Layers   []layerSpec `yaml:"layers"`
		Backing  mediumSpec  `yaml:"backing"`
	} `yaml:"structure"`
	Scale *float64             `yaml:"scale"`
	Bkg   *float64             `yaml:"bkg"`
	Dq    *float64             `yaml:"dq"`
	Vary  map[string][]float64 `yaml:"vary"`
}

type mediumSpec struct {
	Name  string               `yaml:"name"`
	SLD   float64              `yaml:"sld"`
	ISLD  float64              `yaml:"isld"`
	Rough float64              `yaml:"rough"`
	Vary  map[string][]float64 `yaml:"vary"`
}

type layerSpec struct {
	Name   string               `yaml:"name"`
	SLD    float64              `yaml:"sld"`
	ISLD   float64              `yaml:"isld"`
	Thick  float64              `yaml:"thick"`
	Rough  float64              `yaml:"rough"`
	VFSolv float64              `yaml:"vfsolv"`
	Vary   map[string][]float64 `yaml:"vary"`
}

// loadModel reads and materializes a model file.
func loadModel(path string) (*reflect.ReflectModel, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var spec modelSpec
	if err := yaml.Unmarshal(raw, &spec); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return spec.build()
}

func (s *modelSpec) build() (*reflect.ReflectModel, error) {
	front := s.Structure.Fronting.slab("fronting", 0)
	if err := applyVary(s.Structure.Fronting.Vary, slabParams(front)); err != nil {
		return nil, err
	}

	comps := []reflect.Component{front}
	for i, l := range s.Structure.Layers {
		name := l.Name
		if name == "" {
			name = fmt.Sprintf("layer%d", i+1)
		}
		sld := reflect.NewSLD(name, l.SLD, l.ISLD)
		slab := reflect.NewSlab(name, sld, l.Thick, l.Rough)
		if l.VFSolv != 0 {
			if err := slab.VolFracSolvent.SetValue(l.VFSolv); err != nil {
				return nil, err
			}
		}
		if err := applyVary(l.Vary, slabParams(slab)); err != nil {
			return nil, err
		}
		comps = append(comps, slab)
	}

	back := s.Structure.Backing.slab("backing", s.Structure.Backing.Rough)
	if err := applyVary(s.Structure.Backing.Vary, slabParams(back)); err != nil {
		return nil, err
	}
	comps = append(comps, back)

	structure := reflect.NewStructure(comps...).WithName(s.Name)
	model := reflect.NewReflectModel(structure)
	if s.Scale != nil {
		if err := model.Scale.SetValue(*s.Scale); err != nil {
			return nil, err
		}
	}
	if s.Bkg != nil {
		if err := model.Bkg.SetValue(*s.Bkg); err != nil {
			return nil, err
		}
	}
	if s.Dq != nil {
		if err := model.Dq.SetValue(*s.Dq); err != nil {
			return nil, err
		}
	}
	err := applyVary(s.Vary, map[string]*analysis.Parameter{
		"scale": model.Scale,
		"bkg":   model.Bkg,
		"dq":    model.Dq,
	})
	if err != nil {
		return nil, err
	}
	return model, nil
}

func (m mediumSpec) slab(fallback string, rough float64) *reflect.Slab {
	name := m.Name
	if name == "" {
		name = fallback
	}
	return reflect.NewSlab(name, reflect.NewSLD(name, m.SLD, m.ISLD), 0, rough)
}

// slabParams maps the YAML vary keys onto a slab's parameters.
func slabParams(s *reflect.Slab) map[string]*analysis.Parameter {
	return map[string]*analysis.Parameter{
		"thick":  s.Thick,
		"rough":  s.Rough,
		"sld":    s.Material.Real,
		"isld":   s.Material.Imag,
		"vfsolv": s.VolFracSolvent,
	}
}

// applyVary marks parameters named in vary as fitted, with a uniform
// prior on the given [lo, hi] interval.
func applyVary(vary map[string][]float64, params map[string]*analysis.Parameter) error {
	for key, lim := range vary {
		p, ok := params[key]
		if !ok {
			return fmt.Errorf("unknown vary key %q", key)
		}
		if len(lim) != 2 {
			return fmt.Errorf("vary key %q: want [lo, hi], got %v", key, lim)
		}
		iv, err := analysis.NewInterval(lim[0], lim[1])
		if err != nil {
			return fmt.Errorf("vary key %q: %w", key, err)
		}
		p.WithBounds(iv).WithVary(true)
	}
	return nil
}
