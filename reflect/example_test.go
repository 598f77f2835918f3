package reflect_test

import (
	"fmt"
	"math"

	"github.com/haydenrob/refnx/reflect"
)

// ExampleReflectivity evaluates a bare silicon substrate below its
// critical edge, where an absorption-free interface reflects everything.
//
// Scenario:
//
//	air | Si (SLD 2.07·10⁻⁶ Å⁻²), q = 0.6·q_c.
//
// Complexity: O(len(q) · len(slabs)).
func ExampleReflectivity() {
	slabs := []reflect.SlabRow{
		{SLDRe: 0},    // air
		{SLDRe: 2.07}, // silicon
	}

	qc := math.Sqrt(16 * math.Pi * 2.07e-6)
	r, err := reflect.Reflectivity([]float64{0.6 * qc}, slabs)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("R = %.3f\n", r[0])
	// Output:
	// R = 1.000
}

// ExampleNewStructure builds the canonical air | SiO2 | Si stack and
// counts its slab rows.
func ExampleNewStructure() {
	air := reflect.NewSLD("air", 0, 0)
	sio2 := reflect.NewSLD("SiO2", 3.47, 0)
	si := reflect.NewSLD("Si", 2.07, 0)

	s := reflect.NewStructure(
		air.Slab(0, 0),
		sio2.Slab(25, 3),
		si.Slab(0, 3),
	)
	rows, err := s.Slabs()
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("%d slabs, film thickness %.0f Å\n", len(rows), rows[1].Thick)
	// Output:
	// 3 slabs, film thickness 25 Å
}
