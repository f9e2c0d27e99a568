package geom_test

import (
	"fmt"

	"github.com/katalvlaran/geomopt/field"
	"github.com/katalvlaran/geomopt/geom"
)

// ExampleKernel_Circumcenter evaluates a triangle center over plain floats.
func ExampleKernel_Circumcenter() {
	k := geom.NewKernel[float64, bool](field.NewFloat(nil))
	A, B, C := k.Pt(0, 0), k.Pt(4, 0), k.Pt(0, 3)

	x, y := k.Values(k.Circumcenter(A, B, C))
	fmt.Printf("O = (%.2f, %.2f)\n", x, y)
	// Output:
	// O = (2.00, 1.50)
}

// ExampleKernel_InterLineCircle shows both roots of a secant.
func ExampleKernel_InterLineCircle() {
	k := geom.NewKernel[float64, bool](field.NewFloat(nil))
	c := geom.Circle[float64]{Center: k.Pt(0, 0), Radius: 5}

	r1, r2 := k.InterLineCircle(k.Pt(3, -10), k.Pt(3, 10), c)
	fmt.Printf("(%.1f, %.1f) (%.1f, %.1f)\n", r1.X, r1.Y, r2.X, r2.Y)
	// Output:
	// (3.0, 4.0) (3.0, -4.0)
}
