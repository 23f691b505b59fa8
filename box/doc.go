// Package box models periodic simulation boxes and minimum-image wrapping.
//
// A Box is parameterized the triclinic way: three edge lengths
// (Lx, Ly, Lz) and three tilt factors (XY, XZ, YZ). The box matrix is
//
//	h = | Lx  XY·Ly  XZ·Lz |
//	    |  0     Ly  YZ·Lz |
//	    |  0      0     Lz |
//
// so an orthorhombic box is simply the zero-tilt special case.
//
// Core operations:
//   - Fractional / Absolute: convert between Cartesian and box-fraction
//     coordinates (h⁻¹·v and h·f).
//   - Wrap / WrapAll: apply the minimum-image convention to displacement
//     vectors by rounding fractional coordinates to the nearest image.
//
// All operations are pure and allocation-free per vector; WrapAll mutates
// its argument in place. Complexity: O(1) per vector.
//
// Construction validates geometry and returns ErrNonPositiveLength for
// degenerate boxes; no method panics on user input.
package box
