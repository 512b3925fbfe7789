// Package roark implements the closed-form point load solutions of Roark's
// Formulas for Stress and Strain, 7th Ed., Table 8.1 - Shear, Moment, Slope,
// and Deflection Formulas for Elastic, Straight Beams.
//
// Sign convention (Roark):
//   - P is positive acting downward
//   - reactions are positive acting upward
//   - positive moment causes sagging (compression on top)
//   - deflection is positive upward
//   - x is measured from the left end A
package roark

import "math"

// Step is the singularity function <x - a>^n.
// Returns 0 when x <= a and (x - a)^n when x > a, so the load at x = a is
// not yet "active" at its own cross-section.
func Step(x, a, n float64) float64 {
	if x <= a {
		return 0
	}
	return math.Pow(x-a, n)
}
