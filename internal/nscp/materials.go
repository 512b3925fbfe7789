package nscp

import (
	"fmt"
	"math"
	"strings"
)

// NSCP 2015 Material Constants

const (
	// Modulus of elasticity for steel (Section 420.2.2)
	Es = 200000.0 // MPa

	// Structural steel (Section 502.3)
	EsStructural = 200000.0 // MPa

	// Typical modulus for visually graded structural timber
	Ewood = 10000.0 // MPa
)

// Ec calculates the modulus of elasticity of normal weight concrete
// NSCP 2015 Section 419.2.2.1: Ec = 4700√f'c (MPa)
func Ec(fc float64) float64 {
	return 4700 * math.Sqrt(fc)
}

// Modulus returns the elastic modulus (MPa) of a named material. f'c is
// only used for concrete.
func Modulus(material string, fc float64) (float64, error) {
	switch strings.ToLower(strings.TrimSpace(material)) {
	case "steel":
		return Es, nil
	case "structural":
		return EsStructural, nil
	case "concrete", "rc":
		if fc <= 0 {
			return 0, fmt.Errorf("concrete requires f'c > 0, got %.2f", fc)
		}
		return Ec(fc), nil
	case "wood", "timber":
		return Ewood, nil
	}
	return 0, fmt.Errorf("unknown material %q (use steel, structural, concrete or wood)", material)
}
