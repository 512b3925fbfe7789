package roark

import "math"

// BoundaryConditions holds the values at end A (x = 0) for a single point load.
type BoundaryConditions struct {
	Ra     float64 `json:"ra"`      // reaction force, upward positive
	Ma     float64 `json:"ma"`      // reaction moment, sagging positive
	ThetaA float64 `json:"theta_a"` // slope
	YA     float64 `json:"y_a"`     // deflection, upward positive
}

// Resolve returns the end A boundary conditions for a point load p located
// a units from end A on a beam of length l, modulus e and moment of inertia i.
//
// Cases 1-6 are Roark's Table 8.1-1a to 1f. The mirrored cases are solved on
// the reflected beam (load at l - a, ends swapped) and mapped back through
// y = l - x:
//
//	Ra = Rb' = p - Ra'
//	Ma = M'(l)
//	θa = -θ'(l)
//	ya = y'(l)
func Resolve(code Code, p, e, i, l, a float64) (BoundaryConditions, error) {
	if err := checkBeam(e, i, l); err != nil {
		return BoundaryConditions{}, err
	}
	if err := checkLoad(p, a, l); err != nil {
		return BoundaryConditions{}, err
	}
	cs, ok := Lookup(code)
	if !ok {
		return BoundaryConditions{}, &InvalidRestraintError{Code: code}
	}
	if !cs.Mirror {
		return base(code, p, e*i, l, a), nil
	}

	ar := l - a
	r := base(code.Swap(), p, e*i, l, ar)
	end := PointLoadResponse(l, ar, p, r, e, i)
	return BoundaryConditions{
		Ra:     p - r.Ra,
		Ma:     end.Moment,
		ThetaA: -end.Slope,
		YA:     end.Deflection,
	}, nil
}

// base evaluates the six tabulated cases. code must be one of them.
func base(code Code, p, ei, l, a float64) BoundaryConditions {
	b := l - a
	switch code {
	case Code{Free, Fixed}: // 1a
		return BoundaryConditions{
			ThetaA: p * b * b / (2 * ei),
			YA:     -p / (6 * ei) * (2*l*l*l - 3*l*l*a + a*a*a),
		}

	case Code{Guided, Fixed}: // 1b
		return BoundaryConditions{
			Ma: p * b * b / (2 * l),
			YA: -p / (12 * ei) * b * b * (l + 2*a),
		}

	case Code{Simple, Fixed}: // 1c
		return BoundaryConditions{
			Ra:     p / (2 * l * l * l) * b * b * (2*l + a),
			ThetaA: -p * a * b * b / (4 * ei * l),
		}

	case Code{Fixed, Fixed}: // 1d
		return BoundaryConditions{
			Ra: p / (l * l * l) * b * b * (l + 2*a),
			Ma: -p * a * b * b / (l * l),
		}

	case Code{Simple, Simple}: // 1e
		return BoundaryConditions{
			Ra:     p * b / l,
			ThetaA: -p * a / (6 * ei * l) * (2*l - a) * b,
		}

	case Code{Guided, Simple}: // 1f
		return BoundaryConditions{
			Ma: p * b,
			YA: -p * b / (6 * ei) * (2*l*l + 2*a*l - a*a),
		}
	}
	panic("roark: no tabulated case for " + code.String())
}

// EndB returns the values at end B (x = l) produced by the same load:
// the upward reaction Rb, the moment, slope and deflection at x = l.
func (bc BoundaryConditions) EndB(p, e, i, l, a float64) (rb float64, end Response) {
	end = PointLoadResponse(l, a, p, bc, e, i)
	return p - bc.Ra, end
}

func checkBeam(e, i, l float64) error {
	for _, f := range []struct {
		name  string
		value float64
	}{
		{"elastic modulus E", e},
		{"moment of inertia I", i},
		{"length L", l},
	} {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) || f.value <= 0 {
			return &InvalidConfigurationError{Field: f.name, Value: f.value, Msg: "must be positive and finite"}
		}
	}
	return nil
}

func checkLoad(p, a, l float64) error {
	if math.IsNaN(p) || math.IsInf(p, 0) || math.IsNaN(a) || a < 0 || a > l {
		return &InvalidLoadError{Index: -1, P: p, A: a, Length: l}
	}
	return nil
}
