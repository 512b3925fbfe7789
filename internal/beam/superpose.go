package beam

import (
	"math"

	"github.com/alexiusacademia/goroark/internal/roark"
)

// Section is the combined response at one grid coordinate.
type Section struct {
	X float64 `json:"x"`
	roark.Response
}

// Superpose resolves every load independently and sums their responses at
// n evenly spaced sections. Loads are summed in the order given, so the
// result is reproducible bit for bit.
func Superpose(spec Spec, code roark.Code, loads []PointLoad, n int) ([]Section, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	if !code.Valid() {
		return nil, &roark.InvalidRestraintError{Code: code}
	}
	xs, err := Grid(n, spec.L)
	if err != nil {
		return nil, err
	}
	solved, err := resolveAll(spec, code, loads)
	if err != nil {
		return nil, err
	}
	return evaluate(spec, solved, xs), nil
}

type solvedLoad struct {
	load PointLoad
	bc   roark.BoundaryConditions
}

// resolveAll computes the boundary conditions once per load. The first bad
// load fails the whole call.
func resolveAll(spec Spec, code roark.Code, loads []PointLoad) ([]solvedLoad, error) {
	if err := checkLoads(loads, spec.L); err != nil {
		return nil, err
	}
	solved := make([]solvedLoad, len(loads))
	for i, l := range loads {
		bc, err := roark.Resolve(code, l.P, spec.E, spec.I, spec.L, l.A)
		if err != nil {
			return nil, err
		}
		solved[i] = solvedLoad{load: l, bc: bc}
	}
	return solved, nil
}

func evaluate(spec Spec, solved []solvedLoad, xs []float64) []Section {
	out := make([]Section, len(xs))
	for j, x := range xs {
		var r roark.Response
		for _, s := range solved {
			r = r.Add(roark.PointLoadResponse(x, s.load.A, s.load.P, s.bc, spec.E, spec.I))
		}
		out[j] = Section{X: x, Response: r}
	}
	return out
}

// Reactions holds the combined end values of the beam.
type Reactions struct {
	Ra     float64 // upward reaction at A
	Ma     float64 // moment at A
	ThetaA float64
	YA     float64
	Rb     float64 // upward reaction at B
	Mb     float64 // moment at B
	ThetaB float64
	YB     float64
}

// Reactions sums the end values of every load.
func (b *Beam) Reactions() (Reactions, error) {
	if !b.Code.Valid() {
		return Reactions{}, &roark.InvalidRestraintError{Code: b.Code}
	}
	if err := b.Spec.Validate(); err != nil {
		return Reactions{}, err
	}
	solved, err := resolveAll(b.Spec, b.Code, b.Loads)
	if err != nil {
		return Reactions{}, err
	}
	var r Reactions
	for _, s := range solved {
		rb, end := s.bc.EndB(s.load.P, b.Spec.E, b.Spec.I, b.Spec.L, s.load.A)
		r.Ra += s.bc.Ra
		r.Ma += s.bc.Ma
		r.ThetaA += s.bc.ThetaA
		r.YA += s.bc.YA
		r.Rb += rb
		r.Mb += end.Moment
		r.ThetaB += end.Slope
		r.YB += end.Deflection
	}
	return r, nil
}

// Extreme is the largest positive and negative value of a quantity over
// the grid, with the coordinates where they occur.
type Extreme struct {
	Max  float64
	XMax float64
	Min  float64
	XMin float64
}

// Governing returns the value of larger magnitude and its coordinate.
func (e Extreme) Governing() (float64, float64) {
	if math.Abs(e.Min) > math.Abs(e.Max) {
		return e.Min, e.XMin
	}
	return e.Max, e.XMax
}

// Extremes holds the extremes of each quantity.
type Extremes struct {
	Shear      Extreme
	Moment     Extreme
	Slope      Extreme
	Deflection Extreme
}

// FindExtremes scans the sections for the extreme value of each quantity.
func FindExtremes(sections []Section) Extremes {
	var ex Extremes
	if len(sections) == 0 {
		return ex
	}
	pick := func(e *Extreme, v, x float64, first bool) {
		if first || v > e.Max {
			e.Max, e.XMax = v, x
		}
		if first || v < e.Min {
			e.Min, e.XMin = v, x
		}
	}
	for i, s := range sections {
		first := i == 0
		pick(&ex.Shear, s.Shear, s.X, first)
		pick(&ex.Moment, s.Moment, s.X, first)
		pick(&ex.Slope, s.Slope, s.X, first)
		pick(&ex.Deflection, s.Deflection, s.X, first)
	}
	return ex
}

// Column extracts one quantity from the sections, for plotting.
func Column(sections []Section, f func(roark.Response) float64) []float64 {
	out := make([]float64, len(sections))
	for i, s := range sections {
		out[i] = f(s.Response)
	}
	return out
}
