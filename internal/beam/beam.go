package beam

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/goroark/internal/nscp"
	"github.com/alexiusacademia/goroark/internal/roark"
)

// DefaultSections is the number of analysis points used when none is given.
const DefaultSections = 10

// MaxSections caps the number of analysis points.
const MaxSections = 100000

// Spec holds the elastic and geometric properties of the beam.
// Units must be consistent (e.g. N, mm, MPa).
type Spec struct {
	E float64 `json:"e"`      // elastic modulus (force / length²)
	I float64 `json:"i"`      // moment of inertia (length⁴)
	L float64 `json:"length"` // span (length)
}

// Validate checks that E, I and L are positive and finite.
func (s Spec) Validate() error {
	for _, f := range []struct {
		name  string
		value float64
	}{
		{"elastic modulus E", s.E},
		{"moment of inertia I", s.I},
		{"length L", s.L},
	} {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) || f.value <= 0 {
			return &roark.InvalidConfigurationError{Field: f.name, Value: f.value, Msg: "must be positive and finite"}
		}
	}
	return nil
}

// EI returns the flexural rigidity.
func (s Spec) EI() float64 {
	return s.E * s.I
}

// PointLoad is a concentrated transverse load, positive downward, located
// A units from the left end.
type PointLoad struct {
	P     float64       `json:"p"`
	A     float64       `json:"a"`
	Kind  nscp.LoadType `json:"kind,omitempty"`
	Label string        `json:"label,omitempty"`
}

func (p PointLoad) String() string {
	s := fmt.Sprintf("P=%g @ a=%g", p.P, p.A)
	if p.Kind != "" {
		s += " (" + string(p.Kind) + ")"
	}
	return s
}

// Beam is a loaded beam with its restraints and discretization.
// The grid is cached and recomputed whenever Sections or Spec.L change.
// A Beam is not safe for concurrent use.
type Beam struct {
	Name     string
	Spec     Spec
	Code     roark.Code
	Loads    []PointLoad
	Sections int // number of analysis points, Sections - 1 segments

	grid     []float64
	gridN    int
	gridSpan float64
}

// New creates a beam with DefaultSections analysis points.
func New(spec Spec, code roark.Code, loads ...PointLoad) *Beam {
	return &Beam{
		Spec:     spec,
		Code:     code,
		Loads:    loads,
		Sections: DefaultSections,
	}
}

// Validate checks the beam properties, restraints, loads and section count.
func (b *Beam) Validate() error {
	if err := b.Spec.Validate(); err != nil {
		return err
	}
	if !b.Code.Valid() {
		return &roark.InvalidRestraintError{Code: b.Code}
	}
	if err := checkSections(b.Sections); err != nil {
		return err
	}
	return checkLoads(b.Loads, b.Spec.L)
}

// Coordinate returns the x coordinate of section i (1-based):
// section 1 is at x = 0 and section Sections is at x = L.
func (b *Beam) Coordinate(i int) (float64, error) {
	return Coordinate(i, b.Sections, b.Spec.L)
}

// Grid returns the coordinates of all sections.
func (b *Beam) Grid() ([]float64, error) {
	if b.grid != nil && b.gridN == b.Sections && b.gridSpan == b.Spec.L {
		return b.grid, nil
	}
	g, err := Grid(b.Sections, b.Spec.L)
	if err != nil {
		return nil, err
	}
	b.grid, b.gridN, b.gridSpan = g, b.Sections, b.Spec.L
	return g, nil
}

// Analyze superposes all loads at every section of the grid.
func (b *Beam) Analyze() ([]Section, error) {
	if !b.Code.Valid() {
		return nil, &roark.InvalidRestraintError{Code: b.Code}
	}
	if err := b.Spec.Validate(); err != nil {
		return nil, err
	}
	xs, err := b.Grid()
	if err != nil {
		return nil, err
	}
	solved, err := resolveAll(b.Spec, b.Code, b.Loads)
	if err != nil {
		return nil, err
	}
	return evaluate(b.Spec, solved, xs), nil
}

// At returns the combined response at an arbitrary coordinate x.
func (b *Beam) At(x float64) (roark.Response, error) {
	if math.IsNaN(x) || x < 0 || x > b.Spec.L {
		return roark.Response{}, &roark.InvalidConfigurationError{Field: "x", Value: x, Msg: fmt.Sprintf("must lie within [0, %g]", b.Spec.L)}
	}
	if !b.Code.Valid() {
		return roark.Response{}, &roark.InvalidRestraintError{Code: b.Code}
	}
	if err := b.Spec.Validate(); err != nil {
		return roark.Response{}, err
	}
	solved, err := resolveAll(b.Spec, b.Code, b.Loads)
	if err != nil {
		return roark.Response{}, err
	}
	return evaluate(b.Spec, solved, []float64{x})[0].Response, nil
}

// Factored returns a copy of the beam with every load scaled by the factor
// the combination assigns to its kind. Loads without a kind count as dead load.
func (b *Beam) Factored(combo nscp.LoadCombination) *Beam {
	loads := make([]PointLoad, 0, len(b.Loads))
	for _, l := range b.Loads {
		f := combo.Factor(l.Kind)
		if f == 0 {
			continue
		}
		l.P *= f
		loads = append(loads, l)
	}
	return &Beam{
		Name:     b.Name,
		Spec:     b.Spec,
		Code:     b.Code,
		Loads:    loads,
		Sections: b.Sections,
	}
}

// Summary returns a short description of the beam properties.
func (b *Beam) Summary() string {
	return fmt.Sprintf("E = %g, I = %g, L = %g, %s, %d load(s), %d sections",
		b.Spec.E, b.Spec.I, b.Spec.L, b.Code, len(b.Loads), b.Sections)
}

// Coordinate returns x_i = (i-1)/(n-1)·l for section i of n.
func Coordinate(i, n int, l float64) (float64, error) {
	if err := checkSections(n); err != nil {
		return 0, err
	}
	if i < 1 || i > n {
		return 0, &roark.InvalidConfigurationError{Field: "section number", Value: float64(i), Msg: fmt.Sprintf("must lie within [1, %d]", n)}
	}
	if i == n {
		return l, nil
	}
	return float64(i-1) / float64(n-1) * l, nil
}

// Grid returns n coordinates evenly spaced from 0 to l inclusive.
func Grid(n int, l float64) ([]float64, error) {
	if err := checkSections(n); err != nil {
		return nil, err
	}
	xs := make([]float64, n)
	for i := range xs {
		xs[i], _ = Coordinate(i+1, n, l)
	}
	return xs, nil
}

func checkSections(n int) error {
	if n < 2 {
		return &roark.InvalidConfigurationError{Field: "section count", Value: float64(n), Msg: "at least 2 sections are required"}
	}
	if n > MaxSections {
		return &roark.InvalidConfigurationError{Field: "section count", Value: float64(n), Msg: fmt.Sprintf("at most %d sections are allowed", MaxSections)}
	}
	return nil
}

func checkLoads(loads []PointLoad, l float64) error {
	for i, p := range loads {
		if math.IsNaN(p.P) || math.IsInf(p.P, 0) || math.IsNaN(p.A) || p.A < 0 || p.A > l {
			return &roark.InvalidLoadError{Index: i, P: p.P, A: p.A, Length: l}
		}
	}
	return nil
}
