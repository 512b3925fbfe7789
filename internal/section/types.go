package section

import "fmt"

// Section represents a cross-section defined by vertices
// The section is defined in a local coordinate system where:
// - Y-axis points upward (bending about the horizontal centroidal axis)
// - X-axis points to the right
// - Origin can be at any convenient location
type Section struct {
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`

	// Section geometry defined by vertices
	// Vertices should be defined counter-clockwise for the outer boundary
	// The section is assumed to be a simple polygon (no holes)
	Vertices []Point `json:"vertices"`
}

// Point represents a 2D coordinate
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Properties holds calculated geometric properties
type Properties struct {
	// Overall dimensions
	Width  float64 // Maximum width
	Height float64 // Total height
	Area   float64 // Gross area

	// Centroid location
	CentroidX float64
	CentroidY float64

	// Bounding box
	MinX float64
	MaxX float64
	MinY float64
	MaxY float64

	// Second moments of area about the centroidal axes
	Ixx float64 // about the horizontal axis, used for vertical bending
	Iyy float64

	// Distance from the centroid to the extreme fibres
	CTop    float64
	CBottom float64
}

// SectionModulus returns the elastic section moduli to the top and bottom
// fibres.
func (p *Properties) SectionModulus() (top, bottom float64) {
	if p.CTop > 0 {
		top = p.Ixx / p.CTop
	}
	if p.CBottom > 0 {
		bottom = p.Ixx / p.CBottom
	}
	return top, bottom
}

// Rectangle returns a solid rectangular section of width b and height h.
func Rectangle(b, h float64) *Section {
	return &Section{
		Name: fmt.Sprintf("%gx%g rectangle", b, h),
		Vertices: []Point{
			{X: 0, Y: 0},
			{X: b, Y: 0},
			{X: b, Y: h},
			{X: 0, Y: h},
		},
	}
}

// Validate checks if the section definition is valid
func (s *Section) Validate() error {
	if len(s.Vertices) < 3 {
		return &ValidationError{"section must have at least 3 vertices"}
	}
	area, _, _ := s.calculateAreaAndCentroid()
	if area <= 0 {
		return &ValidationError{"section must enclose a positive area"}
	}
	return nil
}

// ValidationError represents a section validation error
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}
