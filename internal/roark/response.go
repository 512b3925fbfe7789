package roark

// Response is the internal state of the beam at a cross-section.
type Response struct {
	Shear      float64 `json:"shear"`
	Moment     float64 `json:"moment"`
	Slope      float64 `json:"slope"`
	Deflection float64 `json:"deflection"`
}

// Add returns the component-wise sum of r and o.
func (r Response) Add(o Response) Response {
	return Response{
		Shear:      r.Shear + o.Shear,
		Moment:     r.Moment + o.Moment,
		Slope:      r.Slope + o.Slope,
		Deflection: r.Deflection + o.Deflection,
	}
}

// Shear at x from a point load p at a.
func Shear(x, a, p float64, bc BoundaryConditions) float64 {
	return bc.Ra - p*Step(x, a, 0)
}

// Moment at x from a point load p at a.
func Moment(x, a, p float64, bc BoundaryConditions) float64 {
	return bc.Ma + bc.Ra*x - p*Step(x, a, 1)
}

// Slope at x from a point load p at a.
func Slope(x, a, p float64, bc BoundaryConditions, e, i float64) float64 {
	ei := e * i
	return bc.ThetaA +
		bc.Ma*x/ei +
		bc.Ra*x*x/(2*ei) -
		p/(2*ei)*Step(x, a, 2)
}

// Deflection at x from a point load p at a.
func Deflection(x, a, p float64, bc BoundaryConditions, e, i float64) float64 {
	ei := e * i
	return bc.YA +
		bc.ThetaA*x +
		bc.Ma*x*x/(2*ei) +
		bc.Ra*x*x*x/(6*ei) -
		p/(6*ei)*Step(x, a, 3)
}

// PointLoadResponse evaluates all four quantities at x for a point load p
// at a, given the end A boundary conditions bc of that load.
func PointLoadResponse(x, a, p float64, bc BoundaryConditions, e, i float64) Response {
	return Response{
		Shear:      Shear(x, a, p, bc),
		Moment:     Moment(x, a, p, bc),
		Slope:      Slope(x, a, p, bc, e, i),
		Deflection: Deflection(x, a, p, bc, e, i),
	}
}
