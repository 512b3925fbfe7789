package roark

import "fmt"

// InvalidRestraintError is returned for an end restraint pair outside the
// ten statically valid combinations.
type InvalidRestraintError struct {
	Code Code
}

func (e *InvalidRestraintError) Error() string {
	return fmt.Sprintf("invalid end restraint %s (code %d): no unique static solution", e.Code, e.Code.Int())
}

// InvalidLoadError is returned for a point load located outside the beam.
type InvalidLoadError struct {
	Index  int // position in the load list, -1 for a single load
	P      float64
	A      float64
	Length float64
}

func (e *InvalidLoadError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("load %d (P=%g at a=%g) lies outside the beam [0, %g]", e.Index+1, e.P, e.A, e.Length)
	}
	return fmt.Sprintf("load P=%g at a=%g lies outside the beam [0, %g]", e.P, e.A, e.Length)
}

// InvalidConfigurationError is returned for non-positive beam properties or
// a malformed discretization request.
type InvalidConfigurationError struct {
	Field string
	Value float64
	Msg   string
}

func (e *InvalidConfigurationError) Error() string {
	return fmt.Sprintf("invalid %s = %g: %s", e.Field, e.Value, e.Msg)
}
