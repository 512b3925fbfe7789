package roark

import (
	"fmt"
	"strconv"
	"strings"
)

// Restraint is the support condition at one end of the beam.
// The numeric values follow the end restraint codes used with Table 8.1.
type Restraint int

const (
	Fixed  Restraint = 1 // no translation, no rotation
	Simple Restraint = 2 // no translation, free rotation
	Guided Restraint = 3 // free translation, no rotation
	Free   Restraint = 4 // free translation, free rotation
)

func (r Restraint) String() string {
	switch r {
	case Fixed:
		return "Fixed"
	case Simple:
		return "Simple"
	case Guided:
		return "Guided"
	case Free:
		return "Free"
	}
	return fmt.Sprintf("Restraint(%d)", int(r))
}

// ParseRestraint accepts a restraint name ("fixed", "simple", "pinned",
// "guided", "free") or its numeric code ("1".."4").
func ParseRestraint(s string) (Restraint, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "fixed", "1":
		return Fixed, nil
	case "simple", "pinned", "s", "p", "2":
		return Simple, nil
	case "guided", "g", "3":
		return Guided, nil
	case "free", "4":
		return Free, nil
	}
	return 0, fmt.Errorf("unknown end restraint %q", s)
}

// Code is an end restraint pair, A end (left) first.
type Code struct {
	A Restraint
	B Restraint
}

// NewCode builds a code from its two-digit form, e.g. 41 = Free-Fixed.
func NewCode(n int) Code {
	return Code{A: Restraint(n / 10), B: Restraint(n % 10)}
}

// Int returns the two-digit form of the code.
func (c Code) Int() int {
	return int(c.A)*10 + int(c.B)
}

func (c Code) String() string {
	return c.A.String() + "-" + c.B.String()
}

// Swap returns the code seen from the other end of the beam.
func (c Code) Swap() Code {
	return Code{A: c.B, B: c.A}
}

// ParseCode accepts "free-fixed", "Free/Fixed", "free fixed" or "41".
func ParseCode(s string) (Code, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		if n < 11 || n > 44 {
			return Code{}, fmt.Errorf("unknown restraint code %q", s)
		}
		return NewCode(n), nil
	}

	parts := strings.FieldsFunc(s, func(r rune) bool {
		return r == '-' || r == '/' || r == ' ' || r == '_'
	})
	if len(parts) != 2 {
		return Code{}, fmt.Errorf("restraint code %q must name both ends, e.g. fixed-simple", s)
	}
	a, err := ParseRestraint(parts[0])
	if err != nil {
		return Code{}, err
	}
	b, err := ParseRestraint(parts[1])
	if err != nil {
		return Code{}, err
	}
	return Code{A: a, B: b}, nil
}

// Case describes one of the valid end restraint combinations.
type Case struct {
	Number    int
	Code      Code
	Reference string // Roark's table entry, empty for the mirrored cases
	Mirror    bool   // solved by reflecting a base case
}

// Cases lists the ten statically valid restraint pairs.
// Cases 1-6 come directly from Roark; 7-10 are the same beams seen from the
// other end, solved in the reflected coordinate y = L - x.
var Cases = []Case{
	{Number: 1, Code: Code{Free, Fixed}, Reference: "Table 8.1-1a"},
	{Number: 2, Code: Code{Guided, Fixed}, Reference: "Table 8.1-1b"},
	{Number: 3, Code: Code{Simple, Fixed}, Reference: "Table 8.1-1c"},
	{Number: 4, Code: Code{Fixed, Fixed}, Reference: "Table 8.1-1d"},
	{Number: 5, Code: Code{Simple, Simple}, Reference: "Table 8.1-1e"},
	{Number: 6, Code: Code{Guided, Simple}, Reference: "Table 8.1-1f"},
	{Number: 7, Code: Code{Fixed, Free}, Mirror: true},
	{Number: 8, Code: Code{Fixed, Guided}, Mirror: true},
	{Number: 9, Code: Code{Fixed, Simple}, Mirror: true},
	{Number: 10, Code: Code{Simple, Guided}, Mirror: true},
}

// Lookup returns the case for c.
func Lookup(c Code) (Case, bool) {
	for _, cs := range Cases {
		if cs.Code == c {
			return cs, true
		}
	}
	return Case{}, false
}

// Valid reports whether c is one of the ten restraint pairs with a unique
// static solution.
func (c Code) Valid() bool {
	_, ok := Lookup(c)
	return ok
}

// Mirrored reports whether c is solved by reflecting a base case.
func (c Code) Mirrored() bool {
	cs, ok := Lookup(c)
	return ok && cs.Mirror
}

// Reference returns the Roark table entry that solves c. Mirrored codes
// name the entry of their reflection.
func (c Code) Reference() string {
	cs, ok := Lookup(c)
	if !ok {
		return ""
	}
	if cs.Mirror {
		base, _ := Lookup(c.Swap())
		return base.Reference + " (reflected)"
	}
	return cs.Reference
}
