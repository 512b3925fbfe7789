package beam

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/alexiusacademia/goroark/internal/nscp"
	"github.com/alexiusacademia/goroark/internal/roark"
	"github.com/alexiusacademia/goroark/internal/section"
	"github.com/hjson/hjson-go"
)

// Case is the on-disk description of a beam problem. Either I, a section
// outline or Width/Height give the moment of inertia; either E or Material
// gives the elastic modulus.
//
//	{
//	  name: Propped cantilever
//	  restraint: fixed-simple
//	  material: steel
//	  i: 8.3e7
//	  length: 6000
//	  sections: 21
//	  loads: [
//	    {p: 20000, a: 2000, kind: "D"}
//	    {p: 15000, a: 4000, kind: "L"}
//	  ]
//	}
type Case struct {
	Name        string           `json:"name"`
	Description string           `json:"description,omitempty"`
	Restraint   string           `json:"restraint"`
	E           float64          `json:"e,omitempty"`
	Material    string           `json:"material,omitempty"`
	Fc          float64          `json:"fc,omitempty"`
	I           float64          `json:"i,omitempty"`
	Section     *section.Section `json:"section,omitempty"`
	Width       float64          `json:"width,omitempty"`
	Height      float64          `json:"height,omitempty"`
	Length      float64          `json:"length"`
	Sections    int              `json:"sections,omitempty"`
	Loads       []PointLoad      `json:"loads"`
}

// LoadCase reads a case file in HJSON (or plain JSON) and builds the beam.
func LoadCase(path string) (*Beam, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	b, err := ParseCase(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return b, nil
}

// ParseCase decodes an HJSON case and builds the beam.
func ParseCase(data []byte) (*Beam, error) {
	var mdat map[string]interface{}
	if err := hjson.Unmarshal(data, &mdat); err != nil {
		return nil, err
	}
	bytes, err := json.Marshal(mdat)
	if err != nil {
		return nil, err
	}
	var c Case
	if err := json.Unmarshal(bytes, &c); err != nil {
		return nil, err
	}
	return c.Beam()
}

// Beam resolves the case into a validated beam.
func (c *Case) Beam() (*Beam, error) {
	code, err := roark.ParseCode(c.Restraint)
	if err != nil {
		return nil, err
	}

	e := c.E
	if e == 0 && c.Material != "" {
		if e, err = nscp.Modulus(c.Material, c.Fc); err != nil {
			return nil, err
		}
	}

	i := c.I
	switch {
	case i != 0:
	case c.Section != nil:
		if err := c.Section.Validate(); err != nil {
			return nil, fmt.Errorf("section: %w", err)
		}
		i = c.Section.CalculateProperties().Ixx
	case c.Width > 0 && c.Height > 0:
		i = section.Rectangle(c.Width, c.Height).CalculateProperties().Ixx
	}

	loads := make([]PointLoad, len(c.Loads))
	for n, l := range c.Loads {
		kind, err := nscp.ParseLoadType(string(l.Kind))
		if err != nil {
			return nil, fmt.Errorf("load %d: %w", n+1, err)
		}
		l.Kind = kind
		loads[n] = l
	}

	b := New(Spec{E: e, I: i, L: c.Length}, code, loads...)
	b.Name = c.Name
	if c.Sections != 0 {
		b.Sections = c.Sections
	}
	if err := b.Validate(); err != nil {
		return nil, err
	}
	return b, nil
}
