package section

import (
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestRectangle(t *testing.T) {
	s := Rectangle(300, 500)
	p := s.CalculateProperties()

	if p.Area != 150000 {
		t.Errorf("area = %g, want 150000", p.Area)
	}
	if p.CentroidX != 150 || p.CentroidY != 250 {
		t.Errorf("centroid = (%g, %g), want (150, 250)", p.CentroidX, p.CentroidY)
	}
	if want := 300 * math.Pow(500, 3) / 12; math.Abs(p.Ixx-want) > 1e-6*want {
		t.Errorf("Ixx = %g, want %g", p.Ixx, want)
	}
	if want := 500 * math.Pow(300, 3) / 12; math.Abs(p.Iyy-want) > 1e-6*want {
		t.Errorf("Iyy = %g, want %g", p.Iyy, want)
	}
	top, bottom := p.SectionModulus()
	if want := 300 * 500 * 500 / 6.0; math.Abs(top-want) > 1e-6*want || math.Abs(bottom-want) > 1e-6*want {
		t.Errorf("section modulus = %g / %g, want %g", top, bottom, want)
	}
}

func TestTeeSection(t *testing.T) {
	// 600x100 flange on a 200x400 web, clockwise to check orientation
	s := &Section{Vertices: []Point{
		{X: 200, Y: 0},
		{X: 200, Y: 400},
		{X: 0, Y: 400},
		{X: 0, Y: 500},
		{X: 600, Y: 500},
		{X: 600, Y: 400},
		{X: 400, Y: 400},
		{X: 400, Y: 0},
	}}
	if err := s.Validate(); err != nil {
		t.Fatal(err)
	}
	p := s.CalculateProperties()

	af, aw := 600.0*100, 200.0*400
	yf, yw := 450.0, 200.0
	area := af + aw
	cy := (af*yf + aw*yw) / area
	ixx := 600*math.Pow(100, 3)/12 + af*(yf-cy)*(yf-cy) +
		200*math.Pow(400, 3)/12 + aw*(yw-cy)*(yw-cy)

	if math.Abs(p.Area-area) > 1e-9*area {
		t.Errorf("area = %g, want %g", p.Area, area)
	}
	if math.Abs(p.CentroidY-cy) > 1e-9*cy {
		t.Errorf("centroid y = %g, want %g", p.CentroidY, cy)
	}
	if math.Abs(p.Ixx-ixx) > 1e-9*ixx {
		t.Errorf("Ixx = %g, want %g", p.Ixx, ixx)
	}
	if math.Abs(p.CTop+p.CBottom-500) > 1e-9 {
		t.Errorf("extreme fibre distances %g + %g != 500", p.CTop, p.CBottom)
	}
}

func TestValidate(t *testing.T) {
	if err := (&Section{Vertices: []Point{{0, 0}, {1, 1}}}).Validate(); err == nil {
		t.Error("two vertices should fail")
	}
	if err := (&Section{Vertices: []Point{{0, 0}, {1, 1}, {2, 2}}}).Validate(); err == nil {
		t.Error("collinear vertices should fail")
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rect.json")
	data := `{"name": "R1", "vertices": [{"x":0,"y":0},{"x":100,"y":0},{"x":100,"y":200},{"x":0,"y":200}]}`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}
	s, err := LoadFromFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if s.Name != "R1" || len(s.Vertices) != 4 {
		t.Fatalf("unexpected section %+v", s)
	}
	if want := 100 * math.Pow(200, 3) / 12; math.Abs(s.CalculateProperties().Ixx-want) > 1e-6*want {
		t.Errorf("Ixx = %g, want %g", s.CalculateProperties().Ixx, want)
	}
}
