package beam

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/alexiusacademia/goroark/internal/nscp"
	"github.com/alexiusacademia/goroark/internal/roark"
)

var testSpec = Spec{E: 29000, I: 100, L: 240}

func TestGrid(t *testing.T) {
	xs, err := Grid(5, 240)
	if err != nil {
		t.Fatal(err)
	}
	want := []float64{0, 60, 120, 180, 240}
	for i := range want {
		if xs[i] != want[i] {
			t.Fatalf("Grid(5, 240) = %v, want %v", xs, want)
		}
	}

	// the last coordinate is exactly L for awkward spans
	xs, _ = Grid(7, 0.3)
	if xs[0] != 0 || xs[6] != 0.3 {
		t.Fatalf("Grid(7, 0.3) ends at %g, %g", xs[0], xs[6])
	}

	var ce *roark.InvalidConfigurationError
	for _, n := range []int{1, 0, -4, MaxSections + 1, 1 << 30} {
		if _, err := Grid(n, 240); !errors.As(err, &ce) {
			t.Errorf("Grid(%d) expected InvalidConfigurationError, got %v", n, err)
		}
	}
	if _, err := Coordinate(0, 5, 240); !errors.As(err, &ce) {
		t.Errorf("Coordinate(0) expected InvalidConfigurationError, got %v", err)
	}
	if _, err := Coordinate(6, 5, 240); !errors.As(err, &ce) {
		t.Errorf("Coordinate(6) expected InvalidConfigurationError, got %v", err)
	}
	if xs, err := Grid(MaxSections, 240); err != nil || len(xs) != MaxSections {
		t.Errorf("Grid(MaxSections) = %d points, %v", len(xs), err)
	}
	if x, _ := Coordinate(2, 5, 240); x != 60 {
		t.Errorf("Coordinate(2, 5, 240) = %g, want 60", x)
	}
}

func TestGridCache(t *testing.T) {
	b := New(testSpec, roark.Code{A: roark.Simple, B: roark.Simple})
	g1, err := b.Grid()
	if err != nil {
		t.Fatal(err)
	}
	if len(g1) != DefaultSections {
		t.Fatalf("grid has %d points, want %d", len(g1), DefaultSections)
	}
	g2, _ := b.Grid()
	if &g1[0] != &g2[0] {
		t.Error("grid was recomputed without a change")
	}

	b.Sections = 3
	g3, _ := b.Grid()
	if len(g3) != 3 || g3[1] != 120 {
		t.Fatalf("grid after section change = %v", g3)
	}

	b.Spec.L = 300
	g4, _ := b.Grid()
	if g4[2] != 300 {
		t.Fatalf("grid after length change = %v", g4)
	}
}

func TestSuperposeErrors(t *testing.T) {
	code := roark.Code{A: roark.Fixed, B: roark.Simple}
	loads := []PointLoad{{P: 1, A: 100}, {P: 2, A: 250}}

	_, err := Superpose(testSpec, code, loads, 11)
	var le *roark.InvalidLoadError
	if !errors.As(err, &le) {
		t.Fatalf("expected InvalidLoadError, got %v", err)
	}
	if le.Index != 1 || le.A != 250 {
		t.Fatalf("error points at load %d (a=%g), want load 1 (a=250)", le.Index, le.A)
	}

	var ce *roark.InvalidConfigurationError
	if _, err := Superpose(testSpec, code, loads[:1], 1); !errors.As(err, &ce) {
		t.Fatalf("expected InvalidConfigurationError, got %v", err)
	}
	if _, err := Superpose(Spec{E: 29000, I: 0, L: 240}, code, loads[:1], 11); !errors.As(err, &ce) {
		t.Fatalf("expected InvalidConfigurationError for I = 0, got %v", err)
	}

	var re *roark.InvalidRestraintError
	if _, err := Superpose(testSpec, roark.Code{A: roark.Free, B: roark.Free}, loads[:1], 11); !errors.As(err, &re) {
		t.Fatalf("expected InvalidRestraintError, got %v", err)
	}
}

func TestSuperposeNoLoads(t *testing.T) {
	secs, err := Superpose(testSpec, roark.Code{A: roark.Fixed, B: roark.Fixed}, nil, 4)
	if err != nil {
		t.Fatal(err)
	}
	for _, s := range secs {
		if s.Response != (roark.Response{}) {
			t.Fatalf("unloaded beam responds at x=%g: %+v", s.X, s.Response)
		}
	}
}

func TestSuperpositionLinearity(t *testing.T) {
	load1 := PointLoad{P: 3, A: 50}
	load2 := PointLoad{P: -1.5, A: 170}
	const n = 25

	for _, cs := range roark.Cases {
		t.Run(cs.Code.String(), func(t *testing.T) {
			both, err := Superpose(testSpec, cs.Code, []PointLoad{load1, load2}, n)
			if err != nil {
				t.Fatal(err)
			}
			one, err := Superpose(testSpec, cs.Code, []PointLoad{load1}, n)
			if err != nil {
				t.Fatal(err)
			}
			two, err := Superpose(testSpec, cs.Code, []PointLoad{load2}, n)
			if err != nil {
				t.Fatal(err)
			}
			for i := range both {
				sum := one[i].Response.Add(two[i].Response)
				if both[i].X != one[i].X ||
					math.Abs(both[i].Shear-sum.Shear) > 1e-12 ||
					math.Abs(both[i].Moment-sum.Moment) > 1e-9 ||
					math.Abs(both[i].Slope-sum.Slope) > 1e-12 ||
					math.Abs(both[i].Deflection-sum.Deflection) > 1e-9 {
					t.Fatalf("x=%g: combined %+v, sum %+v", both[i].X, both[i].Response, sum)
				}
			}
		})
	}
}

// TestDifferentialRelations checks dM/dx = V and dθ/dx = M/EI by central
// differences on the sampled grid, away from the load.
func TestDifferentialRelations(t *testing.T) {
	const a = 101.0
	load := []PointLoad{{P: 2, A: a}}
	ei := testSpec.EI()

	maxErr := func(code roark.Code, n int) (float64, float64) {
		secs, err := Superpose(testSpec, code, load, n)
		if err != nil {
			t.Fatal(err)
		}
		h := secs[1].X - secs[0].X
		var errM, errTheta float64
		for i := 1; i < len(secs)-1; i++ {
			if math.Abs(secs[i].X-a) <= 2*h {
				continue
			}
			dM := (secs[i+1].Moment - secs[i-1].Moment) / (2 * h)
			dTheta := (secs[i+1].Slope - secs[i-1].Slope) / (2 * h)
			dY := (secs[i+1].Deflection - secs[i-1].Deflection) / (2 * h)
			errM = math.Max(errM, math.Abs(dM-secs[i].Shear))
			errTheta = math.Max(errTheta, math.Abs(dTheta-secs[i].Moment/ei)*ei)
			errTheta = math.Max(errTheta, math.Abs(dY-secs[i].Slope)*ei/testSpec.L)
		}
		return errM, errTheta
	}

	for _, cs := range roark.Cases {
		t.Run(cs.Code.String(), func(t *testing.T) {
			coarseM, coarseT := maxErr(cs.Code, 41)
			fineM, fineT := maxErr(cs.Code, 481)
			if fineM > 1e-6 {
				t.Errorf("dM/dx differs from V by %g", fineM)
			}
			if fineT > 1e-3 {
				t.Errorf("dθ/dx differs from M/EI by %g (scaled by EI)", fineT)
			}
			if fineT > coarseT+1e-9 || fineM > coarseM+1e-6 {
				t.Errorf("error did not shrink with the grid: M %g -> %g, θ %g -> %g", coarseM, fineM, coarseT, fineT)
			}
		})
	}
}

func TestBeamAnalyze(t *testing.T) {
	// demo beam: 29000, 100, 360 with 1 @ 180
	b := New(Spec{E: 29000, I: 100, L: 360}, roark.Code{A: roark.Simple, B: roark.Simple}, PointLoad{P: 1, A: 180})
	secs, err := b.Analyze()
	if err != nil {
		t.Fatal(err)
	}
	if len(secs) != DefaultSections {
		t.Fatalf("got %d sections", len(secs))
	}
	for _, s := range secs {
		want := 0.5
		if s.X > 180 {
			want = -0.5
		}
		if s.Shear != want {
			t.Errorf("shear at x=%g = %g, want %g", s.X, s.Shear, want)
		}
	}

	r, err := b.At(180)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(r.Moment-90) > 1e-9 {
		t.Errorf("M(180) = %g, want 90", r.Moment)
	}
	if _, err := b.At(400); err == nil {
		t.Error("At outside the span should fail")
	}

	ex := FindExtremes(secs)
	if m, x := ex.Moment.Governing(); math.Abs(m-80) > 1e-9 || math.Abs(x-160) > 1e-9 && math.Abs(x-200) > 1e-9 {
		t.Errorf("governing moment %g at %g, want 80 at 160 or 200", m, x)
	}
	if ex.Deflection.Max > 1e-12 || ex.Deflection.Min >= 0 {
		t.Errorf("deflection extremes %+v should be downward", ex.Deflection)
	}
}

func TestReactions(t *testing.T) {
	loads := []PointLoad{{P: 4, A: 30}, {P: 2, A: 200}, {P: -1, A: 120}}
	total := 5.0
	moment := 4*30.0 + 2*200.0 - 120.0

	for _, cs := range roark.Cases {
		t.Run(cs.Code.String(), func(t *testing.T) {
			b := New(testSpec, cs.Code, loads...)
			r, err := b.Reactions()
			if err != nil {
				t.Fatal(err)
			}
			if math.Abs(r.Ra+r.Rb-total) > 1e-9 {
				t.Errorf("Ra + Rb = %g, want %g", r.Ra+r.Rb, total)
			}
			// moment equilibrium about A: end moments close the balance
			if got := r.Rb*testSpec.L - moment - r.Ma + r.Mb; math.Abs(got) > 1e-6 {
				t.Errorf("moment equilibrium about A off by %g", got)
			}
		})
	}
}

func TestFactored(t *testing.T) {
	b := New(testSpec, roark.Code{A: roark.Simple, B: roark.Simple},
		PointLoad{P: 10, A: 60, Kind: nscp.Dead},
		PointLoad{P: 5, A: 120, Kind: nscp.Live},
		PointLoad{P: 3, A: 180, Kind: nscp.Wind},
	)
	f := b.Factored(nscp.SimplifiedCombinations[1]) // 1.2D + 1.6L
	if len(f.Loads) != 2 {
		t.Fatalf("expected wind load dropped, got %v", f.Loads)
	}
	if math.Abs(f.Loads[0].P-12) > 1e-12 || math.Abs(f.Loads[1].P-8) > 1e-12 {
		t.Fatalf("factored loads = %v", f.Loads)
	}
	if b.Loads[0].P != 10 {
		t.Fatal("unfactored beam was modified")
	}
}

func TestParseCase(t *testing.T) {
	data := []byte(`{
  # propped cantilever from the fixed end
  name: Test beam
  restraint: fixed-simple
  material: steel
  width: 100
  height: 200
  length: 3000
  sections: 31
  loads: [
    {p: 1000, a: 1000, kind: "dead"}
    {p: 500, a: 2000, kind: "L", label: "equipment"}
  ]
}`)
	b, err := ParseCase(data)
	if err != nil {
		t.Fatal(err)
	}
	if b.Name != "Test beam" || b.Sections != 31 {
		t.Errorf("unexpected beam %+v", b)
	}
	if b.Code != (roark.Code{A: roark.Fixed, B: roark.Simple}) {
		t.Errorf("restraint = %s", b.Code)
	}
	if b.Spec.E != nscp.EsStructural {
		t.Errorf("E = %g", b.Spec.E)
	}
	if want := 100 * math.Pow(200, 3) / 12; math.Abs(b.Spec.I-want) > 1e-6*want {
		t.Errorf("I = %g, want %g", b.Spec.I, want)
	}
	if len(b.Loads) != 2 || b.Loads[0].Kind != nscp.Dead || b.Loads[1].Label != "equipment" {
		t.Errorf("loads = %+v", b.Loads)
	}

	var le *roark.InvalidLoadError
	_, err = ParseCase([]byte(`{"restraint": "simple-simple", "e": 1, "i": 1, "length": 10, "loads": [{"p": 1, "a": 11}]}`))
	if !errors.As(err, &le) {
		t.Errorf("expected InvalidLoadError, got %v", err)
	}
	var re *roark.InvalidRestraintError
	_, err = ParseCase([]byte(`{"restraint": "free-free", "e": 1, "i": 1, "length": 10}`))
	if !errors.As(err, &re) {
		t.Errorf("expected InvalidRestraintError, got %v", err)
	}
}

func TestLoadCase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "case.hjson")
	if err := os.WriteFile(path, []byte("restraint: free-fixed\ne: 29000\ni: 100\nlength: 240\nloads: [{p: 1, a: 120}]\n"), 0644); err != nil {
		t.Fatal(err)
	}
	b, err := LoadCase(path)
	if err != nil {
		t.Fatal(err)
	}
	r, err := b.At(120)
	if err != nil {
		t.Fatal(err)
	}
	if r.Shear != 0 {
		t.Fatalf("shear at the load = %g, want 0", r.Shear)
	}
	if _, err := LoadCase(filepath.Join(t.TempDir(), "missing.hjson")); err == nil {
		t.Fatal("missing file should fail")
	}
}

func ExampleSuperpose() {
	spec := Spec{E: 29000, I: 100, L: 240}
	code := roark.Code{A: roark.Fixed, B: roark.Free}
	secs, err := Superpose(spec, code, []PointLoad{{P: 1, A: 240}}, 5)
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, s := range secs {
		fmt.Printf("x=%5.1f  V=%5.2f  M=%7.2f\n", s.X, s.Shear, s.Moment)
	}
	// Output:
	// x=  0.0  V= 1.00  M=-240.00
	// x= 60.0  V= 1.00  M=-180.00
	// x=120.0  V= 1.00  M=-120.00
	// x=180.0  V= 1.00  M= -60.00
	// x=240.0  V= 1.00  M=   0.00
}

func TestSummary(t *testing.T) {
	b := New(Spec{E: 29000, I: 100, L: 240}, roark.Code{A: roark.Simple, B: roark.Simple}, PointLoad{P: 1, A: 120})
	want := "E = 29000, I = 100, L = 240, Simple-Simple, 1 load(s), 10 sections"
	if got := b.Summary(); got != want {
		t.Fatalf("Summary() = %q, want %q", got, want)
	}
}
