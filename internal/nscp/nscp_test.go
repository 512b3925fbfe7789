package nscp

import (
	"errors"
	"math"
	"testing"
)

func TestFactor(t *testing.T) {
	combo := LoadCombinations[1] // 1.2D + 1.6L + 0.5(Lr or R)
	tcs := []struct {
		t    LoadType
		want float64
	}{
		{Dead, 1.2},
		{"", 1.2},
		{Live, 1.6},
		{Roof, 0.5},
		{Rain, 0.5},
		{Wind, 0},
		{Earthquake, 0},
		{"X", 0},
	}
	for _, tc := range tcs {
		if got := combo.Factor(tc.t); got != tc.want {
			t.Errorf("Factor(%q) = %g, want %g", tc.t, got, tc.want)
		}
	}
}

func TestParseLoadType(t *testing.T) {
	for in, want := range map[string]LoadType{
		"":        Dead,
		"dead":    Dead,
		"L":       Live,
		"lr":      Roof,
		"Wind":    Wind,
		"seismic": Earthquake,
		"r":       Rain,
	} {
		got, err := ParseLoadType(in)
		if err != nil {
			t.Fatal(err)
		}
		if got != want {
			t.Errorf("ParseLoadType(%q) = %q, want %q", in, got, want)
		}
	}
	if _, err := ParseLoadType("snow"); err == nil {
		t.Error("snow should not parse")
	}
}

func TestFindCombination(t *testing.T) {
	c, err := FindCombination("5", LoadCombinations)
	if err != nil {
		t.Fatal(err)
	}
	if c.Earthquake != 1.0 {
		t.Errorf("combination 5 earthquake factor = %g", c.Earthquake)
	}
	if c, _ := FindCombination("s", LoadCombinations); c.ID != Service.ID {
		t.Errorf("expected service combination, got %q", c.ID)
	}
	if _, err := FindCombination("9", SimplifiedCombinations); err == nil {
		t.Error("combination 9 should not exist")
	}
}

func TestGoverning(t *testing.T) {
	// dead 10, live 5
	eval := func(c LoadCombination) (float64, error) {
		return 10*c.Dead + 5*c.Live, nil
	}
	v, combo, err := Governing(SimplifiedCombinations, eval)
	if err != nil {
		t.Fatal(err)
	}
	if combo.ID != "2" || math.Abs(v-20) > 1e-12 {
		t.Fatalf("governing = %s (%g), want 2 (20)", combo.ID, v)
	}

	boom := errors.New("boom")
	_, _, err = Governing(LoadCombinations, func(LoadCombination) (float64, error) { return 0, boom })
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped error, got %v", err)
	}
}

func TestModulus(t *testing.T) {
	e, err := Modulus("concrete", 28)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(e-4700*math.Sqrt(28)) > 1e-9 {
		t.Errorf("Ec(28) = %g", e)
	}
	if e, _ := Modulus("Steel", 0); e != 200000 {
		t.Errorf("steel modulus = %g", e)
	}
	if e, err := Modulus(" structural ", 0); err != nil || e != EsStructural {
		t.Errorf("structural steel modulus = %g, %v", e, err)
	}
	if _, err := Modulus("concrete", 0); err == nil {
		t.Error("concrete without f'c should fail")
	}
	if _, err := Modulus("glass", 0); err == nil {
		t.Error("unknown material should fail")
	}
}
