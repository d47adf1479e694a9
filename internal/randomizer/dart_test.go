package randomizer

import "testing"

func TestDartRandomize_Deterministic(t *testing.T) {
	a := NewDartRandomizer(42, DefaultDartConfig()).Randomize()
	b := NewDartRandomizer(42, DefaultDartConfig()).Randomize()
	if a != b {
		t.Fatalf("same seed produced different darts:\n%+v\n%+v", a, b)
	}

	c := NewDartRandomizer(43, DefaultDartConfig()).Randomize()
	if a == c {
		t.Error("different seeds produced identical darts")
	}
}

func TestDartRandomize_WithinRanges(t *testing.T) {
	cfg := DefaultDartConfig()
	d := NewDartRandomizer(1, cfg)

	checks := []struct {
		name   string
		bounds RangeOrFixed
		value  func(DartParams) float64
	}{
		{"tip length", cfg.TipLength, func(p DartParams) float64 { return p.TipLength }},
		{"barrel length", cfg.BarrelLength, func(p DartParams) float64 { return p.BarrelLength }},
		{"barrel thickness", cfg.BarrelThickness, func(p DartParams) float64 { return p.BarrelThickness }},
		{"shaft length", cfg.ShaftLength, func(p DartParams) float64 { return p.ShaftLength }},
		{"shaft shape mix", cfg.ShaftShapeMix, func(p DartParams) float64 { return p.ShaftShapeMix }},
		{"flight depth", cfg.FlightDepth, func(p DartParams) float64 { return p.FlightDepth }},
	}

	for i := 0; i < 200; i++ {
		p := d.Randomize()
		for _, c := range checks {
			v := c.value(p)
			if v < c.bounds.Min || v > c.bounds.Max {
				t.Fatalf("%s = %v outside [%v, %v]", c.name, v, c.bounds.Min, c.bounds.Max)
			}
		}
		if p.FlightIndex < 0 || p.FlightIndex >= cfg.FlightTypeCount {
			t.Fatalf("flight index %d outside [0, %d)", p.FlightIndex, cfg.FlightTypeCount)
		}
		for _, seed := range []int{p.TipSeed, p.BarrelSeed, p.ShaftSeed, p.FlightSeed} {
			if seed < 0 || seed > seedRange {
				t.Fatalf("part seed %d outside [0, %d]", seed, seedRange)
			}
		}
	}
}

func TestDartRandomize_FixedFlight(t *testing.T) {
	cfg := DefaultDartConfig()
	cfg.RandomizeFlightType = false
	cfg.FixedFlightIndex = 17

	d := NewDartRandomizer(2, cfg)
	for i := 0; i < 20; i++ {
		if p := d.Randomize(); p.FlightIndex != 17 {
			t.Fatalf("flight index %d, want fixed 17", p.FlightIndex)
		}
	}
}

func TestDartTotalLength(t *testing.T) {
	p := DartParams{TipLength: 30, BarrelLength: 50, ShaftLength: 40, FlightDepth: 15}
	if got := p.TotalLength(); got != 105 {
		t.Fatalf("total length %v, want 105", got)
	}
}
