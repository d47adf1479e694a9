package colorutil

import (
	"math"
	"math/rand"
	"testing"
)

func TestJitterHSV_Deterministic(t *testing.T) {
	base := RGBA{R: 0.8, G: 0.1, B: 0.1, A: 1.0}

	a := JitterHSV(base, rand.New(rand.NewSource(42)), 0.02, 0.1, 0.15)
	b := JitterHSV(base, rand.New(rand.NewSource(42)), 0.02, 0.1, 0.15)
	if a != b {
		t.Errorf("same seed produced different colors: %+v vs %+v", a, b)
	}

	c := JitterHSV(base, rand.New(rand.NewSource(43)), 0.02, 0.1, 0.15)
	if a == c {
		t.Error("different seeds produced identical colors")
	}
}

func TestJitterHSV_ZeroVariationIsIdentity(t *testing.T) {
	bases := []RGBA{
		{0.8, 0.1, 0.1, 1.0},
		{0.02, 0.02, 0.02, 1.0},
		{0.9, 0.9, 0.85, 0.5},
	}

	for _, base := range bases {
		got := JitterHSV(base, rand.New(rand.NewSource(1)), 0, 0, 0)
		if math.Abs(got.R-base.R) > 1e-9 || math.Abs(got.G-base.G) > 1e-9 ||
			math.Abs(got.B-base.B) > 1e-9 || got.A != base.A {
			t.Errorf("zero variation changed %+v to %+v", base, got)
		}
	}
}

func TestJitterHSV_ComponentsInRange(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	base := RGBA{R: 0.9, G: 0.9, B: 0.85, A: 1.0}

	for i := 0; i < 500; i++ {
		got := JitterHSV(base, rng, 0.5, 0.5, 0.5)
		for name, v := range map[string]float64{"R": got.R, "G": got.G, "B": got.B} {
			if v < -1e-9 || v > 1+1e-9 {
				t.Fatalf("iteration %d: component %s = %v out of range", i, name, v)
			}
		}
		if got.A != 1.0 {
			t.Fatalf("alpha must pass through, got %v", got.A)
		}
	}
}

func TestJitterHSV_StaysNearBase(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	base := RGBA{R: 0.8, G: 0.1, B: 0.1, A: 1.0}

	// Small variations must never flip the dominant channel.
	for i := 0; i < 200; i++ {
		got := JitterHSV(base, rng, 0.02, 0.1, 0.15)
		if got.R <= got.G || got.R <= got.B {
			t.Fatalf("iteration %d: red no longer dominant: %+v", i, got)
		}
	}
}

func TestLerp(t *testing.T) {
	a := RGBA{0, 0, 0, 0}
	b := RGBA{1, 1, 1, 1}

	mid := Lerp(a, b, 0.5)
	for _, v := range []float64{mid.R, mid.G, mid.B, mid.A} {
		if math.Abs(v-0.5) > 1e-9 {
			t.Errorf("midpoint component: got %v, want 0.5", v)
		}
	}

	if got := Lerp(a, b, 0); got != a {
		t.Errorf("t=0: got %+v, want a", got)
	}
	if got := Lerp(a, b, 1); got != b {
		t.Errorf("t=1: got %+v, want b", got)
	}
	// Out-of-range factors clamp.
	if got := Lerp(a, b, 2.5); got != b {
		t.Errorf("t=2.5: got %+v, want b", got)
	}
}

func TestAdjustBrightness(t *testing.T) {
	c := RGBA{R: 0.4, G: 0.2, B: 0.2, A: 1.0}

	brighter := AdjustBrightness(c, 1.5)
	if brighter.R <= c.R {
		t.Errorf("brightening did not raise value: %+v", brighter)
	}

	darker := AdjustBrightness(c, 0.5)
	if darker.R >= c.R {
		t.Errorf("darkening did not lower value: %+v", darker)
	}

	// Clamps at full brightness.
	white := AdjustBrightness(RGBA{1, 1, 1, 1}, 4.0)
	if white.R > 1+1e-9 || white.G > 1+1e-9 || white.B > 1+1e-9 {
		t.Errorf("brightness clamp failed: %+v", white)
	}
}

func TestAdjustSaturation(t *testing.T) {
	c := RGBA{R: 0.6, G: 0.3, B: 0.3, A: 1.0}

	gray := AdjustSaturation(c, 0)
	if math.Abs(gray.R-gray.G) > 1e-9 || math.Abs(gray.G-gray.B) > 1e-9 {
		t.Errorf("zero saturation should be gray: %+v", gray)
	}

	vivid := AdjustSaturation(c, 2.0)
	if vivid.R-vivid.G <= c.R-c.G {
		t.Errorf("saturation boost did not spread channels: %+v", vivid)
	}
}
