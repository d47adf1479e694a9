// Package colorutil provides deterministic color variation helpers for
// material randomization. Variations happen in HSV space, which keeps
// jittered colors perceptually close to their base: a worn red field
// stays red, just a little duller or darker.
package colorutil

import (
	"math"
	"math/rand"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// RGBA is a color with float components in [0, 1].
type RGBA struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
	A float64 `json:"a"`
}

// JitterHSV returns base varied in HSV space. The variation arguments
// are half-widths of uniform jitter as fractions of the full component
// range (0.02 = ±2%). Hue wraps around; saturation and value clamp to
// [0, 1]. Alpha passes through unchanged. A zero variation leaves the
// corresponding component untouched and draws nothing from rng for it.
func JitterHSV(base RGBA, rng *rand.Rand, hueVar, satVar, valVar float64) RGBA {
	c := colorful.Color{R: base.R, G: base.G, B: base.B}
	h, s, v := c.Hsv()

	if hueVar > 0 {
		// go-colorful hue is in degrees; the variation is a fraction
		// of a full turn.
		h = math.Mod(h+uniform(rng, hueVar)*360.0, 360.0)
		if h < 0 {
			h += 360.0
		}
	}
	if satVar > 0 {
		s = clamp01(s + uniform(rng, satVar))
	}
	if valVar > 0 {
		v = clamp01(v + uniform(rng, valVar))
	}

	out := colorful.Hsv(h, s, v)
	return RGBA{R: out.R, G: out.G, B: out.B, A: base.A}
}

// Lerp interpolates between two colors in RGB space. The factor is
// clamped to [0, 1].
func Lerp(a, b RGBA, t float64) RGBA {
	t = clamp01(t)
	ca := colorful.Color{R: a.R, G: a.G, B: a.B}
	cb := colorful.Color{R: b.R, G: b.G, B: b.B}
	out := ca.BlendRgb(cb, t)
	return RGBA{R: out.R, G: out.G, B: out.B, A: a.A + (b.A-a.A)*t}
}

// AdjustBrightness scales the HSV value component by factor
// (>1 brighter, <1 darker), clamped to [0, 1].
func AdjustBrightness(c RGBA, factor float64) RGBA {
	col := colorful.Color{R: c.R, G: c.G, B: c.B}
	h, s, v := col.Hsv()
	out := colorful.Hsv(h, s, clamp01(v*factor))
	return RGBA{R: out.R, G: out.G, B: out.B, A: c.A}
}

// AdjustSaturation scales the HSV saturation component by factor,
// clamped to [0, 1].
func AdjustSaturation(c RGBA, factor float64) RGBA {
	col := colorful.Color{R: c.R, G: c.G, B: c.B}
	h, s, v := col.Hsv()
	out := colorful.Hsv(h, clamp01(s*factor), v)
	return RGBA{R: out.R, G: out.G, B: out.B, A: c.A}
}

// uniform draws from [-halfWidth, +halfWidth).
func uniform(rng *rand.Rand, halfWidth float64) float64 {
	return (rng.Float64()*2 - 1) * halfWidth
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
