package randomizer

import (
	"math"

	"github.com/dartsight/dart-scene-gen/internal/board"
	"github.com/dartsight/dart-scene-gen/internal/geom"
)

// ThrowConfig holds the sampling parameters for dart placement on the
// board plane.
type ThrowConfig struct {
	NumDarts int

	// SameAppearance gives every dart in a frame the same geometry
	// seed, so a set of three matching darts is rendered.
	SameAppearance bool

	// MaxRadius bounds the uniform radius sample, in meters.
	MaxRadius float64

	// Rotation jitter of the embedded dart, in degrees.
	RotXMinDeg float64
	RotXMaxDeg float64
	RotYMinDeg float64
	RotYMaxDeg float64
	RotZMinDeg float64
	RotZMaxDeg float64

	// Embedding depth as a factor of the dart tip length.
	EmbedFactorMin float64
	EmbedFactorMax float64

	// Darts beyond OutsideRadius are hidden unless explicitly allowed.
	AllowOutsideBoard bool
	OutsideRadius     float64

	// BouncerProbability hides a dart entirely, simulating a bounce-out.
	BouncerProbability float64
}

// DefaultThrowConfig returns the stock throw sampling parameters.
func DefaultThrowConfig() ThrowConfig {
	return ThrowConfig{
		NumDarts:           3,
		SameAppearance:     false,
		MaxRadius:          0.25,
		RotXMinDeg:         -10.0,
		RotXMaxDeg:         10.0,
		RotYMinDeg:         -10.0,
		RotYMaxDeg:         10.0,
		RotZMinDeg:         0.0,
		RotZMaxDeg:         360.0,
		EmbedFactorMin:     0.1,
		EmbedFactorMax:     0.8,
		AllowOutsideBoard:  false,
		OutsideRadius:      0.225,
		BouncerProbability: 0.0,
	}
}

// Placement is one dart's sampled position and orientation, with its
// geometry parameters and the scoring field it landed in.
type Placement struct {
	Radius        float64     `json:"radius"` // meters, wire-validated
	Angle         float64     `json:"angle"`  // radians, wire-validated
	Position      geom.Vec3   `json:"position"`
	RotationEuler [3]float64  `json:"rotation_euler"`
	EmbedDepth    float64     `json:"embed_depth"` // meters along local -Z
	Hidden        bool        `json:"hidden"`
	Bouncer       bool        `json:"bouncer"`
	Field         board.Field `json:"field"`
	Dart          DartParams  `json:"dart"`
}

// ThrowRandomizer samples dart placements against the board layout.
// Position sampling is polar: a uniform radius and angle are drawn,
// the radius is validated against the ring wires first, then the angle
// against the radial wires at the corrected radius, and only the
// validated pair becomes the Cartesian spawn position.
type ThrowRandomizer struct {
	seeded
	Config ThrowConfig

	layout *board.Layout
	dart   *DartRandomizer
}

// NewThrowRandomizer constructs a throw randomizer. The layout and the
// dart randomizer are shared with the rest of the frame pipeline.
func NewThrowRandomizer(seed int64, cfg ThrowConfig, layout *board.Layout, dart *DartRandomizer) *ThrowRandomizer {
	return &ThrowRandomizer{
		seeded: newSeeded(seed),
		Config: cfg,
		layout: layout,
		dart:   dart,
	}
}

// Randomize samples placements for all darts of one frame.
func (t *ThrowRandomizer) Randomize() []Placement {
	cfg := t.Config
	placements := make([]Placement, 0, cfg.NumDarts)

	// One shared appearance seed per frame; used by every dart when
	// SameAppearance is set.
	baseSeed := int64(t.rng.Intn(100001))

	for i := 0; i < cfg.NumDarts; i++ {
		dartSeed := baseSeed
		if !cfg.SameAppearance {
			dartSeed = int64(t.rng.Intn(100001))
		}
		t.dart.UpdateSeed(dartSeed)
		params := t.dart.Randomize()

		placements = append(placements, t.placeDart(params))
	}

	return placements
}

// placeDart samples a single dart position, orientation and embedding.
func (t *ThrowRandomizer) placeDart(params DartParams) Placement {
	cfg := t.Config

	rawRadius := t.rng.Float64() * cfg.MaxRadius
	rawAngle := t.rng.Float64() * 2 * math.Pi

	// Radius first: the angular wire zones depend on the corrected
	// radius.
	radius := t.layout.ValidateRadius(rawRadius)
	angle := t.layout.ValidateAngle(radius, rawAngle)

	p := Placement{
		Radius:   radius,
		Angle:    angle,
		Position: geom.PolarToCart(radius, angle),
		Field:    t.layout.FieldAt(radius, angle),
		Dart:     params,
	}

	rx := radians(t.uniform(cfg.RotXMinDeg, cfg.RotXMaxDeg))
	ry := radians(t.uniform(cfg.RotYMinDeg, cfg.RotYMaxDeg))
	rz := radians(t.uniform(cfg.RotZMinDeg, cfg.RotZMaxDeg))
	p.RotationEuler = [3]float64{rx, ry, rz}

	// Sink the tip into the board along the dart's local -Z.
	embedFactor := t.uniform(cfg.EmbedFactorMin, cfg.EmbedFactorMax)
	tipLengthM := params.TipLength / 1000.0
	p.EmbedDepth = tipLengthM * embedFactor

	rot := geom.RotXYZ(rx, ry, rz)
	sink := geom.Apply(rot, geom.Vec3{Z: -p.EmbedDepth})
	p.Position = p.Position.Add(sink)

	if cfg.BouncerProbability > 0 && t.rng.Float64() < cfg.BouncerProbability {
		p.Bouncer = true
		p.Hidden = true
	}
	if !cfg.AllowOutsideBoard && p.Radius > cfg.OutsideRadius {
		p.Hidden = true
	}

	return p
}

func (t *ThrowRandomizer) uniform(min, max float64) float64 {
	return min + t.rng.Float64()*(max-min)
}
