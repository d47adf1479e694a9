package randomizer

import (
	"encoding/binary"
	"hash/fnv"
	"math/rand"

	"github.com/dartsight/dart-scene-gen/internal/colorutil"
)

// Randomizer is the common seeding interface: reseed before each
// frame, then call the component's Randomize method.
type Randomizer interface {
	UpdateSeed(seed int64)
}

// seeded is the shared RNG core embedded in every randomizer.
type seeded struct {
	rng *rand.Rand
}

func newSeeded(seed int64) seeded {
	return seeded{rng: rand.New(rand.NewSource(seed))}
}

// UpdateSeed reseeds the generator for the next frame.
func (s *seeded) UpdateSeed(seed int64) {
	s.rng.Seed(seed)
}

// SubSeed derives a deterministic per-component, per-frame seed from
// the global seed. FNV-1a keeps it stable across runs and platforms.
func SubSeed(globalSeed int64, tag string, index int) int64 {
	h := fnv.New64a()
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(globalSeed))
	h.Write(buf[:])
	h.Write([]byte(tag))
	binary.LittleEndian.PutUint64(buf[:], uint64(int64(index)))
	h.Write(buf[:])
	return int64(h.Sum64())
}

// RangeOrFixed is a parameter that is either pinned to a fixed value
// or drawn uniformly from [Min, Max).
type RangeOrFixed struct {
	Min   float64  `json:"min"`
	Max   float64  `json:"max"`
	Fixed *float64 `json:"fixed,omitempty"`
}

// Range returns a parameter drawn uniformly from [min, max).
func Range(min, max float64) RangeOrFixed {
	return RangeOrFixed{Min: min, Max: max}
}

// Fixed returns a parameter pinned to v.
func Fixed(v float64) RangeOrFixed {
	return RangeOrFixed{Fixed: &v}
}

// Value returns the fixed value if pinned, otherwise a uniform draw.
func (r RangeOrFixed) Value(rng *rand.Rand) float64 {
	if r.Fixed != nil {
		return *r.Fixed
	}
	return r.Min + rng.Float64()*(r.Max-r.Min)
}

// IsRandomized reports whether the parameter actually varies.
func (r RangeOrFixed) IsRandomized() bool {
	return r.Fixed == nil
}

// ColorVariation configures HSV jitter around a base color, used to
// simulate aging and wear on painted board fields.
type ColorVariation struct {
	Base      colorutil.RGBA `json:"base"`
	HueVar    float64        `json:"hue_var"` // ±fraction of a full hue turn (0.02 = ±2%)
	SatVar    float64        `json:"sat_var"`
	ValVar    float64        `json:"val_var"`
	Randomize bool           `json:"randomize"`
}

// Sample returns the base color, jittered when Randomize is set.
func (cv ColorVariation) Sample(rng *rand.Rand) colorutil.RGBA {
	if !cv.Randomize {
		return cv.Base
	}
	return colorutil.JitterHSV(cv.Base, rng, cv.HueVar, cv.SatVar, cv.ValVar)
}

// seedRange mirrors the generator-seed inputs of the host's node
// groups, which take small integer seeds.
const seedRange = 10000

func (s *seeded) intSeed() int {
	return s.rng.Intn(seedRange + 1)
}
