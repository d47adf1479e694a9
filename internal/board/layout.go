package board

import "math"

// Ring radii in millimeters (WDF standards).
const (
	RInnerBull   = 6.35
	ROuterBull   = 15.9
	RInnerTreble = 97.4
	ROuterTreble = 107.4
	RInnerDouble = 160.0
	ROuterDouble = 170.0
)

// Wire thicknesses in millimeters.
const (
	InnerBullWire = 1.2
	OuterBullWire = 1.2
	TrebleWire    = 1.0
	DoubleWire    = 1.0
)

// DefaultTipRadius is the default dart tip radius in millimeters,
// used to inflate the exclusion zones around every wire.
const DefaultTipRadius = 1.1

// Angular validation only applies where radial wires exist: the band
// from just inside the outer bull wire out to the double ring edge.
const (
	angularBandMinMM = 15.8
	angularBandMaxMM = 180.0
)

// halfRadialWire is half the nominal radial wire width in millimeters.
const halfRadialWire = 0.6

// Segments is the number of angular wedges on the board face.
const Segments = 20

// SegmentAngle is the angular width of one wedge in radians (18°).
const SegmentAngle = 2 * math.Pi / Segments

// Interval is an open radius band (Start, End) in millimeters that a
// dart center point must avoid because the tip would straddle a wire.
type Interval struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

// Contains reports whether r lies strictly inside the interval.
// Exact boundary values are valid positions.
func (iv Interval) Contains(r float64) bool {
	return iv.Start < r && r < iv.End
}

// Layout is the physical layout of a regulation dartboard together
// with the dart tip radius it validates against. Immutable after
// construction.
type Layout struct {
	// TipRadius is the dart tip radius in millimeters.
	TipRadius float64

	// invalid holds the six wire exclusion bands in scan order:
	// bull-in, bull-out, treble-in, treble-out, double-in, double-out.
	invalid [6]Interval
}

// New constructs a Layout for the given tip radius in millimeters and
// precomputes the invalid radius intervals. Construction cannot fail.
func New(tipRadiusMM float64) *Layout {
	rt := tipRadiusMM
	return &Layout{
		TipRadius: rt,
		invalid: [6]Interval{
			{Start: RInnerBull - rt, End: RInnerBull + InnerBullWire + rt},
			{Start: ROuterBull - rt, End: ROuterBull + OuterBullWire + rt},
			{Start: RInnerTreble - TrebleWire - rt, End: RInnerTreble + rt},
			{Start: ROuterTreble - TrebleWire - rt, End: ROuterTreble + rt},
			{Start: RInnerDouble - DoubleWire - rt, End: RInnerDouble + rt},
			{Start: ROuterDouble - DoubleWire - rt, End: ROuterDouble + rt},
		},
	}
}

// Default returns a Layout with the default tip radius.
func Default() *Layout {
	return New(DefaultTipRadius)
}

// InvalidIntervals returns a copy of the six wire exclusion bands in
// scan order.
func (l *Layout) InvalidIntervals() []Interval {
	out := make([]Interval, len(l.invalid))
	copy(out, l.invalid[:])
	return out
}

// ValidateRadius snaps a radius (meters) out of the first wire band it
// falls into and returns the result in meters.
//
// The six bands are scanned in a fixed order from bull outward. Only
// the first match is corrected: the snapped value is not re-checked
// against later bands, so with an unusually large tip radius the
// result can still sit inside a band later in the scan. Intervals are
// open, so a value exactly on a boundary is already valid and the
// function is idempotent once a value lands there.
//
// An exact tie between the two boundaries snaps to Start: the
// comparison asks whether End is strictly closer.
func (l *Layout) ValidateRadius(radiusM float64) float64 {
	return l.validateRadiusMM(radiusM*1000.0) / 1000.0
}

// validateRadiusMM is ValidateRadius in millimeter space, where the
// snapping actually happens.
func (l *Layout) validateRadiusMM(rMM float64) float64 {
	for _, iv := range l.invalid {
		if !iv.Contains(rMM) {
			continue
		}
		distStart := rMM - iv.Start
		distEnd := iv.End - rMM
		if distEnd < distStart {
			rMM = iv.End
		} else {
			rMM = iv.Start
		}
		break
	}

	return rMM
}

// ValidateAngle pushes an angle (radians) out of the exclusion zone
// around the nearest radial segment wire and returns the corrected
// angle. The radius (meters) only gates and scales the correction; it
// is never modified.
//
// Outside the radial-wire band the angle is returned unchanged. The
// input angle is unrestricted: the computation is periodic in one
// segment width, and the returned angle stays within the input's range
// plus a bounded correction; it is not normalized.
func (l *Layout) ValidateAngle(radiusM, angleRad float64) float64 {
	rMM := radiusM * 1000.0

	if rMM < angularBandMinMM || rMM > angularBandMaxMM {
		return angleRad
	}

	marginMM := halfRadialWire + l.TipRadius
	if marginMM >= rMM {
		// Cannot happen inside the band with sane tip radii, but it
		// keeps asin in its domain.
		return angleRad
	}
	dtheta := math.Asin(marginMM / rMM)

	// Segment centers sit at multiples of SegmentAngle with wires at
	// ±half a segment from each center. Shifting by half a segment
	// puts the wires at 0 and SegmentAngle in the reduced space.
	const halfSegment = SegmentAngle / 2
	shifted := pmod(angleRad+halfSegment, SegmentAngle)

	distToWire := math.Min(shifted, SegmentAngle-shifted)
	if distToWire >= dtheta {
		return angleRad
	}

	correction := dtheta - distToWire
	if shifted < halfSegment {
		// Closer to the lower wire: push upward.
		return angleRad + correction
	}
	return angleRad - correction
}

// pmod is a modulo that is non-negative for any x, matching the
// mathematical convention rather than math.Mod's sign-preserving one.
func pmod(x, m float64) float64 {
	r := math.Mod(x, m)
	if r < 0 {
		r += m
	}
	return r
}
