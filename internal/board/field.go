package board

import "math"

// Zone identifies the radial band a dart landed in.
type Zone string

const (
	ZoneInnerBull Zone = "inner_bull"
	ZoneOuterBull Zone = "outer_bull"
	ZoneSingle    Zone = "single"
	ZoneTreble    Zone = "treble"
	ZoneDouble    Zone = "double"
	ZoneMiss      Zone = "miss"
)

// Field is the scoring field a polar position falls into.
type Field struct {
	Zone       Zone `json:"zone"`
	Segment    int  `json:"segment"`    // Segment number 1-20; 0 in the bull and on a miss.
	Multiplier int  `json:"multiplier"` // 1, 2 or 3; 0 in the bull and on a miss.
	Score      int  `json:"score"`
}

// segmentNumbers lists the wedge numbers counter-clockwise starting at
// the wedge centered on the +X axis ("6", with "20" up on +Y).
var segmentNumbers = [Segments]int{
	6, 13, 4, 18, 1, 20, 5, 12, 9, 14, 11, 8, 16, 7, 19, 3, 17, 2, 15, 10,
}

// SegmentAt returns the wedge number at the given counter-clockwise
// wheel index. Indices wrap modulo Segments.
func SegmentAt(index int) int {
	index %= Segments
	if index < 0 {
		index += Segments
	}
	return segmentNumbers[index]
}

// FieldAt determines the scoring field for a polar position (meters,
// radians). Wires are ignored: positions that survived ValidateRadius
// and ValidateAngle never sit on one, and raw positions are classified
// by the band they fall into.
func (l *Layout) FieldAt(radiusM, angleRad float64) Field {
	rMM := radiusM * 1000.0

	switch {
	case rMM <= RInnerBull:
		return Field{Zone: ZoneInnerBull, Score: 50}
	case rMM <= ROuterBull:
		return Field{Zone: ZoneOuterBull, Score: 25}
	case rMM > ROuterDouble:
		return Field{Zone: ZoneMiss}
	}

	segment := segmentNumbers[segmentIndex(angleRad)]

	zone := ZoneSingle
	multiplier := 1
	switch {
	case rMM > RInnerTreble && rMM <= ROuterTreble:
		zone = ZoneTreble
		multiplier = 3
	case rMM > RInnerDouble:
		zone = ZoneDouble
		multiplier = 2
	}

	return Field{
		Zone:       zone,
		Segment:    segment,
		Multiplier: multiplier,
		Score:      segment * multiplier,
	}
}

// segmentIndex maps an angle to the counter-clockwise wedge index,
// with wedge 0 centered on the +X axis.
func segmentIndex(angleRad float64) int {
	const halfSegment = SegmentAngle / 2
	idx := int(pmod(angleRad+halfSegment, 2*math.Pi) / SegmentAngle)
	if idx >= Segments {
		idx = 0
	}
	return idx
}
